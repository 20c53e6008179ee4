package config

import (
	"os"
	"strconv"
)

// Defaults used when the environment provides nothing.
const (
	// DefaultServerURL targets a locally running CTFd-compatible backend.
	DefaultServerURL = "http://localhost:8000"
	// DefaultDBPath is the local session database file.
	DefaultDBPath = "ctfgrid.db"
)

// Config holds client configuration sourced from the environment.
// Flags in main may override individual fields.
type Config struct {
	// ServerURL is the backend base URL (CTFGRID_SERVER).
	ServerURL string
	// DBPath is the path to the local session database (CTFGRID_DB).
	DBPath string
	// Demo enables fixture fallback for challenge and scoreboard fetches
	// when the backend is unreachable (CTFGRID_DEMO).
	Demo bool
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	return &Config{
		ServerURL: getEnv("CTFGRID_SERVER", DefaultServerURL),
		DBPath:    getEnv("CTFGRID_DB", DefaultDBPath),
		Demo:      getEnvBool("CTFGRID_DEMO", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
