// Package server assembles the demo backend: an in-memory CTFd-compatible
// API surface used for local development and integration tests.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ctfgrid/ctfgrid/internal/server/handlers"
	"github.com/ctfgrid/ctfgrid/internal/server/middleware"
	"github.com/ctfgrid/ctfgrid/internal/server/store"
)

// Config holds the demo server wiring knobs.
type Config struct {
	JWTSecret     []byte
	TokenTTL      time.Duration
	AttemptRate   int
	AttemptWindow time.Duration
}

// DefaultConfig matches the client's fixed session lifetime and allows a
// burst of 10 flag submissions per user per minute.
func DefaultConfig(secret []byte) Config {
	return Config{
		JWTSecret:     secret,
		TokenTTL:      7 * 24 * time.Hour,
		AttemptRate:   10,
		AttemptWindow: time.Minute,
	}
}

// NewRouter builds the demo backend's HTTP routing tree.
func NewRouter(logger *slog.Logger, st *store.Store, cfg Config) *mux.Router {
	jwtConfig := handlers.JWTConfig{
		Secret:   cfg.JWTSecret,
		TokenTTL: cfg.TokenTTL,
	}

	authHandler := handlers.NewAuthHandler(logger, st, jwtConfig)
	challengeHandler := handlers.NewChallengeHandler(logger, st, cfg.AttemptRate, cfg.AttemptWindow)
	scoreboardHandler := handlers.NewScoreboardHandler(logger, st)
	healthHandler := handlers.NewHealthHandler(logger)

	requireAuth := middleware.Auth(logger, jwtConfig, true)
	optionalAuth := middleware.Auth(logger, jwtConfig, false)

	r := mux.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))

	v1 := r.PathPrefix("/api/v1").Subrouter()

	v1.HandleFunc("/tokens", authHandler.CreateToken).Methods(http.MethodPost)
	v1.HandleFunc("/users", authHandler.Register).Methods(http.MethodPost)
	v1.Handle("/users/me", requireAuth(http.HandlerFunc(authHandler.Me))).Methods(http.MethodGet)

	v1.Handle("/challenges", optionalAuth(http.HandlerFunc(challengeHandler.List))).Methods(http.MethodGet)
	v1.Handle("/challenges/attempt", requireAuth(http.HandlerFunc(challengeHandler.Attempt))).Methods(http.MethodPost)
	v1.Handle("/challenges/{id:[0-9]+}", optionalAuth(http.HandlerFunc(challengeHandler.Get))).Methods(http.MethodGet)

	v1.HandleFunc("/scoreboard", scoreboardHandler.List).Methods(http.MethodGet)
	v1.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)

	return r
}
