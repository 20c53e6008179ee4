package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/ctfgrid/ctfgrid/internal/client/api"
	"github.com/ctfgrid/ctfgrid/internal/client/cli"
	"github.com/ctfgrid/ctfgrid/internal/client/iocli"
	"github.com/ctfgrid/ctfgrid/internal/client/session"
	"github.com/ctfgrid/ctfgrid/internal/client/storage/boltdb"
	"github.com/ctfgrid/ctfgrid/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg := config.Load()

	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", cfg.ServerURL, "Backend URL")
	dbPath := flag.String("db", cfg.DBPath, "Path to local session database")
	demo := flag.Bool("demo", cfg.Demo, "Serve fixture data when the backend is unreachable")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	// Interactive commands stop on Ctrl-C; in-flight requests and the
	// scoreboard/countdown tickers are cancelled with the context.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open session database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close session database", "error", err)
		}
	}()

	opts := []api.Option{}
	if *demo {
		opts = append(opts, api.WithDemoFallback())
	}
	apiClient := api.NewClient(*serverURL, boltStorage, logger, opts...)

	sess := session.NewService(apiClient, boltStorage, logger)
	c := cli.New(apiClient, sess, iocli.NewStdio())

	if err := run(ctx, c, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *cli.Cli, command string, args []string) error {
	switch command {
	case "register":
		return c.RunRegister(ctx)
	case "login":
		return c.RunLogin(ctx)
	case "logout":
		return c.RunLogout(ctx)
	case "status":
		return c.RunStatus(ctx)
	case "challenges":
		category := ""
		if len(args) > 0 {
			category = args[0]
		}
		return c.RunChallenges(ctx, category)
	case "challenge":
		if len(args) != 1 {
			return fmt.Errorf("usage: ctfgrid challenge <id>")
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid challenge id: %s", args[0])
		}
		return c.RunChallenge(ctx, id)
	case "submit":
		if len(args) < 1 || len(args) > 2 {
			return fmt.Errorf("usage: ctfgrid submit <id> [flag]")
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid challenge id: %s", args[0])
		}
		submission := ""
		if len(args) == 2 {
			submission = args[1]
		}
		_, err = c.RunSubmit(ctx, id, submission, func() {
			fmt.Println("Run 'ctfgrid scoreboard' to see your ranking.")
		})
		return err
	case "scoreboard":
		watch := len(args) > 0 && (args[0] == "--watch" || args[0] == "watch")
		return c.RunScoreboard(ctx, watch)
	case "countdown":
		if len(args) != 1 {
			return fmt.Errorf("usage: ctfgrid countdown <RFC3339 timestamp>")
		}
		return c.RunCountdown(ctx, args[0])
	default:
		cli.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printVersion() {
	fmt.Printf("ctfgrid client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
