package cli

import (
	"context"
	"fmt"

	"github.com/ctfgrid/ctfgrid/internal/client/iocli"
	"github.com/ctfgrid/ctfgrid/internal/client/session"
	"github.com/ctfgrid/ctfgrid/pkg/api"
)

// Backend is the slice of the API client the commands call directly.
type Backend interface {
	GetChallenges(ctx context.Context) api.Envelope[[]api.Challenge]
	GetChallenge(ctx context.Context, id int) api.Envelope[api.Challenge]
	SubmitFlag(ctx context.Context, req api.AttemptRequest) api.Envelope[api.AttemptResponse]
	GetScoreboard(ctx context.Context) api.Envelope[[]api.ScoreboardEntry]
}

// Session is the slice of the session service the commands use.
type Session interface {
	Login(ctx context.Context, name, password string) error
	Register(ctx context.Context, name, email, password string) error
	Logout(ctx context.Context) error
	RefreshUser(ctx context.Context) error
	IsAuthenticated() bool
	User() *api.User
	Status() session.Status
}

// Cli wires the terminal commands to the backend and session services.
type Cli struct {
	backend Backend
	session Session
	io      iocli.IO
}

func New(backend Backend, sess Session, io iocli.IO) *Cli {
	return &Cli{
		backend: backend,
		session: sess,
		io:      io,
	}
}

// printErrors renders envelope error strings as one line each.
func (c *Cli) printErrors(errs []string) {
	if len(errs) == 0 {
		c.io.Println("Error: the request failed")
		return
	}
	for _, e := range errs {
		c.io.Printf("Error: %s\n", e)
	}
}

func PrintUsage() {
	fmt.Println("ctfgrid - terminal client for CTFd-compatible competitions")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  ctfgrid [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version          Show version information")
	fmt.Println("  --server URL       Backend URL (default: http://localhost:8000, env CTFGRID_SERVER)")
	fmt.Println("  --db PATH          Path to local session database (default: ctfgrid.db, env CTFGRID_DB)")
	fmt.Println("  --demo             Serve fixture data when the backend is unreachable (env CTFGRID_DEMO)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                 Create an account and log in")
	fmt.Println("  login                    Log in to the competition")
	fmt.Println("  logout                   Drop the local session")
	fmt.Println("  status                   Show the current session")
	fmt.Println("  challenges [category]    List challenges, optionally filtered by category")
	fmt.Println("  challenge <id>           Show challenge details")
	fmt.Println("  submit <id> [flag]       Submit a flag for a challenge")
	fmt.Println("  scoreboard [--watch]     Show the scoreboard, optionally live")
	fmt.Println("  countdown <RFC3339>      Count down to the event start")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ctfgrid register")
	fmt.Println("  ctfgrid challenges web")
	fmt.Println("  ctfgrid submit 3 'flag{...}'")
	fmt.Println("  ctfgrid scoreboard --watch")
	fmt.Println("  ctfgrid --server https://ctf.example.org login")
	fmt.Println("  ctfgrid countdown 2026-09-12T09:00:00Z")
}
