package cli

import (
	"context"
	"time"

	"github.com/ctfgrid/ctfgrid/internal/client/poll"
)

// ScoreboardRefreshInterval is the fixed live-view cadence.
const ScoreboardRefreshInterval = 30 * time.Second

// RunScoreboard prints the ranked entries. With watch enabled it refetches
// on a fixed cadence until ctx is cancelled; the whole list is replaced on
// every refresh, there is no incremental diffing.
func (c *Cli) RunScoreboard(ctx context.Context, watch bool) error {
	if !watch {
		c.fetchScoreboard(ctx)
		return nil
	}

	poll.Run(ctx, ScoreboardRefreshInterval, c.fetchScoreboard)
	return nil
}

func (c *Cli) fetchScoreboard(ctx context.Context) {
	env := c.backend.GetScoreboard(ctx)
	if !env.Success {
		c.printErrors(env.Errors)
		return
	}

	c.io.Printf("%-5s %-28s %8s  %s\n", "POS", "NAME", "SCORE", "AFFILIATION")
	for _, e := range env.Data {
		c.io.Printf("%-5d %-28s %8d  %s\n", e.Pos, e.Name, e.Score, e.Affiliation)
	}
	c.io.Printf("Updated %s\n", time.Now().Format("15:04:05"))
}
