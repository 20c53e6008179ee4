package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/ctfgrid/ctfgrid/internal/countdown"
)

// RunCountdown counts down to the given RFC3339 timestamp, printing the
// remaining time once per second until expiry or cancellation.
func (c *Cli) RunCountdown(ctx context.Context, target string) error {
	t, err := time.Parse(time.RFC3339, target)
	if err != nil {
		return fmt.Errorf("invalid target time (want RFC3339, e.g. 2026-09-12T09:00:00Z): %w", err)
	}

	countdown.Watch(ctx, t, func(b countdown.Breakdown) {
		if b.Expired {
			c.io.Println("\nThe event has started!")
			return
		}
		c.io.Printf("\r%02dd %02dh %02dm %02ds", b.Days, b.Hours, b.Minutes, b.Seconds)
	})

	return nil
}
