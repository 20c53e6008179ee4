// Package poll drives fixed-interval refreshes, used by the live scoreboard
// view. No backoff and no jitter: failures are the fetch function's problem,
// the cadence never changes.
package poll

import (
	"context"
	"time"
)

// Run invokes fn immediately and then once per interval until ctx is
// cancelled. The ticker is stopped on return; fn is never invoked after
// cancellation is observed. The context is passed through so in-flight
// fetches are aborted together with the poller.
func Run(ctx context.Context, interval time.Duration, fn func(context.Context)) {
	fn(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(ctx)
		}
	}
}
