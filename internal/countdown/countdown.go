// Package countdown computes time-remaining breakdowns for the event clock.
// The breakdown is always derived from the difference between now and the
// target, never from a decrementing counter, so repeated calls cannot
// accumulate drift.
package countdown

import (
	"context"
	"time"
)

// Breakdown is the remaining time split into display fields.
type Breakdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Expired bool
}

// Until computes the breakdown of target relative to now.
// Once the target has passed, all fields are zero and Expired is set.
func Until(target, now time.Time) Breakdown {
	diff := target.Sub(now)
	if diff <= 0 {
		return Breakdown{Expired: true}
	}

	total := int(diff / time.Second)

	return Breakdown{
		Days:    total / 86400,
		Hours:   (total % 86400) / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

// Watch recomputes the breakdown once per second and passes it to fn,
// starting with an immediate tick. It returns when the target expires
// (after delivering the expired breakdown) or when ctx is cancelled.
func Watch(ctx context.Context, target time.Time, fn func(Breakdown)) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		b := Until(target, time.Now())
		fn(b)
		if b.Expired {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
