package handlers

import (
	"sync"
	"time"
)

// attemptLimiter is a per-user token bucket guarding flag submissions.
// Exhausted buckets yield the "ratelimited" attempt status rather than an
// HTTP error, matching the closed attempt outcome enumeration.
type attemptLimiter struct {
	buckets map[int]*bucket
	rate    int
	window  time.Duration
	mu      sync.Mutex
}

type bucket struct {
	lastRefill time.Time
	tokens     int
}

// newAttemptLimiter allows rate submissions per user per window.
func newAttemptLimiter(rate int, window time.Duration) *attemptLimiter {
	return &attemptLimiter{
		buckets: make(map[int]*bucket),
		rate:    rate,
		window:  window,
	}
}

// Allow reports whether the user may submit another flag right now.
func (l *attemptLimiter) Allow(userID int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	b, ok := l.buckets[userID]
	if !ok {
		b = &bucket{tokens: l.rate, lastRefill: now}
		l.buckets[userID] = b
	}

	if now.Sub(b.lastRefill) >= l.window {
		b.tokens = l.rate
		b.lastRefill = now
	}

	if b.tokens > 0 {
		b.tokens--
		return true
	}

	return false
}
