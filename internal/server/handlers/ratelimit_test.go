package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAttemptLimiter_ExhaustsBucket(t *testing.T) {
	l := newAttemptLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow(1), "attempt %d should pass", i)
	}
	assert.False(t, l.Allow(1))
}

func TestAttemptLimiter_PerUserBuckets(t *testing.T) {
	l := newAttemptLimiter(1, time.Minute)

	assert.True(t, l.Allow(1))
	assert.False(t, l.Allow(1))

	// A different user has their own bucket.
	assert.True(t, l.Allow(2))
}

func TestAttemptLimiter_RefillsAfterWindow(t *testing.T) {
	l := newAttemptLimiter(1, 10*time.Millisecond)

	assert.True(t, l.Allow(1))
	assert.False(t, l.Allow(1))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, l.Allow(1))
}
