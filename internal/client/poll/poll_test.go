package poll

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRun_ImmediateThenCadence(t *testing.T) {
	// Scaled down: a 30ms interval over a ~95ms window stands in for
	// 30s over 90s. One immediate call plus three ticks.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan struct{})

	go func() {
		defer close(done)
		Run(ctx, 30*time.Millisecond, func(context.Context) {
			calls.Add(1)
		})
	}()

	time.Sleep(95 * time.Millisecond)
	cancel()
	<-done

	got := calls.Load()
	assert.GreaterOrEqual(t, got, int32(3))
	assert.LessOrEqual(t, got, int32(4))

	// no further invocations after teardown
	after := calls.Load()
	time.Sleep(70 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}

func TestRun_CancelledBeforeFirstTick(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int32
	done := make(chan struct{})

	go func() {
		defer close(done)
		Run(ctx, time.Hour, func(context.Context) {
			calls.Add(1)
		})
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop on cancellation")
	}

	// only the immediate call happened
	assert.Equal(t, int32(1), calls.Load())
}

func TestRun_ContextReachesFetch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	Run(ctx, time.Hour, func(inner context.Context) {
		assert.Equal(t, ctx, inner)
		cancel()
	})
}
