package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPoller_RunsImmediatelyAndOnTicks(t *testing.T) {
	var calls atomic.Int32
	p := NewPoller(func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})

	p.Start(context.Background(), 20*time.Millisecond)
	defer p.Stop()

	require.Eventually(t, func() bool { return calls.Load() >= 3 },
		time.Second, 5*time.Millisecond)
}

func TestPoller_StopTerminatesGoroutine(t *testing.T) {
	var calls atomic.Int32
	p := NewPoller(func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})

	p.Start(context.Background(), 10*time.Millisecond)
	require.Eventually(t, func() bool { return calls.Load() >= 1 },
		time.Second, time.Millisecond)

	p.Stop()
	after := calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "no rounds may run after Stop returns")
}

func TestPoller_StopWithoutStart(t *testing.T) {
	p := NewPoller(func(ctx context.Context) error { return nil })
	p.Stop()
	p.Stop()
}

func TestPoller_ContextCancelStopsRounds(t *testing.T) {
	var calls atomic.Int32
	p := NewPoller(func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx, 10*time.Millisecond)
	cancel()
	p.Stop()

	after := calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}

func TestPoller_ErrorsDoNotStopTheJob(t *testing.T) {
	var calls atomic.Int32
	p := NewPoller(func(ctx context.Context) error {
		calls.Add(1)
		return errors.New("backend unavailable")
	})

	p.Start(context.Background(), 10*time.Millisecond)
	defer p.Stop()

	require.Eventually(t, func() bool { return calls.Load() >= 3 },
		time.Second, time.Millisecond)
}

func TestPoller_RestartReplacesJob(t *testing.T) {
	var first, second atomic.Int32
	p := NewPoller(func(ctx context.Context) error {
		first.Add(1)
		return nil
	})

	p.Start(context.Background(), 10*time.Millisecond)
	require.Eventually(t, func() bool { return first.Load() >= 1 },
		time.Second, time.Millisecond)

	// Swapping the poll function is not supported; restarting with the same
	// poller must first fully stop the old goroutine.
	p.fn = func(ctx context.Context) error {
		second.Add(1)
		return nil
	}
	p.Start(context.Background(), 10*time.Millisecond)
	defer p.Stop()

	require.Eventually(t, func() bool { return second.Load() >= 1 },
		time.Second, time.Millisecond)
}
