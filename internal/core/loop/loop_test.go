package loop

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeTicker struct {
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (t *fakeTicker) C() <-chan time.Time { return t.ch }

func (t *fakeTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

func (t *fakeTicker) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

type fakeClock struct {
	now      time.Time
	ticker   *fakeTicker
	interval time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{
		now:    time.Unix(0, 0),
		ticker: &fakeTicker{ch: make(chan time.Time)},
	}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) NewTicker(d time.Duration) Ticker {
	c.interval = d
	return c.ticker
}

// TestIntervalForRate verifies frame rate conversion and its default.
func TestIntervalForRate(t *testing.T) {
	t.Parallel()

	require.Equal(t, time.Second/60, IntervalForRate(0))
	require.Equal(t, time.Second/30, IntervalForRate(30))
	require.Equal(t, time.Second, IntervalForRate(1))
}

// TestRunDeliversFrames checks that Run stops after maxFrames.
func TestRunDeliversFrames(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	var frames []time.Time
	loop := New(Config{Interval: 10 * time.Millisecond, Clock: clock}, func(now time.Time) {
		frames = append(frames, now)
	})

	go func() {
		for i := 1; i <= 3; i++ {
			clock.ticker.ch <- time.Unix(int64(i), 0)
		}
	}()

	require.NoError(t, loop.Run(context.Background(), 3))
	require.Equal(t, 10*time.Millisecond, clock.interval)
	require.Equal(t, []time.Time{time.Unix(1, 0), time.Unix(2, 0), time.Unix(3, 0)}, frames)
	require.True(t, clock.ticker.isStopped())
}

// TestRunStopsOnCancel ensures Run returns the context error.
func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	loop := New(Config{Clock: newFakeClock()}, func(time.Time) {})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, loop.Run(ctx, 0), context.Canceled)
}

// TestStartUsesDispatch verifies frames go through the dispatcher and Stop is idempotent.
func TestStartUsesDispatch(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	var mu sync.Mutex
	dispatched := 0
	delivered := make(chan time.Time, 2)

	loop := New(Config{
		Clock: clock,
		Dispatch: func(run func()) {
			mu.Lock()
			dispatched++
			mu.Unlock()
			run()
		},
	}, func(now time.Time) {
		delivered <- now
	})

	loop.Start()
	loop.Start()
	require.True(t, loop.Running())

	clock.ticker.ch <- time.Unix(5, 0)
	clock.ticker.ch <- time.Unix(6, 0)
	require.Equal(t, time.Unix(5, 0), <-delivered)
	require.Equal(t, time.Unix(6, 0), <-delivered)

	loop.Stop()
	loop.Stop()
	require.False(t, loop.Running())
	require.True(t, clock.ticker.isStopped())

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 2, dispatched)
}

// TestNowUsesClock ensures the loop exposes its clock.
func TestNowUsesClock(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	clock.now = time.Unix(42, 0)
	loop := New(Config{Clock: clock}, nil)

	require.Equal(t, time.Unix(42, 0), loop.Now())
	require.Equal(t, time.Second/60, loop.Interval())
}
