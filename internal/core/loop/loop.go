package loop

import (
	"context"
	"sync"
	"time"
)

// DefaultFrameRate is used when no interval is configured.
const DefaultFrameRate = 60

// FrameFunc is invoked once per frame with the frame timestamp.
type FrameFunc func(now time.Time)

// Config contains runtime options for Loop.
type Config struct {
	Interval time.Duration
	// Dispatch runs a frame on the goroutine that owns the model.
	// Nil runs frames inline on the loop goroutine.
	Dispatch func(func())
	Clock    Clock
}

// Loop drives a frame callback at a fixed interval.
type Loop struct {
	mu      sync.Mutex
	config  Config
	frame   FrameFunc
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// IntervalForRate converts frames per second to a tick interval.
func IntervalForRate(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFrameRate
	}
	return time.Second / time.Duration(fps)
}

// New creates a Loop that calls frame on every tick.
func New(config Config, frame FrameFunc) *Loop {
	if config.Interval <= 0 {
		config.Interval = IntervalForRate(DefaultFrameRate)
	}
	if config.Dispatch == nil {
		config.Dispatch = func(run func()) { run() }
	}
	if config.Clock == nil {
		config.Clock = RealClock{}
	}
	return &Loop{
		config: config,
		frame:  frame,
	}
}

// Now returns the loop's notion of the current time.
func (loop *Loop) Now() time.Time {
	return loop.config.Clock.Now()
}

// Interval returns the frame interval.
func (loop *Loop) Interval() time.Duration {
	return loop.config.Interval
}

// Start launches the frame goroutine.
func (loop *Loop) Start() {
	loop.mu.Lock()
	defer loop.mu.Unlock()
	if loop.running {
		return
	}
	loop.running = true
	loop.stopCh = make(chan struct{})
	loop.doneCh = make(chan struct{})

	ticker := loop.config.Clock.NewTicker(loop.config.Interval)
	go loop.run(ticker, loop.stopCh, loop.doneCh)
}

// Stop terminates the frame goroutine and waits for it to exit.
// It must not be called from a frame running inline on the loop goroutine.
func (loop *Loop) Stop() {
	loop.mu.Lock()
	if !loop.running {
		loop.mu.Unlock()
		return
	}
	close(loop.stopCh)
	loop.running = false
	done := loop.doneCh
	loop.mu.Unlock()

	<-done
}

// Running reports whether the frame goroutine is active.
func (loop *Loop) Running() bool {
	loop.mu.Lock()
	defer loop.mu.Unlock()
	return loop.running
}

// Run delivers frames on the calling goroutine until ctx ends or maxFrames
// frames were delivered. Zero maxFrames runs until cancellation.
func (loop *Loop) Run(ctx context.Context, maxFrames uint64) error {
	ticker := loop.config.Clock.NewTicker(loop.config.Interval)
	defer ticker.Stop()

	var delivered uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C():
			loop.deliver(now)
			delivered++
			if maxFrames > 0 && delivered >= maxFrames {
				return nil
			}
		}
	}
}

func (loop *Loop) run(ticker Ticker, stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case now := <-ticker.C():
			loop.deliver(now)
		}
	}
}

func (loop *Loop) deliver(now time.Time) {
	if loop.frame == nil {
		return
	}
	loop.config.Dispatch(func() {
		loop.frame(now)
	})
}
