package animation

import (
	"context"
	"image/color"
	"math/rand"
	"sync"
	"time"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// Config contains flash timing values.
type Config struct {
	OnDuration  Range
	OffDuration Range
	Cycles      int
}

// FlashSpec defines the two face colours alternated by a flash.
// Rest is painted when the flash ends or is cancelled.
type FlashSpec struct {
	On   color.Color
	Off  color.Color
	Rest color.Color
}

// Engine alternates the dial face colour when a countdown finishes.
type Engine struct {
	mu     sync.Mutex
	config Config
	paint  func(color.Color)
	cancel context.CancelFunc
	rng    *rand.Rand

	// generation identifies the latest Flash; replaced runs skip the rest paint.
	generation uint64
}

// New creates a flash engine that reports colours through paint.
func New(config Config, paint func(color.Color)) *Engine {
	if config.Cycles <= 0 {
		config.Cycles = DefaultConfig().Cycles
	}
	return &Engine{
		config: config,
		paint:  paint,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Flash starts a flash sequence, replacing any running one. The returned
// channel is closed when the sequence ends; only the newest sequence paints
// the rest colour.
func (engine *Engine) Flash(ctx context.Context, spec FlashSpec) <-chan struct{} {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	engine.cancel = cancel
	engine.generation++
	generation := engine.generation
	engine.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()
		engine.run(runCtx, spec)
		engine.rest(generation, spec.Rest)
	}()
	return done
}

// rest paints the rest colour unless a newer flash has taken over.
func (engine *Engine) rest(generation uint64, fill color.Color) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if generation != engine.generation {
		return
	}
	engine.paint(fill)
}

// Stop terminates any active flash.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func (engine *Engine) run(ctx context.Context, spec FlashSpec) {
	for cycle := 0; cycle < engine.config.Cycles; cycle++ {
		engine.paint(spec.On)
		if !sleepWithContext(ctx, engine.sample(engine.config.OnDuration)) {
			return
		}
		engine.paint(spec.Off)
		if !sleepWithContext(ctx, engine.sample(engine.config.OffDuration)) {
			return
		}
	}
}

func (engine *Engine) sample(value Range) time.Duration {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return value.Random(engine.rng)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
