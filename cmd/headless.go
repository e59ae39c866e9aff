package main

import (
	"context"
	"errors"
	"math"
	"time"

	"dialtimer/internal/core/dial"
	"dialtimer/internal/core/loop"
	"dialtimer/internal/logger"
	"dialtimer/internal/ui/preferences"
)

// runHeadless counts down on the calling goroutine and logs the display once
// per displayed second. It returns nil when the countdown finishes and the
// context error when interrupted.
func runHeadless(ctx context.Context, settings preferences.Settings, clock loop.Clock) error {
	ctx = logger.WithName(ctx, "headless")
	timer := dial.New(settings.TimerConfig())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	finished := false
	timer.Subscribe(func(event dial.Event) {
		if event.Type == dial.EventFinished {
			finished = true
			cancel()
		}
	})

	lastSecond := math.Inf(1)
	frames := loop.New(loop.Config{
		Interval: settings.FrameInterval(),
		Clock:    clock,
	}, func(now time.Time) {
		timer.Tick(now)
		second := math.Floor(timer.RemainingSeconds())
		if second == lastSecond {
			return
		}
		lastSecond = second
		logger.InfoKV(ctx, timer.Display(), "state", timer.State())
	})

	logger.InfoKV(ctx, "Countdown started",
		"minutes", settings.DefaultMinutes,
		"scale", settings.TimeScale,
		"fps", settings.FrameRate,
	)
	timer.ToggleRun(frames.Now())

	err := frames.Run(ctx, 0)
	if finished {
		logger.Infof(ctx, "Countdown finished")
		return nil
	}
	if errors.Is(err, context.Canceled) {
		logger.InfoKV(ctx, "Countdown interrupted", "remaining", timer.Display())
	}
	return err
}
