package dial

import (
	"errors"
	"math"
	"time"

	"dialtimer/internal/core/model"
)

var (
	// ErrDurationOutOfRange is returned when the requested minutes fall outside the dial.
	ErrDurationOutOfRange = errors.New("duration out of range")
	// ErrTimeScaleOutOfRange is returned when the requested speed-up is not supported.
	ErrTimeScaleOutOfRange = errors.New("time scale out of range")
)

// Snapshot is a read-only copy of the timer state and its derived values.
type Snapshot struct {
	DurationSeconds  float64
	RemainingSeconds float64
	Running          bool
	TimeScale        float64
	State            State
	HandAngle        float64
	VisibleSegments  int
	Display          string
	Progress         float64
}

// Timer holds countdown state and maps it to a dial hand and progress segments.
// It is not safe for concurrent use; the owner serializes ticks and input.
type Timer struct {
	config model.TimerConfig

	durationSeconds  float64
	remainingSeconds float64
	running          bool
	timeScale        float64
	lastTick         time.Time

	handAngle float64
	visible   int
	segments  []bool

	dragging  bool
	dragAngle float64

	listeners []Listener
}

// New creates a Timer with the provided configuration.
func New(config model.TimerConfig) *Timer {
	config = normalizeConfig(config)

	timer := &Timer{
		config:          config,
		durationSeconds: float64(config.DefaultMinutes * 60),
		timeScale:       float64(config.DefaultTimeScale),
		segments:        make([]bool, config.SegmentCount),
	}
	timer.remainingSeconds = timer.durationSeconds
	timer.recompute()
	return timer
}

func normalizeConfig(config model.TimerConfig) model.TimerConfig {
	defaults := model.DefaultTimerConfig()
	if config.MaxDuration <= 0 {
		config.MaxDuration = defaults.MaxDuration
	}
	if config.SegmentCount <= 0 {
		config.SegmentCount = defaults.SegmentCount
	}
	if config.MinMinutes <= 0 {
		config.MinMinutes = defaults.MinMinutes
	}
	maxMinutes := int(config.MaxDuration / time.Minute)
	if config.MaxMinutes <= 0 || config.MaxMinutes > maxMinutes {
		config.MaxMinutes = maxMinutes
	}
	if config.MinMinutes > config.MaxMinutes {
		config.MinMinutes = config.MaxMinutes
	}
	if config.DefaultMinutes < config.MinMinutes || config.DefaultMinutes > config.MaxMinutes {
		config.DefaultMinutes = clampInt(defaults.DefaultMinutes, config.MinMinutes, config.MaxMinutes)
	}
	if config.MinTimeScale <= 0 {
		config.MinTimeScale = defaults.MinTimeScale
	}
	if config.MaxTimeScale < config.MinTimeScale {
		config.MaxTimeScale = max(defaults.MaxTimeScale, config.MinTimeScale)
	}
	if config.DefaultTimeScale < config.MinTimeScale || config.DefaultTimeScale > config.MaxTimeScale {
		config.DefaultTimeScale = config.MinTimeScale
	}
	return config
}

// Config returns the effective configuration.
func (timer *Timer) Config() model.TimerConfig {
	return timer.config
}

// Subscribe registers a listener for timer events.
func (timer *Timer) Subscribe(listener Listener) {
	if listener == nil {
		return
	}
	timer.listeners = append(timer.listeners, listener)
}

// SetDuration sets a new countdown length in whole minutes and stops the timer.
func (timer *Timer) SetDuration(minutes int) error {
	if minutes < timer.config.MinMinutes || minutes > timer.config.MaxMinutes {
		return ErrDurationOutOfRange
	}
	timer.durationSeconds = float64(minutes * 60)
	timer.remainingSeconds = timer.durationSeconds
	timer.running = false
	timer.recompute()
	timer.emitStateChange(time.Now())
	return nil
}

// SetTimeScale sets the multiplier applied to wall-clock time on later ticks.
func (timer *Timer) SetTimeScale(scale int) error {
	if scale < timer.config.MinTimeScale || scale > timer.config.MaxTimeScale {
		return ErrTimeScaleOutOfRange
	}
	timer.timeScale = float64(scale)
	return nil
}

// ToggleRun starts or pauses the countdown and reports whether it is running.
// A finished countdown stays stopped until it is reset.
func (timer *Timer) ToggleRun(now time.Time) bool {
	if timer.running {
		timer.running = false
		timer.emitStateChange(now)
		return false
	}
	if timer.remainingSeconds <= 0 {
		return false
	}
	timer.running = true
	timer.lastTick = now
	timer.emitStateChange(now)
	return true
}

// Reset restores the full duration and stops the countdown.
func (timer *Timer) Reset() {
	timer.remainingSeconds = timer.durationSeconds
	timer.running = false
	timer.recompute()
	timer.emitStateChange(time.Now())
}

// Tick advances the countdown to now. It has no effect on the remaining time
// while the timer is stopped.
func (timer *Timer) Tick(now time.Time) {
	wasRunning := timer.running
	finished := false
	if timer.running {
		delta := now.Sub(timer.lastTick).Seconds() * timer.timeScale
		if delta < 0 {
			delta = 0
		}
		timer.remainingSeconds = math.Max(0, timer.remainingSeconds-delta)
		timer.lastTick = now
		if timer.remainingSeconds == 0 {
			timer.running = false
			finished = true
		}
	}
	timer.recompute()

	if !wasRunning {
		return
	}
	timer.emit(Event{
		Type:      EventProgress,
		State:     timer.State(),
		Remaining: timer.Remaining(),
		Progress:  timer.Progress(),
		At:        now,
	})
	if finished {
		timer.emit(Event{
			Type:     EventFinished,
			State:    StateFinished,
			Progress: 1,
			Message:  "countdown finished",
			At:       now,
		})
	}
}

// BeginDrag opens a drag session on the hand.
func (timer *Timer) BeginDrag() {
	timer.dragging = true
	timer.dragAngle = timer.handAngle
}

// DragSetAngle shows the pointer angle on the hand during a drag session.
// The remaining time is left unchanged.
func (timer *Timer) DragSetAngle(pointerAngle float64) {
	if !timer.dragging {
		return
	}
	timer.dragAngle = DragHandAngle(pointerAngle)
}

// EndDrag closes the drag session and returns the hand to the countdown.
func (timer *Timer) EndDrag() {
	timer.dragging = false
}

// Dragging reports whether a drag session is active.
func (timer *Timer) Dragging() bool {
	return timer.dragging
}

// Running reports whether the countdown is active.
func (timer *Timer) Running() bool {
	return timer.running
}

// State derives the countdown mode from the flags.
func (timer *Timer) State() State {
	switch {
	case timer.running:
		return StateRunning
	case timer.remainingSeconds <= 0:
		return StateFinished
	case timer.remainingSeconds >= timer.durationSeconds:
		return StateIdle
	default:
		return StatePaused
	}
}

// DurationSeconds returns the configured countdown length.
func (timer *Timer) DurationSeconds() float64 {
	return timer.durationSeconds
}

// RemainingSeconds returns the time left on the countdown.
func (timer *Timer) RemainingSeconds() float64 {
	return timer.remainingSeconds
}

// Remaining returns the time left as a Duration.
func (timer *Timer) Remaining() time.Duration {
	return time.Duration(timer.remainingSeconds * float64(time.Second))
}

// TimeScale returns the active time multiplier.
func (timer *Timer) TimeScale() float64 {
	return timer.timeScale
}

// HandAngle returns the hand direction, or the dragged angle during a drag session.
func (timer *Timer) HandAngle() float64 {
	if timer.dragging {
		return timer.dragAngle
	}
	return timer.handAngle
}

// VisibleSegments returns the number of filled progress segments.
func (timer *Timer) VisibleSegments() int {
	return timer.visible
}

// SegmentCount returns the total number of progress segments.
func (timer *Timer) SegmentCount() int {
	return len(timer.segments)
}

// Segments returns a copy of the filled flags, ordered clockwise from 12 o'clock.
func (timer *Timer) Segments() []bool {
	return append([]bool(nil), timer.segments...)
}

// Display returns the remaining time as MM:SS.
func (timer *Timer) Display() string {
	return FormatDisplay(timer.remainingSeconds)
}

// Progress returns the elapsed fraction of the current duration.
func (timer *Timer) Progress() float64 {
	if timer.durationSeconds <= 0 {
		return 1
	}
	progress := (timer.durationSeconds - timer.remainingSeconds) / timer.durationSeconds
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Snapshot returns a copy of the current state.
func (timer *Timer) Snapshot() Snapshot {
	return Snapshot{
		DurationSeconds:  timer.durationSeconds,
		RemainingSeconds: timer.remainingSeconds,
		Running:          timer.running,
		TimeScale:        timer.timeScale,
		State:            timer.State(),
		HandAngle:        timer.HandAngle(),
		VisibleSegments:  timer.visible,
		Display:          timer.Display(),
		Progress:         timer.Progress(),
	}
}

func (timer *Timer) recompute() {
	maxSeconds := timer.config.MaxSeconds()
	timer.handAngle = HandAngle(timer.durationSeconds, timer.remainingSeconds, maxSeconds)
	timer.visible = VisibleSegmentCount(timer.remainingSeconds, maxSeconds, len(timer.segments))
	FillSegments(timer.segments, timer.visible)
}

func (timer *Timer) emitStateChange(now time.Time) {
	timer.emit(Event{
		Type:      EventStateChange,
		State:     timer.State(),
		Remaining: timer.Remaining(),
		Progress:  timer.Progress(),
		At:        now,
	})
}

func (timer *Timer) emit(event Event) {
	for _, listener := range timer.listeners {
		listener(event)
	}
}

func clampInt(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
