package dial

import "time"

// State represents the current countdown mode.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StatePaused   State = "paused"
	StateFinished State = "finished"
)

// EventType defines the type of timer event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventFinished    EventType = "finished"
)

// Event represents a timer update for observers.
type Event struct {
	Type      EventType
	State     State
	Remaining time.Duration
	Progress  float64
	Message   string
	At        time.Time
}

// Listener receives timer events on the goroutine that mutated the timer.
type Listener func(Event)
