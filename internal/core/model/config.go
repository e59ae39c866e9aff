package model

import "time"

const (
	// MaxDurationSeconds is the span of one full dial rotation.
	MaxDurationSeconds = 3600
	// SegmentCount is the number of progress slices around the dial.
	SegmentCount = 360
)

// TimerConfig contains the bounds and defaults for the dial timer model.
type TimerConfig struct {
	MaxDuration  time.Duration
	SegmentCount int

	DefaultMinutes int
	MinMinutes     int
	MaxMinutes     int

	DefaultTimeScale int
	MinTimeScale     int
	MaxTimeScale     int
}

// DefaultTimerConfig returns a 60-minute dial with a 25-minute countdown.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		MaxDuration:      MaxDurationSeconds * time.Second,
		SegmentCount:     SegmentCount,
		DefaultMinutes:   25,
		MinMinutes:       1,
		MaxMinutes:       60,
		DefaultTimeScale: 1,
		MinTimeScale:     1,
		MaxTimeScale:     100,
	}
}

// MaxSeconds returns MaxDuration in seconds.
func (config TimerConfig) MaxSeconds() float64 {
	return config.MaxDuration.Seconds()
}
