package preferences

import (
	"time"

	"dialtimer/internal/core/loop"
	"dialtimer/internal/core/model"
)

const (
	minFrameRate = 1
	maxFrameRate = 120
)

// Settings defines editable user preferences.
type Settings struct {
	DefaultMinutes int
	TimeScale      int
	FrameRate      int

	FlashOnFinish  bool
	ShowNotice     bool
	NotifyOnFinish bool
}

// DefaultSettings returns default settings for DialTimer.
func DefaultSettings() Settings {
	return Settings{
		DefaultMinutes: 25,
		TimeScale:      1,
		FrameRate:      loop.DefaultFrameRate,
		FlashOnFinish:  true,
		ShowNotice:     true,
		NotifyOnFinish: false,
	}
}

// Normalize replaces out-of-range values with defaults.
func (settings Settings) Normalize() Settings {
	defaults := DefaultSettings()
	bounds := model.DefaultTimerConfig()
	if settings.DefaultMinutes < bounds.MinMinutes || settings.DefaultMinutes > bounds.MaxMinutes {
		settings.DefaultMinutes = defaults.DefaultMinutes
	}
	if settings.TimeScale < bounds.MinTimeScale || settings.TimeScale > bounds.MaxTimeScale {
		settings.TimeScale = defaults.TimeScale
	}
	if settings.FrameRate < minFrameRate || settings.FrameRate > maxFrameRate {
		settings.FrameRate = defaults.FrameRate
	}
	return settings
}

// TimerConfig converts settings to a model.TimerConfig.
func (settings Settings) TimerConfig() model.TimerConfig {
	settings = settings.Normalize()
	config := model.DefaultTimerConfig()
	config.DefaultMinutes = settings.DefaultMinutes
	config.DefaultTimeScale = settings.TimeScale
	return config
}

// FrameInterval returns the render loop interval.
func (settings Settings) FrameInterval() time.Duration {
	return loop.IntervalForRate(settings.Normalize().FrameRate)
}
