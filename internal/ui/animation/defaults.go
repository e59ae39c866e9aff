package animation

import "time"

// DefaultConfig returns a short alarm-style blink.
func DefaultConfig() Config {
	return Config{
		OnDuration: Range{
			Min: 350 * time.Millisecond,
			Max: 450 * time.Millisecond,
		},
		OffDuration: Range{
			Min: 250 * time.Millisecond,
			Max: 300 * time.Millisecond,
		},
		Cycles: 6,
	}
}
