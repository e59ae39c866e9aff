package dial

import (
	"fmt"
	"math"
)

// HandAngle returns the hand direction in radians, counter-clockwise from
// 3 o'clock, so pi/2 is 12 o'clock and the hand moves clockwise as time runs out.
func HandAngle(durationSeconds, remainingSeconds, maxSeconds float64) float64 {
	if durationSeconds <= 0 || maxSeconds <= 0 {
		return math.Pi / 2
	}
	return math.Pi/2 - (durationSeconds/maxSeconds)*2*math.Pi*(remainingSeconds/durationSeconds)
}

// VisibleSegmentCount returns how many of total slices are filled for the
// remaining time on a dial spanning maxSeconds.
func VisibleSegmentCount(remainingSeconds, maxSeconds float64, total int) int {
	if remainingSeconds <= 0 || maxSeconds <= 0 || total <= 0 {
		return 0
	}
	count := int(math.Floor(remainingSeconds * float64(total) / maxSeconds))
	if count > total {
		return total
	}
	return count
}

// FillSegments marks segments [0, visible) as filled and clears the rest.
func FillSegments(segments []bool, visible int) {
	for index := range segments {
		segments[index] = index < visible
	}
}

// DragHandAngle maps a pointer angle (0 at 12 o'clock, clockwise) to a hand
// angle. The pointer is clamped to the first half turn; pointers on the left
// half snap to the nearer end, so the counter-clockwise side of 12 pins at 0.
func DragHandAngle(pointerAngle float64) float64 {
	if math.IsNaN(pointerAngle) || math.IsInf(pointerAngle, 0) {
		return math.Pi / 2
	}
	pointerAngle = math.Mod(pointerAngle, 2*math.Pi)
	if pointerAngle < 0 {
		pointerAngle += 2 * math.Pi
	}
	if pointerAngle > math.Pi {
		if pointerAngle < 3*math.Pi/2 {
			pointerAngle = math.Pi
		} else {
			pointerAngle = 0
		}
	}
	return math.Pi/2 - pointerAngle
}

// FormatDisplay renders remaining seconds as MM:SS.
func FormatDisplay(remainingSeconds float64) string {
	if remainingSeconds < 0 || math.IsNaN(remainingSeconds) {
		remainingSeconds = 0
	}
	minutes := int(math.Floor(remainingSeconds / 60))
	seconds := int(math.Floor(math.Mod(remainingSeconds, 60)))
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
