package dialview

import (
	"math"

	"fyne.io/fyne/v2"
)

const (
	rimFraction    = float32(0.94)
	handFraction   = float32(0.78)
	pieFraction    = float32(0.62)
	hubFraction    = float32(0.06)
	minHitDistance = float32(8)
)

// Frame returns the dial centre and radius for a widget of the given size.
func Frame(size fyne.Size) (fyne.Position, float32) {
	side := size.Width
	if size.Height < side {
		side = size.Height
	}
	if side < 0 {
		side = 0
	}
	return fyne.NewPos(size.Width/2, size.Height/2), side / 2 * rimFraction
}

// Polar returns the point at radius from center along a clock angle
// (0 at 12 o'clock, clockwise, radians).
func Polar(center fyne.Position, radius float32, clockAngle float64) fyne.Position {
	x := float64(center.X) + float64(radius)*math.Sin(clockAngle)
	y := float64(center.Y) - float64(radius)*math.Cos(clockAngle)
	return fyne.NewPos(float32(x), float32(y))
}

// HandTip returns the end of a hand of the given length. handAngle uses the
// model convention: pi/2 at 12 o'clock, decreasing clockwise.
func HandTip(center fyne.Position, length float32, handAngle float64) fyne.Position {
	return Polar(center, length, math.Pi/2-handAngle)
}

// PointerAngle converts a pointer position to a clock angle in [0, 2pi).
func PointerAngle(center, pointer fyne.Position) float64 {
	dx := float64(pointer.X - center.X)
	dy := float64(pointer.Y - center.Y)
	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// HitHand reports whether pointer lies within tolerance of the hand segment.
func HitHand(center, tip, pointer fyne.Position, tolerance float32) bool {
	return distanceToSegment(pointer, center, tip) <= float64(tolerance)
}

func hitTolerance(radius float32) float32 {
	tolerance := radius * 0.08
	if tolerance < minHitDistance {
		return minHitDistance
	}
	return tolerance
}

func distanceToSegment(point, start, end fyne.Position) float64 {
	px, py := float64(point.X), float64(point.Y)
	sx, sy := float64(start.X), float64(start.Y)
	ex, ey := float64(end.X), float64(end.Y)

	dx, dy := ex-sx, ey-sy
	lengthSquared := dx*dx + dy*dy
	if lengthSquared == 0 {
		return math.Hypot(px-sx, py-sy)
	}
	t := ((px-sx)*dx + (py-sy)*dy) / lengthSquared
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(sx+t*dx), py-(sy+t*dy))
}
