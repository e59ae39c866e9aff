package dialview

import (
	"image/color"
	"math"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

const (
	minuteMarks = 60
	labelEvery  = 5
	minDialSide = float32(220)
)

type dialRenderer struct {
	dial     *Dial
	face     *canvas.Circle
	ticks    []*canvas.Line
	labels   []*canvas.Text
	segments []*canvas.Line
	filled   []bool
	hand     *canvas.Line
	hub      *canvas.Circle
	objects  []fyne.CanvasObject
	size     fyne.Size
}

func newRenderer(dial *Dial) *dialRenderer {
	palette := dial.palette

	face := canvas.NewCircle(dial.faceColor)
	face.StrokeColor = palette.Rim
	face.StrokeWidth = 3

	count := dial.model.SegmentCount()
	visible := dial.model.VisibleSegments()
	segments := make([]*canvas.Line, count)
	filled := make([]bool, count)
	for index := range segments {
		segments[index] = canvas.NewLine(color.Transparent)
		if index < visible {
			segments[index].StrokeColor = palette.Filled
			filled[index] = true
		}
	}

	ticks := make([]*canvas.Line, minuteMarks)
	for index := range ticks {
		tick := canvas.NewLine(palette.Tick)
		tick.StrokeWidth = 1
		if index%labelEvery == 0 {
			tick.StrokeWidth = 2.5
		}
		ticks[index] = tick
	}

	labels := make([]*canvas.Text, minuteMarks/labelEvery)
	for index := range labels {
		label := canvas.NewText(strconv.Itoa(index*labelEvery), palette.Label)
		label.Alignment = fyne.TextAlignCenter
		label.TextStyle = fyne.TextStyle{Bold: true}
		label.TextSize = 14
		labels[index] = label
	}

	hand := canvas.NewLine(palette.Hand)
	hand.StrokeWidth = 4

	hub := canvas.NewCircle(palette.Hub)
	hub.StrokeColor = palette.Hand
	hub.StrokeWidth = 1.5

	objects := make([]fyne.CanvasObject, 0, 1+len(segments)+len(ticks)+len(labels)+2)
	objects = append(objects, face)
	for _, segment := range segments {
		objects = append(objects, segment)
	}
	for _, tick := range ticks {
		objects = append(objects, tick)
	}
	for _, label := range labels {
		objects = append(objects, label)
	}
	objects = append(objects, hand, hub)

	return &dialRenderer{
		dial:     dial,
		face:     face,
		ticks:    ticks,
		labels:   labels,
		segments: segments,
		filled:   filled,
		hand:     hand,
		hub:      hub,
		objects:  objects,
	}
}

func (renderer *dialRenderer) Destroy() {}

func (renderer *dialRenderer) Objects() []fyne.CanvasObject {
	return renderer.objects
}

func (renderer *dialRenderer) MinSize() fyne.Size {
	return fyne.NewSize(minDialSide, minDialSide)
}

func (renderer *dialRenderer) Layout(size fyne.Size) {
	renderer.size = size
	center, radius := Frame(size)

	renderer.face.Move(fyne.NewPos(center.X-radius, center.Y-radius))
	renderer.face.Resize(fyne.NewSize(radius*2, radius*2))

	for index, tick := range renderer.ticks {
		angle := 2 * math.Pi * float64(index) / minuteMarks
		inner := radius * 0.9
		if index%labelEvery == 0 {
			inner = radius * 0.84
		}
		tick.Position1 = Polar(center, inner, angle)
		tick.Position2 = Polar(center, radius*0.98, angle)
	}

	for index, label := range renderer.labels {
		angle := 2 * math.Pi * float64(index*labelEvery) / minuteMarks
		anchor := Polar(center, radius*0.72, angle)
		labelSize := label.MinSize()
		label.Move(fyne.NewPos(anchor.X-labelSize.Width/2, anchor.Y-labelSize.Height/2))
		label.Resize(labelSize)
	}

	count := len(renderer.segments)
	if count > 0 {
		pieRadius := radius * pieFraction
		width := float32(2*math.Pi)*pieRadius/float32(count) + 1
		inner := radius * hubFraction
		for index, segment := range renderer.segments {
			angle := 2 * math.Pi * (float64(index) + 0.5) / float64(count)
			segment.Position1 = Polar(center, inner, angle)
			segment.Position2 = Polar(center, pieRadius, angle)
			segment.StrokeWidth = width
		}
	}

	hubRadius := radius * hubFraction
	renderer.hub.Move(fyne.NewPos(center.X-hubRadius, center.Y-hubRadius))
	renderer.hub.Resize(fyne.NewSize(hubRadius*2, hubRadius*2))

	renderer.layoutHand(center, radius)
}

func (renderer *dialRenderer) Refresh() {
	if renderer.face.FillColor != renderer.dial.faceColor {
		renderer.face.FillColor = renderer.dial.faceColor
		renderer.face.Refresh()
	}

	visible := renderer.dial.model.VisibleSegments()
	fill := renderer.dial.palette.Filled
	for index, segment := range renderer.segments {
		filled := index < visible
		if filled == renderer.filled[index] {
			continue
		}
		renderer.filled[index] = filled
		if filled {
			segment.StrokeColor = fill
		} else {
			segment.StrokeColor = color.Transparent
		}
		segment.Refresh()
	}

	center, radius := Frame(renderer.size)
	renderer.layoutHand(center, radius)
	renderer.hand.Refresh()
}

func (renderer *dialRenderer) layoutHand(center fyne.Position, radius float32) {
	renderer.hand.Position1 = center
	renderer.hand.Position2 = HandTip(center, radius*handFraction, renderer.dial.model.HandAngle())
}
