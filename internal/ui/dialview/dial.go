package dialview

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// Model is the part of the timer the dial reads and drags.
type Model interface {
	HandAngle() float64
	VisibleSegments() int
	SegmentCount() int
	BeginDrag()
	DragSetAngle(pointerAngle float64)
	EndDrag()
}

// Palette defines dial colours.
type Palette struct {
	Face   color.Color
	Rim    color.Color
	Tick   color.Color
	Label  color.Color
	Filled color.Color
	Hand   color.Color
	Hub    color.Color
}

// DefaultPalette returns the light kitchen-timer look.
func DefaultPalette() Palette {
	return Palette{
		Face:   color.NRGBA{R: 250, G: 248, B: 242, A: 255},
		Rim:    color.NRGBA{R: 60, G: 60, B: 66, A: 255},
		Tick:   color.NRGBA{R: 70, G: 70, B: 76, A: 255},
		Label:  color.NRGBA{R: 40, G: 40, B: 46, A: 255},
		Filled: color.NRGBA{R: 222, G: 64, B: 52, A: 230},
		Hand:   color.NRGBA{R: 30, G: 30, B: 34, A: 255},
		Hub:    color.NRGBA{R: 232, G: 190, B: 66, A: 255},
	}
}

// Dial renders the countdown as an analog face and turns pointer input on
// the hand into drag calls on the model.
type Dial struct {
	widget.BaseWidget

	model     Model
	palette   Palette
	faceColor color.Color
	dragging  bool

	OnDragStart func()
	OnDragEnd   func()
}

// New creates a dial bound to model.
func New(model Model) *Dial {
	dial := &Dial{
		model:   model,
		palette: DefaultPalette(),
	}
	dial.faceColor = dial.palette.Face
	dial.ExtendBaseWidget(dial)
	return dial
}

// CreateRenderer implements fyne.Widget.
func (dial *Dial) CreateRenderer() fyne.WidgetRenderer {
	return newRenderer(dial)
}

// SetFaceColor recolours the face, used by the finish flash.
func (dial *Dial) SetFaceColor(fill color.Color) {
	if fill == nil {
		fill = dial.palette.Face
	}
	dial.faceColor = fill
	dial.Refresh()
}

// FaceColor returns the current face colour.
func (dial *Dial) FaceColor() color.Color {
	return dial.faceColor
}

// Palette returns the dial colours.
func (dial *Dial) Palette() Palette {
	return dial.palette
}

// Dragging reports whether the hand is being dragged.
func (dial *Dial) Dragging() bool {
	return dial.dragging
}

// MouseDown starts a drag session when the primary button lands on the hand.
func (dial *Dial) MouseDown(event *desktop.MouseEvent) {
	if event.Button != desktop.MouseButtonPrimary || dial.dragging {
		return
	}
	center, radius := Frame(dial.Size())
	tip := HandTip(center, radius*handFraction, dial.model.HandAngle())
	if !HitHand(center, tip, event.Position, hitTolerance(radius)) {
		return
	}

	dial.dragging = true
	dial.model.BeginDrag()
	if dial.OnDragStart != nil {
		dial.OnDragStart()
	}
}

// MouseUp ends a drag session that never moved.
func (dial *Dial) MouseUp(*desktop.MouseEvent) {
	dial.endDrag()
}

// Dragged moves the hand to the pointer.
func (dial *Dial) Dragged(event *fyne.DragEvent) {
	if !dial.dragging {
		return
	}
	center, _ := Frame(dial.Size())
	dial.model.DragSetAngle(PointerAngle(center, event.Position))
	dial.Refresh()
}

// DragEnd closes the drag session.
func (dial *Dial) DragEnd() {
	dial.endDrag()
}

func (dial *Dial) endDrag() {
	if !dial.dragging {
		return
	}
	dial.dragging = false
	dial.model.EndDrag()
	dial.Refresh()
	if dial.OnDragEnd != nil {
		dial.OnDragEnd()
	}
}
