package dialview

import (
	"image/color"
	"math"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"dialtimer/internal/core/dial"
	"dialtimer/internal/core/model"
)

func newTestDial(t *testing.T) (*Dial, *dial.Timer) {
	t.Helper()
	test.NewTempApp(t)

	timer := dial.New(model.DefaultTimerConfig())
	view := New(timer)
	view.Resize(fyne.NewSize(200, 200))
	return view, timer
}

func primaryDown(position fyne.Position) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: position},
		Button:     desktop.MouseButtonPrimary,
	}
}

func handMidpoint(view *Dial, handAngle float64) fyne.Position {
	center, radius := Frame(view.Size())
	tip := HandTip(center, radius*handFraction, handAngle)
	return fyne.NewPos((center.X+tip.X)/2, (center.Y+tip.Y)/2)
}

// TestDragOnHand checks that grabbing the hand drives the model's drag session.
func TestDragOnHand(t *testing.T) {
	view, timer := newTestDial(t)
	starts, ends := 0, 0
	view.OnDragStart = func() { starts++ }
	view.OnDragEnd = func() { ends++ }

	view.MouseDown(primaryDown(handMidpoint(view, timer.HandAngle())))
	require.True(t, view.Dragging())
	require.True(t, timer.Dragging())
	require.Equal(t, 1, starts)

	center, _ := Frame(view.Size())
	view.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(center.X+50, center.Y)}})
	require.InDelta(t, 0, timer.HandAngle(), 1e-6)
	require.Equal(t, 1500.0, timer.RemainingSeconds())

	view.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(center.X-1, center.Y-90)}})
	require.InDelta(t, math.Pi/2, timer.HandAngle(), 1e-6)

	view.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: Polar(center, 50, 11*math.Pi/6)}})
	require.InDelta(t, math.Pi/2, timer.HandAngle(), 1e-6)

	view.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: Polar(center, 50, 7*math.Pi/6)}})
	require.InDelta(t, -math.Pi/2, timer.HandAngle(), 1e-6)

	view.DragEnd()
	view.MouseUp(primaryDown(center))
	require.False(t, view.Dragging())
	require.False(t, timer.Dragging())
	require.Equal(t, 1, ends)
	require.InDelta(t, math.Pi/2-2*math.Pi*(25.0/60.0), timer.HandAngle(), 1e-9)
}

// TestDragOffHandIgnored ensures presses away from the hand do nothing.
func TestDragOffHandIgnored(t *testing.T) {
	view, timer := newTestDial(t)

	view.MouseDown(primaryDown(fyne.NewPos(2, 2)))
	require.False(t, view.Dragging())

	view.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(100, 10)}})
	require.False(t, timer.Dragging())
	require.InDelta(t, math.Pi/2-2*math.Pi*(25.0/60.0), timer.HandAngle(), 1e-9)
}

// TestSecondaryButtonIgnored ensures only the primary button grabs the hand.
func TestSecondaryButtonIgnored(t *testing.T) {
	view, timer := newTestDial(t)

	event := primaryDown(handMidpoint(view, timer.HandAngle()))
	event.Button = desktop.MouseButtonSecondary
	view.MouseDown(event)
	require.False(t, view.Dragging())
}

// TestSetFaceColor checks recolouring and the palette fallback.
func TestSetFaceColor(t *testing.T) {
	view, _ := newTestDial(t)

	red := color.NRGBA{R: 255, A: 255}
	view.SetFaceColor(red)
	require.Equal(t, color.Color(red), view.FaceColor())

	view.SetFaceColor(nil)
	require.Equal(t, view.Palette().Face, view.FaceColor())
}

// TestRendererTracksSegments verifies filled segments follow the model.
func TestRendererTracksSegments(t *testing.T) {
	view, timer := newTestDial(t)
	renderer := newRenderer(view)
	renderer.Layout(fyne.NewSize(200, 200))

	require.Len(t, renderer.segments, 360)
	require.Equal(t, view.Palette().Filled, renderer.segments[149].StrokeColor)
	require.Equal(t, color.Color(color.Transparent), renderer.segments[150].StrokeColor)

	require.NoError(t, timer.SetDuration(5))
	renderer.Refresh()
	require.Equal(t, view.Palette().Filled, renderer.segments[29].StrokeColor)
	require.Equal(t, color.Color(color.Transparent), renderer.segments[30].StrokeColor)

	center, radius := Frame(fyne.NewSize(200, 200))
	require.Equal(t, center, renderer.hand.Position1)
	require.Equal(t, HandTip(center, radius*handFraction, timer.HandAngle()), renderer.hand.Position2)
}
