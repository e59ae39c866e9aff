package overlay

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"dialtimer/internal/core/dial"
)

// Config defines notice visuals.
type Config struct {
	Opacity uint8
	Title   string
	Message string
}

// DefaultConfig returns the notice shown when a countdown ends.
func DefaultConfig() Config {
	return Config{
		Opacity: 235,
		Title:   "Time's up",
		Message: "The countdown has finished.",
	}
}

// Window manages the finish notice UI.
type Window struct {
	window        fyne.Window
	titleLabel    *canvas.Text
	messageLabel  *canvas.Text
	durationLabel *canvas.Text
	restartButton *widget.Button
	dismissButton *widget.Button
	onRestart     func()
	onDismiss     func()
	visible       bool
}

const (
	noticeWidth  = float32(320)
	noticeHeight = float32(170)
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates a hidden notice window.
func New(app fyne.App, config Config) *Window {
	window := app.NewWindow(config.Title)
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{R: 24, G: 24, B: 28, A: config.Opacity})

	titleLabel := canvas.NewText(config.Title, color.NRGBA{R: 232, G: 190, B: 66, A: 255})
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 22

	messageLabel := canvas.NewText(config.Message, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	messageLabel.TextSize = 14

	durationLabel := canvas.NewText("", color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	durationLabel.TextSize = 13

	notice := &Window{
		window:        window,
		titleLabel:    titleLabel,
		messageLabel:  messageLabel,
		durationLabel: durationLabel,
	}

	notice.restartButton = widget.NewButton("Restart", func() {
		notice.Hide()
		if notice.onRestart != nil {
			notice.onRestart()
		}
	})
	notice.restartButton.Importance = widget.HighImportance
	notice.dismissButton = widget.NewButton("Dismiss", func() {
		notice.Hide()
		if notice.onDismiss != nil {
			notice.onDismiss()
		}
	})

	content := container.New(&noticeLayout{},
		titleLabel, messageLabel, durationLabel, notice.restartButton, notice.dismissButton)
	window.SetContent(container.NewStack(background, content))
	window.SetCloseIntercept(notice.Hide)
	window.Resize(fyne.NewSize(noticeWidth, noticeHeight))

	return notice
}

// Show presents the notice for a finished countdown of the given length.
func (notice *Window) Show(duration time.Duration) {
	notice.durationLabel.Text = fmt.Sprintf("%s countdown", dial.FormatDisplay(duration.Seconds()))
	notice.durationLabel.Refresh()
	notice.visible = true
	notice.window.Resize(fyne.NewSize(noticeWidth, noticeHeight))
	notice.window.CenterOnScreen()
	notice.window.Show()
	notice.window.RequestFocus()
}

// Hide closes the notice.
func (notice *Window) Hide() {
	notice.visible = false
	notice.window.Hide()
}

// Visible reports whether the notice is shown.
func (notice *Window) Visible() bool {
	return notice.visible
}

// SetOnRestart sets the restart handler.
func (notice *Window) SetOnRestart(handler func()) {
	notice.onRestart = handler
}

// SetOnDismiss sets the dismiss handler.
func (notice *Window) SetOnDismiss(handler func()) {
	notice.onDismiss = handler
}

// noticeLayout stacks three text rows on the left and two buttons along the bottom.
type noticeLayout struct{}

func (layout *noticeLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 5 {
		return
	}
	title := objects[0]
	message := objects[1]
	duration := objects[2]
	restart := objects[3]
	dismiss := objects[4]

	pad := size.Height * 0.08
	availableWidth := size.Width - pad*2
	if availableWidth < 0 {
		availableWidth = 0
	}

	y := pad
	for _, row := range []fyne.CanvasObject{title, message, duration} {
		rowSize := row.MinSize()
		row.Move(fyne.NewPos(pad, y))
		row.Resize(fyne.NewSize(availableWidth, rowSize.Height))
		y += rowSize.Height + 6
	}

	dismissSize := dismiss.MinSize()
	restartSize := restart.MinSize()
	buttonY := size.Height - pad - dismissSize.Height
	if buttonY < y {
		buttonY = y
	}
	dismissX := size.Width - pad - dismissSize.Width
	dismiss.Move(fyne.NewPos(dismissX, buttonY))
	dismiss.Resize(dismissSize)

	restartX := dismissX - 8 - restartSize.Width
	if restartX < pad {
		restartX = pad
	}
	restart.Move(fyne.NewPos(restartX, buttonY))
	restart.Resize(restartSize)
}

func (layout *noticeLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 5 {
		return fyne.NewSize(0, 0)
	}
	width := float32(0)
	height := float32(0)
	for _, row := range objects[:3] {
		rowSize := row.MinSize()
		if rowSize.Width > width {
			width = rowSize.Width
		}
		height += rowSize.Height + 6
	}
	restartSize := objects[3].MinSize()
	dismissSize := objects[4].MinSize()
	if buttons := restartSize.Width + dismissSize.Width + 8; buttons > width {
		width = buttons
	}
	buttonHeight := restartSize.Height
	if dismissSize.Height > buttonHeight {
		buttonHeight = dismissSize.Height
	}
	return fyne.NewSize(width+40, height+buttonHeight+40)
}
