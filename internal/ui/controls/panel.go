package controls

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"dialtimer/internal/core/dial"
	"dialtimer/internal/core/model"
)

// Callbacks defines control panel action handlers.
type Callbacks struct {
	OnToggle    func()
	OnReset     func()
	OnDuration  func(minutes int)
	OnTimeScale func(scale int)
}

// Panel holds the buttons, sliders and digital readout below the dial.
type Panel struct {
	content       fyne.CanvasObject
	readout       *canvas.Text
	toggleButton  *widget.Button
	resetButton   *widget.Button
	duration      *widget.Slider
	durationEntry *widget.Entry
	scale         *widget.Slider
	scaleLabel    *widget.Label
	callbacks     Callbacks

	// updating suppresses slider callbacks while the panel mirrors the model.
	updating bool
	minutes  int
	factor   int
}

// New creates a control panel bounded by config.
func New(config model.TimerConfig, callbacks Callbacks) *Panel {
	panel := &Panel{callbacks: callbacks}

	panel.readout = canvas.NewText("--:--", color.NRGBA{R: 232, G: 190, B: 66, A: 255})
	panel.readout.Alignment = fyne.TextAlignCenter
	panel.readout.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	panel.readout.TextSize = 36

	panel.toggleButton = widget.NewButton("Start", func() {
		if panel.callbacks.OnToggle != nil {
			panel.callbacks.OnToggle()
		}
	})
	panel.toggleButton.Importance = widget.HighImportance
	panel.resetButton = widget.NewButton("Reset", func() {
		if panel.callbacks.OnReset != nil {
			panel.callbacks.OnReset()
		}
	})

	panel.duration = widget.NewSlider(float64(config.MinMinutes), float64(config.MaxMinutes))
	panel.duration.Step = 1
	panel.duration.OnChanged = func(value float64) {
		panel.durationEntry.SetText(strconv.Itoa(int(value)))
	}
	panel.duration.OnChangeEnded = func(value float64) {
		panel.submitDuration(int(math.Round(value)))
	}

	panel.durationEntry = widget.NewEntry()
	panel.durationEntry.OnSubmitted = func(text string) {
		minutes, err := strconv.Atoi(text)
		if err != nil {
			panel.durationEntry.SetText(strconv.Itoa(panel.minutes))
			return
		}
		panel.submitDuration(minutes)
	}

	panel.scale = widget.NewSlider(float64(config.MinTimeScale), float64(config.MaxTimeScale))
	panel.scale.Step = 1
	panel.scaleLabel = widget.NewLabel("")
	panel.scale.OnChanged = func(value float64) {
		panel.submitScale(int(math.Round(value)))
	}

	buttons := container.NewHBox(layout.NewSpacer(), panel.toggleButton, panel.resetButton, layout.NewSpacer())
	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Minutes"), container.NewBorder(nil, nil, nil, panel.durationEntry, panel.duration),
		widget.NewLabel("Speed"), container.NewBorder(nil, nil, nil, panel.scaleLabel, panel.scale),
	)
	panel.content = container.NewVBox(panel.readout, buttons, form)

	panel.minutes = config.DefaultMinutes
	panel.factor = config.DefaultTimeScale
	panel.mirror(config.DefaultMinutes, config.DefaultTimeScale)

	return panel
}

// Content returns the panel's canvas object.
func (panel *Panel) Content() fyne.CanvasObject {
	return panel.content
}

// Update mirrors a timer snapshot into the widgets.
func (panel *Panel) Update(snapshot dial.Snapshot) {
	if panel.readout.Text != snapshot.Display {
		panel.readout.Text = snapshot.Display
		panel.readout.Refresh()
	}

	label := "Start"
	switch snapshot.State {
	case dial.StateRunning:
		label = "Pause"
	case dial.StatePaused:
		label = "Resume"
	}
	if panel.toggleButton.Text != label {
		panel.toggleButton.SetText(label)
	}
	if snapshot.State == dial.StateFinished {
		panel.toggleButton.Disable()
	} else {
		panel.toggleButton.Enable()
	}

	minutes := int(math.Round(snapshot.DurationSeconds / 60))
	factor := int(math.Round(snapshot.TimeScale))
	if minutes != panel.minutes || factor != panel.factor {
		panel.minutes = minutes
		panel.factor = factor
		panel.mirror(minutes, factor)
	}
}

func (panel *Panel) mirror(minutes, factor int) {
	panel.updating = true
	defer func() { panel.updating = false }()

	panel.duration.SetValue(float64(minutes))
	panel.durationEntry.SetText(strconv.Itoa(minutes))
	panel.scale.SetValue(float64(factor))
	panel.scaleLabel.SetText(fmt.Sprintf("%3dx", factor))
}

func (panel *Panel) submitDuration(minutes int) {
	if panel.updating {
		return
	}
	if panel.callbacks.OnDuration != nil {
		panel.callbacks.OnDuration(minutes)
	}
	// Rejected values snap back to the last accepted duration.
	panel.mirror(panel.minutes, panel.factor)
}

func (panel *Panel) submitScale(factor int) {
	if panel.updating {
		return
	}
	panel.scaleLabel.SetText(fmt.Sprintf("%3dx", factor))
	if panel.callbacks.OnTimeScale != nil {
		panel.callbacks.OnTimeScale(factor)
	}
	panel.mirror(panel.minutes, panel.factor)
}
