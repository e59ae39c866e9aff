package preferences

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window    fyne.Window
	settings  Settings
	onSave    func(Settings)
	minutes   *widget.Entry
	timeScale *widget.Entry
	frameRate *widget.Entry
	flash     *widget.Check
	notice    *widget.Check
	notify    *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("DialTimer Settings")

	minutes := widget.NewEntry()
	timeScale := widget.NewEntry()
	frameRate := widget.NewEntry()

	flash := widget.NewCheck("Flash the dial when time is up", nil)
	notice := widget.NewCheck("Show a notice window when time is up", nil)
	notify := widget.NewCheck("Send a desktop notification", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Default countdown"), minutes, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Time scale"), timeScale, widget.NewLabel("x")),
		container.NewHBox(widget.NewLabel("Frame rate"), frameRate, widget.NewLabel("fps")),
		widget.NewLabelWithStyle("When time is up", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		flash,
		notice,
		notify,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 320))
	window.SetCloseIntercept(window.Hide)

	prefs := &Window{
		window:    window,
		onSave:    onSave,
		minutes:   minutes,
		timeScale: timeScale,
		frameRate: frameRate,
		flash:     flash,
		notice:    notice,
		notify:    notify,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.minutes.SetText(strconv.Itoa(settings.DefaultMinutes))
	prefs.timeScale.SetText(strconv.Itoa(settings.TimeScale))
	prefs.frameRate.SetText(strconv.Itoa(settings.FrameRate))
	prefs.flash.SetChecked(settings.FlashOnFinish)
	prefs.notice.SetChecked(settings.ShowNotice)
	prefs.notify.SetChecked(settings.NotifyOnFinish)
}

func (prefs *Window) handleSave() {
	settings := prefs.collect()
	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func (prefs *Window) collect() Settings {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.minutes.Text); ok {
		settings.DefaultMinutes = minutes
	}
	if scale, ok := parsePositiveInt(prefs.timeScale.Text); ok {
		settings.TimeScale = scale
	}
	if fps, ok := parsePositiveInt(prefs.frameRate.Text); ok {
		settings.FrameRate = fps
	}

	settings.FlashOnFinish = prefs.flash.Checked
	settings.ShowNotice = prefs.notice.Checked
	settings.NotifyOnFinish = prefs.notify.Checked

	return settings.Normalize()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
