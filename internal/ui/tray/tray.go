package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"dialtimer/internal/core/dial"
)

// DefaultPresets are the quick durations offered in the tray, in minutes.
var DefaultPresets = []int{5, 10, 15, 25, 45, 60}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggle      func()
	OnReset       func()
	OnSetDuration func(minutes int)
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	toggleItem  *fyne.MenuItem
	durationFor *fyne.MenuItem
	callbacks   Callbacks
	statusLabel string
	toggleLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks, presets []int) *Manager {
	if len(presets) == 0 {
		presets = DefaultPresets
	}
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		toggleLabel: "Start",
	}

	manager.statusItem = fyne.NewMenuItem("Remaining: --:--", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem(manager.toggleLabel, func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})

	presetItems := make([]*fyne.MenuItem, 0, len(presets))
	for _, minutes := range presets {
		minutes := minutes
		presetItems = append(presetItems, fyne.NewMenuItem(fmt.Sprintf("%d minutes", minutes), func() {
			if manager.callbacks.OnSetDuration != nil {
				manager.callbacks.OnSetDuration(minutes)
			}
		}))
	}
	manager.durationFor = fyne.NewMenuItem("Set duration", nil)
	manager.durationFor.ChildMenu = fyne.NewMenu("", presetItems...)

	manager.refreshMenu()
	return manager
}

// Update mirrors the timer state into the menu. The menu is only rebuilt
// when a label changes.
func (manager *Manager) Update(snapshot dial.Snapshot) {
	status := statusText(snapshot)
	toggle := toggleText(snapshot.State)
	if status == manager.statusLabel && toggle == manager.toggleLabel {
		return
	}
	manager.statusLabel = status
	manager.toggleLabel = toggle
	manager.statusItem.Label = status
	manager.toggleItem.Label = toggle
	manager.toggleItem.Disabled = snapshot.State == dial.StateFinished
	manager.refreshMenu()
}

// Status returns the current status line.
func (manager *Manager) Status() string {
	return manager.statusLabel
}

// Menu returns the menu currently installed in the tray.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.buildMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.buildMenu())
	}
}

func (manager *Manager) buildMenu() *fyne.Menu {
	return fyne.NewMenu("DialTimer",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show timer", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		manager.toggleItem,
		fyne.NewMenuItem("Reset", func() {
			if manager.callbacks.OnReset != nil {
				manager.callbacks.OnReset()
			}
		}),
		manager.durationFor,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)
}

func statusText(snapshot dial.Snapshot) string {
	status := fmt.Sprintf("Remaining: %s", snapshot.Display)
	switch snapshot.State {
	case dial.StatePaused:
		status = fmt.Sprintf("%s (paused)", status)
	case dial.StateFinished:
		status = "Time's up"
	}
	return status
}

func toggleText(state dial.State) string {
	switch state {
	case dial.StateRunning:
		return "Pause"
	case dial.StatePaused:
		return "Resume"
	default:
		return "Start"
	}
}
