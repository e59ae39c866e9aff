package tray

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/require"

	"dialtimer/internal/core/dial"
	"dialtimer/internal/core/model"
)

func findItem(t *testing.T, menu *fyne.Menu, label string) *fyne.MenuItem {
	t.Helper()
	for _, item := range menu.Items {
		if item.Label == label {
			return item
		}
	}
	t.Fatalf("menu item %q not found", label)
	return nil
}

// TestMenuActions checks that menu items reach the callbacks.
func TestMenuActions(t *testing.T) {
	t.Parallel()

	var calls []string
	var durations []int
	manager := New(nil, Callbacks{
		OnShow:        func() { calls = append(calls, "show") },
		OnToggle:      func() { calls = append(calls, "toggle") },
		OnReset:       func() { calls = append(calls, "reset") },
		OnSetDuration: func(minutes int) { durations = append(durations, minutes) },
		OnPreferences: func() { calls = append(calls, "prefs") },
		OnQuit:        func() { calls = append(calls, "quit") },
	}, []int{5, 25})

	menu := manager.Menu()
	for _, label := range []string{"Show timer", "Start", "Reset", "Preferences", "Quit"} {
		findItem(t, menu, label).Action()
	}
	require.Equal(t, []string{"show", "toggle", "reset", "prefs", "quit"}, calls)

	presets := findItem(t, menu, "Set duration").ChildMenu.Items
	require.Len(t, presets, 2)
	require.Equal(t, "25 minutes", presets[1].Label)
	presets[1].Action()
	require.Equal(t, []int{25}, durations)
}

// TestUpdateLabels mirrors the timer state into the status line and toggle item.
func TestUpdateLabels(t *testing.T) {
	t.Parallel()

	manager := New(nil, Callbacks{}, nil)
	timer := dial.New(model.DefaultTimerConfig())
	start := time.Unix(0, 0)

	manager.Update(timer.Snapshot())
	require.Equal(t, "Remaining: 25:00", manager.Status())
	require.NotNil(t, findItem(t, manager.Menu(), "Start"))

	timer.ToggleRun(start)
	timer.Tick(start.Add(61 * time.Second))
	manager.Update(timer.Snapshot())
	require.Equal(t, "Remaining: 23:59", manager.Status())
	require.NotNil(t, findItem(t, manager.Menu(), "Pause"))

	timer.ToggleRun(start.Add(61 * time.Second))
	manager.Update(timer.Snapshot())
	require.Equal(t, "Remaining: 23:59 (paused)", manager.Status())
	require.NotNil(t, findItem(t, manager.Menu(), "Resume"))

	timer.ToggleRun(start.Add(61 * time.Second))
	timer.Tick(start.Add(2 * time.Hour))
	manager.Update(timer.Snapshot())
	require.Equal(t, "Time's up", manager.Status())
	require.True(t, findItem(t, manager.Menu(), "Start").Disabled)
}

// TestDefaultPresets falls back when no presets are given.
func TestDefaultPresets(t *testing.T) {
	t.Parallel()

	manager := New(nil, Callbacks{}, nil)
	presets := findItem(t, manager.Menu(), "Set duration").ChildMenu.Items
	require.Len(t, presets, len(DefaultPresets))
}
