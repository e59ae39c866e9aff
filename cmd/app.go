package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"dialtimer/internal/core/dial"
	"dialtimer/internal/core/loop"
	"dialtimer/internal/logger"
	"dialtimer/internal/platform"
	"dialtimer/internal/storage"
	"dialtimer/internal/ui/animation"
	"dialtimer/internal/ui/controls"
	"dialtimer/internal/ui/dialview"
	"dialtimer/internal/ui/overlay"
	"dialtimer/internal/ui/preferences"
	"dialtimer/internal/ui/tray"
	"dialtimer/resources"
)

const (
	iconRunning = "dial.svg"
	iconStopped = "dial_paused.svg"
)

var alarmFace = color.NRGBA{R: 255, G: 196, B: 184, A: 255}

// session owns the timer and every widget that mirrors it. All methods run
// on the fyne UI goroutine.
type session struct {
	ctx          context.Context
	app          fyne.App
	desk         desktop.App
	settings     preferences.Settings
	settingsPath string
	clock        loop.Clock

	timer   *dial.Timer
	frames  *loop.Loop
	window  fyne.Window
	view    *dialview.Dial
	panel   *controls.Panel
	tray    *tray.Manager
	prefs   *preferences.Window
	notice  *overlay.Window
	flasher *animation.Engine

	trayIcon string
}

func runWindowed(ctx context.Context, settings preferences.Settings, settingsPath string) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if errors.Is(err, platform.ErrAlreadyRunning) {
		logger.WarnKV(ctx, "Another instance is already running", "address", platform.GuardAddress(appName))
		return nil
	}
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.dialtimer.app")
	fyneApp.SetIcon(resources.MustIcon(iconRunning))

	s := newSession(ctx, fyneApp, settings, settingsPath, nil)
	s.window.Show()
	s.frames.Start()

	logger.InfoKV(ctx, "Timer ready", "settings", settingsPath, "fps", settings.FrameRate)
	fyneApp.Run()

	s.frames.Stop()
	s.flasher.Stop()
	return nil
}

func newSession(ctx context.Context, fyneApp fyne.App, settings preferences.Settings, settingsPath string, clock loop.Clock) *session {
	s := &session{
		ctx:          logger.WithName(ctx, "ui"),
		app:          fyneApp,
		settings:     settings,
		settingsPath: settingsPath,
		clock:        clock,
		timer:        dial.New(settings.TimerConfig()),
	}
	s.timer.Subscribe(s.onTimerEvent)

	s.view = dialview.New(s.timer)
	s.view.OnDragStart = func() {
		logger.Debugf(s.ctx, "Hand grabbed")
	}
	s.view.OnDragEnd = s.refresh

	s.panel = controls.New(s.timer.Config(), controls.Callbacks{
		OnToggle:    s.toggle,
		OnReset:     s.reset,
		OnDuration:  s.setDuration,
		OnTimeScale: s.setTimeScale,
	})

	s.window = fyneApp.NewWindow(appName)
	s.window.SetContent(container.NewBorder(nil, s.panel.Content(), nil, nil, s.view))
	s.window.Resize(fyne.NewSize(360, 540))

	s.flasher = animation.New(animation.DefaultConfig(), func(fill color.Color) {
		fyne.Do(func() {
			s.view.SetFaceColor(fill)
		})
	})

	s.notice = overlay.New(fyneApp, overlay.DefaultConfig())
	s.notice.SetOnRestart(s.restart)
	s.notice.SetOnDismiss(s.reset)

	s.prefs = preferences.New(fyneApp, settings, s.saveSettings)

	if desk, ok := fyneApp.(desktop.App); ok {
		s.desk = desk
		s.window.SetCloseIntercept(s.window.Hide)
	} else {
		s.window.SetCloseIntercept(s.quit)
	}
	s.tray = tray.New(s.desk, tray.Callbacks{
		OnShow: func() {
			s.window.Show()
			s.window.RequestFocus()
		},
		OnToggle:      s.toggle,
		OnReset:       s.reset,
		OnSetDuration: s.setDuration,
		OnPreferences: s.prefs.Show,
		OnQuit:        s.quit,
	}, tray.DefaultPresets)

	s.frames = s.newLoop(settings)
	s.refresh()
	return s
}

func (s *session) newLoop(settings preferences.Settings) *loop.Loop {
	return loop.New(loop.Config{
		Interval: settings.FrameInterval(),
		Dispatch: fyne.Do,
		Clock:    s.clock,
	}, s.frame)
}

// frame advances the countdown and redraws.
func (s *session) frame(now time.Time) {
	s.timer.Tick(now)
	s.refresh()
}

func (s *session) refresh() {
	s.view.Refresh()

	snapshot := s.timer.Snapshot()
	s.panel.Update(snapshot)
	s.tray.Update(snapshot)

	icon := iconStopped
	if snapshot.Running {
		icon = iconRunning
	}
	if s.desk != nil && icon != s.trayIcon {
		s.desk.SetSystemTrayIcon(resources.MustIcon(icon))
	}
	s.trayIcon = icon
}

func (s *session) toggle() {
	if s.timer.ToggleRun(s.frames.Now()) {
		s.stopAlarm()
	}
	s.refresh()
}

func (s *session) reset() {
	s.stopAlarm()
	s.timer.Reset()
	s.refresh()
}

func (s *session) restart() {
	s.reset()
	s.toggle()
}

func (s *session) setDuration(minutes int) {
	if err := s.timer.SetDuration(minutes); err != nil {
		logger.DebugKV(s.ctx, "Duration rejected", "minutes", minutes, "error", err)
		return
	}
	s.stopAlarm()
	s.refresh()
}

func (s *session) setTimeScale(scale int) {
	if err := s.timer.SetTimeScale(scale); err != nil {
		logger.DebugKV(s.ctx, "Time scale rejected", "scale", scale, "error", err)
		return
	}
	s.refresh()
}

func (s *session) saveSettings(updated preferences.Settings) {
	previous := s.settings
	s.settings = updated

	if err := storage.SaveSettings(s.settingsPath, updated); err != nil {
		logger.ErrorKV(s.ctx, "Failed to save settings", "path", s.settingsPath, "error", err)
	}

	s.setTimeScale(updated.TimeScale)
	if updated.DefaultMinutes != previous.DefaultMinutes && s.timer.State() == dial.StateIdle {
		s.setDuration(updated.DefaultMinutes)
	}
	if updated.FrameRate != previous.FrameRate && s.frames.Running() {
		s.frames.Stop()
		s.frames = s.newLoop(updated)
		s.frames.Start()
	}
}

func (s *session) onTimerEvent(event dial.Event) {
	switch event.Type {
	case dial.EventStateChange:
		logger.DebugKV(s.ctx, "State changed", "state", event.State, "remaining", event.Remaining)
	case dial.EventFinished:
		s.finish()
	}
}

func (s *session) finish() {
	duration := time.Duration(s.timer.DurationSeconds()) * time.Second
	logger.InfoKV(s.ctx, "Countdown finished", "duration", duration)

	if s.settings.FlashOnFinish {
		palette := s.view.Palette()
		s.flasher.Flash(s.ctx, animation.FlashSpec{
			On:   alarmFace,
			Off:  palette.Face,
			Rest: palette.Face,
		})
	}
	if s.settings.ShowNotice {
		s.notice.Show(duration)
	}
	if s.settings.NotifyOnFinish {
		s.app.SendNotification(fyne.NewNotification("Time's up",
			fmt.Sprintf("%s countdown finished.", dial.FormatDisplay(duration.Seconds()))))
	}
}

func (s *session) stopAlarm() {
	s.flasher.Stop()
	if s.notice.Visible() {
		s.notice.Hide()
	}
}

func (s *session) quit() {
	s.frames.Stop()
	s.flasher.Stop()
	s.app.Quit()
}
