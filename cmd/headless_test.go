package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"dialtimer/internal/logger"
	"dialtimer/internal/ui/preferences"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(zapcore.InfoLevel)
	previous := logger.Logger()
	logger.SetLogger(zap.New(core).Sugar())
	t.Cleanup(func() { logger.SetLogger(previous) })
	return logs
}

// TestRunHeadlessFinishes runs a one minute countdown at full speed-up.
func TestRunHeadlessFinishes(t *testing.T) {
	logs := observeLogs(t)

	settings := preferences.DefaultSettings()
	settings.DefaultMinutes = 1
	settings.TimeScale = 100
	settings.FrameRate = 100

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, runHeadless(ctx, settings, nil))
	require.Equal(t, 1, logs.FilterMessage("Countdown finished").Len())
	require.Equal(t, 1, logs.FilterMessage("00:00").Len())
	require.Greater(t, logs.Len(), 3)
}

// TestRunHeadlessInterrupted returns the context error when stopped early.
func TestRunHeadlessInterrupted(t *testing.T) {
	logs := observeLogs(t)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	err := runHeadless(ctx, preferences.DefaultSettings(), nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, logs.FilterMessage("Countdown interrupted").Len())
	require.Zero(t, logs.FilterMessage("Countdown finished").Len())
}

// TestApplyOverrides keeps saved values unless a flag is set and drops out-of-range flags.
func TestApplyOverrides(t *testing.T) {
	t.Parallel()

	settings := preferences.DefaultSettings()

	got := applyOverrides(settings, options{minutes: 10, scale: 4, fps: 30})
	require.Equal(t, 10, got.DefaultMinutes)
	require.Equal(t, 4, got.TimeScale)
	require.Equal(t, 30, got.FrameRate)

	got = applyOverrides(settings, options{minutes: 90, scale: 500})
	require.Equal(t, settings.DefaultMinutes, got.DefaultMinutes)
	require.Equal(t, settings.TimeScale, got.TimeScale)
	require.Equal(t, settings.FrameRate, got.FrameRate)
}

// TestResolveSettingsPath prefers the explicit path.
func TestResolveSettingsPath(t *testing.T) {
	t.Parallel()

	path, err := resolveSettingsPath("/tmp/custom.yaml")
	require.NoError(t, err)
	require.Equal(t, "/tmp/custom.yaml", path)
}
