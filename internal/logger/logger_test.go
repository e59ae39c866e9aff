package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" INFO ":  zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"fatal":   zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got)
	}

	got, ok := ParseLogLevel("unknown")
	require.False(t, ok)
	require.Equal(t, zapcore.InfoLevel, got)
}

// TestContextLogger checks that loggers travel through the context with their fields.
func TestContextLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())
	ctx = WithName(ctx, "dial")
	ctx = WithKV(ctx, "minutes", 25)

	InfoKV(ctx, "duration set", "scale", 2)
	Debugf(ctx, "tick %d", 1)

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "duration set", entries[0].Message)
	require.Equal(t, "dial", entries[0].LoggerName)
	require.Equal(t, int64(25), entries[0].ContextMap()["minutes"])
	require.Equal(t, int64(2), entries[0].ContextMap()["scale"])
	require.Equal(t, "tick 1", entries[1].Message)
}

// TestFromContextFallsBack ensures a bare context yields the global logger.
func TestFromContextFallsBack(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))
	//nolint:staticcheck // Nil context is handled on purpose.
	require.Same(t, Logger(), FromContext(nil))
}
