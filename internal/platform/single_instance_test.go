package platform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPortFromName keeps ports deterministic and inside the reserved range.
func TestPortFromName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "DialTimer", "another app"} {
		port := portFromName(name)
		require.GreaterOrEqual(t, port, minGuardPort)
		require.LessOrEqual(t, port, maxGuardPort)
		require.Equal(t, port, portFromName(name))
	}
}

// TestAcquireTwice checks the second holder is rejected until release.
func TestAcquireTwice(t *testing.T) {
	t.Parallel()

	first, err := acquireAt("127.0.0.1:0")
	require.NoError(t, err)
	address := first.Address()

	_, err = acquireAt(address)
	require.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, first.Release())
	require.NoError(t, first.Release())

	second, err := acquireAt(address)
	require.NoError(t, err)
	require.NoError(t, second.Release())
}

// TestNilGuard ensures nil guards are harmless.
func TestNilGuard(t *testing.T) {
	t.Parallel()

	var guard *InstanceGuard
	require.NoError(t, guard.Release())
	require.Empty(t, guard.Address())
}
