package resources

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestIconCached loads embedded icons once and reports missing files.
func TestIconCached(t *testing.T) {
	t.Parallel()

	first, err := Icon("dial.svg")
	require.NoError(t, err)
	require.Equal(t, "icon/dial.svg", first.Name())
	require.NotEmpty(t, first.Content())

	second := MustIcon("dial.svg")
	require.Same(t, first, second)

	require.NotNil(t, MustIcon("dial_paused.svg"))

	_, err = Icon("missing.svg")
	require.Error(t, err)
	require.Panics(t, func() { MustIcon("missing.svg") })
}
