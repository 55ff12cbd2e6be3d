package clipboard_test

import (
	"testing"

	"github.com/fwojciec/giga"
	"github.com/fwojciec/giga/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem(t *testing.T) {
	t.Parallel()

	if !clipboard.Supported() {
		t.Skip("no clipboard tool available")
	}

	cb := clipboard.NewSystem()
	if err := cb.Copy("line from giga\n"); err != nil {
		// xclip without a display.
		t.Skipf("clipboard not usable: %v", err)
	}

	got, err := cb.Paste()

	require.NoError(t, err)
	assert.Equal(t, "line from giga\n", got)
}

func TestMemory(t *testing.T) {
	t.Parallel()

	t.Run("paste before copy reports no clipboard", func(t *testing.T) {
		t.Parallel()

		_, err := clipboard.NewMemory().Paste()

		require.ErrorIs(t, err, giga.ErrNoClipboard)
	})

	t.Run("returns the last copy", func(t *testing.T) {
		t.Parallel()
		cb := clipboard.NewMemory()

		require.NoError(t, cb.Copy("first"))
		require.NoError(t, cb.Copy(""))

		got, err := cb.Paste()
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
