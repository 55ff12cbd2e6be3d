package terminal_test

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/fwojciec/giga/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

func openPTY(t *testing.T, cols, rows uint16) (*os.File, *os.File) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = tty.Close()
		_ = ptmx.Close()
	})
	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Cols: cols, Rows: rows}))
	return ptmx, tty
}

func TestSize(t *testing.T) {
	t.Parallel()

	t.Run("reports the pty size", func(t *testing.T) {
		t.Parallel()
		_, tty := openPTY(t, 132, 43)

		w, h, err := terminal.Size(tty)

		require.NoError(t, err)
		assert.Equal(t, 132, w)
		assert.Equal(t, 43, h)
	})

	t.Run("fails for regular files", func(t *testing.T) {
		t.Parallel()
		f, err := os.CreateTemp(t.TempDir(), "notatty")
		require.NoError(t, err)
		defer f.Close()

		_, _, err = terminal.Size(f)

		require.Error(t, err)
	})
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("enters raw mode and restores it on close", func(t *testing.T) {
		t.Parallel()
		_, tty := openPTY(t, 80, 24)
		before, err := term.GetState(int(tty.Fd()))
		require.NoError(t, err)

		tt, err := terminal.Open(tty, tty)
		require.NoError(t, err)

		w, h, err := tt.Size()
		require.NoError(t, err)
		assert.Equal(t, 80, w)
		assert.Equal(t, 24, h)

		require.NoError(t, tt.Close())
		after, err := term.GetState(int(tty.Fd()))
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("toggles bracketed paste", func(t *testing.T) {
		t.Parallel()
		ptmx, tty := openPTY(t, 80, 24)
		output := make(chan string, 1)
		go func() {
			var buf bytes.Buffer
			chunk := make([]byte, 256)
			for !strings.Contains(buf.String(), "\x1b[?2004l") {
				n, err := ptmx.Read(chunk)
				buf.Write(chunk[:n])
				if err != nil {
					break
				}
			}
			output <- buf.String()
		}()

		tt, err := terminal.Open(tty, tty)
		require.NoError(t, err)
		require.NoError(t, tt.Close())

		select {
		case out := <-output:
			on := strings.Index(out, "\x1b[?2004h")
			require.GreaterOrEqual(t, on, 0)
			assert.Greater(t, strings.Index(out, "\x1b[?2004l"), on)
		case <-time.After(3 * time.Second):
			t.Fatal("no terminal output")
		}
	})

	t.Run("rejects input that is not a terminal", func(t *testing.T) {
		t.Parallel()
		f, err := os.CreateTemp(t.TempDir(), "notatty")
		require.NoError(t, err)
		defer f.Close()

		_, err = terminal.Open(f, f)

		require.Error(t, err)
	})
}
