// Package terminal drives a raw ANSI terminal: raw mode, the alternate
// screen, size queries and frame rendering.
package terminal

import (
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/giga"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Escape sequences.
const (
	enterAltScreen = "\x1b[?1049h"
	leaveAltScreen = "\x1b[?1049l"
	enablePaste    = "\x1b[?2004h"
	disablePaste   = "\x1b[?2004l"
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	clearScreen    = "\x1b[2J"
	cursorHome     = "\x1b[H"
	eraseLineRight = "\x1b[K"
	resetStyle     = "\x1b[0m"
	defaultFg      = "\x1b[39m"
)

// Default size used when the terminal cannot report one.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Compile-time interface verification.
var _ giga.Screen = (*Terminal)(nil)

// Terminal is a terminal in raw mode showing the alternate screen.
type Terminal struct {
	in, out *os.File
	state   *term.State
}

// Open switches in to raw mode and out to the alternate screen with
// bracketed paste enabled. Close restores the terminal.
func Open(in, out *os.File) (*Terminal, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return nil, errors.New("input is not a terminal")
	}
	state, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	t := &Terminal{in: in, out: out, state: state}
	if _, err := out.WriteString(enterAltScreen + enablePaste + clearScreen + cursorHome); err != nil {
		_ = term.Restore(int(in.Fd()), state)
		return nil, fmt.Errorf("enter alternate screen: %w", err)
	}
	return t, nil
}

// Write writes to the terminal output.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Size returns the terminal size in columns and rows.
func (t *Terminal) Size() (int, int, error) {
	return Size(t.out)
}

// Close leaves the alternate screen and restores the original terminal
// mode.
func (t *Terminal) Close() error {
	_, werr := t.out.WriteString(resetStyle + showCursor + disablePaste + leaveAltScreen)
	if err := term.Restore(int(t.in.Fd()), t.state); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return werr
}

// Size queries the size of the terminal behind f.
func Size(f *os.File) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("get window size: %w", err)
	}
	if ws.Col == 0 || ws.Row == 0 {
		return 0, 0, errors.New("terminal reported zero size")
	}
	return int(ws.Col), int(ws.Row), nil
}
