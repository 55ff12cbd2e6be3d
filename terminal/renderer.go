package terminal

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/giga"
	"github.com/muesli/termenv"
)

// Compile-time interface verification.
var _ giga.Renderer = (*Renderer)(nil)

// StatusLine renders the status bar to exactly width columns.
type StatusLine interface {
	Render(st giga.Status, width int) string
}

// Gutter markers.
const (
	markerAdded    = "▐"
	markerRemoved  = "▗"
	markerModified = "▐"
	emptyRow       = "~"
)

// Renderer turns refresh orders into escape sequences. Every order is
// written with a single Write call.
type Renderer struct {
	w       io.Writer
	profile termenv.Profile
	styles  giga.Styles
	status  StatusLine

	buf bytes.Buffer
	fg  giga.Color
}

// NewRenderer creates a renderer writing to w. Colors are converted to the
// given profile; termenv.Ascii disables them.
func NewRenderer(w io.Writer, profile termenv.Profile, theme giga.Theme, status StatusLine) *Renderer {
	return &Renderer{
		w:       w,
		profile: profile,
		styles:  theme.Styles(),
		status:  status,
	}
}

// Render implements giga.Renderer.
func (r *Renderer) Render(order giga.RefreshOrder, f giga.Frame) error {
	r.buf.Reset()

	switch order.Kind {
	case giga.RefreshNone:
		return nil
	case giga.RefreshCursor:
		r.moveCursor(f)
	case giga.RefreshStatus:
		r.buf.WriteString(hideCursor)
		r.writeStatus(f)
		r.moveCursor(f)
		r.buf.WriteString(showCursor)
	case giga.RefreshLines:
		r.buf.WriteString(hideCursor)
		for _, row := range order.Lines {
			r.writeRow(f, row)
		}
		if order.Status {
			r.writeStatus(f)
		}
		r.moveCursor(f)
		r.buf.WriteString(showCursor)
	case giga.RefreshAll:
		r.buf.WriteString(hideCursor)
		r.buf.WriteString(resetStyle)
		r.buf.WriteString(clearScreen)
		for row := range f.Rows {
			r.writeRow(f, row)
		}
		r.writeStatus(f)
		r.moveCursor(f)
		r.buf.WriteString(showCursor)
	case giga.RefreshTerminate:
		r.buf.WriteString(resetStyle)
		r.buf.WriteString(clearScreen)
		r.buf.WriteString(cursorHome)
		r.buf.WriteString(showCursor)
	default:
		return fmt.Errorf("unknown refresh kind %d", order.Kind)
	}

	_, err := r.w.Write(r.buf.Bytes())
	return err
}

func (r *Renderer) writeRow(f giga.Frame, i int) {
	if i < 0 || i >= len(f.Rows) || i >= f.Height-1 {
		return
	}
	row := f.Rows[i]
	r.moveTo(i, 0)
	r.fg = ""

	if row.Line < 0 {
		r.setFg(r.styles.LineNumber.Foreground)
		r.buf.WriteString(emptyRow)
	} else {
		number := strconv.Itoa(row.Line + 1)
		r.setFg(r.styles.LineNumber.Foreground)
		r.pad(f.NumberWidth - len(number))
		r.buf.WriteString(number)

		r.setFg(r.styles.Marker(row.Marker).Foreground)
		switch row.Marker {
		case giga.PatchAdded:
			r.buf.WriteString(markerAdded)
		case giga.PatchRemoved:
			r.buf.WriteString(markerRemoved)
		case giga.PatchModified:
			r.buf.WriteString(markerModified)
		default:
			r.buf.WriteByte(' ')
		}
		r.buf.WriteByte(' ')

		room := f.Width - f.GutterWidth()
		for _, g := range row.Glyphs {
			if g.Width > room {
				break
			}
			r.setFg(g.Color)
			r.buf.WriteString(g.Text)
			room -= g.Width
		}
	}
	r.buf.WriteString(resetStyle)
	r.buf.WriteString(eraseLineRight)
}

func (r *Renderer) writeStatus(f giga.Frame) {
	r.moveTo(f.Height-1, 0)
	line := ansi.Truncate(r.status.Render(f.Status, f.Width), f.Width, "")
	r.buf.WriteString(line)
	r.buf.WriteString(resetStyle)
	r.buf.WriteString(eraseLineRight)
}

func (r *Renderer) moveCursor(f giga.Frame) {
	r.moveTo(f.CursorRow, f.GutterWidth()+f.CursorCol)
}

// moveTo positions the cursor at a 0-based row and column.
func (r *Renderer) moveTo(row, col int) {
	fmt.Fprintf(&r.buf, "\x1b[%d;%dH", row+1, col+1)
}

func (r *Renderer) setFg(c giga.Color) {
	if c == r.fg || r.profile == termenv.Ascii {
		return
	}
	r.fg = c
	if c == "" {
		r.buf.WriteString(defaultFg)
		return
	}
	seq := r.profile.Color(string(c)).Sequence(false)
	if seq == "" {
		r.buf.WriteString(defaultFg)
		return
	}
	r.buf.WriteString("\x1b[")
	r.buf.WriteString(seq)
	r.buf.WriteByte('m')
}

func (r *Renderer) pad(n int) {
	for range n {
		r.buf.WriteByte(' ')
	}
}
