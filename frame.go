package giga

import "slices"

// Status is the content of the status bar.
type Status struct {
	Mode     Mode
	Name     string
	Modified bool
	Ref      string // git ref, empty outside a repository
	Message  string
}

// Frame is a snapshot of everything the renderer draws.
type Frame struct {
	Width, Height int // terminal size

	// NumberWidth is the width of the line number column. The gutter is the
	// number column followed by the marker column and a space.
	NumberWidth int

	Top, Left int // viewport origin
	Rows      []Row

	CursorRow, CursorCol int // on screen, relative to the text area
	Status               Status
}

// GutterWidth returns the number of columns left of the text area.
func (f Frame) GutterWidth() int {
	return f.NumberWidth + 2
}

// Order returns the minimal refresh that turns prev into f on screen.
func (f Frame) Order(prev Frame) RefreshOrder {
	if f.Width != prev.Width || f.Height != prev.Height ||
		f.NumberWidth != prev.NumberWidth || f.Top != prev.Top || f.Left != prev.Left ||
		len(f.Rows) != len(prev.Rows) {
		return AllRefresh
	}

	order := NoRefresh
	var rows []int
	for i := range f.Rows {
		if !rowEqual(f.Rows[i], prev.Rows[i]) {
			rows = append(rows, i)
		}
	}
	order = order.Merge(LinesRefresh(rows...))
	if f.Status != prev.Status {
		order = order.Merge(StatusRefresh)
	}
	if f.CursorRow != prev.CursorRow || f.CursorCol != prev.CursorCol {
		order = order.Merge(CursorRefresh)
	}
	return order
}

func rowEqual(a, b Row) bool {
	return a.Line == b.Line && a.Marker == b.Marker && slices.Equal(a.Glyphs, b.Glyphs)
}

// NumberWidth returns the width of the line number column for a file of n
// lines.
func NumberWidth(n int) int {
	w := 1
	for n >= 10 {
		n /= 10
		w++
	}
	return max(w, 3)
}
