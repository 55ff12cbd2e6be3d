package giga

// Row is one visible text row of the viewport.
type Row struct {
	Line   int // absolute line index, -1 past the end of the file
	Marker PatchKind
	Glyphs []Glyph
}

// View maps a rectangular viewport onto a File.
//
// The cursor is kept inside the viewport: every operation that moves it
// scrolls the origin by the minimal amount needed.
type View struct {
	file     *File
	tabWidth int

	width, height int

	// Cursor, as absolute line and rune index.
	line, col int

	// Origin: first visible line and first visible display column.
	top, left int
}

// NewView creates a view of file with the given text area size.
func NewView(file *File, width, height, tabWidth int) *View {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return &View{
		file:     file,
		tabWidth: tabWidth,
		width:    max(width, 1),
		height:   max(height, 1),
	}
}

// File returns the viewed file.
func (v *View) File() *File { return v.file }

// Size returns the text area size.
func (v *View) Size() (width, height int) { return v.width, v.height }

// Origin returns the first visible line and display column.
func (v *View) Origin() (top, left int) { return v.top, v.left }

// Cursor returns the absolute cursor position.
func (v *View) Cursor() Position { return Position{Line: v.line, Col: v.col} }

// CursorScreen returns the cursor position relative to the viewport.
func (v *View) CursorScreen() (row, col int) {
	return v.line - v.top, v.displayCol() - v.left
}

// Resize changes the text area size and scrolls to keep the cursor visible.
func (v *View) Resize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
	v.scroll()
}

// Navigate moves the cursor by dx characters and dy lines, clamped to the
// file. It reports whether the viewport scrolled.
func (v *View) Navigate(dx, dy int) bool {
	if dy != 0 {
		v.line = clamp(v.line+dy, 0, v.file.Len()-1)
	}
	v.col = clamp(v.col+dx, 0, v.file.LineLen(v.line))
	return v.scroll()
}

// MoveTo places the cursor at an absolute position, clamped to the file.
func (v *View) MoveTo(line, col int) bool {
	v.line = clamp(line, 0, v.file.Len()-1)
	v.col = clamp(col, 0, v.file.LineLen(v.line))
	return v.scroll()
}

// LineStart moves the cursor to the first column.
func (v *View) LineStart() bool { return v.MoveTo(v.line, 0) }

// LineEnd moves the cursor past the last character of the line.
func (v *View) LineEnd() bool { return v.MoveTo(v.line, v.file.LineLen(v.line)) }

// Insert inserts r at the cursor and advances it.
func (v *View) Insert(r rune) {
	v.file.InsertRune(v.line, v.col, r)
	v.col++
	v.scroll()
}

// InsertNewLine splits the line at the cursor and moves to the new line.
func (v *View) InsertNewLine() {
	v.file.SplitLine(v.line, v.col)
	v.line++
	v.col = 0
	v.scroll()
}

// Delete removes the character before the cursor. At the start of a line it
// joins the line onto the previous one.
func (v *View) Delete() {
	switch {
	case v.col > 0:
		v.file.DeleteRune(v.line, v.col-1)
		v.col--
	case v.line > 0:
		prev := v.file.LineLen(v.line - 1)
		v.file.JoinLine(v.line - 1)
		v.line--
		v.col = prev
	}
	v.scroll()
}

// DeleteLine removes the cursor line.
func (v *View) DeleteLine() {
	v.file.DeleteLine(v.line)
	v.MoveTo(v.line, v.col)
}

// InsertLinesBelow inserts text as new lines after the cursor line and
// moves the cursor to the first of them.
func (v *View) InsertLinesBelow(text string) {
	v.file.InsertLines(v.line+1, text)
	v.MoveTo(v.line+1, 0)
}

// Content returns the visible rows annotated with diff markers. Rows past
// the end of the file have Line set to -1.
func (v *View) Content(diff Diff) []Row {
	rows := make([]Row, v.height)
	for i := range rows {
		line := v.top + i
		if line >= v.file.Len() {
			rows[i] = Row{Line: -1}
			continue
		}
		glyphs := ExpandLine(v.file.Line(line), v.tabWidth)
		rows[i] = Row{
			Line:   line,
			Marker: diff.Marker(line),
			Glyphs: ClipGlyphs(glyphs, v.left, v.width),
		}
	}
	return rows
}

func (v *View) displayCol() int {
	return DisplayColumn(v.file.Line(v.line), v.col, v.tabWidth)
}

// scroll moves the origin minimally so the cursor is visible and reports
// whether it moved.
func (v *View) scroll() bool {
	v.line = clamp(v.line, 0, v.file.Len()-1)
	v.col = clamp(v.col, 0, v.file.LineLen(v.line))

	top, left := v.top, v.left
	if v.line < v.top {
		v.top = v.line
	}
	if v.line >= v.top+v.height {
		v.top = v.line - v.height + 1
	}

	col := v.displayCol()
	width := 1
	if line := v.file.Line(v.line); v.col < len(line) {
		_, width = RuneCell(line[v.col].Rune, col, v.tabWidth)
		width = min(width, v.width)
	}
	if col < v.left {
		v.left = col
	}
	if col+width > v.left+v.width {
		v.left = col + width - v.width
	}
	return top != v.top || left != v.left
}
