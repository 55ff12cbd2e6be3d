package giga

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// DefaultTabWidth is the distance between tab stops.
const DefaultTabWidth = 4

// Glyph is a character as it appears on screen.
type Glyph struct {
	Text  string
	Width int
	Color Color
}

// RuneCell maps r, starting at display column col, to the text drawn on
// screen and the number of columns it occupies. Tabs advance to the next
// tab stop, wide characters take two columns, and characters without a
// printable form are drawn as '?'.
//
// Cursor placement and rendering both go through this function so the two
// never disagree.
func RuneCell(r rune, col, tabWidth int) (string, int) {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	if r == '\t' {
		n := tabWidth - col%tabWidth
		return strings.Repeat(" ", n), n
	}
	if !unicode.IsPrint(r) {
		return "?", 1
	}
	w := runewidth.RuneWidth(r)
	if w < 1 {
		// Zero-width runes would attach to their neighbour and desync the
		// cursor.
		return "?", 1
	}
	return string(r), w
}

// DisplayColumn returns the display column of rune index idx in line.
// Indexes past the end of the line count as single-column cells.
func DisplayColumn(line []Cell, idx, tabWidth int) int {
	col := 0
	for i := 0; i < idx; i++ {
		if i >= len(line) {
			col++
			continue
		}
		_, w := RuneCell(line[i].Rune, col, tabWidth)
		col += w
	}
	return col
}

// ExpandLine converts line into glyphs, one per cell, with display
// columns starting at zero.
func ExpandLine(line []Cell, tabWidth int) []Glyph {
	glyphs := make([]Glyph, 0, len(line))
	col := 0
	for _, c := range line {
		text, w := RuneCell(c.Rune, col, tabWidth)
		glyphs = append(glyphs, Glyph{Text: text, Width: w, Color: c.Color})
		col += w
	}
	return glyphs
}

// ClipGlyphs returns the glyphs visible in the column window
// [left, left+width). A glyph cut by the left edge is replaced by blanks for
// its visible part; a glyph cut by the right edge is dropped.
func ClipGlyphs(glyphs []Glyph, left, width int) []Glyph {
	var out []Glyph
	col := 0
	right := left + width
	for _, g := range glyphs {
		start, end := col, col+g.Width
		col = end
		switch {
		case end <= left:
			continue
		case start >= right || end > right:
			return out
		case start < left:
			blank := end - left
			out = append(out, Glyph{Text: strings.Repeat(" ", blank), Width: blank})
		default:
			out = append(out, g)
		}
	}
	return out
}
