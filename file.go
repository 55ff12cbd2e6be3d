package giga

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"
)

// File is an in-memory text buffer made of lines of colored cells.
//
// A File always holds at least one line. Operations with out-of-range
// positions are clamped or ignored so the buffer never refers past its end.
// Every content mutation recolors the whole buffer and bumps the content
// generation.
type File struct {
	dir      string
	name     string
	language string
	lines    [][]Cell

	colorizer  Colorizer
	modified   bool
	generation uint64
}

// NewFile creates a buffer for path holding content.
// A nil colorizer leaves every cell in the default color.
func NewFile(path string, content []byte, colorizer Colorizer, language string) *File {
	f := &File{
		dir:       filepath.Dir(path),
		name:      filepath.Base(path),
		language:  language,
		colorizer: colorizer,
	}
	for _, s := range strings.Split(string(content), "\n") {
		line := make([]Cell, 0, utf8.RuneCountInString(s))
		for _, r := range s {
			line = append(line, Cell{Rune: r})
		}
		f.lines = append(f.lines, line)
	}
	f.recolor()
	return f
}

// Name returns the base name of the file.
func (f *File) Name() string { return f.name }

// Path returns the full path the file is saved to.
func (f *File) Path() string { return filepath.Join(f.dir, f.name) }

// Language returns the language hint used for coloring.
func (f *File) Language() string { return f.language }

// Modified reports whether the content changed since it was loaded or saved.
func (f *File) Modified() bool { return f.modified }

// Generation identifies the current content. It grows with every mutation.
func (f *File) Generation() uint64 { return f.generation }

// Len returns the number of lines.
func (f *File) Len() int { return len(f.lines) }

// Line returns the cells of line i, or nil when i is out of range.
// The slice must not be modified.
func (f *File) Line(i int) []Cell {
	if i < 0 || i >= len(f.lines) {
		return nil
	}
	return f.lines[i]
}

// LineLen returns the number of characters in line i.
func (f *File) LineLen(i int) int {
	return len(f.Line(i))
}

// RuneCount returns the number of characters in the buffer, excluding line
// separators.
func (f *File) RuneCount() int {
	n := 0
	for _, l := range f.lines {
		n += len(l)
	}
	return n
}

// LineString returns line i as text.
func (f *File) LineString(i int) string {
	var sb strings.Builder
	for _, c := range f.Line(i) {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the whole content with lines joined by "\n".
func (f *File) String() string {
	var sb strings.Builder
	for i := range f.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(f.LineString(i))
	}
	return sb.String()
}

// Bytes returns the content as saved to disk.
func (f *File) Bytes() []byte {
	return []byte(f.String())
}

// Rename changes the base name of the file. The directory is kept.
func (f *File) Rename(name string) {
	f.name = name
}

// SetLanguage changes the language hint and recolors the buffer.
func (f *File) SetLanguage(language string) {
	if language == f.language {
		return
	}
	f.language = language
	f.recolor()
}

// MarkSaved clears the modified flag.
func (f *File) MarkSaved() {
	f.modified = false
}

// InsertRune inserts r before column col of line.
func (f *File) InsertRune(line, col int, r rune) {
	if line < 0 || line >= len(f.lines) {
		return
	}
	col = clamp(col, 0, len(f.lines[line]))
	f.lines[line] = slices.Insert(f.lines[line], col, Cell{Rune: r})
	f.changed()
}

// DeleteRune removes the character at column col of line.
func (f *File) DeleteRune(line, col int) {
	if line < 0 || line >= len(f.lines) || col < 0 || col >= len(f.lines[line]) {
		return
	}
	f.lines[line] = slices.Delete(f.lines[line], col, col+1)
	f.changed()
}

// SplitLine breaks line at column col, moving the tail to a new line below.
func (f *File) SplitLine(line, col int) {
	if line < 0 || line >= len(f.lines) {
		return
	}
	col = clamp(col, 0, len(f.lines[line]))
	head := f.lines[line][:col:col]
	tail := slices.Clone(f.lines[line][col:])
	f.lines[line] = head
	f.lines = slices.Insert(f.lines, line+1, tail)
	f.changed()
}

// JoinLine appends line+1 to line. It does nothing on the last line.
func (f *File) JoinLine(line int) {
	if line < 0 || line >= len(f.lines)-1 {
		return
	}
	f.lines[line] = append(f.lines[line], f.lines[line+1]...)
	f.lines = slices.Delete(f.lines, line+1, line+2)
	f.changed()
}

// DeleteLine removes line. Deleting the only line leaves it empty.
func (f *File) DeleteLine(line int) {
	if line < 0 || line >= len(f.lines) {
		return
	}
	if len(f.lines) == 1 {
		if len(f.lines[0]) == 0 {
			return
		}
		f.lines[0] = nil
	} else {
		f.lines = slices.Delete(f.lines, line, line+1)
	}
	f.changed()
}

// InsertLines inserts the lines of text before line at. An at equal to Len
// appends after the last line.
func (f *File) InsertLines(at int, text string) {
	at = clamp(at, 0, len(f.lines))
	parts := strings.Split(text, "\n")
	added := make([][]Cell, 0, len(parts))
	for _, s := range parts {
		var line []Cell
		for _, r := range s {
			line = append(line, Cell{Rune: r})
		}
		added = append(added, line)
	}
	f.lines = slices.Insert(f.lines, at, added...)
	f.changed()
}

func (f *File) changed() {
	f.modified = true
	f.generation++
	f.recolor()
}

// recolor runs the colorizer over the whole buffer. Any failure leaves the
// default color in place.
func (f *File) recolor() {
	var colors []Color
	if f.colorizer != nil {
		text := f.String()
		colors = f.colorizer.Colorize(f.language, text)
		if len(colors) != utf8.RuneCountInString(text) {
			colors = nil
		}
	}
	i := 0
	for _, line := range f.lines {
		for j := range line {
			if colors != nil {
				line[j].Color = colors[i]
			} else {
				line[j].Color = ""
			}
			i++
		}
		i++ // line separator
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
