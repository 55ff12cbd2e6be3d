package giga_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/giga"
	"github.com/stretchr/testify/assert"
)

func numbered(n int) []byte {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = strings.Repeat("x", i%7)
	}
	return []byte(strings.Join(lines, "\n"))
}

func TestView_Navigate(t *testing.T) {
	t.Parallel()

	t.Run("clamps to the file", func(t *testing.T) {
		t.Parallel()
		v := giga.NewView(giga.NewFile("/a", []byte("ab\nc"), nil, ""), 10, 5, 4)

		v.Navigate(-3, -3)
		assert.Equal(t, giga.Position{}, v.Cursor())

		v.Navigate(10, 0)
		assert.Equal(t, giga.Position{Line: 0, Col: 2}, v.Cursor())

		v.Navigate(0, 1)
		assert.Equal(t, giga.Position{Line: 1, Col: 1}, v.Cursor(), "column clamps to the shorter line")
	})

	t.Run("scrolls down minimally", func(t *testing.T) {
		t.Parallel()
		v := giga.NewView(giga.NewFile("/a", numbered(20), nil, ""), 10, 5, 4)

		assert.False(t, v.Navigate(0, 4))
		assert.True(t, v.Navigate(0, 1))

		top, _ := v.Origin()
		row, _ := v.CursorScreen()
		assert.Equal(t, 1, top)
		assert.Equal(t, 4, row)
	})

	t.Run("scrolls up minimally", func(t *testing.T) {
		t.Parallel()
		v := giga.NewView(giga.NewFile("/a", numbered(20), nil, ""), 10, 5, 4)
		v.MoveTo(19, 0)

		v.Navigate(0, -5)

		top, _ := v.Origin()
		assert.Equal(t, 14, top)
	})

	t.Run("scrolls horizontally", func(t *testing.T) {
		t.Parallel()
		v := giga.NewView(giga.NewFile("/a", []byte(strings.Repeat("y", 30)), nil, ""), 10, 5, 4)

		v.LineEnd()

		_, left := v.Origin()
		_, col := v.CursorScreen()
		assert.Equal(t, 21, left)
		assert.Equal(t, 9, col)

		v.LineStart()
		_, left = v.Origin()
		assert.Zero(t, left)
	})
}

func TestView_CursorScreen(t *testing.T) {
	t.Parallel()

	v := giga.NewView(giga.NewFile("/a", []byte("\t日x"), nil, ""), 20, 5, 4)

	v.MoveTo(0, 2)

	row, col := v.CursorScreen()
	assert.Equal(t, 0, row)
	assert.Equal(t, 6, col, "tab to 4, wide rune to 6")
}

func TestView_Editing(t *testing.T) {
	t.Parallel()

	t.Run("insert advances the cursor", func(t *testing.T) {
		t.Parallel()
		f := giga.NewFile("/a", nil, nil, "")
		v := giga.NewView(f, 10, 5, 4)

		v.Insert('h')
		v.Insert('i')

		assert.Equal(t, "hi", f.String())
		assert.Equal(t, giga.Position{Line: 0, Col: 2}, v.Cursor())
	})

	t.Run("new line splits at the cursor", func(t *testing.T) {
		t.Parallel()
		f := giga.NewFile("/a", []byte("abcd"), nil, "")
		v := giga.NewView(f, 10, 5, 4)
		v.MoveTo(0, 2)

		v.InsertNewLine()

		assert.Equal(t, "ab\ncd", f.String())
		assert.Equal(t, giga.Position{Line: 1, Col: 0}, v.Cursor())
	})

	t.Run("delete at line start joins lines", func(t *testing.T) {
		t.Parallel()
		f := giga.NewFile("/a", []byte("ab\ncd"), nil, "")
		v := giga.NewView(f, 10, 5, 4)
		v.MoveTo(1, 0)

		v.Delete()

		assert.Equal(t, "abcd", f.String())
		assert.Equal(t, giga.Position{Line: 0, Col: 2}, v.Cursor())
	})

	t.Run("delete at file start does nothing", func(t *testing.T) {
		t.Parallel()
		f := giga.NewFile("/a", []byte("ab"), nil, "")
		v := giga.NewView(f, 10, 5, 4)

		v.Delete()

		assert.Equal(t, "ab", f.String())
		assert.False(t, f.Modified())
	})

	t.Run("delete line keeps the cursor in the file", func(t *testing.T) {
		t.Parallel()
		f := giga.NewFile("/a", []byte("one\ntwo"), nil, "")
		v := giga.NewView(f, 10, 5, 4)
		v.MoveTo(1, 2)

		v.DeleteLine()

		assert.Equal(t, "one", f.String())
		assert.Equal(t, giga.Position{Line: 0, Col: 2}, v.Cursor())
	})

	t.Run("insert lines below", func(t *testing.T) {
		t.Parallel()
		f := giga.NewFile("/a", []byte("one\nfour"), nil, "")
		v := giga.NewView(f, 10, 5, 4)

		v.InsertLinesBelow("two\nthree")

		assert.Equal(t, "one\ntwo\nthree\nfour", f.String())
		assert.Equal(t, giga.Position{Line: 1, Col: 0}, v.Cursor())
	})
}

func TestView_Content(t *testing.T) {
	t.Parallel()

	f := giga.NewFile("/a", []byte("one\ntwo"), nil, "")
	v := giga.NewView(f, 10, 4, 4)
	diff := giga.Diff{{Kind: giga.PatchModified, Start: 1, Count: 1}}

	rows := v.Content(diff)

	assert.Len(t, rows, 4)
	assert.Equal(t, 0, rows[0].Line)
	assert.Equal(t, giga.PatchKind(0), rows[0].Marker)
	assert.Equal(t, 1, rows[1].Line)
	assert.Equal(t, giga.PatchModified, rows[1].Marker)
	assert.Len(t, rows[1].Glyphs, 3)
	assert.Equal(t, -1, rows[2].Line)
	assert.Equal(t, -1, rows[3].Line)
}

func TestView_Resize(t *testing.T) {
	t.Parallel()

	v := giga.NewView(giga.NewFile("/a", numbered(20), nil, ""), 10, 10, 4)
	v.MoveTo(9, 0)

	v.Resize(10, 3)

	top, _ := v.Origin()
	row, _ := v.CursorScreen()
	assert.Equal(t, 7, top)
	assert.Equal(t, 2, row)
}
