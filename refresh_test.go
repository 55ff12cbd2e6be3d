package giga_test

import (
	"testing"

	"github.com/fwojciec/giga"
	"github.com/stretchr/testify/assert"
)

func TestLinesRefresh(t *testing.T) {
	t.Parallel()

	t.Run("sorts and deduplicates rows", func(t *testing.T) {
		t.Parallel()

		order := giga.LinesRefresh(4, 1, 4, 2)

		assert.Equal(t, giga.RefreshLines, order.Kind)
		assert.Equal(t, []int{1, 2, 4}, order.Lines)
	})

	t.Run("no rows means no refresh", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, giga.NoRefresh, giga.LinesRefresh())
	})
}

func TestRefreshOrder_Merge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b giga.RefreshOrder
		want giga.RefreshOrder
	}{
		{"none and cursor", giga.NoRefresh, giga.CursorRefresh, giga.CursorRefresh},
		{"cursor and status", giga.CursorRefresh, giga.StatusRefresh, giga.StatusRefresh},
		{"lines union", giga.LinesRefresh(3), giga.LinesRefresh(1, 3), giga.LinesRefresh(1, 3)},
		{
			"lines and status",
			giga.LinesRefresh(2), giga.StatusRefresh,
			giga.RefreshOrder{Kind: giga.RefreshLines, Lines: []int{2}, Status: true},
		},
		{"lines and cursor", giga.LinesRefresh(2), giga.CursorRefresh, giga.LinesRefresh(2)},
		{"all absorbs lines", giga.LinesRefresh(2), giga.AllRefresh, giga.AllRefresh},
		{"terminate wins", giga.AllRefresh, giga.Terminate, giga.Terminate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.a.Merge(tt.b))
			assert.Equal(t, tt.want, tt.b.Merge(tt.a), "merge is symmetric")
		})
	}
}

// Merging never asks for less than either input.
func TestRefreshOrder_MergeCovers(t *testing.T) {
	t.Parallel()

	orders := []giga.RefreshOrder{
		giga.NoRefresh,
		giga.CursorRefresh,
		giga.StatusRefresh,
		giga.LinesRefresh(0),
		giga.LinesRefresh(1, 5),
		giga.LinesRefresh(2).Merge(giga.StatusRefresh),
		giga.AllRefresh,
		giga.Terminate,
	}
	covers := func(m, o giga.RefreshOrder) bool {
		if m.Kind < o.Kind {
			return false
		}
		if o.RedrawsStatus() && m.Kind < giga.RefreshAll && !m.RedrawsStatus() {
			return false
		}
		if m.Kind == giga.RefreshLines && o.Kind == giga.RefreshLines {
			for _, row := range o.Lines {
				if !containsInt(m.Lines, row) {
					return false
				}
			}
		}
		return true
	}
	for _, a := range orders {
		for _, b := range orders {
			m := a.Merge(b)
			assert.True(t, covers(m, a), "%v.Merge(%v) = %v does not cover %v", a, b, m, a)
			assert.True(t, covers(m, b), "%v.Merge(%v) = %v does not cover %v", a, b, m, b)
		}
	}
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func TestRefreshOrder_RedrawsStatus(t *testing.T) {
	t.Parallel()

	assert.False(t, giga.CursorRefresh.RedrawsStatus())
	assert.True(t, giga.StatusRefresh.RedrawsStatus())
	assert.False(t, giga.LinesRefresh(1).RedrawsStatus())
	assert.True(t, giga.LinesRefresh(1).Merge(giga.StatusRefresh).RedrawsStatus())
	assert.True(t, giga.AllRefresh.RedrawsStatus())
}
