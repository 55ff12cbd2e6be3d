package lipgloss_test

import (
	"strings"
	"testing"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/giga"
	"github.com/fwojciec/giga/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func asciiRenderer() *lg.Renderer {
	return lg.NewRenderer(nil, termenv.WithProfile(termenv.Ascii))
}

func TestStatusBar_Render(t *testing.T) {
	t.Parallel()

	t.Run("lays out mode, name and ref", func(t *testing.T) {
		t.Parallel()

		bar := lipgloss.NewStatusBar(lipgloss.DefaultTheme(), asciiRenderer())
		out := bar.Render(giga.Status{Mode: giga.ModeInsert, Name: "main.go", Ref: "main"}, 40)

		assert.Equal(t, 40, ansi.StringWidth(out))
		assert.True(t, strings.HasPrefix(out, " INSERT "))
		assert.True(t, strings.HasSuffix(out, " main "))
		assert.Contains(t, out, "main.go")
	})

	t.Run("marks modified files", func(t *testing.T) {
		t.Parallel()

		bar := lipgloss.NewStatusBar(lipgloss.DefaultTheme(), asciiRenderer())
		out := bar.Render(giga.Status{Name: "notes.txt", Modified: true}, 40)

		assert.Contains(t, out, "notes.txt [+]")
	})

	t.Run("shows the message instead of the ref", func(t *testing.T) {
		t.Parallel()

		bar := lipgloss.NewStatusBar(lipgloss.DefaultTheme(), asciiRenderer())
		out := bar.Render(giga.Status{Name: "a", Ref: "main", Message: `"a" written`}, 40)

		assert.Contains(t, out, `"a" written`)
		assert.NotContains(t, out, "main")
	})

	t.Run("never exceeds the width", func(t *testing.T) {
		t.Parallel()

		bar := lipgloss.NewStatusBar(lipgloss.DefaultTheme(), asciiRenderer())
		st := giga.Status{Name: strings.Repeat("x", 100), Ref: "feature/long-branch-name"}

		for _, w := range []int{1, 5, 10, 20, 80} {
			assert.LessOrEqual(t, ansi.StringWidth(bar.Render(st, w)), w)
		}
		assert.Empty(t, bar.Render(st, 0))
	})
}
