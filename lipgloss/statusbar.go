package lipgloss

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/giga"
)

// StatusBar renders the editor status line: the mode on the left, the file
// name centered and the git ref (or a message) on the right.
type StatusBar struct {
	mode  lipgloss.Style
	bar   lipgloss.Style
	right lipgloss.Style
}

// NewStatusBar creates a status bar styled by theme. The renderer decides
// the color profile; pass nil for the default renderer.
func NewStatusBar(theme giga.Theme, renderer *lipgloss.Renderer) *StatusBar {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	styles := theme.Styles()
	return &StatusBar{
		mode:  pairStyle(renderer, styles.StatusMode).Bold(true),
		bar:   pairStyle(renderer, styles.StatusBar),
		right: pairStyle(renderer, styles.StatusRef),
	}
}

// Render returns the status line for st, exactly width columns wide.
func (s *StatusBar) Render(st giga.Status, width int) string {
	if width <= 0 {
		return ""
	}
	left := s.mode.Render(" " + st.Mode.String() + " ")

	var right string
	info := st.Ref
	if st.Message != "" {
		info = st.Message
	}
	if info != "" {
		right = s.right.Render(" " + info + " ")
	}

	name := st.Name
	if st.Modified {
		name += " [+]"
	}

	mid := width - lipgloss.Width(left) - lipgloss.Width(right)
	if mid < 1 {
		return ansi.Truncate(left+right, width, "…")
	}
	center := s.bar.Width(mid).Align(lipgloss.Center).Render(ansi.Truncate(name, mid, "…"))
	return left + center + right
}

func pairStyle(r *lipgloss.Renderer, p giga.ColorPair) lipgloss.Style {
	style := r.NewStyle()
	if p.Foreground != "" {
		style = style.Foreground(lipgloss.Color(p.Foreground))
	}
	if p.Background != "" {
		style = style.Background(lipgloss.Color(p.Background))
	}
	return style
}
