// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import (
	"fmt"

	"github.com/fwojciec/giga"
)

// Compile-time interface verification.
var _ giga.Theme = (*Theme)(nil)

// Theme implements giga.Theme.
type Theme struct {
	styles  giga.Styles
	palette giga.Palette
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() giga.Styles {
	return t.styles
}

// Palette returns the semantic color palette for this theme.
func (t *Theme) Palette() giga.Palette {
	return t.palette
}

// ThemeByName returns the theme called name ("dark" or "light").
func ThemeByName(name string) (*Theme, error) {
	switch name {
	case "", "dark":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	default:
		return nil, fmt.Errorf("unknown theme %q", name)
	}
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme for dark terminal backgrounds (Catppuccin Mocha).
func DarkTheme() *Theme {
	p := giga.Palette{
		Background: "#1e1e2e",
		Foreground: "#cdd6f4",

		Added:    "#a6e3a1",
		Deleted:  "#f38ba8",
		Modified: "#f9e2af",

		Keyword:     "#cba6f7",
		String:      "#a6e3a1",
		Number:      "#fab387",
		Comment:     "#6c7086",
		Operator:    "#89dceb",
		Function:    "#89b4fa",
		Type:        "#f9e2af",
		Constant:    "#fab387",
		Punctuation: "#9399b2",

		UIBackground: "#313244",
		UIForeground: "#a6adc8",
		UIAccent:     "#89b4fa",
	}
	return newTheme(p, p.Background)
}

// LightTheme returns a theme for light terminal backgrounds (Catppuccin Latte).
func LightTheme() *Theme {
	p := giga.Palette{
		Background: "#eff1f5",
		Foreground: "#4c4f69",

		Added:    "#40a02b",
		Deleted:  "#d20f39",
		Modified: "#df8e1d",

		Keyword:     "#8839ef",
		String:      "#40a02b",
		Number:      "#fe640b",
		Comment:     "#9ca0b0",
		Operator:    "#04a5e5",
		Function:    "#1e66f5",
		Type:        "#df8e1d",
		Constant:    "#fe640b",
		Punctuation: "#7c7f93",

		UIBackground: "#e6e9ef",
		UIForeground: "#5c5f77",
		UIAccent:     "#1e66f5",
	}
	return newTheme(p, "#ffffff")
}

// newTheme derives the chrome styles from a palette. modeText is the text
// color drawn on the accent background of the mode block.
func newTheme(p giga.Palette, modeText giga.Color) *Theme {
	return &Theme{
		palette: p,
		styles: giga.Styles{
			LineNumber: giga.ColorPair{Foreground: p.UIAccent},
			Added:      giga.ColorPair{Foreground: p.Added},
			Removed:    giga.ColorPair{Foreground: p.Deleted},
			Modified:   giga.ColorPair{Foreground: p.Modified},
			StatusBar:  giga.ColorPair{Foreground: p.UIForeground, Background: p.UIBackground},
			StatusMode: giga.ColorPair{Foreground: modeText, Background: p.UIAccent},
			StatusRef:  giga.ColorPair{Foreground: p.UIAccent, Background: p.UIBackground},
		},
	}
}
