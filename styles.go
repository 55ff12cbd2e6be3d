package giga

// ColorPair represents a foreground and background color combination.
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground Color
	Background Color
}

// Styles contains color pairs for the editor chrome.
type Styles struct {
	LineNumber ColorPair // gutter line numbers
	Added      ColorPair // marker of added lines
	Removed    ColorPair // marker where lines were removed
	Modified   ColorPair // marker of changed lines
	StatusBar  ColorPair // status bar body
	StatusMode ColorPair // mode block on the left of the status bar
	StatusRef  ColorPair // git ref or message on the right
}

// Marker returns the style of a diff marker.
func (s Styles) Marker(kind PatchKind) ColorPair {
	switch kind {
	case PatchAdded:
		return s.Added
	case PatchRemoved:
		return s.Removed
	case PatchModified:
		return s.Modified
	default:
		return ColorPair{}
	}
}

// Palette is the semantic color set a theme is built from. Syntax colors
// feed the colorizer.
type Palette struct {
	Background Color
	Foreground Color

	Added    Color
	Deleted  Color
	Modified Color

	Keyword     Color
	String      Color
	Number      Color
	Comment     Color
	Operator    Color
	Function    Color
	Type        Color
	Constant    Color
	Punctuation Color

	UIBackground Color
	UIForeground Color
	UIAccent     Color
}

// Theme provides styles and the palette.
type Theme interface {
	Styles() Styles
	Palette() Palette
}
