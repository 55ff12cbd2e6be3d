// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"unicode/utf8"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/giga"
)

// Compile-time interface verification.
var _ giga.Colorizer = (*Colorizer)(nil)

// StyleFunc maps chroma token types to colors.
type StyleFunc func(chromalib.TokenType) giga.Color

// Colorizer colors text with chroma lexers.
type Colorizer struct {
	styleFunc StyleFunc
}

// NewColorizer creates a colorizer with the given style function.
// Use StyleFromPalette to create a style function from a giga.Palette.
func NewColorizer(styleFunc StyleFunc) *Colorizer {
	return &Colorizer{styleFunc: styleFunc}
}

// Colorize returns one color per rune of text. It returns nil when the
// language is not supported or the lexer fails.
func (c *Colorizer) Colorize(language, text string) []giga.Color {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return []giga.Color{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}

	// Coalesce for better performance with consecutive tokens of the same type
	lexer = chromalib.Coalesce(lexer)

	// The default options rewrite line endings, which would shift colors
	// against the buffer.
	iterator, err := lexer.Tokenise(&chromalib.TokeniseOptions{State: "root"}, text)
	if err != nil {
		return nil
	}

	colors := make([]giga.Color, 0, n)
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		color := c.styleFunc(token.Type)
		for range token.Value {
			colors = append(colors, color)
		}
	}

	// Some lexers append a final newline.
	if len(colors) > n {
		colors = colors[:n]
	}
	for len(colors) < n {
		colors = append(colors, "")
	}
	return colors
}
