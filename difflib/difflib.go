// Package difflib computes line diffs in process with sergi/go-diff.
package difflib

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/giga"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// Compile-time interface verification.
var _ giga.DiffEngine = (*Engine)(nil)

// Engine fetches the HEAD content through git and diffs it without any
// external diff program.
type Engine struct {
	git giga.GitRunner
}

// NewEngine creates a builtin diff engine.
func NewEngine(git giga.GitRunner) *Engine {
	return &Engine{git: git}
}

// Diff implements giga.DiffEngine.
func (e *Engine) Diff(ctx context.Context, path string, content []byte) (giga.Diff, error) {
	head, tracked, err := giga.HeadContent(ctx, e.git, path)
	if err != nil {
		return nil, err
	}
	if !tracked {
		return giga.UntrackedDiff(giga.LineCount(content)), nil
	}
	return Lines(string(head), string(content)), nil
}

// Lines returns the patches that turn old into new, positioned on new.
// A deletion directly followed by an insertion is a modification.
func Lines(old, new string) giga.Diff {
	a, b, ok := encodeLines(old, new)
	if !ok {
		if n := giga.LineCount([]byte(new)); old != new {
			return giga.Diff{{Kind: giga.PatchModified, Count: n}}
		}
		return nil
	}
	diffs := dmp.New().DiffMainRunes(a, b, false)

	var result giga.Diff
	line, added, deleted := 0, 0, 0
	flush := func() {
		switch {
		case added > 0 && deleted > 0:
			result = append(result, giga.Patch{Kind: giga.PatchModified, Start: line - added, Count: added})
		case added > 0:
			result = append(result, giga.Patch{Kind: giga.PatchAdded, Start: line - added, Count: added})
		case deleted > 0:
			result = append(result, giga.Patch{Kind: giga.PatchRemoved, Start: max(line-1, 0)})
		}
		added, deleted = 0, 0
	}

	for _, df := range diffs {
		n := utf8.RuneCountInString(df.Text)
		switch df.Type {
		case dmp.DiffEqual:
			flush()
			line += n
		case dmp.DiffInsert:
			added += n
			line += n
		case dmp.DiffDelete:
			deleted += n
		}
	}
	flush()
	return result
}

// Distinct lines are encoded as runes from lineBase up. Every rune in that
// range is a valid scalar value, so one rune always stands for one line.
const (
	lineBase = 0xE000
	maxLines = utf8.MaxRune - lineBase + 1
)

// encodeLines maps every distinct line of old and new to its own rune. It
// reports false when there are more distinct lines than runes.
func encodeLines(old, new string) ([]rune, []rune, bool) {
	index := make(map[string]rune)
	encode := func(s string) ([]rune, bool) {
		lines := splitLines(s)
		out := make([]rune, len(lines))
		for i, l := range lines {
			r, ok := index[l]
			if !ok {
				if len(index) >= maxLines {
					return nil, false
				}
				r = rune(lineBase + len(index))
				index[l] = r
			}
			out[i] = r
		}
		return out, true
	}
	a, ok := encode(old)
	if !ok {
		return nil, nil, false
	}
	b, ok := encode(new)
	return a, b, ok
}

// splitLines splits s after each newline. A final line without a newline
// differs from the same text with one.
func splitLines(s string) []string {
	var lines []string
	for s != "" {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
	}
	return lines
}
