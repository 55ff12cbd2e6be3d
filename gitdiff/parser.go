// Package gitdiff implements diff parsing using bluekeyes/go-gitdiff.
package gitdiff

import (
	"io"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/giga"
)

// Parse reads a unified diff of a single file and converts its fragments
// into patches on the new side. Additional files in the input are ignored.
func Parse(r io.Reader) (giga.Diff, error) {
	files, _, err := gitdiff.Parse(r)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	var diff giga.Diff
	for _, frag := range files[0].TextFragments {
		diff = append(diff, convertFragment(frag)...)
	}
	return diff, nil
}

// convertFragment walks the fragment lines and emits one patch per run of
// changed lines. Context lines end a run.
func convertFragment(frag *gitdiff.TextFragment) []giga.Patch {
	var patches []giga.Patch

	newLineNum := int(frag.NewPosition)
	if frag.NewLines == 0 {
		// Pure deletions report the line before the removed range.
		newLineNum++
	}
	runStart, added, deleted := newLineNum, 0, 0

	flush := func() {
		switch {
		case added > 0 && deleted > 0:
			patches = append(patches, giga.Patch{Kind: giga.PatchModified, Start: runStart - 1, Count: added})
		case added > 0:
			patches = append(patches, giga.Patch{Kind: giga.PatchAdded, Start: runStart - 1, Count: added})
		case deleted > 0:
			patches = append(patches, giga.Patch{Kind: giga.PatchRemoved, Start: max(runStart-2, 0)})
		}
		added, deleted = 0, 0
	}

	for _, l := range frag.Lines {
		switch l.Op {
		case gitdiff.OpContext:
			flush()
			newLineNum++
			runStart = newLineNum
		case gitdiff.OpAdd:
			added++
			newLineNum++
		case gitdiff.OpDelete:
			deleted++
		}
	}
	flush()

	return patches
}
