package giga

import (
	"bytes"
	"context"
	"path/filepath"
)

// HeadContent returns the content of path as committed at HEAD. The second
// result is false when HEAD has no such file.
func HeadContent(ctx context.Context, git GitRunner, path string) ([]byte, bool, error) {
	name, err := git.FullName(ctx, path)
	if err != nil {
		return nil, false, err
	}
	if name == "" {
		return nil, false, nil
	}
	content, err := git.ShowHead(ctx, filepath.Dir(path), name)
	if err != nil {
		return nil, false, err
	}
	return content, true, nil
}

// LineCount returns the number of lines a buffer holding content has.
func LineCount(content []byte) int {
	return bytes.Count(content, []byte("\n")) + 1
}
