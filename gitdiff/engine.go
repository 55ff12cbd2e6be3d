package gitdiff

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/fwojciec/giga"
)

// Compile-time interface verification.
var _ giga.DiffEngine = (*Engine)(nil)

// Engine diffs the working copy against HEAD with
// "git diff --no-index -U0" and parses the unified output.
type Engine struct {
	git giga.GitRunner
}

// NewEngine creates a unified diff engine.
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

	dir, err := os.MkdirTemp("", "giga-diff-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	oldPath := filepath.Join(dir, "old")
	newPath := filepath.Join(dir, "new")
	if err := os.WriteFile(oldPath, head, 0o600); err != nil {
		return nil, err
	}
	if err := os.WriteFile(newPath, content, 0o600); err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, "git", "diff", "--no-index", "--no-color", "--no-ext-diff", "-U0", "--", oldPath, newPath)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("git diff failed: %w", err)
		}
		if exitErr.ExitCode() != 1 {
			return nil, fmt.Errorf("git diff failed: %s", bytes.TrimSpace(exitErr.Stderr))
		}
	}
	return Parse(bytes.NewReader(output))
}
