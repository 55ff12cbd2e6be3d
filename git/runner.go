// Package git provides access to git operations via shell commands.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fwojciec/giga"
)

// Compile-time interface verification.
var _ giga.GitRunner = (*Runner)(nil)

// Runner executes git commands via shell.
type Runner struct{}

// NewRunner creates a new git runner.
func NewRunner() *Runner {
	return &Runner{}
}

// FullName returns the repository-relative name of path as recorded at
// HEAD, or an empty string when HEAD does not contain the file.
func (r *Runner) FullName(ctx context.Context, path string) (string, error) {
	out, err := r.run(ctx, filepath.Dir(path), "ls-tree", "--full-name", "--name-only", "HEAD", "--", filepath.Base(path))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// ShowHead returns the content of name at HEAD.
func (r *Runner) ShowHead(ctx context.Context, dir, name string) ([]byte, error) {
	return r.run(ctx, dir, "show", "HEAD:"+name)
}

// RefName returns the abbreviated name of HEAD, such as the branch name.
func (r *Runner) RefName(ctx context.Context, dir string) (string, error) {
	out, err := r.run(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// GitDir returns the absolute path of the repository's .git directory.
func (r *Runner) GitDir(ctx context.Context, dir string) (string, error) {
	out, err := r.run(ctx, dir, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func (r *Runner) run(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", dir}, args...)...)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr := strings.TrimSpace(string(exitErr.Stderr))
			if strings.Contains(stderr, "not a git repository") {
				return nil, fmt.Errorf("git %s failed: %w", args[0], giga.ErrNotRepository)
			}
			return nil, fmt.Errorf("git %s failed: %s", args[0], stderr)
		}
		return nil, fmt.Errorf("git %s failed: %w", args[0], err)
	}
	return output, nil
}
