package diffcmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/fwojciec/giga"
)

// Compile-time interface verification.
var _ giga.DiffEngine = (*Engine)(nil)

// Engine diffs the working copy against HEAD by running "diff <head> -"
// with the buffer content on standard input.
type Engine struct {
	git     giga.GitRunner
	command string
}

// NewEngine creates an engine running command (usually "diff").
func NewEngine(git giga.GitRunner, command string) *Engine {
	if command == "" {
		command = "diff"
	}
	return &Engine{git: git, command: command}
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

	tmp, err := os.CreateTemp("", "giga-head-*")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(head); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	cmd := exec.CommandContext(ctx, e.command, tmp.Name(), "-")
	cmd.Stdin = bytes.NewReader(content)
	output, err := cmd.Output()
	if err != nil {
		// Exit status 1 means the inputs differ.
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%s failed: %w", e.command, err)
		}
		if exitErr.ExitCode() != 1 {
			return nil, fmt.Errorf("%s failed: %s", e.command, bytes.TrimSpace(exitErr.Stderr))
		}
	}
	return Parse(bytes.NewReader(output))
}
