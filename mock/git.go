package mock

import (
	"context"

	"github.com/fwojciec/giga"
)

// Compile-time interface verification.
var _ giga.GitRunner = (*GitRunner)(nil)

// GitRunner is a mock implementation of giga.GitRunner.
type GitRunner struct {
	FullNameFn func(ctx context.Context, path string) (string, error)
	ShowHeadFn func(ctx context.Context, dir, name string) ([]byte, error)
	RefNameFn  func(ctx context.Context, dir string) (string, error)
	GitDirFn   func(ctx context.Context, dir string) (string, error)
}

func (g *GitRunner) FullName(ctx context.Context, path string) (string, error) {
	return g.FullNameFn(ctx, path)
}

func (g *GitRunner) ShowHead(ctx context.Context, dir, name string) ([]byte, error) {
	return g.ShowHeadFn(ctx, dir, name)
}

func (g *GitRunner) RefName(ctx context.Context, dir string) (string, error) {
	return g.RefNameFn(ctx, dir)
}

func (g *GitRunner) GitDir(ctx context.Context, dir string) (string, error) {
	return g.GitDirFn(ctx, dir)
}
