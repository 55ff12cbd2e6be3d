// Package fsnotify watches a git repository for changes to HEAD, the index
// and branch refs.
package fsnotify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/fwojciec/giga"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the watcher waits for the repository to
// settle before reading the ref.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reports repository changes for the repository containing dir.
type Watcher struct {
	git      giga.GitRunner
	dir      string
	debounce time.Duration
	logger   *zap.Logger
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the settle interval.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.debounce = d }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) WatcherOption {
	return func(w *Watcher) { w.logger = l }
}

// NewWatcher creates a watcher for the repository containing dir.
func NewWatcher(git giga.GitRunner, dir string, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		git:      git,
		dir:      dir,
		debounce: DefaultDebounce,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches until ctx is done, sending a RepoChange to out after each
// settled burst of repository activity.
func (w *Watcher) Run(ctx context.Context, out chan<- giga.RepoChange) error {
	gitDir, err := w.git.GitDir(ctx, w.dir)
	if err != nil {
		return fmt.Errorf("locate git dir: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(gitDir); err != nil {
		return fmt.Errorf("watch %s: %w", gitDir, err)
	}
	heads := filepath.Join(gitDir, "refs", "heads")
	if err := fsw.Add(heads); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("watch %s: %w", heads, err)
	}

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if relevant(gitDir, ev) {
				timer.Reset(w.debounce)
				fire = timer.C
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("repository watch error", zap.Error(err))
		case <-fire:
			fire = nil
			ref, err := w.git.RefName(ctx, w.dir)
			if err != nil {
				w.logger.Warn("read ref failed", zap.Error(err))
				continue
			}
			select {
			case out <- giga.RepoChange{Ref: ref}:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// relevant reports whether ev touches HEAD, the index or a branch ref.
func relevant(gitDir string, ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	name := filepath.Base(ev.Name)
	if strings.HasSuffix(name, ".lock") {
		return false
	}
	if filepath.Dir(ev.Name) == gitDir {
		return name == "HEAD" || name == "index" || name == "packed-refs"
	}
	return true
}
