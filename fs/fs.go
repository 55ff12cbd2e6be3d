// Package fs provides file storage and the editor's standard directories.
package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/giga"
)

const appName = "giga"

// DefaultCacheDir returns the default cache directory for giga.
// Uses XDG_CACHE_HOME if set, otherwise falls back to ~/.cache/giga,
// or system temp directory if home is unavailable.
func DefaultCacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(home, ".cache", appName)
}

// DefaultConfigDir returns the default config directory for giga, under
// XDG_CONFIG_HOME or ~/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(home, ".config", appName)
}

// Compile-time interface verification.
var _ giga.FileStore = (*Store)(nil)

// Store reads and writes files on the local file system.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load returns the content of path, or nil if the file doesn't exist.
func (s *Store) Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Save writes content to a temporary file next to path and renames it
// into place. An existing file keeps its permissions.
func (s *Store) Save(path string, content []byte) error {
	if path == "" {
		return giga.ErrEmptyName
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, mode); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Chmod(tmp, mode); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("chmod %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
