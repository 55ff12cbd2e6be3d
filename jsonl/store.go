// Package jsonl persists cursor positions as JSON lines.
package jsonl

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/giga"
)

// Compile-time interface verification.
var _ giga.PositionStore = (*Store)(nil)

// DefaultMaxEntries bounds the number of remembered files.
const DefaultMaxEntries = 1000

// entry is one line of the positions file.
type entry struct {
	Path    string    `json:"path"`
	Line    int       `json:"line"`
	Col     int       `json:"col"`
	SavedAt time.Time `json:"saved_at"`
}

// Store remembers the last cursor position per file in a JSONL file. When
// a path appears more than once, the last line wins.
type Store struct {
	mu         sync.Mutex
	path       string
	maxEntries int
	now        func() time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithMaxEntries bounds the number of remembered files.
func WithMaxEntries(n int) StoreOption {
	return func(s *Store) { s.maxEntries = n }
}

// NewStore creates a store backed by the file at path.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{
		path:       path,
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the remembered position of path.
func (s *Store) Get(path string) (giga.Position, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return giga.Position{}, false, err
	}
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Path == path {
			return giga.Position{Line: entries[i].Line, Col: entries[i].Col}, true, nil
		}
	}
	return giga.Position{}, false, nil
}

// Put records pos for path and compacts the file.
func (s *Store) Put(path string, pos giga.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	entries = append(entries, entry{Path: path, Line: pos.Line, Col: pos.Col, SavedAt: s.now().UTC()})
	return s.save(compact(entries, s.maxEntries))
}

// load reads all entries. Returns nil if the file doesn't exist.
func (s *Store) load() ([]entry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var entries []entry
	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var e entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		entries = append(entries, e)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// save replaces the file with entries, creating parent directories if
// needed.
func (s *Store) save(entries []entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// compact keeps the last entry per path, oldest first, limited to the max
// most recent ones.
func compact(entries []entry, max int) []entry {
	seen := make(map[string]bool, len(entries))
	var out []entry
	for i := len(entries) - 1; i >= 0; i-- {
		if seen[entries[i].Path] {
			continue
		}
		seen[entries[i].Path] = true
		out = append(out, entries[i])
		if len(out) == max {
			break
		}
	}
	slices.Reverse(out)
	return out
}
