// Package clipboard provides the system clipboard and an in-process
// fallback.
package clipboard

import (
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/fwojciec/giga"
)

// Compile-time interface verification.
var (
	_ giga.Clipboard = (*System)(nil)
	_ giga.Clipboard = (*Memory)(nil)
)

// Supported reports whether a system clipboard tool is available.
func Supported() bool {
	return !clipboard.Unsupported
}

// System uses the platform clipboard (pbcopy, xclip, xsel, wl-copy, ...).
type System struct{}

// NewSystem returns a new System clipboard.
func NewSystem() *System {
	return &System{}
}

// Copy writes content to the system clipboard.
func (s *System) Copy(content string) error {
	if clipboard.Unsupported {
		return giga.ErrNoClipboard
	}
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("clipboard copy failed: %w", err)
	}
	return nil
}

// Paste reads the system clipboard.
func (s *System) Paste() (string, error) {
	if clipboard.Unsupported {
		return "", giga.ErrNoClipboard
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("clipboard paste failed: %w", err)
	}
	return text, nil
}

// Memory keeps the clipboard inside the process.
type Memory struct {
	mu   sync.Mutex
	text string
	set  bool
}

// NewMemory returns an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Copy stores content.
func (m *Memory) Copy(content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text, m.set = content, true
	return nil
}

// Paste returns the last copied content, or ErrNoClipboard if nothing was
// copied yet.
func (m *Memory) Paste() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return "", giga.ErrNoClipboard
	}
	return m.text, nil
}

// New returns the system clipboard when supported and a Memory clipboard
// otherwise.
func New() giga.Clipboard {
	if Supported() {
		return NewSystem()
	}
	return NewMemory()
}
