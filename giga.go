// Package giga provides domain types for a modal terminal text editor.
package giga

import (
	"context"
	"errors"
)

// Sentinel errors.
var (
	ErrEmptyName     = errors.New("file name is empty")
	ErrNotRepository = errors.New("not a git repository")
	ErrNoClipboard   = errors.New("clipboard unavailable")
)

// Mode is the editor's input mode.
type Mode int

// Editor modes.
const (
	ModeNormal Mode = iota
	ModeInsert
	ModeRename
)

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "INSERT"
	case ModeRename:
		return "RENAME"
	default:
		return "NORMAL"
	}
}

// Color is a hex color in "#RRGGBB" format.
// The empty string means the terminal's default color.
type Color string

// Cell is a single character of a line together with its syntax color.
type Cell struct {
	Rune  rune
	Color Color
}

// PatchKind classifies a patch. The zero value means "no change".
type PatchKind int

// Patch kinds.
const (
	PatchAdded PatchKind = iota + 1
	PatchRemoved
	PatchModified
)

func (k PatchKind) String() string {
	switch k {
	case PatchAdded:
		return "added"
	case PatchRemoved:
		return "removed"
	case PatchModified:
		return "modified"
	default:
		return "none"
	}
}

// Patch is a contiguous range of changed lines in the working copy.
type Patch struct {
	Kind  PatchKind
	Start int // 0-based line in the working copy
	Count int // 0 for removed patches
}

// Diff is the set of patches between HEAD and the working copy.
// A Diff is replaced wholesale and never mutated after it is built.
type Diff []Patch

// Marker returns the kind of change shown next to line.
// Added and modified ranges take precedence over a removal marker on the
// same line.
func (d Diff) Marker(line int) PatchKind {
	var marker PatchKind
	for _, p := range d {
		switch p.Kind {
		case PatchAdded, PatchModified:
			if line >= p.Start && line < p.Start+p.Count {
				return p.Kind
			}
		case PatchRemoved:
			if line == p.Start {
				marker = PatchRemoved
			}
		}
	}
	return marker
}

// UntrackedDiff returns the diff of a file that git does not know about:
// every line is added. A file always has at least one line.
func UntrackedDiff(lines int) Diff {
	return Diff{{Kind: PatchAdded, Start: 0, Count: max(lines, 1)}}
}

// DiffEngine computes the diff between the committed version of path and
// the given working copy content.
type DiffEngine interface {
	Diff(ctx context.Context, path string, content []byte) (Diff, error)
}

// GitRunner provides access to the git operations the editor needs.
type GitRunner interface {
	// FullName returns the repository-relative name of path, or an empty
	// string when the file is not tracked.
	FullName(ctx context.Context, path string) (string, error)
	// ShowHead returns the content of name at HEAD in the repository that
	// contains dir.
	ShowHead(ctx context.Context, dir, name string) ([]byte, error)
	// RefName returns the abbreviated name of HEAD.
	RefName(ctx context.Context, dir string) (string, error)
	// GitDir returns the absolute path of the .git directory.
	GitDir(ctx context.Context, dir string) (string, error)
}

// Colorizer assigns a color to every character of text.
// The result has one entry per rune of text (newlines included), or is nil
// when the language is not supported.
type Colorizer interface {
	Colorize(language, text string) []Color
}

// LanguageDetector detects a language hint from a file path.
type LanguageDetector interface {
	DetectFromPath(path string) string
}

// Clipboard reads and writes the system clipboard.
type Clipboard interface {
	Copy(content string) error
	Paste() (string, error)
}

// FileStore loads and saves file contents.
type FileStore interface {
	// Load returns the content of path. A missing file yields nil content
	// and no error.
	Load(path string) ([]byte, error)
	// Save replaces the content of path.
	Save(path string, content []byte) error
}

// Position is a cursor position in a file.
type Position struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// PositionStore remembers the last cursor position per file.
type PositionStore interface {
	Get(path string) (Position, bool, error)
	Put(path string, pos Position) error
}

// Screen reports the terminal size.
type Screen interface {
	Size() (width, height int, err error)
}

// Renderer draws a frame on the terminal, limited to what order names.
type Renderer interface {
	Render(order RefreshOrder, frame Frame) error
}

// Keymap translates a key into a command for the given mode.
type Keymap interface {
	Parse(k Key, mode Mode) (Command, bool)
}

// Key is a decoded key press.
type Key struct {
	Name  string // "a", "enter", "ctrl+s", ...
	Runes []rune // printable input, empty for special keys
}

// String returns the key name so keys can be matched against bindings.
func (k Key) String() string {
	return k.Name
}

// DiffRequest asks for the diff of a content generation.
type DiffRequest struct {
	Generation uint64
	Path       string
	Content    []byte
}

// DiffResult is the outcome of a DiffRequest.
type DiffResult struct {
	Generation uint64
	Diff       Diff
	Err        error
}

// DiffRequester accepts diff requests without blocking.
type DiffRequester interface {
	Request(req DiffRequest)
}

// RepoChange reports that the repository state changed.
type RepoChange struct {
	Ref string
}
