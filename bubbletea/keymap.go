// Package bubbletea decodes terminal input with Bubble Tea and maps keys to
// editor commands with bubbles key bindings.
package bubbletea

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/fwojciec/giga"
)

// Compile-time interface verification.
var _ giga.Keymap = (*KeyMap)(nil)

// KeyMap defines the key bindings of every mode.
type KeyMap struct {
	// NORMAL
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	LineStart    key.Binding
	LineEnd      key.Binding
	GotoTop      key.Binding
	GotoBottom   key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
	Insert       key.Binding
	InsertStart  key.Binding
	Append       key.Binding
	AppendEnd    key.Binding
	OpenBelow    key.Binding
	OpenAbove    key.Binding
	DeleteLine   key.Binding
	Yank         key.Binding
	Paste        key.Binding
	Rename       key.Binding
	Save         key.Binding
	Redraw       key.Binding
	Quit         key.Binding

	// INSERT
	ExitInsert key.Binding
	NewLine    key.Binding
	Backspace  key.Binding
	Tab        key.Binding
	ArrowUp    key.Binding
	ArrowDown  key.Binding
	ArrowLeft  key.Binding
	ArrowRight key.Binding

	// RENAME
	ConfirmRename key.Binding
	CancelRename  key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "right"),
		),
		LineStart: key.NewBinding(
			key.WithKeys("0", "home"),
			key.WithHelp("0", "line start"),
		),
		LineEnd: key.NewBinding(
			key.WithKeys("$", "end"),
			key.WithHelp("$", "line end"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to top"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "half page down"),
		),
		Insert: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "insert"),
		),
		InsertStart: key.NewBinding(
			key.WithKeys("I"),
			key.WithHelp("I", "insert at line start"),
		),
		Append: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "append"),
		),
		AppendEnd: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "append at line end"),
		),
		OpenBelow: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open line below"),
		),
		OpenAbove: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "open line above"),
		),
		DeleteLine: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete line"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yank line"),
		),
		Paste: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "paste below"),
		),
		Rename: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "rename"),
		),
		Save: key.NewBinding(
			key.WithKeys("w", "ctrl+s"),
			key.WithHelp("w", "write"),
		),
		Redraw: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "redraw"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ExitInsert: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "normal mode"),
		),
		NewLine: key.NewBinding(
			key.WithKeys("enter"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
		),
		ArrowUp:    key.NewBinding(key.WithKeys("up")),
		ArrowDown:  key.NewBinding(key.WithKeys("down")),
		ArrowLeft:  key.NewBinding(key.WithKeys("left")),
		ArrowRight: key.NewBinding(key.WithKeys("right")),
		ConfirmRename: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		CancelRename: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// Parse returns the command bound to k in mode.
func (km KeyMap) Parse(k giga.Key, mode giga.Mode) (giga.Command, bool) {
	switch mode {
	case giga.ModeInsert:
		return km.parseInsert(k)
	case giga.ModeRename:
		return km.parseRename(k)
	default:
		return km.parseNormal(k)
	}
}

func (km KeyMap) parseNormal(k giga.Key) (giga.Command, bool) {
	switch {
	case key.Matches(k, km.Quit):
		return giga.Command{Kind: giga.CmdQuit}, true
	case key.Matches(k, km.Up):
		return giga.Move(0, -1), true
	case key.Matches(k, km.Down):
		return giga.Move(0, 1), true
	case key.Matches(k, km.Left):
		return giga.Move(-1, 0), true
	case key.Matches(k, km.Right):
		return giga.Move(1, 0), true
	case key.Matches(k, km.LineStart):
		return giga.Command{Kind: giga.CmdLineStart}, true
	case key.Matches(k, km.LineEnd):
		return giga.Command{Kind: giga.CmdLineEnd}, true
	case key.Matches(k, km.GotoTop):
		return giga.Command{Kind: giga.CmdTop}, true
	case key.Matches(k, km.GotoBottom):
		return giga.Command{Kind: giga.CmdBottom}, true
	case key.Matches(k, km.HalfPageUp):
		return giga.Command{Kind: giga.CmdHalfPageUp}, true
	case key.Matches(k, km.HalfPageDown):
		return giga.Command{Kind: giga.CmdHalfPageDown}, true
	case key.Matches(k, km.Insert):
		return giga.Command{Kind: giga.CmdEnterInsert}, true
	case key.Matches(k, km.InsertStart):
		return giga.Block(
			giga.Command{Kind: giga.CmdLineStart},
			giga.Command{Kind: giga.CmdEnterInsert},
		), true
	case key.Matches(k, km.Append):
		return giga.Block(
			giga.Move(1, 0),
			giga.Command{Kind: giga.CmdEnterInsert},
		), true
	case key.Matches(k, km.AppendEnd):
		return giga.Block(
			giga.Command{Kind: giga.CmdLineEnd},
			giga.Command{Kind: giga.CmdEnterInsert},
		), true
	case key.Matches(k, km.OpenBelow):
		return giga.Block(
			giga.Command{Kind: giga.CmdLineEnd},
			giga.Command{Kind: giga.CmdEnterInsert},
			giga.Command{Kind: giga.CmdNewLine},
		), true
	case key.Matches(k, km.OpenAbove):
		return giga.Block(
			giga.Command{Kind: giga.CmdLineStart},
			giga.Command{Kind: giga.CmdEnterInsert},
			giga.Command{Kind: giga.CmdNewLine},
			giga.Move(0, -1),
		), true
	case key.Matches(k, km.DeleteLine):
		return giga.Command{Kind: giga.CmdDeleteLine}, true
	case key.Matches(k, km.Yank):
		return giga.Command{Kind: giga.CmdYankLine}, true
	case key.Matches(k, km.Paste):
		return giga.Command{Kind: giga.CmdPaste}, true
	case key.Matches(k, km.Rename):
		return giga.Command{Kind: giga.CmdEnterRename}, true
	case key.Matches(k, km.Save):
		return giga.Command{Kind: giga.CmdSave}, true
	case key.Matches(k, km.Redraw):
		return giga.Command{Kind: giga.CmdRedraw}, true
	}
	return giga.Command{}, false
}

func (km KeyMap) parseInsert(k giga.Key) (giga.Command, bool) {
	switch {
	case key.Matches(k, km.ExitInsert):
		return giga.Command{Kind: giga.CmdExitInsert}, true
	case key.Matches(k, km.NewLine):
		return giga.Command{Kind: giga.CmdNewLine}, true
	case key.Matches(k, km.Backspace):
		return giga.Command{Kind: giga.CmdDelete}, true
	case key.Matches(k, km.Tab):
		return giga.Command{Kind: giga.CmdInsert, Runes: []rune{'\t'}}, true
	case key.Matches(k, km.ArrowUp):
		return giga.Move(0, -1), true
	case key.Matches(k, km.ArrowDown):
		return giga.Move(0, 1), true
	case key.Matches(k, km.ArrowLeft):
		return giga.Move(-1, 0), true
	case key.Matches(k, km.ArrowRight):
		return giga.Move(1, 0), true
	case len(k.Runes) > 0:
		return giga.Command{Kind: giga.CmdInsert, Runes: k.Runes}, true
	}
	return giga.Command{}, false
}

func (km KeyMap) parseRename(k giga.Key) (giga.Command, bool) {
	switch {
	case key.Matches(k, km.ConfirmRename):
		return giga.Command{Kind: giga.CmdConfirmRename}, true
	case key.Matches(k, km.CancelRename):
		return giga.Command{Kind: giga.CmdCancelRename}, true
	case key.Matches(k, km.Backspace):
		return giga.Command{Kind: giga.CmdRenameDelete}, true
	case len(k.Runes) > 0:
		return giga.Command{Kind: giga.CmdRenameInput, Runes: k.Runes}, true
	}
	return giga.Command{}, false
}
