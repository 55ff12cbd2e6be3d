package giga

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// EditorConfig holds the collaborators of an Editor. Only Keymap is
// required; missing optional collaborators disable their feature.
type EditorConfig struct {
	Keymap    Keymap
	Files     FileStore
	Clipboard Clipboard
	Detector  LanguageDetector
	Diffs     DiffRequester
	Logger    *zap.Logger

	Width, Height int // terminal size
	TabWidth      int
	Ref           string
}

// Editor is the modal editing state machine.
//
// Each handled event returns exactly one RefreshOrder, computed by comparing
// the frame before and after the event.
type Editor struct {
	mode       Mode
	view       *View
	diff       Diff
	ref        string
	message    string
	renameFrom string

	width, height int

	keymap    Keymap
	files     FileStore
	clipboard Clipboard
	detector  LanguageDetector
	diffs     DiffRequester
	logger    *zap.Logger
}

// NewEditor creates an editor for file in NORMAL mode.
func NewEditor(file *File, cfg EditorConfig) *Editor {
	e := &Editor{
		ref:       cfg.Ref,
		width:     max(cfg.Width, 1),
		height:    max(cfg.Height, 1),
		keymap:    cfg.Keymap,
		files:     cfg.Files,
		clipboard: cfg.Clipboard,
		detector:  cfg.Detector,
		diffs:     cfg.Diffs,
		logger:    cfg.Logger,
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	e.view = NewView(file, 1, 1, cfg.TabWidth)
	e.layout()
	return e
}

// Mode returns the current mode.
func (e *Editor) Mode() Mode { return e.mode }

// File returns the edited file.
func (e *Editor) File() *File { return e.view.File() }

// Diff returns the diff currently displayed.
func (e *Editor) Diff() Diff { return e.diff }

// Cursor returns the absolute cursor position.
func (e *Editor) Cursor() Position { return e.view.Cursor() }

// SetCursor moves the cursor, clamped to the file.
func (e *Editor) SetCursor(pos Position) {
	e.view.MoveTo(pos.Line, pos.Col)
}

// Status returns the status bar content.
func (e *Editor) Status() Status {
	return Status{
		Mode:     e.mode,
		Name:     e.File().Name(),
		Modified: e.File().Modified(),
		Ref:      e.ref,
		Message:  e.message,
	}
}

// Frame returns a snapshot of what is on screen.
func (e *Editor) Frame() Frame {
	top, left := e.view.Origin()
	row, col := e.view.CursorScreen()
	return Frame{
		Width:       e.width,
		Height:      e.height,
		NumberWidth: NumberWidth(e.File().Len()),
		Top:         top,
		Left:        left,
		Rows:        e.view.Content(e.diff),
		CursorRow:   row,
		CursorCol:   col,
		Status:      e.Status(),
	}
}

// HandleKey applies a key press.
func (e *Editor) HandleKey(k Key) RefreshOrder {
	before := e.Frame()
	gen := e.File().Generation()
	e.message = ""

	forced := NoRefresh
	if cmd, ok := e.keymap.Parse(k, e.mode); ok {
		forced = e.execute(cmd)
	}
	e.layout()
	if e.File().Generation() != gen {
		e.RequestDiff()
	}
	return forced.Merge(e.Frame().Order(before))
}

// HandleDiff installs a diff result computed for the current content.
// Results for older content are dropped: a request for the newer content
// is already queued. Failed computations keep the previous diff.
func (e *Editor) HandleDiff(res DiffResult) RefreshOrder {
	if res.Err != nil {
		e.logger.Warn("keeping previous diff", zap.Uint64("generation", res.Generation), zap.Error(res.Err))
		return NoRefresh
	}
	if gen := e.File().Generation(); res.Generation != gen {
		e.logger.Debug("discarding stale diff", zap.Uint64("generation", res.Generation), zap.Uint64("current", gen))
		return NoRefresh
	}
	before := e.Frame()
	e.diff = res.Diff
	return e.Frame().Order(before)
}

// HandleResize adapts the layout to a new terminal size. The whole screen
// is redrawn.
func (e *Editor) HandleResize(width, height int) RefreshOrder {
	e.width, e.height = max(width, 1), max(height, 1)
	e.layout()
	return AllRefresh
}

// HandleRepo records a repository change and asks for a fresh diff.
func (e *Editor) HandleRepo(c RepoChange) RefreshOrder {
	before := e.Frame()
	e.ref = c.Ref
	e.RequestDiff()
	return e.Frame().Order(before)
}

// RequestDiff asks for the diff of the current content.
func (e *Editor) RequestDiff() {
	if e.diffs == nil {
		return
	}
	f := e.File()
	e.diffs.Request(DiffRequest{Generation: f.Generation(), Path: f.Path(), Content: f.Bytes()})
}

// EventSources are the channels the editor loop listens on. Nil channels
// are never selected.
type EventSources struct {
	Keys   <-chan Key
	Diffs  <-chan DiffResult
	Resize <-chan struct{}
	Repo   <-chan RepoChange
	Screen Screen
}

// Run draws the initial frame and processes events one at a time until a
// quit command, the end of key input or ctx cancellation. The final order
// rendered is always Terminate.
func (e *Editor) Run(ctx context.Context, src EventSources, r Renderer) error {
	if src.Screen != nil {
		if w, h, err := src.Screen.Size(); err == nil {
			e.HandleResize(w, h)
		}
	}
	if err := r.Render(AllRefresh, e.Frame()); err != nil {
		return fmt.Errorf("initial render: %w", err)
	}
	e.RequestDiff()

	for {
		var order RefreshOrder
		select {
		case <-ctx.Done():
			order = Terminate
		case k, ok := <-src.Keys:
			if !ok {
				order = Terminate
				break
			}
			order = e.HandleKey(k)
		case res := <-src.Diffs:
			order = e.HandleDiff(res)
		case <-src.Resize:
			if src.Screen == nil {
				continue
			}
			w, h, err := src.Screen.Size()
			if err != nil {
				e.logger.Warn("terminal size unavailable", zap.Error(err))
				continue
			}
			order = e.HandleResize(w, h)
		case c := <-src.Repo:
			order = e.HandleRepo(c)
		}

		if err := r.Render(order, e.Frame()); err != nil {
			return fmt.Errorf("render %s: %w", order.Kind, err)
		}
		if order.Kind == RefreshTerminate {
			return nil
		}
	}
}

// layout sizes the text area to the terminal minus the gutter and the
// status row.
func (e *Editor) layout() {
	gutter := NumberWidth(e.File().Len()) + 2
	e.view.Resize(e.width-gutter, e.height-1)
}

func (e *Editor) execute(cmd Command) RefreshOrder {
	v := e.view
	switch cmd.Kind {
	case CmdBlock:
		order := NoRefresh
		for _, c := range cmd.Block {
			order = order.Merge(e.execute(c))
		}
		return order
	case CmdQuit:
		return Terminate
	case CmdRedraw:
		return AllRefresh
	case CmdMove:
		v.Navigate(cmd.DX, cmd.DY)
	case CmdLineStart:
		v.LineStart()
	case CmdLineEnd:
		v.LineEnd()
	case CmdTop:
		v.MoveTo(0, v.Cursor().Col)
	case CmdBottom:
		v.MoveTo(e.File().Len()-1, v.Cursor().Col)
	case CmdHalfPageUp, CmdHalfPageDown:
		_, h := v.Size()
		step := max(h/2, 1)
		if cmd.Kind == CmdHalfPageUp {
			step = -step
		}
		v.Navigate(0, step)
	case CmdSave:
		e.save()
	case CmdEnterInsert:
		e.mode = ModeInsert
	case CmdExitInsert:
		e.mode = ModeNormal
	case CmdInsert:
		text := strings.ReplaceAll(string(cmd.Runes), "\r\n", "\n")
		for _, r := range text {
			if r == '\n' || r == '\r' {
				v.InsertNewLine()
				continue
			}
			v.Insert(r)
		}
	case CmdNewLine:
		v.InsertNewLine()
	case CmdDelete:
		v.Delete()
	case CmdDeleteLine:
		v.DeleteLine()
	case CmdYankLine:
		e.yank()
	case CmdPaste:
		e.paste()
	case CmdEnterRename:
		e.renameFrom = e.File().Name()
		e.mode = ModeRename
	case CmdRenameInput:
		e.File().Rename(e.File().Name() + sanitizeName(cmd.Runes))
	case CmdRenameDelete:
		if name := []rune(e.File().Name()); len(name) > 0 {
			e.File().Rename(string(name[:len(name)-1]))
		}
	case CmdConfirmRename:
		e.confirmRename()
	case CmdCancelRename:
		e.File().Rename(e.renameFrom)
		e.mode = ModeNormal
	}
	return NoRefresh
}

func (e *Editor) save() {
	f := e.File()
	if f.Name() == "" {
		e.message = ErrEmptyName.Error()
		return
	}
	if e.files == nil {
		e.message = "saving is disabled"
		return
	}
	if err := e.files.Save(f.Path(), f.Bytes()); err != nil {
		e.logger.Error("save failed", zap.String("path", f.Path()), zap.Error(err))
		e.message = "save failed: " + err.Error()
		return
	}
	f.MarkSaved()
	e.logger.Info("saved", zap.String("path", f.Path()), zap.Int("lines", f.Len()))
	e.message = fmt.Sprintf("%q written", f.Name())
}

func (e *Editor) yank() {
	if e.clipboard == nil {
		e.message = ErrNoClipboard.Error()
		return
	}
	if err := e.clipboard.Copy(e.File().LineString(e.view.Cursor().Line)); err != nil {
		e.logger.Warn("copy failed", zap.Error(err))
		e.message = "yank failed: " + err.Error()
		return
	}
	e.message = "line yanked"
}

func (e *Editor) paste() {
	if e.clipboard == nil {
		e.message = ErrNoClipboard.Error()
		return
	}
	text, err := e.clipboard.Paste()
	if err != nil {
		e.logger.Warn("paste failed", zap.Error(err))
		e.message = "paste failed: " + err.Error()
		return
	}
	text = strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return
	}
	e.view.InsertLinesBelow(text)
}

func (e *Editor) confirmRename() {
	e.mode = ModeNormal
	f := e.File()
	if f.Name() == "" {
		f.Rename(e.renameFrom)
		e.message = ErrEmptyName.Error()
		return
	}
	if f.Name() == e.renameFrom {
		return
	}
	if e.detector != nil {
		f.SetLanguage(e.detector.DetectFromPath(f.Name()))
	}
	e.logger.Info("renamed", zap.String("from", e.renameFrom), zap.String("to", f.Name()))
	e.RequestDiff()
}

// sanitizeName replaces characters that do not belong in a file name.
func sanitizeName(runes []rune) string {
	var sb strings.Builder
	for _, r := range runes {
		switch r {
		case ' ', '\'', '"', '/', '\t', '\n', '\r':
			sb.WriteRune('_')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
