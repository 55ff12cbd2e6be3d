package bubbletea

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/giga"
)

// KeySource decodes key presses from a terminal input stream.
//
// It runs a headless Bubble Tea program: no renderer, no signal handling,
// output discarded. Bubble Tea only parses input; drawing is left to the
// editor's own renderer.
type KeySource struct {
	input io.Reader
	keys  chan giga.Key
}

// NewKeySource creates a key source reading from input.
func NewKeySource(input io.Reader) *KeySource {
	return &KeySource{
		input: input,
		keys:  make(chan giga.Key),
	}
}

// Keys returns the decoded keys. The channel is closed when Run returns.
func (s *KeySource) Keys() <-chan giga.Key {
	return s.keys
}

// Run reads input until ctx is cancelled or the input ends.
func (s *KeySource) Run(ctx context.Context) error {
	defer close(s.keys)

	p := tea.NewProgram(NewKeyModel(ctx, s.keys),
		tea.WithContext(ctx),
		tea.WithInput(s.input),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// KeyModel is a Bubble Tea model that forwards key messages to a channel.
type KeyModel struct {
	ctx  context.Context
	keys chan<- giga.Key
}

// NewKeyModel creates a model sending keys on keys until ctx is done.
func NewKeyModel(ctx context.Context, keys chan<- giga.Key) KeyModel {
	return KeyModel{ctx: ctx, keys: keys}
}

// Init implements tea.Model.
func (m KeyModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m KeyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.ctx.Err() != nil {
		return m, tea.Quit
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	for _, k := range ToKeys(km) {
		select {
		case m.keys <- k:
		case <-m.ctx.Done():
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model. Nothing is rendered.
func (m KeyModel) View() string {
	return ""
}

// ToKeys converts a Bubble Tea key message into key presses. Bubble Tea
// reports a run of printable input as one message; it is split into one
// key per rune unless it is a bracketed paste.
func ToKeys(msg tea.KeyMsg) []giga.Key {
	if msg.Type != tea.KeyRunes || msg.Alt || msg.Paste || len(msg.Runes) < 2 {
		return []giga.Key{ToKey(msg)}
	}
	keys := make([]giga.Key, len(msg.Runes))
	for i, r := range msg.Runes {
		keys[i] = giga.Key{Name: string(r), Runes: []rune{r}}
	}
	return keys
}

// ToKey converts a Bubble Tea key message.
func ToKey(msg tea.KeyMsg) giga.Key {
	k := giga.Key{Name: msg.String()}
	switch msg.Type {
	case tea.KeyRunes:
		if !msg.Alt {
			k.Runes = msg.Runes
		}
	case tea.KeySpace:
		k.Runes = []rune{' '}
	}
	return k
}
