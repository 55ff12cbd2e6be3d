package mock

import "github.com/fwojciec/giga"

// Compile-time interface verification.
var (
	_ giga.Keymap           = (*Keymap)(nil)
	_ giga.Renderer         = (*Renderer)(nil)
	_ giga.Screen           = (*Screen)(nil)
	_ giga.FileStore        = (*FileStore)(nil)
	_ giga.Clipboard        = (*Clipboard)(nil)
	_ giga.Colorizer        = (*Colorizer)(nil)
	_ giga.LanguageDetector = (*LanguageDetector)(nil)
	_ giga.PositionStore    = (*PositionStore)(nil)
)

// Keymap is a mock implementation of giga.Keymap.
type Keymap struct {
	ParseFn func(k giga.Key, mode giga.Mode) (giga.Command, bool)
}

func (m *Keymap) Parse(k giga.Key, mode giga.Mode) (giga.Command, bool) {
	return m.ParseFn(k, mode)
}

// Renderer is a mock implementation of giga.Renderer.
type Renderer struct {
	RenderFn func(order giga.RefreshOrder, frame giga.Frame) error
}

func (r *Renderer) Render(order giga.RefreshOrder, frame giga.Frame) error {
	return r.RenderFn(order, frame)
}

// Screen is a mock implementation of giga.Screen.
type Screen struct {
	SizeFn func() (int, int, error)
}

func (s *Screen) Size() (int, int, error) {
	return s.SizeFn()
}

// FileStore is a mock implementation of giga.FileStore.
type FileStore struct {
	LoadFn func(path string) ([]byte, error)
	SaveFn func(path string, content []byte) error
}

func (s *FileStore) Load(path string) ([]byte, error) {
	return s.LoadFn(path)
}

func (s *FileStore) Save(path string, content []byte) error {
	return s.SaveFn(path, content)
}

// Clipboard is a mock implementation of giga.Clipboard.
type Clipboard struct {
	CopyFn  func(content string) error
	PasteFn func() (string, error)
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}

func (c *Clipboard) Paste() (string, error) {
	return c.PasteFn()
}

// Colorizer is a mock implementation of giga.Colorizer.
type Colorizer struct {
	ColorizeFn func(language, text string) []giga.Color
}

func (c *Colorizer) Colorize(language, text string) []giga.Color {
	return c.ColorizeFn(language, text)
}

// LanguageDetector is a mock implementation of giga.LanguageDetector.
type LanguageDetector struct {
	DetectFromPathFn func(path string) string
}

func (d *LanguageDetector) DetectFromPath(path string) string {
	return d.DetectFromPathFn(path)
}

// PositionStore is a mock implementation of giga.PositionStore.
type PositionStore struct {
	GetFn func(path string) (giga.Position, bool, error)
	PutFn func(path string, pos giga.Position) error
}

func (s *PositionStore) Get(path string) (giga.Position, bool, error) {
	return s.GetFn(path)
}

func (s *PositionStore) Put(path string, pos giga.Position) error {
	return s.PutFn(path, pos)
}
