// Package toml loads the editor configuration from a TOML file.
package toml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/giga"
	"github.com/pelletier/go-toml/v2"
)

// ParseError reports a malformed configuration file.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads the config at path on top of giga.DefaultConfig. A missing
// file yields the defaults.
func Load(path string) (giga.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return giga.DefaultConfig(), nil
		}
		return giga.Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return decode(path, bytes.NewReader(data))
}

// Decode reads a config from r on top of giga.DefaultConfig.
func Decode(r io.Reader) (giga.Config, error) {
	return decode("<reader>", r)
}

func decode(source string, r io.Reader) (giga.Config, error) {
	cfg := giga.DefaultConfig()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		perr := &ParseError{Path: source, Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return giga.Config{}, perr
	}
	if err := cfg.Validate(); err != nil {
		return giga.Config{}, fmt.Errorf("invalid config %s: %w", source, err)
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg giga.Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
