package giga

import (
	"fmt"
	"time"
)

// Diff backends.
const (
	DiffBackendNormal  = "normal"
	DiffBackendUnified = "unified"
	DiffBackendBuiltin = "builtin"
)

// Config holds user settings.
type Config struct {
	TabWidth  int        `toml:"tab_width"`
	Theme     string     `toml:"theme"`
	Positions bool       `toml:"positions"`
	Diff      DiffConfig `toml:"diff"`
	Log       LogConfig  `toml:"log"`
}

// DiffConfig configures the diff worker.
type DiffConfig struct {
	Backend  string   `toml:"backend"`
	Command  string   `toml:"command"`
	Debounce Duration `toml:"debounce"`
	Timeout  Duration `toml:"timeout"`
}

// LogConfig configures the log file.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // empty disables logging
}

// Duration is a time.Duration written as a Go duration string ("250ms").
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration as a string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		TabWidth:  DefaultTabWidth,
		Theme:     "dark",
		Positions: true,
		Diff: DiffConfig{
			Backend:  DiffBackendNormal,
			Command:  "diff",
			Debounce: Duration{250 * time.Millisecond},
			Timeout:  Duration{5 * time.Second},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.TabWidth < 1 || c.TabWidth > 16 {
		return fmt.Errorf("tab_width must be between 1 and 16, got %d", c.TabWidth)
	}
	switch c.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	switch c.Diff.Backend {
	case DiffBackendNormal, DiffBackendUnified, DiffBackendBuiltin:
	default:
		return fmt.Errorf("unknown diff backend %q", c.Diff.Backend)
	}
	if c.Diff.Debounce.Duration < 0 {
		return fmt.Errorf("diff.debounce must not be negative")
	}
	if c.Diff.Timeout.Duration <= 0 {
		return fmt.Errorf("diff.timeout must be positive")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
