// Package config loads patc defaults from an optional TOML file.
//
// The file is looked up as patmatch/config.toml in the XDG config
// directories; a missing file yields Default(). Command-line flags override
// whatever is loaded here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// RelPath is the config file location relative to an XDG config directory.
var RelPath = filepath.Join("patmatch", "config.toml")

// ErrInvalid indicates a config value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Tree layouts.
const (
	LayoutIndent = "indent"
	LayoutLine   = "line"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds patc defaults.
type Config struct {
	// Layout of rendered trees: "indent" or "line".
	Layout string `toml:"layout"`
	// Color is "auto", "always" or "never".
	Color string `toml:"color"`
	// Strict rejects unknown keys in clause tables.
	Strict bool `toml:"strict"`
	// Verbosity is the default -v count.
	Verbosity int `toml:"verbosity"`
	// LogFile, when set, receives a copy of the log.
	LogFile string `toml:"log_file"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{Layout: LayoutIndent, Color: ColorAuto}
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.Layout {
	case LayoutIndent, LayoutLine:
	default:
		return fmt.Errorf("%w: layout %q", ErrInvalid, c.Layout)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color %q", ErrInvalid, c.Color)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("%w: verbosity %d", ErrInvalid, c.Verbosity)
	}

	return nil
}

// Path returns the config file found in the XDG config directories, or
// "" when there is none.
func Path() string {
	p, err := xdg.SearchConfigFile(RelPath)
	if err != nil {
		return ""
	}

	return p
}

// DefaultLogFile returns the XDG state location for the patc log.
func DefaultLogFile() string {
	return filepath.Join(xdg.StateHome, "patmatch", "patc.log")
}

// Load reads the config at Path(), or returns Default() when none exists.
func Load() (Config, error) {
	p := Path()
	if p == "" {
		return Default(), nil
	}

	return LoadFrom(p)
}

// LoadFrom reads path over Default(); keys absent from the file keep their
// default values.
func LoadFrom(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}
