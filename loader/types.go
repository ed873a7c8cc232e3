// SPDX-License-Identifier: MIT
// Package loader: document types, formats and options.

package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

var (
	// ErrUnknownFormat indicates an unrecognized file extension or Format.
	ErrUnknownFormat = errors.New("loader: unknown format")

	// ErrNoClauses indicates a table without clauses.
	ErrNoClauses = errors.New("loader: no clauses")

	// ErrBadClause indicates a clause whose patterns do not parse.
	ErrBadClause = errors.New("loader: bad clause")
)

// File is the on-disk clause table.
type File struct {
	Types   []TypeDecl `yaml:"types" toml:"types"`
	Clauses []Clause   `yaml:"clauses" toml:"clauses"`
}

// TypeDecl declares one algebraic type.
type TypeDecl struct {
	Name     string        `yaml:"name" toml:"name"`
	Variants []VariantDecl `yaml:"variants" toml:"variants"`
}

// VariantDecl declares one constructor; Arity defaults to 0.
type VariantDecl struct {
	Name  string `yaml:"name" toml:"name"`
	Arity int    `yaml:"arity,omitempty" toml:"arity,omitempty"`
}

// Clause is one row: a pattern string per column and an optional action.
type Clause struct {
	Patterns []string `yaml:"patterns" toml:"patterns"`
	Action   *int     `yaml:"action,omitempty" toml:"action,omitempty"`
}

// Format selects the document encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// String returns "yaml" or "toml".
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps "yaml", "yml" or "toml" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the Format from path's extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Options configures decoding.
type Options struct {
	// Strict rejects unknown keys.
	Strict bool

	// Logger receives debug events.
	Logger zerolog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns non-strict decoding and a Nop logger.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithStrict toggles rejection of unknown keys.
func WithStrict(strict bool) Option {
	return func(o *Options) { o.Strict = strict }
}

// WithLogger sets the debug logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func gather(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
