// SPDX-License-Identifier: MIT
// Package loader: YAML and TOML encoding.

package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decode parses data as a File in format f.
func Decode(data []byte, f Format, opts ...Option) (*File, error) {
	o := gather(opts)
	var doc File

	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(o.Strict)
		// an empty document decodes to an empty table
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Decode: failed to parse YAML: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		if o.Strict {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("Decode: failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("Decode: %w: %s", ErrUnknownFormat, f)
	}

	o.Logger.Debug().
		Str("format", f.String()).
		Int("types", len(doc.Types)).
		Int("clauses", len(doc.Clauses)).
		Msg("clause table decoded")

	return &doc, nil
}

// Encode renders doc in format f.
func Encode(doc *File, f Format) ([]byte, error) {
	switch f {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("Encode: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("Encode: %w", err)
		}
		return buf.Bytes(), nil
	case FormatTOML:
		out, err := toml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("Encode: %w", err)
		}
		return out, nil
	}

	return nil, fmt.Errorf("Encode: %w: %s", ErrUnknownFormat, f)
}
