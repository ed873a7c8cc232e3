// SPDX-License-Identifier: MIT
// Package loader: file entry points.

package loader

import (
	"fmt"
	"os"

	"github.com/katalvlaran/patmatch/matrix"
	"github.com/katalvlaran/patmatch/pattern"
)

// Load reads the clause table at path; the format follows the extension.
func Load(path string, opts ...Option) (*pattern.Signature, *matrix.Matrix, error) {
	o := gather(opts)
	logger := o.Logger.With().Str("path", path).Logger()

	f, err := FormatFromPath(path)
	if err != nil {
		return nil, nil, fmt.Errorf("Load: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("Load: failed to read clause table: %w", err)
	}
	doc, err := Decode(data, f, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("Load: %w", err)
	}
	sig, m, err := doc.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("Load %s: %w", path, err)
	}

	logger.Debug().Int("rows", m.Len()).Int("arity", m.Arity()).Msg("clause table loaded")

	return sig, m, nil
}

// Save writes sig and m to path; the format follows the extension.
func Save(path string, sig *pattern.Signature, m *matrix.Matrix) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	doc, err := FromMatrix(sig, m)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	data, err := Encode(doc, f)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	return nil
}
