// SPDX-License-Identifier: MIT
// Package: patmatch/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMatrix(bopts, fixtures...). Creates the Table,
//     resolves cfg, runs fixtures in order, numbers actions, validates.
//   - Fixtures are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and fixture order ⇒ identical
//     signature and matrix.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/patmatch/matrix"
	"github.com/katalvlaran/patmatch/pattern"
)

// Fixture appends rows to t using the resolved builderConfig. Fixtures
// validate their parameters first and return sentinel errors; they never
// panic.
type Fixture func(t *Table, cfg builderConfig) error

// Table accumulates pattern rows and the Signature they are written against.
type Table struct {
	sig  *pattern.Signature
	rows [][]pattern.Pattern
}

// Signature returns the signature declared so far.
func (t *Table) Signature() *pattern.Signature { return t.sig }

// Len returns the number of rows added so far.
func (t *Table) Len() int { return len(t.rows) }

// Add appends one row of patterns; its action is assigned by BuildMatrix.
func (t *Table) Add(ps ...pattern.Pattern) {
	row := make([]pattern.Pattern, len(ps))
	copy(row, ps)
	t.rows = append(t.rows, row)
}

// declare registers typeName with variants plus cfg.openTypes extras and
// returns the resolved constructors of variants, in order. Re-declaring a
// type with the same variants is a no-op.
func (t *Table) declare(cfg builderConfig, typeName string, variants ...pattern.Variant) ([]pattern.Constructor, error) {
	all := make([]pattern.Variant, 0, len(variants)+cfg.openTypes)
	all = append(all, variants...)
	for i := 0; i < cfg.openTypes; i++ {
		all = append(all, pattern.Variant{Name: typeName + "Extra" + strconv.Itoa(i)})
	}

	if known, err := t.sig.Type(typeName); err == nil {
		if !sameVariants(known, all) {
			return nil, fmt.Errorf("%w: %s", ErrTypeConflict, typeName)
		}
		return known[:len(variants)], nil
	}
	if err := t.sig.Declare(typeName, all...); err != nil {
		return nil, err
	}
	cons, err := t.sig.Type(typeName)
	if err != nil {
		return nil, err
	}

	return cons[:len(variants)], nil
}

func sameVariants(known []pattern.Constructor, want []pattern.Variant) bool {
	if len(known) != len(want) {
		return false
	}
	for i, c := range known {
		if c.Name != want[i].Name || c.Arity != want[i].Arity {
			return false
		}
	}

	return true
}

// BuildMatrix creates an empty Table, resolves the builder configuration
// from bopts and applies all fixtures in order. Row i (0-based, across all
// fixtures) gets action base+i where base is WithActionBase (default 1).
//
// Errors:
//   - fixture errors, wrapped with "BuildMatrix: %w"
//   - ErrConstructFailed for a nil fixture, or when the rows do not form a
//     valid matrix (e.g., fixtures of different widths were combined)
func BuildMatrix(bopts []BuilderOption, fixtures ...Fixture) (*pattern.Signature, *matrix.Matrix, error) {
	cfg := newBuilderConfig(bopts...)
	t := &Table{sig: pattern.NewSignature()}

	for i, fn := range fixtures {
		if fn == nil {
			return nil, nil, fmt.Errorf("BuildMatrix: nil fixture at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return nil, nil, fmt.Errorf("BuildMatrix: %w", err)
		}
	}

	rows := make([]matrix.Row, len(t.rows))
	for i, ps := range t.rows {
		rows[i] = matrix.NewRow(cfg.actionBase+i, ps...)
	}
	m, err := matrix.New(rows...)
	if err != nil {
		return nil, nil, fmt.Errorf("BuildMatrix: %w: %w", ErrConstructFailed, err)
	}

	return t.sig, m, nil
}

// MustBuildMatrix is BuildMatrix for tests and examples; it panics on error.
func MustBuildMatrix(bopts []BuilderOption, fixtures ...Fixture) (*pattern.Signature, *matrix.Matrix) {
	sig, m, err := BuildMatrix(bopts, fixtures...)
	if err != nil {
		panic(err)
	}

	return sig, m
}
