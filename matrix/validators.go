// SPDX-License-Identifier: MIT
// Package matrix: centralized validation.
//
// Validators run once at the boundary (New, Append, the entry points of the
// decision and usefulness packages). The transforms themselves only guard
// O(1) preconditions, so a validated matrix stays valid through any number
// of Specialize/Default steps.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/patmatch/pattern"
)

// validatorErrorf tags err with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateRows checks that rows share one arity and that all their patterns
// are well formed and consistent (pattern.ValidateAll).
// Complexity: O(total pattern size).
func ValidateRows(rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	// 1. Shape: every row as wide as the first
	width := len(rows[0].patterns)
	total := 0
	for i, r := range rows {
		if len(r.patterns) != width {
			return validatorErrorf("ValidateRows", fmt.Errorf("%w: row %d has %d columns, row 0 has %d",
				ErrRowArity, i, len(r.patterns), width))
		}
		total += width
	}

	// 2. Patterns: well formed and consistent across the whole table
	all := make([]pattern.Pattern, 0, total)
	for _, r := range rows {
		all = append(all, r.patterns...)
	}
	if err := pattern.ValidateAll(all); err != nil {
		return validatorErrorf("ValidateRows", err)
	}

	return nil
}

// Validate checks an existing matrix (nil, shape and patterns).
func Validate(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateRows(m.rows)
}

// ValidateCandidate checks that r could be appended to m: same arity when m
// has rows, and patterns consistent with m's.
func ValidateCandidate(m *Matrix, r Row) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	rows := make([]Row, 0, len(m.rows)+1)
	rows = append(rows, m.rows...)
	rows = append(rows, r)

	return ValidateRows(rows)
}

// validateColumns guards column transforms: a non-empty matrix must still
// have at least one column.
func validateColumns(tag string, m *Matrix) error {
	if m == nil {
		return validatorErrorf(tag, ErrNilMatrix)
	}
	if len(m.rows) > 0 && len(m.rows[0].patterns) == 0 {
		return validatorErrorf(tag, ErrNoColumns)
	}

	return nil
}
