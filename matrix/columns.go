// SPDX-License-Identifier: MIT
// Package matrix: column selection and reordering.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/patmatch/pattern"
)

// SwapColumns returns a copy of m with columns i and j exchanged in every
// row. The compiler uses it with j = 0 to bring the column it is about to
// test to the front. i == j yields an equal copy.
//
// Errors: ErrNilMatrix; ErrColumnRange when i or j is outside [0, arity).
// An empty matrix accepts any non-negative indices.
// Complexity: O(R·A).
func SwapColumns(m *Matrix, i, j int) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("SwapColumns: %w", err)
	}
	if i < 0 || j < 0 {
		return nil, fmt.Errorf("SwapColumns: %w: (%d, %d)", ErrColumnRange, i, j)
	}
	if len(m.rows) > 0 {
		width := len(m.rows[0].patterns)
		if i >= width || j >= width {
			return nil, fmt.Errorf("SwapColumns: %w: (%d, %d) with arity %d", ErrColumnRange, i, j, width)
		}
	}

	out := make([]Row, len(m.rows))
	for k, r := range m.rows {
		ps := make([]pattern.Pattern, len(r.patterns))
		copy(ps, r.patterns)
		ps[i], ps[j] = ps[j], ps[i]
		out[k] = Row{patterns: ps, action: r.action}
	}

	return &Matrix{rows: out}, nil
}

// FirstTestColumn returns the leftmost column holding at least one
// non-wildcard pattern in any row, or -1 when every pattern is a wildcard
// (or the matrix is empty).
// Complexity: O(R·A) worst case.
func FirstTestColumn(m *Matrix) int {
	if m == nil || len(m.rows) == 0 {
		return -1
	}
	width := len(m.rows[0].patterns)
	for col := 0; col < width; col++ {
		for _, r := range m.rows {
			if !pattern.IsWildcard(r.patterns[col]) {
				return col
			}
		}
	}

	return -1
}

// ColumnConstructors returns the distinct constructors heading column col,
// scanning rows top to bottom and expanding or-patterns lhs before rhs.
// The order is the first-appearance order and is stable across runs.
//
// Errors: ErrNilMatrix, ErrColumnRange.
func ColumnConstructors(m *Matrix, col int) ([]pattern.Constructor, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ColumnConstructors: %w", err)
	}
	if len(m.rows) == 0 {
		return nil, nil
	}
	if col < 0 || col >= len(m.rows[0].patterns) {
		return nil, fmt.Errorf("ColumnConstructors: %w: %d", ErrColumnRange, col)
	}

	var out []pattern.Constructor
	seen := make(map[pattern.Constructor]struct{})
	for _, r := range m.rows {
		for _, c := range pattern.HeadConstructors(r.patterns[col]) {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}

	return out, nil
}

// HeadConstructors is ColumnConstructors(m, 0), the set Σ the algorithms
// branch on.
func HeadConstructors(m *Matrix) ([]pattern.Constructor, error) {
	if err := validateColumns("HeadConstructors", m); err != nil {
		return nil, err
	}

	return ColumnConstructors(m, 0)
}
