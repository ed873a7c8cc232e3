// SPDX-License-Identifier: MIT
// Package matrix: Matrix construction and accessors.

package matrix

import (
	"fmt"
	"strings"
)

// New builds a matrix from rows after validating them: equal arity across
// rows and well-formed, mutually consistent patterns (see ValidateRows).
// Complexity: O(total pattern size).
func New(rows ...Row) (*Matrix, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	owned := make([]Row, len(rows))
	copy(owned, rows)

	return &Matrix{rows: owned}, nil
}

// MustNew is New for fixtures and examples; it panics on invalid input.
func MustNew(rows ...Row) *Matrix {
	m, err := New(rows...)
	if err != nil {
		panic(err)
	}

	return m
}

// Empty returns a matrix with no rows.
func Empty() *Matrix { return &Matrix{} }

// Len returns the number of rows.
func (m *Matrix) Len() int { return len(m.rows) }

// IsEmpty reports whether the matrix has no rows.
func (m *Matrix) IsEmpty() bool { return len(m.rows) == 0 }

// Arity returns the shared number of columns, or -1 when the matrix has no
// rows and its arity is undefined.
func (m *Matrix) Arity() int {
	if len(m.rows) == 0 {
		return -1
	}

	return len(m.rows[0].patterns)
}

// Row returns row i. It panics on an out-of-range index, like slice indexing.
func (m *Matrix) Row(i int) Row { return m.rows[i] }

// Rows returns a copy of the row list.
func (m *Matrix) Rows() []Row {
	out := make([]Row, len(m.rows))
	copy(out, m.rows)

	return out
}

// Prefix returns the matrix of the first n rows (clamped to [0, Len]).
// The usefulness driver uses it to build "all rows above row i".
func (m *Matrix) Prefix(n int) *Matrix {
	if n < 0 {
		n = 0
	}
	if n > len(m.rows) {
		n = len(m.rows)
	}
	out := make([]Row, n)
	copy(out, m.rows[:n])

	return &Matrix{rows: out}
}

// Append returns a new matrix with r added after the existing rows.
func (m *Matrix) Append(r Row) (*Matrix, error) {
	if err := ValidateCandidate(m, r); err != nil {
		return nil, fmt.Errorf("Append: %w", err)
	}
	out := make([]Row, len(m.rows), len(m.rows)+1)
	copy(out, m.rows)

	return &Matrix{rows: append(out, r)}, nil
}

// Equal reports row-by-row equality (actions and patterns).
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if len(m.rows) != len(o.rows) {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// String renders one row per line, each line terminated by '\n'.
// An empty matrix renders as the empty string.
func (m *Matrix) String() string {
	var sb strings.Builder
	for _, r := range m.rows {
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
