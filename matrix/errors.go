// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; operations wrap the
// sentinel with their name (fmt.Errorf("Specialize: %w", ErrX)) and callers
// match with errors.Is. Malformed patterns surface the pattern package's
// sentinels unchanged under the same wrapping.

package matrix

import "errors"

var (
	// ErrNilMatrix is returned when a nil *Matrix is passed to an operation.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRowArity is returned when rows of one matrix, or a candidate row and
	// a matrix, have different numbers of columns.
	ErrRowArity = errors.New("matrix: row arity mismatch")

	// ErrNoColumns is returned when a column transform is requested on a
	// non-empty matrix whose rows have no columns left.
	ErrNoColumns = errors.New("matrix: matrix has no columns")

	// ErrColumnRange is returned for a column index outside [0, arity).
	ErrColumnRange = errors.New("matrix: column index out of range")

	// ErrMalformedRow is returned by Parse for a line that is not a rendered row.
	ErrMalformedRow = errors.New("matrix: malformed row")
)
