// SPDX-License-Identifier: MIT
// Package matrix: the Specialize and Default transforms.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/patmatch/pattern"
)

// Specialize narrows m under the assumption that the value in column 0 was
// built with c. For each row, by its column-0 pattern:
//
//   - Constructed with c: the head is replaced by its c.Arity sub-patterns.
//   - Constructed with another constructor: the row is dropped.
//   - Wildcard: the head is replaced by c.Arity wildcards.
//   - Or(l, r): the row is split into an l-row and an r-row (recursively for
//     nested or-patterns), each specialized in place, l before r.
//
// A c that shares its name with a column-0 constructor but differs from it
// in arity or span is rejected with pattern.ErrConstructorConflict.
//
// Row order and actions are preserved. Every resulting row has arity
// m.Arity() - 1 + c.Arity. Rows absent from the result cannot match any value
// whose head is c.
//
// Complexity: O(R·(A + k)) for R rows, result arity A, k alternatives per head.
func Specialize(m *Matrix, c pattern.Constructor) (*Matrix, error) {
	// 1. Guard preconditions
	if err := validateColumns("Specialize", m); err != nil {
		return nil, err
	}
	if err := pattern.ValidateConstructor(c); err != nil {
		return nil, fmt.Errorf("Specialize: %w", err)
	}
	for _, r := range m.rows {
		for _, h := range pattern.HeadConstructors(r.patterns[0]) {
			if h.Name == c.Name && h != c {
				return nil, fmt.Errorf("Specialize: %w: %s against %s", pattern.ErrConstructorConflict, c, h)
			}
		}
	}

	// 2. Rebuild rows top to bottom
	out := make([]Row, 0, len(m.rows))
	var args []pattern.Pattern
	for _, r := range m.rows {
		tail := r.patterns[1:]
		for _, alt := range pattern.Alternatives(r.patterns[0]) {
			switch h := alt.(type) {
			case pattern.Constructed:
				if h.Con != c {
					continue // discriminates against c
				}
				args = args[:0]
				for i := 0; i < h.NumArgs(); i++ {
					args = append(args, h.Arg(i))
				}
				out = append(out, splice(r.action, args, tail))
			case pattern.Wildcard:
				out = append(out, splice(r.action, pattern.Wildcards(c.Arity), tail))
			}
		}
	}

	return &Matrix{rows: out}, nil
}

// Default keeps the rows that match a value whose column-0 constructor is
// not among those explicitly tested:
//
//   - Constructed: the row is dropped.
//   - Wildcard: column 0 is removed.
//   - Or(l, r): split as in Specialize, l before r.
//
// Every resulting row has arity m.Arity() - 1.
//
// Complexity: O(R·(A + k)).
func Default(m *Matrix) (*Matrix, error) {
	if err := validateColumns("Default", m); err != nil {
		return nil, err
	}

	out := make([]Row, 0, len(m.rows))
	for _, r := range m.rows {
		tail := r.patterns[1:]
		for _, alt := range pattern.Alternatives(r.patterns[0]) {
			if pattern.IsWildcard(alt) {
				out = append(out, splice(r.action, nil, tail))
			}
		}
	}

	return &Matrix{rows: out}, nil
}
