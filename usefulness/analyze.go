// SPDX-License-Identifier: MIT
// Package usefulness: the clause driver and witness search.

package usefulness

import (
	"fmt"

	"github.com/katalvlaran/patmatch/matrix"
	"github.com/katalvlaran/patmatch/pattern"
)

// Analyze checks every row of m against the rows above it and m as a whole
// against the all-wildcard row. See Report.
//
// A row whose or-pattern has one redundant alternative is still reachable
// through the other; only rows that are redundant as a whole are reported.
func Analyze(m *matrix.Matrix, opts ...Option) (*Report, error) {
	if err := matrix.Validate(m); err != nil {
		return nil, fmt.Errorf("usefulness: Analyze: %w", err)
	}
	o := gather(opts)

	rep := &Report{}
	for i := 0; i < m.Len(); i++ {
		row := m.Row(i)
		useful, err := isUseful(m.Prefix(i), row.Patterns(), o)
		if err != nil {
			return nil, fmt.Errorf("usefulness: Analyze: row %d: %w", i, err)
		}
		if !useful {
			o.Logger.Debug().Int("row", i).Int("action", row.Action()).Msg("unreachable row")
			rep.Unreachable = append(rep.Unreachable, i)
		}
	}

	if m.IsEmpty() {
		return rep, nil
	}

	open, err := isUseful(m, pattern.Wildcards(m.Arity()), o)
	if err != nil {
		return nil, fmt.Errorf("usefulness: Analyze: %w", err)
	}
	rep.Exhaustive = !open
	if rep.Exhaustive {
		return rep, nil
	}
	if rep.Missing, _, err = witness(m, m.Arity(), o); err != nil {
		return nil, fmt.Errorf("usefulness: Analyze: %w", err)
	}

	return rep, nil
}

// Witness returns a row of value patterns that no row of m matches, and
// true; or nil and false when m is exhaustive. A `_` in the result stands
// for any constructor the clauses do not test; with WithSignature the first
// such constructor, in declaration order, is named instead.
//
// A matrix with no rows has no known width; Witness reports an empty row.
func Witness(m *matrix.Matrix, opts ...Option) ([]pattern.Pattern, bool, error) {
	if err := matrix.Validate(m); err != nil {
		return nil, false, fmt.Errorf("usefulness: Witness: %w", err)
	}
	if m.IsEmpty() {
		return []pattern.Pattern{}, true, nil
	}
	w, ok, err := witness(m, m.Arity(), gather(opts))
	if err != nil {
		return nil, false, fmt.Errorf("usefulness: Witness: %w", err)
	}

	return w, ok, nil
}

// witness searches for an unmatched value row of width n. Recursion depth is
// bounded by the total number of columns ever examined along one path.
func witness(p *matrix.Matrix, n int, o Options) ([]pattern.Pattern, bool, error) {
	if p.IsEmpty() {
		return pattern.Wildcards(n), true, nil
	}
	if n == 0 {
		return nil, false, nil
	}

	sigma, err := matrix.HeadConstructors(p)
	if err != nil {
		return nil, false, err
	}
	complete, err := pattern.Complete(sigma)
	if err != nil {
		return nil, false, err
	}

	// every head is tested: the gap must sit under one of them
	if complete {
		for _, c := range sigma {
			sp, err := matrix.Specialize(p, c)
			if err != nil {
				return nil, false, err
			}
			w, ok, err := witness(sp, c.Arity+n-1, o)
			if err != nil {
				return nil, false, err
			}
			if !ok {
				continue
			}
			row := make([]pattern.Pattern, 0, n)
			row = append(row, pattern.Con(c, w[:c.Arity]...))

			return append(row, w[c.Arity:]...), true, nil
		}

		return nil, false, nil
	}

	// some head is untested: only wildcard rows can cover it
	d, err := matrix.Default(p)
	if err != nil {
		return nil, false, err
	}
	w, ok, err := witness(d, n-1, o)
	if err != nil || !ok {
		return nil, false, err
	}

	head := pattern.Wild()
	if o.Signature != nil {
		if c, named := o.Signature.Missing(sigma); named {
			head = pattern.Con(c, pattern.Wildcards(c.Arity)...)
		}
	}
	o.Logger.Debug().Str("head", head.String()).Int("arity", n).Msg("witness column")

	row := make([]pattern.Pattern, 0, n)
	row = append(row, head)

	return append(row, w...), true, nil
}
