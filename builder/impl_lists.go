// SPDX-License-Identifier: MIT
// Package: patmatch/builder
//
// impl_lists.go - ListPrefixes(depth): lists of length 0..depth.
//
//	( Nil -> 1 )
//	( Cons(_, Nil) -> 2 )
//	( Cons(_, Cons(_, Nil)) -> 3 )
//
// Longer lists match no row, so the table is never exhaustive; the witness
// is the list of length depth+1.

package builder

import "github.com/katalvlaran/patmatch/pattern"

// ListPrefixes returns a fixture adding depth+1 single-column rows.
// Requires depth ≥ 0.
// Complexity: O(depth²) patterns.
func ListPrefixes(depth int) Fixture {
	return func(t *Table, cfg builderConfig) error {
		if err := validateMin(MethodListPrefixes, depth, 0); err != nil {
			return err
		}
		cons, err := t.declare(cfg, TypeList,
			pattern.Variant{Name: "Nil"},
			pattern.Variant{Name: "Cons", Arity: 2})
		if err != nil {
			return builderErrorf(MethodListPrefixes, err)
		}
		nilC, consC := cons[0], cons[1]

		p := pattern.Con(nilC)
		for i := 0; i <= depth; i++ {
			t.Add(p)
			p = pattern.Con(consC, pattern.Wild(), p)
		}

		return nil
	}
}
