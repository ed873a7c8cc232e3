// SPDX-License-Identifier: MIT
// Package: patmatch/builder
//
// impl_reference.go - the List/Split reference table.
//
//	( List          _             -> 1 )
//	( _             List          -> 2 )
//	( Split(_, _)   Split(_, _)   -> 3 )
//
// Over the closed type Tree = List | Split(_, _) the table is exhaustive;
// WithOpenTypes(1) widens the span to 3 and leaves gaps.

package builder

import "github.com/katalvlaran/patmatch/pattern"

// ListSplit returns the reference fixture (2 columns, 3 rows).
func ListSplit() Fixture {
	return func(t *Table, cfg builderConfig) error {
		cons, err := t.declare(cfg, TypeTree,
			pattern.Variant{Name: "List"},
			pattern.Variant{Name: "Split", Arity: 2})
		if err != nil {
			return builderErrorf(MethodListSplit, err)
		}
		list, split := cons[0], cons[1]
		w := pattern.Wild()

		t.Add(pattern.Con(list), w)
		t.Add(w, pattern.Con(list))
		t.Add(pattern.Con(split, w, w), pattern.Con(split, w, w))

		return nil
	}
}
