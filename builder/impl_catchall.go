// SPDX-License-Identifier: MIT
// Package: patmatch/builder
//
// impl_catchall.go - CatchAll(n): one row of n wildcards.
//
// Appended after other fixtures of width n it makes the table exhaustive;
// placed first it makes every later row unreachable.

package builder

import "github.com/katalvlaran/patmatch/pattern"

// CatchAll returns a fixture adding a single all-wildcard row of width n.
// Requires n ≥ 0.
func CatchAll(n int) Fixture {
	return func(t *Table, _ builderConfig) error {
		if err := validateMin(MethodCatchAll, n, 0); err != nil {
			return err
		}
		t.Add(pattern.Wildcards(n)...)

		return nil
	}
}
