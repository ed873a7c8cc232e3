// SPDX-License-Identifier: MIT
// Package: patmatch/builder
//
// impl_truth.go - TruthTable(n): every combination of n booleans.
//
// Row order is binary counting with True as 0, most significant column
// first: row 0 is all True, the last row is all False. The table is
// exhaustive and has no redundant row; its decision tree is a complete
// binary tree of depth n.
//
// Complexity: O(n·2^n).

package builder

import "github.com/katalvlaran/patmatch/pattern"

// TruthTable returns a fixture adding 2^n rows over n Bool columns.
// Requires MinTruthColumns ≤ n ≤ MaxTruthColumns.
func TruthTable(n int) Fixture {
	return func(t *Table, cfg builderConfig) error {
		if err := validateMin(MethodTruthTable, n, MinTruthColumns); err != nil {
			return err
		}
		if err := validateMax(MethodTruthTable, n, MaxTruthColumns); err != nil {
			return err
		}
		cons, err := declareBool(t, cfg)
		if err != nil {
			return builderErrorf(MethodTruthTable, err)
		}

		for i := 0; i < 1<<n; i++ {
			row := make([]pattern.Pattern, n)
			for j := 0; j < n; j++ {
				bit := (i >> (n - 1 - j)) & 1
				row[j] = pattern.Con(cons[bit])
			}
			t.Add(row...)
		}

		return nil
	}
}

// declareBool declares Bool = True | False and returns [True, False].
func declareBool(t *Table, cfg builderConfig) ([]pattern.Constructor, error) {
	return t.declare(cfg, TypeBool, pattern.Variant{Name: "True"}, pattern.Variant{Name: "False"})
}
