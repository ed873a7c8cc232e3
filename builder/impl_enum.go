// SPDX-License-Identifier: MIT
// Package: patmatch/builder
//
// impl_enum.go - Enum(n) and OrChain(n) over one n-variant enum.
//
// Variant names come from the configured NameFn. Both fixtures declare the
// same type, so they combine only when n agrees.

package builder

import "github.com/katalvlaran/patmatch/pattern"

// declareEnum declares Enum with n arity-0 variants named by cfg.nameFn.
func declareEnum(t *Table, cfg builderConfig, n int) ([]pattern.Constructor, error) {
	variants := make([]pattern.Variant, n)
	for i := range variants {
		variants[i] = pattern.Variant{Name: cfg.nameFn(i)}
	}

	return t.declare(cfg, TypeEnum, variants...)
}

// Enum returns a fixture adding one single-column row per variant, in
// declaration order. Requires n ≥ MinEnumVariants.
// Complexity: O(n).
func Enum(n int) Fixture {
	return func(t *Table, cfg builderConfig) error {
		if err := validateMin(MethodEnum, n, MinEnumVariants); err != nil {
			return err
		}
		cons, err := declareEnum(t, cfg, n)
		if err != nil {
			return builderErrorf(MethodEnum, err)
		}
		for _, c := range cons {
			t.Add(pattern.Con(c))
		}

		return nil
	}
}

// OrChain returns a fixture adding one row whose only pattern is the
// left-nested or-pattern of all n variants. Requires n ≥ MinEnumVariants.
// Complexity: O(n).
func OrChain(n int) Fixture {
	return func(t *Table, cfg builderConfig) error {
		if err := validateMin(MethodOrChain, n, MinEnumVariants); err != nil {
			return err
		}
		cons, err := declareEnum(t, cfg, n)
		if err != nil {
			return builderErrorf(MethodOrChain, err)
		}
		alts := make([]pattern.Pattern, len(cons))
		for i, c := range cons {
			alts[i] = pattern.Con(c)
		}
		t.Add(pattern.Alts(alts...))

		return nil
	}
}
