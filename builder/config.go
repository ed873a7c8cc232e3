// SPDX-License-Identifier: MIT
// Package: patmatch/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • nameFn       = PrefixNames("C")   ("C0","C1",...)
//   • rng          = nil                (pure unless seeded)
//   • openTypes    = 0                  (every declared type is closed)
//   • actionBase   = DefaultActionBase  (1)
//   • wildcardProb = DefaultWildcardProbability

package builder

import "math/rand"

// builderConfig aggregates all knobs used by fixtures.
// It is passed by VALUE to fixtures.
type builderConfig struct {
	// Enum variant names: idx -> name.
	nameFn NameFn
	// RNG for stochastic fixtures; nil means "no randomness".
	rng *rand.Rand
	// Extra arity-0 variants appended to every declared type, so that the
	// fixture's own constructors no longer cover the span.
	openTypes int
	// Action of the first emitted row.
	actionBase int
	// Probability that RandomTable draws a wildcard cell.
	wildcardProb float64
}

const defaultNamePrefix = "C"

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		nameFn:       PrefixNames(defaultNamePrefix),
		actionBase:   DefaultActionBase,
		wildcardProb: DefaultWildcardProbability,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
