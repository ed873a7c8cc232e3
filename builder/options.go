// SPDX-License-Identifier: MIT
// Package: patmatch/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Fixtures themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes fixtures by mutating a builderConfig before
// BuildMatrix runs them.
type BuilderOption func(*builderConfig)

// WithNameScheme sets the enum variant naming function. Panics on nil.
func WithNameScheme(fn NameFn) BuilderOption {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}
	return func(c *builderConfig) {
		c.nameFn = fn
	}
}

// WithSymbolNames names enum variants "A", "B", ... (at most 26).
func WithSymbolNames() BuilderOption {
	return WithNameScheme(SymbolNames)
}

// WithExcelColumnNames names enum variants "A", ..., "Z", "AA", ...
func WithExcelColumnNames() BuilderOption {
	return WithNameScheme(ExcelColumnNames)
}

// WithPrefixNames names enum variants prefix+index.
func WithPrefixNames(prefix string) BuilderOption {
	return WithNameScheme(PrefixNames(prefix))
}

// WithRand provides an explicit RNG for stochastic fixtures. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOpenTypes appends k arity-0 variants named <Type>Extra<i> to every
// type a fixture declares. The fixtures' rows never mention them, so any
// table relying on covering a whole type becomes non-exhaustive and its
// compiled switches grow default branches. Panics if k < 0.
func WithOpenTypes(k int) BuilderOption {
	if k < 0 {
		panic(fmt.Sprintf("builder: WithOpenTypes(%d)", k))
	}
	return func(c *builderConfig) {
		c.openTypes = k
	}
}

// WithActionBase sets the action of the first emitted row; later rows
// count up from it.
func WithActionBase(base int) BuilderOption {
	return func(c *builderConfig) {
		c.actionBase = base
	}
}

// WithWildcardProbability sets the chance RandomTable draws `_` for a cell.
// Panics outside [0,1].
func WithWildcardProbability(p float64) BuilderOption {
	if p < MinProbability || p > MaxProbability {
		panic(fmt.Sprintf("builder: WithWildcardProbability(%v)", p))
	}
	return func(c *builderConfig) {
		c.wildcardProb = p
	}
}
