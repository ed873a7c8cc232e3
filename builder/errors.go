// SPDX-License-Identifier: MIT
// Package: patmatch/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Fixtures attach context with `%w`; option constructors panic instead.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates that a size parameter (columns, rows, variants,
// depth) is below the fixture's minimum.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrTooLarge indicates that a size parameter would produce an unreasonably
// large table (e.g., TruthTable beyond MaxTruthColumns).
var ErrTooLarge = errors.New("builder: parameter too large")

// ErrNeedRandSource indicates that a stochastic fixture requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTypeConflict indicates two fixtures declared the same type name with
// different variants.
var ErrTypeConflict = errors.New("builder: type declared twice with different variants")

// ErrConstructFailed indicates a nil fixture or a table that could not be
// assembled into a matrix (e.g., fixtures of different widths).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes err with the fixture name, keeping it matchable.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
