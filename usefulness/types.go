// SPDX-License-Identifier: MIT
// Package usefulness: sentinel errors, options and the Report type.

package usefulness

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/patmatch/pattern"
)

// ErrCandidateArity indicates the candidate row width differs from the matrix arity.
var ErrCandidateArity = errors.New("usefulness: candidate arity differs from matrix arity")

// Options configures the checks.
type Options struct {
	// Signature, when set, lets Witness replace `_` by a concrete
	// constructor the clauses do not mention.
	Signature *pattern.Signature

	// Logger receives debug events for every sub-problem examined.
	Logger zerolog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with no signature and a Nop logger.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithSignature sets the signature used to name missing constructors.
func WithSignature(sig *pattern.Signature) Option {
	return func(o *Options) { o.Signature = sig }
}

// WithLogger sets the debug logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func gather(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Report is the outcome of Analyze.
type Report struct {
	// Unreachable holds the 0-based indices of rows no value can reach,
	// in ascending order.
	Unreachable []int

	// Exhaustive is true when every value matches some row.
	Exhaustive bool

	// Missing is one value row no row matches; nil when Exhaustive or when
	// the matrix has no rows (its width is unknown).
	Missing []pattern.Pattern
}
