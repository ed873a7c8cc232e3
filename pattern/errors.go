// SPDX-License-Identifier: MIT
// Package pattern: sentinel error set.
// Every message is prefixed with "pattern: ..."; call sites wrap with the
// operation name and callers match with errors.Is.

package pattern

import "errors"

var (
	// ErrNilPattern is returned when a nil Pattern appears where a pattern is required.
	ErrNilPattern = errors.New("pattern: nil pattern")

	// ErrEmptyName is returned for a constructor without a name.
	ErrEmptyName = errors.New("pattern: constructor name is empty")

	// ErrBadName is returned for a constructor name that is not an
	// identifier: a letter, then letters, digits, '_' or '\''.
	ErrBadName = errors.New("pattern: constructor name is not an identifier")

	// ErrBadArity is returned for a constructor with negative arity.
	ErrBadArity = errors.New("pattern: constructor arity must be >= 0")

	// ErrBadSpan is returned for a constructor whose type declares no variants.
	ErrBadSpan = errors.New("pattern: constructor span must be >= 1")

	// ErrArgCount is returned when a constructed pattern carries a number of
	// sub-patterns different from its constructor's arity.
	ErrArgCount = errors.New("pattern: sub-pattern count differs from arity")

	// ErrSpanMismatch is returned when constructors tested at the same
	// position disagree on span, or outnumber it.
	ErrSpanMismatch = errors.New("pattern: constructors disagree on span")

	// ErrConstructorConflict is returned when one constructor name is used
	// with two different arities or spans.
	ErrConstructorConflict = errors.New("pattern: conflicting constructor declarations")

	// ErrUnknownConstructor is returned by Parse for names missing from the Signature.
	ErrUnknownConstructor = errors.New("pattern: unknown constructor")

	// ErrUnknownType is returned for lookups of an undeclared type name.
	ErrUnknownType = errors.New("pattern: unknown type")

	// ErrSyntax is returned by Parse for malformed text.
	ErrSyntax = errors.New("pattern: syntax error")
)
