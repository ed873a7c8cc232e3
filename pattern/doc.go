// SPDX-License-Identifier: MIT
// Package pattern defines the value shapes a match clause is written in:
// constructors, wildcard patterns, constructed patterns and or-patterns.
//
// What:
//
//   - Constructor: the tag of an algebraic value (Name, Arity, Span).
//     Span is the number of variants the owning type declares, so a set of
//     constructors can be tested for completeness without a catch-all.
//   - Pattern: Wildcard | Constructed | Or. Patterns are immutable values;
//     every constructor helper copies its argument slices.
//   - Signature: a registry of named types and their ordered variants, used
//     to resolve names while parsing and to name missing constructors.
//
// Why:
//
//   - The matrix, decision and usefulness packages reason purely about the
//     shape of values. This package is the single place that knows how a
//     shape is represented, compared, hashed, validated and printed.
//
// Rendering (stable, order-preserving, parseable with Parse):
//
//	_              wildcard
//	Nil            constructor of arity 0
//	Cons(_, Nil)   constructor with arguments
//	(A | B)        or-pattern, always parenthesized
//
// Complexity:
//
//   - Equal, Key, Validate, String: O(size of the pattern tree).
//   - Alternatives, HeadConstructors: O(number of Or nodes at the top).
//
// Errors:
//
//   - ErrNilPattern           a nil Pattern was supplied
//   - ErrEmptyName            constructor name is empty
//   - ErrBadArity             constructor arity < 0
//   - ErrBadSpan              constructor span < 1
//   - ErrArgCount             sub-pattern count differs from arity
//   - ErrSpanMismatch         constructors tested together disagree on span
//   - ErrConstructorConflict  one name used with different arity/span
//   - ErrUnknownConstructor   Parse met a name the Signature does not know
//   - ErrUnknownType          Signature lookup of an undeclared type
//   - ErrSyntax               malformed pattern text
package pattern
