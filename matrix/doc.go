// SPDX-License-Identifier: MIT
// Package matrix implements the pattern matrix: the table of match clauses
// that the decision-tree compiler and the usefulness checker both consume,
// and the two structural transforms that drive them.
//
// What:
//
//   - Row: one clause, an ordered vector of patterns (one per scrutinized
//     column) plus an opaque integer action.
//   - Matrix: ordered rows; earlier rows have priority (first match wins).
//     All rows share one arity; an empty matrix has undefined arity (-1).
//   - Specialize(m, c): rows consistent with "column 0 was built with c",
//     with column 0 replaced by c.Arity sub-pattern columns.
//   - Default(m): rows that match when column 0's constructor is none of
//     those explicitly tested, with column 0 removed.
//   - SwapColumns, FirstTestColumn, HeadConstructors: column selection
//     helpers used by the compiler.
//
// Why:
//
//   - Both algorithms of this module are recursive descents over a matrix
//     that shrinks by Specialize/Default. Keeping the transforms here, pure
//     and validated once, keeps the algorithms small.
//
// Determinism & ownership:
//
//   - Every transform returns a brand-new Matrix. Derived rows own fresh
//     pattern slices; a parent is never mutated.
//   - Row order is preserved; or-patterns expand in place, lhs before rhs.
//
// Rendering:
//
//	( Nil  _ -> 1 )
//	( _  Nil -> 2 )
//
// one row per line; Parse reads the same text back given a Signature.
//
// Complexity:
//
//   - Specialize / Default: O(R·(A + k)) for R rows, new arity A and
//     k or-alternatives per head.
//   - Validate: O(total pattern size).
//
// Errors:
//
//   - ErrNilMatrix     nil *Matrix argument
//   - ErrRowArity      rows (or a candidate row) of different lengths
//   - ErrNoColumns     transform requested on a matrix with no columns
//   - ErrColumnRange   column index outside [0, arity)
//   - ErrMalformedRow  Parse met a line that is not `( ... -> n )`
//   - pattern.Err*     malformed patterns, reported by pattern.ValidateAll
package matrix
