// SPDX-License-Identifier: MIT
// Package usefulness decides whether a clause can still match something.
//
// What:
//
//   - IsUseful(P, q): can row q match a value that no row of P matches?
//     Structured on the head of q:
//     arity 0      → P has no rows
//     Constructed  → IsUseful(Specialize(P, c), args ++ tail)
//     Wildcard     → Σ complete: OR over c in Σ of IsUseful(Specialize(P, c), _^c.Arity ++ tail)
//     Σ incomplete: IsUseful(Default(P), tail)
//     Or(l, r)     → IsUseful(P, l ++ tail) OR IsUseful(P, r ++ tail)
//     where Σ is the set of head constructors of P's column 0.
//   - Analyze(m): row i is unreachable iff IsUseful(rows[:i], row i) is
//     false; m is exhaustive iff the all-wildcard row is not useful.
//   - Witness(m): one value row no clause of m matches, built bottom-up
//     while searching (Maranget's algorithm I).
//
// Why:
//
//   - Unreachable clauses and missing cases are the two diagnostics a match
//     compiler owes its users; both reduce to the same question.
//
// Options:
//
//   - WithSignature(sig) lets Witness name a concrete missing constructor
//     instead of `_`.
//   - WithLogger(logger) zerolog logger for debug tracing (default: Nop).
//
// Complexity:
//
//   - Worst case exponential in the number of columns, like compilation;
//     IsUseful short-circuits on the first useful sub-problem.
//
// Errors:
//
//   - ErrCandidateArity        q is not as wide as P
//   - matrix.ErrNilMatrix, matrix.ErrRowArity, pattern.Err*  malformed input
//   - pattern.ErrSpanMismatch  constructors tested together disagree on span
package usefulness
