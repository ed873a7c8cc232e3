// SPDX-License-Identifier: MIT
// Package decision compiles a pattern matrix into a decision tree.
//
// What:
//
//   - Tree: Leaf(action) | Fail | Switch(cases, default) | Swap(column, body).
//     A Switch tests the head constructor of the value in column 0; a Swap
//     tells the code generator to exchange the value in column k with the
//     one in column 0 before descending.
//   - Compile(m, opts...): the classical matrix compilation:
//     1. no rows                    → Fail
//     2. first row all wildcards    → Leaf(first row's action)
//     3. leftmost column k holding a constructor, k > 0 → Swap(k, compile(m with columns k and 0 exchanged))
//     4. one case per distinct head constructor of column 0, in first-appearance order,
//     each compiled from Specialize(m, c)
//     5. a default branch compiled from Default(m) iff the cases do not
//     cover the type's span
//   - Render / RenderIndent: stable text forms for tooling and tests.
//   - Stats, Actions, HasFail, FailPaths: inspection helpers for diagnostics.
//
// Why:
//
//   - A Fail leaf is not an error: it marks a path where no clause matches,
//     which a diagnostics layer reports as a non-exhaustive match.
//
// Determinism:
//
//   - Identical matrices compile to identical trees and identical renderings.
//   - The descent runs on an explicit work stack; deep or wide inputs do not
//     grow the native call stack.
//
// Options:
//
//   - WithOnStep(fn)     observe every node as it is decided; an error aborts.
//   - WithLogger(logger) zerolog logger for debug tracing (default: Nop).
//
// Complexity:
//
//   - Worst case exponential in the number of columns (decision trees may
//     duplicate sub-matrices); linear in the tree size produced.
//
// Errors:
//
//   - matrix.ErrNilMatrix, matrix.ErrRowArity, pattern.Err*  malformed input
//   - pattern.ErrSpanMismatch  constructors tested together disagree on span
//   - ErrNilTree               nil tree passed to an inspection helper
//   - any error returned by the OnStep hook, wrapped
package decision
