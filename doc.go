// Package patmatch compiles pattern matches into decision trees and checks
// them for unreachable clauses and missing cases.
//
// What is patmatch?
//
//	A small, deterministic toolkit for the back end of a `match` expression:
//		• Patterns: wildcards, constructor applications and or-patterns over
//		  declared algebraic types
//		• Matrices: clause tables with the Specialize and Default transforms
//		• Decision trees: Switch / Swap / Leaf / Fail, compiled column by column
//		• Usefulness: redundant clauses, exhaustiveness, witnesses of missed values
//
// Why patmatch?
//
//   - One matrix model shared by the compiler and the checker, so their
//     verdicts agree (a leaf is emitted exactly for the useful clauses)
//   - Deterministic output: cases appear in first-appearance order
//   - No recursion on user-controlled depth in Compile or IsUseful
//   - Clause tables load from YAML or TOML; `patc` drives it all from a shell
//
// Layout:
//
//	pattern/    Constructor, Pattern, Signature, the pattern parser
//	matrix/     Row, Matrix, Specialize, Default, column helpers
//	decision/   Compile, Render, inspection (Stats, FailPaths, Actions)
//	usefulness/ IsUseful, Analyze, Witness
//	builder/    deterministic clause-table fixtures for tests and demos
//	loader/     YAML/TOML clause tables
//	cmd/patc/   command-line front end
//
// Quick example (two boolean columns):
//
//	( True  _ -> 1 )
//	( _  True -> 2 )
//
// compiles to
//
//	Switch
//	  True/0 => Leaf(1)
//	  _ => Switch
//	    True/0 => Leaf(2)
//	    _ => Fail
//
// and the checker reports the witness `False  False`.
//
//	go install github.com/katalvlaran/patmatch/cmd/patc@latest
package patmatch
