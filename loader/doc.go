// SPDX-License-Identifier: MIT
// Package loader reads clause tables from YAML or TOML files.
//
// A clause table declares the algebraic types its patterns use and lists
// the clauses in priority order, one pattern string per column, written in
// the syntax pattern.Parse reads:
//
//	types:
//	  - name: Tree
//	    variants:
//	      - {name: List}
//	      - {name: Split, arity: 2}
//	clauses:
//	  - patterns: ["List", "_"]
//	  - patterns: ["_", "List"]
//	  - patterns: ["Split(_, _)", "Split(_, _)"]
//	    action: 3
//
// The same document in TOML uses [[types]], [[types.variants]] and
// [[clauses]]. A clause without an action gets its 1-based position.
//
// What:
//
//   - Decode / Encode convert between bytes and File.
//   - File.Build resolves a File into a pattern.Signature and a matrix.Matrix.
//   - Load / Save do the same for paths, picking the format from the extension.
//
// Errors:
//
//   - ErrUnknownFormat  extension or Format value not recognized
//   - ErrNoClauses      the table has no clauses
//   - ErrBadClause      a pattern string does not parse; the clause index is included
//   - pattern and matrix sentinels for declarations and table shape
package loader
