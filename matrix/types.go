// SPDX-License-Identifier: MIT
// Package matrix defines Row and Matrix.

package matrix

import "github.com/katalvlaran/patmatch/pattern"

// Row is one match clause: patterns for every scrutinized column and the
// action to run when they all match. Rows are immutable once built.
type Row struct {
	patterns []pattern.Pattern
	action   int
}

// Matrix is an ordered list of rows sharing one arity. Earlier rows have
// priority. A Matrix is immutable; every transform returns a new one, so a
// *Matrix may be shared freely, including across goroutines.
type Matrix struct {
	rows []Row
}
