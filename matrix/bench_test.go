// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/patmatch/matrix"
	"github.com/katalvlaran/patmatch/pattern"
)

// wideMatrix builds n rows over a 3-variant enum in every one of cols columns,
// rotating the constructor per row and sprinkling or-patterns and wildcards.
func wideMatrix(b *testing.B, n, cols int) *matrix.Matrix {
	b.Helper()
	cons := []pattern.Constructor{redC, greenC, blueC}
	rows := make([]matrix.Row, 0, n)
	for i := 0; i < n; i++ {
		ps := make([]pattern.Pattern, cols)
		for j := range ps {
			switch (i + j) % 4 {
			case 0:
				ps[j] = pattern.Wild()
			case 1:
				ps[j] = pattern.OrOf(pattern.Con(cons[i%3]), pattern.Con(cons[(i+1)%3]))
			default:
				ps[j] = pattern.Con(cons[(i+j)%3])
			}
		}
		rows = append(rows, matrix.NewRow(i, ps...))
	}
	m, err := matrix.New(rows...)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	return m
}

// BenchmarkSpecialize measures one specialization of a 1000×8 matrix.
func BenchmarkSpecialize(b *testing.B) {
	m := wideMatrix(b, 1000, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Specialize(m, greenC); err != nil {
			b.Fatalf("Specialize failed: %v", err)
		}
	}
}

// BenchmarkDefault measures one default matrix of a 1000×8 matrix.
func BenchmarkDefault(b *testing.B) {
	m := wideMatrix(b, 1000, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Default(m); err != nil {
			b.Fatalf("Default failed: %v", err)
		}
	}
}
