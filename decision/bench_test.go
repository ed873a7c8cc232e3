// SPDX-License-Identifier: MIT
package decision_test

import (
	"testing"

	"github.com/katalvlaran/patmatch/decision"
	"github.com/katalvlaran/patmatch/matrix"
	"github.com/katalvlaran/patmatch/pattern"
)

// boolTable builds the 2^n rows of an n-column boolean truth table, one
// action per row, so the compiled tree is a complete binary tree.
func boolTable(b *testing.B, n int) *matrix.Matrix {
	b.Helper()
	rows := make([]matrix.Row, 0, 1<<n)
	for i := 0; i < 1<<n; i++ {
		ps := make([]pattern.Pattern, n)
		for j := 0; j < n; j++ {
			if i&(1<<j) != 0 {
				ps[j] = pattern.Con(trueC)
			} else {
				ps[j] = pattern.Con(falseC)
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

// BenchmarkCompile_Bool8 compiles a 256-row, 8-column truth table.
func BenchmarkCompile_Bool8(b *testing.B) {
	m := boolTable(b, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := decision.Compile(m); err != nil {
			b.Fatalf("Compile failed: %v", err)
		}
	}
}
