// SPDX-License-Identifier: MIT
// Package matrix_test: shared fixtures for the matrix tests.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patmatch/matrix"
	"github.com/katalvlaran/patmatch/pattern"
)

var (
	listC  = pattern.Constructor{Name: "List", Arity: 0, Span: 2}
	splitC = pattern.Constructor{Name: "Split", Arity: 2, Span: 2}
	redC   = pattern.Constructor{Name: "Red", Arity: 0, Span: 3}
	greenC = pattern.Constructor{Name: "Green", Arity: 0, Span: 3}
	blueC  = pattern.Constructor{Name: "Blue", Arity: 0, Span: 3}
)

func wc() pattern.Pattern { return pattern.Wild() }

func list() pattern.Pattern { return pattern.Con(listC) }

func split(l, r pattern.Pattern) pattern.Pattern { return pattern.Con(splitC, l, r) }

func row(action int, ps ...pattern.Pattern) matrix.Row { return matrix.NewRow(action, ps...) }

// referenceMatrix is the three-clause List/Split table:
//
//	( List  _ -> 1 )
//	( _  List -> 2 )
//	( Split(_, _)  Split(_, _) -> 3 )
func referenceMatrix(t *testing.T) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(
		row(1, list(), wc()),
		row(2, wc(), list()),
		row(3, split(wc(), wc()), split(wc(), wc())),
	)
	require.NoError(t, err)

	return m
}

// requireRows asserts m holds exactly want, in order.
func requireRows(t *testing.T, want []matrix.Row, m *matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Len(), "row count; got\n%s", m)
	for i := range want {
		require.Truef(t, want[i].Equal(m.Row(i)), "row %d: want %s, got %s", i, want[i], m.Row(i))
	}
}

func sig(t *testing.T) *pattern.Signature {
	t.Helper()
	s := pattern.NewSignature()
	require.NoError(t, s.Declare("list", pattern.Variant{Name: "List"}, pattern.Variant{Name: "Split", Arity: 2}))
	require.NoError(t, s.Declare("rgb", pattern.Variant{Name: "Red"}, pattern.Variant{Name: "Green"}, pattern.Variant{Name: "Blue"}))

	return s
}
