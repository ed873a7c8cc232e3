// SPDX-License-Identifier: MIT
// Package matrix_test covers construction, validation, column helpers and rendering.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patmatch/matrix"
	"github.com/katalvlaran/patmatch/pattern"
)

// TestNew_Validation covers rejected tables.
func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    []matrix.Row
		wantErr error
	}{
		{"empty", nil, nil},
		{"ok", []matrix.Row{row(1, list(), wc()), row(2, wc(), wc())}, nil},
		{"arity mismatch", []matrix.Row{row(1, list(), wc()), row(2, wc())}, matrix.ErrRowArity},
		{"wrong arg count", []matrix.Row{row(1, pattern.Con(splitC, wc()))}, pattern.ErrArgCount},
		{
			"same name different span",
			[]matrix.Row{row(1, list()), row(2, pattern.Con(pattern.Constructor{Name: "List", Arity: 0, Span: 7}))},
			pattern.ErrConstructorConflict,
		},
		{"nil pattern", []matrix.Row{row(1, nil)}, pattern.ErrNilPattern},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.New(tc.rows...)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	assert.Panics(t, func() { matrix.MustNew(row(1, wc()), row(2)) })
}

// TestMatrix_Accessors covers Len, Arity, Prefix and Append.
func TestMatrix_Accessors(t *testing.T) {
	t.Parallel()

	m := referenceMatrix(t)
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 2, m.Arity())
	assert.Equal(t, -1, matrix.Empty().Arity())

	p := m.Prefix(2)
	assert.Equal(t, 2, p.Len())
	assert.True(t, m.Prefix(-3).IsEmpty())
	assert.Equal(t, 3, m.Prefix(10).Len())

	grown, err := p.Append(row(9, wc(), wc()))
	require.NoError(t, err)
	assert.Equal(t, 3, grown.Len())
	assert.Equal(t, 2, p.Len(), "Append must not modify the receiver")

	_, err = p.Append(row(9, wc()))
	assert.ErrorIs(t, err, matrix.ErrRowArity)

	assert.True(t, m.Equal(referenceMatrix(t)))
	assert.False(t, m.Equal(p))
}

// TestSwapColumns exchanges columns and checks bounds.
func TestSwapColumns(t *testing.T) {
	t.Parallel()

	m := matrix.MustNew(
		row(1, wc(), list(), pattern.Con(redC)),
		row(2, split(wc(), wc()), wc(), wc()),
	)
	s, err := matrix.SwapColumns(m, 2, 0)
	require.NoError(t, err)
	requireRows(t, []matrix.Row{
		row(1, pattern.Con(redC), list(), wc()),
		row(2, wc(), wc(), split(wc(), wc())),
	}, s)
	assert.Equal(t, "( _  List  Red -> 1 )", m.Row(0).String(), "source untouched")

	_, err = matrix.SwapColumns(m, 3, 0)
	assert.ErrorIs(t, err, matrix.ErrColumnRange)
	_, err = matrix.SwapColumns(m, -1, 0)
	assert.ErrorIs(t, err, matrix.ErrColumnRange)
	_, err = matrix.SwapColumns(nil, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestFirstTestColumn picks the leftmost column with a constructor.
func TestFirstTestColumn(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, matrix.FirstTestColumn(referenceMatrix(t)))
	assert.Equal(t, 1, matrix.FirstTestColumn(matrix.MustNew(row(1, wc(), wc()), row(2, wc(), list()))))
	assert.Equal(t, -1, matrix.FirstTestColumn(matrix.MustNew(row(1, wc(), wc()))))
	assert.Equal(t, -1, matrix.FirstTestColumn(matrix.Empty()))
}

// TestHeadConstructors checks first-appearance order with or-expansion.
func TestHeadConstructors(t *testing.T) {
	t.Parallel()

	m := matrix.MustNew(
		row(1, wc()),
		row(2, pattern.OrOf(pattern.Con(blueC), pattern.Con(redC))),
		row(3, pattern.Con(redC)),
		row(4, pattern.Con(greenC)),
	)
	got, err := matrix.HeadConstructors(m)
	require.NoError(t, err)
	assert.Equal(t, []pattern.Constructor{blueC, redC, greenC}, got)

	_, err = matrix.ColumnConstructors(m, 1)
	assert.ErrorIs(t, err, matrix.ErrColumnRange)
}

// TestRender_RoundTrip checks the textual form and Parse back.
func TestRender_RoundTrip(t *testing.T) {
	t.Parallel()

	m := matrix.MustNew(
		row(1, list(), wc()),
		row(2, wc(), list()),
		row(3, split(pattern.OrOf(list(), wc()), wc()), split(wc(), wc())),
	)
	want := "( List  _ -> 1 )\n" +
		"( _  List -> 2 )\n" +
		"( Split((List | _), _)  Split(_, _) -> 3 )\n"
	require.Equal(t, want, m.String())

	back, err := matrix.Parse(m.String(), sig(t))
	require.NoError(t, err)
	assert.True(t, m.Equal(back))
	assert.Equal(t, want, back.String())

	zero := matrix.MustNew(row(4))
	assert.Equal(t, "( -> 4 )\n", zero.String())
	back, err = matrix.Parse(zero.String(), sig(t))
	require.NoError(t, err)
	assert.True(t, zero.Equal(back))
}

// TestParse_Errors covers malformed lines.
func TestParse_Errors(t *testing.T) {
	t.Parallel()

	s := sig(t)
	for _, src := range []string{"List -> 1", "( List 1 )", "( List -> x )"} {
		_, err := matrix.Parse(src, s)
		assert.ErrorIs(t, err, matrix.ErrMalformedRow, "src %q", src)
	}
	_, err := matrix.Parse("( Nope -> 1 )", s)
	assert.ErrorIs(t, err, pattern.ErrUnknownConstructor)
	_, err = matrix.Parse("( List -> 1 )\n( List  _ -> 2 )", s)
	assert.ErrorIs(t, err, matrix.ErrRowArity)
}
