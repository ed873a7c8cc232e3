// SPDX-License-Identifier: MIT
// Package usefulness_test covers IsUseful, Analyze and Witness.
package usefulness_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patmatch/matrix"
	"github.com/katalvlaran/patmatch/pattern"
	"github.com/katalvlaran/patmatch/usefulness"
)

// signature declares Bool, Option and a three-variant Tree type.
func signature() *pattern.Signature {
	return pattern.NewSignature().
		MustDeclare("Bool", pattern.Variant{Name: "True"}, pattern.Variant{Name: "False"}).
		MustDeclare("Option", pattern.Variant{Name: "None"}, pattern.Variant{Name: "Some", Arity: 1}).
		MustDeclare("Tree",
			pattern.Variant{Name: "List"},
			pattern.Variant{Name: "Split", Arity: 2},
			pattern.Variant{Name: "Other", Arity: 1})
}

// con resolves name in sig and applies it.
func con(t *testing.T, sig *pattern.Signature, name string, args ...pattern.Pattern) pattern.Pattern {
	t.Helper()
	c, ok := sig.Lookup(name)
	require.True(t, ok, "unknown constructor %s", name)

	return pattern.Con(c, args...)
}

// parse reads a matrix in its rendered form.
func parse(t *testing.T, sig *pattern.Signature, text string) *matrix.Matrix {
	t.Helper()
	m, err := matrix.Parse(text, sig)
	require.NoError(t, err)

	return m
}

func TestIsUseful(t *testing.T) {
	t.Parallel()
	sig := signature()
	w := pattern.Wild()

	tests := []struct {
		name string
		p    string
		q    matrix.Row
		want bool
	}{
		{"empty matrix", "", matrix.NewRow(0, w), true},
		{"zero columns covered", "( -> 1 )", matrix.NewRow(0), false},
		{"constructor already covered", "( True -> 1 )", matrix.NewRow(0, con(t, sig, "True")), false},
		{"other constructor", "( True -> 1 )", matrix.NewRow(0, con(t, sig, "False")), true},
		{"wildcard incomplete", "( True -> 1 )", matrix.NewRow(0, w), true},
		{"wildcard complete", "( True -> 1 )\n( False -> 2 )", matrix.NewRow(0, w), false},
		{"or candidate one side new", "( True -> 1 )",
			matrix.NewRow(0, pattern.OrOf(con(t, sig, "True"), con(t, sig, "False"))), true},
		{"or candidate covered", "( True -> 1 )\n( False -> 2 )",
			matrix.NewRow(0, pattern.OrOf(con(t, sig, "True"), con(t, sig, "False"))), false},
		{"or row covers", "( (True | False) -> 1 )", matrix.NewRow(0, w), false},
		{"nested argument", "( Some(True) -> 1 )\n( None -> 2 )",
			matrix.NewRow(0, con(t, sig, "Some", con(t, sig, "False"))), true},
		{"nested covered", "( Some(_) -> 1 )", matrix.NewRow(0, con(t, sig, "Some", con(t, sig, "False"))), false},
		{"second column", "( _  True -> 1 )\n( _  False -> 2 )", matrix.NewRow(0, w, w), false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := usefulness.IsUseful(parse(t, sig, tc.p), tc.q)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsUseful_Errors(t *testing.T) {
	t.Parallel()
	sig := signature()
	w := pattern.Wild()

	_, err := usefulness.IsUseful(nil, matrix.NewRow(0, w))
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	p := parse(t, sig, "( True  _ -> 1 )")
	_, err = usefulness.IsUseful(p, matrix.NewRow(0, w))
	assert.ErrorIs(t, err, usefulness.ErrCandidateArity)

	clash := pattern.Constructor{Name: "True", Arity: 0, Span: 3}
	_, err = usefulness.IsUseful(p, matrix.NewRow(0, pattern.Con(clash), w))
	assert.ErrorIs(t, err, pattern.ErrConstructorConflict)
}

func TestIsUseful_Logger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	p := parse(t, signature(), "( True -> 1 )")
	_, err := usefulness.IsUseful(p, matrix.NewRow(0, pattern.Wild()), usefulness.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "usefulness step")
}
