// SPDX-License-Identifier: MIT
// Package decision_test covers Compile, rendering and inspection helpers.
package decision_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patmatch/decision"
	"github.com/katalvlaran/patmatch/matrix"
	"github.com/katalvlaran/patmatch/pattern"
)

var (
	trueC  = pattern.Constructor{Name: "True", Arity: 0, Span: 2}
	falseC = pattern.Constructor{Name: "False", Arity: 0, Span: 2}
)

func wc() pattern.Pattern { return pattern.Wild() }

// listSplit builds the reference table with the given span for List and Split.
func listSplit(t *testing.T, span int) *matrix.Matrix {
	t.Helper()
	list := pattern.Constructor{Name: "List", Arity: 0, Span: span}
	split := pattern.Constructor{Name: "Split", Arity: 2, Span: span}
	m, err := matrix.New(
		matrix.NewRow(1, pattern.Con(list), wc()),
		matrix.NewRow(2, wc(), pattern.Con(list)),
		matrix.NewRow(3, pattern.Con(split, wc(), wc()), pattern.Con(split, wc(), wc())),
	)
	require.NoError(t, err)

	return m
}

// TestCompile_ReferenceExhaustive: span 2, no default branch anywhere.
func TestCompile_ReferenceExhaustive(t *testing.T) {
	t.Parallel()

	tree, err := decision.Compile(listSplit(t, 2))
	require.NoError(t, err)

	sw, ok := tree.(*decision.Switch)
	require.True(t, ok, "root must be a Switch on column 0")
	require.Len(t, sw.Cases, 2)
	assert.Equal(t, "List", sw.Cases[0].Con.Name)
	assert.Equal(t, "Split", sw.Cases[1].Con.Name)
	assert.Nil(t, sw.Default, "complete case set needs no default")

	assert.Equal(t,
		"Switch(List/0 => Leaf(1), Split/2 => Swap^2(Switch(List/0 => Leaf(2), Split/2 => Leaf(3))))",
		decision.Render(tree))
}

// TestCompile_ReferenceIncomplete: span 3 adds default branches and Fail leaves.
func TestCompile_ReferenceIncomplete(t *testing.T) {
	t.Parallel()

	tree, err := decision.Compile(listSplit(t, 3))
	require.NoError(t, err)

	sw, ok := tree.(*decision.Switch)
	require.True(t, ok)
	require.NotNil(t, sw.Default)
	assert.Equal(t,
		"Switch(List/0 => Leaf(1), "+
			"Split/2 => Swap^2(Switch(List/0 => Leaf(2), Split/2 => Leaf(3), _ => Fail)), "+
			"_ => Switch(List/0 => Leaf(2), _ => Fail))",
		decision.Render(tree))

	paths, err := decision.FailPaths(tree)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "Split/2 > Swap^2 > _", paths[0].String())
	assert.Equal(t, "_ > _", paths[1].String())
}

// TestCompile_Terminals covers Fail, Leaf and zero-column rows.
func TestCompile_Terminals(t *testing.T) {
	t.Parallel()

	tree, err := decision.Compile(matrix.Empty())
	require.NoError(t, err)
	assert.Equal(t, decision.Fail{}, tree)

	tree, err = decision.Compile(matrix.MustNew(matrix.NewRow(5), matrix.NewRow(6)))
	require.NoError(t, err)
	assert.Equal(t, decision.Leaf{Action: 5}, tree)

	tree, err = decision.Compile(matrix.MustNew(
		matrix.NewRow(7, wc(), wc()),
		matrix.NewRow(8, pattern.Con(trueC), wc()),
	))
	require.NoError(t, err)
	assert.Equal(t, decision.Leaf{Action: 7}, tree, "all-wildcard first row wins")
}

// TestCompile_SwapAtRoot: the tested column is not column 0.
func TestCompile_SwapAtRoot(t *testing.T) {
	t.Parallel()

	tree, err := decision.Compile(matrix.MustNew(
		matrix.NewRow(1, wc(), pattern.Con(trueC)),
		matrix.NewRow(2, wc(), wc()),
	))
	require.NoError(t, err)

	sw, ok := tree.(*decision.Swap)
	require.True(t, ok)
	assert.Equal(t, 1, sw.Column)
	assert.Equal(t, "Swap^1(Switch(True/0 => Leaf(1), _ => Leaf(2)))", decision.Render(tree))
}

// TestCompile_OrPatterns: or-heads contribute both sides' constructors.
func TestCompile_OrPatterns(t *testing.T) {
	t.Parallel()

	tree, err := decision.Compile(matrix.MustNew(
		matrix.NewRow(1, pattern.OrOf(pattern.Con(falseC), pattern.Con(trueC))),
	))
	require.NoError(t, err)
	assert.Equal(t, "Switch(False/0 => Leaf(1), True/0 => Leaf(1))", decision.Render(tree))

	tree, err = decision.Compile(matrix.MustNew(
		matrix.NewRow(1, pattern.OrOf(wc(), wc())),
	))
	require.NoError(t, err)
	assert.Equal(t, "Switch(_ => Leaf(1))", decision.Render(tree))
}

// TestCompile_Deterministic compiles twice and compares renderings.
func TestCompile_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := decision.Compile(listSplit(t, 3))
	require.NoError(t, err)
	b, err := decision.Compile(listSplit(t, 3))
	require.NoError(t, err)
	assert.Equal(t, decision.Render(a), decision.Render(b))
	assert.Equal(t, decision.RenderIndent(a), decision.RenderIndent(b))
}

// TestCompile_Errors covers malformed input.
func TestCompile_Errors(t *testing.T) {
	t.Parallel()

	_, err := decision.Compile(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	red := pattern.Constructor{Name: "Red", Arity: 0, Span: 3}
	_, err = decision.Compile(matrix.MustNew(
		matrix.NewRow(1, pattern.Con(red)),
		matrix.NewRow(2, pattern.Con(trueC)),
	))
	assert.ErrorIs(t, err, pattern.ErrSpanMismatch)
}

// TestCompile_Hooks verifies pre-order step reporting and abort on error.
func TestCompile_Hooks(t *testing.T) {
	t.Parallel()

	var kinds []decision.Kind
	tree, err := decision.Compile(listSplit(t, 2),
		decision.WithLogger(zerolog.Nop()),
		decision.WithOnStep(func(s decision.Step) error {
			kinds = append(kinds, s.Kind)
			return nil
		}))
	require.NoError(t, err)
	assert.Equal(t, []decision.Kind{
		decision.KindSwitch, decision.KindLeaf, decision.KindSwap,
		decision.KindSwitch, decision.KindLeaf, decision.KindLeaf,
	}, kinds)

	stats, err := decision.ComputeStats(tree)
	require.NoError(t, err)
	assert.Equal(t, decision.Stats{Nodes: 6, Leaves: 3, Switches: 2, Swaps: 1, Depth: 3}, stats)

	boom := errors.New("boom")
	_, err = decision.Compile(listSplit(t, 2), decision.WithOnStep(func(s decision.Step) error {
		if s.Kind == decision.KindSwap {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

// TestInspection covers Actions, HasFail, RenderIndent and nil handling.
func TestInspection(t *testing.T) {
	t.Parallel()

	tree, err := decision.Compile(listSplit(t, 2))
	require.NoError(t, err)

	acts, err := decision.Actions(tree)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, acts)

	fail, err := decision.HasFail(tree)
	require.NoError(t, err)
	assert.False(t, fail)

	want := "Switch\n" +
		"  List/0 => Leaf(1)\n" +
		"  Split/2 => Swap^2\n" +
		"    Switch\n" +
		"      List/0 => Leaf(2)\n" +
		"      Split/2 => Leaf(3)\n"
	assert.Equal(t, want, decision.RenderIndent(tree))

	_, err = decision.HasFail(nil)
	assert.ErrorIs(t, err, decision.ErrNilTree)
	_, err = decision.ComputeStats(&decision.Swap{Column: 1})
	assert.ErrorIs(t, err, decision.ErrNilTree)
	assert.Equal(t, "<nil>", decision.Render(nil))
	assert.Equal(t, "Leaf", decision.KindLeaf.String())
}
