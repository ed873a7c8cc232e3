// SPDX-License-Identifier: MIT
// Package decision: the matrix-to-tree compiler.

package decision

import (
	"fmt"

	"github.com/katalvlaran/patmatch/matrix"
	"github.com/katalvlaran/patmatch/pattern"
)

// task is one pending sub-compilation: compile m and store the result in dest.
type task struct {
	m     *matrix.Matrix
	dest  *Tree
	depth int
}

// compiler carries the resolved options through the descent.
type compiler struct {
	opts Options
}

// Compile turns m into a decision tree.
//
// The input is validated once (row arity, pattern shape, constructor
// consistency); every derived matrix inherits that validity. Compile
// always terminates for a finite matrix and returns exactly one of Leaf,
// Fail, *Switch or *Swap at the root.
//
// Errors are returned only for malformed input or a failing OnStep hook;
// an incomplete match is represented by Fail leaves, not by an error.
func Compile(m *matrix.Matrix, opts ...Option) (Tree, error) {
	// 1. Validate input once
	if err := matrix.Validate(m); err != nil {
		return nil, fmt.Errorf("decision: Compile: %w", err)
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	c := &compiler{opts: o}

	// 3. Drain the work stack; children are pushed in reverse so that nodes
	//    are decided in pre-order, cases left to right, default last
	var root Tree
	stack := []task{{m: m, dest: &root, depth: 0}}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node, children, err := c.decide(t)
		if err != nil {
			return nil, fmt.Errorf("decision: Compile: %w", err)
		}
		*t.dest = node
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return root, nil
}

// decide picks the variant for t.m and returns the sub-tasks that fill
// the node's children.
func (c *compiler) decide(t task) (Tree, []task, error) {
	m := t.m
	step := Step{Depth: t.depth, Rows: m.Len(), Arity: m.Arity(), Column: -1, Action: -1}

	// 1. No rows: nothing can match here
	if m.IsEmpty() {
		step.Kind = KindFail
		return Fail{}, nil, c.report(step)
	}

	// 2. First row matches everything: first match wins
	if first := m.Row(0); first.IsWildcardOnly() {
		step.Kind, step.Action = KindLeaf, first.Action()
		return Leaf{Action: first.Action()}, nil, c.report(step)
	}

	// 3. Bring the leftmost tested column to the front
	col := matrix.FirstTestColumn(m)
	if col > 0 {
		swapped, err := matrix.SwapColumns(m, col, 0)
		if err != nil {
			return nil, nil, err
		}
		node := &Swap{Column: col}
		step.Kind, step.Column = KindSwap, col
		if err = c.report(step); err != nil {
			return nil, nil, err
		}
		return node, []task{{m: swapped, dest: &node.Body, depth: t.depth + 1}}, nil
	}

	// 4. One case per head constructor of column 0
	cons, err := matrix.HeadConstructors(m)
	if err != nil {
		return nil, nil, err
	}
	complete, err := pattern.Complete(cons)
	if err != nil {
		return nil, nil, err
	}

	node := &Switch{Cases: make([]Case, len(cons))}
	children := make([]task, 0, len(cons)+1)
	for i, con := range cons {
		spec, err := matrix.Specialize(m, con)
		if err != nil {
			return nil, nil, err
		}
		node.Cases[i].Con = con
		children = append(children, task{m: spec, dest: &node.Cases[i].Body, depth: t.depth + 1})
	}

	// 5. Default branch only when the cases leave variants uncovered
	if !complete {
		def, err := matrix.Default(m)
		if err != nil {
			return nil, nil, err
		}
		children = append(children, task{m: def, dest: &node.Default, depth: t.depth + 1})
	}

	step.Kind, step.Column, step.Cases, step.HasDefault = KindSwitch, 0, len(cons), !complete
	if err = c.report(step); err != nil {
		return nil, nil, err
	}

	return node, children, nil
}

// report logs the step and forwards it to the hook.
func (c *compiler) report(s Step) error {
	c.opts.Logger.Debug().
		Str("kind", s.Kind.String()).
		Int("depth", s.Depth).
		Int("rows", s.Rows).
		Int("arity", s.Arity).
		Int("column", s.Column).
		Int("cases", s.Cases).
		Bool("default", s.HasDefault).
		Msg("decision step")

	if c.opts.OnStep != nil {
		if err := c.opts.OnStep(s); err != nil {
			return fmt.Errorf("OnStep hook at depth %d: %w", s.Depth, err)
		}
	}

	return nil
}
