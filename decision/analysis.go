// SPDX-License-Identifier: MIT
// Package decision: inspection helpers used by diagnostics and tooling.

package decision

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/patmatch/pattern"
)

// Stats summarizes the shape of a tree.
type Stats struct {
	Nodes    int // total nodes
	Leaves   int // Leaf nodes
	Fails    int // Fail nodes
	Switches int // Switch nodes
	Swaps    int // Swap nodes
	Depth    int // longest root-to-terminal path, in edges
}

// ChoiceKind tags one step on a root-to-node path.
type ChoiceKind int

const (
	ChoiceCase    ChoiceKind = iota // took the arm of Con
	ChoiceDefault                   // took the default arm
	ChoiceSwap                      // exchanged Column with column 0
)

// Choice is one edge taken on a path from the root.
type Choice struct {
	Kind   ChoiceKind
	Con    pattern.Constructor // ChoiceCase only
	Column int                 // ChoiceSwap only
}

// String renders `Con/arity`, `_` or `Swap^k`.
func (c Choice) String() string {
	switch c.Kind {
	case ChoiceCase:
		return c.Con.String()
	case ChoiceDefault:
		return "_"
	}

	return "Swap^" + strconv.Itoa(c.Column)
}

// Path is the sequence of choices from the root to a node.
type Path []Choice

// String joins the choices with " > "; the root path renders as "root".
func (p Path) String() string {
	if len(p) == 0 {
		return "root"
	}
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}

	return strings.Join(parts, " > ")
}

// walkItem is a node with the path that reached it.
type walkItem struct {
	node Tree
	path Path
}

// walk visits every node in pre-order, cases left to right, default last.
func walk(t Tree, visit func(n Tree, p Path)) error {
	if t == nil {
		return ErrNilTree
	}
	stack := []walkItem{{node: t}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.node == nil {
			return ErrNilTree
		}
		visit(it.node, it.path)

		switch n := it.node.(type) {
		case *Switch:
			if n.Default != nil {
				stack = append(stack, walkItem{node: n.Default, path: extend(it.path, Choice{Kind: ChoiceDefault})})
			}
			for i := len(n.Cases) - 1; i >= 0; i-- {
				stack = append(stack, walkItem{node: n.Cases[i].Body, path: extend(it.path, Choice{Kind: ChoiceCase, Con: n.Cases[i].Con})})
			}
		case *Swap:
			stack = append(stack, walkItem{node: n.Body, path: extend(it.path, Choice{Kind: ChoiceSwap, Column: n.Column})})
		}
	}

	return nil
}

// extend returns p + c in a fresh slice so sibling paths never alias.
func extend(p Path, c Choice) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = c

	return out
}

// ComputeStats returns node counts and depth of t.
func ComputeStats(t Tree) (Stats, error) {
	var s Stats
	err := walk(t, func(n Tree, p Path) {
		s.Nodes++
		if len(p) > s.Depth {
			s.Depth = len(p)
		}
		switch n.(type) {
		case Leaf:
			s.Leaves++
		case Fail:
			s.Fails++
		case *Switch:
			s.Switches++
		case *Swap:
			s.Swaps++
		}
	})

	return s, err
}

// Actions returns the distinct actions of t's leaves in ascending order.
// A row whose action is absent can never be selected.
func Actions(t Tree) ([]int, error) {
	seen := make(map[int]struct{})
	err := walk(t, func(n Tree, _ Path) {
		if l, ok := n.(Leaf); ok {
			seen[l.Action] = struct{}{}
		}
	})
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(seen))
	for a := range seen {
		out = append(out, a)
	}
	sort.Ints(out)

	return out, nil
}

// HasFail reports whether any Fail leaf is present, i.e. the match the tree
// was compiled from is not exhaustive.
func HasFail(t Tree) (bool, error) {
	found := false
	err := walk(t, func(n Tree, _ Path) {
		if _, ok := n.(Fail); ok {
			found = true
		}
	})

	return found, err
}

// FailPaths returns the path to every Fail leaf, in pre-order.
func FailPaths(t Tree) ([]Path, error) {
	var out []Path
	err := walk(t, func(n Tree, p Path) {
		if _, ok := n.(Fail); ok {
			out = append(out, p)
		}
	})

	return out, err
}
