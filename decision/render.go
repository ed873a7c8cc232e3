// SPDX-License-Identifier: MIT
// Package decision: textual rendering.
//
// Single-line form (Render):
//
//	Leaf(1)
//	Fail
//	Switch(List/0 => Leaf(1), Split/2 => Fail, _ => Leaf(2))
//	Swap^1(Leaf(2))
//
// Case labels carry the constructor arity; the default arm, when present,
// is always last and labelled `_`. Both forms are produced from an explicit
// stack and are stable across runs.

package decision

import (
	"strconv"
	"strings"
)

// renderItem is either literal text to emit or a node still to expand.
type renderItem struct {
	text string
	node Tree
	lit  bool
}

// Render returns the single-line form of t. A nil tree renders as "<nil>".
func Render(t Tree) string {
	var sb strings.Builder
	stack := []renderItem{{node: t}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.lit {
			sb.WriteString(it.text)
			continue
		}

		switch n := it.node.(type) {
		case Leaf:
			sb.WriteString("Leaf(")
			sb.WriteString(strconv.Itoa(n.Action))
			sb.WriteByte(')')
		case Fail:
			sb.WriteString("Fail")
		case *Switch:
			sb.WriteString("Switch(")
			// collect in emission order, then push reversed
			var seq []renderItem
			for i, c := range n.Cases {
				if i > 0 {
					seq = append(seq, renderItem{text: ", ", lit: true})
				}
				seq = append(seq, renderItem{text: c.Con.String() + " => ", lit: true}, renderItem{node: c.Body})
			}
			if n.Default != nil {
				if len(n.Cases) > 0 {
					seq = append(seq, renderItem{text: ", ", lit: true})
				}
				seq = append(seq, renderItem{text: "_ => ", lit: true}, renderItem{node: n.Default})
			}
			seq = append(seq, renderItem{text: ")", lit: true})
			for i := len(seq) - 1; i >= 0; i-- {
				stack = append(stack, seq[i])
			}
		case *Swap:
			sb.WriteString("Swap^")
			sb.WriteString(strconv.Itoa(n.Column))
			sb.WriteByte('(')
			stack = append(stack, renderItem{text: ")", lit: true}, renderItem{node: n.Body})
		default:
			sb.WriteString("<nil>")
		}
	}

	return sb.String()
}

// indentItem is a node to print at a given indentation with a case label.
type indentItem struct {
	node   Tree
	indent int
	label  string
}

// RenderIndent returns a multi-line form of t, one node per line, children
// indented by two spaces and prefixed with their case label:
//
//	Switch
//	  List/0 => Leaf(1)
//	  Split/2 => Swap^1
//	    Leaf(3)
//	  _ => Fail
func RenderIndent(t Tree) string {
	var sb strings.Builder
	stack := []indentItem{{node: t}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		sb.WriteString(strings.Repeat("  ", it.indent))
		sb.WriteString(it.label)
		switch n := it.node.(type) {
		case Leaf, Fail:
			sb.WriteString(Render(n))
		case *Switch:
			sb.WriteString("Switch")
			if n.Default != nil {
				stack = append(stack, indentItem{node: n.Default, indent: it.indent + 1, label: "_ => "})
			}
			for i := len(n.Cases) - 1; i >= 0; i-- {
				c := n.Cases[i]
				stack = append(stack, indentItem{node: c.Body, indent: it.indent + 1, label: c.Con.String() + " => "})
			}
		case *Swap:
			sb.WriteString("Swap^")
			sb.WriteString(strconv.Itoa(n.Column))
			stack = append(stack, indentItem{node: n.Body, indent: it.indent + 1})
		default:
			sb.WriteString("<nil>")
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
