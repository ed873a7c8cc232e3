// SPDX-License-Identifier: MIT
// Package pattern: construction helpers and structural queries.

package pattern

import (
	"fmt"
	"strconv"
	"strings"
)

// Wild returns the wildcard pattern `_`.
func Wild() Pattern { return Wildcard{} }

// Con builds Constructed(c, args). The args slice is copied.
// Arity is not checked here; see Validate.
func Con(c Constructor, args ...Pattern) Pattern {
	owned := make([]Pattern, len(args))
	copy(owned, args)

	return Constructed{Con: c, args: owned}
}

// OrOf builds Or(l, r).
func OrOf(l, r Pattern) Pattern { return Or{Left: l, Right: r} }

// Alts folds ps into a left-nested chain ((p0 | p1) | p2) ...
// It returns nil for an empty list and ps[0] for a single element.
func Alts(ps ...Pattern) Pattern {
	if len(ps) == 0 {
		return nil
	}
	acc := ps[0]
	for _, p := range ps[1:] {
		acc = Or{Left: acc, Right: p}
	}

	return acc
}

// Wildcards returns n fresh wildcard patterns.
func Wildcards(n int) []Pattern {
	out := make([]Pattern, n)
	for i := range out {
		out[i] = Wildcard{}
	}

	return out
}

// IsWildcard reports whether p is the wildcard pattern.
func IsWildcard(p Pattern) bool {
	_, ok := p.(Wildcard)

	return ok
}

// Head returns the constructor of a Constructed pattern.
// Wildcard has no head constructor, and neither does Or: callers must look
// at each alternative (see Alternatives) before asking.
func Head(p Pattern) (Constructor, bool) {
	if c, ok := p.(Constructed); ok {
		return c.Con, true
	}

	return Constructor{}, false
}

// Alternatives flattens the Or nodes at the top of p and returns the
// non-Or leaves in lhs-then-rhs order. A pattern that is not an Or is its
// own single alternative. Nested Or nodes under a constructor are not
// touched.
func Alternatives(p Pattern) []Pattern {
	if _, ok := p.(Or); !ok {
		return []Pattern{p}
	}

	var out []Pattern
	stack := []Pattern{p}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if or, ok := top.(Or); ok {
			// push right first so left is visited first
			stack = append(stack, or.Right, or.Left)
			continue
		}
		out = append(out, top)
	}

	return out
}

// HeadConstructors returns the distinct constructors heading the
// alternatives of p, in first-appearance order.
func HeadConstructors(p Pattern) []Constructor {
	var out []Constructor
	for _, alt := range Alternatives(p) {
		c, ok := Head(alt)
		if !ok {
			continue
		}
		if !containsConstructor(out, c) {
			out = append(out, c)
		}
	}

	return out
}

// Complete reports whether cons names every variant of their type, that is
// len(cons) == shared Span. cons is expected to hold distinct constructors.
// An empty set is never complete.
func Complete(cons []Constructor) (bool, error) {
	if len(cons) == 0 {
		return false, nil
	}
	span := cons[0].Span
	for _, c := range cons[1:] {
		if c.Span != span {
			return false, fmt.Errorf("%w: %s has span %d, %s has span %d",
				ErrSpanMismatch, cons[0].Name, span, c.Name, c.Span)
		}
	}
	if len(cons) > span {
		return false, fmt.Errorf("%w: %d distinct constructors for span %d",
			ErrSpanMismatch, len(cons), span)
	}

	return len(cons) == span, nil
}

// Equal reports structural equality of a and b.
func Equal(a, b Pattern) bool {
	type pair struct{ a, b Pattern }
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch x := top.a.(type) {
		case Wildcard:
			if _, ok := top.b.(Wildcard); !ok {
				return false
			}
		case Constructed:
			y, ok := top.b.(Constructed)
			if !ok || x.Con != y.Con || len(x.args) != len(y.args) {
				return false
			}
			for i := range x.args {
				stack = append(stack, pair{x.args[i], y.args[i]})
			}
		case Or:
			y, ok := top.b.(Or)
			if !ok {
				return false
			}
			stack = append(stack, pair{x.Right, y.Right}, pair{x.Left, y.Left})
		default:
			// nil on the left: equal only to nil
			if top.a != nil || top.b != nil {
				return false
			}
		}
	}

	return true
}

// EqualRows reports element-wise structural equality of two pattern vectors.
func EqualRows(a, b []Pattern) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}

// Key returns a canonical string for p that differs for any two patterns
// that are not Equal. Unlike String it carries arity and span, so it can be
// used as a map key across types that reuse a variant name. Keys stay
// unambiguous because valid constructor names never contain the key's
// punctuation.
func Key(p Pattern) string {
	var sb strings.Builder
	writeKey(&sb, p)

	return sb.String()
}

func writeKey(sb *strings.Builder, p Pattern) {
	switch x := p.(type) {
	case Wildcard:
		sb.WriteByte('_')
	case Constructed:
		sb.WriteString(x.Con.Name)
		sb.WriteByte('/')
		sb.WriteString(strconv.Itoa(x.Con.Arity))
		sb.WriteByte('/')
		sb.WriteString(strconv.Itoa(x.Con.Span))
		sb.WriteByte('(')
		for i, a := range x.args {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeKey(sb, a)
		}
		sb.WriteByte(')')
	case Or:
		sb.WriteByte('{')
		writeKey(sb, x.Left)
		sb.WriteByte('|')
		writeKey(sb, x.Right)
		sb.WriteByte('}')
	default:
		sb.WriteString("<nil>")
	}
}

func containsConstructor(cs []Constructor, c Constructor) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}

	return false
}
