// SPDX-License-Identifier: MIT
// Package pattern: textual rendering.

package pattern

import "strings"

// String renders `_`.
func (Wildcard) String() string { return "_" }

// String renders `Name` or `Name(a, b)`.
func (p Constructed) String() string {
	var sb strings.Builder
	writePattern(&sb, p)

	return sb.String()
}

// String renders `(l | r)`.
func (p Or) String() string {
	var sb strings.Builder
	writePattern(&sb, p)

	return sb.String()
}

// Format renders a sequence of patterns separated by two spaces, the
// column layout used by matrix rows.
func Format(ps []Pattern) string {
	var sb strings.Builder
	for i, p := range ps {
		if i > 0 {
			sb.WriteString("  ")
		}
		writePattern(&sb, p)
	}

	return sb.String()
}

func writePattern(sb *strings.Builder, p Pattern) {
	switch x := p.(type) {
	case Wildcard:
		sb.WriteByte('_')
	case Constructed:
		sb.WriteString(x.Con.Name)
		if len(x.args) == 0 {
			return
		}
		sb.WriteByte('(')
		for i, a := range x.args {
			if i > 0 {
				sb.WriteString(", ")
			}
			writePattern(sb, a)
		}
		sb.WriteByte(')')
	case Or:
		sb.WriteByte('(')
		writePattern(sb, x.Left)
		sb.WriteString(" | ")
		writePattern(sb, x.Right)
		sb.WriteByte(')')
	default:
		sb.WriteString("<nil>")
	}
}
