// SPDX-License-Identifier: MIT
// Package matrix: Row construction and accessors.

package matrix

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/patmatch/pattern"
)

// NewRow builds a row guarding action. The pattern slice is copied.
func NewRow(action int, ps ...pattern.Pattern) Row {
	owned := make([]pattern.Pattern, len(ps))
	copy(owned, ps)

	return Row{patterns: owned, action: action}
}

// WildcardRow returns a row of n wildcards guarding action.
func WildcardRow(n, action int) Row {
	return Row{patterns: pattern.Wildcards(n), action: action}
}

// Action returns the opaque action identifier of the row.
func (r Row) Action() int { return r.action }

// Len returns the number of columns of the row.
func (r Row) Len() int { return len(r.patterns) }

// Pattern returns the pattern in column i.
func (r Row) Pattern(i int) pattern.Pattern { return r.patterns[i] }

// Patterns returns a copy of the row's patterns.
func (r Row) Patterns() []pattern.Pattern {
	out := make([]pattern.Pattern, len(r.patterns))
	copy(out, r.patterns)

	return out
}

// Head returns the pattern in column 0, or nil for an empty row.
func (r Row) Head() pattern.Pattern {
	if len(r.patterns) == 0 {
		return nil
	}

	return r.patterns[0]
}

// IsWildcardOnly reports whether every column holds a wildcard.
// An empty row is trivially wildcard-only.
func (r Row) IsWildcardOnly() bool {
	for _, p := range r.patterns {
		if !pattern.IsWildcard(p) {
			return false
		}
	}

	return true
}

// Equal reports whether r and o have the same action and structurally
// equal patterns.
func (r Row) Equal(o Row) bool {
	return r.action == o.action && pattern.EqualRows(r.patterns, o.patterns)
}

// String renders the row as `( p1  p2 -> action )`.
func (r Row) String() string {
	var sb strings.Builder
	sb.WriteString("( ")
	if len(r.patterns) > 0 {
		sb.WriteString(pattern.Format(r.patterns))
		sb.WriteByte(' ')
	}
	sb.WriteString("-> ")
	sb.WriteString(strconv.Itoa(r.action))
	sb.WriteString(" )")

	return sb.String()
}

// splice returns a row guarding action whose patterns are prefix followed
// by tail, in a freshly allocated slice.
func splice(action int, prefix, tail []pattern.Pattern) Row {
	ps := make([]pattern.Pattern, 0, len(prefix)+len(tail))
	ps = append(ps, prefix...)
	ps = append(ps, tail...)

	return Row{patterns: ps, action: action}
}
