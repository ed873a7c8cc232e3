// SPDX-License-Identifier: MIT
// Package pattern defines Constructor and the three Pattern variants.

package pattern

import "strconv"

// Constructor identifies how a value of an algebraic type was built.
//
//   - Name  is unique per variant within its type.
//   - Arity is the number of sub-values (and sub-patterns) the variant carries.
//   - Span  is the total number of variants of the owning type; it must be
//     identical for every constructor of one type.
//
// Two constructors are equal iff Name, Arity and Span all match, which is
// exactly Go struct equality, so Constructor is usable as a map key.
//
// Example: given `enum RGB { Red, Green, Blue }`,
// Red is Constructor{Name: "Red", Arity: 0, Span: 3}.
type Constructor struct {
	Name  string
	Arity int
	Span  int
}

// String renders the constructor as Name/Arity.
func (c Constructor) String() string {
	return c.Name + "/" + strconv.Itoa(c.Arity)
}

// Pattern is one of Wildcard, Constructed or Or.
// The interface is closed: only this package provides implementations.
type Pattern interface {
	// String renders the pattern in the syntax accepted by Parse.
	String() string

	isPattern()
}

// Wildcard matches any value and binds nothing.
type Wildcard struct{}

// Constructed matches a value built with Con whose sub-values match Args
// position by position. Build it with Con; the argument slice is owned by
// the pattern and never handed out.
type Constructed struct {
	Con  Constructor
	args []Pattern
}

// Or matches when Left or Right matches. Both branches describe values at
// the same position, so they are expected to come from one type.
type Or struct {
	Left  Pattern
	Right Pattern
}

func (Wildcard) isPattern()    {}
func (Constructed) isPattern() {}
func (Or) isPattern()          {}

// NumArgs returns the number of sub-patterns.
func (p Constructed) NumArgs() int { return len(p.args) }

// Arg returns the i-th sub-pattern. It panics on an out-of-range index,
// like slice indexing.
func (p Constructed) Arg(i int) Pattern { return p.args[i] }

// Args returns a copy of the sub-patterns.
func (p Constructed) Args() []Pattern {
	out := make([]Pattern, len(p.args))
	copy(out, p.args)

	return out
}
