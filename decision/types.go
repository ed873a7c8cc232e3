// SPDX-License-Identifier: MIT
// Package decision defines the tree variants, trace events and options.

package decision

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/patmatch/pattern"
)

// ErrNilTree is returned when a nil Tree is passed to an inspection helper.
var ErrNilTree = errors.New("decision: tree is nil")

// Kind tags the four tree variants.
type Kind int

const (
	KindLeaf   Kind = iota // terminal: an action matched
	KindFail               // terminal: no row can match
	KindSwitch             // test column 0's head constructor
	KindSwap               // exchange a column with column 0, then continue
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "Leaf"
	case KindFail:
		return "Fail"
	case KindSwitch:
		return "Switch"
	case KindSwap:
		return "Swap"
	}

	return "Unknown"
}

// Tree is one of Leaf, Fail, *Switch or *Swap.
type Tree interface {
	Kind() Kind
	isTree()
}

// Leaf: the row with Action matched; no further tests.
type Leaf struct {
	Action int
}

// Fail: no row matches values reaching this node.
type Fail struct{}

// Case is one arm of a Switch.
type Case struct {
	Con  pattern.Constructor
	Body Tree
}

// Switch dispatches on the head constructor of the value in column 0.
// Default is nil when Cases cover every variant of the type.
type Switch struct {
	Cases   []Case
	Default Tree
}

// Swap instructs the caller to exchange the value in Column with the value
// in column 0 before descending into Body.
type Swap struct {
	Column int
	Body   Tree
}

func (Leaf) Kind() Kind    { return KindLeaf }
func (Fail) Kind() Kind    { return KindFail }
func (*Switch) Kind() Kind { return KindSwitch }
func (*Swap) Kind() Kind   { return KindSwap }

func (Leaf) isTree()    {}
func (Fail) isTree()    {}
func (*Switch) isTree() {}
func (*Swap) isTree()   {}

// Step describes one node decision, reported to the OnStep hook in
// pre-order (a node before its children, children in case order).
type Step struct {
	Depth  int  // distance from the root
	Kind   Kind // variant chosen for this node
	Rows   int  // rows of the matrix the node was decided on
	Arity  int  // columns of that matrix (-1 when it has no rows)
	Column int  // Swap: exchanged column; Switch: 0; otherwise -1
	Action int  // Leaf: matched action; otherwise -1
	Cases  int  // Switch: number of cases; otherwise 0
	// HasDefault is true for a Switch whose cases are incomplete.
	HasDefault bool
}

// Option configures Compile.
type Option func(*Options)

// Options holds the tracing knobs of Compile. Neither affects the result.
type Options struct {
	// OnStep, if non-nil, is invoked for every node once its variant is
	// decided. Returning an error aborts compilation with that error.
	OnStep func(Step) error

	// Logger receives one debug event per node. Defaults to zerolog.Nop().
	Logger zerolog.Logger
}

// DefaultOptions returns Options with no hook and a no-op logger.
func DefaultOptions() Options {
	return Options{
		OnStep: nil,
		Logger: zerolog.Nop(),
	}
}

// WithOnStep installs fn as the per-node hook.
func WithOnStep(fn func(Step) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
