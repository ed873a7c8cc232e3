// SPDX-License-Identifier: MIT
// Package usefulness: the IsUseful check.

package usefulness

import (
	"fmt"

	"github.com/katalvlaran/patmatch/matrix"
	"github.com/katalvlaran/patmatch/pattern"
)

// problem is one pending IsUseful(p, q) sub-question.
type problem struct {
	p     *matrix.Matrix
	q     []pattern.Pattern
	depth int
}

// IsUseful reports whether q matches some value that no row of p matches.
// q's action is ignored. An empty p makes any q useful.
//
// Errors: matrix.ErrNilMatrix, ErrCandidateArity, and pattern errors when q
// is malformed or inconsistent with p.
func IsUseful(p *matrix.Matrix, q matrix.Row, opts ...Option) (bool, error) {
	if err := validate(p, q); err != nil {
		return false, fmt.Errorf("usefulness: IsUseful: %w", err)
	}
	useful, err := isUseful(p, q.Patterns(), gather(opts))
	if err != nil {
		return false, fmt.Errorf("usefulness: IsUseful: %w", err)
	}

	return useful, nil
}

// validate checks q against p once, before any transform runs.
func validate(p *matrix.Matrix, q matrix.Row) error {
	if err := matrix.Validate(p); err != nil {
		return err
	}
	if !p.IsEmpty() && p.Arity() != q.Len() {
		return fmt.Errorf("%w: matrix has %d columns, candidate has %d", ErrCandidateArity, p.Arity(), q.Len())
	}

	return matrix.ValidateCandidate(p, q)
}

// isUseful is the disjunction search over sub-problems. Each sub-problem
// either settles as false or expands into alternatives; the first one that
// settles as true answers the whole question.
func isUseful(p *matrix.Matrix, q []pattern.Pattern, o Options) (bool, error) {
	stack := []problem{{p: p, q: q}}
	for len(stack) > 0 {
		pr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		o.Logger.Debug().
			Int("depth", pr.depth).
			Int("rows", pr.p.Len()).
			Int("arity", len(pr.q)).
			Msg("usefulness step")

		// nothing covers anything yet
		if pr.p.IsEmpty() {
			return true, nil
		}
		// every row of p covers the empty tuple
		if len(pr.q) == 0 {
			continue
		}

		next, err := expand(pr)
		if err != nil {
			return false, err
		}
		// reversed so alternatives are tried left to right
		for i := len(next) - 1; i >= 0; i-- {
			stack = append(stack, next[i])
		}
	}

	return false, nil
}

// expand returns the sub-problems pr is the disjunction of.
func expand(pr problem) ([]problem, error) {
	head, tail := pr.q[0], pr.q[1:]
	depth := pr.depth + 1

	switch h := head.(type) {
	case pattern.Constructed:
		sp, err := matrix.Specialize(pr.p, h.Con)
		if err != nil {
			return nil, err
		}
		return []problem{{p: sp, q: concat(h.Args(), tail), depth: depth}}, nil

	case pattern.Or:
		return []problem{
			{p: pr.p, q: concat([]pattern.Pattern{h.Left}, tail), depth: depth},
			{p: pr.p, q: concat([]pattern.Pattern{h.Right}, tail), depth: depth},
		}, nil
	}

	// wildcard head
	sigma, err := matrix.HeadConstructors(pr.p)
	if err != nil {
		return nil, err
	}
	complete, err := pattern.Complete(sigma)
	if err != nil {
		return nil, err
	}
	if !complete {
		d, err := matrix.Default(pr.p)
		if err != nil {
			return nil, err
		}
		return []problem{{p: d, q: tail, depth: depth}}, nil
	}

	out := make([]problem, 0, len(sigma))
	for _, c := range sigma {
		sp, err := matrix.Specialize(pr.p, c)
		if err != nil {
			return nil, err
		}
		out = append(out, problem{p: sp, q: concat(pattern.Wildcards(c.Arity), tail), depth: depth})
	}

	return out, nil
}

// concat returns a fresh prefix ++ tail.
func concat(prefix, tail []pattern.Pattern) []pattern.Pattern {
	out := make([]pattern.Pattern, 0, len(prefix)+len(tail))
	out = append(out, prefix...)

	return append(out, tail...)
}
