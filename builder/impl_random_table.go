// SPDX-License-Identifier: MIT
// Package: patmatch/builder
//
// impl_random_table.go - RandomTable(rows, cols): seeded random clauses.
//
// Model:
//   - Even columns hold Bool patterns, odd columns hold Option patterns
//     whose Some argument is a Bool pattern, so every column is well typed.
//   - Each cell is `_` with probability cfg.wildcardProb; otherwise a
//     constructor is drawn uniformly, and with probability orProbability
//     the cell becomes an or-pattern of two such draws.
//
// Contract:
//   - rows ≥ MinRandomRows, cols ≥ 0 (else ErrTooSmall).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Determinism:
//   - Cells are drawn row-major; a fixed seed yields a fixed table.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/patmatch/pattern"
)

const orProbability = 0.15

// RandomTable returns a fixture adding rows random rows of width cols.
func RandomTable(rows, cols int) Fixture {
	return func(t *Table, cfg builderConfig) error {
		if err := validateMin(MethodRandomTable, rows, MinRandomRows); err != nil {
			return err
		}
		if err := validateMin(MethodRandomTable, cols, 0); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomTable, ErrNeedRandSource)
		}

		bools, err := declareBool(t, cfg)
		if err != nil {
			return builderErrorf(MethodRandomTable, err)
		}
		opts, err := t.declare(cfg, TypeOption,
			pattern.Variant{Name: "None"},
			pattern.Variant{Name: "Some", Arity: 1})
		if err != nil {
			return builderErrorf(MethodRandomTable, err)
		}

		g := &cellGen{rng: cfg.rng, wild: cfg.wildcardProb, bools: bools, opts: opts}
		for i := 0; i < rows; i++ {
			row := make([]pattern.Pattern, cols)
			for j := range row {
				if j%2 == 0 {
					row[j] = g.cell(g.boolean)
				} else {
					row[j] = g.cell(g.option)
				}
			}
			t.Add(row...)
		}

		return nil
	}
}

// cellGen draws random patterns.
type cellGen struct {
	rng   *rand.Rand
	wild  float64
	bools []pattern.Constructor // True, False
	opts  []pattern.Constructor // None, Some
}

// cell draws `_`, one constructor pattern, or an or-pattern of two.
func (g *cellGen) cell(draw func() pattern.Pattern) pattern.Pattern {
	if g.rng.Float64() < g.wild {
		return pattern.Wild()
	}
	p := draw()
	if g.rng.Float64() < orProbability {
		p = pattern.OrOf(p, draw())
	}

	return p
}

func (g *cellGen) boolean() pattern.Pattern {
	return pattern.Con(g.bools[g.rng.Intn(len(g.bools))])
}

func (g *cellGen) option() pattern.Pattern {
	if g.rng.Intn(2) == 0 {
		return pattern.Con(g.opts[0])
	}

	return pattern.Con(g.opts[1], g.cell(g.boolean))
}
