// SPDX-License-Identifier: MIT
// Package loader: resolving a File into a Signature and a Matrix, and back.

package loader

import (
	"fmt"

	"github.com/katalvlaran/patmatch/matrix"
	"github.com/katalvlaran/patmatch/pattern"
)

// Build declares doc's types and parses its clauses.
//
// Errors: ErrNoClauses, ErrBadClause (wrapping the pattern error), and the
// Signature.Declare or matrix.New errors for bad declarations or ragged rows.
func (doc *File) Build() (*pattern.Signature, *matrix.Matrix, error) {
	if len(doc.Clauses) == 0 {
		return nil, nil, fmt.Errorf("Build: %w", ErrNoClauses)
	}

	// 1. Declarations, in file order
	sig := pattern.NewSignature()
	for _, td := range doc.Types {
		vs := make([]pattern.Variant, len(td.Variants))
		for i, v := range td.Variants {
			vs[i] = pattern.Variant{Name: v.Name, Arity: v.Arity}
		}
		if err := sig.Declare(td.Name, vs...); err != nil {
			return nil, nil, fmt.Errorf("Build: %w", err)
		}
	}

	// 2. Clauses, one pattern per column
	rows := make([]matrix.Row, len(doc.Clauses))
	for i, cl := range doc.Clauses {
		ps := make([]pattern.Pattern, len(cl.Patterns))
		for j, src := range cl.Patterns {
			p, err := pattern.Parse(src, sig)
			if err != nil {
				return nil, nil, fmt.Errorf("Build: %w: clause %d column %d: %w", ErrBadClause, i, j, err)
			}
			ps[j] = p
		}
		action := i + 1
		if cl.Action != nil {
			action = *cl.Action
		}
		rows[i] = matrix.NewRow(action, ps...)
	}

	// 3. Shape and consistency
	m, err := matrix.New(rows...)
	if err != nil {
		return nil, nil, fmt.Errorf("Build: %w", err)
	}

	return sig, m, nil
}

// FromMatrix is the inverse of Build: every type of sig, in declaration
// order, and every row of m with its action made explicit.
func FromMatrix(sig *pattern.Signature, m *matrix.Matrix) (*File, error) {
	if err := matrix.Validate(m); err != nil {
		return nil, fmt.Errorf("FromMatrix: %w", err)
	}
	doc := &File{}
	if sig != nil {
		for _, name := range sig.Types() {
			cons, err := sig.Type(name)
			if err != nil {
				return nil, fmt.Errorf("FromMatrix: %w", err)
			}
			td := TypeDecl{Name: name, Variants: make([]VariantDecl, len(cons))}
			for i, c := range cons {
				td.Variants[i] = VariantDecl{Name: c.Name, Arity: c.Arity}
			}
			doc.Types = append(doc.Types, td)
		}
	}
	for _, r := range m.Rows() {
		cl := Clause{Patterns: make([]string, r.Len())}
		for j := 0; j < r.Len(); j++ {
			cl.Patterns[j] = r.Pattern(j).String()
		}
		action := r.Action()
		cl.Action = &action
		doc.Clauses = append(doc.Clauses, cl)
	}

	return doc, nil
}
