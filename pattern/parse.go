// SPDX-License-Identifier: MIT
// Package pattern: parser for the rendered pattern syntax.
//
// Grammar (whitespace is insignificant):
//
//	seq     := alt*
//	alt     := primary ( '|' primary )*          left-nested Or
//	primary := '_'
//	         | Name [ '(' alt ( ',' alt )* ')' ]
//	         | '(' alt ')'
//
// Names are resolved through a Signature, which supplies arity and span.

package pattern

import (
	"fmt"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokName
	tokWild
	tokLParen
	tokRParen
	tokComma
	tokBar
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// lexer splits pattern text into tokens.
type lexer struct {
	src []rune
	pos int
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) && unicode.IsSpace(l.src[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, pos: l.pos}, nil
	}

	start := l.pos
	c := l.src[l.pos]
	switch {
	case c == '(':
		l.pos++
		return token{kind: tokLParen, text: "(", pos: start}, nil
	case c == ')':
		l.pos++
		return token{kind: tokRParen, text: ")", pos: start}, nil
	case c == ',':
		l.pos++
		return token{kind: tokComma, text: ",", pos: start}, nil
	case c == '|':
		l.pos++
		return token{kind: tokBar, text: "|", pos: start}, nil
	case c == '_' && !l.identAt(l.pos+1):
		l.pos++
		return token{kind: tokWild, text: "_", pos: start}, nil
	case unicode.IsLetter(c):
		for l.pos < len(l.src) && l.identAt(l.pos) {
			l.pos++
		}
		return token{kind: tokName, text: string(l.src[start:l.pos]), pos: start}, nil
	}

	return token{}, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, c, start)
}

func (l *lexer) identAt(i int) bool {
	return i < len(l.src) && isIdentRune(l.src[i])
}

func isIdentRune(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '\''
}

// isIdent reports whether name lexes as a single constructor name.
func isIdent(name string) bool {
	for i, c := range name {
		if i == 0 && !unicode.IsLetter(c) {
			return false
		}
		if !isIdentRune(c) {
			return false
		}
	}

	return name != ""
}

// parser is a one-token-lookahead recursive descent parser.
type parser struct {
	lex *lexer
	sig *Signature
	tok token
}

func newParser(src string, sig *Signature) (*parser, error) {
	p := &parser{lex: &lexer{src: []rune(src)}, sig: sig}
	if err := p.advance(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t

	return nil
}

func (p *parser) expect(k tokenKind, what string) error {
	if p.tok.kind != k {
		return fmt.Errorf("%w: expected %s at offset %d", ErrSyntax, what, p.tok.pos)
	}

	return p.advance()
}

func (p *parser) alt() (Pattern, error) {
	acc, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokBar {
		if err = p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.primary()
		if err != nil {
			return nil, err
		}
		acc = Or{Left: acc, Right: rhs}
	}

	return acc, nil
}

func (p *parser) primary() (Pattern, error) {
	switch p.tok.kind {
	case tokWild:
		return Wildcard{}, p.advance()

	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.alt()
		if err != nil {
			return nil, err
		}
		if err = p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return inner, nil

	case tokName:
		name := p.tok.text
		c, ok := p.sig.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownConstructor, name)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		var args []Pattern
		// arity-0 names never take a parenthesized list, so in a sequence
		// `Nil  (A | B)` the parenthesis starts the next column
		if c.Arity > 0 && p.tok.kind == tokLParen {
			if err := p.advance(); err != nil {
				return nil, err
			}
			for {
				a, err := p.alt()
				if err != nil {
					return nil, err
				}
				args = append(args, a)
				if p.tok.kind != tokComma {
					break
				}
				if err = p.advance(); err != nil {
					return nil, err
				}
			}
			if err := p.expect(tokRParen, "')'"); err != nil {
				return nil, err
			}
		}
		if len(args) != c.Arity {
			return nil, fmt.Errorf("%w: %s expects %d, got %d", ErrArgCount, name, c.Arity, len(args))
		}
		return Constructed{Con: c, args: args}, nil
	}

	return nil, fmt.Errorf("%w: expected pattern at offset %d", ErrSyntax, p.tok.pos)
}

// Parse reads exactly one pattern from src.
func Parse(src string, sig *Signature) (Pattern, error) {
	if sig == nil {
		return nil, fmt.Errorf("Parse: %w: no signature", ErrUnknownConstructor)
	}
	p, err := newParser(src, sig)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	pat, err := p.alt()
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	if p.tok.kind != tokEOF {
		return nil, fmt.Errorf("Parse: %w: trailing input at offset %d", ErrSyntax, p.tok.pos)
	}

	return pat, nil
}

// ParseSeq reads a whitespace-separated sequence of patterns, the column
// layout produced by Format. Empty input yields an empty sequence.
func ParseSeq(src string, sig *Signature) ([]Pattern, error) {
	if sig == nil {
		return nil, fmt.Errorf("ParseSeq: %w: no signature", ErrUnknownConstructor)
	}
	p, err := newParser(src, sig)
	if err != nil {
		return nil, fmt.Errorf("ParseSeq: %w", err)
	}
	out := []Pattern{}
	for p.tok.kind != tokEOF {
		pat, err := p.alt()
		if err != nil {
			return nil, fmt.Errorf("ParseSeq: %w", err)
		}
		out = append(out, pat)
	}

	return out, nil
}
