// SPDX-License-Identifier: MIT
// Package pattern: Signature, a registry of algebraic types.
//
// A Signature maps constructor names to fully resolved Constructors (arity
// and span) and remembers the declaration order of every type's variants.
// It is what a front end would hand over after type checking; here it
// drives Parse and lets diagnostics name a missing constructor.

package pattern

import "fmt"

// Variant declares one constructor of a type: its name and arity.
// Span is derived from the number of variants declared together.
type Variant struct {
	Name  string
	Arity int
}

// Signature holds declared types. The zero value is not usable; call NewSignature.
// A Signature is not safe for concurrent Declare calls; lookups on a fully
// declared Signature are read-only.
type Signature struct {
	types map[string][]Constructor // type name -> variants in declaration order
	owner map[string]string        // constructor name -> type name
	order []string                 // type names in declaration order
}

// NewSignature returns an empty Signature.
func NewSignature() *Signature {
	return &Signature{
		types: make(map[string][]Constructor),
		owner: make(map[string]string),
	}
}

// Declare adds type typeName with the given variants. Span of every
// resulting constructor is len(variants).
//
// Errors:
//   - ErrEmptyName             empty type or variant name
//   - ErrBadName               variant name is not an identifier
//   - ErrBadSpan               no variants
//   - ErrBadArity              negative arity
//   - ErrConstructorConflict   type already declared, or a variant name
//     already used by this or another type
func (s *Signature) Declare(typeName string, variants ...Variant) error {
	// 1. Validate the type header
	if typeName == "" {
		return fmt.Errorf("Declare: %w", ErrEmptyName)
	}
	if len(variants) == 0 {
		return fmt.Errorf("Declare %s: %w", typeName, ErrBadSpan)
	}
	if _, dup := s.types[typeName]; dup {
		return fmt.Errorf("Declare: %w: type %s already declared", ErrConstructorConflict, typeName)
	}

	// 2. Resolve every variant before touching the registry
	cons := make([]Constructor, 0, len(variants))
	local := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		c := Constructor{Name: v.Name, Arity: v.Arity, Span: len(variants)}
		if err := ValidateConstructor(c); err != nil {
			return fmt.Errorf("Declare %s: %w", typeName, err)
		}
		if _, dup := local[v.Name]; dup {
			return fmt.Errorf("Declare %s: %w: variant %s repeated", typeName, ErrConstructorConflict, v.Name)
		}
		if other, taken := s.owner[v.Name]; taken {
			return fmt.Errorf("Declare %s: %w: variant %s already belongs to %s",
				typeName, ErrConstructorConflict, v.Name, other)
		}
		local[v.Name] = struct{}{}
		cons = append(cons, c)
	}

	// 3. Commit
	s.types[typeName] = cons
	s.order = append(s.order, typeName)
	for _, c := range cons {
		s.owner[c.Name] = typeName
	}

	return nil
}

// MustDeclare is Declare for fixtures and examples; it panics on error.
func (s *Signature) MustDeclare(typeName string, variants ...Variant) *Signature {
	if err := s.Declare(typeName, variants...); err != nil {
		panic(err)
	}

	return s
}

// Lookup resolves a constructor by name.
func (s *Signature) Lookup(name string) (Constructor, bool) {
	t, ok := s.owner[name]
	if !ok {
		return Constructor{}, false
	}
	for _, c := range s.types[t] {
		if c.Name == name {
			return c, true
		}
	}

	return Constructor{}, false
}

// Type returns a copy of the variants of typeName in declaration order.
func (s *Signature) Type(typeName string) ([]Constructor, error) {
	cons, ok := s.types[typeName]
	if !ok {
		return nil, fmt.Errorf("Type %s: %w", typeName, ErrUnknownType)
	}
	out := make([]Constructor, len(cons))
	copy(out, cons)

	return out, nil
}

// Types returns the declared type names in declaration order.
func (s *Signature) Types() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)

	return out
}

// TypeOf returns the name of the type declaring c. It reports false when c
// is unknown or differs from the declared constructor of the same name.
func (s *Signature) TypeOf(c Constructor) (string, bool) {
	known, ok := s.Lookup(c.Name)
	if !ok || known != c {
		return "", false
	}

	return s.owner[c.Name], true
}

// Siblings returns every variant of the type declaring c, c included, in
// declaration order. It reports false when TypeOf(c) does.
func (s *Signature) Siblings(c Constructor) ([]Constructor, bool) {
	t, ok := s.TypeOf(c)
	if !ok {
		return nil, false
	}
	out := make([]Constructor, len(s.types[t]))
	copy(out, s.types[t])

	return out, true
}

// Missing returns the first variant, in declaration order, of the type of
// cons[0] that does not occur in cons. It reports false when cons is empty,
// its type is unknown, or cons already covers the type.
func (s *Signature) Missing(cons []Constructor) (Constructor, bool) {
	if len(cons) == 0 {
		return Constructor{}, false
	}
	t, ok := s.TypeOf(cons[0])
	if !ok {
		return Constructor{}, false
	}
	for _, c := range s.types[t] {
		if !containsConstructor(cons, c) {
			return c, true
		}
	}

	return Constructor{}, false
}
