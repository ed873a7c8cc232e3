// SPDX-License-Identifier: MIT
// Package pattern: centralized validation.
//
// Validators return sentinel errors wrapped with the validator tag and the
// offending constructor, so callers can match with errors.Is and still show
// a useful message. Validation is iterative; deep patterns do not grow the
// native stack.

package pattern

import "fmt"

// validatorErrorf tags err with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateConstructor checks a single constructor in isolation.
// Complexity: O(1).
func ValidateConstructor(c Constructor) error {
	if c.Name == "" {
		return validatorErrorf("ValidateConstructor", ErrEmptyName)
	}
	if !isIdent(c.Name) {
		return validatorErrorf("ValidateConstructor", fmt.Errorf("%w: %q", ErrBadName, c.Name))
	}
	if c.Arity < 0 {
		return validatorErrorf("ValidateConstructor", fmt.Errorf("%w: %s has arity %d", ErrBadArity, c.Name, c.Arity))
	}
	if c.Span < 1 {
		return validatorErrorf("ValidateConstructor", fmt.Errorf("%w: %s has span %d", ErrBadSpan, c.Name, c.Span))
	}

	return nil
}

// Validate checks that p is well formed: no nil nodes, every constructor
// valid, every constructed pattern carrying exactly Arity sub-patterns, and
// no constructor name reused with a different arity or span.
// Complexity: O(size of p).
func Validate(p Pattern) error {
	return ValidateAll([]Pattern{p})
}

// ValidateAll validates every pattern of ps and additionally requires that
// a constructor name means the same Constructor across all of them.
// Complexity: O(total size).
func ValidateAll(ps []Pattern) error {
	seen := make(map[string]Constructor)
	stack := make([]Pattern, 0, len(ps))
	// push in reverse so errors are reported for the leftmost offender
	for i := len(ps) - 1; i >= 0; i-- {
		stack = append(stack, ps[i])
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch x := top.(type) {
		case Wildcard:
			// always well formed
		case Constructed:
			if err := ValidateConstructor(x.Con); err != nil {
				return validatorErrorf("Validate", err)
			}
			if len(x.args) != x.Con.Arity {
				return validatorErrorf("Validate", fmt.Errorf("%w: %s expects %d, got %d",
					ErrArgCount, x.Con.Name, x.Con.Arity, len(x.args)))
			}
			if prev, ok := seen[x.Con.Name]; ok && prev != x.Con {
				return validatorErrorf("Validate", fmt.Errorf("%w: %s declared as arity %d span %d and arity %d span %d",
					ErrConstructorConflict, x.Con.Name, prev.Arity, prev.Span, x.Con.Arity, x.Con.Span))
			}
			seen[x.Con.Name] = x.Con
			for i := len(x.args) - 1; i >= 0; i-- {
				stack = append(stack, x.args[i])
			}
		case Or:
			stack = append(stack, x.Right, x.Left)
		default:
			return validatorErrorf("Validate", ErrNilPattern)
		}
	}

	return nil
}
