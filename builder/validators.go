// Package builder provides validation helpers to enforce
// parameter contracts in Fixture factories.
package builder

import "fmt"

// validateMin ensures got ≥ min.
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, fmt.Errorf("%w: parameter must be ≥ %d, got %d", ErrTooSmall, min, got))
	}

	return nil
}

// validateMax ensures got ≤ max.
// Complexity: O(1) time and space.
func validateMax(method string, got, max int) error {
	if got > max {
		return builderErrorf(method, fmt.Errorf("%w: parameter must be ≤ %d, got %d", ErrTooLarge, max, got))
	}

	return nil
}
