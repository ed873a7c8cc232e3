// Package builder provides internal helper functions and types
// for naming enum variants in fixtures.
package builder

import (
	"fmt"
	"strconv"
)

// NameFn generates a variant name from its zero-based index.
// It must be pure and return a valid identifier (a letter first), so that
// the rendered table parses back.
type NameFn func(idx int) string

// PrefixNames returns prefix + decimal index, e.g. "C0", "C1", ...
// Panics if prefix is empty (the name would start with a digit) or idx < 0.
func PrefixNames(prefix string) NameFn {
	if prefix == "" {
		panic("builder: PrefixNames(\"\")")
	}
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixNames: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// SymbolNames returns the uppercase Latin letter for idx in [0..25].
// Panics outside that range.
func SymbolNames(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolNames: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnNames returns the "Excel-style" column name for idx, e.g.
// 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
// Complexity: O(log₂₆ idx).
func ExcelColumnNames(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnNames: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, 'A'+rune(i%26))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
