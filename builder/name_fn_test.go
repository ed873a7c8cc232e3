package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/patmatch/builder"
)

// TestNameFns verifies each NameFn for outputs on valid inputs and panics
// on invalid ones.
func TestNameFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.NameFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"PrefixNames_zero", builder.PrefixNames("C"), 0, "C0", false},
		{"PrefixNames_multi", builder.PrefixNames("Tag"), 12, "Tag12", false},
		{"PrefixNames_neg", builder.PrefixNames("C"), -1, "", true},

		{"SymbolNames_min", builder.SymbolNames, 0, "A", false},
		{"SymbolNames_max", builder.SymbolNames, 25, "Z", false},
		{"SymbolNames_neg", builder.SymbolNames, -1, "", true},
		{"SymbolNames_tooHigh", builder.SymbolNames, 26, "", true},

		{"ExcelColumnNames_zero", builder.ExcelColumnNames, 0, "A", false},
		{"ExcelColumnNames_startDouble", builder.ExcelColumnNames, 26, "AA", false},
		{"ExcelColumnNames_ZZ", builder.ExcelColumnNames, 701, "ZZ", false},
		{"ExcelColumnNames_AAA", builder.ExcelColumnNames, 702, "AAA", false},
		{"ExcelColumnNames_neg", builder.ExcelColumnNames, -1, "", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

// TestOptionPanics verifies that option constructors reject meaningless values.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.PrefixNames("") })
	assert.Panics(t, func() { builder.WithNameScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithOpenTypes(-1) })
	assert.Panics(t, func() { builder.WithWildcardProbability(1.5) })
	assert.NotPanics(t, func() { builder.WithWildcardProbability(0) })
}
