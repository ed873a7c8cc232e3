// SPDX-License-Identifier: MIT
package usefulness_test

import (
	"fmt"

	"github.com/katalvlaran/patmatch/matrix"
	"github.com/katalvlaran/patmatch/pattern"
	"github.com/katalvlaran/patmatch/usefulness"
)

// ExampleAnalyze reports a redundant clause and the case left uncovered.
func ExampleAnalyze() {
	sig := pattern.NewSignature().
		MustDeclare("Option", pattern.Variant{Name: "None"}, pattern.Variant{Name: "Some", Arity: 1}).
		MustDeclare("Bool", pattern.Variant{Name: "True"}, pattern.Variant{Name: "False"})

	m, err := matrix.Parse("( Some(True) -> 1 )\n( Some(True) -> 2 )\n( None -> 3 )", sig)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	rep, err := usefulness.Analyze(m, usefulness.WithSignature(sig))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("unreachable rows:", rep.Unreachable)
	fmt.Println("exhaustive:", rep.Exhaustive)
	fmt.Println("missing:", pattern.Format(rep.Missing))
	// Output:
	// unreachable rows: [1]
	// exhaustive: false
	// missing: Some(False)
}
