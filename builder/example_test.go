// SPDX-License-Identifier: MIT
package builder_test

import (
	"fmt"

	"github.com/katalvlaran/patmatch/builder"
	"github.com/katalvlaran/patmatch/pattern"
	"github.com/katalvlaran/patmatch/usefulness"
)

// ExampleBuildMatrix builds an enum match, then opens the enum by one
// variant so the same clauses stop being exhaustive.
func ExampleBuildMatrix() {
	_, m := builder.MustBuildMatrix(nil, builder.Enum(3))
	fmt.Print(m)

	sig, open := builder.MustBuildMatrix(
		[]builder.BuilderOption{builder.WithOpenTypes(1)},
		builder.Enum(3),
	)
	rep, err := usefulness.Analyze(open, usefulness.WithSignature(sig))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("exhaustive:", rep.Exhaustive)
	fmt.Println("missing:", pattern.Format(rep.Missing))
	// Output:
	// ( C0 -> 1 )
	// ( C1 -> 2 )
	// ( C2 -> 3 )
	// exhaustive: false
	// missing: EnumExtra0
}
