// SPDX-License-Identifier: MIT
package decision_test

import (
	"fmt"

	"github.com/katalvlaran/patmatch/decision"
	"github.com/katalvlaran/patmatch/matrix"
	"github.com/katalvlaran/patmatch/pattern"
)

// ExampleCompile compiles a match over a pair of booleans (True and False)
// with no clause for (False, False), which reaches a Fail leaf.
func ExampleCompile() {
	t := pattern.Constructor{Name: "True", Arity: 0, Span: 2}
	w := pattern.Wild()

	m := matrix.MustNew(
		matrix.NewRow(1, pattern.Con(t), w),
		matrix.NewRow(2, w, pattern.Con(t)),
	)
	tree, err := decision.Compile(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(decision.RenderIndent(tree))

	paths, _ := decision.FailPaths(tree)
	fmt.Println("missing:", paths)
	// Output:
	// Switch
	//   True/0 => Leaf(1)
	//   _ => Switch
	//     True/0 => Leaf(2)
	//     _ => Fail
	// missing: [_ > _]
}
