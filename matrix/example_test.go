// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/patmatch/matrix"
	"github.com/katalvlaran/patmatch/pattern"
)

// ExampleSpecialize narrows the List/Split table to rows consistent with
// "column 0 is a Split", unwrapping Split's two sub-patterns into columns.
func ExampleSpecialize() {
	list := pattern.Constructor{Name: "List", Arity: 0, Span: 2}
	split := pattern.Constructor{Name: "Split", Arity: 2, Span: 2}
	w := pattern.Wild()

	m := matrix.MustNew(
		matrix.NewRow(1, pattern.Con(list), w),
		matrix.NewRow(2, w, pattern.Con(list)),
		matrix.NewRow(3, pattern.Con(split, w, w), pattern.Con(split, w, w)),
	)
	fmt.Print(m)
	fmt.Println("--")

	s, err := matrix.Specialize(m, split)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(s)
	// Output:
	// ( List  _ -> 1 )
	// ( _  List -> 2 )
	// ( Split(_, _)  Split(_, _) -> 3 )
	// --
	// ( _  _  List -> 2 )
	// ( _  _  Split(_, _) -> 3 )
}

// ExampleDefault keeps only the rows that do not discriminate on column 0.
func ExampleDefault() {
	list := pattern.Constructor{Name: "List", Arity: 0, Span: 2}
	w := pattern.Wild()

	m := matrix.MustNew(
		matrix.NewRow(1, pattern.Con(list), w),
		matrix.NewRow(2, w, pattern.Con(list)),
		matrix.NewRow(3, w, w),
	)
	d, err := matrix.Default(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(d)
	// Output:
	// ( List -> 2 )
	// ( _ -> 3 )
}
