package core_test

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

// ExampleBuild shows the symmetric neighbor lists produced from an edge list.
func ExampleBuild() {
	a := core.Build([]core.Edge{{1, 2}, {2, 3}})
	for _, v := range a.Vertices() {
		fmt.Println(v, a.Neighbors(v))
	}
	// Output:
	// 1 [2]
	// 2 [1 3]
	// 3 [2]
}

// ExampleBuildWeighted derives unit weights from an unweighted arena.
func ExampleBuildWeighted() {
	w := core.BuildWeighted(core.Build([]core.Edge{{1, 2}, {1, 3}}))
	fmt.Println(w.Neighbors(1))
	// Output: [{2 1} {3 1}]
}
