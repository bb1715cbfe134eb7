// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/ctlab/rmwcs/builder"
)

// A 2×2 grid next to a triangle, with negative vertices and heavy edges.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{
			builder.WithVertexWeightFn(builder.ConstWeight(-1)),
			builder.WithWeightFn(builder.ConstWeight(2.5)),
		},
		builder.Grid(2, 2),
		builder.Cycle(3),
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(g.VertexCount(), g.EdgeCount(), g.Edge(4))
	// Output: 7 7 {4 4 5 2.5}
}
