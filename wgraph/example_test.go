// SPDX-License-Identifier: MIT

package wgraph_test

import (
	"fmt"

	"github.com/ctlab/rmwcs/wgraph"
)

// ExampleBuilder builds a weighted triangle and inspects vertex 0's edges.
func ExampleBuilder() {
	b := wgraph.NewBuilder(3)
	_ = b.SetVertexWeight(0, 2)
	_, _ = b.AddEdge(0, 1, 1.5)
	_, _ = b.AddEdge(1, 2, -1)
	_, _ = b.AddEdge(2, 0, 4)

	g, err := b.Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range g.Incident(0) {
		fmt.Printf("e%d -> %d (w=%g)\n", e.ID, e.Opposite(0), e.Weight)
	}
	// Output:
	// e0 -> 1 (w=1.5)
	// e2 -> 2 (w=4)
}
