// SPDX-License-Identifier: MIT

package anneal_test

import (
	"context"
	"fmt"

	"github.com/ctlab/rmwcs/anneal"
	"github.com/ctlab/rmwcs/rng"
	"github.com/ctlab/rmwcs/schedule"
	"github.com/ctlab/rmwcs/wgraph"
)

// A path ending in a heavily negative vertex: the best module stops short of it.
func ExampleEngine_Run() {
	g, err := wgraph.New([]float64{3, 1, 2, -20}, []wgraph.EdgeSpec{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 1},
	})
	if err != nil {
		panic(err)
	}
	en, err := anneal.New(g, rng.FromSeed(7))
	if err != nil {
		panic(err)
	}
	best, err := en.Run(context.Background(), &schedule.Exponential{Start: 2, End: 0.01, Steps: 5000})
	if err != nil {
		panic(err)
	}
	fmt.Println(best.Vertices, best.Edges, best.Score)
	// Output: [0 1 2] [0 1] 8
}
