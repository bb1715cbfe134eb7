// SPDX-License-Identifier: MIT

package wgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctlab/rmwcs/wgraph"
)

func TestToGonum_MirrorsGraph(t *testing.T) {
	g := buildPath4(t)
	gg := g.ToGonum()

	assert.Equal(t, 4, gg.Nodes().Len())
	w, ok := gg.Weight(1, 2)
	require.True(t, ok)
	assert.Equal(t, 5.0, w)
	assert.False(t, gg.HasEdgeBetween(0, 3))
}

func TestSubgraphConnected(t *testing.T) {
	g := buildPath4(t)

	tests := []struct {
		name     string
		vertices []int
		edges    []int
		want     bool
	}{
		{name: "empty", want: true},
		{name: "single vertex", vertices: []int{2}, want: true},
		{name: "path prefix", vertices: []int{0, 1, 2}, edges: []int{0, 1}, want: true},
		{name: "vertices without edges", vertices: []int{0, 1}, want: false},
		{name: "two pieces", vertices: []int{0, 1, 2, 3}, edges: []int{0, 2}, want: false},
		{name: "edge leaves subset", vertices: []int{0}, edges: []int{0}, want: false},
		{name: "edges without vertices", edges: []int{0}, want: false},
		{name: "bad vertex", vertices: []int{9}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.SubgraphConnected(tc.vertices, tc.edges))
		})
	}
}

func TestSubgraph_Errors(t *testing.T) {
	g := buildPath4(t)

	_, err := g.Subgraph([]int{0}, []int{7})
	assert.ErrorIs(t, err, wgraph.ErrEdgeOutOfRange)

	_, err = g.Subgraph([]int{0}, []int{1})
	assert.ErrorIs(t, err, wgraph.ErrVertexOutOfRange)
}
