// SPDX-License-Identifier: MIT
// Package: rmwcs/wgraph
//
// gonum.go - views of a Graph (or a subset of it) as gonum graphs.
//
// These helpers are deliberately independent of the incremental machinery in
// dynconn: module validation and tests use them as a from-scratch reference.

package wgraph

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ToGonum returns the whole graph as a gonum weighted undirected graph.
// Node IDs equal vertex indices. Parallel edges collapse into one gonum edge
// carrying the weight of the last one in ID order (gonum simple graphs are not
// multigraphs).
//
// Complexity: O(n + m).
func (g *Graph) ToGonum() *simple.WeightedUndirectedGraph {
	out := simple.NewWeightedUndirectedGraph(0, 0)
	for v := range g.vertexWeights {
		out.AddNode(simple.Node(int64(v)))
	}
	for _, e := range g.edges {
		out.SetWeightedEdge(out.NewWeightedEdge(simple.Node(int64(e.From)), simple.Node(int64(e.To)), e.Weight))
	}
	return out
}

// Subgraph returns the subgraph made of the given vertices and edges as a gonum
// undirected graph. Every edge endpoint must be listed in vertices.
//
// Errors: ErrVertexOutOfRange, ErrEdgeOutOfRange, and ErrVertexOutOfRange wrapped
// with "endpoint not in subgraph" for an edge leaving the vertex set.
// Complexity: O(|vertices| + |edges|).
func (g *Graph) Subgraph(vertices, edges []int) (*simple.UndirectedGraph, error) {
	out := simple.NewUndirectedGraph()
	for _, v := range vertices {
		if !g.HasVertex(v) {
			return nil, fmt.Errorf("Subgraph: v=%d: %w", v, ErrVertexOutOfRange)
		}
		if out.Node(int64(v)) == nil {
			out.AddNode(simple.Node(int64(v)))
		}
	}
	for _, id := range edges {
		if !g.HasEdge(id) {
			return nil, fmt.Errorf("Subgraph: e=%d: %w", id, ErrEdgeOutOfRange)
		}
		e := g.edges[id]
		if out.Node(int64(e.From)) == nil || out.Node(int64(e.To)) == nil {
			return nil, fmt.Errorf("Subgraph: e=%d {%d,%d} endpoint not in subgraph: %w",
				id, e.From, e.To, ErrVertexOutOfRange)
		}
		out.SetEdge(out.NewEdge(simple.Node(int64(e.From)), simple.Node(int64(e.To))))
	}
	return out, nil
}

// SubgraphConnected reports whether the subgraph (vertices, edges) is connected.
// The empty subgraph counts as connected; an invalid subset is not.
//
// Complexity: O(|vertices| + |edges|).
func (g *Graph) SubgraphConnected(vertices, edges []int) bool {
	if len(vertices) == 0 {
		return len(edges) == 0
	}
	sub, err := g.Subgraph(vertices, edges)
	if err != nil {
		return false
	}
	return len(topo.ConnectedComponents(sub)) == 1
}
