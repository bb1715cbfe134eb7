// SPDX-License-Identifier: MIT
// Package wgraph provides the immutable, index-based weighted graph consumed by
// the annealing search.
//
// The Graph G = (V,E) is fixed once built:
//
//   - Vertices are dense indices 0..n-1, each carrying a float64 weight.
//   - Edges are dense indices 0..m-1, each an unordered pair {From,To} of distinct
//     vertices plus a float64 weight. Parallel edges are allowed; self-loops are not.
//   - Incident edges are precomputed per vertex in edge-ID order.
//
// Construction:
//
//	b := wgraph.NewBuilder(4)
//	_ = b.SetVertexWeight(0, 1.5)
//	id, _ := b.AddEdge(0, 1, 5)
//	g, _ := b.Build()
//
// or in one shot via New(vertexWeights, edges).
//
// Why index-based?
//
//   - The search keeps three randomized id-sets and a connectivity forest in
//     lockstep; plain ints index every one of them without maps or pointers.
//   - A built Graph is read-only, so any number of independent searches may share it
//     across goroutines without locking.
//
// Interop:
//
//	ToGonum()          : gonum simple.WeightedUndirectedGraph view.
//	SubgraphConnected(): connectivity of a (vertices, edges) subset via gonum topo.
//	ReadEdgeList / WriteEdgeList: line-oriented text format (see edgelist.go).
//
// Errors:
//
//	ErrVertexOutOfRange    – vertex index outside 0..n-1
//	ErrEdgeOutOfRange      – edge index outside 0..m-1
//	ErrLoopNotAllowed      – edge with From == To
//	ErrBadWeight           – NaN or infinite weight
//	ErrNegativeVertexCount – n < 0
//	ErrBuilt               – builder reused after Build
//	ErrSyntax              – malformed edge-list line
package wgraph
