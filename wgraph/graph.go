// SPDX-License-Identifier: MIT
// Package: rmwcs/wgraph
//
// graph.go - Builder lifecycle and read-only queries.
//
// Contract:
//   - Builder validates every mutation eagerly and returns sentinel errors.
//   - Build freezes the graph; the builder rejects further use with ErrBuilt.
//   - Read accessors take indices already validated by the caller (the engine
//     only ever passes ids it obtained from this graph) and therefore panic on
//     out-of-range input like a slice would.

package wgraph

import (
	"fmt"
	"math"
)

// Builder accumulates vertex weights and edges for a Graph.
// A Builder is not safe for concurrent use.
type Builder struct {
	vertexWeights []float64
	edges         []Edge
	built         bool
	err           error // sticky construction error, reported by every call
}

// NewBuilder returns a Builder for n vertices, all with weight 0.
// A negative n is reported by every later call as ErrNegativeVertexCount.
//
// Complexity: O(n).
func NewBuilder(n int) *Builder {
	if n < 0 {
		return &Builder{err: fmt.Errorf("NewBuilder: n=%d: %w", n, ErrNegativeVertexCount)}
	}
	return &Builder{vertexWeights: make([]float64, n)}
}

// SetVertexWeight assigns the weight of vertex v.
//
// Errors: ErrBuilt, ErrVertexOutOfRange, ErrBadWeight.
// Complexity: O(1).
func (b *Builder) SetVertexWeight(v int, w float64) error {
	if b.err != nil {
		return b.err
	}
	if b.built {
		return ErrBuilt
	}
	if v < 0 || v >= len(b.vertexWeights) {
		return fmt.Errorf("SetVertexWeight: v=%d n=%d: %w", v, len(b.vertexWeights), ErrVertexOutOfRange)
	}
	if !finite(w) {
		return fmt.Errorf("SetVertexWeight: v=%d w=%g: %w", v, w, ErrBadWeight)
	}
	b.vertexWeights[v] = w
	return nil
}

// AddEdge appends the undirected edge {v,u} with weight w and returns its ID.
// IDs are assigned densely in call order starting at 0.
//
// Errors: ErrBuilt, ErrVertexOutOfRange, ErrLoopNotAllowed, ErrBadWeight.
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(v, u int, w float64) (int, error) {
	if b.err != nil {
		return -1, b.err
	}
	if b.built {
		return -1, ErrBuilt
	}
	n := len(b.vertexWeights)
	if v < 0 || v >= n || u < 0 || u >= n {
		return -1, fmt.Errorf("AddEdge: {%d,%d} n=%d: %w", v, u, n, ErrVertexOutOfRange)
	}
	if v == u {
		return -1, fmt.Errorf("AddEdge: {%d,%d}: %w", v, u, ErrLoopNotAllowed)
	}
	if !finite(w) {
		return -1, fmt.Errorf("AddEdge: {%d,%d} w=%g: %w", v, u, w, ErrBadWeight)
	}
	id := len(b.edges)
	b.edges = append(b.edges, Edge{ID: id, From: v, To: u, Weight: w})
	return id, nil
}

// Build freezes the accumulated data into a Graph and precomputes adjacency.
//
// Implementation:
//   - Stage 1: Count incident edges per vertex.
//   - Stage 2: Carve all incident lists out of one backing array (2m entries).
//   - Stage 3: Fill lists in ascending edge-ID order.
//
// Errors: ErrNegativeVertexCount from NewBuilder, ErrBuilt on a second call.
// Complexity: O(n + m) time and space.
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.built {
		return nil, ErrBuilt
	}
	b.built = true

	n := len(b.vertexWeights)
	deg := make([]int, n)
	for _, e := range b.edges {
		deg[e.From]++
		deg[e.To]++
	}

	backing := make([]Edge, 2*len(b.edges))
	incident := make([][]Edge, n)
	off := 0
	for v := 0; v < n; v++ {
		incident[v] = backing[off : off : off+deg[v]]
		off += deg[v]
	}
	for _, e := range b.edges {
		incident[e.From] = append(incident[e.From], e)
		incident[e.To] = append(incident[e.To], e)
	}

	return &Graph{
		vertexWeights: b.vertexWeights,
		edges:         b.edges,
		incident:      incident,
	}, nil
}

// New builds a Graph from per-vertex weights and an edge list in one call.
// The vertex count is len(vertexWeights); edge i receives ID i.
//
// Errors: those of SetVertexWeight/AddEdge, wrapped with "New".
func New(vertexWeights []float64, edges []EdgeSpec) (*Graph, error) {
	b := NewBuilder(len(vertexWeights))
	for v, w := range vertexWeights {
		if err := b.SetVertexWeight(v, w); err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
	}
	for _, es := range edges {
		if _, err := b.AddEdge(es.From, es.To, es.Weight); err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
	}
	return b.Build()
}

// VertexCount returns n. Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.vertexWeights) }

// EdgeCount returns m. Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// VertexWeight returns the weight of vertex v. Complexity: O(1).
func (g *Graph) VertexWeight(v int) float64 { return g.vertexWeights[v] }

// Edge returns edge e by value. Complexity: O(1).
func (g *Graph) Edge(e int) Edge { return g.edges[e] }

// Incident returns the edges incident to v in ascending ID order.
// The slice aliases graph storage and must not be modified.
// Complexity: O(1).
func (g *Graph) Incident(v int) []Edge { return g.incident[v] }

// Degree returns the number of edges incident to v. Complexity: O(1).
func (g *Graph) Degree(v int) int { return len(g.incident[v]) }

// HasVertex reports whether v is a valid vertex index.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.vertexWeights) }

// HasEdge reports whether e is a valid edge index.
func (g *Graph) HasEdge(e int) bool { return e >= 0 && e < len(g.edges) }

// Edges returns a copy of the edge catalog in ID order. Complexity: O(m).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// SubgraphWeight sums the weights of the given vertices and edges.
// Indices must be valid; duplicates are counted twice.
// Complexity: O(|vertices| + |edges|).
func (g *Graph) SubgraphWeight(vertices, edges []int) float64 {
	var sum float64
	for _, v := range vertices {
		sum += g.vertexWeights[v]
	}
	for _, e := range edges {
		sum += g.edges[e].Weight
	}
	return sum
}

func finite(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0)
}
