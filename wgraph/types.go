// SPDX-License-Identifier: MIT
// Package: rmwcs/wgraph
//
// types.go - Edge, EdgeSpec, Graph and sentinel errors.

package wgraph

import "errors"

// Sentinel errors for graph construction and parsing.
var (
	// ErrVertexOutOfRange indicates a vertex index outside 0..n-1.
	ErrVertexOutOfRange = errors.New("wgraph: vertex out of range")

	// ErrEdgeOutOfRange indicates an edge index outside 0..m-1.
	ErrEdgeOutOfRange = errors.New("wgraph: edge out of range")

	// ErrLoopNotAllowed indicates an edge whose endpoints coincide.
	ErrLoopNotAllowed = errors.New("wgraph: self-loop not allowed")

	// ErrBadWeight indicates a NaN or infinite vertex/edge weight.
	ErrBadWeight = errors.New("wgraph: weight must be finite")

	// ErrNegativeVertexCount indicates a builder requested with n < 0.
	ErrNegativeVertexCount = errors.New("wgraph: negative vertex count")

	// ErrBuilt indicates a Builder was used after Build returned.
	ErrBuilt = errors.New("wgraph: builder already built")

	// ErrSyntax indicates a malformed line in an edge-list document.
	ErrSyntax = errors.New("wgraph: edge-list syntax error")
)

// Edge is an undirected weighted edge of a Graph.
//
// From/To keep insertion order only for stable output; the edge itself has no
// orientation.
type Edge struct {
	// ID is the dense edge index in 0..m-1.
	ID int `json:"id" yaml:"id"`

	// From is the first endpoint as passed to AddEdge.
	From int `json:"from" yaml:"from"`

	// To is the second endpoint as passed to AddEdge.
	To int `json:"to" yaml:"to"`

	// Weight is the edge's contribution to a module score.
	Weight float64 `json:"weight" yaml:"weight"`
}

// Opposite returns the endpoint of e that is not v.
// v must be one of e's endpoints; otherwise From is returned.
func (e Edge) Opposite(v int) int {
	if v == e.From {
		return e.To
	}
	return e.From
}

// EdgeSpec describes an edge to be created by New.
type EdgeSpec struct {
	From   int
	To     int
	Weight float64
}

// Graph is an immutable vertex- and edge-weighted undirected graph.
//
// All fields are written once by Builder.Build and never mutated afterwards, so a
// *Graph may be shared freely between goroutines.
type Graph struct {
	vertexWeights []float64 // v -> weight
	edges         []Edge    // e -> edge
	incident      [][]Edge  // v -> incident edges, ascending Edge.ID
}
