// SPDX-License-Identifier: MIT
// Package: rmwcs/anneal
//
// module.go - the frozen Module snapshot and its independent validation.

package anneal

import (
	"fmt"
	"math"
	"slices"

	"github.com/ctlab/rmwcs/wgraph"
)

// scoreTolerance is the relative tolerance of Module.Validate's score check.
const scoreTolerance = 1e-9

// Module is a connected subgraph with its score. Vertex and edge IDs are
// sorted ascending. The zero Module is the empty module.
type Module struct {
	Vertices []int   `json:"vertices" yaml:"vertices"`
	Edges    []int   `json:"edges" yaml:"edges"`
	Score    float64 `json:"score" yaml:"score"`
}

// Size returns the vertex count.
func (m Module) Size() int { return len(m.Vertices) }

// Empty reports whether m has no vertices.
func (m Module) Empty() bool { return len(m.Vertices) == 0 }

// Validate checks m against g from scratch, without any annealing state:
// every edge lies inside the vertex set, the module is connected, and Score
// matches the summed weights.
//
// Errors: wgraph.ErrVertexOutOfRange, wgraph.ErrEdgeOutOfRange,
// ErrModuleEdgeOutside, ErrModuleDisconnected, ErrModuleScore.
// Complexity: O(|V| + |E|) plus a gonum connected-components pass.
func (m Module) Validate(g *wgraph.Graph) error {
	in := make(map[int]bool, len(m.Vertices))
	for _, v := range m.Vertices {
		if !g.HasVertex(v) {
			return fmt.Errorf("Validate: v=%d: %w", v, wgraph.ErrVertexOutOfRange)
		}
		in[v] = true
	}
	for _, id := range m.Edges {
		if !g.HasEdge(id) {
			return fmt.Errorf("Validate: e=%d: %w", id, wgraph.ErrEdgeOutOfRange)
		}
		if e := g.Edge(id); !in[e.From] || !in[e.To] {
			return fmt.Errorf("Validate: e=%d {%d,%d}: %w", id, e.From, e.To, ErrModuleEdgeOutside)
		}
	}
	if !g.SubgraphConnected(m.Vertices, m.Edges) {
		return fmt.Errorf("Validate: %d vertices, %d edges: %w", len(m.Vertices), len(m.Edges), ErrModuleDisconnected)
	}
	want := g.SubgraphWeight(m.Vertices, m.Edges)
	if !closeEnough(m.Score, want) {
		return fmt.Errorf("Validate: score=%g recomputed=%g: %w", m.Score, want, ErrModuleScore)
	}
	return nil
}

func closeEnough(a, b float64) bool {
	d := math.Abs(a - b)
	return d <= scoreTolerance || d <= scoreTolerance*math.Max(math.Abs(a), math.Abs(b))
}

func (m Module) clone() Module {
	return Module{
		Vertices: slices.Clone(m.Vertices),
		Edges:    slices.Clone(m.Edges),
		Score:    m.Score,
	}
}

func (en *Engine) snapshot() Module {
	vs := en.vertices.Members()
	es := en.edges.Members()
	slices.Sort(vs)
	slices.Sort(es)
	return Module{Vertices: vs, Edges: es, Score: en.score}
}
