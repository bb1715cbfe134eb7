// SPDX-License-Identifier: MIT

package anneal

import (
	"fmt"
	"math"
	"slices"
)

// State is a comparable copy of everything a step may touch.
type State struct {
	Vertices []int
	Edges    []int
	Boundary []int
	Degree   []int
	Score    float64
	Forest   int
}

// StateOf captures en's full module state.
func StateOf(en *Engine) State {
	b := en.boundary.Members()
	slices.Sort(b)
	cur := en.snapshot()
	return State{
		Vertices: cur.Vertices,
		Edges:    cur.Edges,
		Boundary: b,
		Degree:   slices.Clone(en.degree),
		Score:    en.score,
		Forest:   en.forest.EdgeCount(),
	}
}

// CheckInvariants recomputes every engine invariant from scratch.
func CheckInvariants(en *Engine) error {
	g := en.g
	cur := en.snapshot()
	if want := g.SubgraphWeight(cur.Vertices, cur.Edges); !closeEnough(en.score, want) {
		return fmt.Errorf("score %g, recomputed %g", en.score, want)
	}
	if !g.SubgraphConnected(cur.Vertices, cur.Edges) {
		return fmt.Errorf("module %v / %v not connected", cur.Vertices, cur.Edges)
	}

	deg := make([]int, g.VertexCount())
	for id := 0; id < g.EdgeCount(); id++ {
		e := g.Edge(id)
		inE, inB := en.edges.Contains(id), en.boundary.Contains(id)
		touches := en.vertices.Contains(e.From) || en.vertices.Contains(e.To)
		switch {
		case inE && inB:
			return fmt.Errorf("edge %d in both sets", id)
		case inE && !(en.vertices.Contains(e.From) && en.vertices.Contains(e.To)):
			return fmt.Errorf("module edge %d leaves the module", id)
		case !inE && inB != touches:
			return fmt.Errorf("edge %d: boundary=%v touches=%v", id, inB, touches)
		case inE != en.handles[id].Valid():
			return fmt.Errorf("edge %d: module=%v handle=%v", id, inE, en.handles[id].Valid())
		}
		if inE {
			deg[e.From]++
			deg[e.To]++
		}
	}
	if !slices.Equal(deg, en.degree) {
		return fmt.Errorf("degree %v, recomputed %v", en.degree, deg)
	}
	if en.forest.EdgeCount() != en.edges.Len() {
		return fmt.Errorf("forest holds %d edges, module %d", en.forest.EdgeCount(), en.edges.Len())
	}
	if len(cur.Vertices) > 0 {
		if s := en.forest.ComponentSize(cur.Vertices[0]); s != len(cur.Vertices) {
			return fmt.Errorf("forest component %d, module size %d", s, len(cur.Vertices))
		}
	}
	if en.best.Empty() != math.IsInf(en.bestScore, -1) {
		return fmt.Errorf("best score %g with %d best vertices", en.bestScore, en.best.Size())
	}
	if len(cur.Vertices) > 0 && en.score > en.bestScore {
		return fmt.Errorf("score %g above best %g", en.score, en.bestScore)
	}
	return nil
}

// ModuleEdgeOrder lists module edges in draw order: index i is returned by
// a module-edge draw of i.
func ModuleEdgeOrder(en *Engine) []int {
	return en.edges.Members()
}
