// SPDX-License-Identifier: MIT
// Package: rmwcs/anneal
//
// moves.go - proposals and the state mutations that commit them.
//
// Contract:
//   - Every proposal computes diff first, decides, and only then mutates.
//   - All score changes happen inside addVertex/removeVertex/addEdge/dropEdge,
//     so the running score always equals the module weight.
//   - The forest holds exactly one handle per module edge.

package anneal

func (en *Engine) seedStep() StepResult {
	v := en.src.Intn(en.g.VertexCount())
	diff := en.g.VertexWeight(v)
	res := StepResult{Move: MoveSeed, Edge: -1, Vertex: v, Diff: diff}
	if !en.accepts(diff) {
		res.Outcome = Rejected
		return res
	}
	en.addVertex(v)
	return res
}

// dropLoneStep handles a single module vertex with no incident edges at all:
// nothing can grow or shrink, so the only move is to leave it.
func (en *Engine) dropLoneStep() StepResult {
	v := en.vertices.At(0)
	diff := -en.g.VertexWeight(v)
	res := StepResult{Move: MoveDropLone, Edge: -1, Vertex: v, Diff: diff}
	if !en.accepts(diff) {
		res.Outcome = Rejected
		return res
	}
	en.removeVertex(v)
	return res
}

func (en *Engine) edgeStep() StepResult {
	b, k := en.boundary.Len(), en.edges.Len()
	if en.src.Intn(b+k) < b {
		return en.grow(en.boundary.Random(en.src))
	}
	return en.shrink(en.edges.Random(en.src))
}

// grow proposes adding boundary edge id together with any endpoint outside
// the module.
func (en *Engine) grow(id int) StepResult {
	e := en.g.Edge(id)
	diff := e.Weight
	joined := -1
	if !en.vertices.Contains(e.From) {
		diff += en.g.VertexWeight(e.From)
		joined = e.From
	}
	if !en.vertices.Contains(e.To) {
		diff += en.g.VertexWeight(e.To)
		joined = e.To
	}
	res := StepResult{Move: MoveGrow, Edge: id, Vertex: joined, Diff: diff}
	if !en.accepts(diff) {
		res.Outcome = Rejected
		return res
	}
	en.addEdge(id)
	return res
}

// shrink proposes removing module edge id.
//
//   - Both endpoints of degree 1: the module is exactly this edge. A coin flip
//     picks the vertex that leaves.
//   - One endpoint of degree 1: that pendant vertex leaves with the edge.
//   - Otherwise no vertex can leave; the edge goes only if it lies on a cycle.
func (en *Engine) shrink(id int) StepResult {
	e := en.g.Edge(id)
	v, u := e.From, e.To
	diff := -e.Weight

	var res StepResult
	switch dv, du := en.degree[v], en.degree[u]; {
	case dv == 1 && du == 1:
		leave := u
		if en.src.Float64() < 0.5 {
			leave = v
		}
		diff -= en.g.VertexWeight(leave)
		res = StepResult{Move: MoveShrinkPair, Edge: id, Vertex: leave, Diff: diff}
	case dv == 1 || du == 1:
		leave := u
		if dv == 1 {
			leave = v
		}
		diff -= en.g.VertexWeight(leave)
		res = StepResult{Move: MoveShrinkPendant, Edge: id, Vertex: leave, Diff: diff}
	default:
		res = StepResult{Move: MoveShrinkCycle, Edge: id, Vertex: -1, Diff: diff}
		if en.cfg.gateCycles && !en.accepts(diff) {
			res.Outcome = Rejected
			return res
		}
		if !en.cutEdge(id, -1) {
			res.Outcome = Illegal
		}
		return res
	}

	if !en.accepts(diff) {
		res.Outcome = Rejected
		return res
	}
	if !en.cutEdge(id, res.Vertex) {
		// Unreachable for pendant and pair removals; kept so the forest and
		// sets can never disagree.
		res.Outcome = Illegal
	}
	return res
}

// cutEdge removes module edge id from the forest and commits whatever the
// resulting split allows:
//
//	component of v still the whole module   cycle edge, id returns to boundary
//	split {1, size-1}                        the lone vertex leaves (leave, on a tie)
//	any other split                          illegal, forest restored, false
func (en *Engine) cutEdge(id, leave int) bool {
	e := en.g.Edge(id)
	v, u := e.From, e.To
	size := en.vertices.Len()

	en.forest.Remove(&en.handles[id])
	sv, su := en.forest.ComponentSize(v), en.forest.ComponentSize(u)
	switch {
	case sv == size:
		en.dropEdge(id)
	case sv == 1 && su == 1:
		en.dropEdge(id)
		en.removeVertex(leave)
	case sv == 1:
		en.dropEdge(id)
		en.removeVertex(v)
	case su == 1:
		en.dropEdge(id)
		en.removeVertex(u)
	default:
		en.handles[id] = en.forest.Add(v, u)
		return false
	}
	return true
}

// addVertex puts v into the module and promotes its untouched incident edges
// to the boundary.
func (en *Engine) addVertex(v int) {
	en.vertices.Insert(v)
	for _, e := range en.g.Incident(v) {
		if !en.edges.Contains(e.ID) && !en.boundary.Contains(e.ID) {
			en.boundary.Insert(e.ID)
		}
	}
	en.score += en.g.VertexWeight(v)
}

// removeVertex takes v out of the module. v must have no module edges left.
// Boundary edges whose other endpoint is also outside now touch nothing.
func (en *Engine) removeVertex(v int) {
	en.vertices.Remove(v)
	for _, e := range en.g.Incident(v) {
		if en.boundary.Contains(e.ID) && !en.vertices.Contains(e.Opposite(v)) {
			en.boundary.Remove(e.ID)
		}
	}
	en.score -= en.g.VertexWeight(v)
}

// addEdge moves boundary edge id into the module, adding missing endpoints.
func (en *Engine) addEdge(id int) {
	e := en.g.Edge(id)
	en.boundary.Remove(id)
	en.edges.Insert(id)
	en.degree[e.From]++
	en.degree[e.To]++
	if !en.vertices.Contains(e.From) {
		en.addVertex(e.From)
	}
	if !en.vertices.Contains(e.To) {
		en.addVertex(e.To)
	}
	en.handles[id] = en.forest.Add(e.From, e.To)
	en.score += e.Weight
}

// dropEdge moves module edge id, already gone from the forest, to the
// boundary. Both endpoints are still in the module at this point, so id
// touches it; removeVertex drops it again if needed.
func (en *Engine) dropEdge(id int) {
	e := en.g.Edge(id)
	en.edges.Remove(id)
	en.degree[e.From]--
	en.degree[e.To]--
	en.boundary.Insert(id)
	en.score -= e.Weight
}
