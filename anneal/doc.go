// SPDX-License-Identifier: MIT
// Package anneal searches a vertex- and edge-weighted graph for a connected
// subgraph (a module) of high total weight with a simulated-annealing walk.
//
// What
//
// An Engine keeps one current module and moves it one edge at a time:
//
//   - Seed:   module empty, pick a uniform vertex and try to add it alone.
//   - Grow:   pick a uniform boundary edge and try to add it with any endpoint
//     not yet in the module.
//   - Shrink: pick a uniform module edge and try to remove it. A pendant vertex
//     leaves with its edge; a cycle edge returns to the boundary; removing a
//     bridge between two multi-vertex pieces is illegal and rejected.
//
// The boundary is every non-module edge with at least one endpoint in the
// module, so unchosen edges between two module vertices are grow candidates too.
// With r drawn from [0, b+k) for b boundary edges and k module edges, a step
// grows when r < b and shrinks otherwise.
//
// Acceptance (maximisation)
//
//	P(diff) = 1            diff >= 0
//	P(diff) = exp(diff/T)  diff < 0, T > 0
//	P(diff) = 0            diff < 0, T == 0
//
// A move is accepted iff src.Float64() < P(diff). Cycle-edge removals skip the
// test unless WithGatedCycleRemoval(true) is set.
//
// Invariants after every Step
//
//   - Score equals the summed weight of module vertices and module edges.
//   - The module is connected (or empty).
//   - Every edge is in at most one of {module edges, boundary}; it is in the
//     boundary iff it is not a module edge and touches the module.
//   - degree[v] counts module edges incident to v.
//   - A rejected or illegal move leaves all of the above untouched.
//
// Determinism
//
// Given the same graph, RandomSource stream, schedule and options, the walk is
// bit-for-bit reproducible. RunRestarts derives one stream per restart from a
// single seed, so its result does not depend on Parallelism.
//
// Concurrency
//
// An Engine is single-goroutine. Parallel search runs independent engines that
// share only the immutable *wgraph.Graph.
package anneal
