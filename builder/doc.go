// SPDX-License-Identifier: MIT
// Package builder assembles vertex- and edge-weighted test and benchmark graphs
// from composable topology constructors.
//
// The package offers:
//
//   - One orchestrator: BuildGraph(bopts, cons...) runs constructors in order
//     and freezes the result into a *wgraph.Graph.
//   - Topologies: Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse.
//     Each constructor appends its own fresh vertices, so composing several
//     yields their disjoint union; vertex IDs are dense and follow call order.
//   - Weight distributions (WeightFn): ConstWeight, UniformWeight, NormalWeight,
//     used for vertices (WithVertexWeightFn) and edges (WithWeightFn)
//     independently. Negative weights are allowed; that is what makes a
//     maximum-weight module a non-trivial choice.
//   - Randomness: WithSeed / WithRand. RandomSparse requires a source for
//     0 < p < 1; random weight functions fall back to their central value
//     without one.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical graphs.
//   - Fast-fail on meaningless option parameters via panics in option
//     constructors; constructors themselves return sentinel errors.
//   - Weights are drawn in emission order: a constructor's vertex weights
//     first, then its edges in their documented order.
package builder
