// SPDX-License-Identifier: MIT

// Package rmwcs searches vertex- and edge-weighted undirected graphs for a
// connected subgraph ("module") of maximum total weight.
//
// The search is a simulated-annealing walk over connected modules: each step
// grows the module along a boundary edge or shrinks it by one module edge, and
// a removal that would split the module into two non-trivial pieces is
// rejected. Connectivity is maintained incrementally, so a step costs
// polylogarithmic time instead of a full traversal.
//
// Subpackages:
//
//	wgraph/    immutable weighted graph, edge-list I/O, gonum views
//	randset/   O(1) insert, remove and uniform sampling over 0..n-1
//	dynconn/   fully dynamic connectivity forest (Euler-tour treaps)
//	anneal/    the annealing engine, Module output, metrics, restarts
//	schedule/  exponential, linear and constant cooling schedules
//	builder/   synthetic graph constructors with pluggable weights
//	rng/       seeded and derived random streams
//
// The rmwcs command (cmd/rmwcs) wraps these with run, generate and check
// subcommands.
//
// Quick start:
//
//	g, _ := wgraph.New([]float64{3, 1, 2, -20}, []wgraph.EdgeSpec{
//		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3},
//	})
//	en, _ := anneal.New(g, rng.FromSeed(7))
//	best, _ := en.Run(ctx, &schedule.Exponential{Start: 5, End: 0.01, Steps: 10000})
//	fmt.Println(best.Vertices, best.Score)
package rmwcs
