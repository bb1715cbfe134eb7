// SPDX-License-Identifier: MIT
// Package: rmwcs/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach context with %w ("Grid: rows=0 ...: builder: ...").
//   - Validation panics are confined to option constructors (WithX, XWeight).

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooManyVertices indicates a constructor would exceed maxVertices vertices
// or maxEdges edges.
var ErrTooManyVertices = errors.New("builder: graph too large")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was run without
// WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a graph the wgraph builder
// refused (for example a non-finite weight from a custom WeightFn).
var ErrConstructFailed = errors.New("builder: construction failed")
