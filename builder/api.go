// SPDX-License-Identifier: MIT
// Package: rmwcs/builder
//
// api.go - the BuildGraph orchestrator and the Constructor type.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...) resolves cfg, runs cons in
//     order against one draft, then freezes it with wgraph.New.
//   - Topology factories live in impl_*.go.
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/ctlab/rmwcs/wgraph"
)

// Constructor appends one topology to the draft using the resolved config.
// Constructors validate parameters before touching the draft and return
// sentinel errors; they never panic.
type Constructor func(d *draft, cfg builderConfig) error

// BuildGraph resolves bopts, applies all constructors in order and builds
// the resulting graph.
//
// Errors: constructor errors wrapped with "BuildGraph: %w";
// ErrConstructFailed for a nil constructor or a graph wgraph rejects.
// Complexity: O(len(bopts)) plus the constructors' cost plus O(n + m) to freeze.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*wgraph.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	var d draft
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	g, err := wgraph.New(d.weights, d.edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}
	return g, nil
}
