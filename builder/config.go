// SPDX-License-Identifier: MIT
// Package: rmwcs/builder
//
// config.go - internal configuration and the draft graph constructors write to.
//
// Deterministic defaults:
//   - rng            = nil                     (pure unless seeded)
//   - vertexWeightFn = ConstWeight(DefaultVertexWeight)
//   - weightFn       = ConstWeight(DefaultEdgeWeight)

package builder

import (
	"fmt"
	"math/rand"

	"github.com/ctlab/rmwcs/wgraph"
)

const (
	// DefaultVertexWeight is the vertex weight when no WithVertexWeightFn is set.
	DefaultVertexWeight float64 = 1
	// DefaultEdgeWeight is the edge weight when no WithWeightFn is set.
	DefaultEdgeWeight float64 = 1

	maxVertices = 1 << 24
	maxEdges    = 1 << 26
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	rng            *rand.Rand
	vertexWeightFn WeightFn
	weightFn       WeightFn
}

// newBuilderConfig applies options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		vertexWeightFn: ConstWeight(DefaultVertexWeight),
		weightFn:       ConstWeight(DefaultEdgeWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// draft accumulates vertex weights and edges before wgraph.New freezes them.
type draft struct {
	weights []float64
	edges   []wgraph.EdgeSpec
}

// addVertices appends k vertices with weights from cfg and returns the ID of
// the first one.
func (d *draft) addVertices(method string, k int, cfg builderConfig) (int, error) {
	if len(d.weights)+k > maxVertices {
		return 0, fmt.Errorf("%s: %d+%d vertices > max=%d: %w", method, len(d.weights), k, maxVertices, ErrTooManyVertices)
	}
	base := len(d.weights)
	for i := 0; i < k; i++ {
		d.weights = append(d.weights, cfg.vertexWeightFn(cfg.rng))
	}
	return base, nil
}

// addEdge appends {v,u} with a weight from cfg.
func (d *draft) addEdge(v, u int, cfg builderConfig) {
	d.edges = append(d.edges, wgraph.EdgeSpec{From: v, To: u, Weight: cfg.weightFn(cfg.rng)})
}

// reserveEdges checks that k more edges fit.
func (d *draft) reserveEdges(method string, k int) error {
	if len(d.edges)+k > maxEdges {
		return fmt.Errorf("%s: %d+%d edges > max=%d: %w", method, len(d.edges), k, maxEdges, ErrTooManyVertices)
	}
	return nil
}
