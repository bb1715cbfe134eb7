// SPDX-License-Identifier: MIT
// Package: rmwcs/anneal
//
// engine.go - Engine construction, Step dispatch, Run loop and read accessors.

package anneal

import (
	"context"
	"fmt"
	"math"

	"github.com/ctlab/rmwcs/dynconn"
	"github.com/ctlab/rmwcs/randset"
	"github.com/ctlab/rmwcs/wgraph"
)

// Engine runs the annealing walk over one graph.
// An Engine is not safe for concurrent use.
type Engine struct {
	g   *wgraph.Graph
	src RandomSource
	cfg config

	vertices *randset.Set // module vertices
	edges    *randset.Set // module edges
	boundary *randset.Set // non-module edges touching the module

	degree  []int            // v -> module edges incident to v
	handles []dynconn.Handle // e -> forest handle while e is a module edge
	forest  *dynconn.Forest

	score       float64
	temperature float64

	best      Module
	bestScore float64

	stats Stats
}

// New returns an Engine with an empty module.
//
// Errors: ErrNilGraph, ErrNilSource, ErrEmptyGraph.
// Complexity: O(n + m).
func New(g *wgraph.Graph, src RandomSource, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if src == nil {
		return nil, ErrNilSource
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n, m := g.VertexCount(), g.EdgeCount()
	return &Engine{
		g:         g,
		src:       src,
		cfg:       cfg,
		vertices:  randset.New(n),
		edges:     randset.New(m),
		boundary:  randset.New(m),
		degree:    make([]int, n),
		handles:   make([]dynconn.Handle, m),
		forest:    dynconn.New(n, dynconn.WithSeed(cfg.forestSeed)),
		bestScore: math.Inf(-1),
	}, nil
}

// Step performs one move at the given temperature. The move is either fully
// committed or has no effect. Negative and NaN temperatures are treated as 0.
//
// Complexity: O(log n) expected for most moves; adding a vertex scans its
// incident edges; a tree-edge removal scans the smaller side for a replacement.
func (en *Engine) Step(temperature float64) StepResult {
	if !(temperature >= 0) {
		temperature = 0
	}
	en.temperature = temperature

	var res StepResult
	switch {
	case en.vertices.Len() == 0:
		res = en.seedStep()
	case en.boundary.Len()+en.edges.Len() == 0:
		res = en.dropLoneStep()
	default:
		res = en.edgeStep()
	}
	res.Score = en.score
	res.Size = en.vertices.Len()
	res.Temperature = temperature

	if res.Size > 0 && en.score > en.bestScore {
		en.bestScore = en.score
		en.best = en.snapshot()
		res.Improved = true
		en.stats.Improvements++
		en.cfg.logger.Debug("new best", "step", en.stats.Steps, "score", en.score, "size", res.Size)
		en.cfg.observer.ObserveBest(en.score)
	}
	en.stats.record(res)
	en.cfg.observer.ObserveStep(res)
	return res
}

// Run steps while s is hot, feeding each step s.Temperature(), and returns
// the best module seen so far. ctx is checked every checkEvery steps; on
// cancellation Run stops with ctx's error and the best module so far.
//
// Errors: ErrNilSchedule; ErrInvalidTemperature for a negative or NaN
// temperature (the step is not taken); ctx.Err() wrapped.
func (en *Engine) Run(ctx context.Context, s Schedule) (Module, error) {
	if s == nil {
		return Module{}, ErrNilSchedule
	}
	every := int64(en.cfg.checkEvery)
	start := en.stats.Steps
	for s.IsHot() {
		if (en.stats.Steps-start)%every == 0 {
			if err := ctx.Err(); err != nil {
				return en.Best(), fmt.Errorf("Run: after %d steps: %w", en.stats.Steps-start, err)
			}
		}
		t := s.Temperature()
		if math.IsNaN(t) || t < 0 {
			return en.Best(), fmt.Errorf("Run: step %d: t=%g: %w", en.stats.Steps-start, t, ErrInvalidTemperature)
		}
		en.Step(t)
	}
	en.cfg.logger.Info("annealing finished",
		"steps", en.stats.Steps-start, "best", en.bestScore, "size", en.best.Size(),
		"accepted", en.stats.Accepted, "illegal", en.stats.Illegal)
	return en.Best(), nil
}

// Best returns a copy of the best module seen, or the empty Module if no
// step has yet produced a non-empty module.
func (en *Engine) Best() Module { return en.best.clone() }

// Current returns a snapshot of the current module.
func (en *Engine) Current() Module { return en.snapshot() }

// Score returns the current module's weight.
func (en *Engine) Score() float64 { return en.score }

// Size returns the current module's vertex count.
func (en *Engine) Size() int { return en.vertices.Len() }

// Temperature returns the temperature of the last step.
func (en *Engine) Temperature() float64 { return en.temperature }

// Stats returns cumulative step counters.
func (en *Engine) Stats() Stats { return en.stats }

// Graph returns the graph the engine walks on.
func (en *Engine) Graph() *wgraph.Graph { return en.g }

func (s *Stats) record(r StepResult) {
	s.Steps++
	s.ByMove[r.Move]++
	switch r.Outcome {
	case Accepted:
		s.Accepted++
	case Rejected:
		s.Rejected++
	case Illegal:
		s.Illegal++
	}
}
