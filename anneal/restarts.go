// SPDX-License-Identifier: MIT
// Package: rmwcs/anneal
//
// restarts.go - independent parallel restarts over one shared graph.

package anneal

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/ctlab/rmwcs/rng"
	"github.com/ctlab/rmwcs/wgraph"
)

// RestartOptions configures RunRestarts.
type RestartOptions struct {
	// Count is the number of independent runs; must be >= 1.
	Count int

	// Parallelism bounds concurrently running engines; <= 0 means GOMAXPROCS.
	Parallelism int

	// Seed is the parent seed; run i uses rng.Derive(Seed, i).
	Seed int64

	// Schedule returns a fresh schedule for run i. Schedules are stateful, so
	// runs must never share one.
	Schedule func(run int) Schedule

	// Logger, if set, is handed to each engine tagged with its run index.
	Logger *log.Logger

	// Options are applied to every engine after the logger.
	Options []Option
}

// RunResult is the outcome of one restart.
type RunResult struct {
	Run   int    `json:"run" yaml:"run"`
	Seed  int64  `json:"seed" yaml:"seed"`
	Best  Module `json:"best" yaml:"best"`
	Stats Stats  `json:"-" yaml:"-"`
}

// Result collects all restarts. Best is the highest-scoring non-empty module;
// ties go to the lowest run index, so Result does not depend on scheduling.
type Result struct {
	Best    Module      `json:"best" yaml:"best"`
	BestRun int         `json:"best_run" yaml:"best_run"`
	Runs    []RunResult `json:"runs" yaml:"runs"`
}

// RunRestarts anneals g Count times with independent engines, each owning its
// sets, forest and random stream, and returns every run's best module.
//
// Implementation:
//   - Stage 1: Validate options.
//   - Stage 2: Fan out runs on an errgroup limited to Parallelism.
//   - Stage 3: Pick the overall best in run order.
//
// Errors: ErrNilGraph, ErrEmptyGraph, ErrBadRestarts; the first run error
// (including ctx cancellation) aborts the remaining runs and is returned.
func RunRestarts(ctx context.Context, g *wgraph.Graph, opts RestartOptions) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return Result{}, ErrEmptyGraph
	}
	if opts.Count < 1 {
		return Result{}, fmt.Errorf("RunRestarts: count=%d: %w", opts.Count, ErrBadRestarts)
	}
	if opts.Schedule == nil {
		return Result{}, fmt.Errorf("RunRestarts: nil schedule factory: %w", ErrBadRestarts)
	}
	par := opts.Parallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(0)
	}

	runs := make([]RunResult, opts.Count)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(par)
	for i := 0; i < opts.Count; i++ {
		i := i
		eg.Go(func() error {
			r, err := runOne(ctx, g, opts, i)
			if err != nil {
				return fmt.Errorf("RunRestarts: run %d: %w", i, err)
			}
			runs[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{BestRun: -1, Runs: runs}
	for _, r := range runs {
		if r.Best.Empty() {
			continue
		}
		if res.BestRun < 0 || r.Best.Score > res.Best.Score {
			res.Best = r.Best
			res.BestRun = r.Run
		}
	}
	return res, nil
}

func runOne(ctx context.Context, g *wgraph.Graph, opts RestartOptions, i int) (RunResult, error) {
	seed := rng.DeriveSeed(normSeed(opts.Seed), uint64(i))
	var engineOpts []Option
	if opts.Logger != nil {
		engineOpts = append(engineOpts, WithLogger(opts.Logger.With("run", i)))
	}
	engineOpts = append(engineOpts, opts.Options...)

	en, err := New(g, rng.FromSeed(seed), engineOpts...)
	if err != nil {
		return RunResult{}, err
	}
	s := opts.Schedule(i)
	if s == nil {
		return RunResult{}, ErrNilSchedule
	}
	best, err := en.Run(ctx, s)
	if err != nil {
		return RunResult{}, err
	}
	return RunResult{Run: i, Seed: seed, Best: best, Stats: en.Stats()}, nil
}

// normSeed applies the rng package's zero-seed policy before derivation so a
// zero parent seed matches rng.Derive.
func normSeed(s int64) int64 {
	if s == 0 {
		return rng.DefaultSeed
	}
	return s
}
