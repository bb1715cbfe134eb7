// SPDX-License-Identifier: MIT
// Package: rmwcs/internal/cli
//
// run.go - the run command.

package cli

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/ctlab/rmwcs/anneal"
	"github.com/ctlab/rmwcs/schedule"
	"github.com/ctlab/rmwcs/wgraph"
)

func newRunCmd() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run <graph>",
		Short: "Anneal a graph and report the best connected module",
		Long: `Run reads a graph in edge-list format and anneals it, optionally with
several independent restarts, then reports the best module found.

Settings come from defaults, then the --config TOML file, then flags.

Examples:
  rmwcs run graph.txt --steps 500000 --restarts 8
  rmwcs run graph.txt --config run.toml --format json -o best.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			return runAnneal(cmd, args[0], f.output, cfg)
		},
	}
	f.bind(cmd.Flags())
	return cmd
}

func runAnneal(cmd *cobra.Command, path, output string, cfg runConfig) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	g, err := readGraph(path)
	if err != nil {
		return err
	}
	if _, err := schedule.NewFromName(cfg.Schedule, cfg.T0, cfg.T1, cfg.Steps); err != nil {
		return err
	}
	logger.Debug("graph loaded", "path", path, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	var opts []anneal.Option
	if cfg.GatedCycles {
		opts = append(opts, anneal.WithGatedCycleRemoval(true))
	}
	reg := prometheus.NewRegistry()
	if cfg.Metrics != "" {
		m, err := anneal.NewMetrics(reg)
		if err != nil {
			return err
		}
		opts = append(opts, anneal.WithObserver(m))
	}

	p := newProgress(logger)
	res, err := anneal.RunRestarts(ctx, g, anneal.RestartOptions{
		Count:       cfg.Restarts,
		Parallelism: cfg.Parallel,
		Seed:        cfg.Seed,
		Schedule: func(int) anneal.Schedule {
			s, _ := schedule.NewFromName(cfg.Schedule, cfg.T0, cfg.T1, cfg.Steps)
			return s
		},
		Logger:  logger,
		Options: opts,
	})
	if err != nil {
		return err
	}
	p.done("search finished", "runs", cfg.Restarts, "best", res.Best.Score, "size", res.Best.Size())

	rep := newReport(path, g.VertexCount(), g.EdgeCount(), cfg, res)
	verr := res.Best.Validate(g)
	rep.Valid = verr == nil

	out, err := openOutput(cmd, output)
	if err != nil {
		return err
	}
	if err := writeReport(out, rep, cfg.Format); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if cfg.Metrics != "" {
		if err := prometheus.WriteToTextfile(cfg.Metrics, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	if verr != nil {
		return fmt.Errorf("best module failed validation: %w", verr)
	}
	return nil
}

func readGraph(path string) (*wgraph.Graph, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	g, err := wgraph.ReadEdgeList(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
