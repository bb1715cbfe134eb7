// SPDX-License-Identifier: MIT
// Package: rmwcs/internal/cli
//
// report.go - the run report and its YAML/JSON encodings.

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/ctlab/rmwcs/anneal"
)

// report is the document written by run and read back by check.
type report struct {
	ID       string        `json:"id" yaml:"id"`
	Graph    string        `json:"graph" yaml:"graph"`
	Vertices int           `json:"vertices" yaml:"vertices"`
	Edges    int           `json:"edges" yaml:"edges"`
	Settings settings      `json:"settings" yaml:"settings"`
	Best     anneal.Module `json:"best" yaml:"best"`
	BestRun  int           `json:"best_run" yaml:"best_run"`
	Valid    bool          `json:"valid" yaml:"valid"`
	Runs     []runSummary  `json:"runs" yaml:"runs"`
}

type settings struct {
	Seed        int64   `json:"seed" yaml:"seed"`
	Restarts    int     `json:"restarts" yaml:"restarts"`
	Schedule    string  `json:"schedule" yaml:"schedule"`
	T0          float64 `json:"t0" yaml:"t0"`
	T1          float64 `json:"t1" yaml:"t1"`
	Steps       int     `json:"steps" yaml:"steps"`
	GatedCycles bool    `json:"gated_cycles" yaml:"gated_cycles"`
}

type runSummary struct {
	Run          int              `json:"run" yaml:"run"`
	Seed         int64            `json:"seed" yaml:"seed"`
	Score        float64          `json:"score" yaml:"score"`
	Size         int              `json:"size" yaml:"size"`
	Steps        int64            `json:"steps" yaml:"steps"`
	Accepted     int64            `json:"accepted" yaml:"accepted"`
	Rejected     int64            `json:"rejected" yaml:"rejected"`
	Illegal      int64            `json:"illegal" yaml:"illegal"`
	Improvements int64            `json:"improvements" yaml:"improvements"`
	Moves        map[string]int64 `json:"moves,omitempty" yaml:"moves,omitempty"`
}

func newReport(graph string, vertices, edges int, cfg runConfig, res anneal.Result) report {
	r := report{
		ID:       uuid.NewString(),
		Graph:    graph,
		Vertices: vertices,
		Edges:    edges,
		Settings: settings{
			Seed:        cfg.Seed,
			Restarts:    cfg.Restarts,
			Schedule:    cfg.Schedule,
			T0:          cfg.T0,
			T1:          cfg.T1,
			Steps:       cfg.Steps,
			GatedCycles: cfg.GatedCycles,
		},
		Best:    res.Best,
		BestRun: res.BestRun,
		Runs:    make([]runSummary, len(res.Runs)),
	}
	for i, rr := range res.Runs {
		st := rr.Stats
		moves := make(map[string]int64)
		for m, n := range st.ByMove {
			if n > 0 {
				moves[anneal.Move(m).String()] = n
			}
		}
		r.Runs[i] = runSummary{
			Run:          rr.Run,
			Seed:         rr.Seed,
			Score:        rr.Best.Score,
			Size:         rr.Best.Size(),
			Steps:        st.Steps,
			Accepted:     st.Accepted,
			Rejected:     st.Rejected,
			Illegal:      st.Illegal,
			Improvements: st.Improvements,
			Moves:        moves,
		}
	}
	return r
}

func writeReport(w io.Writer, r report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown report format %q", format)
}

// readReport decodes a report in either format; JSON is accepted by the YAML
// decoder.
func readReport(r io.Reader) (report, error) {
	var rep report
	if err := yaml.NewDecoder(r).Decode(&rep); err != nil {
		return rep, fmt.Errorf("decode report: %w", err)
	}
	return rep, nil
}
