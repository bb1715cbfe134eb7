// SPDX-License-Identifier: MIT
// Package: rmwcs/internal/cli
//
// check.go - the check command: re-validate a saved report.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <graph> <report>",
		Short: "Validate the best module of a saved report against a graph",
		Long: `Check recomputes connectivity and score of a report's best module
from scratch and fails if either disagrees with the graph.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkReport(cmd, args[0], args[1])
		},
	}
}

func checkReport(cmd *cobra.Command, graphPath, reportPath string) error {
	logger := loggerFromContext(cmd.Context())

	g, err := readGraph(graphPath)
	if err != nil {
		return err
	}
	fh, err := os.Open(reportPath)
	if err != nil {
		return err
	}
	defer fh.Close()
	rep, err := readReport(fh)
	if err != nil {
		return fmt.Errorf("%s: %w", reportPath, err)
	}
	if err := rep.Best.Validate(g); err != nil {
		return fmt.Errorf("%s: %w", reportPath, err)
	}
	logger.Info("module valid", "report", rep.ID, "size", rep.Best.Size(), "score", rep.Best.Score)
	fmt.Fprintf(cmd.OutOrStdout(), "ok %d vertices %d edges score %g\n", rep.Best.Size(), len(rep.Best.Edges), rep.Best.Score)
	return nil
}
