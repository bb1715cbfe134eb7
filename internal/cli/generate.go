// SPDX-License-Identifier: MIT
// Package: rmwcs/internal/cli
//
// generate.go - the generate command: synthetic graphs in edge-list format.

package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ctlab/rmwcs/builder"
	"github.com/ctlab/rmwcs/wgraph"
)

type generateOpts struct {
	n             int
	rows, cols    int
	p             float64
	seed          int64
	vertexWeights string
	edgeWeights   string
	output        string
}

// generators maps a kind to its constructor.
var generators = map[string]func(o generateOpts) builder.Constructor{
	"path":     func(o generateOpts) builder.Constructor { return builder.Path(o.n) },
	"cycle":    func(o generateOpts) builder.Constructor { return builder.Cycle(o.n) },
	"star":     func(o generateOpts) builder.Constructor { return builder.Star(o.n) },
	"wheel":    func(o generateOpts) builder.Constructor { return builder.Wheel(o.n) },
	"complete": func(o generateOpts) builder.Constructor { return builder.Complete(o.n) },
	"grid":     func(o generateOpts) builder.Constructor { return builder.Grid(o.rows, o.cols) },
	"random":   func(o generateOpts) builder.Constructor { return builder.RandomSparse(o.n, o.p) },
}

func generatorKinds() []string {
	kinds := make([]string, 0, len(generators))
	for k := range generators {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func newGenerateCmd() *cobra.Command {
	opts := generateOpts{
		n:             10,
		rows:          3,
		cols:          3,
		p:             0.1,
		seed:          1,
		vertexWeights: "normal:0,1",
		edgeWeights:   "normal:0,1",
	}

	cmd := &cobra.Command{
		Use:   "generate <kind>",
		Short: "Write a synthetic weighted graph in edge-list format",
		Long: fmt.Sprintf(`Generate writes a synthetic graph of the given kind (%s).

Weight distributions are const:<w>, uniform:<lo>,<hi> or normal:<mean>,<sd>.

Examples:
  rmwcs generate grid --rows 20 --cols 20 -o grid.txt
  rmwcs generate random --n 1000 --p 0.005 --vertex-weights uniform:-1,1`,
			strings.Join(generatorKinds(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.n, "n", "n", opts.n, "vertex count (path, cycle, star, wheel, complete, random)")
	cmd.Flags().IntVar(&opts.rows, "rows", opts.rows, "grid rows")
	cmd.Flags().IntVar(&opts.cols, "cols", opts.cols, "grid columns")
	cmd.Flags().Float64VarP(&opts.p, "p", "p", opts.p, "edge probability (random)")
	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "random seed")
	cmd.Flags().StringVar(&opts.vertexWeights, "vertex-weights", opts.vertexWeights, "vertex weight distribution")
	cmd.Flags().StringVar(&opts.edgeWeights, "edge-weights", opts.edgeWeights, "edge weight distribution")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

func generate(cmd *cobra.Command, kind string, opts generateOpts) error {
	logger := loggerFromContext(cmd.Context())

	mk, ok := generators[strings.ToLower(kind)]
	if !ok {
		return fmt.Errorf("unknown graph kind %q (want one of %s)", kind, strings.Join(generatorKinds(), ", "))
	}
	vw, err := parseWeightFn(opts.vertexWeights)
	if err != nil {
		return fmt.Errorf("--vertex-weights: %w", err)
	}
	ew, err := parseWeightFn(opts.edgeWeights)
	if err != nil {
		return fmt.Errorf("--edge-weights: %w", err)
	}

	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSeed(opts.seed),
		builder.WithVertexWeightFn(vw),
		builder.WithWeightFn(ew),
	}, mk(opts))
	if err != nil {
		return err
	}
	logger.Debug("graph generated", "kind", kind, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	out, err := openOutput(cmd, opts.output)
	if err != nil {
		return err
	}
	if err := wgraph.WriteEdgeList(out, g); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// parseWeightFn parses "const:<w>", "uniform:<lo>,<hi>" or "normal:<mean>,<sd>".
func parseWeightFn(s string) (builder.WeightFn, error) {
	name, params, _ := strings.Cut(s, ":")
	var args []float64
	if params != "" {
		for _, p := range strings.Split(params, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("%q: bad number %q", s, p)
			}
			args = append(args, v)
		}
	}
	want := map[string]int{"const": 1, "uniform": 2, "normal": 2}
	n, ok := want[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%q: unknown distribution %q", s, name)
	}
	if len(args) != n {
		return nil, fmt.Errorf("%q: %s takes %d parameter(s), got %d", s, name, n, len(args))
	}
	return buildWeightFn(strings.ToLower(name), args)
}

// buildWeightFn converts the builder constructors' panics on out-of-domain
// parameters into errors.
func buildWeightFn(name string, args []float64) (fn builder.WeightFn, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	switch name {
	case "const":
		return builder.ConstWeight(args[0]), nil
	case "uniform":
		return builder.UniformWeight(args[0], args[1]), nil
	default:
		return builder.NormalWeight(args[0], args[1]), nil
	}
}
