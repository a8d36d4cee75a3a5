package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowgraph/flowlayout/pkg/graph"
	"github.com/flowgraph/flowlayout/pkg/layout"
)

// applyOpts holds the command-line flags for the apply command.
type applyOpts struct {
	algorithm string // layout algorithm name
	config    string // optional TOML config file
	output    string // output file path (stdout if empty)
	center    bool   // center the layout on the origin afterwards
	fit       string // scale to fit "WIDTHxHEIGHT" afterwards
	margin    float64
	seed      uint64 // overrides the config seed when set
}

// newApplyCmd creates the apply command, the main entry point of the tool:
// it reads a graph file, runs the chosen algorithm, applies optional
// post-processing, and writes the positioned graph back out.
func newApplyCmd() *cobra.Command {
	opts := applyOpts{algorithm: layout.AlgorithmForceDirected, margin: 50}

	cmd := &cobra.Command{
		Use:   "apply [file]",
		Short: "Run a layout algorithm over a graph file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", opts.algorithm,
		"layout algorithm: "+strings.Join(layout.Algorithms(), ", "))
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML config file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.center, "center", false, "center the layout on the origin")
	cmd.Flags().StringVar(&opts.fit, "fit", "", "scale layout to fit WIDTHxHEIGHT (e.g. 800x600)")
	cmd.Flags().Float64Var(&opts.margin, "margin", opts.margin, "margin used by --fit")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (overrides config)")

	return cmd
}

func runApply(cmd *cobra.Command, path string, opts *applyOpts) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}

	l, err := layout.New(opts.algorithm, cfg)
	if err != nil {
		return err
	}

	g, err := graph.ReadGraphFile(path)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %d nodes, %d edges from %s", g.NodeCount(), g.EdgeCount(), path)

	prog := newProgress(logger)
	res := l.Apply(g)
	if !res.Success {
		return fmt.Errorf("layout %s: %w", opts.algorithm, res.Err)
	}
	prog.done(fmt.Sprintf("Laid out %d nodes with %s in %d iterations, bounds %.0fx%.0f",
		g.NodeCount(), opts.algorithm, res.Iterations, res.BoundingBox.X, res.BoundingBox.Y))

	if opts.fit != "" {
		w, h, err := parseFitSize(opts.fit)
		if err != nil {
			return err
		}
		layout.ScaleToFit(g, w, h, opts.margin)
	}
	if opts.center {
		layout.CenterGraph(g)
	}

	if opts.output == "" {
		return graph.WriteGraph(g, os.Stdout)
	}
	if err := graph.WriteGraphFile(g, opts.output); err != nil {
		return err
	}
	logger.Infof("Wrote %s", opts.output)
	return nil
}

// parseFitSize parses a "WIDTHxHEIGHT" string such as "800x600".
func parseFitSize(s string) (width, height float64, err error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid --fit %q: want WIDTHxHEIGHT", s)
	}
	width, err = strconv.ParseFloat(w, 64)
	if err == nil {
		height, err = strconv.ParseFloat(h, 64)
	}
	if err != nil || width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid --fit %q: want positive WIDTHxHEIGHT", s)
	}
	return width, height, nil
}
