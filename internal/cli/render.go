package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowgraph/flowlayout/pkg/dot"
	"github.com/flowgraph/flowlayout/pkg/graph"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	format string // output format: dot, svg, png
	output string // output file path (stdout if empty)
	pinned bool   // pin nodes at their stored positions
}

// newRenderCmd creates the render command for exporting a graph file as DOT
// text or a Graphviz-rendered image. With --pinned (the default), nodes stay
// at the coordinates a previous apply run computed; without it Graphviz lays
// the graph out itself.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{format: formatSVG, pinned: true}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph file as DOT, SVG, or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, dot")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.pinned, "pinned", opts.pinned, "pin nodes at their stored positions")

	return cmd
}

// validateFormat checks that the format is one of the supported outputs.
func validateFormat(f string) error {
	switch f {
	case formatDOT, formatSVG, formatPNG:
		return nil
	default:
		return fmt.Errorf("invalid format %q: want one of %s", f,
			strings.Join([]string{formatSVG, formatPNG, formatDOT}, ", "))
	}
}

func runRender(cmd *cobra.Command, path string, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())

	g, err := graph.ReadGraphFile(path)
	if err != nil {
		return err
	}

	dotSrc := dot.ToDOT(g, dot.Options{Positioned: opts.pinned})

	var data []byte
	switch opts.format {
	case formatDOT:
		data = []byte(dotSrc)
	case formatSVG:
		data, err = dot.RenderSVG(cmd.Context(), dotSrc, opts.pinned)
	case formatPNG:
		data, err = dot.RenderPNG(cmd.Context(), dotSrc, opts.pinned)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", opts.format, err)
	}

	if opts.output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return err
	}
	logger.Infof("Wrote %s (%d bytes)", opts.output, len(data))
	return nil
}
