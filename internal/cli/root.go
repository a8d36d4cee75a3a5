package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/flowgraph/flowlayout/pkg/buildinfo"
	"github.com/flowgraph/flowlayout/pkg/layout"
)

// Execute runs the flowlayout CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (gen, apply,
// render, algorithms), configures logging based on the --verbose flag, and
// executes the command tree. The logger is attached to the context and
// accessible to all commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "flowlayout",
		Short:        "flowlayout computes node positions for graph files",
		Long:         `flowlayout is a CLI tool for laying out graphs: it reads a graph from a JSON file, runs one of several layout algorithms over it, and writes the positioned graph back out or renders it as an image.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenCmd())
	root.AddCommand(newApplyCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newAlgorithmsCmd())

	return root.ExecuteContext(ctx)
}

// newAlgorithmsCmd lists the registered layout algorithms with their
// capability flags.
func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List available layout algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range layout.Algorithms() {
				alg, err := layout.Create(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s directed=%-5v large-graphs=%v\n",
					name, alg.SupportsDirected(), alg.OptimizedForLargeGraphs())
			}
			return nil
		},
	}
}
