package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flightgraph/pkg/graph"
	"github.com/matzehuels/flightgraph/pkg/pipeline"
)

// layoutCommand creates the layout command, which builds the graph and its
// layout from a flights file and writes both in the JSON wire format.
func (c *CLI) layoutCommand() *cobra.Command {
	var output string
	opts := pipeline.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "layout [flights.json]",
		Short: "Build the airport graph and its layout from a flights file",
		Long: `Build the airport graph and its layout from a flights file.

The layout command reads flights (as written by 'generate'), builds the
deduplicated airport graph and computes a seeded spring layout. It writes
<base>.graph.json and <base>.layout.json, where <base> defaults to the
input file name without its extension. Render both with 'visualize'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.FlightsFile = args[0]
			err := c.runLayout(cmd.Context(), opts, output)
			if c.reportUserError(err) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default: input without extension)")
	cmd.Flags().StringArrayVar(&opts.AirportIDs, "airport", nil, "explicit airport identifier (repeatable); defaults to every airport in the file")
	cmd.Flags().StringVarP(&opts.VizType, "type", "t", opts.VizType, "visualization type: scene (default), nodelink")
	cmd.Flags().IntVar(&opts.Dimensions, "dim", opts.Dimensions, "layout dimensions: 2 or 3")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", opts.Seed, "layout seed")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "layout scale")
	cmd.Flags().IntVar(&opts.Iterations, "iterations", opts.Iterations, "spring layout iterations")
	cmd.Flags().BoolVar(&opts.RandomDepth, "random-depth", false, "draw 3D depth from a time-seeded source")

	return cmd
}

// runLayout loads the flights, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string) error {
	opts.Logger = c.Logger
	if err := opts.ValidateForLayout(); err != nil {
		return err
	}

	runner := c.newRunner()
	airports, records, err := runner.Sample(ctx, opts)
	if err != nil {
		return fmt.Errorf("load flights %s: %w", opts.FlightsFile, err)
	}
	g, err := runner.Build(ctx, airports, records)
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}
	l, err := runner.ComputeLayout(ctx, g, opts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	base := output
	if base == "" {
		base = strings.TrimSuffix(opts.FlightsFile, filepath.Ext(opts.FlightsFile))
	}
	graphPath, layoutPath := base+".graph.json", base+".layout.json"

	if err := graph.WriteGraphFile(g, graphPath); err != nil {
		return fmt.Errorf("write graph %s: %w", graphPath, err)
	}
	if err := graph.WriteLayoutFile(pipeline.ExportLayout(l, opts, ""), layoutPath); err != nil {
		return fmt.Errorf("write layout %s: %w", layoutPath, err)
	}

	printSuccess(c.Out, "Layout complete")
	printFile(c.Out, graphPath)
	printFile(c.Out, layoutPath)
	printStats(c.Out, g.NodeCount(), g.EdgeCount(), len(records))
	printNewline(c.Out)
	printNextStep(c.Out, "Render", appName+" visualize "+graphPath+" "+layoutPath)
	return nil
}
