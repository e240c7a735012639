package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flightgraph/pkg/errors"
	"github.com/matzehuels/flightgraph/pkg/flights"
	"github.com/matzehuels/flightgraph/pkg/graph"
	"github.com/matzehuels/flightgraph/pkg/layout"
	"github.com/matzehuels/flightgraph/pkg/network"
	"github.com/matzehuels/flightgraph/pkg/pipeline"
)

// visualizeFlags holds visualize flags that are not pipeline options.
type visualizeFlags struct {
	output  string
	formats string
}

// visualizeCommand creates the visualize command for rendering a graph from
// a previously computed layout.
func (c *CLI) visualizeCommand() *cobra.Command {
	var flags visualizeFlags
	opts := pipeline.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "visualize <graph.json> <layout.json>",
		Short: "Render a graph from a computed layout",
		Long: `Render a graph from a computed layout.

The visualize command takes the graph.json and layout.json files written
by 'layout' and renders them. The layout already holds every position, so
this step only draws. The visualization type follows the layout unless
--type is given.

Scene edges report how many flights took each route. Pass the flights
file with --flights-file to fill in those counts; without it they are 0.

Without --output the result is written next to the layout as
<base>.<type>.<format>.`,
		Example: `  flightgraph layout flights.json -t nodelink --dim 2
  flightgraph visualize flights.graph.json flights.layout.json -f svg,png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("type") {
				opts.VizType = ""
			}
			err := c.runVisualize(cmd.Context(), args[0], args[1], opts, flags)
			if c.reportUserError(err) {
				return nil
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.FlightsFile, "flights-file", "", "flights used for scene edge counts")
	f.StringVarP(&opts.VizType, "type", "t", opts.VizType, "visualization type: scene, nodelink (default: from layout)")
	f.BoolVar(&opts.Detailed, "detailed", false, "label node-link airports with their connection count")
	f.StringVar(&opts.Title, "title", "", "scene title")
	f.StringVarP(&flags.formats, "format", "f", "", "output format(s), comma-separated")
	f.StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (multiple)")

	return cmd
}

// runVisualize loads the graph and layout and renders them.
func (c *CLI) runVisualize(ctx context.Context, graphPath, layoutPath string, opts pipeline.Options, flags visualizeFlags) error {
	g, err := graph.ReadGraphFile(graphPath)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", graphPath, err)
	}
	data, err := graph.ReadLayoutFile(layoutPath)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", layoutPath, err)
	}
	l, err := graph.ToLayout(data)
	if err != nil {
		return err
	}
	if err := checkPositions(g, l); err != nil {
		return err
	}

	if opts.VizType == "" {
		opts.VizType = data.VizType
	}
	opts.Dimensions = data.Dimensions
	opts.Seed = data.Seed
	opts.Formats = parseFormats(flags.formats)
	opts.Logger = c.Logger
	if err := opts.ValidateForRender(); err != nil {
		return err
	}

	var records []flights.Flight
	if opts.FlightsFile != "" {
		if records, err = flights.ReadFile(opts.FlightsFile); err != nil {
			return fmt.Errorf("load flights %s: %w", opts.FlightsFile, err)
		}
	} else if opts.IsScene() {
		c.Logger.Warn("no flights file given, scene edge counts are 0")
	}

	artifacts, err := c.newRunner().Render(ctx, g, l, records, opts)
	if err != nil {
		return err
	}

	output := flags.output
	if output == "" {
		base := strings.TrimSuffix(layoutPath, filepath.Ext(layoutPath))
		output = strings.TrimSuffix(base, ".layout") + "." + opts.VizType + "." + opts.Formats[0]
	}
	paths, err := writeArtifacts(artifacts, opts.Formats, output)
	if err != nil {
		return err
	}

	printSuccess(c.Out, "Rendered %s", opts.VizType)
	for _, p := range paths {
		printFile(c.Out, p)
	}
	printStats(c.Out, g.NodeCount(), g.EdgeCount(), len(records))
	return nil
}

// checkPositions reports an airport of g that l does not place.
func checkPositions(g *network.Graph, l *layout.Layout) error {
	for _, id := range g.Nodes() {
		if _, ok := l.Position(id); !ok {
			return errors.New(errors.ErrCodeInvalidInput, "layout has no position for airport %s", id)
		}
	}
	return nil
}
