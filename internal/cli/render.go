package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flightgraph/pkg/config"
	"github.com/matzehuels/flightgraph/pkg/observability"
	"github.com/matzehuels/flightgraph/pkg/pipeline"
)

// renderFlags holds render flags that are not pipeline options.
type renderFlags struct {
	config  string // optional TOML or YAML config file
	output  string // output file (single format) or base path
	formats string // comma-separated output formats
	serve   string // listen address; empty writes files instead
}

// renderCommand creates the render command, which runs the whole pipeline.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags
	opts := pipeline.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Sample flights and render the airport network",
		Long: `Sample flights, build the airport network and render it.

Without --airports and --flights (or a config file providing them) the
counts are asked for interactively when running in a terminal, or read as
two lines from redirected standard input.

The scene type (default) writes an interactive 3D HTML page; the nodelink
type writes a static diagram drawn with Graphviz. Use --serve to serve the
result over HTTP instead of writing files.`,
		Example: `  flightgraph render
  flightgraph render --airports 20 --flights 800 -o network.html
  flightgraph render -t nodelink --dim 2 -f svg,png
  flightgraph render --airport JFK --airport LAX --airport ORD --flights 50
  flightgraph render --serve :8080
  printf '20\n800\n' | flightgraph render`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := c.runRender(cmd.Context(), cmd, opts, flags)
			if c.reportUserError(err) {
				return nil
			}
			return err
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.Airports, "airports", opts.Airports, "number of generated airports")
	f.IntVar(&opts.Flights, "flights", opts.Flights, "number of sampled flights")
	f.StringVar(&opts.FlightsFile, "flights-file", "", "read flights from a JSON file instead of sampling")
	f.StringArrayVar(&opts.AirportIDs, "airport", nil, "explicit airport identifier (repeatable, overrides --airports)")
	f.Uint64Var(&opts.SampleSeed, "sample-seed", 0, "seed for flight sampling (default: --seed)")
	f.StringVarP(&opts.VizType, "type", "t", opts.VizType, "visualization type: scene (default), nodelink")
	f.IntVar(&opts.Dimensions, "dim", opts.Dimensions, "layout dimensions: 2 or 3")
	f.Uint64Var(&opts.Seed, "seed", opts.Seed, "layout seed")
	f.Float64Var(&opts.Scale, "scale", opts.Scale, "layout scale")
	f.IntVar(&opts.Iterations, "iterations", opts.Iterations, "spring layout iterations")
	f.BoolVar(&opts.RandomDepth, "random-depth", false, "draw 3D depth from a time-seeded source")
	f.BoolVar(&opts.Detailed, "detailed", false, "label node-link airports with their connection count")
	f.StringVar(&opts.Title, "title", "", "scene title")
	f.StringVarP(&flags.formats, "format", "f", "", "output format(s), comma-separated: html, json (scene); svg, png, pdf, dot, json (nodelink)")
	f.StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (multiple)")
	f.StringVar(&flags.serve, "serve", "", "serve the result on this address (e.g. :8080) until interrupted")
	f.StringVar(&flags.config, "config", "", "config file (.toml, .yaml)")

	return cmd
}

// runRender resolves options, runs the pipeline and writes or serves the
// result.
func (c *CLI) runRender(ctx context.Context, cmd *cobra.Command, opts pipeline.Options, flags renderFlags) error {
	changed := cmd.Flags().Changed
	if fs := parseFormats(flags.formats); len(fs) > 0 {
		opts.Formats = fs
	}

	countsGiven := changed("airports") || changed("flights")
	if flags.config != "" {
		cfg, err := config.Load(flags.config)
		if err != nil {
			return err
		}
		cfg.ApplyTo(&opts, changed)
		if cfg.Output != "" && !changed("output") {
			flags.output = cfg.Output
		}
		if cfg.Serve != "" && !changed("serve") {
			flags.serve = cfg.Serve
		}
		countsGiven = countsGiven || cfg.Airports != nil || cfg.Flights != nil
		c.Logger.Debug("loaded config", "path", flags.config)
	}

	needCounts := !countsGiven && opts.FlightsFile == "" && len(opts.AirportIDs) == 0
	if needCounts {
		airports, n, ok, err := c.readCounts(ctx)
		if err != nil {
			return err
		}
		if ok {
			opts.Airports, opts.Flights = airports, n
		}
	}

	opts.Logger = c.Logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	var metrics *observability.PrometheusHooks
	if flags.serve != "" {
		metrics = observability.NewPrometheusHooks()
		observability.SetPipelineHooks(metrics)
		observability.SetServerHooks(metrics)
		defer observability.Reset()
	}

	result, err := c.execute(ctx, opts)
	if err != nil {
		return err
	}

	if flags.serve != "" {
		s, err := newSite(ctx, result, opts, metrics.Handler())
		if err != nil {
			return fmt.Errorf("prepare site: %w", err)
		}
		printSuccess(c.Out, "Serving %s", opts.VizType)
		printKeyValue(c.Out, "run", result.RunID)
		printStats(c.Out, result.Stats.NodeCount, result.Stats.EdgeCount, result.Stats.FlightCount)
		return c.serve(ctx, flags.serve, s, nil)
	}

	paths, err := writeArtifacts(result.Artifacts, opts.Formats, flags.output)
	if err != nil {
		return err
	}

	printSuccess(c.Out, "Rendered %s", opts.VizType)
	for _, p := range paths {
		printFile(c.Out, p)
	}
	printStats(c.Out, result.Stats.NodeCount, result.Stats.EdgeCount, result.Stats.FlightCount)
	if opts.IsScene() && slices.Contains(opts.Formats, pipeline.FormatHTML) {
		printNewline(c.Out)
		printNextStep(c.Out, "Serve interactively", appName+" render --serve :8080")
	}
	return nil
}

// execute runs the pipeline behind a spinner.
func (c *CLI) execute(ctx context.Context, opts pipeline.Options) (*pipeline.Result, error) {
	prog := newProgress(c.Logger)
	var spinner *Spinner
	if c.interactive() {
		spinner = newSpinner(ctx, c.Out, "Rendering flight network...")
		spinner.Start()
	}

	result, err := c.newRunner().Execute(ctx, opts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Rendered %d airports and %d edges", result.Stats.NodeCount, result.Stats.EdgeCount))
	return result, nil
}

// writeArtifacts writes each requested format and returns the paths in
// format order. A single format is written to output as given; several
// formats share output's base name with per-format extensions.
func writeArtifacts(artifacts map[string][]byte, formats []string, output string) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := output
		if path == "" || len(formats) > 1 {
			path = basePath(output) + "." + format
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// basePath strips a known format extension from output, or returns the
// application name when output is empty.
func basePath(output string) string {
	if output == "" {
		return appName
	}
	ext := filepath.Ext(output)
	if isFormat(strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func isFormat(s string) bool {
	for _, formats := range pipeline.ValidFormats {
		if slices.Contains(formats, s) {
			return true
		}
	}
	return false
}
