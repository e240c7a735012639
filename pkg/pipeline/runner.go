package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/flightgraph/pkg/flights"
	"github.com/matzehuels/flightgraph/pkg/layout"
	"github.com/matzehuels/flightgraph/pkg/network"
	"github.com/matzehuels/flightgraph/pkg/observability"
)

// Runner encapsulates pipeline execution with logging and observability hooks.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete sample → build → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{RunID: uuid.NewString()}
	logger := r.Logger.With("run", result.RunID)
	logger.Debug("starting pipeline", "options", opts.String())

	// Stage 1: Sample
	start := time.Now()
	airports, records, err := r.Sample(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("sample: %w", err)
	}
	result.Airports, result.Flights = airports, records
	result.Stats.SampleTime = time.Since(start)
	result.Stats.FlightCount = len(records)

	logger.Info("sampled flights",
		"airports", len(airports),
		"flights", len(records),
		"duration", result.Stats.SampleTime)

	// Stage 2: Build
	start = time.Now()
	g, err := r.Build(ctx, airports, records)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Graph = g
	result.Stats.BuildTime = time.Since(start)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()

	logger.Info("built graph",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.BuildTime)

	// Stage 3: Layout
	start = time.Now()
	l, err := r.ComputeLayout(ctx, g, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(start)

	logger.Info("computed layout",
		"dimensions", l.Dimensions(),
		"seed", opts.Seed,
		"duration", result.Stats.LayoutTime)

	// Stage 4: Render
	start = time.Now()
	if opts.IsScene() {
		if result.Scene, err = BuildScene(g, l, records, result.RunID); err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
	}
	artifacts, err := r.render(ctx, func() (map[string][]byte, error) {
		if result.Scene != nil {
			return RenderScene(result.Scene, opts)
		}
		return RenderNodelink(ctx, g, l, opts, result.RunID)
	})
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(start)

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Sample runs the sampling stage.
func (r *Runner) Sample(ctx context.Context, opts Options) ([]string, []flights.Flight, error) {
	if err := opts.ValidateForSample(); err != nil {
		return nil, nil, err
	}
	var airports []string
	var records []flights.Flight
	err := r.stage(ctx, observability.StageSample, func() error {
		var err error
		airports, records, err = Sample(opts)
		return err
	})
	return airports, records, err
}

// Build runs the graph construction stage.
func (r *Runner) Build(ctx context.Context, airports []string, records []flights.Flight) (*network.Graph, error) {
	var g *network.Graph
	err := r.stage(ctx, observability.StageBuild, func() error {
		var err error
		g, err = network.Build(airports, records)
		return err
	})
	if err != nil {
		return nil, err
	}
	observability.Pipeline().OnGraphBuilt(ctx, g.NodeCount(), g.EdgeCount())
	return g, nil
}

// ComputeLayout runs the layout stage.
func (r *Runner) ComputeLayout(ctx context.Context, g *network.Graph, opts Options) (*layout.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, err
	}
	var l *layout.Layout
	err := r.stage(ctx, observability.StageLayout, func() error {
		var err error
		l, err = GenerateLayout(g, opts)
		return err
	})
	return l, err
}

// Render runs the render stage on an existing graph and layout.
func (r *Runner) Render(ctx context.Context, g *network.Graph, l *layout.Layout, records []flights.Flight, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	return r.render(ctx, func() (map[string][]byte, error) {
		return Render(ctx, g, l, records, opts, "")
	})
}

func (r *Runner) render(ctx context.Context, fn func() (map[string][]byte, error)) (map[string][]byte, error) {
	var artifacts map[string][]byte
	err := r.stage(ctx, observability.StageRender, func() error {
		var err error
		artifacts, err = fn()
		return err
	})
	return artifacts, err
}

// stage wraps fn with observability hooks. Context cancellation is checked
// before the stage starts; stages themselves are not interruptible.
func (r *Runner) stage(ctx context.Context, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, name)
	start := time.Now()
	err := fn()
	hooks.OnStageComplete(ctx, name, time.Since(start), err)
	return err
}
