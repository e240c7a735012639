// Package pipeline provides the core flight graph pipeline.
//
// This package implements the complete sample → build → layout → render
// pipeline used by every CLI command. By centralizing this logic, all entry
// points apply the same defaults and validation.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Sample: Generate synthetic flights or read them from a JSON file
//  2. Build: Turn airports and flights into an undirected graph
//  3. Layout: Compute a seeded spring layout in 2 or 3 dimensions
//  4. Render: Generate output in various formats (SVG, PNG, PDF, DOT, HTML, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.DefaultOptions()
//	opts.Airports = 20
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	page := result.Artifacts["html"]
//
// Run individual stages:
//
//	airports, records, err := runner.Sample(ctx, opts)
//	g, err := runner.Build(ctx, airports, records)
//	l, err := runner.ComputeLayout(ctx, g, opts)
//	artifacts, err := runner.Render(ctx, g, l, records, opts)
package pipeline

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flightgraph/pkg/errors"
	"github.com/matzehuels/flightgraph/pkg/flights"
	"github.com/matzehuels/flightgraph/pkg/graph"
	"github.com/matzehuels/flightgraph/pkg/layout"
	"github.com/matzehuels/flightgraph/pkg/network"
	"github.com/matzehuels/flightgraph/pkg/render/scene"
)

// =============================================================================
// Default Values - Single Source of Truth for all commands
// =============================================================================

const (
	// DefaultAirports is the number of generated airports.
	DefaultAirports = 10

	// DefaultFlights is the number of sampled flights.
	DefaultFlights = 5000

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultDimensions is the default layout dimensionality.
	DefaultDimensions = 3

	// DefaultScale bounds the z coordinate of 3D layouts.
	DefaultScale = layout.DefaultScale

	// DefaultIterations is the number of spring simulation steps.
	DefaultIterations = layout.DefaultIterations
)

// DefaultVizType is the default visualization type.
const DefaultVizType = graph.VizTypeScene

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatDOT  = "dot"
	FormatHTML = "html"
	FormatJSON = "json"
)

// ValidFormats lists the supported output formats per visualization type.
// The first entry is the default.
var ValidFormats = map[string][]string{
	graph.VizTypeNodelink: {FormatSVG, FormatPNG, FormatPDF, FormatDOT, FormatJSON},
	graph.VizTypeScene:    {FormatHTML, FormatJSON},
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	graph.VizTypeNodelink: true,
	graph.VizTypeScene:    true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the flight graph pipeline.
//
// Airports and Flights are used as given; start from DefaultOptions to get
// the documented defaults. Zero values of the layout and render fields are
// replaced by defaults during validation.
type Options struct {
	// Sample options
	Airports    int      `json:"airports,omitempty"`     // Number of generated airports
	AirportIDs  []string `json:"airport_ids,omitempty"`  // Explicit airport list (overrides Airports)
	Flights     int      `json:"flights"`                // Number of sampled flights
	FlightsFile string   `json:"flights_file,omitempty"` // Read flights instead of sampling
	SampleSeed  uint64   `json:"sample_seed,omitempty"`  // Sampler seed (0 = use Seed)

	// Layout options
	VizType     string  `json:"viz_type,omitempty"`
	Dimensions  int     `json:"dimensions,omitempty"`
	Seed        uint64  `json:"seed,omitempty"`
	Scale       float64 `json:"scale,omitempty"`
	Iterations  int     `json:"iterations,omitempty"`
	RandomDepth bool    `json:"random_depth,omitempty"` // Draw z from a time-seeded source

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // Add connection counts to node-link labels
	Title    string   `json:"title,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
	Jitter *rand.Rand  `json:"-"` // Overrides the z source of 3D layouts

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// DefaultOptions returns options with every documented default applied.
func DefaultOptions() Options {
	return Options{
		Airports:   DefaultAirports,
		Flights:    DefaultFlights,
		VizType:    DefaultVizType,
		Dimensions: DefaultDimensions,
		Seed:       DefaultSeed,
		Scale:      DefaultScale,
		Iterations: DefaultIterations,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs and rendered output.
	RunID string

	// Airports is the node set the graph was built from.
	Airports []string

	// Flights are the sampled or loaded records.
	Flights []flights.Flight

	// Graph is the deduplicated connectivity graph.
	Graph *network.Graph

	// Layout holds the node positions.
	Layout *layout.Layout

	// Scene is set for scene visualizations.
	Scene *scene.Scene

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	FlightCount int
	NodeCount   int
	EdgeCount   int
	SampleTime  time.Duration
	BuildTime   time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid for a visualization type.
func ValidateFormat(vizType, format string) error {
	valid := ValidFormats[vizType]
	if !slices.Contains(valid, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format for %s: %q (must be one of: %s)",
			vizType, format, strings.Join(valid, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid for a visualization type.
func ValidateFormats(vizType string, formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(vizType, f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidVizType, "invalid viz type: %q (must be one of: nodelink, scene)", vizType)
	}
	return nil
}

// ValidateDimensions checks that dims is 2 or 3.
func ValidateDimensions(dims int) error {
	if dims != 2 && dims != 3 {
		return errors.New(errors.ErrCodeInvalidDimensions, "invalid dimensions: %d (must be 2 or 3)", dims)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForSample(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForSample checks the sampling inputs.
func (o *Options) ValidateForSample() error {
	o.setLoggerDefault()
	if o.FlightsFile != "" {
		return nil
	}
	if len(o.AirportIDs) > 0 {
		if err := errors.ValidateAirportIDs(o.AirportIDs); err != nil {
			return err
		}
	} else if err := errors.ValidateAirportCount(o.Airports); err != nil {
		return err
	}
	return errors.ValidateFlightCount(o.Flights)
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if o.Dimensions == 0 {
		o.Dimensions = DefaultDimensions
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Iterations == 0 {
		o.Iterations = DefaultIterations
	}
	o.setLoggerDefault()
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateDimensions(o.Dimensions); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", o.Scale)
	}
	if o.Iterations < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "iterations must be positive, got %d", o.Iterations)
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	o.SetLayoutDefaults()
	if len(o.Formats) == 0 {
		if valid := ValidFormats[o.VizType]; len(valid) > 0 {
			o.Formats = []string{valid[0]}
		}
	}
	if o.Title == "" {
		o.Title = scene.DefaultTitle
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	return ValidateFormats(o.VizType, o.Formats)
}

// IsScene returns true if this is an interactive scene visualization.
func (o *Options) IsScene() bool {
	return o.VizType == "" || o.VizType == graph.VizTypeScene
}

// IsNodelink returns true if this is a static node-link visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == graph.VizTypeNodelink
}

// EffectiveSampleSeed returns the seed used by the flight sampler.
func (o *Options) EffectiveSampleSeed() uint64 {
	if o.SampleSeed != 0 {
		return o.SampleSeed
	}
	if o.Seed != 0 {
		return o.Seed
	}
	return DefaultSeed
}

// LayoutOptions returns the options passed to layout.Compute.
// With RandomDepth and no explicit Jitter, z is drawn from a time-seeded source.
func (o *Options) LayoutOptions() layout.Options {
	jitter := o.Jitter
	if jitter == nil && o.RandomDepth {
		now := uint64(time.Now().UnixNano())
		jitter = rand.New(rand.NewPCG(now, now>>1))
	}
	return layout.Options{
		Dimensions: o.Dimensions,
		Seed:       o.Seed,
		Scale:      o.Scale,
		Iterations: o.Iterations,
		Jitter:     jitter,
	}
}

func (o *Options) setLoggerDefault() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// String summarizes the options for debug logging.
func (o Options) String() string {
	return fmt.Sprintf("viz=%s dims=%d seed=%d airports=%d flights=%d", o.VizType, o.Dimensions, o.Seed, o.Airports, o.Flights)
}
