package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/matzehuels/flightgraph/pkg/flights"
	"github.com/matzehuels/flightgraph/pkg/graph"
	"github.com/matzehuels/flightgraph/pkg/layout"
	"github.com/matzehuels/flightgraph/pkg/network"
	"github.com/matzehuels/flightgraph/pkg/render"
	"github.com/matzehuels/flightgraph/pkg/render/nodelink"
	"github.com/matzehuels/flightgraph/pkg/render/scene"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, g *network.Graph, l *layout.Layout, records []flights.Flight, opts Options, runID string) (map[string][]byte, error) {
	if opts.IsNodelink() {
		return RenderNodelink(ctx, g, l, opts, runID)
	}
	s, err := BuildScene(g, l, records, runID)
	if err != nil {
		return nil, err
	}
	return RenderScene(s, opts)
}

// BuildScene assembles the interactive scene tagged with runID.
func BuildScene(g *network.Graph, l *layout.Layout, records []flights.Flight, runID string) (*scene.Scene, error) {
	s, err := scene.Build(g, l, records)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	s.RunID = runID
	return s, nil
}

// RenderScene generates scene outputs.
func RenderScene(s *scene.Scene, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatHTML:
			data, err = scene.RenderHTML(s, scene.Options{Title: opts.Title})
		case FormatJSON:
			var buf bytes.Buffer
			err = scene.WriteJSON(s, &buf)
			data = buf.Bytes()
		default:
			return nil, fmt.Errorf("unsupported scene format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// RenderNodelink generates node-link outputs. The SVG is rendered at most
// once and shared by the svg, png and pdf formats.
func RenderNodelink(ctx context.Context, g *network.Graph, l *layout.Layout, opts Options, runID string) (map[string][]byte, error) {
	dot := nodelink.ToDOT(g, l, nodelink.Options{Detailed: opts.Detailed})

	var svg []byte
	getSVG := func() ([]byte, error) {
		if svg != nil {
			return svg, nil
		}
		var err error
		svg, err = nodelink.RenderSVG(ctx, dot)
		return svg, err
	}

	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			data, err = getSVG()
		case FormatPNG:
			if data, err = getSVG(); err == nil {
				data, err = render.ToPNG(ctx, data, render.DefaultPNGScale)
			}
		case FormatPDF:
			if data, err = getSVG(); err == nil {
				data, err = render.ToPDF(ctx, data)
			}
		case FormatJSON:
			data, err = graph.MarshalLayout(ExportLayout(l, opts, runID))
		default:
			return nil, fmt.Errorf("unsupported nodelink format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
