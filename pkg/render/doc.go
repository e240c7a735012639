// Package render provides visualization rendering for airport graphs.
//
// # Overview
//
// This package contains the rendering stage that turns a positioned airport
// graph into a visual output. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Static 2D node-link figures (in [nodelink] subpackage)
//   - Interactive 3D scenes (in [scene] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// # Node-Link Figures
//
// The [nodelink] subpackage draws the graph with Graphviz, pinning every
// airport at its layout position. Edges are labeled with the connecting
// airport.
//
// # Interactive Scenes
//
// The [scene] subpackage produces a self-contained HTML page with a
// rotatable 3D plot and hover text for edges and airports.
//
// [nodelink]: github.com/matzehuels/flightgraph/pkg/render/nodelink
// [scene]: github.com/matzehuels/flightgraph/pkg/render/scene
package render
