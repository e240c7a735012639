// Package nodelink renders airport graphs as static 2D node-link figures.
//
// # Overview
//
// Airports are drawn as labeled circles at the positions computed by
// pkg/layout; every edge is a gray line labeled in red with the connecting
// airport of the last flight on that route.
//
// # Usage
//
// Convert a graph and layout to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(g, l, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, convert the SVG with pkg/render:
//
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// # DOT Format
//
// The [ToDOT] function produces undirected Graphviz DOT source with
// layout=neato and pinned positions (pos="x,y!"), so Graphviz only routes
// edges and places labels. A 3D layout is projected onto its x/y plane.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
