package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/flightgraph/pkg/layout"
	"github.com/matzehuels/flightgraph/pkg/network"
)

// DefaultSpread is the figure half-width in inches used when Options.Spread is zero.
const DefaultSpread = 4.0

// Default colors.
const (
	EdgeColor      = "gray"
	EdgeLabelColor = "red"
	NodeColor      = "lightblue"
)

// Options configures node-link figure generation.
type Options struct {
	// Detailed adds the number of connections to node labels.
	Detailed bool

	// Spread maps layout units to inches. Layout coordinates lie in [-1, 1],
	// so the figure is roughly 2*Spread inches wide.
	Spread float64
}

// ToDOT converts a graph and its layout to Graphviz DOT format.
// Airports missing from the layout are left for neato to place.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(g *network.Graph, l *layout.Layout, opts Options) string {
	spread := opts.Spread
	if spread <= 0 {
		spread = DefaultSpread
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fillcolor=%s, fontsize=10, width=0.3, fixedsize=false];\n", NodeColor)
	fmt.Fprintf(&buf, "  edge [color=%s, fontcolor=%s, fontsize=9];\n", EdgeColor, EdgeLabelColor)
	buf.WriteString("\n")

	for _, id := range g.Nodes() {
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(g, id, opts.Detailed))}
		if p, ok := l.Position(id); ok {
			attrs = append(attrs, fmt.Sprintf("pos=\"%s,%s!\"", fmtCoord(p.X*spread), fmtCoord(p.Y*spread)))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -- %q [label=%q];\n", e.From, e.To, e.ConnectingFlight)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(g *network.Graph, id string, detailed bool) string {
	if !detailed {
		return id
	}
	return fmt.Sprintf("%s\n%d connections", id, g.Degree(id))
}

func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// RenderSVG renders a DOT graph to SVG using the Graphviz neato engine.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz <svg> tag with one whose viewBox
// starts at the origin and whose size matches the viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
