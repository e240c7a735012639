package pipeline

import (
	"github.com/matzehuels/flightgraph/pkg/graph"
	"github.com/matzehuels/flightgraph/pkg/layout"
	"github.com/matzehuels/flightgraph/pkg/network"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout computes node positions for g.
// Node-link figures are flat, so a nodelink run ignores the z coordinate
// even when Dimensions is 3.
func GenerateLayout(g *network.Graph, opts Options) (*layout.Layout, error) {
	return layout.Compute(g, opts.LayoutOptions())
}

// ExportLayout converts a computed layout to its wire format.
func ExportLayout(l *layout.Layout, opts Options, runID string) graph.Layout {
	wire := graph.FromLayout(l, opts.VizType, opts.Seed)
	wire.RunID = runID
	return wire
}
