// Package layout computes seeded spring layouts for airport graphs.
//
// # Overview
//
// [Compute] places every airport of a [network.Graph] in two or three
// dimensions. The planar coordinates come from a Fruchterman-Reingold
// simulation: all nodes repel each other, connected nodes attract, and the
// step size cools linearly over a fixed number of iterations. The result is
// centered on the origin and rescaled so the largest absolute coordinate is
// 1. Connected airports tend to end up close together; isolated airports
// drift outward.
//
// A 3D layout reuses the planar coordinates and adds a z coordinate drawn
// uniformly from [-Scale, Scale]. The z value carries no structural meaning;
// it only spreads the scene so that it can be rotated.
//
// # Determinism
//
// Initial positions are drawn from a PCG source seeded with [Options.Seed],
// so the same graph and seed always give identical x/y coordinates. The z
// draws use [Options.Jitter] when it is set, or a second PCG stream derived
// from the seed otherwise:
//
//	l, err := layout.Compute(g, layout.Options{Dimensions: 3, Seed: 42})
//	p, _ := l.Position("AIRPORT0")
//	fmt.Println(p.X, p.Y, p.Z)
//
// A [Layout] is immutable once computed.
package layout
