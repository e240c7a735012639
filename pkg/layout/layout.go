package layout

import (
	"maps"
	"slices"

	"github.com/matzehuels/flightgraph/pkg/errors"
)

// Point is a node position. Z is zero for 2D layouts.
type Point struct {
	X, Y, Z float64
}

// Coords returns the first dims coordinates of p.
func (p Point) Coords(dims int) []float64 {
	if dims == 2 {
		return []float64{p.X, p.Y}
	}
	return []float64{p.X, p.Y, p.Z}
}

// Layout maps every airport of a graph to a position.
// It is created once by Compute or FromPoints and never modified afterward.
type Layout struct {
	dims  int
	order []string
	pos   map[string]Point
}

// FromPoints creates a layout from explicit positions. ids and points are
// parallel slices; ids must be unique.
func FromPoints(dims int, ids []string, points []Point) (*Layout, error) {
	if err := ValidateDimensions(dims); err != nil {
		return nil, err
	}
	if len(ids) != len(points) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "layout has %d ids but %d points", len(ids), len(points))
	}
	l := &Layout{dims: dims, order: slices.Clone(ids), pos: make(map[string]Point, len(ids))}
	for i, id := range ids {
		if _, dup := l.pos[id]; dup {
			return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate position for %q", id)
		}
		p := points[i]
		if dims == 2 {
			p.Z = 0
		}
		l.pos[id] = p
	}
	return l, nil
}

// Dimensions returns 2 or 3.
func (l *Layout) Dimensions() int { return l.dims }

// Len returns the number of positioned nodes.
func (l *Layout) Len() int { return len(l.order) }

// Nodes returns the positioned airports in graph order.
func (l *Layout) Nodes() []string { return slices.Clone(l.order) }

// Position returns the position of id.
func (l *Layout) Position(id string) (Point, bool) {
	p, ok := l.pos[id]
	return p, ok
}

// Positions returns a copy of all positions.
func (l *Layout) Positions() map[string]Point { return maps.Clone(l.pos) }

// Bounds returns the per-axis minimum and maximum over all positions.
// Both are zero for an empty layout.
func (l *Layout) Bounds() (lo, hi Point) {
	for i, id := range l.order {
		p := l.pos[id]
		if i == 0 {
			lo, hi = p, p
			continue
		}
		lo = Point{min(lo.X, p.X), min(lo.Y, p.Y), min(lo.Z, p.Z)}
		hi = Point{max(hi.X, p.X), max(hi.Y, p.Y), max(hi.Z, p.Z)}
	}
	return lo, hi
}

// ValidateDimensions checks that dims is 2 or 3.
func ValidateDimensions(dims int) error {
	if dims != 2 && dims != 3 {
		return errors.New(errors.ErrCodeInvalidInput, "dimensions must be 2 or 3, got %d", dims)
	}
	return nil
}
