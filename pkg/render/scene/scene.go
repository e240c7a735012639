package scene

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/flightgraph/pkg/errors"
	"github.com/matzehuels/flightgraph/pkg/flights"
	"github.com/matzehuels/flightgraph/pkg/layout"
	"github.com/matzehuels/flightgraph/pkg/network"
)

// DefaultTitle is the plot title used when Options.Title is empty.
const DefaultTitle = "Network graph of flights"

// Scene is a positioned graph with hover text, ready to be drawn.
type Scene struct {
	Dimensions int    `json:"dimensions"`
	RunID      string `json:"run_id,omitempty"`
	Nodes      []Node `json:"nodes"`
	Edges      []Edge `json:"edges"`
}

// Node is an airport marker.
type Node struct {
	ID          string  `json:"id"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Z           float64 `json:"z"`
	Connections int     `json:"connections"`
	Text        string  `json:"text"`
}

// Edge is a segment between two airport markers.
type Edge struct {
	From       string     `json:"from"`
	To         string     `json:"to"`
	Connecting string     `json:"connecting"`
	Flights    int        `json:"flights"`
	Text       string     `json:"text"`
	Start      [3]float64 `json:"start"`
	End        [3]float64 `json:"end"`
}

// Build assembles the scene for g laid out by l. Every airport of g must
// have a position in l. Flight counts on edges are taken from records in
// the edge's reported direction only.
func Build(g *network.Graph, l *layout.Layout, records []flights.Flight) (*Scene, error) {
	s := &Scene{
		Dimensions: l.Dimensions(),
		Nodes:      make([]Node, 0, g.NodeCount()),
		Edges:      make([]Edge, 0, g.EdgeCount()),
	}

	pos := make(map[string]layout.Point, g.NodeCount())
	for _, id := range g.Nodes() {
		p, ok := l.Position(id)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "airport %s has no position", id)
		}
		pos[id] = p
		k := g.Degree(id)
		s.Nodes = append(s.Nodes, Node{
			ID: id, X: p.X, Y: p.Y, Z: p.Z,
			Connections: k,
			Text:        NodeText(id, k),
		})
	}

	counts := flights.Counts(records)
	for _, e := range g.Edges() {
		n := counts[flights.Route{From: e.From, To: e.To}]
		a, b := pos[e.From], pos[e.To]
		s.Edges = append(s.Edges, Edge{
			From:       e.From,
			To:         e.To,
			Connecting: e.ConnectingFlight,
			Flights:    n,
			Text:       EdgeText(e.From, e.To, n),
			Start:      [3]float64{a.X, a.Y, a.Z},
			End:        [3]float64{b.X, b.Y, b.Z},
		})
	}
	return s, nil
}

// NodeText is the hover text of an airport marker.
func NodeText(id string, connections int) string {
	return fmt.Sprintf("%s: %d connections", id, connections)
}

// EdgeText is the hover text of an edge segment.
func EdgeText(from, to string, count int) string {
	return fmt.Sprintf("%s to %s: %d flights", from, to, count)
}

// WriteJSON writes the scene as indented JSON.
func WriteJSON(s *Scene, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}
