package graph

import (
	"github.com/matzehuels/flightgraph/pkg/flights"
	"github.com/matzehuels/flightgraph/pkg/network"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Visualization types.
const (
	VizTypeNodelink = "nodelink"
	VizTypeScene    = "scene"
)

// VizTypes lists every supported visualization type.
var VizTypes = []string{VizTypeNodelink, VizTypeScene}

// =============================================================================
// Graph - Airport Graph Serialization
// =============================================================================

// Graph is the canonical serialization format for airport graphs.
// Nodes and edges keep the order of the network graph they came from.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is a serialized airport.
type Node struct {
	ID     string `json:"id"`
	Degree int    `json:"degree"` // Distinct neighbors; informational, ignored on read
}

// Edge is a serialized undirected connection.
type Edge struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Connecting string `json:"connecting"`
}

// =============================================================================
// network.Graph ↔ Graph Conversion
// =============================================================================

// FromNetwork converts a network graph to its serialization format.
func FromNetwork(g *network.Graph) Graph {
	ids := g.Nodes()
	edges := g.Edges()
	out := Graph{
		Nodes: make([]Node, len(ids)),
		Edges: make([]Edge, len(edges)),
	}
	for i, id := range ids {
		out.Nodes[i] = Node{ID: id, Degree: g.Degree(id)}
	}
	for i, e := range edges {
		out.Edges[i] = Edge{From: e.From, To: e.To, Connecting: e.ConnectingFlight}
	}
	return out
}

// ToNetwork rebuilds a network graph. Each edge is replayed as a flight
// record, so the same validation as network.Build applies.
func ToNetwork(data Graph) (*network.Graph, error) {
	airports := make([]string, len(data.Nodes))
	for i, n := range data.Nodes {
		airports[i] = n.ID
	}
	records := make([]flights.Flight, len(data.Edges))
	for i, e := range data.Edges {
		records[i] = flights.Flight{Arrival: e.From, Destination: e.To, Connecting: e.Connecting}
	}
	return network.Build(airports, records)
}
