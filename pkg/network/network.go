package network

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidAirportID is returned by [Graph.AddAirport] when the
	// identifier is empty. All airports must have non-empty identifiers.
	ErrInvalidAirportID = errors.New("airport ID must not be empty")

	// ErrUnknownAirport is returned by [Graph.Connect] when either endpoint
	// was never added. The node set only ever contains the given airports.
	ErrUnknownAirport = errors.New("unknown airport")

	// ErrSelfLoop is returned by [Graph.Connect] when both endpoints are the
	// same airport. An undirected self-loop has no sensible rendering.
	ErrSelfLoop = errors.New("self-loop not allowed")
)

// Edge is an undirected connection between two airports.
//
// From is the endpoint that was added to the graph first; To is the other
// one. ConnectingFlight holds the connecting airport of the last flight
// record that mapped onto this pair.
type Edge struct {
	From             string
	To               string
	ConnectingFlight string
}

// pair is the canonical map key for an unordered airport pair.
type pair struct{ a, b string }

func key(x, y string) pair {
	if y < x {
		x, y = y, x
	}
	return pair{x, y}
}

// Graph is an undirected airport connectivity graph.
//
// Nodes keep insertion order. Parallel edges collapse into one edge whose
// attribute is overwritten on every Connect (last write wins).
//
// The zero value is not usable - use New or Build.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	order     []string
	index     map[string]int
	neighbors map[string][]string // airport -> neighbors in connection order
	edges     map[pair]string     // canonical pair -> connecting airport
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		index:     make(map[string]int),
		neighbors: make(map[string][]string),
		edges:     make(map[pair]string),
	}
}

// AddAirport adds a node. Adding an airport that already exists is a no-op,
// so the node set behaves as a set while keeping first-insertion order.
func (g *Graph) AddAirport(id string) error {
	if id == "" {
		return ErrInvalidAirportID
	}
	if _, exists := g.index[id]; exists {
		return nil
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	return nil
}

// Connect adds the undirected edge {from, to} or, if it exists, overwrites
// its connecting airport. Returns ErrSelfLoop when from == to and
// ErrUnknownAirport when either endpoint is not a node.
func (g *Graph) Connect(from, to, connecting string) error {
	if from == to {
		return ErrSelfLoop
	}
	if _, ok := g.index[from]; !ok {
		return ErrUnknownAirport
	}
	if _, ok := g.index[to]; !ok {
		return ErrUnknownAirport
	}
	k := key(from, to)
	if _, exists := g.edges[k]; !exists {
		g.neighbors[from] = append(g.neighbors[from], to)
		g.neighbors[to] = append(g.neighbors[to], from)
	}
	g.edges[k] = connecting
	return nil
}

// Nodes returns all airports in insertion order.
// The returned slice is a copy.
func (g *Graph) Nodes() []string { return slices.Clone(g.order) }

// HasAirport reports whether id is a node.
func (g *Graph) HasAirport(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Edges returns every edge exactly once in a deterministic order: airports
// are visited in insertion order and, for each, the neighbors that come
// later in that order are reported in the order they were first connected.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, u := range g.order {
		for _, v := range g.neighbors[u] {
			if g.index[v] < g.index[u] {
				continue
			}
			out = append(out, Edge{From: u, To: v, ConnectingFlight: g.edges[key(u, v)]})
		}
	}
	return out
}

// Edge returns the edge between a and b in either direction.
// The returned Edge is oriented as it appears in [Graph.Edges].
func (g *Graph) Edge(a, b string) (Edge, bool) {
	conn, ok := g.edges[key(a, b)]
	if !ok {
		return Edge{}, false
	}
	if g.index[b] < g.index[a] {
		a, b = b, a
	}
	return Edge{From: a, To: b, ConnectingFlight: conn}, true
}

// HasEdge reports whether a and b are connected.
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.edges[key(a, b)]
	return ok
}

// Neighbors returns the distinct airports connected to id, in connection
// order. Returns nil if the airport has no edges or doesn't exist.
func (g *Graph) Neighbors(id string) []string { return slices.Clone(g.neighbors[id]) }

// Degree returns the number of distinct neighbors of id.
func (g *Graph) Degree(id string) int { return len(g.neighbors[id]) }

// NodeCount returns the number of airports.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Equal reports whether two graphs have the same airports in the same
// order and the same edges with the same attributes.
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if !slices.Equal(g.order, other.order) || len(g.edges) != len(other.edges) {
		return false
	}
	for k, conn := range g.edges {
		if oc, ok := other.edges[k]; !ok || oc != conn {
			return false
		}
	}
	return true
}
