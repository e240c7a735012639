// Package network builds the undirected airport connectivity graph.
//
// # Overview
//
// [Build] turns an airport list and a list of flight records into a
// [Graph]. Airports are nodes; every record contributes the undirected edge
// {arrival, destination}. Records that hit the same pair in either
// direction collapse into a single edge whose ConnectingFlight attribute
// is overwritten, so the last record wins:
//
//	g, err := network.Build([]string{"A", "B", "C"}, []flights.Flight{
//	    {Arrival: "A", Destination: "B", Connecting: "C"},
//	    {Arrival: "B", Destination: "A", Connecting: "B"},
//	})
//	e, _ := g.Edge("A", "B") // e.ConnectingFlight == "B"
//
// The graph does not count flights per edge. Callers that need counts
// recompute them from the raw records with [flights.Count].
//
// # Invariants
//
//   - The node set is exactly the given airport set, in insertion order.
//   - Isolated airports are kept.
//   - No self-loops; at most n(n-1)/2 edges.
//
// # Concurrency
//
// A Graph is built once and then only read. Concurrent reads are safe;
// concurrent writes are not.
package network
