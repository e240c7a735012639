// Package graph provides the JSON wire format for airport graphs and layouts.
//
// This package defines the canonical serialization of flightgraph data, used
// for JSON output files and the endpoints of the scene server.
//
// # Architecture
//
// The package sits at the serialization boundary between internal
// representations and external formats:
//
//   - [Graph], [Layout]: serialization types (this package)
//   - pkg/network.Graph: internal connectivity graph
//   - pkg/layout.Layout: internal node positions
//
// Use [FromNetwork]/[ToNetwork] and [FromLayout]/[ToLayout] to convert
// between them.
//
// # Constants
//
// This package is the single source of truth for visualization constants:
//
//	graph.VizTypeNodelink   // "nodelink"
//	graph.VizTypeScene      // "scene"
//
// # Graph Serialization
//
// Graphs use a simple node-link JSON format. Edges carry the connecting
// airport of the last flight that mapped onto them:
//
//	{
//	  "nodes": [{"id": "A", "degree": 1}, {"id": "B", "degree": 1}],
//	  "edges": [{"from": "A", "to": "B", "connecting": "C"}]
//	}
//
// Common operations:
//
//	g, _ := graph.ReadGraphFile("graph.json")    // File → network.Graph
//	graph.WriteGraphFile(g, "output.json")       // network.Graph → File
//	data, _ := graph.MarshalGraph(g)             // network.Graph → []byte
//
// # Layout Serialization
//
// Layouts list one position per airport, in graph order:
//
//	{
//	  "viz_type": "scene",
//	  "dimensions": 3,
//	  "seed": 42,
//	  "positions": [{"id": "A", "x": 0.5, "y": -1, "z": 0.25}]
//	}
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
package graph
