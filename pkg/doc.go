// Package pkg provides the core libraries for flightgraph.
//
// # Overview
//
// Flightgraph turns a synthetic flight dataset into an airport connectivity
// graph and draws it. The pkg directory is organized into three areas:
//
//  1. Domain logic ([flights], [network], [layout], [render])
//  2. Orchestration and serialization ([pipeline], [graph], [config])
//  3. Shared infrastructure ([errors], [observability], [buildinfo])
//
// # Architecture
//
// The data flow through flightgraph:
//
//	Airports + flight count
//	         ↓
//	    [flights] package (sample records)
//	         ↓
//	    [network] package (deduplicated undirected graph)
//	         ↓
//	    [layout] package (seeded spring layout, 2D or 3D)
//	         ↓
//	    [render] package (node-link figure or 3D scene)
//	         ↓
//	    SVG/PNG/PDF/DOT/HTML/JSON output
//
// # Quick Start
//
// Run the whole pipeline:
//
//	opts := pipeline.DefaultOptions()
//	opts.Airports = 20
//	result, err := pipeline.NewRunner(logger).Execute(ctx, opts)
//	page := result.Artifacts["html"]
//
// Or use the stages directly:
//
//	airports, _ := flights.GenerateAirports(10)
//	records, _ := flights.NewSampler(42).GenerateFlights(airports, 5000)
//	g, _ := network.Build(airports, records)
//	l, _ := layout.Compute(g, layout.Options{Dimensions: 3, Seed: 42})
//	s, _ := scene.Build(g, l, records)
//	html, _ := scene.RenderHTML(s, scene.Options{})
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/network/...  # Specific package
//	go test -run Example       # Examples only
//
// [flights]: https://pkg.go.dev/github.com/matzehuels/flightgraph/pkg/flights
// [network]: https://pkg.go.dev/github.com/matzehuels/flightgraph/pkg/network
// [layout]: https://pkg.go.dev/github.com/matzehuels/flightgraph/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/flightgraph/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/flightgraph/pkg/pipeline
// [graph]: https://pkg.go.dev/github.com/matzehuels/flightgraph/pkg/graph
// [config]: https://pkg.go.dev/github.com/matzehuels/flightgraph/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/flightgraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/flightgraph/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/flightgraph/pkg/buildinfo
package pkg
