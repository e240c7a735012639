package network

import (
	"slices"
	"testing"

	"github.com/matzehuels/flightgraph/pkg/errors"
	"github.com/matzehuels/flightgraph/pkg/flights"
)

func TestBuildScenario(t *testing.T) {
	g, err := Build([]string{"A", "B", "C"}, []flights.Flight{
		{Arrival: "A", Destination: "B", Connecting: "C"},
		{Arrival: "A", Destination: "B", Connecting: "B"},
		{Arrival: "B", Destination: "C", Connecting: "A"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := g.Nodes(); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Errorf("Nodes = %v, want [A B C]", got)
	}

	want := []Edge{
		{From: "A", To: "B", ConnectingFlight: "B"},
		{From: "B", To: "C", ConnectingFlight: "A"},
	}
	if got := g.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges = %v, want %v", got, want)
	}
}

func TestBuildLastWriteWinsAcrossDirections(t *testing.T) {
	g, err := Build([]string{"A", "B"}, []flights.Flight{
		{Arrival: "A", Destination: "B", Connecting: "A"},
		{Arrival: "B", Destination: "A", Connecting: "B"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount = %d, want 1", g.EdgeCount())
	}
	e, ok := g.Edge("B", "A")
	if !ok {
		t.Fatal("edge B-A missing")
	}
	if e.From != "A" || e.To != "B" || e.ConnectingFlight != "B" {
		t.Errorf("Edge = %+v, want A-B via B", e)
	}
}

func TestBuildIsolatedAirports(t *testing.T) {
	g, err := Build([]string{"A", "B", "C", "D"}, []flights.Flight{
		{Arrival: "A", Destination: "B", Connecting: "A"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.NodeCount() != 4 {
		t.Errorf("NodeCount = %d, want 4", g.NodeCount())
	}
	for _, id := range []string{"C", "D"} {
		if !g.HasAirport(id) {
			t.Errorf("isolated airport %s dropped", id)
		}
		if g.Degree(id) != 0 {
			t.Errorf("Degree(%s) = %d, want 0", id, g.Degree(id))
		}
	}
}

func TestBuildDuplicateAirports(t *testing.T) {
	g, err := Build([]string{"A", "B", "A"}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := g.Nodes(); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("Nodes = %v, want [A B]", got)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		airports []string
		records  []flights.Flight
		selfLoop bool
	}{
		{
			name:     "EmptyAirportID",
			airports: []string{"A", ""},
		},
		{
			name:     "SelfLoop",
			airports: []string{"A", "B"},
			records:  []flights.Flight{{Arrival: "A", Destination: "A", Connecting: "B"}},
			selfLoop: true,
		},
		{
			name:     "UnknownArrival",
			airports: []string{"A", "B"},
			records:  []flights.Flight{{Arrival: "X", Destination: "A", Connecting: "B"}},
		},
		{
			name:     "UnknownDestination",
			airports: []string{"A", "B"},
			records:  []flights.Flight{{Arrival: "A", Destination: "X", Connecting: "B"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.airports, tt.records)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Fatalf("error = %v, want INVALID_INPUT", err)
			}
			if IsSelfLoop(err) != tt.selfLoop {
				t.Errorf("IsSelfLoop = %v, want %v", IsSelfLoop(err), tt.selfLoop)
			}
		})
	}
}

func TestBuildIdempotent(t *testing.T) {
	airports, _ := flights.GenerateAirports(8)
	records, _ := flights.NewSampler(5).GenerateFlights(airports, 500)

	g1, err := Build(airports, records)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g2, err := Build(airports, records)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !g1.Equal(g2) {
		t.Error("identical inputs produced different graphs")
	}
	if !slices.Equal(g1.Edges(), g2.Edges()) {
		t.Error("identical inputs produced different edge order")
	}
}

func TestBuildTwoAirportsManyFlights(t *testing.T) {
	airports := []string{"A", "B"}
	records, err := flights.NewSampler(11).GenerateFlights(airports, 5000)
	if err != nil {
		t.Fatalf("GenerateFlights: %v", err)
	}
	g, err := Build(airports, records)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.EdgeCount() > 1 {
		t.Fatalf("EdgeCount = %d, want at most 1", g.EdgeCount())
	}
	e, ok := g.Edge("A", "B")
	if !ok {
		t.Fatal("edge A-B missing")
	}
	if last := records[len(records)-1].Connecting; e.ConnectingFlight != last {
		t.Errorf("ConnectingFlight = %s, want last record's %s", e.ConnectingFlight, last)
	}
}

func TestNeighborsAndDegree(t *testing.T) {
	g, _ := Build([]string{"A", "B", "C"}, []flights.Flight{
		{Arrival: "A", Destination: "B", Connecting: "C"},
		{Arrival: "C", Destination: "A", Connecting: "B"},
		{Arrival: "B", Destination: "A", Connecting: "C"},
	})

	if got := g.Neighbors("A"); !slices.Equal(got, []string{"B", "C"}) {
		t.Errorf("Neighbors(A) = %v, want [B C]", got)
	}
	if g.Degree("A") != 2 || g.Degree("B") != 1 || g.Degree("C") != 1 {
		t.Errorf("Degrees = %d %d %d, want 2 1 1", g.Degree("A"), g.Degree("B"), g.Degree("C"))
	}
	if g.Neighbors("missing") != nil {
		t.Error("Neighbors of unknown airport should be nil")
	}
}

func TestEdgesOrientation(t *testing.T) {
	// C is connected before B, but B precedes C in airport order.
	g, _ := Build([]string{"A", "B", "C"}, []flights.Flight{
		{Arrival: "C", Destination: "B", Connecting: "A"},
		{Arrival: "C", Destination: "A", Connecting: "B"},
	})
	want := []Edge{
		{From: "A", To: "C", ConnectingFlight: "B"},
		{From: "B", To: "C", ConnectingFlight: "A"},
	}
	if got := g.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges = %v, want %v", got, want)
	}
}

func TestNodesReturnsCopy(t *testing.T) {
	g, _ := Build([]string{"A", "B"}, nil)
	nodes := g.Nodes()
	nodes[0] = "Z"
	if g.Nodes()[0] != "A" {
		t.Error("modifying Nodes() result mutated the graph")
	}
}

func TestEqual(t *testing.T) {
	a, _ := Build([]string{"A", "B"}, []flights.Flight{{Arrival: "A", Destination: "B", Connecting: "A"}})
	b, _ := Build([]string{"A", "B"}, []flights.Flight{{Arrival: "B", Destination: "A", Connecting: "A"}})
	c, _ := Build([]string{"A", "B"}, []flights.Flight{{Arrival: "A", Destination: "B", Connecting: "B"}})
	d, _ := Build([]string{"B", "A"}, []flights.Flight{{Arrival: "A", Destination: "B", Connecting: "A"}})

	if !a.Equal(b) {
		t.Error("direction of the record should not matter")
	}
	if a.Equal(c) {
		t.Error("different attributes should not be equal")
	}
	if a.Equal(d) {
		t.Error("different node order should not be equal")
	}
	var nilGraph *Graph
	if a.Equal(nilGraph) || !nilGraph.Equal(nil) {
		t.Error("nil handling is wrong")
	}
}
