package graph

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/flightgraph/pkg/errors"
	"github.com/matzehuels/flightgraph/pkg/flights"
	"github.com/matzehuels/flightgraph/pkg/network"
)

func buildNetwork(t *testing.T, airports []string, records []flights.Flight) *network.Graph {
	t.Helper()
	g, err := network.Build(airports, records)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

func TestMarshalGraph(t *testing.T) {
	tests := []struct {
		name      string
		airports  []string
		records   []flights.Flight
		wantNodes int
		wantEdges int
		check     func(t *testing.T, g Graph)
	}{
		{
			name:      "Empty",
			wantNodes: 0,
			wantEdges: 0,
		},
		{
			name:      "IsolatedAirports",
			airports:  []string{"A", "B", "C"},
			wantNodes: 3,
			wantEdges: 0,
		},
		{
			name:     "LastWriteWins",
			airports: []string{"A", "B", "C"},
			records: []flights.Flight{
				{Arrival: "A", Destination: "B", Connecting: "C"},
				{Arrival: "B", Destination: "A", Connecting: "B"},
			},
			wantNodes: 3,
			wantEdges: 1,
			check: func(t *testing.T, g Graph) {
				if g.Edges[0] != (Edge{From: "A", To: "B", Connecting: "B"}) {
					t.Errorf("edge = %+v, want A-B via B", g.Edges[0])
				}
				if g.Nodes[0].Degree != 1 || g.Nodes[2].Degree != 0 {
					t.Errorf("degrees = %+v", g.Nodes)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MarshalGraph(buildNetwork(t, tt.airports, tt.records))
			if err != nil {
				t.Fatalf("MarshalGraph: %v", err)
			}

			var g Graph
			if err := json.Unmarshal(data, &g); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(g.Nodes) != tt.wantNodes {
				t.Errorf("nodes = %d, want %d", len(g.Nodes), tt.wantNodes)
			}
			if len(g.Edges) != tt.wantEdges {
				t.Errorf("edges = %d, want %d", len(g.Edges), tt.wantEdges)
			}
			if tt.check != nil {
				tt.check(t, g)
			}
		})
	}
}

func TestGraphRoundTrip(t *testing.T) {
	airports, _ := flights.GenerateAirports(6)
	records, _ := flights.NewSampler(3).GenerateFlights(airports, 40)
	g := buildNetwork(t, airports, records)

	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		t.Fatalf("WriteGraph: %v", err)
	}
	got, err := ReadGraph(&buf)
	if err != nil {
		t.Fatalf("ReadGraph: %v", err)
	}
	if !g.Equal(got) {
		t.Error("round trip changed the graph")
	}
	if !slices.Equal(g.Edges(), got.Edges()) {
		t.Error("round trip changed the edge order")
	}
}

func TestGraphFileRoundTrip(t *testing.T) {
	g := buildNetwork(t, []string{"A", "B"}, []flights.Flight{{Arrival: "A", Destination: "B", Connecting: "A"}})
	path := filepath.Join(t.TempDir(), "graph.json")

	if err := WriteGraphFile(g, path); err != nil {
		t.Fatalf("WriteGraphFile: %v", err)
	}
	got, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile: %v", err)
	}
	if !g.Equal(got) {
		t.Error("file round trip changed the graph")
	}
}

func TestReadGraphErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Malformed", `{"nodes": [`},
		{"UnknownEndpoint", `{"nodes": [{"id": "A"}], "edges": [{"from": "A", "to": "X", "connecting": "A"}]}`},
		{"SelfLoop", `{"nodes": [{"id": "A"}], "edges": [{"from": "A", "to": "A", "connecting": "A"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadGraph(strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestReadGraphFileNotFound(t *testing.T) {
	_, err := ReadGraphFile(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}
