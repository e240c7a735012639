package network

import (
	stderrors "errors"

	"github.com/matzehuels/flightgraph/pkg/errors"
	"github.com/matzehuels/flightgraph/pkg/flights"
)

// Build creates the connectivity graph for airports and records.
//
// Every airport becomes a node, including airports no record mentions.
// Each record connects its arrival and destination; when several records
// map onto the same unordered pair the last one's connecting airport wins.
//
// A record that would create a self-loop or that references an airport
// outside the list fails the whole build with ErrCodeInvalidInput.
func Build(airports []string, records []flights.Flight) (*Graph, error) {
	g := New()
	for _, id := range airports {
		if err := g.AddAirport(id); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "add airport %q", id)
		}
	}
	for i, f := range records {
		if err := g.Connect(f.Arrival, f.Destination, f.Connecting); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "flight %d (%s)", i, f)
		}
	}
	return g, nil
}

// IsSelfLoop reports whether err was caused by a self-loop record.
func IsSelfLoop(err error) bool { return stderrors.Is(err, ErrSelfLoop) }
