package pipeline

import (
	"slices"

	"github.com/matzehuels/flightgraph/pkg/flights"
)

// =============================================================================
// Sampling
// =============================================================================

// Sample produces the airport list and flight records for a run.
//
// With FlightsFile set, records are read from disk and the airport list is
// AirportIDs if given, otherwise every airport the records mention.
// Otherwise airports are AirportIDs or AIRPORT0..AIRPORT{n-1}, and Flights
// records are drawn with a sampler seeded by EffectiveSampleSeed.
func Sample(opts Options) ([]string, []flights.Flight, error) {
	if opts.FlightsFile != "" {
		records, err := flights.ReadFile(opts.FlightsFile)
		if err != nil {
			return nil, nil, err
		}
		if len(opts.AirportIDs) > 0 {
			return slices.Clone(opts.AirportIDs), records, nil
		}
		return flights.Airports(records), records, nil
	}

	airports := slices.Clone(opts.AirportIDs)
	if len(airports) == 0 {
		var err error
		if airports, err = flights.GenerateAirports(opts.Airports); err != nil {
			return nil, nil, err
		}
	}

	records, err := flights.NewSampler(opts.EffectiveSampleSeed()).GenerateFlights(airports, opts.Flights)
	if err != nil {
		return nil, nil, err
	}
	return airports, records, nil
}
