// Package flights generates synthetic flight records over a set of airports.
//
// # Overview
//
// A [Flight] is an (arrival, destination, connecting) triple. Arrival and
// destination are always distinct; the connecting airport is drawn
// independently and may equal either endpoint.
//
// # Sampling
//
// A [Sampler] owns its random source, so two samplers built from the same
// seed produce the same records:
//
//	airports, _ := flights.GenerateAirports(10)
//	s := flights.NewSampler(7)
//	records, err := s.GenerateFlights(airports, 5000)
//
// # Counting
//
// The graph built from these records collapses duplicate pairs into one
// edge, so per-pair flight counts are recomputed here from the raw records
// with [Count] and [Counts]. Counts are direction-sensitive.
//
// # Files
//
// Records can be written to and read from a JSON array with [WriteFile]
// and [ReadFile] so a sampled dataset can be rendered more than once.
package flights
