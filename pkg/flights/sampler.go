package flights

import (
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/flightgraph/pkg/errors"
)

// AirportPrefix is the name prefix used by GenerateAirports.
const AirportPrefix = "AIRPORT"

// GenerateAirports returns n airport identifiers AIRPORT0 .. AIRPORT{n-1}.
func GenerateAirports(n int) ([]string, error) {
	if n < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "airport count cannot be negative, got %d", n)
	}
	airports := make([]string, n)
	for i := range airports {
		airports[i] = fmt.Sprintf("%s%d", AirportPrefix, i)
	}
	return airports, nil
}

// Sampler draws random flights from its own random source.
// A Sampler is not safe for concurrent use.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler backed by a PCG source seeded with seed.
func NewSampler(seed uint64) *Sampler {
	return NewSamplerFrom(rand.New(rand.NewPCG(seed, seed^0x5eed)))
}

// NewSamplerFrom creates a sampler that draws from rng.
func NewSamplerFrom(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// GenerateFlights returns exactly count records over airports.
//
// Arrival and destination are drawn without replacement so they always
// differ; the connecting airport is drawn with replacement. Fewer than two
// airports, a repeated identifier or a negative count fails with
// ErrCodeInvalidInput.
func (s *Sampler) GenerateFlights(airports []string, count int) ([]Flight, error) {
	if err := errors.ValidateAirportIDs(airports); err != nil {
		return nil, err
	}
	if err := errors.ValidateFlightCount(count); err != nil {
		return nil, err
	}

	n := len(airports)
	records := make([]Flight, 0, count)
	for range count {
		i := s.rng.IntN(n)
		j := s.rng.IntN(n - 1)
		if j >= i {
			j++
		}
		records = append(records, Flight{
			Arrival:     airports[i],
			Destination: airports[j],
			Connecting:  airports[s.rng.IntN(n)],
		})
	}
	return records, nil
}
