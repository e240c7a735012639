package flights

import "fmt"

// Flight is a single synthetic flight record.
type Flight struct {
	Arrival     string `json:"arrival"`
	Destination string `json:"destination"`
	Connecting  string `json:"connecting"`
}

// String formats the record as "ARR->DST via CONN".
func (f Flight) String() string {
	return fmt.Sprintf("%s->%s via %s", f.Arrival, f.Destination, f.Connecting)
}

// Route identifies a directed (arrival, destination) pair.
type Route struct {
	From string
	To   string
}

// Count returns how many records fly from -> to in that direction.
func Count(records []Flight, from, to string) int {
	n := 0
	for _, f := range records {
		if f.Arrival == from && f.Destination == to {
			n++
		}
	}
	return n
}

// Counts returns the number of records per directed route.
// Routes that never occur are absent from the map.
func Counts(records []Flight) map[Route]int {
	counts := make(map[Route]int)
	for _, f := range records {
		counts[Route{From: f.Arrival, To: f.Destination}]++
	}
	return counts
}
