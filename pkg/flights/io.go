package flights

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/flightgraph/pkg/errors"
)

// Write encodes records as an indented JSON array.
func Write(records []Flight, w io.Writer) error {
	if records == nil {
		records = []Flight{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes records to a JSON file.
func WriteFile(records []Flight, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(records, f)
}

// Read decodes a JSON array of records and checks that every record has
// distinct, non-empty endpoints.
func Read(r io.Reader) ([]Flight, error) {
	var records []Flight
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode flights")
	}
	for i, f := range records {
		if f.Arrival == "" || f.Destination == "" || f.Connecting == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "flight %d: airports must not be empty", i)
		}
		if f.Arrival == f.Destination {
			return nil, errors.New(errors.ErrCodeInvalidInput, "flight %d: arrival and destination are both %s", i, f.Arrival)
		}
	}
	return records, nil
}

// ReadFile reads records from a JSON file.
func ReadFile(path string) ([]Flight, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "flights file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Airports returns the distinct airports mentioned by records, in order of
// first appearance (arrival, destination, then connecting).
func Airports(records []Flight) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, f := range records {
		add(f.Arrival)
		add(f.Destination)
		add(f.Connecting)
	}
	return out
}
