package errors

import (
	"strconv"
	"strings"
)

// MinAirports is the smallest airport set from which a distinct
// (arrival, destination) pair can be drawn.
const MinAirports = 2

// ParseCount parses a user-entered count such as "10" or " 5000 ".
// The what argument names the quantity for the error message.
//
// Negative numbers and non-integers are rejected with ErrCodeInvalidInput.
func ParseCount(what, s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, New(ErrCodeInvalidInput, "%s cannot be empty", what)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, Wrap(ErrCodeInvalidInput, err, "%s must be an integer, got %q", what, s)
	}
	if n < 0 {
		return 0, New(ErrCodeInvalidInput, "%s cannot be negative, got %d", what, n)
	}
	return n, nil
}

// ValidateAirportCount checks that n airports are enough to sample flights.
func ValidateAirportCount(n int) error {
	if n < MinAirports {
		return New(ErrCodeInvalidInput, "need at least %d airports to sample flights, got %d", MinAirports, n)
	}
	return nil
}

// ValidateFlightCount checks that a flight count is non-negative.
func ValidateFlightCount(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "flight count cannot be negative, got %d", n)
	}
	return nil
}

// ValidateAirportID rejects identifiers that cannot be rendered as labels.
func ValidateAirportID(id string) error {
	if strings.TrimSpace(id) == "" {
		return New(ErrCodeInvalidInput, "airport identifier cannot be empty")
	}
	if strings.ContainsAny(id, "\x00\n\r") {
		return New(ErrCodeInvalidInput, "airport identifier contains invalid characters: %q", id)
	}
	return nil
}

// ValidateAirportIDs checks an explicit airport list before sampling. Every
// identifier must be valid and appear once, and at least MinAirports must be
// given.
func ValidateAirportIDs(ids []string) error {
	if err := ValidateAirportCount(len(ids)); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if err := ValidateAirportID(id); err != nil {
			return err
		}
		if _, dup := seen[id]; dup {
			return New(ErrCodeInvalidInput, "duplicate airport identifier %q", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
