package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "airport count",
			err:  New(ErrCodeInvalidInput, "need at least %d airports to sample flights, got %d", MinAirports, 1),
			want: "INVALID_INPUT: need at least 2 airports to sample flights, got 1",
		},
		{
			name: "missing flights file",
			err:  Wrap(ErrCodeFileNotFound, fs.ErrNotExist, "flights file %s", "flights.json"),
			want: "FILE_NOT_FOUND: flights file flights.json: file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Pipeline stages wrap coded errors with fmt.Errorf; the CLI still has to
// see the code and the short message.
func TestCodeSurvivesWrapping(t *testing.T) {
	inner := New(ErrCodeInvalidDimensions, "invalid dimensions %d: must be 2 or 3", 4)
	err := fmt.Errorf("invalid options: %w", inner)

	if !Is(err, ErrCodeInvalidDimensions) {
		t.Error("code lost through fmt.Errorf")
	}
	if got := GetCode(err); got != ErrCodeInvalidDimensions {
		t.Errorf("GetCode() = %s", got)
	}
	if got := UserMessage(err); got != "invalid dimensions 4: must be 2 or 3" {
		t.Errorf("UserMessage() = %q", got)
	}
	if !IsUserError(err) {
		t.Error("wrapped dimension error should be a user error")
	}
}

func TestOuterCodeWins(t *testing.T) {
	cause := New(ErrCodeInvalidDimensions, "dimensions 5")
	err := Wrap(ErrCodeInvalidConfig, cause, "config flightgraph.yaml")

	if !Is(err, ErrCodeInvalidConfig) {
		t.Error("outer code should match")
	}
	if Is(err, ErrCodeInvalidDimensions) {
		t.Error("only the outermost code is reported")
	}
	if !errors.Is(err, cause) {
		t.Error("cause should stay reachable with errors.Is")
	}
	if got := UserMessage(err); got != "config flightgraph.yaml" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestUncodedErrors(t *testing.T) {
	plain := errors.New("rsvg-convert not found")

	if Is(plain, ErrCodeInvalidInput) || Is(nil, ErrCodeInvalidInput) {
		t.Error("uncoded errors match no code")
	}
	if GetCode(plain) != "" || GetCode(nil) != "" {
		t.Error("uncoded errors have an empty code")
	}
	if got := UserMessage(plain); got != "rsvg-convert not found" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestIsUserError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"invalid input", New(ErrCodeInvalidInput, "bad count"), true},
		{"invalid format", New(ErrCodeInvalidFormat, "svg for scene"), true},
		{"invalid viz type", New(ErrCodeInvalidVizType, "heatmap"), true},
		{"invalid dimensions", New(ErrCodeInvalidDimensions, "dim 4"), true},
		{"wrapped invalid config", Wrap(ErrCodeInvalidConfig, errors.New("toml"), "load"), true},
		{"missing file", New(ErrCodeFileNotFound, "flights.json"), false},
		{"unsupported", New(ErrCodeUnsupported, "pdf without rsvg-convert"), false},
		{"plain error", errors.New("plain"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserError(tt.err); got != tt.expected {
				t.Errorf("IsUserError() = %v, want %v", got, tt.expected)
			}
		})
	}
}
