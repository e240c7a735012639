package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/matzehuels/flightgraph/pkg/errors"
)

const tinySVG = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10"/></svg>`

func TestToPDF(t *testing.T) {
	out, err := ToPDF(context.Background(), []byte(tinySVG))
	if !Available() {
		if !errors.Is(err, errors.ErrCodeUnsupported) {
			t.Fatalf("error = %v, want UNSUPPORTED without rsvg-convert", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("ToPDF: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF")
	}
}

func TestToPNG(t *testing.T) {
	out, err := ToPNG(context.Background(), []byte(tinySVG), 0)
	if !Available() {
		if !errors.Is(err, errors.ErrCodeUnsupported) {
			t.Fatalf("error = %v, want UNSUPPORTED without rsvg-convert", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("ToPNG: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("\x89PNG")) {
		t.Errorf("output does not look like a PNG")
	}
}
