package graph

import (
	"path/filepath"
	"testing"

	"github.com/matzehuels/flightgraph/pkg/errors"
	"github.com/matzehuels/flightgraph/pkg/layout"
)

func TestLayoutRoundTrip(t *testing.T) {
	for _, dims := range []int{2, 3} {
		l, err := layout.FromPoints(dims, []string{"A", "B"}, []layout.Point{{X: 1, Y: 0, Z: 0.5}, {X: -1, Y: 0.25, Z: -0.5}})
		if err != nil {
			t.Fatalf("FromPoints: %v", err)
		}

		wire := FromLayout(l, VizTypeScene, 42)
		if wire.Dimensions != dims || wire.Seed != 42 || !wire.IsScene() {
			t.Errorf("wire = %+v", wire)
		}
		if (wire.Positions[0].Z == nil) != (dims == 2) {
			t.Errorf("dims=%d: z presence is wrong", dims)
		}

		path := filepath.Join(t.TempDir(), "layout.json")
		if err := WriteLayoutFile(wire, path); err != nil {
			t.Fatalf("WriteLayoutFile: %v", err)
		}
		read, err := ReadLayoutFile(path)
		if err != nil {
			t.Fatalf("ReadLayoutFile: %v", err)
		}
		got, err := ToLayout(read)
		if err != nil {
			t.Fatalf("ToLayout: %v", err)
		}

		for _, id := range l.Nodes() {
			want, _ := l.Position(id)
			have, ok := got.Position(id)
			if !ok || have != want {
				t.Errorf("dims=%d: position %s = %+v, want %+v", dims, id, have, want)
			}
		}
	}
}

func TestUnmarshalLayout(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode errors.Code
		wantViz  string
	}{
		{"DefaultsToScene", `{"dimensions": 3, "positions": []}`, "", VizTypeScene},
		{"Nodelink", `{"viz_type": "nodelink", "dimensions": 2, "positions": []}`, "", VizTypeNodelink},
		{"UnknownViz", `{"viz_type": "heatmap", "dimensions": 2}`, errors.ErrCodeInvalidVizType, ""},
		{"BadDimensions", `{"dimensions": 4}`, errors.ErrCodeInvalidInput, ""},
		{"Malformed", `{`, errors.ErrCodeInvalidInput, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := UnmarshalLayout([]byte(tt.input))
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("error = %v, want %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalLayout: %v", err)
			}
			if l.VizType != tt.wantViz {
				t.Errorf("VizType = %q, want %q", l.VizType, tt.wantViz)
			}
		})
	}
}
