package graph

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/matzehuels/flightgraph/pkg/errors"
	"github.com/matzehuels/flightgraph/pkg/layout"
)

// =============================================================================
// Layout - Position Serialization
// =============================================================================

// Layout is the serialization format for computed layouts.
//
// VizType records which renderer the layout was computed for; it does not
// change the meaning of the positions. RunID identifies the pipeline run
// that produced the layout and is empty for hand-written files.
type Layout struct {
	VizType    string     `json:"viz_type"`
	Dimensions int        `json:"dimensions"`
	Seed       uint64     `json:"seed"`
	RunID      string     `json:"run_id,omitempty"`
	Positions  []Position `json:"positions"`
}

// Position is a serialized node position. Z is omitted for 2D layouts.
type Position struct {
	ID string   `json:"id"`
	X  float64  `json:"x"`
	Y  float64  `json:"y"`
	Z  *float64 `json:"z,omitempty"`
}

// IsScene returns true if this layout was computed for the 3D scene.
func (l *Layout) IsScene() bool { return l.VizType == VizTypeScene }

// IsNodelink returns true if this layout was computed for the static figure.
func (l *Layout) IsNodelink() bool { return l.VizType == VizTypeNodelink }

// FromLayout converts a computed layout to its serialization format.
func FromLayout(l *layout.Layout, vizType string, seed uint64) Layout {
	out := Layout{
		VizType:    vizType,
		Dimensions: l.Dimensions(),
		Seed:       seed,
		Positions:  make([]Position, 0, l.Len()),
	}
	for _, id := range l.Nodes() {
		p, _ := l.Position(id)
		pos := Position{ID: id, X: p.X, Y: p.Y}
		if l.Dimensions() == 3 {
			z := p.Z
			pos.Z = &z
		}
		out.Positions = append(out.Positions, pos)
	}
	return out
}

// ToLayout converts a serialized layout back into a layout.Layout.
func ToLayout(data Layout) (*layout.Layout, error) {
	ids := make([]string, len(data.Positions))
	points := make([]layout.Point, len(data.Positions))
	for i, p := range data.Positions {
		ids[i] = p.ID
		points[i] = layout.Point{X: p.X, Y: p.Y}
		if p.Z != nil {
			points[i].Z = *p.Z
		}
	}
	return layout.FromPoints(data.Dimensions, ids, points)
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// Validates the viz type and dimensions.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "unmarshal layout")
	}

	if l.VizType == "" {
		l.VizType = VizTypeScene
	}
	if !slices.Contains(VizTypes, l.VizType) {
		return Layout{}, errors.New(errors.ErrCodeInvalidVizType, "unknown viz type %q", l.VizType)
	}
	if err := layout.ValidateDimensions(l.Dimensions); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
