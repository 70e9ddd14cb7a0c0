// Package span computes effective spans of the continuous slab strip.
package span

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/goslab/internal/units"
)

// Input describes the clear span and support geometry, all in mm.
type Input struct {
	ClearSpan    float64 // l_n
	Height       float64 // h, section height of the member
	SupportWidth float64 // a, bearing length on the wall
	BeamWidth    float64 // width of the intermediate beam
}

// Geometry holds the effective spans in mm.
type Geometry struct {
	Edge    float64 `json:"l0"`
	Middle  float64 `json:"l_middle"`
	Warning string  `json:"warning,omitempty"`
}

// Calculate returns l0 = min(l_n + h/2, l_n + a/2) and l_middle = l0 - beam width.
// A negative middle span is reported through Warning, not as an error.
func Calculate(in Input) (Geometry, error) {
	if err := units.NonNegative(
		units.Field{Name: "clear span", Value: in.ClearSpan},
		units.Field{Name: "section height", Value: in.Height},
		units.Field{Name: "support width", Value: in.SupportWidth},
		units.Field{Name: "beam width", Value: in.BeamWidth},
	); err != nil {
		return Geometry{}, err
	}

	l0 := math.Min(in.ClearSpan+in.Height/2, in.ClearSpan+in.SupportWidth/2)
	g := Geometry{Edge: l0, Middle: l0 - in.BeamWidth}
	if g.Middle < 0 {
		g.Warning = fmt.Sprintf("beam width %.0f mm exceeds effective span %.0f mm; middle span is negative", in.BeamWidth, l0)
	}
	return g, nil
}
