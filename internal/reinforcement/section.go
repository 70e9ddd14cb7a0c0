// Package reinforcement sizes the tension steel of a singly reinforced
// rectangular section for a list of design moments.
package reinforcement

import (
	"fmt"

	"github.com/alexiusacademia/goslab/internal/gb"
	"github.com/alexiusacademia/goslab/internal/units"
)

// Section is a singly reinforced rectangular section
type Section struct {
	// Geometry (mm)
	Width          float64 // b - strip or beam width
	Height         float64 // h - total depth
	Cover          float64 // distance from tension face to steel centroid
	EffectiveDepth float64 // h0 = h - cover

	// Materials (MPa)
	Fc     float64 // concrete design compressive strength
	Fy     float64 // steel design yield strength
	Alpha1 float64 // stress block coefficient
}

// NewSection creates a section with h0 = height - cover and α1 = 1.
func NewSection(width, height, cover, fc, fy float64) Section {
	return Section{
		Width:          width,
		Height:         height,
		Cover:          cover,
		EffectiveDepth: height - cover,
		Fc:             fc,
		Fy:             fy,
		Alpha1:         gb.Alpha1,
	}
}

// Validate checks that every geometric and material value is usable.
func (s Section) Validate() error {
	if err := units.Positive(
		units.Field{Name: "section width", Value: s.Width},
		units.Field{Name: "effective depth", Value: s.EffectiveDepth},
		units.Field{Name: "fc", Value: s.Fc},
		units.Field{Name: "fy", Value: s.Fy},
		units.Field{Name: "alpha1", Value: s.Alpha1},
	); err != nil {
		return err
	}
	if s.Cover < 0 {
		return &units.InputError{Field: "cover", Value: s.Cover, Want: "non-negative"}
	}
	return nil
}

func (s Section) String() string {
	return fmt.Sprintf("b=%.0f h0=%.0f fc=%.1f fy=%.0f", s.Width, s.EffectiveDepth, s.Fc, s.Fy)
}
