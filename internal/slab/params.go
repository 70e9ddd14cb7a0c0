package slab

import (
	"github.com/alexiusacademia/goslab/internal/loads"
	"github.com/alexiusacademia/goslab/internal/units"
)

// Params are the raw inputs of one calculation. Lengths are in mm.
type Params struct {
	Loads loads.Input `json:"loads" mapstructure:"loads"`

	HalfSpan  float64 `json:"l1" mapstructure:"l1"`   // l1, span used for slab thickness
	CrossSpan float64 `json:"l3" mapstructure:"l3"`   // l3, span used for cross beam depth
	ClearSpan float64 `json:"l_n" mapstructure:"l_n"` // l_n

	SupportWidth float64 `json:"a" mapstructure:"a"`
	BeamWidth    float64 `json:"beam_width" mapstructure:"beam_width"`

	// Reinforcement design of the slab strip.
	StripWidth    float64 `json:"strip_width" mapstructure:"strip_width"`
	SectionHeight float64 `json:"section_height" mapstructure:"section_height"` // 0 uses the concrete layer thickness
	Cover         float64 `json:"cover" mapstructure:"cover"`
	Fc            float64 `json:"fc" mapstructure:"fc"` // MPa
	Fy            float64 `json:"fy" mapstructure:"fy"` // MPa
}

// DefaultParams is the reference floor: tiles on screed over a 120 mm slab,
// 5.4 m bays on 6.9 m cross beams, C25 concrete and HRB400 bars.
func DefaultParams() Params {
	return Params{
		Loads: loads.Input{
			Brick:    loads.Layer{Thickness: 10, Density: 25},
			Mortar:   loads.Layer{Thickness: 20, Density: 20},
			Concrete: loads.Layer{Thickness: 120, Density: 25},
			Ceiling:  0.18,
			Live:     4.0,
		},
		HalfSpan:     5400 / 2,
		CrossSpan:    6900,
		ClearSpan:    5400,
		SupportWidth: 120,
		BeamWidth:    300,
		StripWidth:   1000,
		Cover:        20,
		Fc:           11.9,
		Fy:           360,
	}
}

// DesignHeight is the depth used for the reinforcement section.
func (p Params) DesignHeight() float64 {
	if p.SectionHeight > 0 {
		return p.SectionHeight
	}
	return p.Loads.Concrete.Thickness
}

// Validate rejects negative geometry and non-positive strengths before any
// stage runs.
func (p Params) Validate() error {
	if err := p.Loads.Validate(); err != nil {
		return err
	}
	if err := units.NonNegative(
		units.Field{Name: "l1", Value: p.HalfSpan},
		units.Field{Name: "l3", Value: p.CrossSpan},
		units.Field{Name: "clear span", Value: p.ClearSpan},
		units.Field{Name: "support width", Value: p.SupportWidth},
		units.Field{Name: "beam width", Value: p.BeamWidth},
		units.Field{Name: "section height", Value: p.SectionHeight},
		units.Field{Name: "cover", Value: p.Cover},
	); err != nil {
		return err
	}
	return units.Positive(
		units.Field{Name: "strip width", Value: p.StripWidth},
		units.Field{Name: "effective depth", Value: p.DesignHeight() - p.Cover},
		units.Field{Name: "fc", Value: p.Fc},
		units.Field{Name: "fy", Value: p.Fy},
	)
}
