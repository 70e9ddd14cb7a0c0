// Package loads combines floor build-up layers into design surface loads.
package loads

import (
	"fmt"

	"github.com/alexiusacademia/goslab/internal/gb"
	"github.com/alexiusacademia/goslab/internal/units"
)

// Layer is one material layer of the floor build-up.
type Layer struct {
	Thickness float64 `json:"thickness_mm" mapstructure:"thickness"` // mm
	Density   float64 `json:"density" mapstructure:"density"`        // kN/m³
}

// Input holds the floor build-up and the occupancy load.
type Input struct {
	Brick    Layer   `json:"brick" mapstructure:"brick"`
	Mortar   Layer   `json:"mortar" mapstructure:"mortar"`
	Concrete Layer   `json:"concrete" mapstructure:"concrete"`
	Ceiling  float64 `json:"ceiling" mapstructure:"ceiling"` // kN/m², applied as-is
	Live     float64 `json:"live" mapstructure:"live"`       // kN/m²
}

// LoadSet is the result of the load calculation, all in kN/m².
type LoadSet struct {
	Brick    float64 `json:"brick"`
	Mortar   float64 `json:"mortar"`
	Concrete float64 `json:"concrete"`
	Ceiling  float64 `json:"ceiling"`

	Permanent float64 `json:"q_g"`
	Live      float64 `json:"q_q"`
	Total     float64 `json:"q_total"`

	Combination string `json:"combination"`
}

// Validate rejects negative thicknesses, densities and loads.
func (in Input) Validate() error {
	return units.NonNegative(
		units.Field{Name: "brick thickness", Value: in.Brick.Thickness},
		units.Field{Name: "brick density", Value: in.Brick.Density},
		units.Field{Name: "mortar thickness", Value: in.Mortar.Thickness},
		units.Field{Name: "mortar density", Value: in.Mortar.Density},
		units.Field{Name: "concrete thickness", Value: in.Concrete.Thickness},
		units.Field{Name: "concrete density", Value: in.Concrete.Density},
		units.Field{Name: "ceiling load", Value: in.Ceiling},
		units.Field{Name: "live load", Value: in.Live},
	)
}

// Calculate converts each layer to a surface load and applies the
// combination factors. Total is always Permanent + Live.
func Calculate(in Input, combo gb.Combination, conv units.Convention) (LoadSet, error) {
	if err := in.Validate(); err != nil {
		return LoadSet{}, err
	}
	if err := units.Positive(
		units.Field{Name: "permanent load factor", Value: combo.Permanent},
		units.Field{Name: "live load factor", Value: combo.Live},
	); err != nil {
		return LoadSet{}, fmt.Errorf("combination %s: %w", combo.ID, err)
	}

	ls := LoadSet{
		Brick:       surface(in.Brick, conv),
		Mortar:      surface(in.Mortar, conv),
		Concrete:    surface(in.Concrete, conv),
		Ceiling:     in.Ceiling,
		Combination: combo.Description,
	}

	gk := ls.Brick + ls.Mortar + ls.Concrete + ls.Ceiling
	ls.Permanent, ls.Live = combo.Apply(gk, in.Live)
	ls.Total = ls.Permanent + ls.Live
	return ls, nil
}

func surface(l Layer, conv units.Convention) float64 {
	return conv.ToMetres(l.Thickness) * l.Density
}
