package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alexiusacademia/goslab/internal/slab"
)

// Binding maps a command-line flag to its configuration key.
type Binding struct {
	Flag  string
	Key   string
	Usage string
	value func(slab.Params) float64
}

// ParamBindings covers every numeric calculation input.
var ParamBindings = []Binding{
	{"brick-thickness", "params.loads.brick.thickness", "Floor tile thickness (mm)", func(p slab.Params) float64 { return p.Loads.Brick.Thickness }},
	{"brick-density", "params.loads.brick.density", "Floor tile density (kN/m³)", func(p slab.Params) float64 { return p.Loads.Brick.Density }},
	{"mortar-thickness", "params.loads.mortar.thickness", "Screed thickness (mm)", func(p slab.Params) float64 { return p.Loads.Mortar.Thickness }},
	{"mortar-density", "params.loads.mortar.density", "Screed density (kN/m³)", func(p slab.Params) float64 { return p.Loads.Mortar.Density }},
	{"concrete-thickness", "params.loads.concrete.thickness", "Structural slab thickness (mm)", func(p slab.Params) float64 { return p.Loads.Concrete.Thickness }},
	{"concrete-density", "params.loads.concrete.density", "Reinforced concrete density (kN/m³)", func(p slab.Params) float64 { return p.Loads.Concrete.Density }},
	{"ceiling", "params.loads.ceiling", "Suspended ceiling load (kN/m²)", func(p slab.Params) float64 { return p.Loads.Ceiling }},
	{"live", "params.loads.live", "Floor live load (kN/m²)", func(p slab.Params) float64 { return p.Loads.Live }},
	{"l1", "params.l1", "Span used for slab thickness, l1 (mm)", func(p slab.Params) float64 { return p.HalfSpan }},
	{"l3", "params.l3", "Cross beam span, l3 (mm)", func(p slab.Params) float64 { return p.CrossSpan }},
	{"ln", "params.l_n", "Clear span, l_n (mm)", func(p slab.Params) float64 { return p.ClearSpan }},
	{"support", "params.a", "Support bearing width, a (mm)", func(p slab.Params) float64 { return p.SupportWidth }},
	{"beam-width", "params.beam_width", "Intermediate beam width (mm)", func(p slab.Params) float64 { return p.BeamWidth }},
	{"strip", "params.strip_width", "Design strip width b (mm)", func(p slab.Params) float64 { return p.StripWidth }},
	{"height", "params.section_height", "Design section height, 0 = concrete thickness (mm)", func(p slab.Params) float64 { return p.SectionHeight }},
	{"cover", "params.cover", "Distance from tension face to bar centroid (mm)", func(p slab.Params) float64 { return p.Cover }},
	{"fc", "params.fc", "Concrete design strength fc (MPa)", func(p slab.Params) float64 { return p.Fc }},
	{"fy", "params.fy", "Steel design strength fy (MPa)", func(p slab.Params) float64 { return p.Fy }},
}

// optionBindings are the non-numeric settings exposed as flags.
var optionBindings = []struct {
	Flag, Key, Usage, Default string
}{
	{"preset", "preset", "Calculation preset (naive, refined)", slab.DefaultPreset},
	{"units", "convention", "Length convention of layer thicknesses (mm, m)", "mm"},
	{"concrete", "grades.concrete", "Concrete grade, sets fc (e.g. C25)", ""},
	{"steel", "grades.steel", "Steel grade, sets fy (e.g. HRB400)", ""},
}

var factorBindings = []struct {
	Flag, Key, Usage string
}{
	{"gamma-g", "factors.permanent", "Override permanent load factor"},
	{"gamma-q", "factors.live", "Override live load factor"},
}

// RegisterFlags adds every configurable input to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := slab.DefaultParams()
	for _, b := range ParamBindings {
		fs.Float64(b.Flag, b.value(d), b.Usage)
	}
	for _, b := range optionBindings {
		fs.String(b.Flag, b.Default, b.Usage)
	}
	for _, b := range factorBindings {
		fs.Float64(b.Flag, 0, b.Usage)
	}
}

func setDefaults(v *viper.Viper) {
	d := slab.DefaultParams()
	for _, b := range ParamBindings {
		v.SetDefault(b.Key, b.value(d))
	}
	for _, b := range optionBindings {
		v.SetDefault(b.Key, b.Default)
	}
	for _, b := range factorBindings {
		v.SetDefault(b.Key, 0.0)
	}
	v.SetDefault("store", DefaultStore)
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	bind := func(flag, key string) error {
		f := fs.Lookup(flag)
		if f == nil {
			return nil
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
		return nil
	}
	for _, b := range ParamBindings {
		if err := bind(b.Flag, b.Key); err != nil {
			return err
		}
	}
	for _, b := range optionBindings {
		if err := bind(b.Flag, b.Key); err != nil {
			return err
		}
	}
	for _, b := range factorBindings {
		if err := bind(b.Flag, b.Key); err != nil {
			return err
		}
	}
	return bind("store", "store")
}
