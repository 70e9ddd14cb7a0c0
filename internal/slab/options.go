package slab

import (
	"fmt"
	"sort"

	"github.com/alexiusacademia/goslab/internal/gb"
	"github.com/alexiusacademia/goslab/internal/units"
)

// Precision sets how results are rounded for display.
type Precision struct {
	MomentDecimals int `json:"moment_decimals" mapstructure:"moment_decimals"`
	FactorDigits   int `json:"factor_digits" mapstructure:"factor_digits"` // significant digits of αs and ζ
	AreaDecimals   int `json:"area_decimals" mapstructure:"area_decimals"`
}

// Options select between the historical calculation behaviours.
type Options struct {
	Preset      string           `json:"preset"`
	Combination gb.Combination   `json:"combination"`
	Convention  units.Convention `json:"convention"`
	Precision   Precision        `json:"precision"`
}

// Presets reproduce the two revisions of the calculation sheet. "naive" adds
// characteristic loads without factors; "refined" applies 1.3/1.5 and
// reports steel areas as whole mm².
var Presets = map[string]Options{
	"naive": {
		Preset:      "naive",
		Combination: gb.Unfactored,
		Convention:  units.Millimetres,
		Precision:   Precision{MomentDecimals: 2, FactorDigits: 3, AreaDecimals: 2},
	},
	"refined": {
		Preset:      "refined",
		Combination: gb.Factored,
		Convention:  units.Millimetres,
		Precision:   Precision{MomentDecimals: 2, FactorDigits: 3, AreaDecimals: 0},
	},
}

// DefaultPreset is used when nothing else is configured.
const DefaultPreset = "refined"

// LookupPreset returns a copy of the named preset.
func LookupPreset(name string) (Options, error) {
	if name == "" {
		name = DefaultPreset
	}
	o, ok := Presets[name]
	if !ok {
		names := make([]string, 0, len(Presets))
		for n := range Presets {
			names = append(names, n)
		}
		sort.Strings(names)
		return Options{}, fmt.Errorf("unknown preset %q (available: %v)", name, names)
	}
	return o, nil
}
