package gb

import (
	"fmt"
	"strings"
)

// Combination holds the partial factors applied to the permanent and live
// floor loads before they are summed.
type Combination struct {
	ID          string
	Description string
	Permanent   float64 // γG
	Live        float64 // γQ
}

// Unfactored adds characteristic loads directly, as the first calculation
// sheets did.
var Unfactored = Combination{
	ID:          "unfactored",
	Description: "1.0G + 1.0Q",
	Permanent:   1.0,
	Live:        1.0,
}

// Factored is the combination used by the later sheets.
var Factored = Combination{
	ID:          "factored",
	Description: "1.3G + 1.5Q",
	Permanent:   1.3,
	Live:        1.5,
}

// Combinations lists the selectable presets in display order.
var Combinations = []Combination{Unfactored, Factored}

// LookupCombination finds a preset by ID (case-insensitive).
func LookupCombination(id string) (Combination, error) {
	for _, c := range Combinations {
		if strings.EqualFold(c.ID, id) {
			return c, nil
		}
	}
	return Combination{}, fmt.Errorf("unknown load combination %q", id)
}

// Custom builds a combination from explicit factors.
func Custom(permanent, live float64) Combination {
	return Combination{
		ID:          "custom",
		Description: fmt.Sprintf("%.2fG + %.2fQ", permanent, live),
		Permanent:   permanent,
		Live:        live,
	}
}

// Apply returns the factored permanent and live loads.
func (c Combination) Apply(permanent, live float64) (float64, float64) {
	return c.Permanent * permanent, c.Live * live
}
