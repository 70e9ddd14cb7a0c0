package reinforcement

import "math"

// Spacing limits for slab bars (mm).
const (
	MinSpacing = 70
	MaxSpacing = 200
)

// SlabDiameters are the bar sizes tried for slab reinforcement (mm).
var SlabDiameters = []int{6, 8, 10, 12, 14}

// BarArea returns the area of one bar in mm².
func BarArea(dia int) float64 {
	d := float64(dia)
	return math.Pi * d * d / 4
}

// BarOption is a diameter and spacing that provides at least the required area.
type BarOption struct {
	Diameter   int     `json:"diameter"`
	Spacing    float64 `json:"spacing"`     // mm, rounded down to 10 mm
	AsProvided float64 `json:"as_provided"` // mm² over the strip width
}

// SuggestBars lists bar layouts over a strip of the given width whose spacing
// stays within MinSpacing..MaxSpacing.
func SuggestBars(asRequired, stripWidth float64) []BarOption {
	if asRequired <= 0 || stripWidth <= 0 {
		return nil
	}
	var out []BarOption
	for _, dia := range SlabDiameters {
		a := BarArea(dia)
		s := math.Floor(a*stripWidth/asRequired/10) * 10
		if s > MaxSpacing {
			s = MaxSpacing
		}
		if s < MinSpacing {
			continue
		}
		out = append(out, BarOption{
			Diameter:   dia,
			Spacing:    s,
			AsProvided: a * stripWidth / s,
		})
	}
	return out
}
