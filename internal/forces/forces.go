// Package forces evaluates simply supported beam formulas under a uniform load.
package forces

import (
	"github.com/alexiusacademia/goslab/internal/units"
)

// Forces are the maxima for the edge and middle spans.
type Forces struct {
	EdgeMoment   float64 `json:"m_max_edge"`   // kN·m
	EdgeShear    float64 `json:"v_max_edge"`   // kN
	MiddleMoment float64 `json:"m_max_middle"` // kN·m
	MiddleShear  float64 `json:"v_max_middle"` // kN
}

// MaxMoment is qL²/8 with L in metres.
func MaxMoment(q, l float64) float64 {
	return q * l * l / 8
}

// MaxShear is qL/2 with L in metres.
func MaxShear(q, l float64) float64 {
	return q * l / 2
}

// Calculate converts the spans from mm and applies the simple beam formulas
// to each of them.
func Calculate(q, edge, middle float64) (Forces, error) {
	if err := units.NonNegative(
		units.Field{Name: "total load", Value: q},
		units.Field{Name: "edge span", Value: edge},
		units.Field{Name: "middle span", Value: middle},
	); err != nil {
		return Forces{}, err
	}
	le, lm := units.MMToM(edge), units.MMToM(middle)
	return Forces{
		EdgeMoment:   MaxMoment(q, le),
		EdgeShear:    MaxShear(q, le),
		MiddleMoment: MaxMoment(q, lm),
		MiddleShear:  MaxShear(q, lm),
	}, nil
}

// Station is one sample of the moment and shear diagrams.
type Station struct {
	X      float64 // m from the left support
	Moment float64 // kN·m
	Shear  float64 // kN
}

// Diagram samples M(x) = qx(L-x)/2 and V(x) = q(L/2 - x) at n+1 stations
// along a simply supported span of length l (m).
func Diagram(q, l float64, n int) []Station {
	if n < 1 {
		n = 1
	}
	out := make([]Station, n+1)
	for i := range out {
		x := l * float64(i) / float64(n)
		out[i] = Station{
			X:      x,
			Moment: q * x * (l - x) / 2,
			Shear:  q * (l/2 - x),
		}
	}
	return out
}
