package reinforcement

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/goslab/internal/units"
)

// Moment is a labelled design moment in kN·m.
type Moment struct {
	Label string
	Value float64
}

// Row is the reinforcement result for one moment.
type Row struct {
	Label  string  `json:"label"`
	Moment float64 `json:"moment"`  // kN·m
	AlphaS float64 `json:"alpha_s"` // αs
	Zeta   float64 `json:"zeta"`    // ζ
	As     float64 `json:"as"`      // mm²
}

// Rounding controls the display precision of a Row.
type Rounding struct {
	MomentDecimals int
	FactorDigits   int // significant digits of αs and ζ
	AreaDecimals   int
}

// SectionUndersizedError is returned when αs leaves the real-root domain
// 0 <= 2αs <= 1, meaning the section cannot carry the moment.
type SectionUndersizedError struct {
	Label  string
	Moment float64
	AlphaS float64
}

func (e *SectionUndersizedError) Error() string {
	return fmt.Sprintf("section undersized at %s: M=%.2f kN·m gives alpha_s=%.4f > 0.5", e.Label, e.Moment, e.AlphaS)
}

// AlphaS returns αs = M / (α1·fc·b·h0²) with M converted from kN·m to N·mm.
// The sign of M is ignored; support moments are designed for top steel.
func (s Section) AlphaS(m float64) float64 {
	return math.Abs(m) * 1e6 / (s.Alpha1 * s.Fc * s.Width * s.EffectiveDepth * s.EffectiveDepth)
}

// Design sizes steel for every moment in order. On the first moment whose αs
// exceeds 0.5 it stops and returns the rows computed so far together with a
// *SectionUndersizedError.
func (s Section) Design(moments []Moment, r Rounding) ([]Row, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	for _, m := range moments {
		if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) {
			return nil, &units.InputError{Field: "moment " + m.Label, Value: m.Value, Want: "finite"}
		}
	}

	rows := make([]Row, 0, len(moments))
	for _, m := range moments {
		as := s.AlphaS(m.Value)
		if !(2*as <= 1) {
			return rows, &SectionUndersizedError{Label: m.Label, Moment: m.Value, AlphaS: as}
		}

		zeta := 1 - math.Sqrt(1-2*as)
		area := zeta * s.Width * s.EffectiveDepth * s.Alpha1 * s.Fc / s.Fy

		rows = append(rows, Row{
			Label:  m.Label,
			Moment: units.Round(m.Value, r.MomentDecimals),
			AlphaS: units.RoundSig(as, r.FactorDigits),
			Zeta:   units.RoundSig(zeta, r.FactorDigits),
			As:     units.Round(area, r.AreaDecimals),
		})
	}
	return rows, nil
}
