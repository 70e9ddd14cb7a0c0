// Package moment distributes the design moment of a continuous slab strip
// over its critical sections using fixed coefficients.
package moment

import (
	"fmt"

	"github.com/alexiusacademia/goslab/internal/units"
)

// Coefficient is one entry of the distribution table.
type Coefficient struct {
	Label       string // section name as printed in the report
	Alias       string // ASCII name for outputs that cannot render the label
	Numerator   float64
	Denominator float64
}

// Value returns the signed coefficient.
func (c Coefficient) Value() float64 {
	return c.Numerator / c.Denominator
}

// Fraction formats the coefficient as "1/11" or "-1/14".
func (c Coefficient) Fraction() string {
	return fmt.Sprintf("%g/%g", c.Numerator, c.Denominator)
}

// Coefficients are listed in report order: end span, first interior
// support, interior span, interior support.
var Coefficients = []Coefficient{
	{Label: "过跨跨内", Alias: "End span", Numerator: 1, Denominator: 11},
	{Label: "B支座", Alias: "Support B", Numerator: -1, Denominator: 11},
	{Label: "中间跨内", Alias: "Interior span", Numerator: 1, Denominator: 16},
	{Label: "中间支座", Alias: "Interior support", Numerator: -1, Denominator: 14},
}

// Row is one line of the moment table.
type Row struct {
	Label       string  `json:"label"`
	Alias       string  `json:"alias"`
	Coefficient float64 `json:"coefficient"`
	Fraction    string  `json:"fraction"`
	Moment      float64 `json:"moment"` // kN·m
}

// Table computes α·q·l0² for every coefficient. l0 is in mm; moments are
// rounded to the given number of decimals.
func Table(q, l0 float64, decimals int) ([]Row, error) {
	if err := units.NonNegative(
		units.Field{Name: "total load", Value: q},
		units.Field{Name: "effective span", Value: l0},
	); err != nil {
		return nil, err
	}
	l := units.MMToM(l0)
	base := q * l * l

	rows := make([]Row, 0, len(Coefficients))
	for _, c := range Coefficients {
		rows = append(rows, Row{
			Label:       c.Label,
			Alias:       c.Alias,
			Coefficient: c.Value(),
			Fraction:    c.Fraction(),
			Moment:      units.Round(c.Value()*base, decimals),
		})
	}
	return rows, nil
}
