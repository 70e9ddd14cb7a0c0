// Package units normalizes length inputs and rounds values for display.
package units

import (
	"fmt"
	"math"
)

// MMToM converts millimetres to metres.
func MMToM(mm float64) float64 {
	return mm / 1000
}

// Convention describes how thickness and span inputs are expressed.
type Convention string

const (
	// Millimetres converts every length to metres before it enters a formula.
	Millimetres Convention = "mm"
	// Metres takes lengths as already being in metres. Feeding millimetre
	// values under this convention reproduces the earliest calculation
	// sheets, which multiplied raw thicknesses by densities.
	Metres Convention = "m"
)

// ToMetres applies the convention to a length value.
func (c Convention) ToMetres(v float64) float64 {
	if c == Metres {
		return v
	}
	return MMToM(v)
}

// ParseConvention accepts "mm" or "m".
func ParseConvention(s string) (Convention, error) {
	switch Convention(s) {
	case Millimetres, "":
		return Millimetres, nil
	case Metres:
		return Metres, nil
	}
	return "", fmt.Errorf("unknown unit convention %q (want mm or m)", s)
}

// Round rounds v to the given number of decimal places.
func Round(v float64, decimals int) float64 {
	if decimals < 0 {
		return v
	}
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// RoundSig rounds v to the given number of significant digits.
func RoundSig(v float64, digits int) float64 {
	if v == 0 || digits <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	exp := int(math.Floor(math.Log10(math.Abs(v))))
	return Round(v, digits-1-exp)
}
