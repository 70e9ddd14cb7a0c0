// Package gb collects the fixed design constants used across the slab
// calculation: load factors, material strengths and proportioning ratios.
package gb

import (
	"fmt"
	"sort"
)

const (
	// Alpha1 is the stress block coefficient for ordinary strength concrete.
	Alpha1 = 1.0

	// Single-way slab thickness as a fraction of its span.
	SlabRatioMin = 1.0 / 40
	SlabRatioMax = 1.0 / 30

	// Cross beam depth as a fraction of its span.
	BeamDepthRatioMin = 1.0 / 14
	BeamDepthRatioMax = 1.0 / 8

	// Cross beam width as a fraction of its depth.
	BeamWidthRatioMin = 1 / 3.5
	BeamWidthRatioMax = 1 / 1.5
)

// Design compressive strength fc (MPa) by concrete grade.
var ConcreteGrades = map[string]float64{
	"C20": 9.6,
	"C25": 11.9,
	"C30": 14.3,
	"C35": 16.7,
	"C40": 19.1,
	"C45": 21.1,
	"C50": 23.1,
}

// Design yield strength fy (MPa) by steel grade.
var SteelGrades = map[string]float64{
	"HPB300": 270,
	"HRB335": 300,
	"HRB400": 360,
	"HRB500": 435,
}

// ConcreteStrength returns fc for a grade such as "C25".
func ConcreteStrength(grade string) (float64, error) {
	fc, ok := ConcreteGrades[grade]
	if !ok {
		return 0, fmt.Errorf("unknown concrete grade %q (known: %v)", grade, keys(ConcreteGrades))
	}
	return fc, nil
}

// SteelStrength returns fy for a grade such as "HRB400".
func SteelStrength(grade string) (float64, error) {
	fy, ok := SteelGrades[grade]
	if !ok {
		return 0, fmt.Errorf("unknown steel grade %q (known: %v)", grade, keys(SteelGrades))
	}
	return fy, nil
}

func keys(m map[string]float64) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
