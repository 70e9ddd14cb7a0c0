package span

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name       string
		in         Input
		edge, mid  float64
		hasWarning bool
	}{
		{"support governs", Input{5400, 678, 120, 300}, 5460, 5160, false},
		{"height governs", Input{5400, 100, 240, 300}, 5450, 5150, false},
		{"tie", Input{3000, 200, 200, 0}, 3100, 3100, false},
		{"zero", Input{}, 0, 0, false},
		{"wide beam", Input{100, 0, 0, 250}, 100, -150, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Calculate(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.edge, g.Edge, 1e-9)
			assert.InDelta(t, tt.mid, g.Middle, 1e-9)
			assert.Equal(t, tt.hasWarning, g.Warning != "")
		})
	}
}

func TestCalculate_MinRule(t *testing.T) {
	for ln := 0.0; ln <= 9000; ln += 1500 {
		for h := 0.0; h <= 900; h += 150 {
			for a := 0.0; a <= 400; a += 100 {
				g, err := Calculate(Input{ln, h, a, 250})
				require.NoError(t, err)
				assert.InDelta(t, math.Min(ln+h/2, ln+a/2), g.Edge, 1e-9)
				assert.InDelta(t, g.Edge-250, g.Middle, 1e-9)
			}
		}
	}
}

func TestCalculate_Negative(t *testing.T) {
	_, err := Calculate(Input{ClearSpan: 5400, SupportWidth: -1})
	assert.ErrorContains(t, err, "support width")
}
