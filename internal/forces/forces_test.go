package forces

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormulas(t *testing.T) {
	// 8.93 kN/m² over 5.67 m.
	assert.InDelta(t, 35.886, MaxMoment(8.93, 5.67), 1e-3)
	assert.InDelta(t, 25.316, MaxShear(8.93, 5.67), 1e-3)
	assert.Equal(t, 0.0, MaxMoment(0, 5))
	assert.Equal(t, 0.0, MaxShear(7, 0))
}

func TestCalculate(t *testing.T) {
	f, err := Calculate(8.93, 5670, 5370)
	require.NoError(t, err)

	assert.InDelta(t, 8.93*5.67*5.67/8, f.EdgeMoment, 1e-9)
	assert.InDelta(t, 8.93*5.67/2, f.EdgeShear, 1e-9)
	assert.InDelta(t, 8.93*5.37*5.37/8, f.MiddleMoment, 1e-9)
	assert.InDelta(t, 8.93*5.37/2, f.MiddleShear, 1e-9)
}

func TestCalculate_Negative(t *testing.T) {
	_, err := Calculate(-1, 5000, 4000)
	assert.Error(t, err)
}

func TestDiagram(t *testing.T) {
	st := Diagram(10, 4, 8)
	require.Len(t, st, 9)

	assert.Equal(t, 0.0, st[0].Moment)
	assert.InDelta(t, 0, st[8].Moment, 1e-9)
	assert.InDelta(t, MaxMoment(10, 4), st[4].Moment, 1e-9)
	assert.InDelta(t, MaxShear(10, 4), st[0].Shear, 1e-9)
	assert.InDelta(t, -MaxShear(10, 4), st[8].Shear, 1e-9)
	assert.InDelta(t, 0, st[4].Shear, 1e-9)

	assert.Len(t, Diagram(1, 1, 0), 2)
}
