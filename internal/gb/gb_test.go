package gb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCombination(t *testing.T) {
	c, err := LookupCombination("Factored")
	require.NoError(t, err)
	assert.Equal(t, 1.3, c.Permanent)
	assert.Equal(t, 1.5, c.Live)

	c, err = LookupCombination("unfactored")
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.Permanent)

	_, err = LookupCombination("ultimate")
	assert.Error(t, err)
}

func TestCombination_Apply(t *testing.T) {
	g, q := Factored.Apply(3.83, 4.0)
	assert.InDelta(t, 4.979, g, 1e-9)
	assert.InDelta(t, 6.0, q, 1e-9)

	c := Custom(1.2, 1.4)
	assert.Equal(t, "1.20G + 1.40Q", c.Description)
}

func TestMaterialStrengths(t *testing.T) {
	fc, err := ConcreteStrength("C25")
	require.NoError(t, err)
	assert.Equal(t, 11.9, fc)

	fy, err := SteelStrength("HRB400")
	require.NoError(t, err)
	assert.Equal(t, 360.0, fy)

	_, err = ConcreteStrength("C99")
	assert.ErrorContains(t, err, "C20")
}
