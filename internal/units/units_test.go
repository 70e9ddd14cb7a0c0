package units

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvention_ToMetres(t *testing.T) {
	assert.InDelta(t, 0.12, Millimetres.ToMetres(120), 1e-12)
	assert.InDelta(t, 120, Metres.ToMetres(120), 1e-12)
	assert.InDelta(t, 5.4, MMToM(5400), 1e-12)
}

func TestParseConvention(t *testing.T) {
	c, err := ParseConvention("")
	require.NoError(t, err)
	assert.Equal(t, Millimetres, c)

	c, err = ParseConvention("m")
	require.NoError(t, err)
	assert.Equal(t, Metres, c)

	_, err = ParseConvention("inch")
	assert.Error(t, err)
}

func TestRound(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		want     float64
	}{
		{35.886, 2, 35.89},
		{1234.5, 0, 1235},
		{-2.345, 1, -2.3},
		{7.0, -1, 7.0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Round(tt.v, tt.decimals), 1e-9)
	}
}

func TestRoundSig(t *testing.T) {
	assert.InDelta(t, 0.195, RoundSig(0.19534, 3), 1e-12)
	assert.InDelta(t, 0.0219, RoundSig(0.021874, 3), 1e-12)
	assert.InDelta(t, 23.2, RoundSig(23.21, 3), 1e-12)
	assert.Equal(t, 0.0, RoundSig(0, 3))
}

func TestValidation(t *testing.T) {
	require.NoError(t, NonNegative(Field{"a", 0}, Field{"b", 3}))

	err := NonNegative(Field{"a", 1}, Field{"span", -5})
	var ie *InputError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "span", ie.Field)

	err = Positive(Field{"fc", 0})
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "positive", ie.Want)
}
