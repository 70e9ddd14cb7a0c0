package moment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Label
	}
	return out
}

func TestTable(t *testing.T) {
	rows, err := Table(7.83, 5460, 2)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	base := 7.83 * 5.46 * 5.46
	assert.InDelta(t, base/11, rows[0].Moment, 0.005)
	assert.InDelta(t, -base/11, rows[1].Moment, 0.005)
	assert.InDelta(t, base/16, rows[2].Moment, 0.005)
	assert.InDelta(t, -base/14, rows[3].Moment, 0.005)

	assert.Equal(t, "1/11", rows[0].Fraction)
	assert.Equal(t, "-1/14", rows[3].Fraction)
	assert.Equal(t, "Support B", rows[1].Alias)
}

func TestTable_Rounding(t *testing.T) {
	rows, err := Table(7.83, 5460, 2)
	require.NoError(t, err)
	assert.Equal(t, 21.22, rows[0].Moment) // 233.42/11 = 21.2199
	assert.Equal(t, -21.22, rows[1].Moment)

	raw, err := Table(7.83, 5460, -1)
	require.NoError(t, err)
	assert.InDelta(t, 7.83*5.46*5.46/11, raw[0].Moment, 1e-12)
}

func TestTable_OrderIsFixed(t *testing.T) {
	want := []string{"过跨跨内", "B支座", "中间跨内", "中间支座"}
	for _, in := range []struct{ q, l0 float64 }{{0, 0}, {7.93, 5670}, {100, 100}, {1e-3, 12000}} {
		rows, err := Table(in.q, in.l0, 2)
		require.NoError(t, err)
		assert.Equal(t, want, labels(rows))
	}
}

func TestTable_Negative(t *testing.T) {
	_, err := Table(7.83, -1, 2)
	assert.Error(t, err)
}
