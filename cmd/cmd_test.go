package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goslab/internal/reinforcement"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetIn(bytes.NewReader(nil))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "goslab v")
}

func TestLoads(t *testing.T) {
	out, err := execute(t, "loads", "--preset", "naive")
	require.NoError(t, err)
	assert.Contains(t, out, "7.83 kN/m²")
	assert.Contains(t, out, "1.0G + 1.0Q")

	out, err = execute(t, "loads", "--gamma-g", "1.35")
	require.NoError(t, err)
	assert.Contains(t, out, "1.35G + 1.50Q")
}

func TestLoads_UnknownPreset(t *testing.T) {
	_, err := execute(t, "loads", "--preset", "draft")
	assert.ErrorContains(t, err, "unknown preset")
}

func TestReport_NoCache(t *testing.T) {
	out, err := execute(t, "report", "--no-cache", "--preset", "naive", "--diagram")
	require.NoError(t, err)

	for _, want := range []string{"1. FLOOR LAYOUT:", "7.83 kN/m²", "过跨跨内", "-21.22", "REINFORCEMENT TABLE:"} {
		assert.Contains(t, out, want)
	}
}

func TestReport_StoresDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dims.toml")

	_, err := execute(t, "report", "--store", path)
	require.NoError(t, err)

	out, err := execute(t, "dims", "show", "--store", path)
	require.NoError(t, err)
	assert.Contains(t, out, "678")
	assert.Contains(t, out, "323")
}

func TestReport_Exports(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "slab.pdf")
	xlsx := filepath.Join(dir, "slab.xlsx")
	js := filepath.Join(dir, "slab.json")

	out, err := execute(t, "report", "--no-cache", "--pdf", pdf, "--xlsx", xlsx, "--json", js)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to: "+pdf)

	for _, p := range []string{pdf, xlsx, js} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestReport_Undersized(t *testing.T) {
	out, err := execute(t, "report", "--no-cache", "--concrete-thickness", "40", "--ln", "9000")
	var undersized *reinforcement.SectionUndersizedError
	require.ErrorAs(t, err, &undersized)
	assert.Contains(t, out, "SECTION UNDERSIZED:")
}

func TestDims_SetShowReset(t *testing.T) {
	loc := "sqlite:" + filepath.Join(t.TempDir(), "slab.db")

	_, err := execute(t, "dims", "set", "--store", loc, "--h-single", "100", "--h-cross", "600", "--b-cross", "250")
	require.NoError(t, err)

	out, err := execute(t, "dims", "show", "--store", loc)
	require.NoError(t, err)
	assert.Contains(t, out, "600")

	_, err = execute(t, "dims", "reset", "--store", loc)
	require.NoError(t, err)

	out, err = execute(t, "dims", "show", "--store", loc)
	require.NoError(t, err)
	assert.NotContains(t, out, "600 ")
}

func TestSpan(t *testing.T) {
	out, err := execute(t, "span", "--height", "678")
	require.NoError(t, err)
	assert.Contains(t, out, "5460.00 mm")
	assert.Contains(t, out, "5160.00 mm")

	out, err = execute(t, "span", "--height", "678", "--beam-width", "6000")
	require.NoError(t, err)
	assert.Contains(t, out, "WARNING")
}

func TestForces(t *testing.T) {
	out, err := execute(t, "forces", "-q", "8", "--edge", "4000", "--middle", "2000")
	require.NoError(t, err)
	assert.Contains(t, out, "16.00")
	assert.Contains(t, out, "4.00")
}

func TestMoments(t *testing.T) {
	out, err := execute(t, "moments", "-q", "7.83", "--l0", "5460", "--diagram")
	require.NoError(t, err)
	assert.Contains(t, out, "21.22")
	assert.Contains(t, out, "-16.67")
	assert.Contains(t, out, "1/14")
}

func TestReinforce(t *testing.T) {
	out, err := execute(t, "reinforce", "-m", "21.22", "-m", "-21.22", "-m", "14.59", "-m", "-16.67")
	require.NoError(t, err)
	assert.Contains(t, out, "B支座")
	assert.Contains(t, out, "SUGGESTED BARS")

	_, err = execute(t, "reinforce", "-m", "200")
	var undersized *reinforcement.SectionUndersizedError
	assert.ErrorAs(t, err, &undersized)
}

func TestReinforce_HelpFormulas(t *testing.T) {
	out, err := execute(t, "reinforce", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "ζ = 1 - √(1 - 2αs)")
	assert.Contains(t, out, "As = ζ·α1·fc·b·h0 / fy")
}
