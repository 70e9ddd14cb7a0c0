package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goslab/internal/forces"
	"github.com/alexiusacademia/goslab/internal/moment"
)

func rows(t *testing.T) []moment.Row {
	t.Helper()
	r, err := moment.Table(7.83, 5460, 2)
	require.NoError(t, err)
	return r
}

func TestDrawMomentBars(t *testing.T) {
	out := DrawMomentBars(rows(t))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, out, "End span")
	assert.Contains(t, out, "-21.22")
	assert.Len(t, lines, 3+4)
}

func TestDrawMomentCurve(t *testing.T) {
	out := DrawMomentCurve(forces.Diagram(7.83, 5.46, 30), "edge span")
	assert.Contains(t, out, "edge span")
	assert.Empty(t, DrawMomentCurve(nil, "x"))
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("RESULT", []string{"As = 654 mm²", "ok"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4+2)
	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)))
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()

	span := filepath.Join(dir, "out", "span.png")
	require.NoError(t, ExportSpanDiagram(SpanDiagramData{Load: 7.83, Span: 5.46}, span))
	_, err := os.Stat(span)
	assert.NoError(t, err)

	chart := filepath.Join(dir, "moments.svg")
	require.NoError(t, ExportMomentChart(rows(t), chart))
	_, err = os.Stat(chart)
	assert.NoError(t, err)

	assert.Error(t, ExportMomentChart(nil, chart))
}
