package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/goslab/internal/forces"
	"github.com/alexiusacademia/goslab/internal/moment"
)

// DrawMomentCurve plots the bending moment along a simply supported span.
func DrawMomentCurve(stations []forces.Station, caption string) string {
	if len(stations) < 2 {
		return ""
	}
	values := make([]float64, len(stations))
	for i, s := range stations {
		values[i] = s.Moment
	}
	graph := asciigraph.Plot(values,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Precision(1),
		asciigraph.Offset(4),
		asciigraph.Caption(caption),
	)
	return "\n" + graph + "\n"
}

// DrawMomentBars draws one horizontal bar per table row, positive moments to
// the right of the axis and negative ones to the left.
func DrawMomentBars(rows []moment.Row) string {
	var sb strings.Builder

	half := 24
	var peak float64
	for _, r := range rows {
		peak = math.Max(peak, math.Abs(r.Moment))
	}
	scale := 0.0
	if peak > 0 {
		scale = float64(half) / peak
	}

	sb.WriteString("\n")
	sb.WriteString("  MOMENT DISTRIBUTION\n")
	sb.WriteString("  ───────────────────\n\n")

	for _, r := range rows {
		n := int(math.Round(math.Abs(r.Moment) * scale))
		left := strings.Repeat(" ", half)
		right := ""
		if r.Moment < 0 {
			left = strings.Repeat(" ", half-n) + strings.Repeat("█", n)
		} else {
			right = strings.Repeat("█", n)
		}
		sb.WriteString(fmt.Sprintf("  %-16s %s│%-*s %8.2f kN·m\n", r.Alias, left, half, right, r.Moment))
	}
	return sb.String()
}

// DrawSummaryBox frames a title and lines of text.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := func(s string) int { return len([]rune(s)) }
	maxLen := width(title)
	for _, line := range lines {
		if width(line) > maxLen {
			maxLen = width(line)
		}
	}
	maxLen += 4

	pad := func(s string) string {
		return s + strings.Repeat(" ", maxLen-2-width(s))
	}

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
