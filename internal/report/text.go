// Package report renders a slab calculation as a console report, tables,
// PDF, spreadsheet or JSON document.
package report

import (
	"bytes"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/goslab/internal/moment"
	"github.com/alexiusacademia/goslab/internal/reinforcement"
	"github.com/alexiusacademia/goslab/internal/slab"
	"github.com/alexiusacademia/goslab/internal/version"
)

const (
	banner = "═══════════════════════════════════════════════════════════════"
	rule   = "───────────────────────────────────────────────────────────────"
)

type sheet struct {
	buf bytes.Buffer
}

func (s *sheet) line(format string, args ...any) {
	fmt.Fprintf(&s.buf, format+"\n", args...)
}

func (s *sheet) heading(title string) {
	s.line("%s", title)
	s.line("%s", rule)
}

// table writes tab-separated rows aligned with a tabwriter.
func (s *sheet) table(rows ...string) {
	w := tabwriter.NewWriter(&s.buf, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintln(w, r)
	}
	w.Flush()
	s.line("")
}

func (s *sheet) flush(w io.Writer) error {
	_, err := w.Write(s.buf.Bytes())
	return err
}

// Text writes the four report sections: layout inputs, loads, section
// dimensions, spans and forces.
func Text(w io.Writer, res *slab.Result) error {
	var s sheet
	p := res.Params
	l := p.Loads

	s.line("")
	s.line("%s", banner)
	s.line("          FLOOR SLAB CALCULATION REPORT")
	s.line("%s", banner)
	s.line("  %s | preset %s | %s | lengths in %s", version.String(), res.Options.Preset, res.Loads.Combination, res.Options.Convention)
	s.line("")

	s.heading("1. FLOOR LAYOUT:")
	s.table(
		fmt.Sprintf("  Floor tiles:\t%g mm\t%g kN/m³", l.Brick.Thickness, l.Brick.Density),
		fmt.Sprintf("  Cement mortar screed:\t%g mm\t%g kN/m³", l.Mortar.Thickness, l.Mortar.Density),
		fmt.Sprintf("  Reinforced concrete slab:\t%g mm\t%g kN/m³", l.Concrete.Thickness, l.Concrete.Density),
		fmt.Sprintf("  Suspended ceiling:\t%g kN/m²\t", l.Ceiling),
		fmt.Sprintf("  Floor live load:\t%g kN/m²\t", l.Live),
	)

	s.heading("2. LOADS:")
	s.table(
		fmt.Sprintf("  Permanent load (q_g):\t%.2f kN/m²", res.Loads.Permanent),
		fmt.Sprintf("  Live load (q_q):\t%.2f kN/m²", res.Loads.Live),
		fmt.Sprintf("  Total load (q):\t%.2f kN/m²", res.Loads.Total),
	)

	s.heading("3. SECTION DIMENSIONS:")
	source := "chosen"
	if res.Sections.Cached {
		source = "stored"
	}
	s.table(
		fmt.Sprintf("  One-way slab thickness (h_single):\t%d mm\t%s", res.Sections.SlabThickness, source),
		fmt.Sprintf("  Cross beam depth (h_cross):\t%d mm\t%s", res.Sections.BeamDepth, source),
		fmt.Sprintf("  Cross beam width (b_cross):\t%d mm\t%s", res.Sections.BeamWidth, source),
	)

	s.heading("4. SPANS AND INTERNAL FORCES:")
	s.table(
		fmt.Sprintf("  Edge span (l0):\t%.2f mm", res.Span.Edge),
		fmt.Sprintf("  Middle span (l_middle):\t%.2f mm", res.Span.Middle),
		fmt.Sprintf("  Edge span max moment:\t%.2f kN·m", res.Forces.EdgeMoment),
		fmt.Sprintf("  Edge span max shear:\t%.2f kN", res.Forces.EdgeShear),
		fmt.Sprintf("  Middle span max moment:\t%.2f kN·m", res.Forces.MiddleMoment),
		fmt.Sprintf("  Middle span max shear:\t%.2f kN", res.Forces.MiddleShear),
	)

	if len(res.Warnings) > 0 {
		s.heading("WARNINGS:")
		for _, msg := range res.Warnings {
			s.line("  ! %s", msg)
		}
		s.line("")
	}
	return s.flush(w)
}

// MomentTable writes the moment distribution rows in table order.
func MomentTable(w io.Writer, rows []moment.Row) error {
	var s sheet
	s.heading("MOMENT DISTRIBUTION TABLE:")
	lines := []string{"  Section\tα\tM (kN·m)", "  ───────\t─\t────────"}
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("  %s\t%s\t%.2f", r.Label, r.Fraction, r.Moment))
	}
	s.table(lines...)
	return s.flush(w)
}

// ReinforcementTable writes one row per design moment.
func ReinforcementTable(w io.Writer, sec reinforcement.Section, rows []reinforcement.Row) error {
	var s sheet
	s.heading("REINFORCEMENT TABLE:")
	s.line("  Section: %s", sec)
	s.line("")
	lines := []string{"  Section\tM (kN·m)\tαs\tζ\tAs (mm²)", "  ───────\t────────\t──\t─\t────────"}
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("  %s\t%.2f\t%g\t%g\t%g", r.Label, r.Moment, r.AlphaS, r.Zeta, r.As))
	}
	s.table(lines...)
	return s.flush(w)
}

// BarTable lists bar layouts covering the governing steel area.
func BarTable(w io.Writer, bars []reinforcement.BarOption) error {
	if len(bars) == 0 {
		return nil
	}
	var s sheet
	s.heading("SUGGESTED BARS (governing As):")
	lines := []string{"  Bars\tAs Provided", "  ────\t───────────"}
	for _, b := range bars {
		lines = append(lines, fmt.Sprintf("  φ%d @ %.0f\t%.0f mm²", b.Diameter, b.Spacing, b.AsProvided))
	}
	s.table(lines...)
	return s.flush(w)
}

// Full writes the report followed by both tables and the bar suggestions.
func Full(w io.Writer, res *slab.Result) error {
	if err := Text(w, res); err != nil {
		return err
	}
	if err := MomentTable(w, res.Moments); err != nil {
		return err
	}
	if err := ReinforcementTable(w, res.Section, res.Reinforcement); err != nil {
		return err
	}
	return BarTable(w, res.Bars)
}
