package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/goslab/internal/slab"
	"github.com/alexiusacademia/goslab/internal/version"
)

// PDFOptions set the document header.
type PDFOptions struct {
	Project string
	Author  string
	Title   string
	Date    time.Time
}

// PDF writes the report and both tables as an A4 document. The core fonts
// have no CJK glyphs, so table sections use their ASCII aliases.
func PDF(w io.Writer, res *slab.Result, opts PDFOptions) error {
	if opts.Title == "" {
		opts.Title = "Floor Slab Calculation Report"
	}
	if opts.Date.IsZero() {
		opts.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(opts.Title, true)
	pdf.SetCreator(version.String(), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(opts.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	if opts.Project != "" {
		pdf.Cell(0, 5, tr("Project: "+opts.Project))
		pdf.Ln(5)
	}
	if opts.Author != "" {
		pdf.Cell(0, 5, tr("Author: "+opts.Author))
		pdf.Ln(5)
	}
	pdf.Cell(0, 5, fmt.Sprintf("Date: %s", opts.Date.Format("2006-01-02")))
	pdf.Ln(5)
	pdf.Cell(0, 5, tr(fmt.Sprintf("Preset: %s (%s)", res.Options.Preset, res.Loads.Combination)))
	pdf.Ln(9)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, tr(title))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
	}
	pair := func(label, value string) {
		pdf.CellFormat(90, 6, tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(value), "", 1, "L", false, 0, "")
	}

	p := res.Params
	section("1. Floor layout")
	pair("Floor tiles", fmt.Sprintf("%g mm, %g kN/m³", p.Loads.Brick.Thickness, p.Loads.Brick.Density))
	pair("Cement mortar screed", fmt.Sprintf("%g mm, %g kN/m³", p.Loads.Mortar.Thickness, p.Loads.Mortar.Density))
	pair("Reinforced concrete slab", fmt.Sprintf("%g mm, %g kN/m³", p.Loads.Concrete.Thickness, p.Loads.Concrete.Density))
	pair("Suspended ceiling", fmt.Sprintf("%g kN/m²", p.Loads.Ceiling))
	pair("Floor live load", fmt.Sprintf("%g kN/m²", p.Loads.Live))
	pdf.Ln(3)

	section("2. Loads")
	pair("Permanent load q_g", fmt.Sprintf("%.2f kN/m²", res.Loads.Permanent))
	pair("Live load q_q", fmt.Sprintf("%.2f kN/m²", res.Loads.Live))
	pair("Total load q", fmt.Sprintf("%.2f kN/m²", res.Loads.Total))
	pdf.Ln(3)

	section("3. Section dimensions")
	pair("One-way slab thickness h_single", fmt.Sprintf("%d mm", res.Sections.SlabThickness))
	pair("Cross beam depth h_cross", fmt.Sprintf("%d mm", res.Sections.BeamDepth))
	pair("Cross beam width b_cross", fmt.Sprintf("%d mm", res.Sections.BeamWidth))
	pdf.Ln(3)

	section("4. Spans and internal forces")
	pair("Edge span l0", fmt.Sprintf("%.2f mm", res.Span.Edge))
	pair("Middle span l_middle", fmt.Sprintf("%.2f mm", res.Span.Middle))
	pair("Edge span max moment", fmt.Sprintf("%.2f kN·m", res.Forces.EdgeMoment))
	pair("Edge span max shear", fmt.Sprintf("%.2f kN", res.Forces.EdgeShear))
	pair("Middle span max moment", fmt.Sprintf("%.2f kN·m", res.Forces.MiddleMoment))
	pair("Middle span max shear", fmt.Sprintf("%.2f kN", res.Forces.MiddleShear))
	pdf.Ln(3)

	header := func(widths []float64, cols ...string) {
		pdf.SetFont("Helvetica", "B", 10)
		for i, c := range cols {
			pdf.CellFormat(widths[i], 7, tr(c), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
	}
	row := func(widths []float64, cols ...string) {
		for i, c := range cols {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, tr(c), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	section("Moment distribution")
	mw := []float64{60, 30, 40}
	header(mw, "Section", "Coefficient", "M (kN·m)")
	for _, r := range res.Moments {
		row(mw, r.Alias, r.Fraction, fmt.Sprintf("%.2f", r.Moment))
	}
	pdf.Ln(5)

	section("Reinforcement")
	pdf.Cell(0, 6, tr(sanitize(res.Section.String())))
	pdf.Ln(7)
	rw := []float64{50, 30, 30, 30, 30}
	header(rw, "Section", "M (kN·m)", "alpha_s", "zeta", "As (mm²)")
	aliases := aliasIndex(res)
	for _, r := range res.Reinforcement {
		row(rw, aliases[r.Label], fmt.Sprintf("%.2f", r.Moment), fmt.Sprintf("%g", r.AlphaS), fmt.Sprintf("%g", r.Zeta), fmt.Sprintf("%g", r.As))
	}

	if len(res.Warnings) > 0 {
		pdf.Ln(5)
		section("Warnings")
		for _, msg := range res.Warnings {
			pdf.MultiCell(0, 5, tr(msg), "", "L", false)
		}
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	return pdf.Output(w)
}

func aliasIndex(res *slab.Result) map[string]string {
	m := make(map[string]string, len(res.Moments))
	for _, r := range res.Moments {
		m[r.Label] = r.Alias
	}
	return m
}

func sanitize(s string) string {
	return strings.NewReplacer("α", "alpha", "ζ", "zeta", "φ", "d").Replace(s)
}
