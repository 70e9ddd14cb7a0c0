package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/goslab/internal/slab"
)

// Sheet names of the workbook written by XLSX.
const (
	SheetSummary       = "Summary"
	SheetMoments       = "Moments"
	SheetReinforcement = "Reinforcement"
)

// XLSX writes a workbook with a summary sheet and one sheet per table.
func XLSX(w io.Writer, res *slab.Result) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SheetSummary); err != nil {
		return err
	}
	for _, name := range []string{SheetMoments, SheetReinforcement} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	p := res.Params
	summary := [][]interface{}{
		{"Quantity", "Value", "Unit"},
		{"Preset", res.Options.Preset, ""},
		{"Combination", res.Loads.Combination, ""},
		{"Tile thickness", p.Loads.Brick.Thickness, "mm"},
		{"Screed thickness", p.Loads.Mortar.Thickness, "mm"},
		{"Slab thickness", p.Loads.Concrete.Thickness, "mm"},
		{"Ceiling load", p.Loads.Ceiling, "kN/m²"},
		{"Live load input", p.Loads.Live, "kN/m²"},
		{"q_g", res.Loads.Permanent, "kN/m²"},
		{"q_q", res.Loads.Live, "kN/m²"},
		{"q_total", res.Loads.Total, "kN/m²"},
		{"h_single", res.Sections.SlabThickness, "mm"},
		{"h_cross", res.Sections.BeamDepth, "mm"},
		{"b_cross", res.Sections.BeamWidth, "mm"},
		{"l0", res.Span.Edge, "mm"},
		{"l_middle", res.Span.Middle, "mm"},
		{"M_max_edge", res.Forces.EdgeMoment, "kN·m"},
		{"V_max_edge", res.Forces.EdgeShear, "kN"},
		{"M_max_middle", res.Forces.MiddleMoment, "kN·m"},
		{"V_max_middle", res.Forces.MiddleShear, "kN"},
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return err
	}

	moments := [][]interface{}{{"Section", "Alias", "Coefficient", "Fraction", "M (kN·m)"}}
	for _, r := range res.Moments {
		moments = append(moments, []interface{}{r.Label, r.Alias, r.Coefficient, r.Fraction, r.Moment})
	}
	if err := writeRows(f, SheetMoments, moments); err != nil {
		return err
	}

	steel := [][]interface{}{{"Section", "M (kN·m)", "alpha_s", "zeta", "As (mm²)"}}
	for _, r := range res.Reinforcement {
		steel = append(steel, []interface{}{r.Label, r.Moment, r.AlphaS, r.Zeta, r.As})
	}
	if err := writeRows(f, SheetReinforcement, steel); err != nil {
		return err
	}

	_, err := f.WriteTo(w)
	return err
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := r
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
