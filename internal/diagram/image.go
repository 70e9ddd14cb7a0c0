// Package diagram renders bending moment and shear diagrams as text or
// image files.
package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/goslab/internal/forces"
	"github.com/alexiusacademia/goslab/internal/moment"
)

// SpanDiagramData describes a simply supported span under uniform load.
type SpanDiagramData struct {
	Title string
	Load  float64 // kN/m²
	Span  float64 // m
	// Stations along the span; sampled from Load and Span when empty.
	Stations []forces.Station
}

func (d SpanDiagramData) stations() []forces.Station {
	if len(d.Stations) > 0 {
		return d.Stations
	}
	return forces.Diagram(d.Load, d.Span, 40)
}

// ExportSpanDiagram writes the moment and shear diagrams of a span. The
// format follows the file extension (png, svg, pdf); anything else gets .png.
func ExportSpanDiagram(data SpanDiagramData, filename string) error {
	st := data.stations()
	if len(st) < 2 {
		return fmt.Errorf("span diagram needs at least two stations")
	}

	p := plot.New()
	p.Title.Text = data.Title
	if p.Title.Text == "" {
		p.Title.Text = "Bending Moment and Shear"
	}
	p.X.Label.Text = "Distance from support (m)"
	p.Y.Label.Text = "M (kN·m) / V (kN)"
	p.Legend.Top = true

	mPts := make(plotter.XYs, len(st))
	vPts := make(plotter.XYs, len(st))
	peak := st[0]
	for i, s := range st {
		mPts[i] = plotter.XY{X: s.X, Y: s.Moment}
		vPts[i] = plotter.XY{X: s.X, Y: s.Shear}
		if s.Moment > peak.Moment {
			peak = s
		}
	}

	mLine, err := plotter.NewLine(mPts)
	if err != nil {
		return err
	}
	mLine.LineStyle.Width = vg.Points(2)
	mLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(mLine)
	p.Legend.Add("M(x)", mLine)

	vLine, err := plotter.NewLine(vPts)
	if err != nil {
		return err
	}
	vLine.LineStyle.Width = vg.Points(1.5)
	vLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	vLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(vLine)
	p.Legend.Add("V(x)", vLine)

	// Zero reference line
	last := st[len(st)-1]
	zero, err := plotter.NewLine(plotter.XYs{{X: st[0].X, Y: 0}, {X: last.X, Y: 0}})
	if err != nil {
		return err
	}
	zero.LineStyle.Color = color.Gray{Y: 128}
	p.Add(zero)

	peakMark, err := plotter.NewScatter(plotter.XYs{{X: peak.X, Y: peak.Moment}})
	if err != nil {
		return err
	}
	peakMark.GlyphStyle.Shape = draw.CircleGlyph{}
	peakMark.GlyphStyle.Radius = vg.Points(4)
	peakMark.GlyphStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	p.Add(peakMark)

	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: peak.X, Y: peak.Moment}},
		Labels: []string{fmt.Sprintf("Mmax=%.2f", peak.Moment)},
	})
	if err != nil {
		return err
	}
	p.Add(lbl)

	return save(p, 8*vg.Inch, 5*vg.Inch, filename)
}

// ExportMomentChart writes the moment table as a bar chart.
func ExportMomentChart(rows []moment.Row, filename string) error {
	if len(rows) == 0 {
		return fmt.Errorf("moment chart needs at least one row")
	}

	p := plot.New()
	p.Title.Text = "Design Moments"
	p.Y.Label.Text = "M (kN·m)"

	values := make(plotter.Values, len(rows))
	names := make([]string, len(rows))
	for i, r := range rows {
		values[i] = r.Moment
		names[i] = fmt.Sprintf("%s (%s)", r.Alias, r.Fraction)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{R: 100, G: 149, B: 237, A: 200}
	bars.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(bars)
	p.NominalX(names...)

	return save(p, 8*vg.Inch, 5*vg.Inch, filename)
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
