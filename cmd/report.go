package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/goslab/internal/config"
	"github.com/alexiusacademia/goslab/internal/diagram"
	"github.com/alexiusacademia/goslab/internal/dimension"
	"github.com/alexiusacademia/goslab/internal/forces"
	"github.com/alexiusacademia/goslab/internal/reinforcement"
	"github.com/alexiusacademia/goslab/internal/report"
	"github.com/alexiusacademia/goslab/internal/slab"
	"github.com/alexiusacademia/goslab/internal/store"
	"github.com/alexiusacademia/goslab/internal/units"
)

var (
	reportInteractive bool
	reportNoCache     bool

	reportPDF     string
	reportXLSX    string
	reportJSON    string
	reportProject string

	reportShowDiagram bool
	reportExportFile  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the full floor slab calculation",
	Long: `Run every stage from the floor build-up to the reinforcement table
and print the calculation report.

Section dimensions (h_single, h_cross, b_cross) are read from the store.
When they are missing, the midpoint of each suggested range is used, or
asked for with --interactive, and written back to the store.

Examples:
  # Reference floor with the default (refined) preset
  goslab report

  # Unfactored loads, choose dimensions interactively
  goslab report --preset naive --interactive

  # Custom spans and exports
  goslab report --ln 6000 --l1 3000 --l3 7200 --pdf slab.pdf --xlsx slab.xlsx

  # Inputs from a file, nothing remembered
  goslab report --config floor.yaml --no-cache`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	config.RegisterFlags(reportCmd.Flags())

	reportCmd.Flags().BoolVarP(&reportInteractive, "interactive", "i", false, "Ask for section dimensions that are not stored")
	reportCmd.Flags().BoolVar(&reportNoCache, "no-cache", false, "Do not read or write the dimension store")

	reportCmd.Flags().StringVar(&reportPDF, "pdf", "", "Write the report as PDF")
	reportCmd.Flags().StringVar(&reportXLSX, "xlsx", "", "Write the tables as an Excel workbook")
	reportCmd.Flags().StringVar(&reportJSON, "json", "", "Write the result as JSON ('-' for stdout)")
	reportCmd.Flags().StringVar(&reportProject, "project", "", "Project name printed on the PDF")

	reportCmd.Flags().BoolVar(&reportShowDiagram, "diagram", false, "Show ASCII moment diagrams")
	reportCmd.Flags().StringVarP(&reportExportFile, "output", "o", "", "Export moment and shear diagrams to file (png, svg, pdf)")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, opts, params, err := loadInputs(cmd)
	if err != nil {
		return err
	}

	var kv store.KV
	if reportNoCache {
		kv = store.NewMemory()
	} else if kv, err = openStore(cfg.StoreLocation()); err != nil {
		return err
	}
	defer kv.Close()

	var provider dimension.Provider = dimension.Midpoint{}
	if reportInteractive {
		provider = dimension.NewPrompt(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	calc := slab.NewCalculator(kv, provider, opts, logger)
	res, runErr := calc.Run(cmd.Context(), params)
	if res == nil {
		return runErr
	}

	var undersized *reinforcement.SectionUndersizedError
	if runErr != nil && !errors.As(runErr, &undersized) {
		return runErr
	}

	out := cmd.OutOrStdout()
	if reportJSON == "-" {
		if err := report.JSON(out, res); err != nil {
			return err
		}
		return runErr
	}

	if err := report.Full(out, res); err != nil {
		return err
	}
	if undersized == nil && len(res.Bars) > 0 {
		fmt.Fprint(out, diagram.DrawSummaryBox("GOVERNING RESULT", governingLines(res)))
		fmt.Fprintln(out)
	}
	if undersized != nil {
		printSection(out, "SECTION UNDERSIZED:")
		fmt.Fprintf(out, "  %s\n", undersized)
		fmt.Fprintln(out, "  Increase the slab thickness or the concrete grade and run again.")
		fmt.Fprintln(out)
	}

	if reportShowDiagram {
		l0 := units.MMToM(res.Span.Edge)
		fmt.Fprint(out, diagram.DrawMomentCurve(forces.Diagram(res.Loads.Total, l0, 60),
			fmt.Sprintf("Edge span M(x), q = %.2f kN/m², l0 = %.2f m", res.Loads.Total, l0)))
		fmt.Fprintln(out)
		fmt.Fprint(out, diagram.DrawMomentBars(res.Moments))
		fmt.Fprintln(out)
	}

	if err := exportReport(out, res); err != nil {
		return err
	}
	return runErr
}

func exportReport(out io.Writer, res *slab.Result) error {
	exports := []struct {
		path  string
		write func(io.Writer) error
	}{
		{reportPDF, func(w io.Writer) error {
			return report.PDF(w, res, report.PDFOptions{Project: reportProject, Author: os.Getenv("USER")})
		}},
		{reportXLSX, func(w io.Writer) error { return report.XLSX(w, res) }},
		{reportJSON, func(w io.Writer) error { return report.JSON(w, res) }},
	}
	for _, e := range exports {
		if e.path == "" {
			continue
		}
		if err := writeFile(e.path, e.write); err != nil {
			return fmt.Errorf("write %s: %w", e.path, err)
		}
		logger.Info("report written", zap.String("path", e.path))
		fmt.Fprintf(out, "Report written to: %s\n", e.path)
	}

	if reportExportFile != "" {
		data := diagram.SpanDiagramData{
			Title: "Edge Span",
			Load:  res.Loads.Total,
			Span:  units.MMToM(res.Span.Edge),
		}
		if err := diagram.ExportSpanDiagram(data, reportExportFile); err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		fmt.Fprintf(out, "Diagram exported to: %s\n", reportExportFile)
	}
	return nil
}

func governingLines(res *slab.Result) []string {
	var row reinforcement.Row
	for _, r := range res.Reinforcement {
		if r.As > row.As {
			row = r
		}
	}
	name := row.Label
	for _, m := range res.Moments {
		if m.Label == row.Label {
			name = m.Alias
		}
	}
	bar := res.Bars[0]
	return []string{
		fmt.Sprintf("q = %.2f kN/m²  (%s)", res.Loads.Total, res.Loads.Combination),
		fmt.Sprintf("%s: M = %.2f kN·m", name, row.Moment),
		fmt.Sprintf("As,req = %g mm²", row.As),
		fmt.Sprintf("Use φ%d @ %.0f mm (%.0f mm²)", bar.Diameter, bar.Spacing, bar.AsProvided),
	}
}
