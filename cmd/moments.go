package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goslab/internal/diagram"
	"github.com/alexiusacademia/goslab/internal/moment"
)

var (
	momentsLoad     float64
	momentsSpan     float64
	momentsDecimals int

	momentsShowDiagram bool
	momentsExportFile  string
)

var momentsCmd = &cobra.Command{
	Use:   "moments",
	Short: "Generate the moment coefficient table of the continuous strip",
	Long: `Calculate M = α·q·l0² for each section of the continuous one-way slab:

  过跨跨内  End span          α = 1/11
  B支座     Support B         α = -1/11
  中间跨内  Interior span     α = 1/16
  中间支座  Interior support  α = -1/14

Examples:
  goslab moments -q 7.83 --l0 5460

  # Bar chart of the table
  goslab moments -q 7.83 --l0 5460 --diagram -o moments.svg`,
	RunE: runMoments,
}

func init() {
	rootCmd.AddCommand(momentsCmd)

	momentsCmd.Flags().Float64VarP(&momentsLoad, "load", "q", 0, "Total surface load q (kN/m²) [required]")
	momentsCmd.Flags().Float64Var(&momentsSpan, "l0", 0, "Effective edge span l0 (mm) [required]")
	momentsCmd.Flags().IntVar(&momentsDecimals, "decimals", 2, "Decimals of the moments, -1 to keep full precision")

	momentsCmd.MarkFlagRequired("load")
	momentsCmd.MarkFlagRequired("l0")

	momentsCmd.Flags().BoolVar(&momentsShowDiagram, "diagram", false, "Show ASCII bar chart of the moments")
	momentsCmd.Flags().StringVarP(&momentsExportFile, "output", "o", "", "Export bar chart to file (png, svg, pdf)")
}

func runMoments(cmd *cobra.Command, args []string) error {
	rows, err := moment.Table(momentsLoad, momentsSpan, momentsDecimals)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printHeader(out, "CONTINUOUS SLAB MOMENT TABLE")

	printSection(out, "INPUT DATA:")
	w := newTable(out)
	fmt.Fprintf(w, "  Total load (q):\t%.2f kN/m²\n", momentsLoad)
	fmt.Fprintf(w, "  Effective span (l0):\t%.0f mm\n", momentsSpan)
	w.Flush()
	fmt.Fprintln(out)

	printSection(out, "MOMENTS:")
	w = newTable(out)
	fmt.Fprintf(w, "  Section\t\tα\tM (kN·m)\n")
	fmt.Fprintf(w, "  ───────\t\t─\t────────\n")
	for _, r := range rows {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%.2f\n", r.Label, r.Alias, r.Fraction, r.Moment)
	}
	w.Flush()
	fmt.Fprintln(out)

	if momentsShowDiagram {
		fmt.Fprint(out, diagram.DrawMomentBars(rows))
		fmt.Fprintln(out)
	}

	if momentsExportFile != "" {
		if err := diagram.ExportMomentChart(rows, momentsExportFile); err != nil {
			return fmt.Errorf("export chart: %w", err)
		}
		fmt.Fprintf(out, "Chart exported to: %s\n", momentsExportFile)
	}
	return nil
}
