package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goslab/internal/diagram"
	"github.com/alexiusacademia/goslab/internal/forces"
	"github.com/alexiusacademia/goslab/internal/units"
)

var (
	forcesLoad   float64
	forcesEdge   float64
	forcesMiddle float64

	forcesShowDiagram bool
	forcesExportFile  string
)

var forcesCmd = &cobra.Command{
	Use:   "forces",
	Short: "Calculate simply supported moments and shears of both spans",
	Long: `Calculate M = qL²/8 and V = qL/2 for the edge and middle spans under
the total surface load q, taken over a 1 m strip. Spans are in mm.

Examples:
  goslab forces -q 7.83 --edge 5460 --middle 5160

  # Moment diagram of the edge span
  goslab forces -q 7.83 --edge 5460 --middle 5160 --diagram -o edge.png`,
	RunE: runForces,
}

func init() {
	rootCmd.AddCommand(forcesCmd)

	forcesCmd.Flags().Float64VarP(&forcesLoad, "load", "q", 0, "Total surface load q (kN/m²) [required]")
	forcesCmd.Flags().Float64Var(&forcesEdge, "edge", 0, "Edge span l0 (mm) [required]")
	forcesCmd.Flags().Float64Var(&forcesMiddle, "middle", 0, "Middle span l_middle (mm)")

	forcesCmd.MarkFlagRequired("load")
	forcesCmd.MarkFlagRequired("edge")

	forcesCmd.Flags().BoolVar(&forcesShowDiagram, "diagram", false, "Show ASCII moment diagram of the edge span")
	forcesCmd.Flags().StringVarP(&forcesExportFile, "output", "o", "", "Export moment and shear diagrams to file (png, svg, pdf)")
}

func runForces(cmd *cobra.Command, args []string) error {
	f, err := forces.Calculate(forcesLoad, forcesEdge, forcesMiddle)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printHeader(out, "INTERNAL FORCES (SIMPLY SUPPORTED)")

	printSection(out, "RESULT:")
	w := newTable(out)
	fmt.Fprintf(w, "  \tEdge span\tMiddle span\n")
	fmt.Fprintf(w, "  Span (m):\t%.3f\t%.3f\n", units.MMToM(forcesEdge), units.MMToM(forcesMiddle))
	fmt.Fprintf(w, "  M_max (kN·m):\t%.2f\t%.2f\n", f.EdgeMoment, f.MiddleMoment)
	fmt.Fprintf(w, "  V_max (kN):\t%.2f\t%.2f\n", f.EdgeShear, f.MiddleShear)
	w.Flush()
	fmt.Fprintln(out)

	l0 := units.MMToM(forcesEdge)
	if forcesShowDiagram {
		fmt.Fprint(out, diagram.DrawMomentCurve(forces.Diagram(forcesLoad, l0, 60),
			fmt.Sprintf("M(x) over l0 = %.2f m", l0)))
		fmt.Fprintln(out)
	}

	if forcesExportFile != "" {
		data := diagram.SpanDiagramData{Title: "Edge Span", Load: forcesLoad, Span: l0}
		if err := diagram.ExportSpanDiagram(data, forcesExportFile); err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		fmt.Fprintf(out, "Diagram exported to: %s\n", forcesExportFile)
	}
	return nil
}
