package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goslab/internal/gb"
	"github.com/alexiusacademia/goslab/internal/moment"
	"github.com/alexiusacademia/goslab/internal/reinforcement"
	"github.com/alexiusacademia/goslab/internal/report"
	"github.com/alexiusacademia/goslab/internal/units"
)

var (
	reinforceMoments []float64
	reinforceWidth   float64
	reinforceHeight  float64
	reinforceCover   float64
	reinforceFc      float64
	reinforceFy      float64
	reinforceGrade   string
	reinforceSteel   string
	reinforceDigits  int
	reinforceArea    int
)

var reinforceCmd = &cobra.Command{
	Use:   "reinforce",
	Short: "Design tension steel for a list of moments",
	Long: `Calculate αs = M / (α1·fc·b·h0²), ζ = 1 - √(1 - 2αs) and
As = ζ·α1·fc·b·h0 / fy for each moment of a rectangular section.

With four moments the rows are labelled like the moment table; otherwise
they are numbered. Negative moments are designed on their magnitude.
The run stops at the first moment with αs > 0.5.

Examples:
  # Table moments of the reference slab
  goslab reinforce -m 21.22 -m -21.22 -m 14.59 -m -16.67

  # Material grades instead of strengths
  goslab reinforce -m 30 --height 150 --concrete C30 --steel HRB400`,
	RunE: runReinforce,
}

func init() {
	rootCmd.AddCommand(reinforceCmd)

	reinforceCmd.Flags().Float64SliceVarP(&reinforceMoments, "moment", "m", nil, "Design moment (kN·m), repeatable [required]")
	reinforceCmd.Flags().Float64VarP(&reinforceWidth, "width", "b", 1000, "Section width b (mm)")
	reinforceCmd.Flags().Float64Var(&reinforceHeight, "height", 120, "Section height h (mm)")
	reinforceCmd.Flags().Float64Var(&reinforceCover, "cover", 20, "Distance from tension face to bar centroid (mm)")
	reinforceCmd.Flags().Float64Var(&reinforceFc, "fc", 11.9, "Concrete design strength fc (MPa)")
	reinforceCmd.Flags().Float64Var(&reinforceFy, "fy", 360, "Steel design strength fy (MPa)")
	reinforceCmd.Flags().StringVar(&reinforceGrade, "concrete", "", "Concrete grade, overrides --fc (e.g. C25)")
	reinforceCmd.Flags().StringVar(&reinforceSteel, "steel", "", "Steel grade, overrides --fy (e.g. HRB400)")
	reinforceCmd.Flags().IntVar(&reinforceDigits, "digits", 3, "Significant digits of αs and ζ")
	reinforceCmd.Flags().IntVar(&reinforceArea, "area-decimals", 0, "Decimals of As")

	reinforceCmd.MarkFlagRequired("moment")
}

func runReinforce(cmd *cobra.Command, args []string) error {
	fc, fy := reinforceFc, reinforceFy
	var err error
	if reinforceGrade != "" {
		if fc, err = gb.ConcreteStrength(reinforceGrade); err != nil {
			return err
		}
	}
	if reinforceSteel != "" {
		if fy, err = gb.SteelStrength(reinforceSteel); err != nil {
			return err
		}
	}

	sec := reinforcement.NewSection(reinforceWidth, reinforceHeight, reinforceCover, fc, fy)
	rows, designErr := sec.Design(momentLabels(reinforceMoments), reinforcement.Rounding{
		MomentDecimals: 2,
		FactorDigits:   reinforceDigits,
		AreaDecimals:   reinforceArea,
	})
	var undersized *reinforcement.SectionUndersizedError
	if designErr != nil && !errors.As(designErr, &undersized) {
		return designErr
	}

	out := cmd.OutOrStdout()
	printHeader(out, "SLAB REINFORCEMENT DESIGN")
	if err := report.ReinforcementTable(out, sec, rows); err != nil {
		return err
	}
	if undersized != nil {
		return designErr
	}

	var governing float64
	for _, r := range rows {
		governing = max(governing, r.As)
	}
	if err := report.BarTable(out, reinforcement.SuggestBars(governing, reinforceWidth)); err != nil {
		return err
	}
	fmt.Fprintf(out, "  Governing As = %g mm² per %.0f mm strip\n\n", units.Round(governing, reinforceArea), reinforceWidth)
	return nil
}

// momentLabels names four moments after the table sections and any other
// count M1, M2, ...
func momentLabels(values []float64) []reinforcement.Moment {
	out := make([]reinforcement.Moment, len(values))
	for i, v := range values {
		label := fmt.Sprintf("M%d", i+1)
		if len(values) == len(moment.Coefficients) {
			label = moment.Coefficients[i].Label
		}
		out[i] = reinforcement.Moment{Label: label, Value: v}
	}
	return out
}
