package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goslab/internal/config"
	"github.com/alexiusacademia/goslab/internal/loads"
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Calculate the surface loads of the floor build-up",
	Long: `Calculate the permanent, live and total surface loads (kN/m²) from the
floor layers, the ceiling load and the floor live load.

Each layer contributes thickness × density. The preset selects the load
factors: naive adds characteristic loads, refined applies 1.3G + 1.5Q.

Examples:
  # Reference build-up
  goslab loads

  # Thicker screed, unfactored
  goslab loads --mortar-thickness 30 --preset naive

  # Custom partial factors
  goslab loads --gamma-g 1.35 --gamma-q 1.4`,
	RunE: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)
	config.RegisterFlags(loadsCmd.Flags())
}

func runLoads(cmd *cobra.Command, args []string) error {
	_, opts, params, err := loadInputs(cmd)
	if err != nil {
		return err
	}
	res, err := loads.Calculate(params.Loads, opts.Combination, opts.Convention)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printHeader(out, "FLOOR SURFACE LOADS")

	printSection(out, "LAYER LOADS (kN/m²):")
	w := newTable(out)
	fmt.Fprintf(w, "  Floor tiles:\t%.3f\n", res.Brick)
	fmt.Fprintf(w, "  Cement mortar screed:\t%.3f\n", res.Mortar)
	fmt.Fprintf(w, "  Reinforced concrete slab:\t%.3f\n", res.Concrete)
	fmt.Fprintf(w, "  Suspended ceiling:\t%.3f\n", res.Ceiling)
	w.Flush()
	fmt.Fprintln(out)

	printSection(out, "RESULT:")
	w = newTable(out)
	fmt.Fprintf(w, "  Combination:\t%s\n", res.Combination)
	fmt.Fprintf(w, "  Permanent load (q_g):\t%.2f kN/m²\n", res.Permanent)
	fmt.Fprintf(w, "  Live load (q_q):\t%.2f kN/m²\n", res.Live)
	fmt.Fprintf(w, "  Total load (q):\t%.2f kN/m²\n", res.Total)
	w.Flush()
	fmt.Fprintln(out)
	return nil
}
