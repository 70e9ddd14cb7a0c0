package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goslab/internal/span"
)

var (
	spanClear   float64
	spanHeight  float64
	spanSupport float64
	spanBeam    float64
)

var spanCmd = &cobra.Command{
	Use:   "span",
	Short: "Calculate the effective spans of the slab strip",
	Long: `Calculate the effective edge span l0 = min(l_n + h/2, l_n + a/2) and the
middle span l_middle = l0 - beam width. All lengths are in mm.

Examples:
  # Reference geometry with a 678 mm cross beam
  goslab span --ln 5400 --height 678 --support 120 --beam-width 300`,
	RunE: runSpan,
}

func init() {
	rootCmd.AddCommand(spanCmd)

	spanCmd.Flags().Float64Var(&spanClear, "ln", 5400, "Clear span l_n (mm)")
	spanCmd.Flags().Float64Var(&spanHeight, "height", 0, "Section height h (mm) [required]")
	spanCmd.Flags().Float64VarP(&spanSupport, "support", "a", 120, "Support bearing width a (mm)")
	spanCmd.Flags().Float64Var(&spanBeam, "beam-width", 300, "Intermediate beam width (mm)")

	spanCmd.MarkFlagRequired("height")
}

func runSpan(cmd *cobra.Command, args []string) error {
	g, err := span.Calculate(span.Input{
		ClearSpan:    spanClear,
		Height:       spanHeight,
		SupportWidth: spanSupport,
		BeamWidth:    spanBeam,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printHeader(out, "EFFECTIVE SPANS")

	printSection(out, "INPUT DATA:")
	w := newTable(out)
	fmt.Fprintf(w, "  Clear span (l_n):\t%.0f mm\n", spanClear)
	fmt.Fprintf(w, "  Section height (h):\t%.0f mm\n", spanHeight)
	fmt.Fprintf(w, "  Support width (a):\t%.0f mm\n", spanSupport)
	fmt.Fprintf(w, "  Beam width:\t%.0f mm\n", spanBeam)
	w.Flush()
	fmt.Fprintln(out)

	printSection(out, "RESULT:")
	w = newTable(out)
	fmt.Fprintf(w, "  l_n + h/2:\t%.2f mm\n", spanClear+spanHeight/2)
	fmt.Fprintf(w, "  l_n + a/2:\t%.2f mm\n", spanClear+spanSupport/2)
	fmt.Fprintf(w, "  Edge span (l0):\t%.2f mm\n", g.Edge)
	fmt.Fprintf(w, "  Middle span (l_middle):\t%.2f mm\n", g.Middle)
	w.Flush()
	fmt.Fprintln(out)

	if g.Warning != "" {
		fmt.Fprintf(out, "  ⚠ WARNING: %s\n\n", g.Warning)
	}
	return nil
}
