package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goslab/internal/config"
	"github.com/alexiusacademia/goslab/internal/dimension"
)

var (
	dimsSlab      int
	dimsBeamDepth int
	dimsBeamWidth int
	dimsL1        float64
	dimsL3        float64
)

var dimsCmd = &cobra.Command{
	Use:   "dims",
	Short: "Inspect or change the stored section dimensions",
	Long: `The slab thickness (h_single), cross beam depth (h_cross) and cross beam
width (b_cross) are chosen once and kept in the store selected with --store.
Later runs reuse them even when the spans change.`,
}

var dimsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored dimensions and the ranges for the given spans",
	Long: `Print the stored dimensions and the suggested ranges for l1 and l3.

Examples:
  goslab dims show
  goslab dims show --l1 3000 --l3 7200 --store sqlite:slab.db`,
	RunE: runDimsShow,
}

var dimsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove the stored dimensions",
	RunE:  runDimsReset,
}

var dimsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store explicit dimensions",
	Long: `Store explicit section dimensions (mm).

Examples:
  goslab dims set --h-single 100 --h-cross 600 --b-cross 250`,
	RunE: runDimsSet,
}

func init() {
	rootCmd.AddCommand(dimsCmd)
	dimsCmd.AddCommand(dimsShowCmd, dimsResetCmd, dimsSetCmd)

	dimsShowCmd.Flags().Float64Var(&dimsL1, "l1", 2700, "Span used for slab thickness, l1 (mm)")
	dimsShowCmd.Flags().Float64Var(&dimsL3, "l3", 6900, "Cross beam span, l3 (mm)")

	dimsSetCmd.Flags().IntVar(&dimsSlab, "h-single", 0, "One-way slab thickness (mm) [required]")
	dimsSetCmd.Flags().IntVar(&dimsBeamDepth, "h-cross", 0, "Cross beam depth (mm) [required]")
	dimsSetCmd.Flags().IntVar(&dimsBeamWidth, "b-cross", 0, "Cross beam width (mm) [required]")
	dimsSetCmd.MarkFlagRequired("h-single")
	dimsSetCmd.MarkFlagRequired("h-cross")
	dimsSetCmd.MarkFlagRequired("b-cross")
}

func dimsStoreLocation(cmd *cobra.Command) (string, error) {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return "", err
	}
	return cfg.StoreLocation(), nil
}

func runDimsShow(cmd *cobra.Command, args []string) error {
	location, err := dimsStoreLocation(cmd)
	if err != nil {
		return err
	}
	kv, err := openStore(location)
	if err != nil {
		return err
	}
	defer kv.Close()

	out := cmd.OutOrStdout()
	printHeader(out, "SECTION DIMENSIONS")
	fmt.Fprintf(out, "  Store: %s\n\n", location)

	depth := dimension.BeamDepthRange(dimsL3)
	ranges := map[string]dimension.Range{
		dimension.KeySlabThickness: dimension.SlabThicknessRange(dimsL1),
		dimension.KeyBeamDepth:     depth,
		dimension.KeyBeamWidth:     dimension.BeamWidthRange(depth.Midpoint()),
	}

	printSection(out, "STORED VALUES:")
	w := newTable(out)
	fmt.Fprintf(w, "  Key\tStored\tSuggested range\n")
	fmt.Fprintf(w, "  ───\t──────\t───────────────\n")
	for _, k := range dimension.Keys {
		v, ok, err := kv.Get(k)
		if err != nil {
			return err
		}
		if !ok {
			v = "-"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", k, v, ranges[k])
	}
	w.Flush()
	fmt.Fprintln(out)
	return nil
}

func runDimsReset(cmd *cobra.Command, args []string) error {
	location, err := dimsStoreLocation(cmd)
	if err != nil {
		return err
	}
	kv, err := openStore(location)
	if err != nil {
		return err
	}
	defer kv.Close()

	if err := dimension.Clear(kv); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Stored dimensions removed from %s\n", location)
	return nil
}

func runDimsSet(cmd *cobra.Command, args []string) error {
	location, err := dimsStoreLocation(cmd)
	if err != nil {
		return err
	}
	kv, err := openStore(location)
	if err != nil {
		return err
	}
	defer kv.Close()

	s := dimension.Sections{SlabThickness: dimsSlab, BeamDepth: dimsBeamDepth, BeamWidth: dimsBeamWidth}
	if err := dimension.Save(kv, s); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Stored h_single=%d h_cross=%d b_cross=%d in %s\n",
		s.SlabThickness, s.BeamDepth, s.BeamWidth, location)
	return nil
}
