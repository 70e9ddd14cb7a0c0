package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goslab/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goslab",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
		fmt.Fprintln(cmd.OutOrStdout(), "Reinforced Concrete Floor Slab Calculator")
		fmt.Fprintln(cmd.OutOrStdout(), "Loads and coefficients per GB 50009 / GB 50010")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
