package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/goslab/internal/config"
	"github.com/alexiusacademia/goslab/internal/logging"
	"github.com/alexiusacademia/goslab/internal/version"
)

var (
	verbose    bool
	configFile string
	storeFlag  string

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "goslab",
	Short: "Reinforced Concrete Floor Slab Calculator",
	Long: `goslab - Go Reinforced Concrete Floor Slab Calculator

A CLI tool for the preliminary design of a continuous one-way floor slab
following GB 50010 / GB 50009 conventions.

This tool takes the floor build-up and spans through:
  - Permanent, live and total surface loads
  - Slab thickness and cross beam sizing (stored between runs)
  - Effective spans and simply supported internal forces
  - Moment coefficient table of the continuous strip
  - Required tension steel per strip and bar suggestions`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(verbose)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   goslab v%-48s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Reinforced Concrete Floor Slab Calculator            ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Unfactored and 1.3G + 1.5Q load presets")
		fmt.Fprintln(out, "    • Section dimensions remembered in a TOML, YAML, JSON or SQLite store")
		fmt.Fprintln(out, "    • Moment coefficient table and reinforcement design")
		fmt.Fprintln(out, "    • Text, PDF, XLSX and JSON reports with moment diagrams")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'goslab --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every calculation stage to stderr")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Input file (yaml, toml, json)")
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", config.DefaultStore, "Dimension store: file path, sqlite:<path> or memory:")
}
