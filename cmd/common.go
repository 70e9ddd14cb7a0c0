package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goslab/internal/config"
	"github.com/alexiusacademia/goslab/internal/slab"
	"github.com/alexiusacademia/goslab/internal/store"
)

const (
	banner = "═══════════════════════════════════════════════════════════════"
	rule   = "───────────────────────────────────────────────────────────────"
)

func printHeader(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "          %s\n", title)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w)
}

func printSection(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// loadInputs reads the config file, environment and flags of cmd.
func loadInputs(cmd *cobra.Command) (config.Config, slab.Options, slab.Params, error) {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return config.Config{}, slab.Options{}, slab.Params{}, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return config.Config{}, slab.Options{}, slab.Params{}, err
	}
	params, err := cfg.Inputs()
	if err != nil {
		return config.Config{}, slab.Options{}, slab.Params{}, err
	}
	logger.Debug("configuration loaded")
	return cfg, opts, params, nil
}

func openStore(location string) (store.KV, error) {
	kv, err := store.Open(location)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", location, err)
	}
	return kv, nil
}

// writeFile creates path and hands it to write.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
