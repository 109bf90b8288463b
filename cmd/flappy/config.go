package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the effective configuration",
	Long: `Print the configuration a variant would run with, after applying the
search order: --config, ~/.flappy/configs/<variant>.yaml,
./configs/<variant>.yaml, embedded defaults.

Examples:
  flappy config
  flappy config flappy_minimal --defaults
  flappy config --config ./my-flappy.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) {
	variant := variantArg(args)
	if !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'flappy list' to see available variants.")
		os.Exit(1)
	}

	if flagDefaults {
		os.Stdout.Write(config.GetDefaultYAML(variant))
		return
	}

	cfg, err := config.Load(flagConfig, variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
