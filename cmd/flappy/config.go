package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, after the file
search and flag overrides, as YAML. The output is a valid config file.

Config search order:
  --config path -> ~/.flappy/flappy.yaml -> ./configs/flappy.yaml -> built-in defaults

Examples:
  flappy config --on-collision stop
  flappy config --defaults > ~/.flappy/flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file, with comments, and ignore any config file")
}

func runConfig(cmd *cobra.Command, _ []string) {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
