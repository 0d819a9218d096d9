package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// loadConfig reads the configuration file and applies explicitly set flags
// on top of it.
func loadConfig(cmd *cobra.Command) (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Loop.TickRate = flagFPS
	}
	if flags.Changed("on-collision") {
		cfg.Loop.OnCollision = flagOnCollision
	}
	if flags.Changed("pacing") {
		cfg.Loop.Pacing = flagPacing
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger creates the stderr logger for the configured level.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
