// flappy is a terminal side-scroller: steer a falling bird through a stream
// of pipes.
//
// Usage:
//
//	flappy play              - Play in the current terminal
//	flappy serve             - Start SSH server for remote play
//	flappy frontends         - List available frontends
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>        - Custom game config YAML
//	--fps <rate>           - Set tick rate (default: from config, 120)
//	--on-collision <mode>  - freeze or stop
//	--pacing <mode>        - sleep or step
//	--log-level <level>    - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-flappy/internal/platform/tcellterm"
	_ "github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	// Global flags
	flagConfig      string
	flagFPS         int
	flagOnCollision string
	flagPacing      string
	flagLogLevel    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - Steer a bird through the pipes in your terminal",
	Long: `Flappy is a terminal side-scroller. The bird falls under gravity,
space makes it flap, and pipes scroll in from the right.

Available commands:
  play       - Play in the current terminal
  serve      - Start SSH server for remote play
  frontends  - Show all available frontends
  config     - Print the effective configuration

Examples:
  flappy play
  flappy play --frontend tcell --pacing step
  flappy play --on-collision stop --seed 42
  flappy serve --ssh :2222
  flappy config > my-flappy.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 120, "Tick rate (overrides loop.tick_rate)")
	rootCmd.PersistentFlags().StringVar(&flagOnCollision, "on-collision", "freeze", "Collision policy: freeze, stop (overrides loop.on_collision)")
	rootCmd.PersistentFlags().StringVar(&flagPacing, "pacing", "sleep", "Loop pacing: sleep, step (overrides loop.pacing)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(configCmd)
}
