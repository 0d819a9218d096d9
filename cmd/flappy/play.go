package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var (
	flagFrontend string
	flagSeed     int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space    - Flap
  Q        - Quit
  Ctrl+C   - Exit immediately

Collision options:
  freeze - The world stops on impact, press Q to leave (default)
  stop   - The game ends on impact

Examples:
  flappy play
  flappy play --frontend tcell
  flappy play --seed 42 --fps 60
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "tea", "Frontend: tea, tcell (run 'flappy frontends')")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	logger, err := newLogger("flappy")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !registry.Exists(flagFrontend) {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q\n", flagFrontend)
		fmt.Fprintln(os.Stderr, "Run 'flappy frontends' to see available frontends.")
		os.Exit(1)
	}

	fileCfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size before the frontend takes over
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = fileCfg.Loop.TickRate
	rc.Seed = flagSeed

	pacing, err := fileCfg.Pacing()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	session := registry.Session{
		Config: rc,
		Params: fileCfg.Params(),
		Pacing: pacing,
	}

	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating frontend: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("session starting",
		"frontend", frontend.Name(),
		"size", fmt.Sprintf("%dx%d", rc.ScreenW, rc.ScreenH),
		"fps", session.Config.TickRate,
		"pacing", session.Pacing,
		"on_collision", session.Params.Policy,
	)

	res, runErr := frontend.Run(ctx, session)
	if runErr != nil {
		logger.Error("game failed", "frontend", frontend.Name(), "err", runErr)
		stop()
		os.Exit(1)
	}

	logger.Info("session ended",
		"frontend", frontend.Name(),
		"ticks", res.Ticks,
		"phase", res.Final.Phase,
	)
}
