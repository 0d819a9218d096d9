package tcellterm

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/loop"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Frontend runs the game on a raw tcell screen.
type Frontend struct {
	hold time.Duration // How long a crash frame stays up
}

// Name implements registry.Frontend.
func (Frontend) Name() string { return "tcell" }

// Description implements registry.Frontend.
func (Frontend) Description() string {
	return "Direct tcell renderer with a fixed-rate loop"
}

// Run initializes the terminal, plays one game and restores the terminal.
// The viewport is fixed to the terminal size at startup.
func (f Frontend) Run(ctx context.Context, s registry.Session) (loop.Result, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return loop.Result{}, fmt.Errorf("tcellterm: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return loop.Result{}, fmt.Errorf("tcellterm: cannot init screen: %w", err)
	}
	defer screen.Fini()

	return play(ctx, screen, s, f.hold)
}

// play runs the loop on an initialized screen.
func play(ctx context.Context, screen tcell.Screen, s registry.Session, hold time.Duration) (loop.Result, error) {
	screen.HideCursor()
	screen.Clear()
	cols, rows := screen.Size()

	seed := s.Config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sim := flappy.NewSimulation(s.Params, rand.New(rand.NewSource(seed)))

	in := NewInput()
	stop := context.AfterFunc(ctx, in.Interrupt)
	defer stop()
	go pump(screen, in)

	out := NewRenderer(screen, cols, rows, s.Params)
	pacer := loop.NewPacer(s.Pacing, s.Config.TickRate)

	res, err := loop.Run(sim, sim.NewState(rows, cols), in, out, pacer)
	if err == nil && sim.Crashed(res.Final) {
		loop.Hold(ctx, hold)
	}
	return res, err
}

func init() {
	registry.Register("tcell", func() registry.Frontend {
		return Frontend{hold: loop.FinalFrameHold}
	})
}
