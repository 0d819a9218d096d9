// Package loop drives the simulation with a synchronous
// poll -> step -> render -> wait cycle at a fixed tick rate.
package loop

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// InputSource yields at most one command per tick. Poll must not block;
// it returns core.CommandNone when no key is pending.
type InputSource interface {
	Poll() core.Command
}

// Renderer presents a snapshot to the player.
type Renderer interface {
	Render(s flappy.State) error
}

// Result summarizes a finished run.
type Result struct {
	Final flappy.State
	Ticks int
}

// Run ticks the simulation from state until it reaches the Stopped phase.
// The termination flag is checked once per iteration, before polling input.
func Run(sim *flappy.Simulation, state flappy.State, in InputSource, out Renderer, pacer Pacer) (Result, error) {
	res := Result{Final: state}

	for !res.Final.Stopped() {
		cmd := in.Poll()
		res.Final = sim.Step(res.Final, cmd)
		res.Ticks++

		if err := out.Render(res.Final); err != nil {
			return res, fmt.Errorf("loop: render failed at tick %d: %w", res.Ticks, err)
		}

		pacer.Wait()
	}

	return res, nil
}
