package flappy

import (
	"slices"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Phase is the lifecycle phase of a game.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseStopped       // Terminal, the frontend exits
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhaseStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// State is an immutable snapshot of one tick. Step never modifies a State it
// receives; it returns a new value with its own pipe slice.
type State struct {
	Bird  Bird
	Pipes []Pipe // Ordered nearest first
	Phase Phase
	Rows  int // Viewport height supplied by the frontend
	Cols  int // Viewport width supplied by the frontend
}

// Stopped reports whether the game has reached its terminal phase.
func (s State) Stopped() bool {
	return s.Phase == PhaseStopped
}

// Clone returns a copy of the state that shares no memory with s.
func (s State) Clone() State {
	s.Pipes = slices.Clone(s.Pipes)
	return s
}

// Simulation owns the parameters and the random source of a game and turns
// one State into the next.
type Simulation struct {
	params Params
	rng    Rand
}

// NewSimulation creates a simulation with an injected random source.
func NewSimulation(p Params, rng Rand) *Simulation {
	return &Simulation{params: p, rng: rng}
}

// Params returns the simulation tunables.
func (s *Simulation) Params() Params {
	return s.params
}

// NewState creates the starting snapshot for a viewport of rows x cols.
func (s *Simulation) NewState(rows, cols int) State {
	return State{
		Bird:  NewBird(rows, cols, s.params.InitialVelocity),
		Pipes: NewPipes(float64(cols/2), QueueLength(s.params, cols), s.params, rows, s.rng),
		Phase: PhaseRunning,
		Rows:  rows,
		Cols:  cols,
	}
}

// Colliding reports whether the bird is inside a pipe in the given state.
func (s *Simulation) Colliding(st State) bool {
	return IsColliding(st.Bird, st.Pipes, s.params.PipeWidth, s.params.HoleHeight)
}

// Crashed reports whether st ended because the bird hit a pipe under the
// stop policy. Frontends keep such a final frame on screen for a moment.
func (s *Simulation) Crashed(st State) bool {
	return st.Stopped() && s.params.Policy == PolicyStop && s.Colliding(st)
}

// Step advances the game by one tick.
//
// Quit marks the result Stopped but the rest of the tick still runs. A bird
// that is colliding freezes the world: bird and pipes are returned unchanged
// and only the phase may differ. A Stopped state is returned as is.
func (s *Simulation) Step(prev State, cmd core.Command) State {
	next := prev.Clone()
	if prev.Stopped() {
		return next
	}

	if cmd == core.CommandQuit {
		next.Phase = PhaseStopped
	}

	if s.Colliding(prev) {
		if s.params.Policy == PolicyStop {
			next.Phase = PhaseStopped
		}
		return next
	}

	next.Bird = Integrate(prev.Bird, s.params.Gravity, s.params.JumpImpulse, cmd)
	next.Pipes = Advance(prev.Pipes, s.params, prev.Rows, s.rng)
	return next
}
