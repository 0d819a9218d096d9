package flappy

import (
	"math/rand"
	"reflect"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// crashedState returns a state whose bird sits below the hole of the front pipe.
func crashedState() State {
	return State{
		Bird:  Bird{X: 10, Y: 20, Velocity: 0.1},
		Pipes: []Pipe{{X: 5, GapY: 10}, {X: 27, GapY: 12}, {X: 49, GapY: 14}},
		Phase: PhaseRunning,
		Rows:  40,
		Cols:  80,
	}
}

func TestNewState(t *testing.T) {
	p := DefaultParams()
	sim := NewSimulation(p, lowest())

	s := sim.NewState(24, 80)

	if s.Phase != PhaseRunning {
		t.Errorf("Phase = %v, expected Running", s.Phase)
	}
	if s.Rows != 24 || s.Cols != 80 {
		t.Errorf("Viewport = %dx%d, expected 80x24", s.Cols, s.Rows)
	}
	if s.Bird != NewBird(24, 80, p.InitialVelocity) {
		t.Errorf("Bird = %+v", s.Bird)
	}
	if len(s.Pipes) != p.PipeCount {
		t.Fatalf("Pipe count = %d, expected %d", len(s.Pipes), p.PipeCount)
	}
	if s.Pipes[0].X != 62 {
		t.Errorf("First pipe X = %f, expected 62", s.Pipes[0].X)
	}
	if sim.Colliding(s) {
		t.Error("Starting state must not collide")
	}
}

func TestStepAdvancesWorld(t *testing.T) {
	p := DefaultParams()
	sim := NewSimulation(p, lowest())
	prev := sim.NewState(24, 80)

	next := sim.Step(prev, core.CommandJump)

	if next.Bird != Integrate(prev.Bird, p.Gravity, p.JumpImpulse, core.CommandJump) {
		t.Errorf("Bird = %+v, expected integrated jump", next.Bird)
	}
	for i := range prev.Pipes {
		if next.Pipes[i].X != prev.Pipes[i].X-p.ScrollSpeed {
			t.Errorf("Pipe %d X = %f, expected %f", i, next.Pipes[i].X, prev.Pipes[i].X-p.ScrollSpeed)
		}
	}
	if next.Stopped() {
		t.Error("Jump must not stop the game")
	}
}

func TestStepQuitStillRunsTick(t *testing.T) {
	p := DefaultParams()
	sim := NewSimulation(p, lowest())
	prev := sim.NewState(24, 80)

	next := sim.Step(prev, core.CommandQuit)

	if !next.Stopped() {
		t.Fatal("Quit should stop the game")
	}
	if next.Bird.Y != prev.Bird.Y+prev.Bird.Velocity {
		t.Errorf("Physics should still run on the quit tick, Y = %f", next.Bird.Y)
	}
	if next.Pipes[0].X == prev.Pipes[0].X {
		t.Error("Pipes should still advance on the quit tick")
	}
}

func TestStepFreezeOnCollision(t *testing.T) {
	sim := NewSimulation(DefaultParams(), lowest())
	prev := crashedState()

	for _, cmd := range []core.Command{core.CommandNone, core.CommandJump} {
		next := sim.Step(prev, cmd)
		if next.Bird != prev.Bird {
			t.Errorf("%v: bird changed while colliding: %+v -> %+v", cmd, prev.Bird, next.Bird)
		}
		if !slices.Equal(next.Pipes, prev.Pipes) {
			t.Errorf("%v: pipes changed while colliding", cmd)
		}
		if next.Stopped() {
			t.Errorf("%v: freeze policy must keep the game running", cmd)
		}
	}
}

func TestStepQuitWhileFrozen(t *testing.T) {
	sim := NewSimulation(DefaultParams(), lowest())
	prev := crashedState()

	next := sim.Step(prev, core.CommandQuit)

	if !next.Stopped() {
		t.Error("Quit must work while frozen")
	}
	if next.Bird != prev.Bird || !slices.Equal(next.Pipes, prev.Pipes) {
		t.Error("Only the phase may differ on a frozen tick")
	}
}

func TestStepStopPolicy(t *testing.T) {
	p := DefaultParams()
	p.Policy = PolicyStop
	sim := NewSimulation(p, lowest())
	prev := crashedState()

	next := sim.Step(prev, core.CommandNone)

	if !next.Stopped() {
		t.Error("Stop policy should end the game on collision")
	}
	if next.Bird != prev.Bird || !slices.Equal(next.Pipes, prev.Pipes) {
		t.Error("Stop policy must not move the world on the collision tick")
	}
}

func TestCrashed(t *testing.T) {
	p := DefaultParams()
	p.Policy = PolicyStop
	sim := NewSimulation(p, lowest())

	crashed := sim.Step(crashedState(), core.CommandNone)
	if !sim.Crashed(crashed) {
		t.Error("Crashed() should be true after a stop-policy collision")
	}

	quit := sim.Step(sim.NewState(24, 80), core.CommandQuit)
	if sim.Crashed(quit) {
		t.Error("Crashed() should be false after a quit")
	}

	freeze := NewSimulation(DefaultParams(), lowest())
	frozen := freeze.Step(crashedState(), core.CommandQuit)
	if freeze.Crashed(frozen) {
		t.Error("Crashed() should be false under the freeze policy")
	}
}

func TestStepStoppedIsFixedPoint(t *testing.T) {
	sim := NewSimulation(DefaultParams(), lowest())
	prev := sim.NewState(24, 80)
	prev.Phase = PhaseStopped

	next := sim.Step(prev, core.CommandJump)

	if !reflect.DeepEqual(next, prev) {
		t.Errorf("Step on a stopped state changed it: %+v", next)
	}
}

func TestStepDoesNotMutatePrevious(t *testing.T) {
	sim := NewSimulation(DefaultParams(), rand.New(rand.NewSource(3)))
	prev := sim.NewState(24, 80)
	snapshot := prev.Clone()

	next := sim.Step(prev, core.CommandNone)
	next.Pipes[0].X = -999

	if !reflect.DeepEqual(prev, snapshot) {
		t.Error("Step or its result aliases the previous state")
	}
}

func TestCollisionFreezesWorld(t *testing.T) {
	sim := NewSimulation(DefaultParams(), rand.New(rand.NewSource(5)))
	s := sim.NewState(24, 80)

	// Without input the bird drops below the hole of the first pipe.
	crashed := false
	for i := 0; i < 5000 && !crashed; i++ {
		s = sim.Step(s, core.CommandNone)
		crashed = sim.Colliding(s)
	}
	if !crashed {
		t.Fatal("Bird should eventually hit a pipe without input")
	}

	frozen := s
	for i := 0; i < 100; i++ {
		s = sim.Step(s, core.CommandJump)
	}
	if !reflect.DeepEqual(s, frozen) {
		t.Error("World should stay frozen after a collision")
	}
}

func TestGameDeterminism(t *testing.T) {
	seed := int64(12345)
	inputs := make([]core.Command, 3000)
	for i := range inputs {
		if i%15 == 0 {
			inputs[i] = core.CommandJump
		}
	}

	run := func() []State {
		sim := NewSimulation(DefaultParams(), rand.New(rand.NewSource(seed)))
		s := sim.NewState(30, 100)
		states := make([]State, 0, len(inputs))
		for _, cmd := range inputs {
			s = sim.Step(s, cmd)
			states = append(states, s)
		}
		return states
	}

	first, second := run(), run()
	for i := range first {
		if !reflect.DeepEqual(first[i], second[i]) {
			t.Fatalf("Determinism failed at tick %d", i)
		}
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in        string
		expected  CollisionPolicy
		expectErr bool
	}{
		{"freeze", PolicyFreeze, false},
		{"stop", PolicyStop, false},
		{"", PolicyFreeze, false},
		{"restart", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePolicy(tc.in)
		if (err != nil) != tc.expectErr {
			t.Errorf("ParsePolicy(%q) error = %v, expected error %v", tc.in, err, tc.expectErr)
		}
		if got != tc.expected {
			t.Errorf("ParsePolicy(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
