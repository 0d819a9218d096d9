// Package flappy implements the Flappy Bird simulation core.
// A bird falls under constant acceleration and must pass through the holes of
// pipes scrolling from right to left. Every tick produces a new State value
// from the previous one plus at most one input command.
package flappy

import "fmt"

// CollisionPolicy decides what a tick does once the bird is inside a pipe.
type CollisionPolicy string

const (
	// PolicyFreeze stops advancing the world while input, including quit,
	// is still processed. The game never ends on its own.
	PolicyFreeze CollisionPolicy = "freeze"
	// PolicyStop moves the game into the Stopped phase on collision.
	PolicyStop CollisionPolicy = "stop"
)

// ParsePolicy converts a policy name into a CollisionPolicy.
func ParsePolicy(name string) (CollisionPolicy, error) {
	switch CollisionPolicy(name) {
	case PolicyFreeze, PolicyStop:
		return CollisionPolicy(name), nil
	case "":
		return PolicyFreeze, nil
	}
	return "", fmt.Errorf("flappy: unknown collision policy %q", name)
}

// Params holds the tunables of the simulation. Velocities and distances are
// in cells per tick.
type Params struct {
	Gravity         float64 // Added to velocity every tick
	JumpImpulse     float64 // Velocity set by a jump (negative = up)
	InitialVelocity float64 // Bird velocity at game start
	ScrollSpeed     float64 // Leftward pipe movement per tick

	PipeWidth  int // Width of a pipe in columns
	PipeGap    int // Columns between a pipe's trailing edge and the next pipe
	HoleHeight int // Rows of the passable hole
	GapMin     int // Lowest hole start row (inclusive)
	GapMax     int // Highest hole start row (exclusive)
	PipeCount  int // Length of the pipe queue

	Policy CollisionPolicy
}

// DefaultParams returns the classic tuning for a 120 ticks per second loop.
func DefaultParams() Params {
	return Params{
		Gravity:         0.005,
		JumpImpulse:     -0.2,
		InitialVelocity: 0.2,
		ScrollSpeed:     0.2,
		PipeWidth:       10,
		PipeGap:         12,
		HoleHeight:      7,
		GapMin:          10,
		GapMax:          20,
		PipeCount:       19,
		Policy:          PolicyFreeze,
	}
}

// Spacing returns the distance between the leading edges of adjacent pipes.
func (p Params) Spacing() float64 {
	return float64(p.PipeWidth + p.PipeGap)
}
