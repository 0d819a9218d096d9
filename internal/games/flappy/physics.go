package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Bird is the player entity. X is fixed for the whole game; the world scrolls
// past it.
type Bird struct {
	X        float64
	Y        float64 // Row, grows downwards
	Velocity float64 // Rows per tick, negative = upward
}

// Ascending reports whether the bird is moving up.
func (b Bird) Ascending() bool {
	return b.Velocity < 0
}

// NewBird places the bird for a viewport of the given size.
func NewBird(rows, cols int, velocity float64) Bird {
	return Bird{
		X:        float64(cols) / 8.0,
		Y:        float64(rows) / 2.5,
		Velocity: velocity,
	}
}

// Integrate advances the bird by one tick. A jump replaces the velocity, it
// does not add to it. No floor or ceiling is applied here.
func Integrate(b Bird, gravity, jumpImpulse float64, cmd core.Command) Bird {
	if cmd == core.CommandJump {
		b.Velocity = jumpImpulse
	}
	b.Y += b.Velocity
	b.Velocity += gravity
	return b
}
