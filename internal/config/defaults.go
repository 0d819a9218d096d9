package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/loop"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the hardcoded default configuration.
// It matches defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	p := flappy.DefaultParams()
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:         p.Gravity,
			JumpImpulse:     p.JumpImpulse,
			InitialVelocity: p.InitialVelocity,
			ScrollSpeed:     p.ScrollSpeed,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:  p.PipeWidth,
			PipeGap:    p.PipeGap,
			HoleHeight: p.HoleHeight,
			GapMin:     p.GapMin,
			GapMax:     p.GapMax,
			PipeCount:  p.PipeCount,
		},
		Loop: FlappyLoop{
			TickRate:    120,
			Pacing:      string(loop.PacingSleep),
			OnCollision: string(p.Policy),
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
