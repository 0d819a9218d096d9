// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/loop"
)

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Physics   FlappyPhysics   `yaml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Loop      FlappyLoop      `yaml:"loop"`
}

// FlappyPhysics defines physics parameters.
type FlappyPhysics struct {
	Gravity         float64 `yaml:"gravity"`
	JumpImpulse     float64 `yaml:"jump_impulse"`
	InitialVelocity float64 `yaml:"initial_velocity"`
	ScrollSpeed     float64 `yaml:"scroll_speed"`
}

// FlappyObstacles defines pipe stream parameters.
type FlappyObstacles struct {
	PipeWidth  int `yaml:"pipe_width"`
	PipeGap    int `yaml:"pipe_gap"`
	HoleHeight int `yaml:"hole_height"`
	GapMin     int `yaml:"gap_min"` // inclusive
	GapMax     int `yaml:"gap_max"` // exclusive
	PipeCount  int `yaml:"pipe_count"`
}

// FlappyLoop defines timing and end-of-game behaviour.
type FlappyLoop struct {
	TickRate    int    `yaml:"tick_rate"`
	Pacing      string `yaml:"pacing"`
	OnCollision string `yaml:"on_collision"`
}

// Validate checks the configuration for values the simulation cannot run with.
func (c FlappyConfig) Validate() error {
	var errs []error

	o := c.Obstacles
	if o.PipeWidth <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.pipe_width must be positive, got %d", o.PipeWidth))
	}
	if o.PipeGap < 0 {
		errs = append(errs, fmt.Errorf("obstacles.pipe_gap must not be negative, got %d", o.PipeGap))
	}
	if o.HoleHeight <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.hole_height must be positive, got %d", o.HoleHeight))
	}
	if o.GapMin < 0 || o.GapMax <= o.GapMin {
		errs = append(errs, fmt.Errorf("obstacles gap range [%d, %d) is empty or negative", o.GapMin, o.GapMax))
	}
	if o.PipeCount <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.pipe_count must be positive, got %d", o.PipeCount))
	}

	if c.Physics.ScrollSpeed < 0 {
		errs = append(errs, fmt.Errorf("physics.scroll_speed must not be negative, got %g", c.Physics.ScrollSpeed))
	}

	if c.Loop.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("loop.tick_rate must be positive, got %d", c.Loop.TickRate))
	}
	if _, err := loop.ParsePacing(c.Loop.Pacing); err != nil {
		errs = append(errs, err)
	}
	if _, err := flappy.ParsePolicy(c.Loop.OnCollision); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Pacing returns the parsed loop pacing mode.
func (c FlappyConfig) Pacing() (loop.Pacing, error) {
	p, err := loop.ParsePacing(c.Loop.Pacing)
	if err != nil {
		return "", fmt.Errorf("config: loop.pacing: %w", err)
	}
	return p, nil
}

// Params converts the configuration into simulation parameters.
// The configuration is expected to be valid.
func (c FlappyConfig) Params() flappy.Params {
	policy, err := flappy.ParsePolicy(c.Loop.OnCollision)
	if err != nil {
		policy = flappy.PolicyFreeze
	}

	return flappy.Params{
		Gravity:         c.Physics.Gravity,
		JumpImpulse:     c.Physics.JumpImpulse,
		InitialVelocity: c.Physics.InitialVelocity,
		ScrollSpeed:     c.Physics.ScrollSpeed,
		PipeWidth:       c.Obstacles.PipeWidth,
		PipeGap:         c.Obstacles.PipeGap,
		HoleHeight:      c.Obstacles.HoleHeight,
		GapMin:          c.Obstacles.GapMin,
		GapMax:          c.Obstacles.GapMax,
		PipeCount:       c.Obstacles.PipeCount,
		Policy:          policy,
	}
}
