package core

// RuntimeConfig contains configuration passed to a frontend at startup.
// The viewport dimensions come from the terminal, not from the game.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 120,
		Seed:     0, // 0 means use current time in platform layer
	}
}
