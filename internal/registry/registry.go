// Package registry provides a global registry for frontend factories.
// Frontends register themselves in init() functions, allowing the CLI to
// discover and instantiate them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/loop"
)

// Session carries everything a frontend needs to run one game.
type Session struct {
	Config core.RuntimeConfig
	Params flappy.Params
	Pacing loop.Pacing // Ignored by frontends that pace themselves
}

// Frontend couples a terminal driver with the simulation.
// It owns terminal setup and teardown, input polling and drawing.
type Frontend interface {
	// Name returns a unique identifier used by the --frontend flag.
	Name() string

	// Description returns a one-line summary for listings.
	Description() string

	// Run plays one game until it stops, the player interrupts it or ctx is
	// cancelled. It returns the last snapshot and the number of ticks run.
	Run(ctx context.Context, s Session) (loop.Result, error)
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	Name        string
	Description string
}

// Factory is a function that creates a new frontend instance.
type Factory func() Frontend

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Panics if a frontend with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = f().Description()
}

// List returns information about all registered frontends, sorted by name.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for name := range factories {
		result = append(result, FrontendInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a frontend by name.
// Returns an error if the name is not registered.
func Create(name string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", name)
	}

	return f(), nil
}

// Exists checks if a frontend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
