package tui

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/loop"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

// Model is the Bubble Tea model for a running game.
type Model struct {
	sim      *flappy.Simulation
	state    flappy.State
	params   flappy.Params
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	pending  core.Command // First command since the last tick
	ticks    int
	hold     time.Duration // How long a crash frame stays up
	ending   bool          // Showing the crash frame
	quitting bool
}

// finalFrameMsg ends the crash frame hold.
type finalFrameMsg struct{}

// NewModel creates a model and its starting state for the configured viewport.
func NewModel(params flappy.Params, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		params: params,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		hold:   loop.FinalFrameHold,
		screen: core.NewScreen(cfg.ScreenW, playfieldRows(cfg.ScreenH)),
	}
	m.help.Width = cfg.ScreenW
	m.reset()
	return m
}

// playfieldRows returns the rows left for the game under the help bar.
func playfieldRows(height int) int {
	if height > helpHeight {
		return height - helpHeight
	}
	return height
}

// reset builds a fresh world for the current viewport.
func (m *Model) reset() {
	m.sim = flappy.NewSimulation(m.params, rand.New(rand.NewSource(m.config.Seed)))
	m.state = m.sim.NewState(m.screen.Height(), m.screen.Width())
	m.pending = core.CommandNone
	m.ticks = 0
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case finalFrameMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey records at most one command per tick; later keys are dropped.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Interrupt) {
		m.quitting = true
		return m, tea.Quit
	}

	// Any key leaves the crash frame early
	if m.ending {
		m.quitting = true
		return m, tea.Quit
	}

	if m.pending == core.CommandNone {
		m.pending = m.keys.Command(msg)
	}
	return m, nil
}

// handleResize rebuilds the world when the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	rows := playfieldRows(msg.Height)
	if rows == m.state.Rows && msg.Width == m.state.Cols {
		return m, nil
	}

	// Note: the viewport is only known once the terminal reports it, so a
	// resize starts a new game instead of stretching the old one.
	m.screen.Resize(msg.Width, rows)
	m.reset()
	return m, nil
}

// handleTick advances the simulation by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.ending {
		return m, nil
	}

	m.state = m.sim.Step(m.state, m.pending)
	m.pending = core.CommandNone
	m.ticks++

	if m.sim.Crashed(m.state) && m.hold > 0 {
		m.ending = true
		return m, tea.Tick(m.hold, func(time.Time) tea.Msg {
			return finalFrameMsg{}
		})
	}
	if m.state.Stopped() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	flappy.Render(m.screen, m.state, m.params)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the current snapshot.
func (m Model) State() flappy.State {
	return m.state
}

// Ticks returns the number of ticks since the last reset.
func (m Model) Ticks() int {
	return m.ticks
}

// Frontend runs the game inside a Bubble Tea program.
type Frontend struct{}

// Name implements registry.Frontend.
func (Frontend) Name() string { return "tea" }

// Description implements registry.Frontend.
func (Frontend) Description() string {
	return "Bubble Tea renderer with a help bar (default)"
}

// Run starts the Bubble Tea program and blocks until the game stops.
func (Frontend) Run(ctx context.Context, s registry.Session) (loop.Result, error) {
	model := NewModel(s.Params, s.Config)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	res := loop.Result{}
	if fm, ok := final.(Model); ok {
		res = loop.Result{Final: fm.State(), Ticks: fm.Ticks()}
	}

	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return res, nil
		}
		return res, fmt.Errorf("tui: program failed: %w", err)
	}
	return res, nil
}

func init() {
	registry.Register("tea", func() registry.Frontend {
		return Frontend{}
	})
}
