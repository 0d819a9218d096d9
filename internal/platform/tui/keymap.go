package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap translates Bubble Tea key messages to game commands.
// It also feeds the help bar, so bindings and their hints stay in one place.
type KeyMap struct {
	Jump      key.Binding
	Quit      key.Binding
	Interrupt key.Binding
}

// DefaultKeyMap returns the standard bindings: space flaps, q quits.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "flap"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit now"),
		),
	}
}

// Command maps a key to a game command. Unbound keys yield CommandNone.
func (k KeyMap) Command(msg tea.KeyMsg) core.Command {
	switch {
	case key.Matches(msg, k.Jump):
		return core.CommandJump
	case key.Matches(msg, k.Quit):
		return core.CommandQuit
	}
	return core.CommandNone
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Quit, k.Interrupt}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
