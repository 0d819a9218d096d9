// Package tui provides the Bubble Tea frontend: the terminal UI loop, input
// mapping, rendering and the Wish SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/loop"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after one
// interval at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(loop.Interval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
