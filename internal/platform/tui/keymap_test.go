package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestKeyMapCommand(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Command
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.CommandJump},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.CommandQuit},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.CommandNone},
		{"Q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Q'}}, core.CommandNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.CommandNone},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.CommandNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Command(tc.msg); got != tc.expected {
				t.Errorf("Command(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) != 3 {
		t.Errorf("ShortHelp has %d bindings, expected 3", len(keys.ShortHelp()))
	}
	if len(keys.FullHelp()) != 1 {
		t.Errorf("FullHelp has %d groups, expected 1", len(keys.FullHelp()))
	}
}
