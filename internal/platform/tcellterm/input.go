package tcellterm

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Input is a one-slot mailbox between the event goroutine and the loop.
// A key that arrives while the slot is full is dropped.
type Input struct {
	mailbox     chan core.Command
	interrupted atomic.Bool
}

// NewInput creates an empty mailbox.
func NewInput() *Input {
	return &Input{mailbox: make(chan core.Command, 1)}
}

// Offer stores cmd unless a command is already waiting.
func (in *Input) Offer(cmd core.Command) bool {
	if cmd == core.CommandNone {
		return false
	}
	select {
	case in.mailbox <- cmd:
		return true
	default:
		return false
	}
}

// Interrupt makes every later Poll report a quit.
func (in *Input) Interrupt() {
	in.interrupted.Store(true)
}

// Poll implements loop.InputSource. It never blocks.
func (in *Input) Poll() core.Command {
	if in.interrupted.Load() {
		return core.CommandQuit
	}
	select {
	case cmd := <-in.mailbox:
		return cmd
	default:
		return core.CommandNone
	}
}

// commandForKey maps a tcell key event to a game command.
func commandForKey(k tcell.Key, r rune) core.Command {
	if k != tcell.KeyRune {
		return core.CommandNone
	}
	return core.CommandForRune(r)
}

// pump forwards key events from the screen until PollEvent returns nil,
// which happens once the screen is finalized.
func pump(screen tcell.Screen, in *Input) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				in.Interrupt()
				continue
			}
			in.Offer(commandForKey(ev.Key(), ev.Rune()))
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
