// Package tcellterm provides the tcell frontend: a synchronous loop that
// polls a key mailbox, steps the simulation and draws straight to a tcell
// screen.
package tcellterm

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// cellStyles maps core.Color to tcell styles.
var cellStyles = map[core.Color]tcell.Style{
	core.ColorDefault: tcell.StyleDefault,
	core.ColorPipe:    tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorBird:    tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	core.ColorAlert:   tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
}

func styleFor(c core.Color) tcell.Style {
	if st, ok := cellStyles[c]; ok {
		return st
	}
	return tcell.StyleDefault
}

// Renderer draws snapshots onto a tcell screen through an intermediate
// core.Screen, so both frontends share the same picture.
type Renderer struct {
	screen tcell.Screen
	buf    *core.Screen
	params flappy.Params
}

// NewRenderer creates a renderer for a viewport of cols x rows cells.
func NewRenderer(screen tcell.Screen, cols, rows int, p flappy.Params) *Renderer {
	return &Renderer{
		screen: screen,
		buf:    core.NewScreen(cols, rows),
		params: p,
	}
}

// Render implements loop.Renderer.
func (r *Renderer) Render(s flappy.State) error {
	flappy.Render(r.buf, s, r.params)

	for y := range r.buf.Height() {
		for x := range r.buf.Width() {
			cell := r.buf.GetCell(x, y)
			r.screen.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color))
		}
	}
	r.screen.Show()
	return nil
}
