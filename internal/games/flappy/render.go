package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	PipeChar       = '#'
	BirdAscending  = 'p'
	BirdDescending = 'b'
)

// Render draws a snapshot to the screen. Pipe cells are drawn exactly where
// the collision judge considers them solid.
func Render(dst *core.Screen, s State, p Params) {
	dst.Clear()

	for _, pipe := range s.Pipes {
		if int(pipe.X) >= dst.Width() {
			break // Queue is ordered, the rest is off-screen too
		}
		drawPipe(dst, pipe, p)
	}

	glyph := BirdDescending
	if s.Bird.Ascending() {
		glyph = BirdAscending
	}
	dst.SetColored(int(s.Bird.X), int(s.Bird.Y), glyph, core.ColorBird)

	if IsColliding(s.Bird, s.Pipes, p.PipeWidth, p.HoleHeight) {
		if p.Policy == PolicyStop {
			drawCenteredMessage(dst, "GAME OVER", "You hit a pipe")
		} else {
			drawCenteredMessage(dst, "CRASHED", "Press Q to quit")
		}
	}
}

// drawPipe renders a single pipe to the screen.
func drawPipe(dst *core.Screen, pipe Pipe, p Params) {
	band := pipe.Band(p.PipeWidth)
	hole := pipe.Hole(p.PipeWidth, p.HoleHeight)
	for y := 0; y < dst.Height(); y++ {
		for x := band.X; x < band.Right(); x++ {
			if !hole.Contains(x, y) {
				dst.SetColored(x, y, PipeChar, core.ColorPipe)
			}
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextCenteredColored(box.Y+1, title, core.ColorAlert)
	dst.DrawTextCentered(box.Y+3, subtitle)
}
