package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Rand is the random source used for hole placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Pipe is a vertical obstacle with a hole for the bird to pass through.
type Pipe struct {
	X    float64 // Leading (left) edge
	GapY int     // First row of the hole, fixed at creation
}

// Band returns the columns covered by the pipe as a zero-height rectangle.
func (p Pipe) Band(width int) core.Rect {
	return core.NewRect(int(p.X), 0, width, 0)
}

// Hole returns the passable rectangle of the pipe.
func (p Pipe) Hole(width, holeHeight int) core.Rect {
	return core.NewRect(int(p.X), p.GapY, width, holeHeight)
}

// TrailingEdge returns the x-coordinate just past the pipe's right side.
func (p Pipe) TrailingEdge(width int) float64 {
	return p.X + float64(width)
}

// SampleGapY draws a hole start row from [GapMin, GapMax), narrowed so the
// whole hole stays within rows.
func SampleGapY(p Params, rows int, rng Rand) int {
	hi := p.GapMax
	if maxStart := rows - p.HoleHeight; maxStart+1 < hi {
		hi = maxStart + 1
	}
	if hi < 1 {
		hi = 1
	}
	lo := core.Clamp(p.GapMin, 0, hi-1)
	return lo + rng.Intn(hi-lo)
}

// QueueLength returns how many pipes a viewport cols wide needs: at least
// PipeCount, and enough that the rear pipe always ends past the right edge
// with one spacing of lookahead.
func QueueLength(p Params, cols int) int {
	spacing := p.Spacing()
	if spacing <= 0 {
		return p.PipeCount
	}
	return max(p.PipeCount, int(math.Ceil(float64(cols)/spacing))+2)
}

// NewPipes builds the initial queue: count pipes starting one spacing to the
// right of origin.
func NewPipes(origin float64, count int, p Params, rows int, rng Rand) []Pipe {
	pipes := make([]Pipe, 0, count+1)
	for i := 1; i <= count; i++ {
		pipes = append(pipes, Pipe{
			X:    origin + float64(i)*p.Spacing(),
			GapY: SampleGapY(p, rows, rng),
		})
	}
	return pipes
}

// Advance scrolls the queue left by ScrollSpeed and recycles at most one
// pipe: when the front pipe's trailing edge has passed column 0 it is
// dropped and a new pipe is appended one spacing behind the rearmost one.
// The input slice is not modified and the queue length is preserved.
func Advance(pipes []Pipe, p Params, rows int, rng Rand) []Pipe {
	if len(pipes) == 0 {
		panic("flappy: advance on empty pipe queue")
	}

	next := make([]Pipe, len(pipes), len(pipes)+1)
	for i, pipe := range pipes {
		pipe.X -= p.ScrollSpeed
		next[i] = pipe
	}

	if next[0].TrailingEdge(p.PipeWidth) < 0 {
		rear := next[len(next)-1]
		next = append(next[1:], Pipe{
			X:    rear.X + p.Spacing(),
			GapY: SampleGapY(p, rows, rng),
		})
	}

	return next
}
