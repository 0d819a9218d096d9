package flappy

import (
	"math/rand"
	"testing"
)

func TestSampleGapY(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name     string
		rows     int
		rng      *stubRand
		expected int
	}{
		{"tall viewport lowest", 40, lowest(), 10},
		{"tall viewport highest", 40, highest(), 19},
		{"short viewport clamps top of range", 24, highest(), 17},
		{"short viewport keeps lowest", 24, lowest(), 10},
		{"tiny viewport collapses to row 0", 5, highest(), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SampleGapY(p, tc.rows, tc.rng)
			if got != tc.expected {
				t.Errorf("SampleGapY(rows=%d) = %d, expected %d", tc.rows, got, tc.expected)
			}
		})
	}
}

func TestSampleGapYStaysOnScreen(t *testing.T) {
	p := DefaultParams()
	rng := rand.New(rand.NewSource(7))

	for rows := 1; rows < 60; rows++ {
		for i := 0; i < 200; i++ {
			gap := SampleGapY(p, rows, rng)
			if gap < 0 {
				t.Fatalf("rows=%d: gap %d is above the screen", rows, gap)
			}
			if rows >= p.HoleHeight && gap+p.HoleHeight > rows {
				t.Fatalf("rows=%d: hole [%d, %d) leaves the screen", rows, gap, gap+p.HoleHeight)
			}
			if rows >= p.GapMax+p.HoleHeight && (gap < p.GapMin || gap >= p.GapMax) {
				t.Fatalf("rows=%d: gap %d outside configured range", rows, gap)
			}
		}
	}
}

func TestNewPipes(t *testing.T) {
	p := DefaultParams()
	pipes := NewPipes(40, p.PipeCount, p, 40, lowest())

	if len(pipes) != p.PipeCount {
		t.Fatalf("NewPipes() returned %d pipes, expected %d", len(pipes), p.PipeCount)
	}
	if pipes[0].X != 62 {
		t.Errorf("First pipe X = %f, expected 62", pipes[0].X)
	}
	for i := 1; i < len(pipes); i++ {
		if d := pipes[i].X - pipes[i-1].X; d != p.Spacing() {
			t.Errorf("Pipes %d and %d are %f apart, expected %f", i-1, i, d, p.Spacing())
		}
	}
}

func TestAdvanceScrollsWithoutEviction(t *testing.T) {
	p := DefaultParams()
	p.ScrollSpeed = 0.2
	pipes := []Pipe{{X: 100, GapY: 10}, {X: 122, GapY: 11}, {X: 144, GapY: 12}}
	rng := lowest()

	got := Advance(pipes, p, 40, rng)

	if len(got) != 3 {
		t.Fatalf("Advance() changed queue length to %d", len(got))
	}
	for i := range pipes {
		if got[i].X != pipes[i].X-0.2 {
			t.Errorf("Pipe %d X = %f, expected %f", i, got[i].X, pipes[i].X-0.2)
		}
		if got[i].GapY != pipes[i].GapY {
			t.Errorf("Pipe %d GapY changed from %d to %d", i, pipes[i].GapY, got[i].GapY)
		}
	}
	if rng.calls != 0 {
		t.Errorf("No pipe should be spawned, rng was called %d times", rng.calls)
	}
}

func TestAdvanceEvictsFrontPipe(t *testing.T) {
	p := DefaultParams()
	pipes := []Pipe{{X: -10.1, GapY: 10}, {X: 11.9, GapY: 11}, {X: 33.9, GapY: 12}}

	got := Advance(pipes, p, 40, highest())

	if len(got) != 3 {
		t.Fatalf("Advance() changed queue length to %d", len(got))
	}
	if !approxEqual(got[0].X, 11.7) {
		t.Errorf("Front pipe X = %f, expected 11.7", got[0].X)
	}
	rear, prev := got[2], got[1]
	if !approxEqual(rear.X-prev.X, p.Spacing()) {
		t.Errorf("Spawned pipe is %f behind the rearmost, expected %f", rear.X-prev.X, p.Spacing())
	}
	if rear.GapY != 19 {
		t.Errorf("Spawned pipe GapY = %d, expected 19", rear.GapY)
	}
}

func TestAdvanceKeepsPipeOnZeroEdge(t *testing.T) {
	p := DefaultParams()
	p.ScrollSpeed = 0
	pipes := []Pipe{{X: -10, GapY: 10}, {X: 12, GapY: 10}}

	got := Advance(pipes, p, 40, lowest())
	if got[0].X != -10 {
		t.Errorf("Trailing edge at 0 should not evict, front X = %f", got[0].X)
	}
}

func TestAdvanceRecyclesAtMostOnePipe(t *testing.T) {
	p := DefaultParams()
	pipes := []Pipe{{X: -40}, {X: -30}, {X: 5}}

	got := Advance(pipes, p, 40, lowest())

	if len(got) != 3 {
		t.Fatalf("Advance() changed queue length to %d", len(got))
	}
	if !approxEqual(got[0].X, -30.2) {
		t.Errorf("Only one pipe should be evicted per tick, front X = %f", got[0].X)
	}
}

func TestAdvanceDoesNotModifyInput(t *testing.T) {
	p := DefaultParams()
	pipes := []Pipe{{X: -10.1, GapY: 10}, {X: 11.9, GapY: 11}}
	before := append([]Pipe(nil), pipes...)

	Advance(pipes, p, 40, lowest())

	for i := range pipes {
		if pipes[i] != before[i] {
			t.Errorf("Advance() mutated input pipe %d: %+v -> %+v", i, before[i], pipes[i])
		}
	}
}

func TestAdvanceQueueInvariants(t *testing.T) {
	p := DefaultParams()
	rng := rand.New(rand.NewSource(99))
	pipes := NewPipes(40, p.PipeCount, p, 40, rng)
	n := len(pipes)

	for tick := 0; tick < 20000; tick++ {
		front := pipes[0]
		pipes = Advance(pipes, p, 40, rng)

		if len(pipes) != n {
			t.Fatalf("tick %d: queue length %d, expected %d", tick, len(pipes), n)
		}
		spawned := !approxEqual(pipes[0].X, front.X-p.ScrollSpeed)
		if spawned {
			last, prev := pipes[n-1], pipes[n-2]
			if !approxEqual(last.X-prev.X, p.Spacing()) {
				t.Fatalf("tick %d: spawned pipe %f behind rearmost, expected %f", tick, last.X-prev.X, p.Spacing())
			}
		}
		for i := 1; i < n; i++ {
			if pipes[i].X <= pipes[i-1].X {
				t.Fatalf("tick %d: queue not ordered at %d", tick, i)
			}
		}
	}
}

func TestQueueLength(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		cols     int
		expected int
	}{
		{80, p.PipeCount},
		{374, p.PipeCount}, // ceil(374/22) + 2 = 19
		{396, 20},
		{600, 30},  // ceil(600/22) + 2
		{1000, 48}, // ceil(1000/22) + 2
	}

	for _, tc := range tests {
		if got := QueueLength(p, tc.cols); got != tc.expected {
			t.Errorf("QueueLength(%d) = %d, expected %d", tc.cols, got, tc.expected)
		}
	}
}

func TestWideViewportStaysCovered(t *testing.T) {
	p := DefaultParams()
	const rows, cols = 40, 600
	rng := rand.New(rand.NewSource(3))
	sim := NewSimulation(p, rng)
	pipes := sim.NewState(rows, cols).Pipes

	for tick := 0; tick < 20000; tick++ {
		pipes = Advance(pipes, p, rows, rng)
		rear := pipes[len(pipes)-1]
		if edge := rear.TrailingEdge(p.PipeWidth); edge < cols {
			t.Fatalf("tick %d: rear pipe ends at %.1f, expected at least %d", tick, edge, cols)
		}
	}
}

func TestAdvanceEmptyQueuePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Advance() on an empty queue should panic")
		}
	}()
	Advance(nil, DefaultParams(), 40, lowest())
}
