package flappy

import "math"

// stubRand returns a fixed choice for every Intn call.
type stubRand struct {
	pick  func(n int) int
	calls int
}

func (r *stubRand) Intn(n int) int {
	r.calls++
	if r.pick == nil {
		return 0
	}
	return r.pick(n)
}

func lowest() *stubRand  { return &stubRand{pick: func(int) int { return 0 }} }
func highest() *stubRand { return &stubRand{pick: func(n int) int { return n - 1 }} }

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
