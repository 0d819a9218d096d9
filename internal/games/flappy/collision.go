package flappy

// IsColliding reports whether the bird's cell lies in the solid part of any
// pipe. Both coordinates are truncated to whole cells.
func IsColliding(b Bird, pipes []Pipe, width, holeHeight int) bool {
	col, row := int(b.X), int(b.Y)
	for _, p := range pipes {
		if !p.Band(width).SpansColumn(col) {
			continue
		}
		if !p.Hole(width, holeHeight).Contains(col, row) {
			return true
		}
	}
	return false
}
