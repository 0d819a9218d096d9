package core

// Color is the role of a screen cell. Frontends pick the actual terminal
// color for each role.
type Color uint8

const (
	ColorDefault Color = iota // Sky, box borders, hints
	ColorPipe
	ColorBird
	ColorAlert // Crash and game over titles
)
