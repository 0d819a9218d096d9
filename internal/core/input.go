package core

// Command is a semantic game command, abstracted from physical key presses.
// The zero value means no input was sampled this tick.
type Command int

const (
	CommandNone Command = iota
	CommandJump         // Space - flap upwards
	CommandQuit         // Q - stop the game
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandJump:
		return "Jump"
	case CommandQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// CommandForRune maps a single typed character to a command.
// Any character other than space and 'q' yields CommandNone.
func CommandForRune(r rune) Command {
	switch r {
	case ' ':
		return CommandJump
	case 'q':
		return CommandQuit
	}
	return CommandNone
}
