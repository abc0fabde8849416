package core

// Action represents a semantic input action, abstracted from physical key presses.
// The platform maps keys to actions so the board logic never sees raw keys.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // W, K, Up arrow - move cursor up
	ActionDown          // S, J, Down arrow - move cursor down
	ActionLeft          // A, H, Left arrow - move cursor left
	ActionRight         // D, L, Right arrow - move cursor right
	ActionPlace         // Enter, Space - place a mark under the cursor
	ActionReset         // R - start a new game
	ActionHelp          // ? - toggle full help
	ActionQuit          // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPlace:
		return "Place"
	case ActionReset:
		return "Reset"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
