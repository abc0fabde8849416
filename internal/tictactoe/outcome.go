package tictactoe

// Result is the coarse state of a game.
type Result uint8

const (
	InProgress Result = iota
	Won
	Draw
)

// String returns a human-readable name for the result.
func (r Result) String() string {
	switch r {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Status is the outcome of a board.
// Winner and Line are only meaningful when Result is Won.
type Status struct {
	Result Result
	Winner Mark
	Line   [3]int
}

// Over returns true once the game is decided.
func (s Status) Over() bool {
	return s.Result != InProgress
}

// Evaluate determines the status of b. The first line in Lines held
// entirely by one mark wins; otherwise a full board is a draw.
func Evaluate(b Board) Status {
	for _, line := range Lines {
		a := b[line[0]]
		if a != Empty && a == b[line[1]] && a == b[line[2]] {
			return Status{Result: Won, Winner: a, Line: line}
		}
	}

	if b.Full() {
		return Status{Result: Draw}
	}

	return Status{Result: InProgress}
}
