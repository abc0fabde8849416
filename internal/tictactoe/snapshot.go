package tictactoe

// Snapshot captures the complete observable state of a game.
type Snapshot struct {
	Board   Board
	Current Mark
	Status  Status
	Message string
	Moves   int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:   g.board,
		Current: g.current,
		Status:  g.status,
		Message: g.Message(),
		Moves:   g.moves,
	}
}
