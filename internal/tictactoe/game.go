package tictactoe

import (
	"errors"
	"fmt"
)

// Errors returned by Play when a move is refused. None of them changes the game.
var (
	ErrGameOver     = errors.New("game is already decided")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrNotYourTurn  = errors.New("it's not your turn")
)

// Move describes an accepted move and the status it produced.
type Move struct {
	Cell   int
	Mark   Mark
	Status Status
}

// Game holds the state of one match. The zero value is not ready; use New.
type Game struct {
	board   Board
	current Mark
	status  Status
	moves   int
}

// New returns a game with an empty board and X to move.
func New() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// Reset clears the board and gives the first move to X.
func (g *Game) Reset() {
	g.board = Board{}
	g.current = X
	g.status = Status{Result: InProgress}
	g.moves = 0
}

// Play places mark on cell. The move is refused if the game is decided,
// the cell is off the board or taken, or mark is not the player to move.
// On success the turn passes to the other mark unless the move ended the game.
func (g *Game) Play(cell int, mark Mark) (Move, error) {
	if g.status.Over() {
		return Move{}, ErrGameOver
	}

	if !ValidCell(cell) {
		return Move{}, fmt.Errorf("%w: %d", ErrInvalidCell, cell)
	}

	if g.board[cell] != Empty {
		return Move{}, ErrCellOccupied
	}

	if mark != g.current {
		return Move{}, ErrNotYourTurn
	}

	g.board[cell] = mark
	g.moves++
	g.status = Evaluate(g.board)

	if !g.status.Over() {
		g.current = mark.Other()
	}

	return Move{Cell: cell, Mark: mark, Status: g.status}, nil
}

// Board returns a copy of the board.
func (g *Game) Board() Board {
	return g.board
}

// Current returns the mark whose turn it is. After the game is decided it
// keeps the mark that made the last move.
func (g *Game) Current() Mark {
	return g.current
}

// Status returns the current outcome.
func (g *Game) Status() Status {
	return g.status
}

// Moves returns the number of accepted moves since the last reset.
func (g *Game) Moves() int {
	return g.moves
}

// Message returns the line shown to the players.
func (g *Game) Message() string {
	return StatusMessage(g.status, g.current)
}

// StatusMessage formats the player-facing text for a status with current to move.
func StatusMessage(s Status, current Mark) string {
	switch s.Result {
	case Won:
		return fmt.Sprintf("%s wins!", s.Winner)
	case Draw:
		return "It's a draw!"
	default:
		return fmt.Sprintf("%s's turn", current)
	}
}
