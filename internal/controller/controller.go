// Package controller connects the tic-tac-toe rules to a drawing surface.
// A Controller owns the only copy of the game state, turns pointer input
// into moves and tells its collaborators what to redraw.
package controller

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/tictactoe"
)

// Renderer draws the board on a surface.
type Renderer interface {
	// Clear erases everything drawn so far.
	Clear()

	// DrawGrid draws the lines dividing the board into cells.
	DrawGrid()

	// DrawMark draws mark centered in cell without touching other cells.
	DrawMark(mark tictactoe.Mark, cell int)
}

// StatusSink displays a single line of status text.
type StatusSink interface {
	SetStatusText(text string)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for move and reset events.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller drives one game on one surface.
// It is not safe for concurrent use; input must be delivered from a single goroutine.
type Controller struct {
	game     *tictactoe.Game
	layout   Layout
	renderer Renderer
	status   StatusSink
	logger   *log.Logger
}

// New creates a controller with a fresh game and draws the empty board.
func New(renderer Renderer, status StatusSink, layout Layout, opts ...Option) *Controller {
	c := &Controller{
		game:     tictactoe.New(),
		layout:   layout,
		renderer: renderer,
		status:   status,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Reset()
	return c
}

// Layout returns the grid geometry used to resolve clicks.
func (c *Controller) Layout() Layout {
	return c.layout
}

// Click handles a pointer press at surface coordinates (x, y).
// Returns true if a mark was placed.
func (c *Controller) Click(x, y int) bool {
	cell, ok := c.layout.CellAt(x, y)
	if !ok {
		c.logger.Debug("click outside the board", "x", x, "y", y)
		return false
	}
	return c.Select(cell)
}

// Select places the current player's mark on cell.
// Refused moves leave the game, the surface and the status untouched.
// Returns true if a mark was placed.
func (c *Controller) Select(cell int) bool {
	mark := c.game.Current()

	move, err := c.game.Play(cell, mark)
	if err != nil {
		c.logRefusal(cell, mark, err)
		return false
	}

	c.renderer.DrawMark(move.Mark, move.Cell)
	c.status.SetStatusText(c.game.Message())

	c.logger.Debug("move", "mark", move.Mark, "cell", move.Cell, "result", move.Status.Result)
	if move.Status.Over() {
		c.logger.Info("game over", "result", move.Status.Result, "winner", move.Status.Winner, "moves", c.game.Moves())
	}
	return true
}

// Reset starts a new game and redraws the empty board.
func (c *Controller) Reset() {
	c.game.Reset()
	c.renderer.Clear()
	c.renderer.DrawGrid()
	c.status.SetStatusText(c.game.Message())
	c.logger.Debug("reset")
}

// Snapshot returns the observable game state.
func (c *Controller) Snapshot() tictactoe.Snapshot {
	return c.game.Snapshot()
}

func (c *Controller) logRefusal(cell int, mark tictactoe.Mark, err error) {
	reason := "refused"
	switch {
	case errors.Is(err, tictactoe.ErrGameOver):
		reason = "game over"
	case errors.Is(err, tictactoe.ErrCellOccupied):
		reason = "occupied"
	case errors.Is(err, tictactoe.ErrInvalidCell):
		reason = "off board"
	case errors.Is(err, tictactoe.ErrNotYourTurn):
		reason = "not your turn"
	}
	c.logger.Debug("move ignored", "mark", mark, "cell", cell, "reason", reason)
}
