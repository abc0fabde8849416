package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playAll applies moves for whoever is to move, failing on any refusal.
func playAll(t *testing.T, g *Game, cells ...int) {
	t.Helper()
	for i, cell := range cells {
		_, err := g.Play(cell, g.Current())
		require.NoError(t, err, "move %d (cell %d)", i, cell)
	}
}

func TestNewGame(t *testing.T) {
	// When: a new game is created
	g := New()

	// Then: the board is empty and X is to move
	require.NotNil(t, g)
	assert.Equal(t, Board{}, g.Board())
	assert.Equal(t, X, g.Current())
	assert.Equal(t, InProgress, g.Status().Result)
	assert.Equal(t, "X's turn", g.Message())
	assert.Zero(t, g.Moves())
}

func TestGame_Play(t *testing.T) {
	t.Run("accepted move passes the turn", func(t *testing.T) {
		// Given: a new game
		g := New()

		// When: X plays the centre
		move, err := g.Play(4, X)

		// Then: the move is recorded and O is to move
		require.NoError(t, err)
		assert.Equal(t, Move{Cell: 4, Mark: X, Status: Status{Result: InProgress}}, move)
		assert.Equal(t, X, g.Board()[4])
		assert.Equal(t, O, g.Current())
		assert.Equal(t, "O's turn", g.Message())
	})

	t.Run("turns alternate until the game ends", func(t *testing.T) {
		g := New()
		want := X
		for _, cell := range []int{0, 4, 8, 2} {
			require.Equal(t, want, g.Current())
			_, err := g.Play(cell, want)
			require.NoError(t, err)
			want = want.Other()
		}
		assert.Equal(t, X, g.Current())
	})

	t.Run("occupied cell is refused", func(t *testing.T) {
		// Given: X holds cell 0
		g := New()
		playAll(t, g, 0)
		before := g.Snapshot()

		// When: O tries the same cell
		_, err := g.Play(0, O)

		// Then: the game is untouched
		require.ErrorIs(t, err, ErrCellOccupied)
		assert.Equal(t, before, g.Snapshot())
		assert.Equal(t, X, g.Board()[0])
		assert.Equal(t, O, g.Current())
	})

	t.Run("playing out of turn is refused", func(t *testing.T) {
		g := New()

		_, err := g.Play(1, O)

		require.ErrorIs(t, err, ErrNotYourTurn)
		assert.Equal(t, New().Snapshot(), g.Snapshot())
	})

	t.Run("cells outside the board are refused", func(t *testing.T) {
		g := New()

		for _, cell := range []int{-1, 9, 20} {
			_, err := g.Play(cell, X)
			assert.ErrorIs(t, err, ErrInvalidCell, "cell %d", cell)
		}
		assert.Equal(t, New().Snapshot(), g.Snapshot())
	})

	t.Run("moves after a win are refused", func(t *testing.T) {
		// Given: X has won
		g := New()
		playAll(t, g, 0, 3, 1, 4, 2)
		require.Equal(t, Won, g.Status().Result)
		before := g.Snapshot()

		// When: another move is attempted
		_, err := g.Play(5, g.Current().Other())

		// Then: it is refused and nothing changes
		require.ErrorIs(t, err, ErrGameOver)
		assert.Equal(t, before, g.Snapshot())
	})
}

func TestGame_ColumnWinScenario(t *testing.T) {
	// Given: a new game
	g := New()

	// When: X takes the first column while O plays 1 and 4
	playAll(t, g, 0, 1, 3, 4)
	move, err := g.Play(6, X)

	// Then: X wins on the fifth move and the board locks
	require.NoError(t, err)
	assert.Equal(t, Status{Result: Won, Winner: X, Line: [3]int{0, 3, 6}}, move.Status)
	assert.Equal(t, "X wins!", g.Message())
	assert.Equal(t, 5, g.Moves())

	_, err = g.Play(8, O)
	assert.ErrorIs(t, err, ErrGameOver)
	assert.Equal(t, Empty, g.Board()[8])
}

func TestGame_DrawScenario(t *testing.T) {
	// Given: a new game
	g := New()

	// When: X plays 0,1,5,6,8 and O plays 2,3,4,7
	playAll(t, g, 0, 2, 1, 3, 5, 4, 6, 7, 8)

	// Then: the game is a draw
	assert.Equal(t, Draw, g.Status().Result)
	assert.Equal(t, "It's a draw!", g.Message())
	assert.Equal(t, 5, g.Board().Count(X))
	assert.Equal(t, 4, g.Board().Count(O))
}

func TestGame_Reset(t *testing.T) {
	t.Run("reset after a win", func(t *testing.T) {
		// Given: a won game
		g := New()
		playAll(t, g, 0, 1, 3, 4, 6)

		// When: the game is reset
		g.Reset()

		// Then: it is back to the initial state and accepts moves
		assert.Equal(t, New().Snapshot(), g.Snapshot())
		_, err := g.Play(4, X)
		assert.NoError(t, err)
	})

	t.Run("reset is idempotent", func(t *testing.T) {
		g := New()
		playAll(t, g, 4, 0)

		g.Reset()
		once := g.Snapshot()
		g.Reset()

		assert.Equal(t, once, g.Snapshot())
	})
}

func TestStatusMessage(t *testing.T) {
	assert.Equal(t, "O wins!", StatusMessage(Status{Result: Won, Winner: O}, O))
	assert.Equal(t, "It's a draw!", StatusMessage(Status{Result: Draw}, X))
	assert.Equal(t, "O's turn", StatusMessage(Status{Result: InProgress}, O))
}
