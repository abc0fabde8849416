package controller

import (
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/tictactoe"
)

// Layout divides the drawing surface into a 3x3 grid of equal cells.
// Coordinates are relative to the surface's top-left origin.
type Layout struct {
	CellW int // Cell width in surface units
	CellH int // Cell height in surface units
}

// Width returns the width of the whole board.
func (l Layout) Width() int {
	return l.CellW * tictactoe.Size
}

// Height returns the height of the whole board.
func (l Layout) Height() int {
	return l.CellH * tictactoe.Size
}

// Valid returns true if both cell dimensions are positive.
func (l Layout) Valid() bool {
	return l.CellW > 0 && l.CellH > 0
}

// CellAt resolves surface coordinates to a cell index.
// Points left of or above the origin, or at or beyond the far edges,
// resolve to no cell.
func (l Layout) CellAt(x, y int) (int, bool) {
	if !l.Valid() || x < 0 || y < 0 {
		return 0, false
	}

	col := x / l.CellW
	row := y / l.CellH
	if col >= tictactoe.Size || row >= tictactoe.Size {
		return 0, false
	}

	return tictactoe.CellIndex(row, col), true
}

// CellRect returns the area a cell occupies on the surface.
func (l Layout) CellRect(cell int) core.Rect {
	row, col := tictactoe.RowCol(cell)
	return core.NewRect(col*l.CellW, row*l.CellH, l.CellW, l.CellH)
}
