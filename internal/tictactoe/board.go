// Package tictactoe implements the rules of 3x3 tic-tac-toe: the board,
// turn order, outcome evaluation and the move transition.
// It has no knowledge of terminals or drawing.
package tictactoe

// Size is the board dimension.
const Size = 3

// Cells is the number of cells on the board.
const Cells = Size * Size

// Mark is the content of a board cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// String returns "X", "O", or "" for an empty cell.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Other returns the opposing mark. Empty has no opponent.
func (m Mark) Other() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Board is a 3x3 grid stored row-major: index = row*3 + col.
type Board [Cells]Mark

// Lines lists every winning triple in evaluation order:
// rows, then columns, then diagonals.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// CellIndex converts a row and column to a board index.
func CellIndex(row, col int) int {
	return row*Size + col
}

// RowCol converts a board index to its row and column.
func RowCol(cell int) (row, col int) {
	return cell / Size, cell % Size
}

// ValidCell reports whether cell is a board index.
func ValidCell(cell int) bool {
	return cell >= 0 && cell < Cells
}

// Full returns true if no cell is empty.
func (b Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// Count returns how many cells hold m.
func (b Board) Count(m Mark) int {
	n := 0
	for _, c := range b {
		if c == m {
			n++
		}
	}
	return n
}
