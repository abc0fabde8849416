package tui

import (
	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/controller"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/tictactoe"
)

// Mark glyphs for cells with at least 3x3 free characters.
var glyphs = map[tictactoe.Mark][3]string{
	tictactoe.X: {
		`\ /`,
		` X `,
		`/ \`,
	},
	tictactoe.O: {
		"╭─╮",
		"│ │",
		"╰─╯",
	},
}

const glyphSize = 3

// BoardCanvas draws the board into a screen buffer sized to the layout.
// It implements controller.Renderer; what it draws stays until Clear.
type BoardCanvas struct {
	screen  *core.Screen
	layout  controller.Layout
	palette config.Palette
}

// NewBoardCanvas creates an empty canvas for the given layout.
func NewBoardCanvas(layout controller.Layout, palette config.Palette) *BoardCanvas {
	return &BoardCanvas{
		screen:  core.NewScreen(layout.Width(), layout.Height()),
		layout:  layout,
		palette: palette,
	}
}

// Screen returns the underlying buffer.
func (c *BoardCanvas) Screen() *core.Screen {
	return c.screen
}

// Clear erases the whole canvas.
func (c *BoardCanvas) Clear() {
	c.screen.Clear()
}

// DrawGrid draws the two vertical and two horizontal dividers.
// Each divider occupies the last column or row of the cells before it.
func (c *BoardCanvas) DrawGrid() {
	w, h := c.layout.Width(), c.layout.Height()
	color := c.palette.Grid

	for k := 1; k < tictactoe.Size; k++ {
		c.screen.DrawVLine(k*c.layout.CellW-1, 0, h, '│', color)
		c.screen.DrawHLine(0, k*c.layout.CellH-1, w, '─', color)
	}
	for i := 1; i < tictactoe.Size; i++ {
		for j := 1; j < tictactoe.Size; j++ {
			c.screen.SetCell(i*c.layout.CellW-1, j*c.layout.CellH-1, '┼', color)
		}
	}
}

// DrawMark draws mark centered in the free area of cell.
func (c *BoardCanvas) DrawMark(mark tictactoe.Mark, cell int) {
	if !tictactoe.ValidCell(cell) {
		return
	}

	color := c.markColor(mark)
	area := c.interior(cell)

	glyph, ok := glyphs[mark]
	if !ok {
		return
	}

	if area.W < glyphSize || area.H < glyphSize {
		cx, cy := area.Center()
		c.screen.SetCell(cx, cy, []rune(mark.String())[0], color)
		return
	}

	x := area.X + (area.W-glyphSize)/2
	y := area.Y + (area.H-glyphSize)/2
	for i, line := range glyph {
		c.screen.DrawColorText(x, y+i, line, color)
	}
}

// interior returns the part of a cell not used by grid lines.
func (c *BoardCanvas) interior(cell int) core.Rect {
	r := c.layout.CellRect(cell)
	return core.NewRect(r.X, r.Y, r.W-1, r.H-1)
}

func (c *BoardCanvas) markColor(mark tictactoe.Mark) core.Color {
	if mark == tictactoe.O {
		return c.palette.O
	}
	return c.palette.X
}

// StatusLine holds the single line of status text shown under the board.
// It implements controller.StatusSink.
type StatusLine struct {
	text string
}

// SetStatusText replaces the status text.
func (s *StatusLine) SetStatusText(text string) {
	s.text = text
}

// Text returns the current status text.
func (s *StatusLine) Text() string {
	return s.text
}

var (
	_ controller.Renderer   = (*BoardCanvas)(nil)
	_ controller.StatusSink = (*StatusLine)(nil)
)
