package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/controller"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/tictactoe"
)

var testPalette = config.Palette{
	X:         core.ColorRed,
	O:         core.ColorBlue,
	Grid:      core.ColorGray,
	Highlight: core.ColorGreen,
}

func TestBoardCanvasGrid(t *testing.T) {
	c := NewBoardCanvas(controller.Layout{CellW: 4, CellH: 2}, testPalette)
	c.DrawGrid()

	expected := strings.Join([]string{
		"   │   │    ",
		"───┼───┼────",
		"   │   │    ",
		"───┼───┼────",
		"   │   │    ",
		"   │   │    ",
	}, "\n")

	if got := c.Screen().String(); got != expected {
		t.Errorf("grid =\n%s\nexpected\n%s", got, expected)
	}
	if c.Screen().GetCell(3, 0).Color != core.ColorGray {
		t.Error("grid should use the grid color")
	}
}

func TestBoardCanvasDrawMarkGlyph(t *testing.T) {
	layout := controller.Layout{CellW: 9, CellH: 4}
	c := NewBoardCanvas(layout, testPalette)
	c.DrawGrid()
	c.DrawMark(tictactoe.X, 4)
	c.DrawMark(tictactoe.O, 8)

	s := c.Screen()
	// Cell 4 spans x 9..17, y 4..7; its free area is 8x3, glyph starts at column 11.
	if s.Get(11, 4) != '\\' || s.Get(12, 5) != 'X' || s.Get(13, 6) != '\\' {
		t.Errorf("X glyph not centered in cell 4:\n%s", s.String())
	}
	if s.GetCell(12, 5).Color != core.ColorRed {
		t.Error("X should use the X color")
	}

	// Cell 8 spans x 18..26, y 8..11.
	if s.Get(20, 8) != '╭' || s.Get(22, 10) != '╯' {
		t.Errorf("O glyph not centered in cell 8:\n%s", s.String())
	}
	if s.GetCell(20, 8).Color != core.ColorBlue {
		t.Error("O should use the O color")
	}

	// Grid lines survive
	if s.Get(17, 5) != '│' || s.Get(12, 7) != '─' {
		t.Errorf("marks must not overwrite grid lines:\n%s", s.String())
	}
}

func TestBoardCanvasDrawMarkSmallCells(t *testing.T) {
	c := NewBoardCanvas(controller.Layout{CellW: 2, CellH: 2}, testPalette)
	c.DrawMark(tictactoe.O, 0)
	c.DrawMark(tictactoe.X, 8)

	if c.Screen().Get(0, 0) != 'O' {
		t.Errorf("small cell 0 = %q, expected 'O'", c.Screen().Get(0, 0))
	}
	if c.Screen().Get(4, 4) != 'X' {
		t.Errorf("small cell 8 = %q, expected 'X'", c.Screen().Get(4, 4))
	}
}

func TestBoardCanvasDrawMarkLeavesOtherCells(t *testing.T) {
	c := NewBoardCanvas(controller.Layout{CellW: 9, CellH: 4}, testPalette)
	c.DrawMark(tictactoe.X, 0)
	before := c.Screen().String()

	c.DrawMark(tictactoe.O, 1)

	// Columns 0..8 of rows 0..3 belong to cell 0 and must not change.
	beforeRows := strings.Split(before, "\n")
	for y := 0; y < 4; y++ {
		want := string([]rune(beforeRows[y])[:9])
		got := string([]rune(c.Screen().Row(y))[:9])
		if got != want {
			t.Errorf("row %d of cell 0 changed: %q -> %q", y, want, got)
		}
	}
}

func TestBoardCanvasClear(t *testing.T) {
	c := NewBoardCanvas(controller.Layout{CellW: 4, CellH: 2}, testPalette)
	c.DrawGrid()
	c.DrawMark(tictactoe.X, 0)

	c.Clear()

	if strings.TrimSpace(c.Screen().String()) != "" {
		t.Errorf("canvas not empty after Clear:\n%s", c.Screen().String())
	}
}

func TestStatusLine(t *testing.T) {
	var s StatusLine
	s.SetStatusText("O's turn")
	if s.Text() != "O's turn" {
		t.Errorf("Text() = %q, expected %q", s.Text(), "O's turn")
	}
}
