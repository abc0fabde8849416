// Package config provides YAML-based configuration loading for the board
// geometry and colors.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// Smallest usable cell: one column/row for the grid line plus one for the mark.
const (
	MinCellWidth  = 2
	MinCellHeight = 2
)

// Config contains all configuration for the game.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Theme ThemeConfig `yaml:"theme"`
}

// BoardConfig defines the on-screen size of a board cell in terminal cells.
type BoardConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// ThemeConfig names the colors used to draw the board.
type ThemeConfig struct {
	X         string `yaml:"x"`
	O         string `yaml:"o"`
	Grid      string `yaml:"grid"`
	Highlight string `yaml:"highlight"`
}

// Palette is a ThemeConfig resolved to screen colors.
type Palette struct {
	X         core.Color
	O         core.Color
	Grid      core.Color
	Highlight core.Color
}

// Validate reports configuration values the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Board.CellWidth < MinCellWidth {
		errs = append(errs, fmt.Errorf("board.cell_width must be at least %d, got %d", MinCellWidth, c.Board.CellWidth))
	}
	if c.Board.CellHeight < MinCellHeight {
		errs = append(errs, fmt.Errorf("board.cell_height must be at least %d, got %d", MinCellHeight, c.Board.CellHeight))
	}
	if _, err := c.Theme.Palette(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Palette resolves the theme's color names.
func (t ThemeConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		key  string
		name string
		dst  *core.Color
	}{
		{"theme.x", t.X, &p.X},
		{"theme.o", t.O, &p.O},
		{"theme.grid", t.Grid, &p.Grid},
		{"theme.highlight", t.Highlight, &p.Highlight},
	}

	for _, f := range fields {
		c, err := core.ParseColor(f.name)
		if err != nil {
			return Palette{}, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = c
	}
	return p, nil
}
