package config

import (
	_ "embed"
)

//go:embed defaults/tictactoe.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It matches defaults/tictactoe.yaml.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			CellWidth:  9,
			CellHeight: 4,
		},
		Theme: ThemeConfig{
			X:         "bright_red",
			O:         "bright_blue",
			Grid:      "gray",
			Highlight: "bright_green",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
