package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestEmbeddedDefaultMatchesDefaultConfig(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded YAML = %+v, DefaultConfig() = %+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadFallsBackToDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	writeFile(t, filepath.Join(home, UserDir, "config.yaml"), "board:\n  cell_width: 5\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.CellWidth != 5 {
		t.Errorf("cell_width = %d, expected 5", cfg.Board.CellWidth)
	}
	// Unset keys keep their defaults
	if cfg.Board.CellHeight != DefaultConfig().Board.CellHeight {
		t.Errorf("cell_height = %d, expected default", cfg.Board.CellHeight)
	}
	if cfg.Theme != DefaultConfig().Theme {
		t.Errorf("theme = %+v, expected default", cfg.Theme)
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "board:\n  cell_width: 6\n  cell_height: 3\ntheme:\n  x: green\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}
	if cfg.Board.CellWidth != 6 || cfg.Board.CellHeight != 3 {
		t.Errorf("board = %+v, expected 6x3", cfg.Board)
	}

	palette, err := cfg.Theme.Palette()
	if err != nil {
		t.Fatalf("Palette() failed: %v", err)
	}
	if palette.X != core.ColorGreen {
		t.Errorf("palette.X = %d, expected green", palette.X)
	}
	if palette.O != core.ColorBrightBlue {
		t.Errorf("palette.O = %d, expected default bright blue", palette.O)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "board: [unclosed"},
		{"cell too narrow", "board:\n  cell_width: 1\n"},
		{"cell too short", "board:\n  cell_height: 0\n"},
		{"unknown color", "theme:\n  grid: mauve\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			writeFile(t, path, tc.content)

			if _, err := Load(path); err == nil {
				t.Errorf("Load() should fail for %s", tc.name)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}
}

func TestLoadLocalConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	writeFile(t, filepath.Join("configs", "tictactoe.yaml"), "board:\n  cell_height: 3\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.CellHeight != 3 {
		t.Errorf("cell_height = %d, expected 3 from ./configs", cfg.Board.CellHeight)
	}
	if cfg.Board.CellWidth != DefaultConfig().Board.CellWidth {
		t.Errorf("cell_width = %d, expected default", cfg.Board.CellWidth)
	}
}

func TestLoadUserConfigWinsOverLocal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	writeFile(t, filepath.Join(home, UserDir, "config.yaml"), "board:\n  cell_width: 5\n")
	writeFile(t, filepath.Join("configs", "tictactoe.yaml"), "board:\n  cell_width: 7\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.CellWidth != 5 {
		t.Errorf("cell_width = %d, expected 5 from the user config", cfg.Board.CellWidth)
	}
}

func TestLoadReportsBrokenSearchedFiles(t *testing.T) {
	tests := []struct {
		name    string
		user    bool
		content string
	}{
		{"user malformed", true, "board: [unclosed"},
		{"user invalid", true, "board:\n  cell_width: 1\n"},
		{"local malformed", false, "theme: [unclosed"},
		{"local invalid", false, "theme:\n  x: mauve\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)
			t.Chdir(t.TempDir())

			path := filepath.Join("configs", "tictactoe.yaml")
			if tc.user {
				path = filepath.Join(home, UserDir, "config.yaml")
			}
			writeFile(t, path, tc.content)

			if _, err := Load(""); err == nil {
				t.Errorf("Load() should report broken %s", path)
			}
		})
	}
}
