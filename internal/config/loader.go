package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// UserDir is the per-user directory under $HOME.
const UserDir = ".tictactoe"

// localPath is the project-local config file, relative to the working directory.
const localPath = "configs/tictactoe.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.tictactoe/config.yaml -> ./configs/tictactoe.yaml -> embedded default.
// Values missing from a file keep their default. An explicit customPath must
// exist; the other locations are skipped when absent. A file that is found
// but cannot be read, parsed or validated is an error wherever it was found.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, _, err := loadFile(customPath, true)
		return cfg, err
	}

	for _, path := range []string{userConfigPath("config.yaml"), localPath} {
		if path == "" {
			continue
		}
		cfg, found, err := loadFile(path, false)
		if err != nil {
			return Config{}, err
		}
		if found {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads, parses and validates one config file.
// A missing file is reported as not found unless required is set.
func loadFile(path string, required bool) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return Config{}, false, nil
		}
		return Config{}, false, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg, err := parse(data)
	if err != nil {
		return Config{}, true, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	cfg, err = validated(cfg, path)
	return cfg, true, err
}

// parse decodes YAML on top of the built-in defaults.
func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validated(cfg Config, path string) (Config, error) {
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: invalid %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserDir, filename)
}
