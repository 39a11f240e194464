// Package config provides configuration loading and XDG path helpers.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/wordletrack/wordletrack/internal/game"
)

// Defaults applied where the config file is silent.
const (
	DefaultWordLength  = 5
	DefaultMaxAttempts = 6
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game GameConfig `toml:"game"`
}

// GameConfig maps gameplay settings. Pointer fields distinguish
// "unset" from an explicit zero.
type GameConfig struct {
	WordLength  *int    `toml:"word-length"`
	MaxAttempts *int    `toml:"max-attempts"`
	Difficulty  *string `toml:"difficulty"`
	PlayerName  *string `toml:"player"`
}

// Settings is the resolved gameplay configuration after defaults.
type Settings struct {
	WordLength  int
	MaxAttempts int
	Difficulty  game.Difficulty
	PlayerName  string
}

// LoadConfig reads a TOML config from the given path. Missing file is
// not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Resolve applies defaults over the file values. Out-of-range lengths
// and attempt counts, and unknown difficulty names, fall back to the
// defaults rather than failing.
func (c FileConfig) Resolve() Settings {
	s := Settings{
		WordLength:  DefaultWordLength,
		MaxAttempts: DefaultMaxAttempts,
		Difficulty:  game.DifficultyMedium,
		PlayerName:  "Player",
	}
	if v := c.Game.WordLength; v != nil && *v >= 3 && *v <= 8 {
		s.WordLength = *v
	}
	if v := c.Game.MaxAttempts; v != nil && *v >= 1 && *v <= 12 {
		s.MaxAttempts = *v
	}
	if v := c.Game.Difficulty; v != nil {
		if d, ok := game.ParseDifficulty(*v); ok {
			s.Difficulty = d
		}
	}
	if v := c.Game.PlayerName; v != nil && *v != "" {
		s.PlayerName = *v
	}
	return s
}
