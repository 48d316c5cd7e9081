// Package config provides YAML-based rule loading and difficulty presets
// for the xonix platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// XonixConfig contains all startup configuration for a Xonix run.
// It is read once before a run starts; rules never change mid-run.
type XonixConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Sound    SoundConfig    `yaml:"sound"`
}

// GridConfig defines the playfield dimensions.
type GridConfig struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	TileSize int `yaml:"tile_size"` // Pixels per tile, window frontend only
}

// GameplayConfig defines lives, enemies and the win threshold.
type GameplayConfig struct {
	Lives          int     `yaml:"lives"`
	EnemiesOutside int     `yaml:"enemies_outside"` // Enemies roaming open space
	EnemiesInside  int     `yaml:"enemies_inside"`  // Enemies roaming captured territory
	AreaToWin      float64 `yaml:"area_to_win"`     // Percent of capturable area
	MoveDelay      float64 `yaml:"move_delay"`      // Seconds between movement steps
}

// SoundConfig defines sound effect settings.
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// Validate checks that the configuration describes a playable grid.
func (c XonixConfig) Validate() error {
	switch {
	case c.Grid.Rows < 3 || c.Grid.Cols < 3:
		return fmt.Errorf("%w: grid must be at least 3x3, got %dx%d", ErrInvalidConfig, c.Grid.Rows, c.Grid.Cols)
	case c.Grid.TileSize <= 0:
		return fmt.Errorf("%w: tile_size must be positive, got %d", ErrInvalidConfig, c.Grid.TileSize)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive, got %d", ErrInvalidConfig, c.Gameplay.Lives)
	case c.Gameplay.EnemiesOutside < 0 || c.Gameplay.EnemiesInside < 0:
		return fmt.Errorf("%w: enemy counts must not be negative", ErrInvalidConfig)
	case c.Gameplay.AreaToWin <= 0 || c.Gameplay.AreaToWin > 100:
		return fmt.Errorf("%w: area_to_win must be in (0, 100], got %g", ErrInvalidConfig, c.Gameplay.AreaToWin)
	case c.Gameplay.MoveDelay <= 0:
		return fmt.Errorf("%w: move_delay must be positive, got %g", ErrInvalidConfig, c.Gameplay.MoveDelay)
	case c.Sound.Volume < 0 || c.Sound.Volume > 1:
		return fmt.Errorf("%w: sound volume must be in [0, 1], got %g", ErrInvalidConfig, c.Sound.Volume)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a CLI value into a preset.
// The empty string means "no preset" and is not an error.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalidConfig, s)
	}
}
