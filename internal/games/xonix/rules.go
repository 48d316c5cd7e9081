package xonix

import (
	"fmt"

	"github.com/vovakirdan/xonix/internal/config"
)

// Rules are the fixed startup constants of a run.
type Rules struct {
	Rows           int
	Cols           int
	TileSize       int     // Pixels per tile, window frontend only
	Lives          int
	EnemiesOutside int
	EnemiesInside  int
	AreaToWin      float64 // Percent of the capturable area
	MoveDelay      float64 // Seconds between movement steps
}

// DefaultRules returns the classic rules: 120x160 grid, 3 lives, 3 enemies.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultXonixConfig())
}

// RulesFromConfig converts a loaded configuration into rules.
func RulesFromConfig(c config.XonixConfig) Rules {
	return Rules{
		Rows:           c.Grid.Rows,
		Cols:           c.Grid.Cols,
		TileSize:       c.Grid.TileSize,
		Lives:          c.Gameplay.Lives,
		EnemiesOutside: c.Gameplay.EnemiesOutside,
		EnemiesInside:  c.Gameplay.EnemiesInside,
		AreaToWin:      c.Gameplay.AreaToWin,
		MoveDelay:      c.Gameplay.MoveDelay,
	}
}

// LoadRules loads configuration from path (see config.LoadXonix for the
// search order) and applies the difficulty preset.
func LoadRules(path string, preset config.DifficultyPreset) (Rules, error) {
	cfg, err := config.LoadXonix(path)
	if err != nil {
		return Rules{}, err
	}
	if preset != "" {
		config.ApplyXonixPreset(&cfg, preset)
	}
	r := RulesFromConfig(cfg)
	if err := r.Validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

// Validate checks that the rules describe a playable grid.
func (r Rules) Validate() error {
	switch {
	case r.Rows < 3 || r.Cols < 3:
		return fmt.Errorf("%w: grid must be at least 3x3, got %dx%d", config.ErrInvalidConfig, r.Rows, r.Cols)
	case r.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive", config.ErrInvalidConfig)
	case r.EnemiesOutside < 0 || r.EnemiesInside < 0:
		return fmt.Errorf("%w: enemy counts must not be negative", config.ErrInvalidConfig)
	case r.AreaToWin <= 0 || r.AreaToWin > 100:
		return fmt.Errorf("%w: area to win must be in (0, 100]", config.ErrInvalidConfig)
	case r.MoveDelay <= 0:
		return fmt.Errorf("%w: move delay must be positive", config.ErrInvalidConfig)
	}
	return nil
}

// FitScreen sizes the grid to a terminal of w x h characters. One character
// row shows two grid rows; one line is kept for the status bar.
func (r Rules) FitScreen(w, h int) Rules {
	r.Cols = max(w, 3)
	r.Rows = max((h-hudLines)*2, 3)
	return r
}
