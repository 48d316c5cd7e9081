package config

import (
	_ "embed"
)

//go:embed defaults/xonix.yaml
var defaultXonixYAML []byte

// DefaultXonixConfig returns the default Xonix configuration.
func DefaultXonixConfig() XonixConfig {
	return XonixConfig{
		Grid: GridConfig{
			Rows:     120,
			Cols:     160,
			TileSize: 10,
		},
		Gameplay: GameplayConfig{
			Lives:          3,
			EnemiesOutside: 3,
			EnemiesInside:  0,
			AreaToWin:      80,
			MoveDelay:      0.01,
		},
		Sound: SoundConfig{
			Enabled: false,
			Volume:  0.5,
		},
	}
}
