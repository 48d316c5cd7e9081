package xonix

import "github.com/vovakirdan/xonix/internal/core"

// TileColor maps a tile to its display color. Occupancy wins over terrain.
func TileColor(s TileStatus) core.Color {
	switch {
	case s.HasFlag(TilePlayer):
		return core.ColorGreen
	case s.HasFlag(TileEnemy):
		return core.ColorRed
	}
	switch s.Terrain() {
	case TileEmpty:
		return core.ColorBlack
	case TileFilled:
		return core.ColorWhite
	case TileNewFilled:
		return core.ColorCyan
	default:
		return core.ColorYellow
	}
}
