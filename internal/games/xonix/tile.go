package xonix

import "strings"

// TileStatus is a bitmask describing one grid cell.
//
// Exactly one terrain flag (Empty, Filled, NewFilled, MaybeToFill) is set on
// every cell outside of a flood fill; Player and Enemy are occupancy flags
// overlaid on the terrain.
type TileStatus uint8

const (
	TileEmpty TileStatus = 1 << iota
	TileFilled
	TileNewFilled
	TilePlayer
	TileEnemy
	TileMaybeToFill
)

const (
	terrainMask   = TileEmpty | TileFilled | TileNewFilled | TileMaybeToFill
	occupancyMask = TilePlayer | TileEnemy
)

// WithFlag returns s with every bit of f set.
func (s TileStatus) WithFlag(f TileStatus) TileStatus {
	return s | f
}

// WithoutFlag returns s with every bit of f cleared.
func (s TileStatus) WithoutFlag(f TileStatus) TileStatus {
	return s &^ f
}

// HasFlag reports whether all bits of f are set in s.
func (s TileStatus) HasFlag(f TileStatus) bool {
	return s&f == f
}

// Terrain returns only the terrain bits of s.
func (s TileStatus) Terrain() TileStatus {
	return s & terrainMask
}

// Occupancy returns only the occupancy bits of s.
func (s TileStatus) Occupancy() TileStatus {
	return s & occupancyMask
}

var tileNames = [...]struct {
	flag TileStatus
	name string
}{
	{TileEmpty, "Empty"},
	{TileFilled, "Filled"},
	{TileNewFilled, "NewFilled"},
	{TilePlayer, "Player"},
	{TileEnemy, "Enemy"},
	{TileMaybeToFill, "MaybeToFill"},
}

// String returns the set flags joined by "|", e.g. "Filled|Player".
func (s TileStatus) String() string {
	if s == 0 {
		return "None"
	}
	parts := make([]string, 0, 2)
	for _, n := range tileNames {
		if s.HasFlag(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
