package xonix

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is wrapped by the panic raised on grid access outside the grid.
var ErrOutOfBounds = errors.New("xonix: position out of bounds")

// Pos is a grid coordinate. Row grows downward, Col grows to the right.
type Pos struct {
	Row int
	Col int
}

// Add returns p offset by (dRow, dCol).
func (p Pos) Add(dRow, dCol int) Pos {
	return Pos{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Neighbors returns the four orthogonal neighbors: up, down, right, left.
func (p Pos) Neighbors() [4]Pos {
	return [4]Pos{p.Add(-1, 0), p.Add(1, 0), p.Add(0, 1), p.Add(0, -1)}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is the fixed-size tile board.
// Tiles are stored in row-major order: index = row*cols + col.
type Grid struct {
	rows          int
	cols          int
	tiles         []TileStatus
	initialFilled int // Filled tiles right after Init, fixed afterwards
}

// NewGrid creates a grid with every tile Empty.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{
		rows:  rows,
		cols:  cols,
		tiles: make([]TileStatus, rows*cols),
	}
	for i := range g.tiles {
		g.tiles[i] = TileEmpty
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds returns true if the position is within the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// index converts a position to a flat index, panicking out of bounds.
func (g *Grid) index(p Pos) int {
	if !g.InBounds(p) {
		panic(fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.rows, g.cols))
	}
	return p.Row*g.cols + p.Col
}

// Init fills the border ring and records the initial filled area.
func (g *Grid) Init() {
	for row := 0; row < g.rows; row++ {
		g.tiles[g.index(Pos{row, 0})] = TileFilled
		g.tiles[g.index(Pos{row, g.cols - 1})] = TileFilled
	}
	for col := 0; col < g.cols; col++ {
		g.tiles[g.index(Pos{0, col})] = TileFilled
		g.tiles[g.index(Pos{g.rows - 1, col})] = TileFilled
	}
	g.initialFilled = g.FilledTiles()
}

// Set overwrites the whole tile, terrain and occupancy alike.
func (g *Grid) Set(p Pos, s TileStatus) {
	g.tiles[g.index(p)] = s
}

// SetTerrain replaces the terrain bits of a tile and keeps its occupancy.
func (g *Grid) SetTerrain(p Pos, terrain TileStatus) {
	i := g.index(p)
	g.tiles[i] = g.tiles[i].Occupancy() | terrain.Terrain()
}

// Add sets the given flags on a tile.
func (g *Grid) Add(p Pos, s TileStatus) {
	i := g.index(p)
	g.tiles[i] = g.tiles[i].WithFlag(s)
}

// Remove clears the given flags from a tile.
func (g *Grid) Remove(p Pos, s TileStatus) {
	i := g.index(p)
	g.tiles[i] = g.tiles[i].WithoutFlag(s)
}

// Get returns the raw tile bitmask.
func (g *Grid) Get(p Pos) TileStatus {
	return g.tiles[g.index(p)]
}

// Terrain returns the terrain bits of a tile.
func (g *Grid) Terrain(p Pos) TileStatus {
	return g.Get(p).Terrain()
}

// Has reports whether all bits of s are set on the tile.
func (g *Grid) Has(p Pos, s TileStatus) bool {
	return g.Get(p).HasFlag(s)
}

// ChangeStatus replaces every tile that has current with next, dropping any
// other bits on that tile. Returns the number of tiles changed.
func (g *Grid) ChangeStatus(current, next TileStatus) int {
	n := 0
	for i, s := range g.tiles {
		if s.HasFlag(current) {
			g.tiles[i] = next
			n++
		}
	}
	return n
}

// Count returns the number of tiles whose terrain equals terrain.
func (g *Grid) Count(terrain TileStatus) int {
	n := 0
	for _, s := range g.tiles {
		if s.Terrain() == terrain {
			n++
		}
	}
	return n
}

// FilledTiles returns the number of tiles with Filled terrain, occupied or not.
func (g *Grid) FilledTiles() int {
	return g.Count(TileFilled)
}

// InitialFilledArea returns the filled tile count recorded by Init.
func (g *Grid) InitialFilledArea() int {
	return g.initialFilled
}

// AreaFilled returns the captured fraction of the area that was open after Init.
func (g *Grid) AreaFilled() float64 {
	capturable := len(g.tiles) - g.initialFilled
	if capturable <= 0 {
		return 0
	}
	return float64(g.FilledTiles()-g.initialFilled) / float64(capturable)
}

// Positions returns all positions whose tile satisfies keep, in row-major order.
func (g *Grid) Positions(keep func(TileStatus) bool) []Pos {
	var out []Pos
	for i, s := range g.tiles {
		if keep(s) {
			out = append(out, Pos{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return out
}
