package xonix

// Capture is the outcome of one flood fill seeded next to a closed trail.
type Capture struct {
	Seed       Pos
	Tiles      int  // Tiles converted to Filled, zero when rejected
	Marked     int  // Tiles visited and marked MaybeToFill
	FoundEnemy bool // An enemy was inside the region; nothing was captured
}

// RegionCapture converts empty regions enclosed by a trail into territory.
// The work stack is kept between calls so large regions do not reallocate.
type RegionCapture struct {
	grid  *Grid
	stack []Pos
}

// NewRegionCapture creates a capture helper bound to grid.
func NewRegionCapture(grid *Grid) *RegionCapture {
	return &RegionCapture{grid: grid}
}

// FillArea marks the empty region connected to seed as MaybeToFill and
// reports whether an enemy was found in it.
//
// Finding an enemy stops that branch only; every other branch is still
// explored so the whole region ends up marked. Out-of-bounds positions,
// non-empty terrain, already marked tiles and the player's own tile are walls.
// Reaching any enemy tile, whatever its terrain, counts as finding an enemy.
func (rc *RegionCapture) FillArea(seed Pos) (marked int, foundEnemy bool) {
	g := rc.grid
	rc.stack = append(rc.stack[:0], seed)

	for len(rc.stack) > 0 {
		p := rc.stack[len(rc.stack)-1]
		rc.stack = rc.stack[:len(rc.stack)-1]

		if !g.InBounds(p) {
			continue
		}
		s := g.Get(p)
		if s.HasFlag(TileEnemy) {
			foundEnemy = true
			continue
		}
		if s.HasFlag(TilePlayer) || s.Terrain() != TileEmpty {
			continue
		}

		g.Set(p, TileMaybeToFill)
		marked++
		n := p.Neighbors()
		rc.stack = append(rc.stack, n[:]...)
	}
	return marked, foundEnemy
}

// TryFill flood-fills from seed and commits the marked region: back to Empty
// if an enemy was found, otherwise to Filled.
func (rc *RegionCapture) TryFill(seed Pos) Capture {
	marked, foundEnemy := rc.FillArea(seed)
	c := Capture{Seed: seed, Marked: marked, FoundEnemy: foundEnemy}
	if foundEnemy {
		rc.grid.ChangeStatus(TileMaybeToFill, TileEmpty)
		return c
	}
	c.Tiles = rc.grid.ChangeStatus(TileMaybeToFill, TileFilled)
	return c
}

// CloseLoop runs TryFill on each neighbor of the last trail tile, in order.
// Each seed is committed before the next one runs, so a region captured by an
// earlier seed is a wall for the later ones.
func (rc *RegionCapture) CloseLoop(lastTrail Pos) []Capture {
	seeds := lastTrail.Neighbors()
	out := make([]Capture, 0, len(seeds))
	for _, seed := range seeds {
		out = append(out, rc.TryFill(seed))
	}
	return out
}
