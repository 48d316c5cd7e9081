package xonix

// Input is the directional key state read at the start of a movement step.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
}

// Delta returns the movement for the first pressed direction in the order
// left, right, up, down. Only one direction is honored per step.
func (in Input) Delta() (dRow, dCol int, ok bool) {
	switch {
	case in.Left:
		return 0, -1, true
	case in.Right:
		return 0, 1, true
	case in.Up:
		return -1, 0, true
	case in.Down:
		return 1, 0, true
	}
	return 0, 0, false
}

// Player is the single player-controlled cursor.
type Player struct {
	Pos Pos
}

// EnemyKind tells which zone an enemy spawns in and roams.
type EnemyKind int

const (
	EnemyOutside EnemyKind = iota // Spawns on Empty tiles, bounces off Filled
	EnemyInside                   // Spawns on Filled tiles, bounces off anything else
)

// String returns a human-readable name for the kind.
func (k EnemyKind) String() string {
	if k == EnemyInside {
		return "inside"
	}
	return "outside"
}

// Enemy is a diagonally moving hazard. DX moves along columns, DY along rows.
type Enemy struct {
	Pos    Pos
	DX     int
	DY     int
	Kind   EnemyKind
	Active bool // False when no spawn cell was available
}

// blocked reports whether the enemy cannot enter p.
func (e Enemy) blocked(g *Grid, p Pos) bool {
	if !g.InBounds(p) {
		return true
	}
	filled := g.Terrain(p) == TileFilled
	if e.Kind == EnemyInside {
		return !filled
	}
	return filled
}

// advance moves the enemy one step along each axis independently. Hitting a
// wall reverses that axis once; if the rebound tile is a wall too, the enemy
// holds its position on that axis.
func (e *Enemy) advance(g *Grid) {
	next := e.Pos.Add(0, e.DX)
	if e.blocked(g, next) {
		e.DX = -e.DX
		next = e.Pos.Add(0, e.DX)
		if e.blocked(g, next) {
			next = e.Pos
		}
	}
	e.Pos = next

	next = e.Pos.Add(e.DY, 0)
	if e.blocked(g, next) {
		e.DY = -e.DY
		next = e.Pos.Add(e.DY, 0)
		if e.blocked(g, next) {
			next = e.Pos
		}
	}
	e.Pos = next
}

// trailAction is what a player step does to the trail.
type trailAction int

const (
	trailNone    trailAction = iota
	trailExtend              // Stepped onto Empty
	trailClose               // Stepped onto Filled straight from the trail
	trailSelfHit             // Stepped onto its own unclosed trail
)

// decideTrail is the per-step decision table. prev is the terrain the player
// left, dest the terrain it entered, both without occupancy bits.
func decideTrail(prev, dest TileStatus) trailAction {
	switch {
	case dest == TileEmpty:
		return trailExtend
	case dest == TileFilled && prev == TileNewFilled:
		return trailClose
	case dest == TileNewFilled:
		return trailSelfHit
	default:
		return trailNone
	}
}
