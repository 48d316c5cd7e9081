package xonix

// Snapshot captures the run state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Mode        string
	State       string
	Score       int
	Life        int
	Player      Pos
	Enemies     []Enemy
	FilledTiles int
	AreaFilled  float64
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:        e.ticks,
		State:       e.state.String(),
		Score:       e.score,
		Life:        e.life,
		Player:      e.player.Pos,
		Enemies:     e.Enemies(),
		FilledTiles: e.grid.FilledTiles(),
		AreaFilled:  e.grid.AreaFilled(),
	}
}

// Snapshot returns the current game snapshot, tagged with the mode.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{Mode: string(g.mode)}
	}
	s := g.engine.Snapshot()
	s.Mode = string(g.mode)
	return s
}
