package xonix

import (
	"github.com/vovakirdan/xonix/internal/core"
)

// movePlayer applies one step of player input and the trail rules.
func (e *Engine) movePlayer(in Input) {
	dRow, dCol, ok := in.Delta()
	if !ok {
		return
	}
	old := e.player.Pos
	next := Pos{
		Row: core.Clamp(old.Row+dRow, 0, e.grid.Rows()-1),
		Col: core.Clamp(old.Col+dCol, 0, e.grid.Cols()-1),
	}
	if next == old {
		return
	}

	prev := e.grid.Terrain(old)
	dest := e.grid.Get(next)

	e.grid.Remove(old, TilePlayer)
	e.player.Pos = next

	if dest.HasFlag(TileEnemy) {
		e.logger.Debug("player ran into enemy", "pos", next)
		e.lose()
		return
	}

	switch decideTrail(prev, dest.Terrain()) {
	case trailExtend:
		e.grid.SetTerrain(next, TileNewFilled)
		if prev == TileFilled {
			e.emit(core.EventTrailStarted, 0)
		}
	case trailClose:
		e.grid.Add(next, TilePlayer)
		e.closeLoop(old)
		return
	case trailSelfHit:
		e.logger.Debug("player crossed own trail", "pos", next)
		e.lose()
		return
	}
	e.grid.Add(next, TilePlayer)
}

// closeLoop captures the regions bounded by the trail ending at last and
// then turns the trail itself into territory.
func (e *Engine) closeLoop(last Pos) {
	captured := 0
	for _, c := range e.capture.CloseLoop(last) {
		switch {
		case c.FoundEnemy && c.Marked > 0:
			e.emit(core.EventCaptureRejected, c.Marked)
		case c.Tiles > 0:
			captured += c.Tiles
		}
	}
	captured += e.grid.ChangeStatus(TileNewFilled, TileFilled)
	e.score += captured
	e.emit(core.EventCaptured, captured)
	e.logger.Debug("loop closed", "captured", captured, "area", e.grid.AreaFilled())
}

// moveEnemies advances every active enemy. A collision with the player or the
// trail costs a life and ends enemy processing for this step, since lose has
// already respawned the enemies.
func (e *Engine) moveEnemies() {
	for i := range e.enemies {
		en := &e.enemies[i]
		if !en.Active {
			continue
		}
		e.grid.Remove(en.Pos, TileEnemy)
		en.advance(e.grid)

		s := e.grid.Get(en.Pos)
		if s.HasFlag(TilePlayer) || s.Terrain() == TileNewFilled {
			e.logger.Debug("enemy hit", "kind", en.Kind, "pos", en.Pos)
			e.lose()
			return
		}
		e.grid.Add(en.Pos, TileEnemy)
	}
}

// lose reverts the open trail, takes a life and resets the actors. At zero
// lives the run is lost.
func (e *Engine) lose() {
	if e.grid.InBounds(e.player.Pos) {
		e.grid.Remove(e.player.Pos, TilePlayer)
	}
	e.grid.ChangeStatus(TileNewFilled, TileEmpty)

	e.life--
	e.emit(core.EventLifeLost, e.life)

	e.player.Pos = Pos{}
	e.grid.Add(e.player.Pos, TilePlayer)

	if e.life <= 0 {
		e.life = 0
		e.state = StateLost
		e.clearEnemies()
		e.emit(core.EventGameOver, e.score)
		e.logger.Info("run lost", "score", e.score, "ticks", e.ticks)
		return
	}
	e.spawnEnemies()
}

func (e *Engine) clearEnemies() {
	for _, p := range e.grid.Positions(func(s TileStatus) bool { return s.HasFlag(TileEnemy) }) {
		e.grid.Remove(p, TileEnemy)
	}
}

// spawnEnemies replaces every enemy. Outside enemies land on free Empty
// tiles, inside enemies on free Filled tiles, each chosen uniformly. An enemy
// with nowhere to go stays inactive.
func (e *Engine) spawnEnemies() {
	e.clearEnemies()
	e.enemies = e.enemies[:0]

	free := func(terrain TileStatus) []Pos {
		return e.grid.Positions(func(s TileStatus) bool {
			return s.Terrain() == terrain && s.Occupancy() == 0
		})
	}
	e.spawnGroup(EnemyOutside, e.rules.EnemiesOutside, free(TileEmpty))
	e.spawnGroup(EnemyInside, e.rules.EnemiesInside, free(TileFilled))
}

func (e *Engine) spawnGroup(kind EnemyKind, n int, candidates []Pos) {
	for range n {
		en := Enemy{DX: 1, DY: 1, Kind: kind}
		if len(candidates) == 0 {
			e.logger.Warn("enemy left inactive", "kind", kind, "err", ErrNoSpawnCell)
			e.enemies = append(e.enemies, en)
			continue
		}
		i := e.rng.Intn(len(candidates))
		en.Pos = candidates[i]
		candidates[i] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]

		if e.rng.Intn(2) == 0 {
			en.DX = -en.DX
		}
		if e.rng.Intn(2) == 0 {
			en.DY = -en.DY
		}
		en.Active = true
		e.grid.Add(en.Pos, TileEnemy)
		e.enemies = append(e.enemies, en)
	}
}
