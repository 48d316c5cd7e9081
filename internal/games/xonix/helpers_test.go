package xonix

import (
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
)

// Board legend for gridFromRows:
//
//	#  Filled        .  Empty         o  NewFilled
//	P  Filled+Player p  NewFilled+Player
//	E  Empty+Enemy   e  Filled+Enemy
func gridFromRows(t *testing.T, rows []string) *Grid {
	t.Helper()
	g := NewGrid(len(rows), len(rows[0]))
	for r, line := range rows {
		if len(line) != g.Cols() {
			t.Fatalf("row %d has %d cols, want %d", r, len(line), g.Cols())
		}
		for c, ch := range line {
			var s TileStatus
			switch ch {
			case '#':
				s = TileFilled
			case '.':
				s = TileEmpty
			case 'o':
				s = TileNewFilled
			case 'P':
				s = TileFilled | TilePlayer
			case 'p':
				s = TileNewFilled | TilePlayer
			case 'E':
				s = TileEmpty | TileEnemy
			case 'e':
				s = TileFilled | TileEnemy
			default:
				t.Fatalf("unknown tile %q at (%d,%d)", ch, r, c)
			}
			g.Set(Pos{r, c}, s)
		}
	}
	g.initialFilled = 2*g.Rows() + 2*g.Cols() - 4
	return g
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// testRules returns valid rules for a rows x cols board with no enemies.
func testRules(rows, cols int) Rules {
	return Rules{
		Rows:      rows,
		Cols:      cols,
		TileSize:  10,
		Lives:     3,
		AreaToWin: 80,
		MoveDelay: 0.01,
	}
}

// engineFromRows builds an engine around a hand-drawn board. Enemies found on
// the board move with DX=1, DY=1.
func engineFromRows(t *testing.T, rules Rules, rows []string) *Engine {
	t.Helper()
	g := gridFromRows(t, rows)
	rules.Rows, rules.Cols = g.Rows(), g.Cols()

	e := &Engine{
		rules:   rules,
		grid:    g,
		capture: NewRegionCapture(g),
		life:    rules.Lives,
		state:   StatePlaying,
		rng:     rand.New(rand.NewSource(1)),
		logger:  quietLogger(),
	}
	for r := range g.Rows() {
		for c := range g.Cols() {
			p := Pos{r, c}
			s := g.Get(p)
			if s.HasFlag(TilePlayer) {
				e.player.Pos = p
			}
			if s.HasFlag(TileEnemy) {
				kind := EnemyOutside
				if s.Terrain() == TileFilled {
					kind = EnemyInside
				}
				e.enemies = append(e.enemies, Enemy{Pos: p, DX: 1, DY: 1, Kind: kind, Active: true})
			}
		}
	}
	return e
}

func assertTerrain(t *testing.T, g *Grid, want TileStatus, cells ...Pos) {
	t.Helper()
	for _, p := range cells {
		if got := g.Terrain(p); got != want {
			t.Errorf("terrain at %v = %v, want %v", p, got, want)
		}
	}
}

// block returns every position in the inclusive rectangle.
func block(r0, c0, r1, c1 int) []Pos {
	var out []Pos
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			out = append(out, Pos{r, c})
		}
	}
	return out
}
