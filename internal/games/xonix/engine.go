package xonix

import (
	"errors"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/xonix/internal/core"
)

// State is the lifecycle state of a run.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "playing"
	}
}

// ErrNoSpawnCell is logged when an enemy has no free tile to spawn on.
var ErrNoSpawnCell = errors.New("xonix: no free tile to spawn enemy")

// WinBonusPerLife is added to the score for every life left on a win.
const WinBonusPerLife = 500

// Status is the data shown on the status line.
type Status struct {
	AreaFilled float64 // Captured fraction, 0..1
	Life       int
	FPS        float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for engine diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// Engine owns the grid and actors and advances them in fixed movement steps.
type Engine struct {
	rules   Rules
	grid    *Grid
	capture *RegionCapture
	player  Player
	enemies []Enemy

	life  int
	state State
	score int

	timer float64 // Seconds accumulated toward the next movement step
	fps   float64
	ticks uint64

	rng    *rand.Rand
	logger *log.Logger
	events []core.Event
}

// NewEngine validates rules, initializes the grid and spawns the enemies.
func NewEngine(rules Rules, rng *rand.Rand, opts ...Option) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		rules:  rules,
		rng:    rng,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(1))
	}

	e.grid = NewGrid(rules.Rows, rules.Cols)
	e.grid.Init()
	e.capture = NewRegionCapture(e.grid)
	e.life = rules.Lives
	e.state = StatePlaying
	e.player = Player{Pos: Pos{}}
	e.grid.Add(e.player.Pos, TilePlayer)
	e.spawnEnemies()

	e.logger.Debug("engine ready",
		"rows", rules.Rows, "cols", rules.Cols,
		"lives", rules.Lives, "enemies", len(e.enemies))
	return e, nil
}

// Update advances the frame clock by elapsed seconds. A movement step runs
// once more than MoveDelay seconds have accumulated. Nothing happens once the
// run has ended. Returns the events raised by this call.
func (e *Engine) Update(elapsed float64, in Input) []core.Event {
	e.events = e.events[:0]
	if e.state != StatePlaying {
		return nil
	}
	if elapsed > 0 {
		e.fps = 1 / elapsed
	}
	e.timer += elapsed
	if e.timer > e.rules.MoveDelay {
		e.timer = 0
		e.step(in)
	}
	return e.drain()
}

// Step runs exactly one movement step regardless of the frame clock.
func (e *Engine) Step(in Input) []core.Event {
	e.events = e.events[:0]
	if e.state != StatePlaying {
		return nil
	}
	e.step(in)
	return e.drain()
}

func (e *Engine) step(in Input) {
	e.ticks++
	e.movePlayer(in)
	if e.state == StatePlaying {
		e.moveEnemies()
	}
	e.checkEnd()
}

func (e *Engine) drain() []core.Event {
	if len(e.events) == 0 {
		return nil
	}
	out := make([]core.Event, len(e.events))
	copy(out, e.events)
	return out
}

func (e *Engine) emit(kind core.EventKind, value int) {
	e.events = append(e.events, core.Event{Kind: kind, Value: value})
}

// checkEnd declares the win once the captured area reaches the threshold.
func (e *Engine) checkEnd() {
	if e.state != StatePlaying {
		return
	}
	if e.grid.AreaFilled()*100 >= e.rules.AreaToWin {
		e.state = StateWon
		e.score += e.life * WinBonusPerLife
		e.emit(core.EventWon, e.score)
		e.logger.Info("run won", "score", e.score, "lives", e.life, "ticks", e.ticks)
	}
}

// Grid returns the live grid. Callers must not modify it.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// Rules returns the rules the engine was built with.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Player returns the player.
func (e *Engine) Player() Player {
	return e.player
}

// Enemies returns a copy of the enemy list.
func (e *Engine) Enemies() []Enemy {
	out := make([]Enemy, len(e.enemies))
	copy(out, e.enemies)
	return out
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Life returns the remaining lives.
func (e *Engine) Life() int {
	return e.life
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Ticks returns the number of movement steps taken.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Status returns the values shown on the status line.
func (e *Engine) Status() Status {
	return Status{
		AreaFilled: e.grid.AreaFilled(),
		Life:       e.life,
		FPS:        e.fps,
	}
}
