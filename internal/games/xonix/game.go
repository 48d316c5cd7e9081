package xonix

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/xonix/internal/config"
	"github.com/vovakirdan/xonix/internal/core"
	"github.com/vovakirdan/xonix/internal/registry"
)

// Mode selects which enemy groups a run starts with.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeSiege   Mode = "siege" // Adds enemies roaming inside captured territory
)

// siegeInsideEnemies is used by siege mode when the config sets none.
const siegeInsideEnemies = 2

// Package-level settings applied on every Reset, set by the CLI.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	fitScreen        bool
)

// SetConfigPath sets the config file path used on Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetFitScreen makes Reset size the grid to the screen instead of the config.
func SetFitScreen(fit bool) {
	fitScreen = fit
}

// Game adapts the Engine to the platform's registry.Game interface.
type Game struct {
	mode   Mode
	rules  Rules
	engine *Engine
	rng    *rand.Rand
	logger *log.Logger

	difficulty config.DifficultyPreset // Overrides the package preset when set
	dir        core.Action             // Latched direction
	holdKeys   bool                    // Directions come from held keys, no latching
	paused     bool
	dt         float64 // Seconds per Step call
	screenW    int
	screenH    int
}

// New creates a classic Xonix game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewSiege creates a game with enemies inside captured territory too.
func NewSiege() *Game {
	return &Game{mode: ModeSiege}
}

func init() {
	registry.Register("xonix", func() registry.Game {
		return New()
	})
	registry.Register("xonix_siege", func() registry.Game {
		return NewSiege()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSiege {
		return "xonix_siege"
	}
	return "xonix"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSiege {
		return "Xonix (Siege)"
	}
	return "Xonix"
}

// SetLogger sets the logger handed to the engine on Reset.
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
}

// SetDifficulty sets the preset for this game only, used on the next Reset.
func (g *Game) SetDifficulty(p config.DifficultyPreset) {
	g.difficulty = p
}

// HoldKeys switches the game to read directions from held keys on every
// step. Frontends with key release events use it; terminals cannot.
func (g *Game) HoldKeys(hold bool) {
	g.holdKeys = hold
}

// Reset loads the rules and starts a new run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.logger == nil {
		g.logger = log.Default()
	}
	preset := difficultyPreset
	if g.difficulty != "" {
		preset = g.difficulty
	}
	rules, err := LoadRules(configPath, preset)
	if err != nil {
		g.logger.Warn("using default rules", "err", err)
		rules = DefaultRules()
	}
	if g.mode == ModeSiege && rules.EnemiesInside == 0 {
		rules.EnemiesInside = siegeInsideEnemies
	}
	if fitScreen && cfg.ScreenW > 0 && cfg.ScreenH > 0 {
		rules = rules.FitScreen(cfg.ScreenW, cfg.ScreenH)
	}

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.dt = cfg.TickSeconds()
	g.dir = core.ActionNone
	g.paused = false
	g.start(rules, cfg.Seed)
}

// ResetWithRules starts a new run with explicit rules, bypassing config loading.
func (g *Game) ResetWithRules(rules Rules, seed int64) error {
	if err := rules.Validate(); err != nil {
		return err
	}
	if g.logger == nil {
		g.logger = log.Default()
	}
	if g.dt == 0 {
		g.dt = core.DefaultConfig().TickSeconds()
	}
	g.dir = core.ActionNone
	g.paused = false
	g.start(rules, seed)
	return nil
}

func (g *Game) start(rules Rules, seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	engine, err := NewEngine(rules, g.rng, WithLogger(g.logger))
	if err != nil {
		g.logger.Error("invalid rules, falling back to defaults", "err", err)
		rules = DefaultRules()
		engine, _ = NewEngine(rules, g.rng, WithLogger(g.logger))
	}
	g.rules = rules
	g.engine = engine
}

// Resize records a new screen size. The run keeps going; Render reports
// when the board no longer fits.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step advances the game by one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.StepFor(time.Duration(g.dt*float64(time.Second)), in)
}

// StepFor advances the game by a measured frame time.
func (g *Game) StepFor(elapsed time.Duration, in core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{}
	}

	if in.Has(core.ActionRestart) && g.engine.State() != StatePlaying {
		g.dir = core.ActionNone
		g.paused = false
		g.start(g.rules, g.rng.Int63())
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) && g.engine.State() == StatePlaying {
		g.paused = !g.paused
	}
	g.updateDirection(in)

	if g.paused || g.tooSmall() {
		return core.StepResult{State: g.State()}
	}

	events := g.engine.Update(elapsed.Seconds(), g.input())
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) updateDirection(in core.InputFrame) {
	if g.holdKeys {
		g.dir = in.Direction()
		return
	}
	if in.Has(core.ActionStop) {
		g.dir = core.ActionNone
	}
	if d := in.Direction(); d != core.ActionNone {
		g.dir = d
	}
}

func (g *Game) input() Input {
	return Input{
		Left:  g.dir == core.ActionLeft,
		Right: g.dir == core.ActionRight,
		Up:    g.dir == core.ActionUp,
		Down:  g.dir == core.ActionDown,
	}
}

// tooSmall reports whether a known screen cannot hold the board.
func (g *Game) tooSmall() bool {
	if g.screenW <= 0 || g.screenH <= 0 {
		return false
	}
	w, h := BoardSize(g.rules.Rows, g.rules.Cols)
	return g.screenW < w || g.screenH < h
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	st := g.engine.State()
	return core.GameState{
		Score:    g.engine.Score(),
		Lives:    g.engine.Life(),
		Progress: g.engine.Grid().AreaFilled(),
		GameOver: st != StatePlaying,
		Won:      st == StateWon,
		Paused:   g.paused,
	}
}

// Engine returns the running engine, nil before the first Reset.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Rules returns the rules of the current run.
func (g *Game) Rules() Rules {
	return g.rules
}
