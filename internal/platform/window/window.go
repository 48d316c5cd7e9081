// Package window runs Xonix in a desktop window with Ebitengine. Each tile
// is one pixel of an offscreen image that is scaled up by the tile size.
package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/xonix/internal/core"
	"github.com/vovakirdan/xonix/internal/games/xonix"
	"github.com/vovakirdan/xonix/internal/platform/tracker"
	"github.com/vovakirdan/xonix/internal/storage"
)

const (
	statusBarHeight = 18
	maxFrame        = 100 * time.Millisecond
)

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	upKeys    = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	downKeys  = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
)

// Option configures a Window.
type Option func(*Window)

// WithEventSink forwards game events to sink.
func WithEventSink(sink core.EventSink) Option {
	return func(w *Window) {
		w.sink = sink
	}
}

// WithPlayer sets the player name stored with finished runs.
func WithPlayer(name string) Option {
	return func(w *Window) {
		w.player = name
	}
}

// WithLogger sets the window's logger.
func WithLogger(l *log.Logger) Option {
	return func(w *Window) {
		w.logger = l
	}
}

// Window implements ebiten.Game around a Xonix game.
type Window struct {
	game    *xonix.Game
	sink    core.EventSink
	logger  *log.Logger
	player  string
	tracker *tracker.Tracker
	board   *ebiten.Image
	pixels  []byte
	state   core.GameState
	last    time.Time
}

// New starts a run of game sized by its own rules rather than a screen.
func New(game *xonix.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) *Window {
	w := &Window{
		game:   game,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenW, cfg.ScreenH = 0, 0

	game.SetLogger(w.logger)
	game.HoldKeys(true)
	game.Reset(cfg)

	w.tracker = tracker.New(store, game.ID(), w.player, w.logger)
	w.last = time.Now()
	return w
}

// Size returns the window size in pixels for the current rules.
func (w *Window) Size() (width, height int) {
	r := w.game.Rules()
	tile := max(r.TileSize, 1)
	return r.Cols * tile, r.Rows*tile + statusBarHeight
}

// Update reads the keyboard and advances the game by the measured frame time.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	now := time.Now()
	elapsed := min(now.Sub(w.last), maxFrame)
	w.last = now

	result := w.game.StepFor(elapsed, w.input())
	w.state = result.State
	if len(result.Events) > 0 && w.sink != nil {
		w.sink.Handle(result.Events)
	}
	w.tracker.Observe(result.State)
	return nil
}

// input collects the held direction keys and the one-shot commands.
func (w *Window) input() core.InputFrame {
	frame := core.NewInputFrame()
	held := func(keys []ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}

	switch {
	case held(leftKeys):
		frame.Set(core.ActionLeft)
	case held(rightKeys):
		frame.Set(core.ActionRight)
	case held(upKeys):
		frame.Set(core.ActionUp)
	case held(downKeys):
		frame.Set(core.ActionDown)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		frame.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		frame.Set(core.ActionRestart)
	}
	return frame
}

// Draw paints the board and the status bar.
func (w *Window) Draw(screen *ebiten.Image) {
	eng := w.game.Engine()
	if eng == nil {
		return
	}
	grid := eng.Grid()

	if w.board == nil || w.board.Bounds().Dx() != grid.Cols() || w.board.Bounds().Dy() != grid.Rows() {
		w.board = ebiten.NewImage(grid.Cols(), grid.Rows())
	}
	w.pixels = xonix.Pixels(grid, w.pixels)
	w.board.WritePixels(w.pixels)

	tile := float64(max(w.game.Rules().TileSize, 1))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(tile, tile)
	op.GeoM.Translate(0, statusBarHeight)
	screen.DrawImage(w.board, op)

	ebitenutil.DebugPrintAt(screen, w.statusText(eng), 4, 1)
}

func (w *Window) statusText(eng *xonix.Engine) string {
	line := fmt.Sprintf("%s  Score: %d", xonix.StatusLine(eng.Status()), eng.Score())
	switch {
	case eng.State() == xonix.StateWon:
		line += "  YOU WIN! R to restart"
	case eng.State() == xonix.StateLost:
		line += "  GAME OVER. R to restart"
	case w.state.Paused:
		line += "  PAUSED"
	}
	return line
}

// Layout keeps the logical screen at the board size; Ebitengine scales it
// into the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.Size()
}

// Run opens the window and blocks until it is closed.
func Run(game *xonix.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	w := New(game, store, cfg, opts...)

	width, height := w.Size()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	tps := cfg.TickRate
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
