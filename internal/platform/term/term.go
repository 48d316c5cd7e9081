// Package term runs a game directly on a tcell screen. Unlike the Bubble Tea
// frontend it measures the real frame time and hands it to games that can
// use it.
package term

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/xonix/internal/core"
	"github.com/vovakirdan/xonix/internal/platform/tracker"
	"github.com/vovakirdan/xonix/internal/registry"
	"github.com/vovakirdan/xonix/internal/storage"
)

// maxFrame caps the measured frame time after a stall (suspend, slow terminal).
const maxFrame = 100 * time.Millisecond

// Option configures a Runner.
type Option func(*Runner)

// WithEventSink forwards game events to sink.
func WithEventSink(sink core.EventSink) Option {
	return func(r *Runner) {
		r.sink = sink
	}
}

// WithPlayer sets the player name stored with finished runs.
func WithPlayer(name string) Option {
	return func(r *Runner) {
		r.player = name
	}
}

// WithLogger sets the runner's logger.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// Runner drives one game on a tcell screen.
type Runner struct {
	screen  tcell.Screen
	game    registry.Game
	sink    core.EventSink
	logger  *log.Logger
	player  string
	config  core.RuntimeConfig
	buf     *core.Screen
	frame   core.InputFrame
	tracker *tracker.Tracker
}

// NewRunner prepares a runner on an initialized screen.
func NewRunner(screen tcell.Screen, game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) *Runner {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	w, h := screen.Size()
	cfg.ScreenW, cfg.ScreenH = w, h

	r := &Runner{
		screen: screen,
		game:   game,
		logger: log.Default(),
		config: cfg,
		buf:    core.NewScreen(w, h),
		frame:  core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.tracker = tracker.New(store, game.ID(), r.player, r.logger)
	return r
}

// Run opens the terminal, plays game until the user quits and restores the
// terminal.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: cannot init screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()

	return NewRunner(screen, game, store, cfg, opts...).Loop()
}

// Loop resets the game and runs the frame loop until a quit key arrives.
func (r *Runner) Loop() error {
	r.game.Reset(r.config)

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	rate := r.config.TickRate
	if rate <= 0 {
		rate = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	last := time.Now()
	r.draw()
	for {
		select {
		case ev := <-events:
			if !r.HandleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			elapsed := min(now.Sub(last), maxFrame)
			last = now
			r.Advance(elapsed)
			r.draw()
		}
	}
}

// HandleEvent applies one terminal event. It returns false on quit.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := MapKey(ev)
		if action == core.ActionQuit {
			return false
		}
		if action != core.ActionNone {
			r.frame.Set(action)
		}

	case *tcell.EventResize:
		r.screen.Sync()
		w, h := r.screen.Size()
		r.config.ScreenW, r.config.ScreenH = w, h
		r.buf.Resize(w, h)
		if rs, ok := r.game.(registry.Resizer); ok {
			rs.Resize(w, h)
		} else if !r.game.State().GameOver {
			r.game.Reset(r.config)
		}
	}
	return true
}

// Advance steps the game by elapsed and consumes the pending input.
func (r *Runner) Advance(elapsed time.Duration) core.StepResult {
	var result core.StepResult
	if tg, ok := r.game.(registry.TimedGame); ok {
		result = tg.StepFor(elapsed, r.frame)
	} else {
		result = r.game.Step(r.frame)
	}
	r.frame.Clear()

	if len(result.Events) > 0 && r.sink != nil {
		r.sink.Handle(result.Events)
	}
	r.tracker.Observe(result.State)
	return result
}

// draw renders the game and copies the buffer to the terminal.
func (r *Runner) draw() {
	r.buf.Clear()
	r.game.Render(r.buf)
	Blit(r.screen, r.buf)
	r.screen.Show()
}

// Blit copies every cell of buf onto the tcell screen.
func Blit(dst tcell.Screen, buf *core.Screen) {
	for y := range buf.Height() {
		for x := range buf.Width() {
			c := buf.GetCell(x, y)
			dst.SetContent(x, y, c.Rune, nil, Style(c))
		}
	}
}

// Style returns the tcell style for a cell's colors.
func Style(c core.Cell) tcell.Style {
	return tcell.StyleDefault.Foreground(Color(c.Fg)).Background(Color(c.Bg))
}

// Color maps a game color to a tcell palette color.
func Color(c core.Color) tcell.Color {
	switch c {
	case core.ColorBlack:
		return tcell.ColorBlack
	case core.ColorRed:
		return tcell.ColorMaroon
	case core.ColorGreen:
		return tcell.ColorGreen
	case core.ColorYellow:
		return tcell.ColorOlive
	case core.ColorBlue:
		return tcell.ColorNavy
	case core.ColorMagenta:
		return tcell.ColorPurple
	case core.ColorCyan:
		return tcell.ColorTeal
	case core.ColorWhite:
		return tcell.ColorWhite
	case core.ColorGray:
		return tcell.PaletteColor(245)
	default:
		return tcell.ColorDefault
	}
}

// MapKey translates a tcell key event to a game action. Quit is returned
// for Q and Ctrl+C.
func MapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyEscape:
		return core.ActionPause
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		return mapRune(ev.Rune())
	}
	return core.ActionNone
}

func mapRune(r rune) core.Action {
	switch r {
	case 'a', 'h':
		return core.ActionLeft
	case 'd', 'l':
		return core.ActionRight
	case 'w', 'k':
		return core.ActionUp
	case 's', 'j':
		return core.ActionDown
	case ' ':
		return core.ActionStop
	case 'p':
		return core.ActionPause
	case 'r':
		return core.ActionRestart
	case 'q':
		return core.ActionQuit
	}
	return core.ActionNone
}
