package term

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/xonix/internal/core"
	"github.com/vovakirdan/xonix/internal/registry"
)

// timedStub records what the runner hands it.
type timedStub struct {
	elapsed []time.Duration
	inputs  []core.InputFrame
	size    [2]int
	state   core.GameState
}

func (g *timedStub) ID() string                   { return "timed" }
func (g *timedStub) Title() string                { return "Timed" }
func (g *timedStub) Reset(cfg core.RuntimeConfig) { g.state = core.GameState{Lives: 1} }
func (g *timedStub) State() core.GameState        { return g.state }
func (g *timedStub) Resize(w, h int)              { g.size = [2]int{w, h} }

func (g *timedStub) Step(in core.InputFrame) core.StepResult {
	return g.StepFor(time.Second/60, in)
}

func (g *timedStub) StepFor(elapsed time.Duration, in core.InputFrame) core.StepResult {
	g.elapsed = append(g.elapsed, elapsed)
	g.inputs = append(g.inputs, in)
	return core.StepResult{State: g.state}
}

func (g *timedStub) Render(dst *core.Screen) {
	dst.SetCell(0, 0, core.Cell{Rune: '▀', Fg: core.ColorWhite, Bg: core.ColorBlack})
	dst.DrawText(1, 0, "ok")
}

var _ registry.TimedGame = (*timedStub)(nil)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want core.Action
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.ActionLeft},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), core.ActionRight},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.ActionUp},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), core.ActionDown},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), core.ActionLeft},
		{"l", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), core.ActionRight},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), core.ActionUp},
		{"j", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), core.ActionDown},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), core.ActionStop},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), core.ActionPause},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.ActionPause},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), core.ActionRestart},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), core.ActionQuit},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), core.ActionQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapKey(tt.ev); got != tt.want {
				t.Errorf("MapKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColor(t *testing.T) {
	if Color(core.ColorDefault) != tcell.ColorDefault {
		t.Error("default color should stay the terminal default")
	}
	seen := map[tcell.Color]core.Color{}
	for c := core.ColorBlack; c <= core.ColorGray; c++ {
		tc := Color(c)
		if prev, dup := seen[tc]; dup {
			t.Errorf("%v and %v map to the same tcell color", prev, c)
		}
		seen[tc] = c
	}
}

func TestBlitCopiesCells(t *testing.T) {
	s := newSimScreen(t, 4, 2)
	buf := core.NewScreen(4, 2)
	buf.SetCell(1, 1, core.Cell{Rune: '▀', Fg: core.ColorCyan, Bg: core.ColorRed})
	buf.DrawText(0, 0, "hi")

	Blit(s, buf)

	r, _, style, _ := s.GetContent(1, 1)
	if r != '▀' {
		t.Errorf("rune = %q, want half block", r)
	}
	fg, bg, _ := style.Decompose()
	if fg != Color(core.ColorCyan) || bg != Color(core.ColorRed) {
		t.Errorf("colors = (%v, %v), want cyan on red", fg, bg)
	}
	if r, _, _, _ := s.GetContent(1, 0); r != 'i' {
		t.Errorf("rune at (1,0) = %q, want 'i'", r)
	}
}

func TestRunnerAdvancePassesElapsedAndInput(t *testing.T) {
	s := newSimScreen(t, 10, 4)
	game := &timedStub{}
	r := NewRunner(s, game, nil, core.RuntimeConfig{TickRate: 60}, WithLogger(log.New(io.Discard)))
	game.Reset(r.config)

	if !r.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone)) {
		t.Fatal("d should not quit")
	}
	r.Advance(25 * time.Millisecond)
	r.Advance(25 * time.Millisecond)

	if len(game.elapsed) != 2 || game.elapsed[0] != 25*time.Millisecond {
		t.Errorf("elapsed = %v", game.elapsed)
	}
	if !game.inputs[0].Has(core.ActionRight) {
		t.Error("first step should see Right")
	}
	if game.inputs[1].Has(core.ActionRight) {
		t.Error("input should be consumed by the first step")
	}
}

func TestRunnerQuitAndResize(t *testing.T) {
	s := newSimScreen(t, 10, 4)
	game := &timedStub{}
	r := NewRunner(s, game, nil, core.RuntimeConfig{}, WithPlayer("zoe"))

	if r.config.ScreenW != 10 || r.config.ScreenH != 4 {
		t.Errorf("config size = %dx%d, want 10x4", r.config.ScreenW, r.config.ScreenH)
	}
	if r.config.Seed == 0 {
		t.Error("seed should be filled in")
	}

	s.SetSize(30, 8)
	r.HandleEvent(tcell.NewEventResize(30, 8))
	if game.size != [2]int{30, 8} {
		t.Errorf("Resize got %v, want [30 8]", game.size)
	}
	if r.buf.Width() != 30 || r.buf.Height() != 8 {
		t.Errorf("buffer = %dx%d, want 30x8", r.buf.Width(), r.buf.Height())
	}

	if r.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
}

type sinkFunc func([]core.Event)

func (f sinkFunc) Handle(events []core.Event) { f(events) }

func TestRunnerForwardsEvents(t *testing.T) {
	s := newSimScreen(t, 10, 4)
	game := &eventStub{}
	var got []core.Event
	r := NewRunner(s, game, nil, core.RuntimeConfig{}, WithEventSink(sinkFunc(func(ev []core.Event) {
		got = append(got, ev...)
	})))

	r.Advance(time.Millisecond)
	if len(got) != 1 || got[0].Kind != core.EventCaptured {
		t.Errorf("sink got %v, want one captured event", got)
	}
}

// eventStub is a plain Game that emits one event per step.
type eventStub struct{}

func (eventStub) ID() string               { return "events" }
func (eventStub) Title() string            { return "Events" }
func (eventStub) Reset(core.RuntimeConfig) {}
func (eventStub) Render(*core.Screen)      {}
func (eventStub) State() core.GameState    { return core.GameState{} }
func (eventStub) Step(core.InputFrame) core.StepResult {
	return core.StepResult{Events: []core.Event{{Kind: core.EventCaptured, Value: 4}}}
}
