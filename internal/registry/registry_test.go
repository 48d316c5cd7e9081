package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/xonix/internal/core"
)

type stubGame struct {
	id    string
	steps int
}

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Render(*core.Screen)      {}
func (g *stubGame) State() core.GameState    { return core.GameState{Score: g.steps} }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

type timedStub struct{ stubGame }

func (g *timedStub) StepFor(time.Duration, core.InputFrame) core.StepResult {
	return g.Step(core.NewInputFrame())
}

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") || Exists("zz_missing") {
		t.Fatal("Exists() reports the wrong games")
	}

	g, err := Create("zz_stub_b")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "zz_stub_b" {
		t.Errorf("Create() returned %q", g.ID())
	}

	if _, err := Create("zz_missing"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() of unknown game error = %v, want ErrUnknownGame", err)
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	ia, ib := indexOf(ids, "zz_stub_a"), indexOf(ids, "zz_stub_b")
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() = %v, want sorted stubs", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

func TestRegisterEmptyIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("empty id did not panic")
		}
	}()
	Register(" ", func() Game { return &stubGame{} })
}

func TestListCarriesTitles(t *testing.T) {
	Register("zz_titled", func() Game { return &stubGame{id: "zz_titled"} })
	for _, info := range List() {
		if info.ID == "zz_titled" && info.Title != "Stub zz_titled" {
			t.Errorf("Title = %q", info.Title)
		}
	}
}

func TestTimedGameAssertion(t *testing.T) {
	var g Game = &timedStub{stubGame{id: "timed"}}
	if _, ok := g.(TimedGame); !ok {
		t.Error("timedStub does not satisfy TimedGame")
	}
	var plain Game = &stubGame{id: "plain"}
	if _, ok := plain.(TimedGame); ok {
		t.Error("stubGame satisfies TimedGame")
	}
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
