package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/xonix/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(1, 1, "cd")

	got := RenderScreen(s)
	want := "ab  \n cd "
	if got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestRenderScreenColoredRuns(t *testing.T) {
	s := core.NewScreen(6, 1)
	for x := range 3 {
		s.SetCell(x, 0, core.Cell{Rune: '▀', Fg: core.ColorWhite, Bg: core.ColorBlack})
	}
	for x := 3; x < 6; x++ {
		s.SetCell(x, 0, core.Cell{Rune: '▀', Fg: core.ColorCyan, Bg: core.ColorRed})
	}

	got := ansi.Strip(RenderScreen(s))
	if got != strings.Repeat("▀", 6) {
		t.Errorf("visible text = %q, want six half blocks", got)
	}
}

func TestStyleForCaches(t *testing.T) {
	a := styleFor(core.ColorGreen, core.ColorBlack)
	b := styleFor(core.ColorGreen, core.ColorBlack)
	if a.Render("x") != b.Render("x") {
		t.Error("cached style should render identically")
	}

	styleMu.Lock()
	_, ok := styleCache[colorPair{core.ColorGreen, core.ColorBlack}]
	styleMu.Unlock()
	if !ok {
		t.Error("style should be cached")
	}
}
