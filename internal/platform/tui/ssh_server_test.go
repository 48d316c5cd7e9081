package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return model
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	store := openTestStore(t)
	m := NewSessionModel(store, testConfig(), "carol", quietLogger())

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame || m.game == nil {
		t.Fatalf("view = %v, want game", m.view)
	}

	for range 4 {
		m = sessionUpdate(t, m, TickMsg(time.Now()))
	}
	runs, err := store.RecentRuns(5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Player != "carol" {
		t.Fatalf("runs = %+v, want one run by carol", runs)
	}

	m = sessionUpdate(t, m, runeKey("b"))
	if m.view != viewMenu || m.game != nil {
		t.Errorf("view = %v, want menu after Back", m.view)
	}
}

func TestSessionScoreboard(t *testing.T) {
	cfg := testConfig()
	cfg.ScreenW, cfg.ScreenH = 100, 30
	m := NewSessionModel(nil, cfg, "dave", quietLogger())

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores {
		t.Fatalf("view = %v, want scores", m.view)
	}
	if m.View() == "" {
		t.Error("scoreboard view should not be empty")
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "erin", quietLogger())
	next, cmd := m.Update(runeKey("q"))
	if !next.(SessionModel).quitting {
		t.Error("q should end the session")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
}
