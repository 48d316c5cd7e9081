package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame
	if !f.Empty() {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionPause)
	f.Set(ActionNone)
	f.Set(Action(200))
	if !f.Has(ActionPause) || f.Has(ActionQuit) || f.Has(ActionNone) {
		t.Errorf("Has() mismatch for frame %b", f.bits)
	}

	c := f
	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}
	if !c.Has(ActionPause) {
		t.Error("copies of a frame should not share state")
	}
}

func TestInputFrameDirectionPriority(t *testing.T) {
	tests := []struct {
		name     string
		set      []Action
		expected Action
	}{
		{"none", nil, ActionNone},
		{"single down", []Action{ActionDown}, ActionDown},
		{"left beats right", []Action{ActionRight, ActionLeft}, ActionLeft},
		{"right beats up", []Action{ActionUp, ActionRight}, ActionRight},
		{"up beats down", []Action{ActionDown, ActionUp}, ActionUp},
		{"non-direction ignored", []Action{ActionPause, ActionStop}, ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.set {
				f.Set(a)
			}
			if got := f.Direction(); got != tc.expected {
				t.Errorf("Direction() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionRestart.String() != "Restart" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
	if !ActionUp.IsDirection() || ActionStop.IsDirection() || ActionNone.IsDirection() {
		t.Error("IsDirection mismatch")
	}
}
