package sound

import (
	"testing"
	"time"

	"github.com/vovakirdan/xonix/internal/core"
)

func TestPick(t *testing.T) {
	tests := []struct {
		name   string
		events []core.Event
		want   core.EventKind
		wantOK bool
	}{
		{"empty", nil, 0, false},
		{"single", []core.Event{{Kind: core.EventTrailStarted}}, core.EventTrailStarted, true},
		{"capture beats rejection", []core.Event{
			{Kind: core.EventCaptureRejected, Value: 4},
			{Kind: core.EventCaptured, Value: 20},
		}, core.EventCaptured, true},
		{"win beats capture", []core.Event{
			{Kind: core.EventCaptured, Value: 20},
			{Kind: core.EventWon, Value: 1520},
		}, core.EventWon, true},
		{"game over beats life lost", []core.Event{
			{Kind: core.EventLifeLost},
			{Kind: core.EventGameOver},
		}, core.EventGameOver, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Pick(tt.events)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Pick() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestEveryEventHasCue(t *testing.T) {
	for _, kind := range cuePriority {
		notes := Cue(kind)
		if len(notes) == 0 {
			t.Errorf("no cue for %v", kind)
		}
		for _, n := range notes {
			if n.Duration <= 0 {
				t.Errorf("%v has a note without duration", kind)
			}
		}
	}
	if Cue(core.EventKind(99)) != nil {
		t.Error("unknown event kind has a cue")
	}
}

func TestBuildLength(t *testing.T) {
	notes := []Note{
		{Freq: 440, Duration: 10 * time.Millisecond},
		{Duration: 5 * time.Millisecond},
		{Freq: 220, Duration: 10 * time.Millisecond, Square: true},
	}
	s, err := Build(notes, 0.5)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := sampleRate.N(10*time.Millisecond)*2 + sampleRate.N(5*time.Millisecond)
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		for i := range n {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample out of range: %v", buf[i][0])
			}
		}
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}

func TestBuildRejectsBadFrequency(t *testing.T) {
	_, err := Build([]Note{{Freq: 40000, Duration: time.Millisecond}}, 1)
	if err == nil {
		t.Error("Build() accepted a tone above the Nyquist limit")
	}
}

func TestHandleWithoutSpeakerIsSilent(t *testing.T) {
	p := NewPlayer(0.5, nil)
	// Not initialized: must not touch the speaker.
	p.Handle([]core.Event{{Kind: core.EventCaptured, Value: 3}})
	p.Close()
}
