// Package sound plays short synthesized cues for game events.
package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/xonix/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Note is one tone of a cue. A zero Freq is a rest.
type Note struct {
	Freq     float64
	Duration time.Duration
	Square   bool
}

// cuePriority orders event kinds when several arrive in one step. Only the
// first match is played so cues do not pile up.
var cuePriority = []core.EventKind{
	core.EventGameOver,
	core.EventWon,
	core.EventLifeLost,
	core.EventCaptured,
	core.EventCaptureRejected,
	core.EventTrailStarted,
}

// Cue returns the notes played for an event kind, nil for silent kinds.
func Cue(kind core.EventKind) []Note {
	ms := time.Millisecond
	switch kind {
	case core.EventTrailStarted:
		return []Note{{Freq: 660, Duration: 30 * ms}}
	case core.EventCaptured:
		return []Note{{Freq: 784, Duration: 60 * ms}, {Freq: 1047, Duration: 90 * ms}}
	case core.EventCaptureRejected:
		return []Note{{Freq: 330, Duration: 80 * ms, Square: true}}
	case core.EventLifeLost:
		return []Note{{Freq: 220, Duration: 120 * ms, Square: true}, {Freq: 165, Duration: 180 * ms, Square: true}}
	case core.EventWon:
		return []Note{
			{Freq: 523, Duration: 100 * ms},
			{Freq: 659, Duration: 100 * ms},
			{Freq: 784, Duration: 100 * ms},
			{Freq: 1047, Duration: 250 * ms},
		}
	case core.EventGameOver:
		return []Note{
			{Freq: 392, Duration: 150 * ms, Square: true},
			{Duration: 50 * ms},
			{Freq: 262, Duration: 150 * ms, Square: true},
			{Freq: 131, Duration: 300 * ms, Square: true},
		}
	}
	return nil
}

// Pick returns the event kind that should be heard for a batch of events.
func Pick(events []core.Event) (core.EventKind, bool) {
	for _, kind := range cuePriority {
		for _, ev := range events {
			if ev.Kind == kind {
				return kind, true
			}
		}
	}
	return 0, false
}

// Build renders notes into one streamer at the given volume (0..1).
func Build(notes []Note, volume float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := toneFor(n)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.Duration), tone))
	}
	return newVolume(beep.Seq(parts...), volume), nil
}

func toneFor(n Note) (beep.Streamer, error) {
	if n.Freq <= 0 {
		return generators.Silence(-1), nil
	}
	var (
		s   beep.Streamer
		err error
	)
	if n.Square {
		s, err = generators.SquareTone(sampleRate, n.Freq)
	} else {
		s, err = generators.SineTone(sampleRate, n.Freq)
	}
	if err != nil {
		return nil, fmt.Errorf("sound: tone %.0fHz: %w", n.Freq, err)
	}
	return s, nil
}

// newVolume scales s by a linear volume; math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(min(vol, 1))}
}

// Player plays cues through the system speaker. It implements core.EventSink.
type Player struct {
	mu          sync.Mutex
	volume      float64
	mixer       *beep.Mixer
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player. Call Init before the first Handle.
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		volume: volume,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the speaker. A failure leaves the player silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("sound: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Handle plays the cue for the most important event in the batch.
func (p *Player) Handle(events []core.Event) {
	kind, ok := Pick(events)
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	s, err := Build(Cue(kind), p.volume)
	if err != nil {
		p.logger.Warn("cannot build cue", "event", kind, "err", err)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.mixer.Clear()
	p.initialized = false
}

var _ core.EventSink = (*Player)(nil)
