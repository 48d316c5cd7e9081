package core

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventTrailStarted EventKind = iota + 1
	EventCaptured
	EventCaptureRejected
	EventLifeLost
	EventWon
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventTrailStarted:
		return "trail_started"
	case EventCaptured:
		return "captured"
	case EventCaptureRejected:
		return "capture_rejected"
	case EventLifeLost:
		return "life_lost"
	case EventWon:
		return "won"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by a game step. Value carries a kind-specific amount
// (tiles captured, lives remaining).
type Event struct {
	Kind  EventKind
	Value int
}

// EventSink consumes events produced by game steps (sound, logging).
type EventSink interface {
	Handle(events []Event)
}
