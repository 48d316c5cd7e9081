// Package tracker records finished runs for the frontends. Each frontend
// feeds it the state after every step; the tracker notices game over and
// restarts and saves each finished run exactly once.
package tracker

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/xonix/internal/core"
	"github.com/vovakirdan/xonix/internal/storage"
)

// Tracker follows one game instance across restarts.
type Tracker struct {
	store   *storage.Store
	logger  *log.Logger
	gameID  string
	player  string
	now     func() time.Time
	started time.Time
	ticks   int64
	wasOver bool
	saved   bool
}

// New creates a tracker. A nil store disables saving; a nil logger uses the
// default logger.
func New(store *storage.Store, gameID, player string, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.Default()
	}
	t := &Tracker{
		store:  store,
		logger: logger,
		gameID: gameID,
		player: player,
		now:    time.Now,
	}
	t.started = t.now()
	return t
}

// Observe records one step. It returns the saved run ID when this step
// finished a run and the run was stored.
func (t *Tracker) Observe(st core.GameState) string {
	t.ticks++

	// A restart flips the state back to playing
	if t.wasOver && !st.GameOver {
		t.started = t.now()
		t.ticks = 1
		t.saved = false
	}
	t.wasOver = st.GameOver

	if !st.GameOver || t.saved {
		return ""
	}
	t.saved = true
	return t.save(st)
}

// Ticks returns the number of steps observed in the current run.
func (t *Tracker) Ticks() int64 {
	return t.ticks
}

// save stores the finished run. Storage errors only cost the record.
func (t *Tracker) save(st core.GameState) string {
	if t.store == nil {
		return ""
	}
	run := RunFromState(t.gameID, t.player, st, t.ticks, t.now().Sub(t.started))
	id, err := t.store.SaveRun(run)
	if err != nil {
		t.logger.Warn("could not save run", "game", t.gameID, "err", err)
		return ""
	}
	t.logger.Info("run saved", "id", id, "score", run.Score, "outcome", run.Outcome)
	return id
}

// RunFromState builds the stored record of a finished game.
func RunFromState(gameID, player string, st core.GameState, ticks int64, d time.Duration) storage.Run {
	return storage.Run{
		GameID:    gameID,
		Player:    player,
		Score:     st.Score,
		Area:      st.Progress,
		LivesLeft: st.Lives,
		Outcome:   st.Outcome(),
		Ticks:     ticks,
		Duration:  d,
	}
}
