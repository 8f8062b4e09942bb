package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gravflip/internal/core"
)

// Recorder saves every finished round exactly once. Frontends feed it the
// state after each tick; rounds are told apart by GameState.Round.
type Recorder struct {
	store  *Store // Nil only logs
	player string
	logger *log.Logger
	saved  int // Last round recorded
}

// NewRecorder creates a recorder writing runs for player to store.
func NewRecorder(store *Store, player string, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{store: store, player: player, logger: logger}
}

// Observe records state if it ends a round not recorded yet.
// Returns true when the round was handled on this call.
func (r *Recorder) Observe(state core.GameState) bool {
	if !state.Finished() || state.Round == r.saved {
		return false
	}
	r.saved = state.Round

	outcome := OutcomeGameOver
	if state.Won {
		outcome = OutcomeWin
	}
	r.logger.Info("round finished", "round", state.Round, "outcome", outcome, "seconds", state.Score)

	if r.store == nil {
		return true
	}
	run, err := r.store.SaveRun(Run{
		Outcome: outcome,
		Seconds: state.Score,
		Player:  r.player,
	})
	if err != nil {
		r.logger.Error("could not save run", "error", err)
		return true
	}
	r.logger.Debug("run saved", "id", run.ID)
	return true
}
