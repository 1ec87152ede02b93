// Package workers holds the platform's autonomous background processes.
package workers

import (
	"context"
	"time"

	"producer-platform/services"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// LiveVotesWorker simulates live tournament engagement: on a fixed
// interval it asks the store to advance every active match's scores.
// All mutation goes through the store's own tick command, so worker
// ticks and user votes on the same match serialize — nothing is lost.
//
// The clock is injectable so tests can drive ticks deterministically.
type LiveVotesWorker struct {
	store    *services.AppStore
	clock    clockwork.Clock
	interval time.Duration
	log      zerolog.Logger
}

// NewLiveVotesWorker builds a worker on the real clock.
func NewLiveVotesWorker(store *services.AppStore, interval time.Duration, logger zerolog.Logger) *LiveVotesWorker {
	return newLiveVotesWorker(store, interval, logger, clockwork.NewRealClock())
}

func newLiveVotesWorker(store *services.AppStore, interval time.Duration, logger zerolog.Logger, clock clockwork.Clock) *LiveVotesWorker {
	return &LiveVotesWorker{
		store:    store,
		clock:    clock,
		interval: interval,
		log:      logger.With().Str("component", "live_votes_worker").Logger(),
	}
}

// Run ticks until ctx is cancelled. After it returns the worker performs
// no further mutations.
func (w *LiveVotesWorker) Run(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Msg("live vote simulation started")

	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("live vote simulation stopped")
			return
		case <-ticker.Chan():
			w.store.TickLiveMatches()
		}
	}
}
