package cleanup

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// IdleSessionStore is the part of the session registry the worker needs.
type IdleSessionStore interface {
	CleanupIdleSessions(maxIdle time.Duration) int
}

type Worker struct {
	Sessions IdleSessionStore
	Interval time.Duration
	MaxIdle  time.Duration
	log      zerolog.Logger
}

func NewWorker(sessions IdleSessionStore, interval, maxIdle time.Duration, logger zerolog.Logger) *Worker {
	return &Worker{
		Sessions: sessions,
		Interval: interval,
		MaxIdle:  maxIdle,
		log:      logger.With().Str("component", "cleanup").Logger(),
	}
}

// Start runs a cleanup straight away and then once per interval until ctx is
// cancelled. It blocks; run it on its own goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.runCleanup()

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()
	w.log.Info().Dur("interval", w.Interval).Dur("maxIdle", w.MaxIdle).Msg("background worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("background worker stopped")
			return
		case <-ticker.C:
			w.runCleanup()
		}
	}
}

// runCleanup executes the actual cleanup logic
func (w *Worker) runCleanup() {
	removed := w.Sessions.CleanupIdleSessions(w.MaxIdle)
	w.log.Debug().Int("removed", removed).Msg("cleanup pass finished")
}
