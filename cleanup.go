package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// cleanupExpiredSessions drops sessions idle for longer than maxAge and
// returns how many were removed.
func (app *App) cleanupExpiredSessions(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()
	removed := 0
	for id, ps := range app.Sessions {
		if ps.lastAccess.Before(cutoff) {
			delete(app.Sessions, id)
			removed++
		}
	}
	return removed
}

// cleanupLimiters forgets every per-client limiter. A client's next request
// starts with a full burst.
func (app *App) cleanupLimiters() {
	app.LimiterMutex.Lock()
	clear(app.LimiterMap)
	app.LimiterMutex.Unlock()
}

// runSessionSweeper removes expired sessions every SweepInterval until ctx is done.
func (app *App) runSessionSweeper(ctx context.Context) {
	ticker := time.NewTicker(app.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := app.cleanupExpiredSessions(app.SessionTimeout)
			app.cleanupLimiters()
			log.Debug().Int("removed", removed).Int("active", app.activeSessions()).Msg("session sweep")
		}
	}
}
