package main

import (
	"context"
	"net/http"
	"time"

	"forca/internal/engine"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// getOrCreateSession retrieves the session ID from the cookie or issues a new one.
func (app *App) getOrCreateSession(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || !isValidSessionID(sessionID) {
		sessionID = uuid.NewString()
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(SessionCookieName, sessionID, int(app.CookieMaxAge.Seconds()), "/", "", app.IsProduction, true)
		requestLogger(c.Request.Context()).Info().Str("session", sessionID).Msg("created new session")
	}
	return sessionID
}

func isValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// getPlayerSession returns the session's game, starting one if the session
// has none or it has expired.
func (app *App) getPlayerSession(ctx context.Context, sessionID string) *playerSession {
	now := time.Now()

	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()
	if ps, ok := app.Sessions[sessionID]; ok && now.Sub(ps.lastAccess) <= app.SessionTimeout {
		ps.lastAccess = now
		return ps
	}

	ps := app.newPlayerSession()
	ps.lastAccess = now
	app.Sessions[sessionID] = ps
	requestLogger(ctx).Info().Str("session", sessionID).Msg("started game")
	return ps
}

func (app *App) newPlayerSession() *playerSession {
	ps := &playerSession{}
	ps.game = engine.NewGame(app.WordBank,
		engine.WithRand(app.Rand),
		engine.WithNotifier(func(n engine.Notice) {
			ps.notices = append(ps.notices, n)
		}),
	)
	ps.game.Start()
	return ps
}

// activeSessions counts the sessions currently held in memory.
func (app *App) activeSessions() int {
	app.SessionMutex.RLock()
	defer app.SessionMutex.RUnlock()
	return len(app.Sessions)
}
