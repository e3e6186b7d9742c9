package main

import (
	"encoding/json"
	"net/http"
	"time"

	"forca/internal/engine"
	"forca/internal/types"

	"github.com/gin-gonic/gin"
)

// homeHandler renders the main game page for the current session.
func (app *App) homeHandler(c *gin.Context) {
	ps := app.sessionFor(c)
	app.renderPage(c, TemplatePage, ps.snapshot(), nil, nil)
}

// gameStateHandler renders the current game board as an HTML fragment.
func (app *App) gameStateHandler(c *gin.Context) {
	ps := app.sessionFor(c)
	app.renderPage(c, TemplateBoard, ps.snapshot(), nil, nil)
}

// guessHandler submits the form's letter and re-renders the game.
func (app *App) guessHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	ps := app.getPlayerSession(c.Request.Context(), sessionID)

	notices, _ := app.playGuess(c.Request.Context(), sessionID, ps, c.PostForm(FormLetter))
	app.render(c, ps.snapshot(), notices, nil)
}

// restartHandler starts a new round once the player has confirmed, and
// otherwise renders the confirmation prompt.
func (app *App) restartHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	ps := app.getPlayerSession(c.Request.Context(), sessionID)

	_, prompt := app.restartGame(c.Request.Context(), sessionID, ps, c.PostForm(FormConfirm) == ConfirmYes)
	app.render(c, ps.snapshot(), nil, prompt)
}

// apiStateHandler returns the session's game as JSON.
func (app *App) apiStateHandler(c *gin.Context) {
	ps := app.sessionFor(c)
	c.JSON(http.StatusOK, types.NewGameView(ps.snapshot()))
}

// apiGuessHandler submits a guess from a JSON body.
func (app *App) apiGuessHandler(c *gin.Context) {
	var req types.GuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorBadJSON})
		return
	}
	sessionID := app.getOrCreateSession(c)
	ps := app.getPlayerSession(c.Request.Context(), sessionID)

	notices, err := app.playGuess(c.Request.Context(), sessionID, ps, req.Letter)
	resp := types.GuessResponse{
		Game:    types.NewGameView(ps.snapshot()),
		Notices: types.NewNoticeViews(notices),
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

// apiRestartHandler restarts the game when the JSON body confirms it.
func (app *App) apiRestartHandler(c *gin.Context) {
	var req types.RestartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorBadJSON})
		return
	}
	sessionID := app.getOrCreateSession(c)
	ps := app.getPlayerSession(c.Request.Context(), sessionID)

	restarted, prompt := app.restartGame(c.Request.Context(), sessionID, ps, req.Confirm)
	resp := types.RestartResponse{
		Restarted: restarted,
		Game:      types.NewGameView(ps.snapshot()),
	}
	if prompt != nil {
		p := types.NewNoticeView(*prompt)
		resp.Prompt = &p
	}
	c.JSON(http.StatusOK, resp)
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"env":             envName(app.IsProduction),
		"words_loaded":    app.WordBank.Len(),
		"active_sessions": app.activeSessions(),
		"uptime":          formatUptime(time.Since(app.StartTime)),
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	})
}

func (app *App) sessionFor(c *gin.Context) *playerSession {
	return app.getPlayerSession(c.Request.Context(), app.getOrCreateSession(c))
}

// render picks the fragment for HTMX requests and the full page otherwise.
func (app *App) render(c *gin.Context, view engine.View, notices []engine.Notice, prompt *engine.Notice) {
	name := TemplatePage
	if isHTMX(c) {
		name = TemplateBoard
	}
	app.renderPage(c, name, view, notices, prompt)
}

func (app *App) renderPage(c *gin.Context, name string, view engine.View, notices []engine.Notice, prompt *engine.Notice) {
	noticeViews := types.NewNoticeViews(notices)
	if len(noticeViews) > 0 {
		setNoticeTrigger(c, noticeViews[len(noticeViews)-1])
	}

	data := gin.H{
		"title":   PageTitle,
		"message": PageHeading,
		"game":    types.NewGameView(view),
		"notices": noticeViews,
	}
	if prompt != nil {
		data["prompt"] = types.NewNoticeView(*prompt)
	}
	c.HTML(http.StatusOK, name, data)
}

// setNoticeTrigger fires a "game-notice" client event carrying n.
func setNoticeTrigger(c *gin.Context, n types.NoticeView) {
	if !isHTMX(c) {
		return
	}
	b, err := json.Marshal(map[string]types.NoticeView{"game-notice": n})
	if err != nil {
		logWarn("Failed to marshal HX-Trigger payload: %v", err)
		return
	}
	c.Header("HX-Trigger", string(b))
}
