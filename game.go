package main

import (
	"context"
	"errors"

	"forca/internal/engine"
)

// playGuess submits letter as the session's guess and returns the notices
// it produced. A rejected guess returns its engine error alongside the notice.
func (app *App) playGuess(ctx context.Context, sessionID string, ps *playerSession, letter string) ([]engine.Notice, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	ps.game.SetPendingInput(letter)
	err := ps.game.Confirm()
	notices := ps.takeNotices()

	logger := requestLogger(ctx)
	switch {
	case errors.Is(err, engine.ErrDuplicateGuess):
		logger.Debug().Str("session", sessionID).Str("letter", letter).Msg("duplicate guess")
	case errors.Is(err, engine.ErrEmptyGuess):
		logger.Debug().Str("session", sessionID).Msg("empty guess")
	case err != nil:
		logger.Warn().Err(err).Str("session", sessionID).Msg("guess failed")
	}
	for _, n := range notices {
		if n.Terminal() {
			logger.Info().Str("session", sessionID).Str("outcome", n.Kind.String()).Str("word", n.Word).
				Int("round", ps.game.Round()-1).Msg("round finished")
		}
	}
	return notices, err
}

// restartGame starts a new round when confirmed is true. Otherwise it only
// returns the prompt the player has to answer.
func (app *App) restartGame(ctx context.Context, sessionID string, ps *playerSession, confirmed bool) (bool, *engine.Notice) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	var prompt engine.Notice
	restarted := ps.game.RequestRestart(func(n engine.Notice) bool {
		prompt = n
		return confirmed
	})
	if restarted {
		requestLogger(ctx).Info().Str("session", sessionID).Int("round", ps.game.Round()).Msg("game restarted")
		return true, nil
	}
	return false, &prompt
}

// snapshot returns the session's current view.
func (ps *playerSession) snapshot() engine.View {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.game.View()
}
