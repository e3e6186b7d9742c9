package types

import (
	"forca/internal/engine"

	"github.com/samber/lo"
)

type SlotView struct {
	Value    string `json:"value"`
	Revealed bool   `json:"revealed"`
	Correct  bool   `json:"correct"`
}

type GuessView struct {
	Value   string `json:"value"`
	Correct bool   `json:"correct"`
}

type GameView struct {
	Active      bool        `json:"active"`
	Tip         string      `json:"tip"`
	Slots       []SlotView  `json:"slots"`
	Attempts    int         `json:"attempts"`
	MaxAttempts int         `json:"maxAttempts"`
	Score       int         `json:"score"`
	LettersUsed []GuessView `json:"lettersUsed"`
}

type NoticeView struct {
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	Letter   string `json:"letter,omitempty"`
	Word     string `json:"word,omitempty"`
	Terminal bool   `json:"terminal"`
}

type GuessRequest struct {
	Letter string `json:"letter"`
}

type GuessResponse struct {
	Game    GameView     `json:"game"`
	Notices []NoticeView `json:"notices"`
	Error   string       `json:"error,omitempty"`
}

type RestartRequest struct {
	Confirm bool `json:"confirm"`
}

type RestartResponse struct {
	Restarted bool        `json:"restarted"`
	Prompt    *NoticeView `json:"prompt,omitempty"`
	Game      GameView    `json:"game"`
}

func NewGameView(v engine.View) GameView {
	return GameView{
		Active:      v.Active,
		Tip:         v.Tip,
		Attempts:    v.Attempts,
		MaxAttempts: v.MaxAttempts,
		Score:       v.Score,
		Slots: lo.Map(v.Slots, func(s engine.LetterSlot, _ int) SlotView {
			return SlotView{Value: s.Value, Revealed: s.Revealed, Correct: s.Correct}
		}),
		LettersUsed: lo.Map(v.LettersUsed, func(g engine.LetterGuess, _ int) GuessView {
			return GuessView{Value: g.Value, Correct: g.Correct}
		}),
	}
}

func NewNoticeView(n engine.Notice) NoticeView {
	return NoticeView{
		Kind:     n.Kind.String(),
		Message:  n.Message(),
		Letter:   n.Letter,
		Word:     n.Word,
		Terminal: n.Terminal(),
	}
}

func NewNoticeViews(notices []engine.Notice) []NoticeView {
	return lo.Map(notices, func(n engine.Notice, _ int) NoticeView {
		return NewNoticeView(n)
	})
}
