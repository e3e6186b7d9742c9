package engine

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// LetterSlot is one position of the hidden word as the player sees it.
type LetterSlot struct {
	Value    string
	Revealed bool
	Correct  bool
}

// View is everything a presentation layer needs to draw a round.
type View struct {
	Active       bool
	Tip          string
	Slots        []LetterSlot
	Attempts     int
	MaxAttempts  int
	Score        int
	PendingInput string
	LettersUsed  []LetterGuess
}

// View projects the state for rendering.
func (s GameState) View() View {
	v := View{
		Active:       s.Challenge != nil,
		Attempts:     len(s.Guesses),
		Score:        s.Score,
		PendingInput: s.PendingInput,
		LettersUsed:  slices.Clone(s.Guesses),
	}
	if s.Challenge == nil {
		return v
	}

	v.Tip = s.Challenge.Tip
	v.MaxAttempts = AttemptLimit(s.Challenge.Word)
	v.Slots = lo.Map([]rune(s.Challenge.Word), func(r rune, _ int) LetterSlot {
		used, found := lo.Find(s.Guesses, func(g LetterGuess) bool {
			return strings.EqualFold(g.Value, string(r))
		})
		if !found {
			return LetterSlot{}
		}
		return LetterSlot{Value: used.Value, Revealed: true, Correct: used.Correct}
	})
	return v
}
