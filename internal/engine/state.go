package engine

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// LetterGuess is a single accepted guess.
type LetterGuess struct {
	Value   string `json:"value"`
	Correct bool   `json:"correct"`
}

// GameState is one round of play. It is a value: transitions return a new
// state and never write into slices shared with the receiver.
//
// Score always equals RecomputeScore for the same state, and no two Guesses
// share a letter.
type GameState struct {
	Challenge    *Challenge
	Score        int
	PendingInput string
	Guesses      []LetterGuess
}

// StartGame begins a new round with a challenge drawn from bank.
func StartGame(bank *WordBank, rng RandSource) GameState {
	challenge := bank.PickRandom(rng)
	return GameState{
		Challenge: &challenge,
		Guesses:   []LetterGuess{},
	}
}

// SetPendingInput stores the first character of text, or clears the input.
func (s GameState) SetPendingInput(text string) GameState {
	s.PendingInput = firstChar(text)
	return s
}

// ConfirmGuess submits the pending input. Without an active challenge it is a
// no-op. ErrEmptyGuess and *DuplicateGuessError leave the state unchanged.
func (s GameState) ConfirmGuess() (GameState, error) {
	if s.Challenge == nil {
		return s, nil
	}
	if strings.TrimSpace(s.PendingInput) == "" {
		return s, ErrEmptyGuess
	}

	value := strings.ToUpper(s.PendingInput)
	if s.HasGuessed(value) {
		return s, &DuplicateGuessError{Letter: value}
	}

	guess, hits := EvaluateGuess(s.Challenge.Word, value)
	next := s
	next.Guesses = append(slices.Clip(s.Guesses), guess)
	next.Score += hits
	next.PendingInput = ""
	return next, nil
}

// HasGuessed reports whether letter was already submitted, ignoring case.
func (s GameState) HasGuessed(letter string) bool {
	return lo.ContainsBy(s.Guesses, func(g LetterGuess) bool {
		return strings.EqualFold(g.Value, letter)
	})
}

// Active reports whether a challenge is in play.
func (s GameState) Active() bool {
	return s.Challenge != nil
}

// RecomputeScore derives the score from Guesses and the challenge word.
func (s GameState) RecomputeScore() int {
	if s.Challenge == nil {
		return 0
	}
	return lo.SumBy(s.Guesses, func(g LetterGuess) int {
		if !g.Correct {
			return 0
		}
		return countHits(s.Challenge.Word, g.Value)
	})
}

// EvaluateGuess scores letter against word. hits is the number of positions
// holding the letter, ignoring case.
func EvaluateGuess(word, letter string) (LetterGuess, int) {
	value := strings.ToUpper(letter)
	hits := countHits(word, value)
	return LetterGuess{Value: value, Correct: hits > 0}, hits
}

func countHits(word, letter string) int {
	if letter == "" {
		return 0
	}
	return strings.Count(strings.ToUpper(word), strings.ToUpper(letter))
}

func firstChar(text string) string {
	for _, r := range text {
		return string(r)
	}
	return ""
}
