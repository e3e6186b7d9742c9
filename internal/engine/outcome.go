package engine

import "unicode/utf8"

// AttemptsMargin is the number of guesses allowed beyond the word length.
const AttemptsMargin = 5

// Outcome is the result of checking a state for the end of a round.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// WordLength counts characters, not bytes.
func WordLength(word string) int {
	return utf8.RuneCountInString(word)
}

// AttemptLimit is the total number of guesses allowed for word.
func AttemptLimit(word string) int {
	return WordLength(word) + AttemptsMargin
}

// DetectOutcome reports a win when the score equals the word length and a
// loss when the guess count reaches the attempt limit. The win is checked first.
func DetectOutcome(s GameState) Outcome {
	if s.Challenge == nil {
		return OutcomeNone
	}
	if s.Score == WordLength(s.Challenge.Word) {
		return OutcomeWon
	}
	if len(s.Guesses) == AttemptLimit(s.Challenge.Word) {
		return OutcomeLost
	}
	return OutcomeNone
}
