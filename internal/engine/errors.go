package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGuess is returned when a guess is confirmed with no letter entered.
	ErrEmptyGuess = errors.New("no letter entered")
	// ErrDuplicateGuess matches every *DuplicateGuessError.
	ErrDuplicateGuess = errors.New("letter already used")
)

// DuplicateGuessError reports a letter already submitted this round.
type DuplicateGuessError struct {
	Letter string
}

func (e *DuplicateGuessError) Error() string {
	return fmt.Sprintf("letter %s already used", e.Letter)
}

// Is makes errors.Is(err, ErrDuplicateGuess) hold.
func (e *DuplicateGuessError) Is(target error) bool {
	return target == ErrDuplicateGuess
}
