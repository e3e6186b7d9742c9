package engine

import (
	"reflect"
	"testing"
)

func TestView_RevealsEveryOccurrence(t *testing.T) {
	v := stateFor(t, TestWordBanana, "a", "x").View()

	if !v.Active || v.Tip != TestTipFruta {
		t.Errorf("View active=%v tip=%q, want active with %q", v.Active, v.Tip, TestTipFruta)
	}
	if v.Attempts != 2 || v.MaxAttempts != 11 || v.Score != 3 {
		t.Errorf("View attempts=%d/%d score=%d, want 2/11 score 3", v.Attempts, v.MaxAttempts, v.Score)
	}

	hidden := LetterSlot{}
	a := LetterSlot{Value: "A", Revealed: true, Correct: true}
	want := []LetterSlot{hidden, a, hidden, a, hidden, a}
	if !reflect.DeepEqual(v.Slots, want) {
		t.Errorf("Slots = %+v, want %+v", v.Slots, want)
	}

	wantUsed := []LetterGuess{{"A", true}, {"X", false}}
	if !reflect.DeepEqual(v.LettersUsed, wantUsed) {
		t.Errorf("LettersUsed = %+v, want %+v", v.LettersUsed, wantUsed)
	}
}

func TestView_MatchesLowercaseWord(t *testing.T) {
	bank, err := NewWordBank([]Challenge{{Word: "gato", Tip: TestTipFelino}})
	if err != nil {
		t.Fatal(err)
	}
	s, err := StartGame(bank, nil).SetPendingInput("G").ConfirmGuess()
	if err != nil {
		t.Fatal(err)
	}
	slots := s.View().Slots
	if !slots[0].Revealed || slots[0].Value != "G" || slots[1].Revealed {
		t.Errorf("Slots = %+v, want only the first revealed as G", slots)
	}
}

func TestView_NoChallenge(t *testing.T) {
	v := GameState{}.View()
	if v.Active || v.Slots != nil || v.MaxAttempts != 0 {
		t.Errorf("View of empty state = %+v, want inactive", v)
	}
}

func TestView_LettersUsedIsACopy(t *testing.T) {
	s := stateFor(t, TestWordGato, "g")
	v := s.View()
	v.LettersUsed[0].Value = "Z"
	if s.Guesses[0].Value != "G" {
		t.Errorf("mutating the view changed the state: %+v", s.Guesses)
	}
}
