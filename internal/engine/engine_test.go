package engine

import "testing"

// fixedRand always returns the same float, pinning PickRandom.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

const (
	TestWordGato   = "GATO"
	TestWordSol    = "SOL"
	TestWordBanana = "BANANA"

	TestTipFelino  = "Felino doméstico"
	TestTipEstrela = "Estrela do dia"
	TestTipFruta   = "Fruta amarela"
)

func testBank(t *testing.T, words ...string) *WordBank {
	t.Helper()
	tips := map[string]string{
		TestWordGato:   TestTipFelino,
		TestWordSol:    TestTipEstrela,
		TestWordBanana: TestTipFruta,
	}
	entries := make([]Challenge, 0, len(words))
	for _, w := range words {
		entries = append(entries, Challenge{Word: w, Tip: tips[w]})
	}
	bank, err := NewWordBank(entries)
	if err != nil {
		t.Fatalf("NewWordBank(%v) failed: %v", words, err)
	}
	return bank
}

// stateFor starts a round on word and applies the given guesses, failing on
// any rejected guess.
func stateFor(t *testing.T, word string, letters ...string) GameState {
	t.Helper()
	s := StartGame(testBank(t, word), fixedRand(0))
	for _, l := range letters {
		var err error
		s, err = s.SetPendingInput(l).ConfirmGuess()
		if err != nil {
			t.Fatalf("guess %q on %s failed: %v", l, word, err)
		}
	}
	return s
}
