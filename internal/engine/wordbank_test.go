package engine

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode"
)

func TestPickRandom_FloorIndex(t *testing.T) {
	bank := testBank(t, TestWordGato, TestWordSol, TestWordBanana)
	tests := []struct {
		r    float64
		want string
	}{
		{0, TestWordGato},
		{0.33, TestWordGato},
		{0.34, TestWordSol},
		{0.66, TestWordSol},
		{0.67, TestWordBanana},
		{0.999999, TestWordBanana},
		{1, TestWordBanana},
	}
	for _, tt := range tests {
		if got := bank.PickRandom(fixedRand(tt.r)); got.Word != tt.want {
			t.Errorf("PickRandom(%v) = %q, want %q", tt.r, got.Word, tt.want)
		}
	}
}

func TestPickRandom_DefaultSource(t *testing.T) {
	bank := testBank(t, TestWordGato, TestWordSol)
	for range 20 {
		if c := bank.PickRandom(nil); !bank.Contains(c) {
			t.Fatalf("PickRandom(nil) = %+v, not in bank", c)
		}
	}
}

func TestCryptoRand_Range(t *testing.T) {
	for range 100 {
		if f := CryptoRand.Float64(); f < 0 || f >= 1 {
			t.Fatalf("CryptoRand.Float64() = %v, want [0, 1)", f)
		}
	}
}

func TestNewWordBank_SkipsUnplayable(t *testing.T) {
	bank, err := NewWordBank([]Challenge{
		{Word: "", Tip: "vazio"},
		{Word: "  GATO ", Tip: " " + TestTipFelino},
		{Word: "R2D2", Tip: "robô"},
		{Word: "GUARDA CHUVA", Tip: "tem espaço"},
		{Word: "SOL", Tip: TestTipEstrela},
	})
	if err != nil {
		t.Fatalf("NewWordBank failed: %v", err)
	}
	want := []Challenge{{TestWordGato, TestTipFelino}, {TestWordSol, TestTipEstrela}}
	got := bank.Challenges()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Challenges() = %+v, want %+v", got, want)
	}
}

func TestNewWordBank_Empty(t *testing.T) {
	for _, entries := range [][]Challenge{nil, {{Word: "123"}}} {
		if _, err := NewWordBank(entries); !errors.Is(err, ErrEmptyWordBank) {
			t.Errorf("NewWordBank(%+v) error = %v, want ErrEmptyWordBank", entries, err)
		}
	}
}

func TestLoadWordBank(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.json")
	data := `{"words":[{"word":"gato","tip":"mia"},{"word":"sol","tip":"brilha"}]}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	bank, err := LoadWordBank(path)
	if err != nil {
		t.Fatalf("LoadWordBank failed: %v", err)
	}
	if bank.Len() != 2 || !bank.Contains(Challenge{Word: "gato", Tip: "mia"}) {
		t.Errorf("LoadWordBank = %+v", bank.Challenges())
	}
}

func TestLoadWordBank_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	empty := filepath.Join(dir, "empty.json")
	_ = os.WriteFile(bad, []byte("not json"), 0644)
	_ = os.WriteFile(empty, []byte(`{"words":[]}`), 0644)

	if _, err := LoadWordBank(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want ErrNotExist", err)
	}
	if _, err := LoadWordBank(bad); err == nil {
		t.Error("LoadWordBank(bad json) succeeded")
	}
	if _, err := LoadWordBank(empty); !errors.Is(err, ErrEmptyWordBank) {
		t.Errorf("empty list error = %v, want ErrEmptyWordBank", err)
	}
}

func TestChallengesReturnsCopy(t *testing.T) {
	bank := testBank(t, TestWordGato)
	c := bank.Challenges()
	c[0].Word = "XXXX"
	if bank.Challenges()[0].Word != TestWordGato {
		t.Error("Challenges() exposed internal slice")
	}
}

func TestDefaultWordBank_Integrity(t *testing.T) {
	data, err := os.ReadFile("words.json")
	if err != nil {
		t.Fatalf("read words.json: %v", err)
	}
	var raw WordList
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("decode words.json: %v", err)
	}

	seen := make(map[string]struct{})
	for i, entry := range raw.Words {
		w := strings.ToUpper(entry.Word)
		if _, ok := seen[w]; ok {
			t.Errorf("words.json: duplicate word %q", w)
		}
		seen[w] = struct{}{}
		if strings.TrimSpace(entry.Tip) == "" {
			t.Errorf("words.json: word %q at index %d has no tip", w, i)
		}
		for _, r := range entry.Word {
			if !unicode.IsLetter(r) {
				t.Errorf("words.json: word %q has non-letter %q", w, r)
			}
		}
	}

	bank, err := DefaultWordBank()
	if err != nil {
		t.Fatalf("DefaultWordBank failed: %v", err)
	}
	if bank.Len() != len(raw.Words) {
		t.Errorf("default bank kept %d of %d entries", bank.Len(), len(raw.Words))
	}
}
