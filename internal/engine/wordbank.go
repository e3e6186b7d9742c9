package engine

import (
	"crypto/rand"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"os"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

//go:embed words.json
var embeddedWords []byte

// ErrEmptyWordBank is returned when a word bank ends up with no playable entries.
var ErrEmptyWordBank = errors.New("word bank has no playable words")

// Challenge is the word-and-tip pair being guessed in a round.
type Challenge struct {
	Word string `json:"word"`
	Tip  string `json:"tip"`
}

// WordList is the JSON shape of a word bank file.
type WordList struct {
	Words []Challenge `json:"words"`
}

// RandSource yields floats in [0, 1). *math/rand/v2.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// WordBank is a fixed, non-empty, ordered list of challenges.
type WordBank struct {
	challenges []Challenge
}

// NewWordBank builds a bank from entries, skipping any that are not playable.
func NewWordBank(entries []Challenge) (*WordBank, error) {
	valid := lo.FilterMap(entries, func(entry Challenge, i int) (Challenge, bool) {
		entry.Word = strings.TrimSpace(entry.Word)
		entry.Tip = strings.TrimSpace(entry.Tip)
		if !isPlayableWord(entry.Word) {
			log.Warn().Int("index", i).Str("word", entry.Word).Msg("skipping unplayable word")
			return entry, false
		}
		return entry, true
	})
	if len(valid) == 0 {
		return nil, ErrEmptyWordBank
	}
	return &WordBank{challenges: valid}, nil
}

// ParseWordBank decodes a JSON word list.
func ParseWordBank(data []byte) (*WordBank, error) {
	var wl WordList
	if err := json.Unmarshal(data, &wl); err != nil {
		return nil, fmt.Errorf("decode word list: %w", err)
	}
	return NewWordBank(wl.Words)
}

// LoadWordBank reads a JSON word list from path.
func LoadWordBank(path string) (*WordBank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	bank, err := ParseWordBank(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return bank, nil
}

// DefaultWordBank returns the bank compiled into the binary.
func DefaultWordBank() (*WordBank, error) {
	return ParseWordBank(embeddedWords)
}

// Len returns the number of challenges.
func (b *WordBank) Len() int {
	return len(b.challenges)
}

// Challenges returns a copy of the bank's entries in order.
func (b *WordBank) Challenges() []Challenge {
	out := make([]Challenge, len(b.challenges))
	copy(out, b.challenges)
	return out
}

// Contains reports whether c is one of the bank's entries.
func (b *WordBank) Contains(c Challenge) bool {
	return lo.Contains(b.challenges, c)
}

// PickRandom returns the entry at floor(rng.Float64() * Len()).
// A nil rng draws from crypto/rand.
func (b *WordBank) PickRandom(rng RandSource) Challenge {
	if rng == nil {
		rng = CryptoRand
	}
	idx := int(math.Floor(rng.Float64() * float64(len(b.challenges))))
	idx = max(0, min(idx, len(b.challenges)-1))
	return b.challenges[idx]
}

func isPlayableWord(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

type cryptoSource struct{}

// CryptoRand is the default RandSource, backed by crypto/rand.
var CryptoRand RandSource = cryptoSource{}

const float53 = 1 << 53

func (cryptoSource) Float64() float64 {
	n, err := rand.Int(rand.Reader, big.NewInt(float53))
	if err != nil {
		log.Warn().Err(err).Msg("crypto/rand failed, using first word")
		return 0
	}
	return float64(n.Int64()) / float53
}
