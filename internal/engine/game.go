package engine

import (
	"errors"
	"slices"
)

// NoticeKind names an occasion on which the player must be told something.
type NoticeKind int

const (
	NoticeEmptyGuess NoticeKind = iota + 1
	NoticeDuplicateGuess
	NoticeWon
	NoticeLost
	NoticeRestartPrompt
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeEmptyGuess:
		return "empty_guess"
	case NoticeDuplicateGuess:
		return "duplicate_guess"
	case NoticeWon:
		return "won"
	case NoticeLost:
		return "lost"
	case NoticeRestartPrompt:
		return "restart_prompt"
	default:
		return "unknown"
	}
}

// Notice is a user-facing notification. Letter is set for duplicate guesses,
// Word for the end of a round.
type Notice struct {
	Kind   NoticeKind
	Letter string
	Word   string
}

// Message returns the text shown to the player.
func (n Notice) Message() string {
	switch n.Kind {
	case NoticeEmptyGuess:
		return "Digite uma letra!"
	case NoticeDuplicateGuess:
		return "Você já utilizou a letra " + n.Letter
	case NoticeWon:
		return "Parabéns, você descobriu a palavra!"
	case NoticeLost:
		return "Que pena, você usou todas as tentativas!"
	case NoticeRestartPrompt:
		return "Você tem certeza que deseja reiniciar o jogo?"
	default:
		return ""
	}
}

// Terminal reports whether the notice ends a round.
func (n Notice) Terminal() bool {
	return n.Kind == NoticeWon || n.Kind == NoticeLost
}

// Confirmer answers a yes/no prompt.
type Confirmer func(prompt Notice) bool

// Option configures a Game.
type Option func(*Game)

// WithRand sets the random source used to pick challenges.
func WithRand(rng RandSource) Option {
	return func(g *Game) { g.rng = rng }
}

// WithNotifier sets the function receiving notices.
func WithNotifier(fn func(Notice)) Option {
	return func(g *Game) { g.notify = fn }
}

// Game owns a GameState and applies the rules around each transition:
// outcome detection runs synchronously after every accepted guess and a
// finished round is immediately replaced by a new one.
//
// A Game is not safe for concurrent use.
type Game struct {
	bank   *WordBank
	rng    RandSource
	notify func(Notice)
	state  GameState
	round  int
}

// NewGame returns a game with no challenge. Call Start to begin.
func NewGame(bank *WordBank, opts ...Option) *Game {
	g := &Game{bank: bank}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Start discards the current round and begins a new one.
func (g *Game) Start() {
	g.state = StartGame(g.bank, g.rng)
	g.round++
}

// SetPendingInput stores the first character of text.
func (g *Game) SetPendingInput(text string) {
	g.state = g.state.SetPendingInput(text)
}

// Confirm submits the pending input and then checks for the end of the round.
// Rejected guesses are both notified and returned.
func (g *Game) Confirm() error {
	next, err := g.state.ConfirmGuess()
	if err != nil {
		var dup *DuplicateGuessError
		switch {
		case errors.As(err, &dup):
			g.emit(Notice{Kind: NoticeDuplicateGuess, Letter: dup.Letter})
		case errors.Is(err, ErrEmptyGuess):
			g.emit(Notice{Kind: NoticeEmptyGuess})
		}
		return err
	}
	g.state = next
	g.afterGuess()
	return nil
}

// RequestRestart asks confirm before starting a new round and reports
// whether it did.
func (g *Game) RequestRestart(confirm Confirmer) bool {
	if confirm == nil || !confirm(Notice{Kind: NoticeRestartPrompt}) {
		return false
	}
	g.Start()
	return true
}

// State returns a copy of the current state.
func (g *Game) State() GameState {
	s := g.state
	s.Guesses = slices.Clone(s.Guesses)
	return s
}

// View projects the current state for rendering.
func (g *Game) View() View {
	return g.state.View()
}

// Round counts the rounds started so far.
func (g *Game) Round() int {
	return g.round
}

func (g *Game) afterGuess() {
	outcome := DetectOutcome(g.state)
	if outcome == OutcomeNone {
		return
	}

	notice := Notice{Kind: NoticeWon, Word: g.state.Challenge.Word}
	if outcome == OutcomeLost {
		notice.Kind = NoticeLost
	}
	g.emit(notice)
	g.Start()
}

func (g *Game) emit(n Notice) {
	if g.notify != nil {
		g.notify(n)
	}
}
