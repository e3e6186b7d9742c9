package main

import (
	"errors"
	"fmt"
	"strings"

	"forca/internal/engine"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

var (
	styleDefault = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Bold(true)
	styleHint    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCorrect = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleWrong   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleModal   = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
)

// tui drives one Game from terminal events. All methods run on the event
// loop goroutine.
type tui struct {
	screen tcell.Screen
	game   *engine.Game
	sound  soundPlayer

	// queue holds notices not yet dismissed; queue[0] is on screen.
	queue []engine.Notice
	// confirming is set while the restart prompt waits for y/n.
	confirming bool
}

func newTUI(screen tcell.Screen, bank *engine.WordBank, sound soundPlayer, rng engine.RandSource) *tui {
	t := &tui{screen: screen, sound: sound}
	t.game = engine.NewGame(bank,
		engine.WithRand(rng),
		engine.WithNotifier(t.notify),
	)
	t.game.Start()
	return t
}

func (t *tui) notify(n engine.Notice) {
	switch n.Kind {
	case engine.NoticeWon:
		t.sound.Won()
		log.Info().Str("word", n.Word).Msg("won")
	case engine.NoticeLost:
		t.sound.Lost()
		log.Info().Str("word", n.Word).Msg("lost")
	}
	t.queue = append(t.queue, n)
}

func (t *tui) loop() {
	for {
		t.draw()
		ev := t.screen.PollEvent()
		if ev == nil || !t.handleEvent(ev) {
			return
		}
	}
}

// handleEvent applies one event and reports whether the program should keep running.
func (t *tui) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		return t.handleKey(ev)
	}
	return true
}

func (t *tui) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}

	switch {
	case t.confirming:
		t.confirming = false
		yes := ev.Key() == tcell.KeyRune && strings.ContainsRune("sSyY", ev.Rune())
		if t.game.RequestRestart(func(engine.Notice) bool { return yes }) {
			log.Info().Int("round", t.game.Round()).Msg("restarted")
		}
		return true
	case len(t.queue) > 0:
		t.queue = t.queue[1:]
		return true
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyCtrlR:
		t.confirming = true
	case tcell.KeyEnter:
		t.confirm()
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		t.game.SetPendingInput("")
	case tcell.KeyRune:
		t.game.SetPendingInput(string(ev.Rune()))
	}
	return true
}

func (t *tui) confirm() {
	queued := len(t.queue)
	err := t.game.Confirm()
	switch {
	case errors.Is(err, engine.ErrEmptyGuess), errors.Is(err, engine.ErrDuplicateGuess):
		return
	case err != nil:
		log.Warn().Err(err).Msg("guess failed")
		return
	case len(t.queue) > queued:
		// The round ended and its notice already played a cue.
		return
	}

	guesses := t.game.State().Guesses
	if len(guesses) > 0 && guesses[len(guesses)-1].Correct {
		t.sound.Hit()
	} else {
		t.sound.Miss()
	}
}

func (t *tui) draw() {
	t.screen.Clear()
	v := t.game.View()
	w, h := t.screen.Size()

	drawText(t.screen, 1, 0, styleTitle, "FORCA")
	status := fmt.Sprintf("Tentativas: %d/%d", v.Attempts, v.MaxAttempts)
	drawText(t.screen, w-len([]rune(status))-1, 0, styleDefault, status)
	drawText(t.screen, 1, 1, styleHint, "Enter confirma  Ctrl-R reinicia  Esc sai")

	drawText(t.screen, 1, 3, styleDefault, "Dica: "+v.Tip)

	x := 1
	for _, slot := range v.Slots {
		ch, style := "_", styleDefault
		if slot.Revealed {
			ch, style = strings.ToUpper(slot.Value), styleCorrect
		}
		drawText(t.screen, x, 5, style, ch)
		x += 2
	}

	pending := strings.ToUpper(v.PendingInput)
	if pending == "" {
		pending = " "
	}
	drawText(t.screen, 1, 7, styleDefault, "Letra: ["+pending+"]")

	x = drawText(t.screen, 1, 9, styleDefault, "Letras usadas: ")
	for _, g := range v.LettersUsed {
		style := styleWrong
		if g.Correct {
			style = styleCorrect
		}
		x = drawText(t.screen, x, 9, style, g.Value) + 1
	}

	switch {
	case t.confirming:
		drawModal(t.screen, w, h, engine.Notice{Kind: engine.NoticeRestartPrompt}.Message(), "(s/n)")
	case len(t.queue) > 0:
		n := t.queue[0]
		lines := []string{n.Message()}
		if n.Terminal() {
			lines = append(lines, "A palavra era "+n.Word)
		}
		drawModal(t.screen, w, h, append(lines, "(qualquer tecla)")...)
	}

	t.screen.Show()
}

// drawText writes s from (x, y) and returns the column after it.
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func drawModal(s tcell.Screen, w, h int, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 2
	left := max((w-width)/2, 0)
	top := max((h-height)/2, 0)

	for y := top; y < top+height; y++ {
		for x := left; x < left+width; x++ {
			s.SetContent(x, y, ' ', nil, styleModal)
		}
	}
	for i, l := range lines {
		drawText(s, left+2, top+1+i, styleModal, l)
	}
}
