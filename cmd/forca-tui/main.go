// Command forca-tui plays the word guessing game in a terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"forca/internal/engine"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var (
		wordsFile = flag.String("words", "", "JSON word bank to use instead of the built-in one")
		mute      = flag.Bool("mute", false, "Disable sound")
	)
	flag.Parse()

	closeLog := setupLogging(os.Getenv("FORCA_LOG"))
	defer closeLog()

	if err := run(*wordsFile, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "forca: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

func run(wordsFile string, mute bool) error {
	bank, err := loadBank(wordsFile)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	var sound soundPlayer = nopSound{}
	if !mute {
		if bs, err := newBeepSound(); err != nil {
			// The game runs without sound.
			log.Warn().Err(err).Msg("audio initialization failed")
		} else {
			sound = bs
		}
	}
	defer sound.Close()

	t := newTUI(screen, bank, sound, nil)
	log.Info().Int("words", bank.Len()).Msg("game started")
	t.loop()
	return nil
}

func loadBank(path string) (*engine.WordBank, error) {
	if path == "" {
		return engine.DefaultWordBank()
	}
	bank, err := engine.LoadWordBank(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("word bank %s not found", path)
		}
		return nil, fmt.Errorf("word bank %s: %w", path, err)
	}
	return bank, nil
}

// setupLogging sends logs to path, or discards them when path is empty
// since tcell owns the terminal.
func setupLogging(path string) (closeFn func()) {
	if path == "" {
		log.Logger = zerolog.Nop()
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "forca: log file: %v\n", err)
		log.Logger = zerolog.Nop()
		return func() {}
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { _ = f.Close() }
}
