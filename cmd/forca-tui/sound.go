package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// soundPlayer plays the cue for each kind of move.
type soundPlayer interface {
	Hit()
	Miss()
	Won()
	Lost()
	Close()
}

type nopSound struct{}

func (nopSound) Hit()   {}
func (nopSound) Miss()  {}
func (nopSound) Won()   {}
func (nopSound) Lost()  {}
func (nopSound) Close() {}

type note struct {
	freq float64
	dur  time.Duration
}

// beepSound synthesises short sine cues on the default audio device.
type beepSound struct {
	sr beep.SampleRate
}

func newBeepSound() (*beepSound, error) {
	sr := beep.SampleRate(44100)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &beepSound{sr: sr}, nil
}

func (b *beepSound) Hit()  { b.play(note{880, 60 * time.Millisecond}) }
func (b *beepSound) Miss() { b.play(note{220, 120 * time.Millisecond}) }

func (b *beepSound) Won() {
	b.play(note{523.25, 120 * time.Millisecond}, note{659.25, 120 * time.Millisecond}, note{783.99, 240 * time.Millisecond})
}

func (b *beepSound) Lost() {
	b.play(note{392, 160 * time.Millisecond}, note{329.63, 160 * time.Millisecond}, note{261.63, 320 * time.Millisecond})
}

func (b *beepSound) Close() {
	speaker.Clear()
	speaker.Close()
}

func (b *beepSound) play(notes ...note) {
	streamers := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(b.sr, n.freq)
		if err != nil {
			continue
		}
		streamers = append(streamers, beep.Take(b.sr.N(n.dur), sine))
	}
	if len(streamers) == 0 {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: beep.Seq(streamers...),
		Base:     2,
		Volume:   -2,
	})
}
