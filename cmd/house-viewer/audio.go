package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	chimeFreq     = 660
	chimeDuration = 60 * time.Millisecond
)

// chime plays a short tone after each generation; a nil chime is silent
type chime struct {
	rate beep.SampleRate
}

func newChime() (*chime, error) {
	rate := beep.SampleRate(44100)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &chime{rate: rate}, nil
}

func (c *chime) play() {
	if c == nil {
		return
	}
	sine, err := generators.SineTone(c.rate, chimeFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(c.rate.N(chimeDuration), sine))
}

func (c *chime) close() {
	if c != nil {
		speaker.Close()
	}
}
