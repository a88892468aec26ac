package main

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tone plays a short sine blip, higher for bigger clears.
type Tone struct{}

func NewTone() (*Tone, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	return &Tone{}, nil
}

func toneFrequency(rows int) float64 {
	return 440 + 220*float64(rows)
}

func (t *Tone) Play(rows int) {
	sine, err := generators.SineTone(sampleRate, toneFrequency(rows))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(60*time.Millisecond), sine))
}

func (t *Tone) Close() {
	speaker.Close()
}
