// Package audio synthesizes the click and game-over sounds with beep.
// A Player that failed to initialize stays silent.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays game sounds through the default output device.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player at the given linear volume in [0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: max(0, min(volume, 1)),
	}
}

// Initialize opens the speaker. Hosts without an audio device get an
// error and should run without sound.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences anything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Click plays the short tone used for highlights and presses.
func (p *Player) Click() {
	p.play(ClickSound(sampleRate))
}

// GameOver plays the falling buzz used for a wrong press.
func (p *Player) GameOver() {
	p.play(GameOverSound(sampleRate))
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(withVolume(s, p.volume))
	speaker.Unlock()
}

// ClickSound is an 80ms 660Hz sine with an exponential decay.
func ClickSound(sr beep.SampleRate) beep.Streamer {
	return beep.Take(sr.N(80*time.Millisecond), NewToneGenerator(sr, 660, 40))
}

// GameOverSound is two descending square notes.
func GameOverSound(sr beep.SampleRate) beep.Streamer {
	first := beep.Take(sr.N(180*time.Millisecond), NewBuzzGenerator(sr, 220))
	second := beep.Take(sr.N(320*time.Millisecond), NewBuzzGenerator(sr, 147))
	return beep.Seq(first, second)
}

// math.Log2(0) is -Inf, so zero volume maps to Silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// ToneGenerator is an endless sine with exponential decay.
type ToneGenerator struct {
	sr    beep.SampleRate
	freq  float64
	decay float64
	pos   int
}

// NewToneGenerator creates a sine generator decaying at the given rate per second.
func NewToneGenerator(sr beep.SampleRate, freq, decay float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq, decay: decay}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		v := 0.4 * math.Exp(-t*g.decay) * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a soft square-ish buzz from odd harmonics.
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz generator.
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		v := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.1*math.Sin(2*math.Pi*g.freq*3*t) +
			0.06*math.Sin(2*math.Pi*g.freq*5*t)

		// 10ms fade in
		v *= math.Min(t/0.01, 1)

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
