package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns every sample.
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func checkRange(t *testing.T, samples [][2]float64) {
	t.Helper()
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
			t.Fatalf("sample %d = %v", i, s)
		}
	}
}

func TestClickSoundLength(t *testing.T) {
	sr := beep.SampleRate(44100)
	samples := drain(ClickSound(sr))
	if want := sr.N(80 * time.Millisecond); len(samples) != want {
		t.Fatalf("click length = %d, want %d", len(samples), want)
	}
	checkRange(t, samples)
}

func TestGameOverSoundLength(t *testing.T) {
	sr := beep.SampleRate(44100)
	samples := drain(GameOverSound(sr))
	want := sr.N(180*time.Millisecond) + sr.N(320*time.Millisecond)
	if len(samples) != want {
		t.Fatalf("game over length = %d, want %d", len(samples), want)
	}
	checkRange(t, samples)
}

func TestToneDecays(t *testing.T) {
	sr := beep.SampleRate(44100)
	g := NewToneGenerator(sr, 440, 40)
	samples := drain(beep.Take(sr.N(200*time.Millisecond), g))

	peak := func(from, to int) float64 {
		var p float64
		for _, s := range samples[from:to] {
			p = max(p, s[0], -s[0])
		}
		return p
	}
	early := peak(0, 1000)
	late := peak(len(samples)-1000, len(samples))
	if late >= early {
		t.Fatalf("tone did not decay: early %f, late %f", early, late)
	}
	if g.Err() != nil {
		t.Fatalf("unexpected error: %v", g.Err())
	}
}

func TestBuzzFadesIn(t *testing.T) {
	g := NewBuzzGenerator(beep.SampleRate(44100), 220)
	buf := make([][2]float64, 4)
	if n, ok := g.Stream(buf); n != 4 || !ok {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	if buf[0][0] != 0 {
		t.Fatalf("first sample = %f, want 0", buf[0][0])
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(0.5)
	p.Click()
	p.GameOver()
	p.Close()
	if p.mixer.Len() != 0 {
		t.Fatalf("mixer has %d streamers", p.mixer.Len())
	}
}

func TestVolumeClamp(t *testing.T) {
	if NewPlayer(3).volume != 1 || NewPlayer(-1).volume != 0 {
		t.Fatal("volume not clamped")
	}
}
