// Package audio plays the short tones that accompany flaps and crashes.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tone settings
const (
	FlapFreq      = 880.0
	FlapDuration  = 40 * time.Millisecond
	CrashFreq     = 110.0
	CrashDuration = 250 * time.Millisecond
)

// Cues receives game events that have a sound.
type Cues interface {
	Flap()
	Crash()
	Close()
}

// Nop is a silent Cues, used when sound is off or unavailable.
type Nop struct{}

func (Nop) Flap() {}
func (Nop) Crash() {}
func (Nop) Close() {}

// Speaker plays cues on the default audio device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	closed bool
}

// NewSpeaker opens the audio device. The returned error is not fatal to
// the game; callers fall back to Nop.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}

	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Flap plays a short high blip.
func (s *Speaker) Flap() {
	s.play(FlapFreq, FlapDuration)
}

// Crash plays a low thud.
func (s *Speaker) Crash() {
	s.play(CrashFreq, CrashDuration)
}

func (s *Speaker) play(freq float64, d time.Duration) {
	t, err := Tone(sampleRate, freq, d)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	speaker.Lock()
	s.mixer.Add(t)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	speaker.Clear()
	speaker.Close()
}

// Tone returns a sine tone of the given frequency that ends after d.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("audio: tone %gHz: %w", freq, err)
	}
	return beep.Take(sr.N(d), sine), nil
}
