package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestNopSatisfiesCues(t *testing.T) {
	var c Cues = Nop{}
	c.Flap()
	c.Crash()
	c.Close()
}

func TestToneLength(t *testing.T) {
	tests := []struct {
		name     string
		freq     float64
		duration time.Duration
	}{
		{"flap", FlapFreq, FlapDuration},
		{"crash", CrashFreq, CrashDuration},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rate := beep.SampleRate(44100)
			tone, err := Tone(rate, tc.freq, tc.duration)
			if err != nil {
				t.Fatalf("Tone() error = %v", err)
			}

			total := 0
			buf := make([][2]float64, 512)
			for {
				n, ok := tone.Stream(buf)
				total += n
				for i := 0; i < n; i++ {
					if buf[i][0] < -1 || buf[i][0] > 1 {
						t.Fatalf("sample %d out of range: %f", total-n+i, buf[i][0])
					}
				}
				if !ok {
					break
				}
			}

			if want := rate.N(tc.duration); total != want {
				t.Errorf("streamed %d samples, expected %d", total, want)
			}
		})
	}
}

func TestToneRejectsBadFrequency(t *testing.T) {
	// A sine above Nyquist cannot be generated
	if _, err := Tone(beep.SampleRate(8000), 6000, time.Millisecond); err == nil {
		t.Error("Tone() above half the sample rate should fail")
	}
}
