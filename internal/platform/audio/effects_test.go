package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/linker/internal/games/linker/sim"
)

// drain streams s to the end and returns the total sample count and the
// largest absolute sample.
func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			v := buf[i][0]
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)

	osc := NewOscillator(440, 0, 100*time.Millisecond, WaveSine, rate)
	total, peak := drain(osc)

	if total != rate.N(100*time.Millisecond) {
		t.Errorf("streamed %d samples, expected %d", total, rate.N(100*time.Millisecond))
	}
	if peak > 1.0 {
		t.Errorf("peak = %f, expected <= 1", peak)
	}
	if osc.Err() != nil {
		t.Errorf("Err() = %v, expected nil", osc.Err())
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(0, 0, 50*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 50*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 1)
	if _, ok := env.Stream(buf); !ok {
		t.Fatal("envelope ended immediately")
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, expected 0 during attack", buf[0][0])
	}
}

func TestEffects(t *testing.T) {
	tests := []struct {
		sound    sim.Sound
		duration time.Duration
	}{
		{sim.SoundBreakPot, crackDuration},
		{sim.SoundThrowBoomerang, whooshDuration},
	}

	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			s := Effect(tt.sound, 1.0)
			if s == nil {
				t.Fatal("Effect() = nil")
			}
			total, peak := drain(s)
			if total != sampleRate.N(tt.duration) {
				t.Errorf("streamed %d samples, expected %d", total, sampleRate.N(tt.duration))
			}
			if peak == 0 {
				t.Error("effect is silent")
			}
		})
	}

	if Effect(sim.Sound(0), 1.0) != nil {
		t.Error("Effect() for unknown sound should be nil")
	}
}

func TestOpenDisabled(t *testing.T) {
	p, closeFn := Open(false, nil)
	defer closeFn()

	if _, ok := p.(Nop); !ok {
		t.Errorf("Open(false) = %T, expected Nop", p)
	}
	p.Play(sim.SoundBreakPot)
}

func TestPlayBeforeInitialize(t *testing.T) {
	p := NewPlayer(nil)
	p.Play(sim.SoundThrowBoomerang) // Must not touch the speaker
	p.Close()
}
