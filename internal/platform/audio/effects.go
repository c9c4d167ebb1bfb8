package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Effect timings
const (
	crackDuration  = 250 * time.Millisecond
	crackAttack    = 5 * time.Millisecond
	whooshDuration = 180 * time.Millisecond
	whooshAttack   = 20 * time.Millisecond
	whooshRelease  = 80 * time.Millisecond
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed-length raw wave. A non-zero sweep slides the
// frequency linearly to freq+sweep over the duration.
type oscillator struct {
	freq     float64
	sweep    float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(1)), //#nosec G404 -- noise, not crypto
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + o.sweep*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and an exponential or linear release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
	decay    float64 // Exponential decay rate per second; 0 means linear release
	rate     beep.SampleRate
}

// NewEnvelope shapes s with a linear attack and linear release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
		rate:     rate,
	}
}

// NewDecayEnvelope shapes s with a linear attack and exponential decay
func NewDecayEnvelope(s beep.Streamer, duration, attack time.Duration, decay float64, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		total:    rate.N(duration),
		decay:    decay,
		rate:     rate,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		switch {
		case e.decay > 0:
			vol *= math.Exp(-e.decay * float64(e.position) / float64(e.rate))
		case e.release > 0 && e.position >= e.total-e.release:
			vol *= float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateCrackSound generates the pot-breaking crack: a noise burst over a
// low thud, both decaying fast.
func CreateCrackSound(rate beep.SampleRate, volume float64) beep.Streamer {
	noise := NewDecayEnvelope(NewOscillator(0, 0, crackDuration, WaveNoise, rate), crackDuration, crackAttack, 18, rate)
	thud := NewDecayEnvelope(NewOscillator(90, -40, crackDuration, WaveSine, rate), crackDuration, crackAttack, 10, rate)

	return newVolume(beep.Mix(newVolume(noise, 0.5), newVolume(thud, 0.6)), volume)
}

// CreateWhooshSound generates the boomerang throw: a falling square sweep.
func CreateWhooshSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewOscillator(900, -600, whooshDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, whooshDuration, whooshAttack, whooshRelease, rate)

	return newVolume(shaped, volume*0.4)
}
