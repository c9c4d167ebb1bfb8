// Package audio plays linker's sound events through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/linker/internal/games/linker/sim"
)

const (
	sampleRate    = beep.SampleRate(44100)
	defaultVolume = 0.6
)

// Player mixes sound effects onto the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	log         *log.Logger
}

// NewPlayer creates a player. Call Initialize before Play.
func NewPlayer(l *log.Logger) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: defaultVolume,
		log:    l,
	}
}

// Initialize opens the speaker and starts the mixer.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the effect for a sound event. Unknown sounds are ignored.
func (p *Player) Play(s sim.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	streamer := Effect(s, p.volume)
	if streamer == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()

	if p.log != nil {
		p.log.Debug("sound", "event", s)
	}
}

// Close silences the mixer and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Effect builds the streamer for a sound event.
func Effect(s sim.Sound, volume float64) beep.Streamer {
	switch s {
	case sim.SoundBreakPot:
		return CreateCrackSound(sampleRate, volume)
	case sim.SoundThrowBoomerang:
		return CreateWhooshSound(sampleRate, volume)
	default:
		return nil
	}
}

// Sink receives sound events.
type Sink interface {
	Play(s sim.Sound)
}

// Nop is a player that drops every sound.
type Nop struct{}

// Play does nothing.
func (Nop) Play(sim.Sound) {}

// Open returns a started speaker player, or Nop when sound is disabled or the
// device cannot be opened. The returned close function is always safe to call.
func Open(enabled bool, l *log.Logger) (Sink, func()) {
	if !enabled {
		return Nop{}, func() {}
	}

	p := NewPlayer(l)
	if err := p.Initialize(); err != nil {
		if l != nil {
			l.Warn("sound disabled", "err", err)
		}
		return Nop{}, func() {}
	}
	return p, p.Close
}
