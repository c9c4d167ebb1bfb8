// Package linker adapts the sim core to the terminal platform: it maps
// platform actions to sim input, draws the world onto a character screen
// and forwards sound events.
package linker

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/linker/internal/config"
	"github.com/vovakirdan/linker/internal/core"
	"github.com/vovakirdan/linker/internal/games/linker/layout"
	"github.com/vovakirdan/linker/internal/games/linker/sim"
	"github.com/vovakirdan/linker/internal/registry"
)

// GameID is the registry identifier.
const GameID = "linker"

// SoundPlayer receives sound events as they are produced.
type SoundPlayer interface {
	Play(s sim.Sound)
}

// nopPlayer drops every sound.
type nopPlayer struct{}

func (nopPlayer) Play(sim.Sound) {}

// Settings applied to games created after the call, set by the CLI before the
// platform starts.
var (
	gameConfig  *config.LinkerConfig
	gameLayout  *sim.Layout
	soundPlayer SoundPlayer = nopPlayer{}
	logger      *log.Logger
)

// SetConfig sets the tuning used by new games. nil restores the defaults.
func SetConfig(cfg *config.LinkerConfig) {
	gameConfig = cfg
}

// SetLayout sets the room layout used by new games. nil restores the
// embedded map.
func SetLayout(l *sim.Layout) {
	gameLayout = l
}

// SetSoundPlayer routes sound events to p. nil silences the game.
func SetSoundPlayer(p SoundPlayer) {
	if p == nil {
		p = nopPlayer{}
	}
	soundPlayer = p
}

// SetLogger sets the logger passed to new worlds.
func SetLogger(l *log.Logger) {
	logger = l
}

// transitionBannerTicks is how long the room name flashes after a transition.
const transitionBannerTicks = 40

// Game implements registry.Game for linker.
type Game struct {
	cfg    config.LinkerConfig
	layout *sim.Layout
	sound  SoundPlayer
	log    *log.Logger

	world   *sim.World
	runtime core.RuntimeConfig
	err     error

	paused     bool
	bannerTick int // Ticks left to show the room banner
	lastSounds []sim.Sound
}

// New creates a game from the package settings.
func New() *Game {
	g := &Game{sound: soundPlayer, log: logger, layout: gameLayout}
	if gameConfig != nil {
		g.cfg = *gameConfig
	} else {
		g.cfg = config.DefaultLinkerConfig()
	}
	return g
}

// NewWith creates a game with explicit tuning and layout.
func NewWith(cfg config.LinkerConfig, l *sim.Layout, p SoundPlayer) *Game {
	if p == nil {
		p = nopPlayer{}
	}
	return &Game{cfg: cfg, layout: l, sound: p}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Linker"
}

// LayoutName returns the name of the loaded layout, or "" before Reset.
func (g *Game) LayoutName() string {
	if g.layout == nil {
		return ""
	}
	return g.layout.Name
}

// Reset builds a fresh world in the layout's starting room.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.bannerTick = transitionBannerTicks
	g.lastSounds = nil
	g.err = nil

	if g.layout == nil {
		l, err := layout.Default()
		if err != nil {
			g.err = err
			g.world = nil
			return
		}
		g.layout = l
	}

	var opts []sim.Option
	if g.log != nil {
		opts = append(opts, sim.WithLogger(g.log))
	}
	w, err := sim.NewWorld(g.cfg, g.layout, opts...)
	if err != nil {
		g.err = err
		g.world = nil
		return
	}
	g.world = w
}

// Resize updates the terminal size without touching the world.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused && !in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State()}
	}

	res := g.world.Step(toSimInput(in))
	g.lastSounds = res.Sounds
	for _, s := range res.Sounds {
		g.sound.Play(s)
	}
	if res.RoomChange != nil {
		g.bannerTick = transitionBannerTicks
	} else if g.bannerTick > 0 {
		g.bannerTick--
	}

	return core.StepResult{State: g.State()}
}

// toSimInput maps platform actions to the sim input snapshot.
func toSimInput(in core.InputFrame) sim.Input {
	return sim.Input{
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Fire:  in.Has(core.ActionFire),
		Quit:  in.Has(core.ActionQuit),
	}
}

// State returns the platform-level state. Score counts broken pots.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:    g.world.Stats().PotsBroken,
		GameOver: g.world.Halted(),
		Paused:   g.paused,
	}
}

// Err returns the error that prevented the world from being built.
func (g *Game) Err() error {
	return g.err
}

// World exposes the simulation for tests and the run recorder.
func (g *Game) World() *sim.World {
	return g.world
}

// LastSounds returns the sounds produced by the latest tick.
func (g *Game) LastSounds() []sim.Sound {
	return g.lastSounds
}

// RunStats reports the current run for the history store.
func (g *Game) RunStats() registry.RunStats {
	rs := registry.RunStats{Layout: g.LayoutName()}
	if g.world == nil {
		return rs
	}
	st := g.world.Stats()
	rs.Ticks = g.world.Tick()
	rs.PotsBroken = st.PotsBroken
	rs.BoomerangsThrown = st.BoomerangsThrown
	rs.RoomsVisited = st.RoomsVisited
	return rs
}
