// Package sim is the deterministic game-state core of linker. A World owns the
// character, the active room and every transient entity, and advances them one
// fixed tick at a time. It has no knowledge of terminals, audio devices or
// wall-clock time.
package sim

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/linker/internal/config"
	"github.com/vovakirdan/linker/internal/core"
)

// Input is the per-tick input snapshot.
type Input struct {
	Up, Down, Left, Right bool
	Fire                  bool
	Quit                  bool
}

// Direction folds the pressed arrows into a movement vector. Opposite keys
// cancel out.
func (in Input) Direction() core.Vec {
	var v core.Vec
	if in.Up {
		v.Y--
	}
	if in.Down {
		v.Y++
	}
	if in.Left {
		v.X--
	}
	if in.Right {
		v.X++
	}
	return v
}

// Sound is a play-sound event produced by the core.
type Sound uint8

const (
	SoundBreakPot Sound = iota + 1
	SoundThrowBoomerang
)

func (s Sound) String() string {
	switch s {
	case SoundBreakPot:
		return "break_pot"
	case SoundThrowBoomerang:
		return "throw_boomerang"
	default:
		return "unknown"
	}
}

// Sprite is one visible entity in the draw list.
type Sprite struct {
	ID   string
	Kind Kind
	Body core.Rect
}

// RoomChange describes a transition that happened during a tick.
type RoomChange struct {
	From string
	To   string
	Dir  Direction
}

// TickResult is everything a Step produced besides world state.
type TickResult struct {
	Tick       uint64
	Sounds     []Sound
	RoomChange *RoomChange
	Halted     bool
}

// Stats counts notable events since the world was created.
type Stats struct {
	PotsBroken       int
	BoomerangsThrown int
	RoomsVisited     int
}

// Option configures a World.
type Option func(*World)

// WithLogger routes debug events to l.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// World is the whole simulation state. It is not safe for concurrent use.
type World struct {
	cfg    config.LinkerConfig
	layout *Layout
	bounds core.Rect

	character *Character
	room      Room
	store     *Store

	tick   uint64
	halted bool
	stats  Stats

	// Per-tick event buffer, reset at the start of every Step
	sounds []Sound
	change *RoomChange

	log *log.Logger
}

// NewWorld validates the layout and enters its active room.
func NewWorld(cfg config.LinkerConfig, layout *Layout, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if layout == nil {
		return nil, fmt.Errorf("sim: %w", ErrNoRooms)
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	w := &World{
		cfg:       cfg,
		layout:    layout,
		bounds:    core.NewRect(0, 0, cfg.Screen.Width, cfg.Screen.Height),
		character: newCharacter(cfg.Character),
		store:     NewStore(),
		log:       log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.character.Body = w.character.Body.ClampTo(w.bounds)
	w.character.prev = w.character.Body
	w.enterRoom(layout.ActiveRoom)
	return w, nil
}

// Step advances the world by one tick.
func (w *World) Step(in Input) TickResult {
	if w.halted {
		return TickResult{Tick: w.tick, Halted: true}
	}
	if in.Quit {
		w.halted = true
		w.log.Debug("world halted", "tick", w.tick)
		return TickResult{Tick: w.tick, Halted: true}
	}

	w.tick++
	w.sounds = nil
	w.change = nil

	w.character.SetMovement(in.Direction())

	// Phase 1: every entity advances its own state
	w.character.Tick()
	w.character.Move(w.bounds)
	for _, kind := range [...]Kind{KindPot, KindBrokenPot, KindBoomerang} {
		for _, e := range w.store.Each(kind) {
			if e.advance(w.bounds) {
				w.log.Debug("entity expired", "kind", e.Kind, "id", e.ID, "tick", w.tick)
				w.store.Destroy(e.ID)
			}
		}
	}
	if in.Fire {
		w.throwBoomerang()
	}

	// Phase 2: fixed-order collision pass
	w.resolveCollisions()
	w.checkRoomEdges()

	w.store.Sweep()

	return TickResult{
		Tick:       w.tick,
		Sounds:     w.sounds,
		RoomChange: w.change,
	}
}

func (w *World) throwBoomerang() {
	c := w.character
	cx, cy := c.Body.Center()
	body := core.CenteredAt(cx, cy, w.cfg.Boomerang.Width, w.cfg.Boomerang.Height).ClampTo(w.bounds)

	b := w.store.Spawn(KindBoomerang, body)
	b.Dir = c.LastDirection
	b.Speed = w.cfg.Boomerang.Speed

	w.sounds = append(w.sounds, SoundThrowBoomerang)
	w.stats.BoomerangsThrown++
	w.log.Debug("boomerang thrown", "id", b.ID, "dir", b.Dir, "tick", w.tick)
}

// enterRoom clears every non-character entity and rebuilds the room's static
// entities from layout data.
func (w *World) enterRoom(name string) {
	rl, ok := w.layout.Room(name)
	if !ok {
		// Validate guarantees every neighbor exists
		return
	}

	w.store.Reset()
	w.room = Room{Name: rl.Name, Neighbors: rl.Neighbors}

	for _, p := range rl.Bricks {
		w.store.Spawn(KindBrick, core.NewRect(p.X, p.Y, w.cfg.Brick.Width, w.cfg.Brick.Height))
	}
	for _, p := range rl.Pots {
		pot := w.store.Spawn(KindPot, core.NewRect(p.X, p.Y, w.cfg.Pot.Width, w.cfg.Pot.Height))
		pot.Speed = w.cfg.Pot.Speed
	}

	w.stats.RoomsVisited++
	w.log.Debug("room loaded", "room", rl.Name, "bricks", len(rl.Bricks), "pots", len(rl.Pots))
}

// DrawList returns the visible entities in paint order: bricks, pots, broken
// pots, boomerangs, then the character.
func (w *World) DrawList() []Sprite {
	out := make([]Sprite, 0, len(w.store.entities)+1)
	for _, kind := range [...]Kind{KindBrick, KindPot, KindBrokenPot, KindBoomerang} {
		for _, e := range w.store.Each(kind) {
			out = append(out, Sprite{ID: e.spriteID(w.cfg), Kind: kind, Body: e.Body})
		}
	}
	out = append(out, Sprite{ID: w.character.SpriteID(), Kind: KindCharacter, Body: w.character.Body})
	return out
}

// Character returns the player character.
func (w *World) Character() *Character { return w.character }

// Bricks returns the live bricks of the active room.
func (w *World) Bricks() []*Entity { return w.store.Each(KindBrick) }

// Pots returns the live pots of the active room.
func (w *World) Pots() []*Entity { return w.store.Each(KindPot) }

// BrokenPots returns the live rubble entities.
func (w *World) BrokenPots() []*Entity { return w.store.Each(KindBrokenPot) }

// Boomerangs returns the boomerangs in flight.
func (w *World) Boomerangs() []*Entity { return w.store.Each(KindBoomerang) }

// Room returns the active room.
func (w *World) Room() Room { return w.room }

// Bounds returns the playfield rectangle.
func (w *World) Bounds() core.Rect { return w.bounds }

// Tick returns the number of ticks stepped so far.
func (w *World) Tick() uint64 { return w.tick }

// Stats returns event counters since creation.
func (w *World) Stats() Stats { return w.stats }

// Halted reports whether a quit input has been seen.
func (w *World) Halted() bool { return w.halted }

// Store exposes the entity arena for inspection.
func (w *World) Store() *Store { return w.store }
