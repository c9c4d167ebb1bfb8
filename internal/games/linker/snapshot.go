package linker

import (
	"fmt"
	"hash/fnv"
)

// Snapshot captures the game state for determinism testing.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick       uint64
	Room       string
	CharX      int
	CharY      int
	Facing     string
	Pots       int
	BrokenPots int
	Boomerangs int
	PotsBroken int
	Thrown     int
	Paused     bool
	Halted     bool

	// Every sprite as "id@x,y", in draw order
	Sprites []string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{}
	}
	w := g.world
	c := w.Character()
	stats := w.Stats()

	snap := Snapshot{
		Tick:       w.Tick(),
		Room:       w.Room().Name,
		CharX:      c.Body.X,
		CharY:      c.Body.Y,
		Facing:     c.Facing.String(),
		Pots:       len(w.Pots()),
		BrokenPots: len(w.BrokenPots()),
		Boomerangs: len(w.Boomerangs()),
		PotsBroken: stats.PotsBroken,
		Thrown:     stats.BoomerangsThrown,
		Paused:     g.paused,
		Halted:     w.Halted(),
	}
	for _, sp := range w.DrawList() {
		snap.Sprites = append(snap.Sprites, fmt.Sprintf("%s@%d,%d", sp.ID, sp.Body.X, sp.Body.Y))
	}
	return snap
}

// Hash returns an FNV-1a hash of the snapshot.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "T:%d;R:%s;C:%d,%d,%s;", snap.Tick, snap.Room, snap.CharX, snap.CharY, snap.Facing)
	fmt.Fprintf(h, "N:%d,%d,%d;S:%d,%d;F:%v,%v;", snap.Pots, snap.BrokenPots, snap.Boomerangs,
		snap.PotsBroken, snap.Thrown, snap.Paused, snap.Halted)
	for _, s := range snap.Sprites {
		fmt.Fprintf(h, "%s;", s)
	}
	return h.Sum64()
}
