package sim

import (
	"testing"

	"github.com/vovakirdan/linker/internal/core"
)

// A brick at (0,0), a pot at (50,0) and the character at (100,0) walking left
// for 40 ticks: the pot is pushed into the brick and breaks, the rubble holds
// the character back until it expires, then the brick stops it.
func TestBrickPotScenario(t *testing.T) {
	w := newTestWorld(t, singleRoom([]Point{{X: 0, Y: 0}}, []Point{{X: 50, Y: 0}}), startAt(100, 0))
	c := w.Character()

	res := w.Step(moveLeft)
	if c.Body.X != 95 {
		t.Fatalf("tick 1: X = %d, expected 95", c.Body.X)
	}
	if pots := w.Pots(); len(pots) != 1 || pots[0].Dir != core.V(-1, 0) {
		t.Fatalf("tick 1: pot not pushed left")
	}
	if len(res.Sounds) != 0 {
		t.Errorf("tick 1: Sounds = %v, expected none", res.Sounds)
	}

	res = w.Step(moveLeft)
	if !hasSound(res.Sounds, SoundBreakPot) {
		t.Errorf("tick 2: Sounds = %v, expected break_pot", res.Sounds)
	}
	if len(w.Pots()) != 0 {
		t.Errorf("tick 2: pot survived the brick")
	}
	rubble := w.BrokenPots()
	if len(rubble) != 1 {
		t.Fatalf("tick 2: broken pots = %d, expected 1", len(rubble))
	}
	if expected := core.NewRect(40, 0, 50, 50); rubble[0].Body != expected {
		t.Errorf("tick 2: rubble = %v, expected %v", rubble[0].Body, expected)
	}
	if c.Body.X != 90 {
		t.Errorf("tick 2: X = %d, expected 90", c.Body.X)
	}

	// Held by the rubble
	for tick := 3; tick <= 21; tick++ {
		w.Step(moveLeft)
		if c.Body.X != 90 {
			t.Fatalf("tick %d: X = %d, expected 90", tick, c.Body.X)
		}
	}

	w.Step(moveLeft)
	if len(w.BrokenPots()) != 0 {
		t.Fatal("tick 22: rubble still present")
	}
	if c.Body.X != 85 {
		t.Errorf("tick 22: X = %d, expected 85", c.Body.X)
	}

	for tick := 23; tick <= 40; tick++ {
		w.Step(moveLeft)
		if c.Body.Intersects(w.Bricks()[0].Body) {
			t.Fatalf("tick %d: character overlaps the brick", tick)
		}
		if tick >= 29 && c.Body.X != 50 {
			t.Errorf("tick %d: X = %d, expected 50", tick, c.Body.X)
		}
	}

	if w.Tick() != 40 {
		t.Errorf("Tick() = %d, expected 40", w.Tick())
	}
	if len(w.Bricks()) != 1 {
		t.Errorf("bricks = %d, expected 1", len(w.Bricks()))
	}
	if w.Stats().PotsBroken != 1 {
		t.Errorf("PotsBroken = %d, expected 1", w.Stats().PotsBroken)
	}
}
