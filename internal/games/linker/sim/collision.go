package sim

import (
	"github.com/vovakirdan/linker/internal/core"
)

// resolveCollisions runs the phase-2 rules in their fixed order. Later rules
// see the effects of earlier ones, e.g. a pot pushed by the character in rule
// 3 is already moving when rule 4 checks it against bricks.
func (w *World) resolveCollisions() {
	c := w.character

	// 1. Character vs bricks
	for _, b := range w.store.Each(KindBrick) {
		if c.Body.Intersects(b.Body) {
			c.Revert()
			break
		}
	}

	// 2. Character vs rubble
	for _, bp := range w.store.Each(KindBrokenPot) {
		if c.Body.Intersects(bp.Body) {
			c.Revert()
			break
		}
	}

	// 3. Character pushes pots it overlaps
	for _, p := range w.store.Each(KindPot) {
		if c.Body.Intersects(p.Body) {
			p.Push(c.Direction)
		}
	}

	// 4. Moving pots break on bricks
	bricks := w.store.Each(KindBrick)
	for _, p := range w.store.Each(KindPot) {
		if !p.Moving() {
			continue
		}
		for _, b := range bricks {
			if p.Body.Intersects(b.Body) {
				w.breakPot(p)
				break
			}
		}
	}

	// 5. Pots vs boomerangs
	for _, p := range w.store.Each(KindPot) {
		for _, bm := range w.store.Each(KindBoomerang) {
			if p.Body.Intersects(bm.Body) {
				w.store.Destroy(bm.ID)
				w.breakPot(p)
				break
			}
		}
	}

	// 6. Boomerangs vs bricks
	for _, bm := range w.store.Each(KindBoomerang) {
		for _, b := range bricks {
			if bm.Body.Intersects(b.Body) {
				w.log.Debug("boomerang hit brick", "id", bm.ID, "tick", w.tick)
				w.store.Destroy(bm.ID)
				break
			}
		}
	}
}

// breakPot replaces a pot with rubble centered on it.
func (w *World) breakPot(p *Entity) {
	if !w.store.Alive(p.ID) {
		return
	}
	cx, cy := p.Body.Center()
	w.store.Destroy(p.ID)

	rubble := w.store.Spawn(KindBrokenPot, core.CenteredAt(cx, cy, w.cfg.BrokenPot.Width, w.cfg.BrokenPot.Height))
	rubble.Life = w.cfg.BrokenPot.Life

	w.sounds = append(w.sounds, SoundBreakPot)
	w.stats.PotsBroken++
	w.log.Debug("pot broken", "pot", p.ID, "rubble", rubble.ID, "x", rubble.Body.X, "y", rubble.Body.Y, "tick", w.tick)
}

// checkRoomEdges moves the character to a neighbor room when it is flush with
// an edge and still walking into it. Edges are checked up, down, right, left;
// the first qualifying edge decides, even when it has no neighbor.
func (w *World) checkRoomEdges() {
	c := w.character
	for _, d := range edgeOrder {
		if !flush(c.Body, w.bounds, d) || !heading(c.Direction, d) {
			continue
		}
		target, ok := w.room.Neighbor(d)
		if !ok {
			return
		}
		w.transition(d, target)
		return
	}
}

// transition enters target and places the character flush against the edge
// opposite to d, keeping the coordinate along that edge.
func (w *World) transition(d Direction, target string) {
	from := w.room.Name
	w.enterRoom(target)

	c := w.character
	switch d {
	case DirUp:
		c.Body.Y = w.bounds.Bottom() - c.Body.H
	case DirDown:
		c.Body.Y = w.bounds.Y
	case DirLeft:
		c.Body.X = w.bounds.Right() - c.Body.W
	case DirRight:
		c.Body.X = w.bounds.X
	}
	c.prev = c.Body

	w.change = &RoomChange{From: from, To: target, Dir: d}
	w.log.Debug("room transition", "from", from, "to", target, "dir", d, "tick", w.tick)
}
