package sim

import (
	"fmt"

	"github.com/vovakirdan/linker/internal/config"
	"github.com/vovakirdan/linker/internal/core"
)

// Push starts a pot sliding in dir. A zero direction leaves the pot as it is;
// other kinds ignore pushes.
func (e *Entity) Push(dir core.Vec) {
	if e.Kind != KindPot {
		return
	}
	d := dir.Sign()
	if d.IsZero() {
		return
	}
	e.Dir = d
}

// advance runs one tick of an entity's own behavior and reports whether the
// entity has expired and must be destroyed.
func (e *Entity) advance(bounds core.Rect) (expired bool) {
	switch e.Kind {
	case KindPot:
		if !e.Moving() {
			return false
		}
		e.Body = e.Body.Translate(e.Dir.Scale(e.Speed)).ClampTo(bounds)
		// A pot slid against the playfield edge just stops
		if atEdge(e.Body, e.Dir, bounds) {
			e.Dir = core.Vec{}
		}
		return false

	case KindBrokenPot:
		e.Life--
		return e.Life <= 0

	case KindBoomerang:
		e.Body = e.Body.Translate(e.Dir.Scale(e.Speed)).ClampTo(bounds)
		e.Frame++
		return atEdge(e.Body, e.Dir, bounds)
	}
	return false
}

// atEdge reports whether r is flush with an edge that v is heading into.
func atEdge(r core.Rect, v core.Vec, bounds core.Rect) bool {
	for _, d := range edgeOrder {
		if heading(v, d) && flush(r, bounds, d) {
			return true
		}
	}
	return false
}

// spriteID names the entity's current sprite frame.
func (e *Entity) spriteID(cfg config.LinkerConfig) string {
	switch e.Kind {
	case KindBrick:
		return "brick"
	case KindPot:
		return "pot"
	case KindBrokenPot:
		return fmt.Sprintf("pot-broken%d", e.Life/cfg.BrokenPot.AnimStep%2+1)
	case KindBoomerang:
		return fmt.Sprintf("boomerang%d", e.Frame/cfg.Boomerang.AnimStep%cfg.Boomerang.AnimFrames+1)
	}
	return e.Kind.String()
}
