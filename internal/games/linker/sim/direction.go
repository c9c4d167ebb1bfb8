package sim

import (
	"strings"

	"github.com/vovakirdan/linker/internal/core"
)

// Direction names a screen edge and the neighbor room behind it. It is a
// string so it reads naturally in layout files.
type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// edgeOrder is the tie-break order used when the character is in a corner.
var edgeOrder = [...]Direction{DirUp, DirDown, DirRight, DirLeft}

// Directions returns all directions in edge tie-break order.
func Directions() []Direction {
	return edgeOrder[:]
}

// ParseDirection accepts a direction name in any case.
func ParseDirection(s string) (Direction, bool) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	return d, d.Valid()
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	switch d {
	case DirUp, DirDown, DirLeft, DirRight:
		return true
	}
	return false
}

// Vec returns the unit vector pointing toward the edge.
func (d Direction) Vec() core.Vec {
	switch d {
	case DirUp:
		return core.V(0, -1)
	case DirDown:
		return core.V(0, 1)
	case DirLeft:
		return core.V(-1, 0)
	case DirRight:
		return core.V(1, 0)
	}
	return core.Vec{}
}

// Opposite returns the direction of the facing edge.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return d
}

// flush reports whether r touches the d edge of bounds exactly.
func flush(r, bounds core.Rect, d Direction) bool {
	switch d {
	case DirUp:
		return r.FlushTop(bounds)
	case DirDown:
		return r.FlushBottom(bounds)
	case DirLeft:
		return r.FlushLeft(bounds)
	case DirRight:
		return r.FlushRight(bounds)
	}
	return false
}

// heading reports whether a movement vector has a component toward d.
func heading(v core.Vec, d Direction) bool {
	u := d.Vec()
	return (u.X != 0 && v.X == u.X) || (u.Y != 0 && v.Y == u.Y)
}
