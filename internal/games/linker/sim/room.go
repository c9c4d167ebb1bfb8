package sim

import (
	"errors"
	"fmt"
)

// Layout errors. Every layout validation failure wraps one of these.
var (
	ErrNoRooms       = errors.New("layout has no rooms")
	ErrUnknownRoom   = errors.New("unknown room")
	ErrDuplicateRoom = errors.New("duplicate room")
	ErrBadDirection  = errors.New("bad direction")
)

// Point is a top-left position in world pixels.
type Point struct {
	X, Y int
}

// RoomLayout is the static description of a room.
type RoomLayout struct {
	Name      string
	Bricks    []Point
	Pots      []Point
	Neighbors map[Direction]string
}

// Layout is a set of rooms plus the room the game starts in.
type Layout struct {
	Name       string
	ActiveRoom string
	Rooms      []RoomLayout
}

// Room returns the layout of a room by name.
func (l *Layout) Room(name string) (*RoomLayout, bool) {
	for i := range l.Rooms {
		if l.Rooms[i].Name == name {
			return &l.Rooms[i], true
		}
	}
	return nil, false
}

// Validate checks room names, the starting room and every neighbor link.
func (l *Layout) Validate() error {
	if len(l.Rooms) == 0 {
		return ErrNoRooms
	}

	seen := make(map[string]bool, len(l.Rooms))
	for _, r := range l.Rooms {
		if r.Name == "" {
			return fmt.Errorf("%w: room with empty name", ErrUnknownRoom)
		}
		if seen[r.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateRoom, r.Name)
		}
		seen[r.Name] = true
	}

	if !seen[l.ActiveRoom] {
		return fmt.Errorf("%w: active room %q", ErrUnknownRoom, l.ActiveRoom)
	}

	for _, r := range l.Rooms {
		for d, target := range r.Neighbors {
			if !d.Valid() {
				return fmt.Errorf("%w: room %q has neighbor direction %q", ErrBadDirection, r.Name, d)
			}
			if !seen[target] {
				return fmt.Errorf("%w: room %q links %s to %q", ErrUnknownRoom, r.Name, d, target)
			}
		}
	}
	return nil
}

// Room is the active room. Its bricks and pots live in the world's store and
// are rebuilt from the layout every time the room is entered.
type Room struct {
	Name      string
	Neighbors map[Direction]string
}

// Neighbor returns the room behind the d edge, if any.
func (r *Room) Neighbor(d Direction) (string, bool) {
	name, ok := r.Neighbors[d]
	return name, ok
}
