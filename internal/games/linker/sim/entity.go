package sim

import (
	"github.com/vovakirdan/linker/internal/core"
)

// Kind tags an entity variant.
type Kind uint8

const (
	KindCharacter Kind = iota
	KindBrick
	KindPot
	KindBrokenPot
	KindBoomerang
	kindCount
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindCharacter:
		return "character"
	case KindBrick:
		return "brick"
	case KindPot:
		return "pot"
	case KindBrokenPot:
		return "broken_pot"
	case KindBoomerang:
		return "boomerang"
	default:
		return "unknown"
	}
}

// EntityID identifies an entity inside a Store. IDs are never reused.
type EntityID uint32

// Entity is the tagged record for every non-character entity. Fields that do
// not apply to a kind stay zero.
type Entity struct {
	ID    EntityID
	Kind  Kind
	Body  core.Rect
	Dir   core.Vec // Pot push direction or boomerang travel direction
	Speed int
	Frame int // Animation counter
	Life  int // Remaining ticks for broken pots
}

// Moving reports whether a pot has been pushed and not yet stopped.
func (e *Entity) Moving() bool {
	return !e.Dir.IsZero()
}

// Store is the world's entity arena. Entities are owned by the store and
// referenced elsewhere only by ID. Per-kind index lists keep spawn order so
// iteration is deterministic.
type Store struct {
	nextID   EntityID
	entities map[EntityID]*Entity
	index    [kindCount][]EntityID
}

// NewStore creates an empty arena.
func NewStore() *Store {
	return &Store{
		entities: make(map[EntityID]*Entity),
	}
}

// Spawn creates a new entity of the given kind.
func (s *Store) Spawn(kind Kind, body core.Rect) *Entity {
	s.nextID++
	e := &Entity{ID: s.nextID, Kind: kind, Body: body}
	s.entities[e.ID] = e
	s.index[kind] = append(s.index[kind], e.ID)
	return e
}

// Get returns a live entity by ID.
func (s *Store) Get(id EntityID) (*Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

// Alive reports whether the entity still exists.
func (s *Store) Alive(id EntityID) bool {
	_, ok := s.entities[id]
	return ok
}

// Destroy removes an entity. Its ID lingers in the kind index until Sweep,
// but Each and Count already skip it.
func (s *Store) Destroy(id EntityID) {
	delete(s.entities, id)
}

// Each returns the live entities of a kind in spawn order.
// The returned slice is a snapshot; destroying entities while ranging over
// it is safe, callers check Alive where it matters.
func (s *Store) Each(kind Kind) []*Entity {
	ids := s.index[kind]
	out := make([]*Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := s.entities[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of live entities of a kind.
func (s *Store) Count(kind Kind) int {
	n := 0
	for _, id := range s.index[kind] {
		if _, ok := s.entities[id]; ok {
			n++
		}
	}
	return n
}

// Sweep compacts the kind indexes so no destroyed ID survives the tick.
func (s *Store) Sweep() {
	for k := range s.index {
		live := s.index[k][:0]
		for _, id := range s.index[k] {
			if _, ok := s.entities[id]; ok {
				live = append(live, id)
			}
		}
		s.index[k] = live
	}
}

// Reset destroys every entity. The ID counter keeps running.
func (s *Store) Reset() {
	s.entities = make(map[EntityID]*Entity)
	for k := range s.index {
		s.index[k] = nil
	}
}
