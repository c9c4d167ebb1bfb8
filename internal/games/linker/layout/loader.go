// Package layout loads room layouts for linker from JSON, YAML or TOML files
// and from the embedded default map.
// This package depends on sim but sim does not depend on layout.
package layout

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/vovakirdan/linker/internal/games/linker/layout/formats"
	"github.com/vovakirdan/linker/internal/games/linker/sim"
)

//go:embed maps/map.json
var defaultMap []byte

// Validation errors, shared with sim so errors.Is works on either name.
var (
	ErrNoRooms       = sim.ErrNoRooms
	ErrUnknownRoom   = sim.ErrUnknownRoom
	ErrDuplicateRoom = sim.ErrDuplicateRoom
	ErrBadDirection  = sim.ErrBadDirection
)

// ErrUnsupportedFormat is returned for files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported layout format")

// classicNeighbors is the room wiring used when a layout declares none.
var classicNeighbors = map[string]map[sim.Direction]string{
	"R0": {sim.DirRight: "R1", sim.DirDown: "R2"},
	"R1": {sim.DirLeft: "R0"},
	"R2": {sim.DirUp: "R0", sim.DirDown: "R3"},
	"R3": {sim.DirUp: "R2", sim.DirRight: "R4"},
	"R4": {sim.DirLeft: "R3"},
}

// Default returns the embedded five-room map.
func Default() (*sim.Layout, error) {
	l, err := Parse(defaultMap, ".json")
	if err != nil {
		return nil, fmt.Errorf("layout: embedded map: %w", err)
	}
	return l, nil
}

// Load reads a layout file, picking the parser by extension.
func Load(path string) (*sim.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: reading file %s: %w", path, err)
	}

	l, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("layout: %s: %w", path, err)
	}
	if l.Name == "" {
		base := filepath.Base(path)
		l.Name = base[:len(base)-len(filepath.Ext(base))]
	}
	return l, nil
}

// LoadOrDefault loads path, or the embedded map when path is empty.
func LoadOrDefault(path string) (*sim.Layout, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Parse decodes and validates layout data in the format named by ext.
func Parse(data []byte, ext string) (*sim.Layout, error) {
	parse, err := formats.ForExtension(ext)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	doc, err := parse(data)
	if err != nil {
		return nil, err
	}

	l, err := fromDocument(doc)
	if err != nil {
		return nil, err
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func fromDocument(doc formats.Document) (*sim.Layout, error) {
	l := &sim.Layout{
		Name:       doc.Name,
		ActiveRoom: doc.ActiveRoom,
		Rooms:      make([]sim.RoomLayout, 0, len(doc.Rooms)),
	}

	declared := false
	for _, r := range doc.Rooms {
		rl := sim.RoomLayout{
			Name:      r.Name,
			Bricks:    points(r.Bricks),
			Pots:      points(r.Pots),
			Neighbors: make(map[sim.Direction]string, len(r.Neighbors)),
		}
		for key, target := range r.Neighbors {
			d, ok := sim.ParseDirection(key)
			if !ok {
				return nil, fmt.Errorf("%w: room %q has neighbor direction %q", ErrBadDirection, r.Name, key)
			}
			rl.Neighbors[d] = target
			declared = true
		}
		l.Rooms = append(l.Rooms, rl)
	}

	if !declared {
		applyClassicNeighbors(l)
	}
	return l, nil
}

// applyClassicNeighbors wires the rooms named R0 to R4 the classic way,
// skipping links to rooms the layout does not have.
func applyClassicNeighbors(l *sim.Layout) {
	for i := range l.Rooms {
		links, ok := classicNeighbors[l.Rooms[i].Name]
		if !ok {
			continue
		}
		for d, target := range links {
			if _, exists := l.Room(target); exists {
				l.Rooms[i].Neighbors[d] = target
			}
		}
	}
}

func points(in []formats.Point) []sim.Point {
	if len(in) == 0 {
		return nil
	}
	out := make([]sim.Point, len(in))
	for i, p := range in {
		out[i] = sim.Point{X: p.X, Y: p.Y}
	}
	return out
}

// RoomSummary describes one room for listings.
type RoomSummary struct {
	Name      string
	Bricks    int
	Pots      int
	Neighbors []string // "dir:room", in edge check order
}

// Summary describes a layout for the rooms command.
type Summary struct {
	Name       string
	ActiveRoom string
	Rooms      []RoomSummary
}

// Summarize builds a Summary with rooms sorted by name.
func Summarize(l *sim.Layout) Summary {
	s := Summary{Name: l.Name, ActiveRoom: l.ActiveRoom}
	for _, r := range l.Rooms {
		rs := RoomSummary{Name: r.Name, Bricks: len(r.Bricks), Pots: len(r.Pots)}
		for _, d := range sim.Directions() {
			if target, ok := r.Neighbors[d]; ok {
				rs.Neighbors = append(rs.Neighbors, string(d)+":"+target)
			}
		}
		s.Rooms = append(s.Rooms, rs)
	}
	sort.Slice(s.Rooms, func(i, j int) bool {
		return s.Rooms[i].Name < s.Rooms[j].Name
	})
	return s
}
