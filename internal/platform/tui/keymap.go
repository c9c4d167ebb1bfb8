package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/linker/internal/core"
)

// GameKeyMap defines the key bindings while playing.
type GameKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Fire, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Fire, k.Pause, k.Restart},
		{k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "f"),
			key.WithHelp("space", "throw"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp, false
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown, false
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Fire):
		return core.ActionFire, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// DefaultLatchTicks keeps a direction held for 200ms at 40 ticks per second,
// which bridges the gap between terminal key repeats.
const DefaultLatchTicks = 8

// Latch turns key press events into held directions. Terminals report
// presses and repeats but never releases, so a direction stays held for a
// number of ticks after its last press. Other actions last one tick.
type Latch struct {
	ticks   int
	held    map[core.Action]int
	pending core.InputFrame
}

// NewLatch creates a latch that holds directions for ticks ticks.
func NewLatch(ticks int) *Latch {
	if ticks < 1 {
		ticks = 1
	}
	return &Latch{
		ticks:   ticks,
		held:    make(map[core.Action]int),
		pending: core.NewInputFrame(),
	}
}

func isDirection(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

// Press records a key press. A new direction replaces any held one.
func (l *Latch) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if isDirection(a) {
		for d := range l.held {
			delete(l.held, d)
		}
		l.held[a] = l.ticks
		return
	}
	l.pending.Set(a)
}

// Release drops every held direction.
func (l *Latch) Release() {
	for d := range l.held {
		delete(l.held, d)
	}
}

// Next returns the input for the coming tick and ages held directions.
func (l *Latch) Next() core.InputFrame {
	frame := l.pending.Clone()
	l.pending.Clear()

	for a, left := range l.held {
		frame.Set(a)
		if left <= 1 {
			delete(l.held, a)
		} else {
			l.held[a] = left - 1
		}
	}
	return frame
}
