package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/linker/internal/core"
	"github.com/vovakirdan/linker/internal/registry"
	"github.com/vovakirdan/linker/internal/storage"
)

// stubGame records the input it receives.
type stubGame struct {
	resets  int
	inputs  []core.InputFrame
	ticks   uint64
	over    bool
	resized [2]int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.ticks = 0
	g.over = false
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if in.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{})
	} else {
		g.ticks++
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState   { return core.GameState{GameOver: g.over} }

// resizingGame adds the optional interfaces.
type resizingGame struct{ *stubGame }

func (g resizingGame) Resize(w, h int) { g.resized = [2]int{w, h} }
func (g resizingGame) RunStats() registry.RunStats {
	return registry.RunStats{Layout: "classic", Ticks: g.ticks, PotsBroken: 2}
}

func newTestModel(t *testing.T, g registry.Game, store *storage.Store) Model {
	t.Helper()
	m := NewModel(g, store, core.DefaultConfig(), WithScreenshotDir(t.TempDir()), WithLatchTicks(3))
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return nm
}

func TestModelGameHeightLeavesHelpRow(t *testing.T) {
	m := newTestModel(t, &stubGame{}, nil)

	if m.screen.Height() != 23 {
		t.Errorf("screen height = %d, expected 23", m.screen.Height())
	}
	if m.gameConfig().ScreenH != 23 {
		t.Errorf("game ScreenH = %d, expected 23", m.gameConfig().ScreenH)
	}
}

func TestModelLatchesDirections(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, keyMsg("d"))
	for i := 0; i < 4; i++ {
		m = update(t, m, TickMsg{})
	}

	for i, in := range g.inputs[:3] {
		if !in.Has(core.ActionRight) {
			t.Errorf("tick %d: right not held", i+1)
		}
	}
	if g.inputs[3].Has(core.ActionRight) {
		t.Error("right held past the latch")
	}
}

func TestModelQuitSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := resizingGame{&stubGame{}}
	m := newTestModel(t, g, store)
	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg{})
	}

	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("View() after quit = %q, expected empty", v)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	if runs[0].GameID != "stub" || runs[0].Ticks != 5 || runs[0].PotsBroken != 2 || runs[0].Layout != "classic" {
		t.Errorf("saved run = %+v", runs[0])
	}
}

func TestModelSavesRunTickRate(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	cfg := core.DefaultConfig()
	cfg.TickRate = 25
	m := NewModel(resizingGame{&stubGame{}}, store, cfg, WithScreenshotDir(t.TempDir()))
	m.Init()
	m = update(t, m, TickMsg{})
	update(t, m, keyMsg("q"))

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	if runs[0].TickRate != 25 {
		t.Errorf("TickRate = %d, expected 25", runs[0].TickRate)
	}
}

func TestModelRestartSavesOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := resizingGame{&stubGame{}}
	m := newTestModel(t, g, store)
	m = update(t, m, TickMsg{})
	m = update(t, m, keyMsg("r"))
	m = update(t, m, TickMsg{})

	// Nothing played since the restart
	update(t, m, keyMsg("q"))

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Expected 1 run, got %d", len(runs))
	}
}

func TestModelResize(t *testing.T) {
	t.Run("resizer keeps the game", func(t *testing.T) {
		g := resizingGame{&stubGame{}}
		m := newTestModel(t, g, nil)
		m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

		if g.resets != 1 {
			t.Errorf("resets = %d, expected 1", g.resets)
		}
		if g.resized != [2]int{100, 39} {
			t.Errorf("Resize() got %v, expected [100 39]", g.resized)
		}
		if m.screen.Width() != 100 || m.screen.Height() != 39 {
			t.Errorf("screen = %dx%d, expected 100x39", m.screen.Width(), m.screen.Height())
		}
	})

	t.Run("other games reset", func(t *testing.T) {
		g := &stubGame{}
		m := newTestModel(t, g, nil)
		update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

		if g.resets != 2 {
			t.Errorf("resets = %d, expected 2", g.resets)
		}
	})
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(&stubGame{}, nil, core.DefaultConfig(), WithScreenshotDir(dir))
	m.Init()
	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 screenshot, got %d", len(entries))
	}
	if !strings.HasPrefix(entries[0].Name(), "stub_") {
		t.Errorf("screenshot name = %q", entries[0].Name())
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "stub") {
		t.Errorf("screenshot content = %q", string(data)[:10])
	}
}

func TestModelViewShowsHelp(t *testing.T) {
	m := newTestModel(t, &stubGame{}, nil)
	v := m.View()

	if !strings.Contains(v, "stub") {
		t.Error("View() missing game output")
	}
	if !strings.Contains(v, "throw") {
		t.Error("View() missing key help")
	}
}
