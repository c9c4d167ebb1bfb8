package linker

import (
	"strings"
	"testing"

	"github.com/vovakirdan/linker/internal/config"
	"github.com/vovakirdan/linker/internal/core"
	"github.com/vovakirdan/linker/internal/games/linker/sim"
	"github.com/vovakirdan/linker/internal/registry"
)

// recorder collects played sounds.
type recorder struct {
	played []sim.Sound
}

func (r *recorder) Play(s sim.Sound) { r.played = append(r.played, s) }

func testLayout() *sim.Layout {
	return &sim.Layout{
		Name:       "test",
		ActiveRoom: "R0",
		Rooms: []sim.RoomLayout{
			{
				Name:      "R0",
				Bricks:    []sim.Point{{X: 400, Y: 100}},
				Pots:      []sim.Point{{X: 200, Y: 100}},
				Neighbors: map[sim.Direction]string{sim.DirDown: "R1"},
			},
			{
				Name:      "R1",
				Neighbors: map[sim.Direction]string{sim.DirUp: "R0"},
			},
		},
	}
}

func newTestGame(t *testing.T, p SoundPlayer) *Game {
	t.Helper()
	g := NewWith(config.DefaultLinkerConfig(), testLayout(), p)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 40})
	if err := g.Err(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, nil)
	g2 := newTestGame(t, nil)

	for i := 0; i < 200; i++ {
		var in core.InputFrame
		switch {
		case i < 11:
			in = frame(core.ActionRight)
		case i == 30:
			in = frame(core.ActionFire)
		case i > 100:
			in = frame(core.ActionDown)
		default:
			in = frame()
		}
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Hash() != s2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", s1.Hash(), s2.Hash())
	}
	if s1.PotsBroken != 1 {
		t.Errorf("PotsBroken = %d, expected 1", s1.PotsBroken)
	}
	if s1.Room != "R1" {
		t.Errorf("Room = %s, expected R1", s1.Room)
	}
}

func TestSoundsForwarded(t *testing.T) {
	rec := &recorder{}
	g := newTestGame(t, rec)

	g.Step(frame(core.ActionFire))
	if len(rec.played) != 1 || rec.played[0] != sim.SoundThrowBoomerang {
		t.Fatalf("played = %v, expected [throw_boomerang]", rec.played)
	}
	if got := g.LastSounds(); len(got) != 1 {
		t.Errorf("LastSounds() = %v, expected one sound", got)
	}

	// Push the pot into the brick
	for i := 0; i < 11; i++ {
		g.Step(frame(core.ActionRight))
	}
	for i := 0; i < 30; i++ {
		g.Step(frame())
	}
	found := false
	for _, s := range rec.played {
		if s == sim.SoundBreakPot {
			found = true
		}
	}
	if !found {
		t.Errorf("played = %v, expected a break_pot", rec.played)
	}
	if g.State().Score != 1 {
		t.Errorf("Score = %d, expected 1", g.State().Score)
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g := newTestGame(t, nil)

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game not paused")
	}
	tick := g.World().Tick()

	g.Step(frame(core.ActionRight))
	if g.World().Tick() != tick {
		t.Errorf("world advanced while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("game still paused")
	}
}

func TestQuitEndsGameAndRestart(t *testing.T) {
	g := newTestGame(t, nil)
	g.Step(frame(core.ActionRight))

	g.Step(frame(core.ActionQuit))
	if !g.State().GameOver {
		t.Fatal("quit did not end the game")
	}

	g.Step(frame(core.ActionRestart))
	if g.State().GameOver {
		t.Error("restart left the game over")
	}
	if g.World().Tick() != 0 {
		t.Errorf("Tick after restart = %d, expected 0", g.World().Tick())
	}
	if x := g.World().Character().Body.X; x != 100 {
		t.Errorf("character X after restart = %d, expected 100", x)
	}
}

func TestRenderDrawsWorld(t *testing.T) {
	g := newTestGame(t, nil)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(screen.Row(0), "Room R0") {
		t.Errorf("HUD = %q, expected room name", screen.Row(0))
	}
	if pot := screen.GetCell(1+200*78/800, 2+100*21/600); pot.Rune != 'o' || pot.Color != core.ColorYellow {
		t.Errorf("pot cell = %+v, expected yellow 'o'", pot)
	}
	if !strings.Contains(out, "▼") {
		t.Error("character facing marker not drawn")
	}

	// Frame corners
	if screen.Get(0, 1) != '┌' || screen.Get(79, 23) != '┘' {
		t.Errorf("frame corners = %q, %q", screen.Get(0, 1), screen.Get(79, 23))
	}

	// Character at (100,100) 50x50 on a 78x21 playfield
	cell := screen.GetCell(1+100*78/800, 2+100*21/600)
	if cell.Color != core.ColorBrightGreen {
		t.Errorf("character cell color = %v, expected bright green", cell.Color)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, nil)
	screen := core.NewScreen(20, 6)
	g.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected too-small message, got:\n%s", screen.String())
	}
}

func TestViewportCoversEdges(t *testing.T) {
	vp := newViewport(80, 24, core.NewRect(0, 0, 800, 600))

	tests := []struct {
		name     string
		body     core.Rect
		expected core.Rect
	}{
		{"top left", core.NewRect(0, 0, 50, 50), core.NewRect(1, 2, 4, 1)},
		{"bottom right", core.NewRect(750, 550, 50, 50), core.NewRect(74, 21, 5, 2)},
		{"tiny", core.NewRect(400, 300, 1, 1), core.NewRect(40, 12, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vp.cellRect(tt.body); got != tt.expected {
				t.Errorf("cellRect(%v) = %v, expected %v", tt.body, got, tt.expected)
			}
		})
	}
}

func TestGlyphFor(t *testing.T) {
	tests := []struct {
		sprite   sim.Sprite
		expected rune
	}{
		{sim.Sprite{ID: "brick", Kind: sim.KindBrick}, '█'},
		{sim.Sprite{ID: "pot", Kind: sim.KindPot}, 'o'},
		{sim.Sprite{ID: "pot-broken1", Kind: sim.KindBrokenPot}, '░'},
		{sim.Sprite{ID: "pot-broken2", Kind: sim.KindBrokenPot}, '▒'},
		{sim.Sprite{ID: "boomerang3", Kind: sim.KindBoomerang}, '\\'},
		{sim.Sprite{ID: "boomerang9", Kind: sim.KindBoomerang}, '/'},
	}

	for _, tt := range tests {
		if got := glyphFor(tt.sprite).fill; got != tt.expected {
			t.Errorf("glyphFor(%s) = %q, expected %q", tt.sprite.ID, got, tt.expected)
		}
	}
}

func TestBadLayoutReportsError(t *testing.T) {
	g := NewWith(config.DefaultLinkerConfig(), &sim.Layout{ActiveRoom: "X"}, nil)
	g.Reset(core.DefaultConfig())

	if g.Err() == nil {
		t.Fatal("Err() = nil, expected layout error")
	}
	if !g.State().GameOver {
		t.Error("game without a world should report game over")
	}

	// Stepping and rendering a broken game must not panic
	g.Step(frame(core.ActionRight))
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Failed to start") {
		t.Error("error not rendered")
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create(%q) error = %v", GameID, err)
	}
	if g.Title() != "Linker" {
		t.Errorf("Title() = %q, expected Linker", g.Title())
	}

	// The default game starts on the embedded map
	g.Reset(core.DefaultConfig())
	lg := g.(*Game)
	if lg.Err() != nil {
		t.Fatalf("Reset() error = %v", lg.Err())
	}
	if lg.LayoutName() != "classic" {
		t.Errorf("LayoutName() = %q, expected classic", lg.LayoutName())
	}
}

func TestRunStats(t *testing.T) {
	g := newTestGame(t, nil)
	g.Step(frame(core.ActionFire))
	g.Step(frame(core.ActionFire))
	g.Step(frame())

	var rep registry.Reporter = g
	rs := rep.RunStats()
	expected := registry.RunStats{Layout: "test", Ticks: 3, BoomerangsThrown: 2, RoomsVisited: 1}
	if rs != expected {
		t.Errorf("RunStats() = %+v, expected %+v", rs, expected)
	}
}

func TestResizeKeepsWorld(t *testing.T) {
	g := newTestGame(t, nil)
	g.Step(frame(core.ActionRight))

	var r registry.Resizer = g
	r.Resize(120, 40)

	if g.World().Tick() != 1 {
		t.Errorf("Tick after Resize = %d, expected 1", g.World().Tick())
	}
	screen := core.NewScreen(120, 40)
	g.Render(screen)
	if screen.Get(119, 39) != '┘' {
		t.Errorf("frame corner = %q, expected '┘'", screen.Get(119, 39))
	}
}
