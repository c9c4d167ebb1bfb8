package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/linker/internal/core"
	"github.com/vovakirdan/linker/internal/registry"
	"github.com/vovakirdan/linker/internal/storage"
)

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game          registry.Game
	screen        *core.Screen
	store         *storage.Store
	config        core.RuntimeConfig
	keys          *KeyMapper
	latch         *Latch
	help          help.Model
	log           *log.Logger
	screenshotDir string
	gameState     core.GameState
	quitting      bool
	runSaved      bool // Whether the current run is already in the history
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for best-effort failures.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.log = l }
}

// WithLatchTicks sets how long a direction key stays held.
func WithLatchTicks(ticks int) Option {
	return func(m *Model) { m.latch = NewLatch(ticks) }
}

// WithScreenshotDir sets where ctrl+s writes screen dumps.
func WithScreenshotDir(dir string) Option {
	return func(m *Model) { m.screenshotDir = dir }
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg holds the full terminal size; the game gets the rows above the help line.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:   game,
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		latch:  NewLatch(DefaultLatchTicks),
		help:   h,
		log:    log.Default(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.screenshotDir == "" {
		m.screenshotDir = defaultScreenshotDir()
	}
	m.screen = core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH))
	return m
}

func gameHeight(h int) int {
	if h > helpHeight {
		return h - helpHeight
	}
	return h
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "linker-screenshots")
	}
	return filepath.Join(home, ".linker", "screenshots")
}

// gameConfig is the runtime config the game sees.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	// gameState is set on the first tick (value receiver)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "err", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}
	m.latch.Press(action)

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, gameHeight(msg.Height))
		return m, nil
	}

	// Games that cannot follow a resize start over
	if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.latch.Next()

	if frame.Has(core.ActionRestart) {
		m.saveRun()
		m.latch.Release()
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	if frame.Has(core.ActionRestart) {
		m.runSaved = false
	}

	// Record the run once when the game ends on its own
	if m.gameState.GameOver {
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the current run in the history, at most once per run.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil {
		return
	}
	rep, ok := m.game.(registry.Reporter)
	if !ok {
		return
	}
	rs := rep.RunStats()
	if rs.Ticks == 0 {
		return
	}

	rec, err := m.store.SaveRun(storage.RunRecord{
		GameID:           m.game.ID(),
		Layout:           rs.Layout,
		Ticks:            rs.Ticks,
		TickRate:         m.config.TickRate,
		PotsBroken:       rs.PotsBroken,
		BoomerangsThrown: rs.BoomerangsThrown,
		RoomsVisited:     rs.RoomsVisited,
	})
	if err != nil {
		// Best-effort save, the game continues regardless
		m.log.Warn("cannot save run", "err", err)
	} else {
		m.log.Debug("run saved", "run", rec.RunID, "pots", rec.PotsBroken, "ticks", rec.Ticks)
	}
	m.runSaved = true
}

// saveScreenshot writes the current screen to a text file and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(m.screenshotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
