package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/linker/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the totals sidebar
	sidebarWidth       = 24  // Width of the totals sidebar
	maxRuns            = 100 // Max runs to load
)

// HistoryKeyMap defines the key bindings for the run history.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Top, k.Bottom, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "newest"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "oldest"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the run history screen.
type HistoryModel struct {
	store       *storage.Store
	runs        []storage.RunRecord
	totals      storage.Totals
	loadErr     error
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewHistoryModel creates a run history model.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := HistoryModel{
		store:       store,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.load()

	return m
}

// createTable creates a new table with columns fitted to the width.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 13},
		{Title: "Layout", Width: 10},
		{Title: "Pots", Width: 5},
		{Title: "Thrown", Width: 7},
		{Title: "Rooms", Width: 6},
		{Title: "Time", Width: 7},
	}

	// Give spare width to the layout column
	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if extra := tableWidth - used; extra > 0 {
		columns[1].Width += min(extra, 14)
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads runs and totals from the store.
func (m *HistoryModel) load() {
	m.runs = nil
	m.totals = storage.Totals{}
	m.loadErr = nil

	if m.store != nil {
		runs, err := m.store.RecentRuns(maxRuns)
		if err != nil {
			m.loadErr = err
		} else {
			m.runs = runs
		}
		if totals, err := m.store.Totals(); err == nil {
			m.totals = totals
		} else if m.loadErr == nil {
			m.loadErr = err
		}
	}
	m.updateTableRows()
}

// updateTableRows refreshes the table from the loaded runs.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			formatDate(r.CreatedAt),
			r.Layout,
			fmt.Sprintf("%d", r.PotsBroken),
			fmt.Sprintf("%d", r.BoomerangsThrown),
			fmt.Sprintf("%d", r.RoomsVisited),
			formatPlayTime(r.PlayTime()),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("Jan 02 15:04")
}

// formatPlayTime renders a duration as m:ss.
func formatPlayTime(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
			return m, nil

		case key.Matches(msg, m.keys.Bottom):
			m.table.GotoBottom()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("RUN HISTORY", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderTotals(), "  ", tableRendered))
	} else {
		b.WriteString(centerText(m.totalsLine(), m.width))
		b.WriteString("\n\n")
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTotals renders the aggregate sidebar.
func (m HistoryModel) renderTotals() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var sb strings.Builder
	sb.WriteString("Totals\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	lines := []struct {
		label string
		value string
	}{
		{"Runs", fmt.Sprintf("%d", m.totals.Runs)},
		{"Pots broken", fmt.Sprintf("%d", m.totals.PotsBroken)},
		{"Best run", fmt.Sprintf("%d", m.totals.BestPots)},
		{"Thrown", fmt.Sprintf("%d", m.totals.BoomerangsThrown)},
		{"Play time", formatPlayTime(m.totals.PlayTime)},
		{"Last played", formatDate(m.totals.LastPlayed)},
	}
	for _, l := range lines {
		sb.WriteString(labelStyle.Render(l.label))
		sb.WriteString("\n  ")
		sb.WriteString(valueStyle.Render(l.value))
		sb.WriteString("\n")
	}

	return sidebarStyle.Render(strings.TrimSuffix(sb.String(), "\n"))
}

// totalsLine is the one-line summary used on narrow terminals.
func (m HistoryModel) totalsLine() string {
	return fmt.Sprintf("%d runs  %d pots  best %d", m.totals.Runs, m.totals.PotsBroken, m.totals.BestPots)
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render("Cannot read run history:\n" + m.loadErr.Error())
	}
	if len(m.runs) == 0 {
		return emptyStyle.Render("No runs recorded yet.\nPlay a game to start the history!")
	}

	return m.table.View()
}

// centerText pads text to center it in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunHistory runs the run history screen.
func RunHistory(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
