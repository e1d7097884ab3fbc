package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

const maxScores = 100 // Max matches to load

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "enter"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists the best finished matches of one game.
type ScoreboardModel struct {
	gameID    string
	store     *storage.Store
	matches   []storage.MatchRecord
	stats     *storage.GameStats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard and loads its rows.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		gameID: gameID,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Wave", Width: 6},
		{Title: "Kills", Width: 6},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(hexShipBase)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(hexHighlight)).
		Background(lipgloss.Color(hexShipBase)).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads matches and aggregate stats from the store.
func (m *ScoreboardModel) load() {
	m.matches, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.matches, m.loadErr = m.store.TopMatches(m.gameID, maxScores)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetGameStats(m.gameID)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current matches.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.matches))
	for i, r := range m.matches {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Wave),
			fmt.Sprintf("%d", r.Kills),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")

	if m.stats != nil && m.stats.GamesCount > 0 {
		line := fmt.Sprintf("Games: %d   Best: %d   Avg: %.0f   Best wave: %d   Kills: %d",
			m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.BestWave, m.stats.TotalKills)
		b.WriteString(centerText(itemStyle.Render(line), m.width))
		b.WriteString("\n\n")
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(hexShipBase)).
		Padding(0, 1)
	b.WriteString(centerBlock(boxStyle.Render(m.tableContent()), m.width))

	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tableContent renders the table or a placeholder.
func (m ScoreboardModel) tableContent() string {
	empty := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return empty.Render("Scores are unavailable.\nNo database is open.")
	case m.loadErr != nil:
		return empty.Render("Could not load scores.")
	case len(m.matches) == 0:
		return empty.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// centerBlock centers every line of a multi-line block.
func centerBlock(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// Matches returns the loaded rows.
func (m ScoreboardModel) Matches() []storage.MatchRecord {
	return m.matches
}
