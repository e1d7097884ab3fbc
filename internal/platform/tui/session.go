package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

type screen int

const (
	screenMenu screen = iota
	screenScores
	screenGame
)

// SessionModel manages the full session flow: menu -> loading -> game -> menu,
// with the scoreboard reachable from the menu.
type SessionModel struct {
	gameID   string
	deps     Deps
	config   core.RuntimeConfig
	username string
	current  screen
	menu     MenuModel
	scores   ScoreboardModel
	game     GameModel
	quitting bool
}

// NewSessionModel creates a session that plays gameID.
func NewSessionModel(gameID string, deps Deps, cfg core.RuntimeConfig, username string) SessionModel {
	return SessionModel{
		gameID:   gameID,
		deps:     deps.withDefaults(),
		config:   cfg,
		username: username,
		menu:     NewMenuModel(cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen and switches screens.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch m.menu.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceScores:
		m.scores = NewScoreboardModel(m.deps.Store, m.gameID, m.config.ScreenW, m.config.ScreenH)
		m.current = screenScores
		return m, m.scores.Init()

	case ChoiceStart:
		game, err := registry.Create(m.gameID)
		if err != nil {
			m.deps.Logger.Error("cannot create game", "game", m.gameID, "err", err)
			m.quitting = true
			return m, tea.Quit
		}
		cfg := m.config
		cfg.Seed = seedFor(cfg.Seed)
		m.game = NewGameModel(game, m.deps, cfg)
		m.current = screenGame
		m.deps.Logger.Info("match started", "user", m.username, "seed", cfg.Seed)
		return m, m.game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.current = screenMenu
	m.menu = NewMenuModel(m.config.ScreenW, m.config.ScreenH)
	return m, m.menu.Init()
}

// seedFor keeps a fixed seed for reproducible play and draws a fresh one
// otherwise.
func seedFor(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven flow in the local terminal.
func RunSession(gameID string, deps Deps, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(gameID, deps, cfg, "local"),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
