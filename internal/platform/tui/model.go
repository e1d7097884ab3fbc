package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// snapshotEncoder is implemented by games that can serialize their state for
// storage with a finished match.
type snapshotEncoder interface {
	EncodeSnapshot() ([]byte, error)
}

// GameModel runs one game: it feeds keyboard and mouse input into fixed ticks,
// plays event sounds and records finished matches.
type GameModel struct {
	game     registry.Game
	screen   *core.Screen
	deps     Deps
	config   core.RuntimeConfig
	input    core.InputFrame
	keys     GameKeyMap
	help     help.Model
	state    core.GameState
	saved    bool
	quitting bool
	back     bool
}

// helpRows is the space below the field reserved for the key help line.
const helpRows = 1

// NewGameModel creates a game model and starts a match. The field takes the
// whole window except the help line.
func NewGameModel(game registry.Game, deps Deps, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH -= helpRows
	game.Reset(cfg)

	return GameModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		deps:   deps.withDefaults(),
		config: cfg,
		input:  core.NewInputFrame(),
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		state:  game.State(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the action for the next tick, or leaves the game.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.state.GameOver || m.state.Paused {
			m.back = true
			return m, nil
		}
	}
	m.input.Set(action)
	return m, nil
}

// handleMouse treats the left button as a touch on the field.
func (m *GameModel) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.input.Press(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		m.input.Move(msg.X, msg.Y)
	case tea.MouseActionRelease:
		m.input.Release(msg.X, msg.Y)
	}
}

// handleResize adapts the field to the new window. A running match restarts
// since the field geometry is fixed for its lifetime.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width
	h := msg.Height - helpRows
	if msg.Width == m.config.ScreenW && h == m.config.ScreenH {
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = h
	m.screen.Resize(msg.Width, h)

	if !m.state.GameOver {
		m.game.Reset(m.config)
		m.state = m.game.State()
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.back {
		return m, nil
	}

	result := m.game.Step(m.input)
	m.state = result.State
	m.notify(result.Events)

	switch {
	case m.state.GameOver && !m.saved:
		m.saveMatch()
		m.saved = true
	case !m.state.GameOver:
		m.saved = false
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// notify plays sounds for the tick's events and logs the notable ones.
func (m *GameModel) notify(events []core.Event) {
	if len(events) == 0 {
		return
	}
	audio.PlayEvents(m.deps.Audio, events)

	logger := m.deps.Logger
	for _, e := range events {
		switch e.Kind {
		case core.EventWaveStarted:
			logger.Info("wave started", "wave", e.Value, "score", m.state.Score, "enemies", m.state.Enemies)
		case core.EventNuke:
			logger.Info("nuke fired", "enemies", e.Value, "wave", m.state.Wave)
		case core.EventGameOver:
			logger.Info("game over", "score", e.Value, "wave", m.state.Wave, "kills", m.state.Kills)
		case core.EventPowerUp, core.EventPowerUpExpired, core.EventPlayerHit, core.EventBreach:
			logger.Debug(e.Kind.String(), "value", e.Value, "lives", m.state.Lives)
		}
	}
}

// saveMatch records the finished match. Failures are logged and otherwise ignored.
func (m *GameModel) saveMatch() {
	if m.deps.Store == nil || m.state.Score <= 0 {
		return
	}

	rec := storage.MatchRecord{
		GameID:        m.game.ID(),
		Score:         m.state.Score,
		Wave:          m.state.Wave,
		Kills:         m.state.Kills,
		NukesUsed:     m.state.NukesUsed,
		DurationTicks: m.state.Ticks,
	}
	if enc, ok := m.game.(snapshotEncoder); ok {
		data, err := enc.EncodeSnapshot()
		if err != nil {
			m.deps.Logger.Warn("could not encode final state", "err", err)
		}
		rec.Snapshot = data
	}

	id, err := m.deps.Store.SaveMatch(rec)
	if err != nil {
		m.deps.Logger.Error("could not save match", "err", err)
		return
	}
	m.deps.Logger.Info("match saved", "id", id, "score", rec.Score)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.back
}

// standalone quits the program where a session would return to the menu.
type standalone struct {
	GameModel
}

func (s standalone) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.GameModel.Update(msg)
	s.GameModel = next.(GameModel)
	if s.BackToMenu() {
		return s, tea.Quit
	}
	return s, cmd
}

// Run plays a single game until the user quits.
func Run(game registry.Game, deps Deps, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		standalone{NewGameModel(game, deps, cfg)},
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
