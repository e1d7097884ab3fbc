package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// LoadingDuration is the length of the menu-to-game transition.
const LoadingDuration = 800 * time.Millisecond

// menuFrameRate drives the title animation and the loading bar.
const menuFrameRate = 30

// MenuChoice is what the player picked on the title menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceStart
	ChoiceScores
	ChoiceQuit
)

var menuItems = []struct {
	label  string
	choice MenuChoice
}{
	{"START GAME", ChoiceStart},
	{"HIGH SCORES", ChoiceScores},
	{"QUIT", ChoiceQuit},
}

// menuTickMsg advances the menu animation.
type menuTickMsg time.Time

func menuTickCmd() tea.Cmd {
	return tea.Tick(tickInterval(menuFrameRate), func(t time.Time) tea.Msg {
		return menuTickMsg(t)
	})
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hexScore))
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(hexShipAccent))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hexHighlight))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the title screen. Choosing START GAME plays the loading
// transition and ignores all input until it completes.
type MenuModel struct {
	cursor  int
	width   int
	height  int
	frame   int
	keys    MenuKeyMap
	help    help.Model
	loading *core.Loading
	bar     progress.Model
	choice  MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(width, height int) MenuModel {
	bar := progress.New(
		progress.WithGradient(hexShipBase, hexHighlight),
		progress.WithoutPercentage(),
	)
	bar.Width = 30

	return MenuModel{
		width:   width,
		height:  height,
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
		loading: core.NewLoading(LoadingDuration),
		bar:     bar,
	}
}

// Init starts the animation clock.
func (m MenuModel) Init() tea.Cmd {
	return menuTickCmd()
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case menuTickMsg:
		m.frame++
		if m.loading.Advance(tickInterval(menuFrameRate)) {
			m.choice = ChoiceStart
			return m, nil
		}
		return m, menuTickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	if m.loading.Running() || m.choice != ChoiceNone {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.choice = ChoiceQuit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.activate(m.cursor)
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i, ok := m.itemAt(msg.X, msg.Y); ok {
				m.cursor = i
				m.activate(i)
			}
		}
	}

	return m, nil
}

func (m *MenuModel) activate(i int) {
	if menuItems[i].choice == ChoiceStart {
		m.loading.Start()
		return
	}
	m.choice = menuItems[i].choice
}

// itemRow returns the screen row of menu item i.
func (m MenuModel) itemRow(i int) int {
	return m.height/2 + 2*i
}

// itemAt hit-tests a click against the centered item labels, padded by two
// cells on each side.
func (m MenuModel) itemAt(x, y int) (int, bool) {
	for i, item := range menuItems {
		if y != m.itemRow(i) {
			continue
		}
		w := len(item.label) + 4
		left := (m.width-w)/2 - 2
		if x >= left && x < left+w+4 {
			return i, true
		}
	}
	return 0, false
}

// titleOffset makes the title float up and down once per second.
func (m MenuModel) titleOffset() int {
	if (m.frame/(menuFrameRate/2))%2 == 1 {
		return 1
	}
	return 0
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == ChoiceQuit {
		return ""
	}

	lines := make([]string, max(m.height, 1))
	put := func(row int, s string) {
		if row >= 0 && row < len(lines) {
			lines[row] = centerText(s, m.width)
		}
	}

	top := max(m.height/2-7, 0) + m.titleOffset()
	put(top, titleStyle.Render("S P A C E"))
	put(top+2, titleStyle.Render("I N V A D E R S"))

	if m.loading.Running() || m.choice == ChoiceStart {
		put(m.itemRow(0), itemStyle.Render(fmt.Sprintf("LOADING... %d%%", m.loading.Percent())))
		put(m.itemRow(1), m.bar.ViewAs(m.loading.Progress()))
	} else {
		for i, item := range menuItems {
			label := "  " + item.label + "  "
			if i == m.cursor {
				put(m.itemRow(i), selectedStyle.Render("> "+item.label+" <"))
			} else {
				put(m.itemRow(i), itemStyle.Render(label))
			}
		}
		put(m.height-2, dimStyle.Render(m.help.View(m.keys)))
	}

	return strings.Join(lines, "\n")
}

// Choice returns the player's pick, or ChoiceNone while still on the menu.
// ChoiceStart is reported only once the loading transition has finished.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Loading returns the transition state.
func (m MenuModel) Loading() *core.Loading {
	return m.loading
}
