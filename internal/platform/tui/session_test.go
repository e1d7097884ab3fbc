package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func updateSession(s SessionModel, msg tea.Msg) SessionModel {
	next, _ := s.Update(msg)
	return next.(SessionModel)
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	s := NewSessionModel(fakeGameID, Deps{}, modelRuntime, "tester")

	s = updateSession(s, tea.KeyMsg{Type: tea.KeyEnter})
	if s.current != screenMenu {
		t.Fatal("game started before loading finished")
	}
	for i := 0; i < 30 && s.current == screenMenu; i++ {
		s = updateSession(s, menuTickMsg(time.Now()))
	}
	if s.current != screenGame {
		t.Fatalf("screen = %d after loading, expected game", s.current)
	}

	game := s.game.game.(*fakeGame)
	if game.cfg.Seed != modelRuntime.Seed {
		t.Errorf("seed = %d, expected the configured seed", game.cfg.Seed)
	}

	game.state.GameOver = true
	s = updateSession(s, TickMsg{})
	s = updateSession(s, tea.KeyMsg{Type: tea.KeyEscape})
	if s.current != screenMenu {
		t.Errorf("screen = %d, expected menu after leaving the game", s.current)
	}
	if s.menu.Choice() != ChoiceNone {
		t.Error("returning to the menu should start a fresh menu")
	}
}

func TestSessionScoresAndBack(t *testing.T) {
	s := NewSessionModel(fakeGameID, Deps{}, modelRuntime, "tester")

	s = updateSession(s, tea.KeyMsg{Type: tea.KeyDown})
	s = updateSession(s, tea.KeyMsg{Type: tea.KeyEnter})
	if s.current != screenScores {
		t.Fatalf("screen = %d, expected scores", s.current)
	}

	s = updateSession(s, tea.KeyMsg{Type: tea.KeyEscape})
	if s.current != screenMenu {
		t.Errorf("screen = %d, expected menu", s.current)
	}
}

func TestSessionUnknownGameQuits(t *testing.T) {
	s := NewSessionModel("missing", Deps{}, modelRuntime, "tester")

	s = updateSession(s, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 30 && !s.quitting; i++ {
		s = updateSession(s, menuTickMsg(time.Now()))
	}
	if !s.quitting {
		t.Error("a session for an unregistered game should quit")
	}
}

func TestSeedFor(t *testing.T) {
	if seedFor(7) != 7 {
		t.Error("fixed seed should be kept")
	}
	if seedFor(0) == 0 {
		t.Error("zero seed should be replaced")
	}
}
