package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColor(0, 0, "SCORE: 10", core.ColorScore)
	s.DrawTextColor(2, 2, "▟███▙", core.ColorShipBase)
	s.SetColor(11, 1, '│', core.ColorBullet)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, want := range []string{"SCORE: 10", "▟███▙", "│"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorHighlight; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText should not trim, got %q", got)
	}
}
