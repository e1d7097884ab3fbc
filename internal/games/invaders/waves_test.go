package invaders

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestEnemiesPerWave(t *testing.T) {
	cfg := config.DefaultInvadersConfig().Waves

	tests := []struct {
		wave int
		want int
	}{
		{2, 14},
		{3, 16},
		{5, 20},
		{9, 28},
		{10, 30},
		{11, 30},
		{100, 30},
	}
	for _, tt := range tests {
		if got := EnemiesPerWave(cfg, tt.wave); got != tt.want {
			t.Errorf("EnemiesPerWave(%d) = %d, expected %d", tt.wave, got, tt.want)
		}
	}

	prev := 0
	for w := 1; w <= 40; w++ {
		n := EnemiesPerWave(cfg, w)
		if n < prev {
			t.Errorf("wave size decreased at wave %d: %d < %d", w, n, prev)
		}
		if n > 30 {
			t.Errorf("wave size %d above cap at wave %d", n, w)
		}
		prev = n
	}
}

func TestSpawnInterval(t *testing.T) {
	cfg := config.DefaultInvadersConfig().Waves

	tests := []struct {
		wave int
		want float64
	}{
		{1, 2.0},
		{2, 1.9},
		{11, 1.0},
		{16, 0.5},
		{40, 0.5},
	}
	for _, tt := range tests {
		got := SpawnInterval(cfg, tt.wave)
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("SpawnInterval(%d) = %v, expected %v", tt.wave, got, tt.want)
		}
	}
}

func TestZeroSpawnIntervalSpawnsOncePerTick(t *testing.T) {
	cfg := testConfig()
	cfg.Waves.SpawnBase = 0
	cfg.Waves.SpawnMinimum = 0
	g := NewWithConfig(cfg)
	g.Reset(testRuntime)

	done := make(chan struct{})
	go func() {
		stepN(g, 3, idle())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Step did not return with a zero spawn interval")
	}

	if n := g.arena.Count(CategoryEnemy); n != 3 {
		t.Errorf("expected one enemy per tick, got %d after 3 ticks", n)
	}
	if n := countTimers(g, TimerSpawn); n != 1 {
		t.Errorf("expected exactly one spawn timer, got %d", n)
	}
	if timer, ok := nextTimer(g.sched, TimerSpawn); !ok || timer.At != g.tick+1 {
		t.Errorf("next spawn = %+v, expected tick %d", timer, g.tick+1)
	}
}

func TestWaveOneClearScenario(t *testing.T) {
	g := newTestGame(t)
	quiet(g)

	if g.match.PerWave != 10 {
		t.Fatalf("fresh match wave size = %d, expected 10", g.match.PerWave)
	}

	for i := 0; i < 10; i++ {
		shootDown(g)
	}

	m := g.Match()
	if m.Wave != 2 {
		t.Errorf("wave = %d, expected 2", m.Wave)
	}
	if m.PerWave != 14 {
		t.Errorf("per wave = %d, expected 14", m.PerWave)
	}
	if m.Score != 10*10+200 {
		t.Errorf("score = %d, expected 300", m.Score)
	}
	if m.DestroyedInWave != 0 {
		t.Errorf("destroyed counter not reset: %d", m.DestroyedInWave)
	}
	if m.NukeAvailable {
		t.Error("nuke must not charge during wave 1")
	}
}

func TestWaveAdvanceReschedulesSpawner(t *testing.T) {
	g := newTestGame(t)

	for i := 0; i < 10; i++ {
		shootDown(g)
	}

	timer, ok := nextTimer(g.sched, TimerSpawn)
	if !ok {
		t.Fatal("spawner missing after wave advance")
	}
	if want := g.tick + g.ticks(1.9); timer.At != want {
		t.Errorf("next spawn at %d, expected %d", timer.At, want)
	}
	if n := countTimers(g, TimerSpawn); n != 1 {
		t.Errorf("expected exactly one spawn timer, got %d", n)
	}
}

func TestNukeChargesOnceAtHalfWave(t *testing.T) {
	g := newTestGame(t)
	quiet(g)

	for i := 0; i < 10; i++ {
		shootDown(g)
	}

	var ready int
	for i := 1; i <= 13; i++ {
		g.events = nil
		shootDown(g)
		ready += countEvents(g.events, core.EventNukeReady)
		if i < 7 && g.match.NukeAvailable {
			t.Fatalf("nuke available after %d kills, expected at 7", i)
		}
		if i >= 7 && !g.match.NukeAvailable {
			t.Fatalf("nuke should stay available after %d kills", i)
		}
	}
	if ready != 1 {
		t.Errorf("nuke ready notified %d times, expected 1", ready)
	}

	shootDown(g) // 14th kill ends wave 2
	m := g.Match()
	if m.Wave != 3 || m.PerWave != 16 {
		t.Errorf("wave = %d per wave = %d, expected 3 and 16", m.Wave, m.PerWave)
	}
	if want := 300 + 14*10 + 300; m.Score != want {
		t.Errorf("score = %d, expected %d", m.Score, want)
	}
	if !m.NukeAvailable {
		t.Error("unused nuke must carry into the next wave")
	}
}

func countTimers(g *Game, kind TimerKind) int {
	n := 0
	for _, t := range g.sched.Pending() {
		if t.Kind == kind {
			n++
		}
	}
	return n
}
