package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     42,
}

// testConfig is the default config without random drops.
func testConfig() config.InvadersConfig {
	cfg := config.DefaultInvadersConfig()
	cfg.Drops.Chance = 0
	return cfg
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(testConfig())
	g.Reset(testRuntime)
	return g
}

// quiet stops the spawner so scripted scenarios are not disturbed.
func quiet(g *Game) {
	g.sched.CancelKind(TimerSpawn)
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func stepN(g *Game, n int, in core.InputFrame) []core.Event {
	var events []core.Event
	for i := 0; i < n; i++ {
		events = append(events, g.Step(in).Events...)
	}
	return events
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// addEnemy places a motionless enemy with no bottom timer.
func addEnemy(g *Game, x, y float64) TokenID {
	return g.arena.Spawn(CategoryEnemy, core.Vec{X: x, Y: y}, core.Vec{}, enemyW, enemyH, g.tick).ID
}

// shootDown resolves one projectile kill away from the ship.
func shootDown(g *Game) {
	enemy := addEnemy(g, 10, 5)
	shot := g.arena.Spawn(CategoryProjectile, core.Vec{X: 10, Y: 5}, core.Vec{}, projectileW, projectileH, g.tick)
	g.dispatch(CollisionEvent{KindA: CategoryProjectile, KindB: CategoryEnemy, TokenA: shot.ID, TokenB: enemy})
}

// ram resolves an enemy hitting the ship.
func ram(g *Game) {
	enemy := addEnemy(g, 40, 20)
	g.dispatch(CollisionEvent{KindA: CategoryEnemy, KindB: CategoryPlayer, TokenA: enemy, TokenB: g.player})
}

func shipToken(t *testing.T, g *Game) *Token {
	t.Helper()
	ship, ok := g.arena.Get(g.player)
	if !ok {
		t.Fatal("ship token missing")
	}
	return ship
}

// nextTimer returns the earliest pending timer of kind.
func nextTimer(s *Scheduler, kind TimerKind) (Timer, bool) {
	for _, t := range s.Pending() {
		if t.Kind == kind {
			return t, true
		}
	}
	return Timer{}, false
}
