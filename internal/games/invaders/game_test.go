package invaders

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// breach makes one enemy reach the bottom edge on the next tick.
func breach(g *Game) []core.Event {
	id := addEnemy(g, 5, 10)
	g.sched.Schedule(g.tick+1, TimerEnemyBottom, id, 0)
	return g.Step(idle()).Events
}

func endMatch(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < g.cfg.Player.Lives; i++ {
		breach(g)
	}
	if !g.match.GameOver {
		t.Fatal("match should be over after losing every life")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t)

	state := g.State()
	if state.Score != 0 || state.Wave != 1 || state.Lives != 3 {
		t.Errorf("unexpected initial state: %+v", state)
	}
	if state.GameOver || state.Paused {
		t.Error("new match should be running")
	}
	if !g.match.CanShoot {
		t.Error("ship should be able to shoot at start")
	}

	ship := shipToken(t, g)
	if ship.Pos.X != 40 || ship.Pos.Y != 22 {
		t.Errorf("ship starts at %+v, expected (40, 22)", ship.Pos)
	}

	timer, ok := nextTimer(g.sched, TimerSpawn)
	if !ok {
		t.Fatal("spawner not armed")
	}
	if timer.At != 120 {
		t.Errorf("first spawn at tick %d, expected 120", timer.At)
	}
}

func TestSpawnerCadence(t *testing.T) {
	g := newTestGame(t)

	stepN(g, 120, idle())
	if n := g.arena.Count(CategoryEnemy); n != 1 {
		t.Fatalf("expected 1 enemy after 2s, got %d", n)
	}
	stepN(g, 120, idle())
	if n := g.arena.Count(CategoryEnemy); n != 2 {
		t.Errorf("expected 2 enemies after 4s, got %d", n)
	}
	if n := g.State().Enemies; n != 2 {
		t.Errorf("state reports %d enemies, expected 2", n)
	}

	g.arena.Each(CategoryEnemy, func(e *Token) {
		if e.Pos.X < enemyW || e.Pos.X >= 80-enemyW {
			t.Errorf("enemy x %.2f outside spawn band", e.Pos.X)
		}
		if e.Vel.Y <= 0 {
			t.Errorf("enemy should fall, vel %+v", e.Vel)
		}
	})
}

func TestShotCooldown(t *testing.T) {
	g := newTestGame(t)
	quiet(g)

	in := idle()
	in.Press(40, 20)

	var shots int
	for i := 0; i < 61; i++ {
		shots += countEvents(g.Step(in).Events, core.EventShot)
		in.Clear()
	}
	if shots != 3 {
		t.Errorf("holding the pointer for 61 ticks fired %d shots, expected 3", shots)
	}
	if g.match.CanShoot {
		t.Error("cooldown should be running right after a shot")
	}
}

func TestKeyboardFireDuringCooldownIsDropped(t *testing.T) {
	g := newTestGame(t)
	quiet(g)

	in := idle()
	in.Set(core.ActionFire)

	events := stepN(g, 10, in)
	if n := countEvents(events, core.EventShot); n != 1 {
		t.Errorf("expected one shot, got %d", n)
	}
	if n := countTimers(g, TimerShotReady); n != 1 {
		t.Errorf("requests during cooldown must not queue, found %d ready timers", n)
	}
	if n := g.arena.Count(CategoryProjectile); n != 1 {
		t.Errorf("expected 1 projectile, got %d", n)
	}
}

func TestProjectileExpires(t *testing.T) {
	g := newTestGame(t)
	quiet(g)

	in := idle()
	in.Set(core.ActionFire)
	g.Step(in)

	stepN(g, 59, idle())
	if n := g.arena.Count(CategoryProjectile); n != 1 {
		t.Fatalf("projectile gone early, count %d", n)
	}
	g.Step(idle())
	if n := g.arena.Count(CategoryProjectile); n != 0 {
		t.Errorf("projectile should expire after its trip, count %d", n)
	}
}

func TestMultiShotFiresSpread(t *testing.T) {
	g := newTestGame(t)
	quiet(g)
	g.activatePowerUp(PowerUpMultiShot)

	in := idle()
	in.Set(core.ActionFire)
	res := g.Step(in)

	var shot *core.Event
	for i := range res.Events {
		if res.Events[i].Kind == core.EventShot {
			shot = &res.Events[i]
		}
	}
	if shot == nil || shot.Value != 3 {
		t.Fatalf("expected a 3-projectile shot, got %+v", shot)
	}

	var left, right, straight int
	g.arena.Each(CategoryProjectile, func(p *Token) {
		switch {
		case p.Vel.X < 0:
			left++
		case p.Vel.X > 0:
			right++
		default:
			straight++
		}
		if p.Vel.Y >= 0 {
			t.Errorf("projectile should travel up, vel %+v", p.Vel)
		}
	})
	if left != 1 || right != 1 || straight != 1 {
		t.Errorf("spread left=%d straight=%d right=%d", left, straight, right)
	}
}

func TestInvulnerabilityWindow(t *testing.T) {
	g := newTestGame(t)
	quiet(g)

	g.events = nil
	ram(g)
	if g.match.Lives != 2 {
		t.Fatalf("lives = %d after first hit, expected 2", g.match.Lives)
	}
	if !g.match.Invulnerable {
		t.Fatal("hit should grant invulnerability")
	}
	if countEvents(g.events, core.EventPlayerHit) != 1 {
		t.Error("expected a player hit event")
	}

	ram(g)
	if g.match.Lives != 2 {
		t.Errorf("hit while invulnerable cost a life: lives = %d", g.match.Lives)
	}
	if g.arena.Count(CategoryEnemy) != 0 {
		t.Error("colliding enemy should be destroyed even while invulnerable")
	}

	stepN(g, 119, idle())
	if !g.match.Invulnerable {
		t.Fatal("invulnerability ended early")
	}
	g.Step(idle())
	if g.match.Invulnerable {
		t.Fatal("invulnerability should last exactly 2s")
	}

	ram(g)
	if g.match.Lives != 1 {
		t.Errorf("lives = %d after second hit, expected 1", g.match.Lives)
	}
}

func TestShieldBlocksContact(t *testing.T) {
	g := newTestGame(t)
	quiet(g)
	g.activatePowerUp(PowerUpShield)

	ram(g)
	if g.match.Lives != 3 {
		t.Errorf("shield should absorb contact, lives = %d", g.match.Lives)
	}
	if g.match.Invulnerable {
		t.Error("absorbed contact must not start invulnerability")
	}
}

func TestOtherPowerUpsDoNotProtect(t *testing.T) {
	for _, kind := range []PowerUpType{PowerUpSpeedBoost, PowerUpMultiShot} {
		g := newTestGame(t)
		quiet(g)
		g.activatePowerUp(kind)

		ram(g)
		if g.match.Lives != 2 {
			t.Errorf("%s: lives = %d, expected 2", kind, g.match.Lives)
		}
	}
}

func TestBreachIgnoresShield(t *testing.T) {
	g := newTestGame(t)
	quiet(g)
	g.activatePowerUp(PowerUpShield)

	events := breach(g)
	if g.match.Lives != 2 {
		t.Errorf("breach should cost a life through the shield, lives = %d", g.match.Lives)
	}
	if g.match.Invulnerable {
		t.Error("breach must not grant invulnerability")
	}
	if countEvents(events, core.EventBreach) != 1 {
		t.Error("expected a breach event")
	}
	if g.shakeUntil <= g.tick {
		t.Error("breach should shake the field")
	}

	breach(g)
	if g.match.Lives != 1 {
		t.Errorf("consecutive breaches should each cost a life, lives = %d", g.match.Lives)
	}
}

func TestEnemyFallsToBottom(t *testing.T) {
	g := newTestGame(t)
	quiet(g)

	g.spawnEnemy()
	id := g.arena.IDs(CategoryEnemy)[0]
	e, _ := g.arena.Get(id)
	e.Pos.X = 5 // keep clear of the ship

	stepN(g, 239, idle())
	if !g.arena.Alive(id) {
		t.Fatal("enemy left the field early")
	}
	if g.match.Lives != 3 {
		t.Fatalf("life lost early, lives = %d", g.match.Lives)
	}

	g.Step(idle())
	if g.arena.Alive(id) {
		t.Error("enemy should be removed at the bottom")
	}
	if g.match.Lives != 2 {
		t.Errorf("breach should cost a life, lives = %d", g.match.Lives)
	}
}

func TestGameOverHappensOnce(t *testing.T) {
	g := newTestGame(t)

	var events []core.Event
	for i := 0; i < 5; i++ {
		events = append(events, breach(g)...)
	}

	if n := countEvents(events, core.EventGameOver); n != 1 {
		t.Errorf("game over emitted %d times, expected 1", n)
	}
	if g.match.Lives != 0 {
		t.Errorf("lives = %d, expected 0", g.match.Lives)
	}
	if !g.State().GameOver {
		t.Error("state should report game over")
	}

	if _, ok := nextTimer(g.sched, TimerSpawn); ok {
		t.Error("spawner should stop at game over")
	}

	events = stepN(g, 600, idle())
	if n := g.arena.Count(CategoryEnemy); n != 0 {
		t.Errorf("no enemies may spawn after game over, found %d", n)
	}
	if countEvents(events, core.EventGameOver) != 0 || g.match.Lives != 0 {
		t.Error("game over must be terminal")
	}
}

func TestNoInputAfterGameOver(t *testing.T) {
	g := newTestGame(t)
	endMatch(t, g)
	ship := shipToken(t, g)
	before := ship.Pos

	in := idle()
	in.Set(core.ActionFire)
	in.Set(core.ActionLeft)
	events := stepN(g, 5, in)

	if countEvents(events, core.EventShot) != 0 {
		t.Error("ship fired after game over")
	}
	if ship.Pos != before {
		t.Errorf("ship moved after game over: %+v -> %+v", before, ship.Pos)
	}
}

func TestPowerUpSupersession(t *testing.T) {
	g := newTestGame(t)
	quiet(g)

	g.activatePowerUp(PowerUpSpeedBoost)
	events := stepN(g, 100, idle())
	g.activatePowerUp(PowerUpMultiShot)

	events = append(events, stepN(g, 200, idle())...)
	if g.match.PowerUp != PowerUpMultiShot {
		t.Fatalf("first expiry cleared the newer power-up: %s", g.match.PowerUp)
	}
	if countEvents(events, core.EventPowerUpExpired) != 0 {
		t.Error("superseded power-up must not report expiry")
	}

	events = stepN(g, 100, idle())
	if g.match.PowerUp != PowerUpNone {
		t.Errorf("power-up should expire 5s after its own activation, still %s", g.match.PowerUp)
	}
	if countEvents(events, core.EventPowerUpExpired) != 1 {
		t.Error("expected exactly one expiry")
	}
}

func TestPowerUpExpiresAfterGameOver(t *testing.T) {
	g := newTestGame(t)
	quiet(g)
	g.activatePowerUp(PowerUpShield)

	endMatch(t, g)
	if g.match.PowerUp != PowerUpShield {
		t.Fatal("power-up should survive the end of the match")
	}

	stepN(g, 300, idle())
	if g.match.PowerUp != PowerUpNone {
		t.Errorf("power-up should still expire after game over, got %s", g.match.PowerUp)
	}
}

func TestSpeedBoostMovesFaster(t *testing.T) {
	run := func(boost bool) float64 {
		g := newTestGame(t)
		quiet(g)
		if boost {
			g.activatePowerUp(PowerUpSpeedBoost)
		}
		in := idle()
		in.Set(core.ActionLeft)
		g.Step(in)
		return 40 - shipToken(t, g).Pos.X
	}

	normal, boosted := run(false), run(true)
	if math.Abs(boosted-normal*1.6) > 1e-9 {
		t.Errorf("boosted step %.3f, expected 1.6x of %.3f", boosted, normal)
	}
}

func TestPickupDropAndCollect(t *testing.T) {
	cfg := testConfig()
	cfg.Drops.Chance = 1
	g := NewWithConfig(cfg)
	g.Reset(testRuntime)
	quiet(g)

	shootDown(g)
	if n := g.arena.Count(CategoryPickup); n != 1 {
		t.Fatalf("guaranteed drop produced %d pickups", n)
	}

	ship := shipToken(t, g)
	g.spawnPickup(ship.Pos, PowerUpShield)

	res := g.Step(idle())
	if g.match.PowerUp != PowerUpShield {
		t.Errorf("pickup at the ship should activate, power-up = %s", g.match.PowerUp)
	}
	if countEvents(res.Events, core.EventPowerUp) != 1 {
		t.Error("expected a power-up event")
	}
	if n := g.arena.Count(CategoryPickup); n != 1 {
		t.Errorf("collected pickup should be removed, %d left", n)
	}
}

func TestPickupLeavesField(t *testing.T) {
	g := newTestGame(t)
	quiet(g)
	g.spawnPickup(core.Vec{X: 5, Y: 5}, PowerUpMultiShot)

	stepN(g, 240, idle())
	if n := g.arena.Count(CategoryPickup); n != 0 {
		t.Errorf("uncollected pickup should expire, %d left", n)
	}
	if g.match.PowerUp != PowerUpNone {
		t.Error("missed pickup must not activate")
	}
}

func TestProjectileDoubleHitIsNoop(t *testing.T) {
	g := newTestGame(t)
	quiet(g)

	enemy := addEnemy(g, 10, 5)
	a := g.arena.Spawn(CategoryProjectile, core.Vec{X: 10, Y: 5}, core.Vec{}, projectileW, projectileH, 0)
	b := g.arena.Spawn(CategoryProjectile, core.Vec{X: 10, Y: 5}, core.Vec{}, projectileW, projectileH, 0)

	g.dispatch(CollisionEvent{KindA: CategoryProjectile, KindB: CategoryEnemy, TokenA: a.ID, TokenB: enemy})
	g.dispatch(CollisionEvent{KindA: CategoryProjectile, KindB: CategoryEnemy, TokenA: b.ID, TokenB: enemy})

	if g.match.Score != 10 || g.match.Kills != 1 {
		t.Errorf("score = %d kills = %d, expected 10 and 1", g.match.Score, g.match.Kills)
	}
	if !g.arena.Alive(b.ID) {
		t.Error("second projectile should survive a destroyed target")
	}
}

func TestCollisionDetectedDuringStep(t *testing.T) {
	g := newTestGame(t)
	quiet(g)

	addEnemy(g, 40, 12)
	in := idle()
	in.Set(core.ActionFire)
	events := stepN(g, 30, in)

	if countEvents(events, core.EventEnemyDestroyed) != 1 {
		t.Fatal("projectile should destroy the enemy above the ship")
	}
	if g.arena.Count(CategoryProjectile) != 0 {
		t.Error("projectile should be consumed by the hit")
	}
	if g.match.Score != 10 {
		t.Errorf("score = %d, expected 10", g.match.Score)
	}
}

func TestNuke(t *testing.T) {
	g := newTestGame(t)
	quiet(g)
	for i := 0; i < 17; i++ {
		shootDown(g)
	}
	if !g.match.NukeAvailable {
		t.Fatal("nuke should be charged at 7 kills in wave 2")
	}

	for i := 0; i < 3; i++ {
		addEnemy(g, float64(10+10*i), 8)
	}
	in := idle()
	in.Set(core.ActionNuke)
	res := g.Step(in)

	m := g.Match()
	if m.Score != 370+15 {
		t.Errorf("score = %d, expected 385", m.Score)
	}
	if m.NukeAvailable || m.NukesUsed != 1 {
		t.Errorf("nuke should be spent: available=%v used=%d", m.NukeAvailable, m.NukesUsed)
	}
	if m.DestroyedInWave != 10 {
		t.Errorf("nuked enemies should count toward the wave, got %d", m.DestroyedInWave)
	}
	if g.arena.Count(CategoryEnemy) != 0 {
		t.Error("nuke should clear every enemy")
	}
	var cleared int
	for _, e := range res.Events {
		if e.Kind == core.EventNuke {
			cleared = e.Value
		}
	}
	if cleared != 3 {
		t.Errorf("nuke event reported %d enemies, expected 3", cleared)
	}
	if !g.fx.Active(FxNukeFlash) {
		t.Error("nuke should flash the field")
	}
}

func TestNukeUnavailableIsNoop(t *testing.T) {
	g := newTestGame(t)
	quiet(g)
	addEnemy(g, 10, 8)

	in := idle()
	in.Set(core.ActionNuke)
	res := g.Step(in)

	if countEvents(res.Events, core.EventNuke) != 0 || g.match.NukesUsed != 0 {
		t.Error("nuke without a charge must do nothing")
	}
	if g.arena.Count(CategoryEnemy) != 1 {
		t.Error("enemy should survive")
	}
}

func TestNukeOverflowAdvancesWave(t *testing.T) {
	g := newTestGame(t)
	quiet(g)
	for i := 0; i < 17; i++ {
		shootDown(g)
	}
	for i := 0; i < 10; i++ {
		addEnemy(g, float64(5+7*i), 8)
	}

	g.fireNuke()

	m := g.Match()
	if m.Wave != 3 {
		t.Fatalf("wave = %d, expected 3", m.Wave)
	}
	if m.DestroyedInWave != 3 {
		t.Errorf("overflow kills should carry into wave 3, got %d", m.DestroyedInWave)
	}
	if want := 370 + 10*5 + 300; m.Score != want {
		t.Errorf("score = %d, expected %d", m.Score, want)
	}
}

func TestNukeButtonTap(t *testing.T) {
	g := newTestGame(t)
	quiet(g)
	for i := 0; i < 17; i++ {
		shootDown(g)
	}
	addEnemy(g, 20, 8)
	before := shipToken(t, g).Pos

	btn := g.nukeRect()
	in := idle()
	in.Press(btn.X+1, btn.Y)
	events := g.Step(in).Events
	in.Clear()
	events = append(events, stepN(g, 5, in)...)

	if g.match.NukesUsed != 1 {
		t.Fatal("tapping the nuke button should fire the nuke")
	}
	if countEvents(events, core.EventShot) != 0 {
		t.Error("the nuke tap must not fire")
	}
	if shipToken(t, g).Pos != before {
		t.Error("the nuke tap must not steer the ship")
	}

	in.Release(btn.X+1, btn.Y)
	g.Step(in)
	in.Press(40, 20)
	events = g.Step(in).Events
	if countEvents(events, core.EventShot) != 1 {
		t.Error("a fresh press after release should fire again")
	}
}

func TestShipClamp(t *testing.T) {
	g := newTestGame(t)
	quiet(g)

	in := idle()
	in.Press(0, 1)
	stepN(g, 200, in)

	ship := shipToken(t, g)
	if math.Abs(ship.Pos.X-2.5) > 1e-9 {
		t.Errorf("ship x = %.3f, expected 2.5", ship.Pos.X)
	}
	if math.Abs(ship.Pos.Y-6.6) > 1e-9 {
		t.Errorf("ship y = %.3f, expected to stop at the ceiling (6.6)", ship.Pos.Y)
	}

	right := idle()
	right.Set(core.ActionRight)
	right.Set(core.ActionDown)
	stepN(g, 100, right)
	if math.Abs(ship.Pos.X-77.5) > 1e-9 || math.Abs(ship.Pos.Y-23) > 1e-9 {
		t.Errorf("ship at %+v, expected (77.5, 23)", ship.Pos)
	}
}

func TestPointerSpeedLimit(t *testing.T) {
	g := newTestGame(t)
	quiet(g)

	in := idle()
	in.Press(0, 22)
	g.Step(in)

	pos := shipToken(t, g).Pos
	if got := math.Hypot(pos.X-40, pos.Y-22); math.Abs(got-1) > 1e-9 {
		t.Errorf("ship moved %.3f cells in one tick, expected 1", got)
	}
}

func TestRestart(t *testing.T) {
	tests := []struct {
		name  string
		input func(g *Game) core.InputFrame
	}{
		{"restart key", func(*Game) core.InputFrame {
			in := idle()
			in.Set(core.ActionRestart)
			return in
		}},
		{"confirm key", func(*Game) core.InputFrame {
			in := idle()
			in.Set(core.ActionConfirm)
			return in
		}},
		{"tap", func(g *Game) core.InputFrame {
			in := idle()
			x, y := g.restartRect().Center()
			in.Press(x, y)
			return in
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			shootDown(g)
			g.activatePowerUp(PowerUpMultiShot)
			endMatch(t, g)

			g.Step(tt.input(g))

			state := g.State()
			if state.GameOver || state.Score != 0 || state.Lives != 3 || state.Wave != 1 || state.Ticks != 0 {
				t.Errorf("match not restarted: %+v", state)
			}
			if g.match.PowerUp != PowerUpNone {
				t.Error("power-up should not survive a restart")
			}
			if _, ok := nextTimer(g.sched, TimerPowerUpExpire); ok {
				t.Error("old expiry timer should be dropped")
			}
			if _, ok := nextTimer(g.sched, TimerSpawn); !ok {
				t.Error("spawner should be re-armed")
			}
		})
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t)
	quiet(g)
	shootDown(g)

	in := idle()
	in.Set(core.ActionRestart)
	g.Step(in)

	if g.match.Score != 10 {
		t.Error("restart key must not reset a running match")
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t)

	pause := idle()
	pause.Set(core.ActionPause)

	if !g.Step(pause).State.Paused {
		t.Fatal("pause key should pause")
	}
	stepN(g, 300, idle())
	if g.tick != 0 {
		t.Errorf("paused game advanced to tick %d", g.tick)
	}

	res := g.Step(pause)
	if res.State.Paused || res.State.Ticks != 1 {
		t.Errorf("unpause should resume on the same tick: %+v", res.State)
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := NewWithConfig(testConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	if res := g.Step(idle()); res.State.Ticks != 0 {
		t.Error("simulation should not run on a too-small screen")
	}

	scr := core.NewScreen(20, 10)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Window too small") {
		t.Errorf("expected a size warning, got:\n%s", scr.String())
	}
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t)
	g.activatePowerUp(PowerUpSpeedBoost)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	hud := scr.Row(0)

	for _, want := range []string{"SCORE: 0", "WAVE 1", "▲▲▲", NukeLabel, "SPEED 5s"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if !strings.Contains(scr.String(), "▟███▙") {
		t.Error("ship not drawn")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t)
	endMatch(t, g)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if strings.Contains(scr.String(), "GAME OVER") {
		t.Error("game over text should fade in after a delay")
	}

	stepN(g, 30, idle())
	scr.Clear()
	g.Render(scr)
	out := scr.String()
	for _, want := range []string{"GAME OVER", "Final Score: 0", RestartLabel} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 1200)
	for i := range inputs {
		in := idle()
		switch {
		case i%90 == 0:
			in.Press(10+(i*7)%60, 18)
		case i%90 < 60:
			in.Pointer = core.Pointer{X: 10 + (i*7)%60, Y: 18, Active: true, Held: true}
		case i%90 == 60:
			in.Release(10+(i*7)%60, 18)
		}
		if i%45 == 0 {
			in.Set(core.ActionNuke)
		}
		inputs[i] = in
	}

	run := func(seed int64) Snapshot {
		g := NewWithConfig(config.DefaultInvadersConfig())
		rt := testRuntime
		rt.Seed = seed
		g.Reset(rt)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(42), run(42)
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Match != snap2.Match {
		t.Errorf("Determinism failed: match state differs.\n%+v\n%+v", snap1.Match, snap2.Match)
	}

	other := run(7)
	if other.Hash() == snap1.Hash() {
		t.Error("different seeds should produce different matches")
	}
}

func TestSnapshotEncoding(t *testing.T) {
	g := newTestGame(t)
	stepN(g, 300, idle())
	g.activatePowerUp(PowerUpShield)

	snap := g.Snapshot()
	if snap.Enemies() == 0 {
		t.Fatal("expected live enemies in snapshot")
	}
	for _, tm := range snap.Timers {
		if tm.Kind == TimerEffectEnd {
			t.Error("visual timers must not be part of the snapshot")
		}
	}

	data, err := g.EncodeSnapshot()
	if err != nil {
		t.Fatalf("EncodeSnapshot failed: %v", err)
	}
	decoded, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot failed: %v", err)
	}
	if decoded.Hash() != snap.Hash() {
		t.Error("decoded snapshot hash differs")
	}
	if decoded.Match.PowerUp != PowerUpShield || decoded.Enemies() != snap.Enemies() {
		t.Errorf("decoded snapshot lost state: %+v", decoded.Match)
	}

	if _, err := DecodeSnapshot([]byte{0xc1}); err == nil {
		t.Error("expected an error for invalid data")
	}
}

func TestSnapshotKeepsTokenShapeAndPointerLatch(t *testing.T) {
	g := newTestGame(t)
	quiet(g)
	stepN(g, 5, idle())
	id := addEnemy(g, 20, 6)
	g.pointerSpent = true

	data, err := g.EncodeSnapshot()
	if err != nil {
		t.Fatalf("EncodeSnapshot failed: %v", err)
	}
	snap, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot failed: %v", err)
	}

	if !snap.PointerSpent {
		t.Error("expected the spent pointer latch to be captured")
	}
	if snap.NextToken != id {
		t.Errorf("expected next token %d, got %d", id, snap.NextToken)
	}
	var found bool
	for _, ts := range snap.Tokens {
		if ts.ID != id {
			continue
		}
		found = true
		if ts.W != enemyW || ts.H != enemyH || ts.Born != 5 {
			t.Errorf("token shape lost: %+v", ts)
		}
	}
	if !found {
		t.Fatalf("token %d missing from snapshot", id)
	}
}
