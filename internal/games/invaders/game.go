// Package invaders implements a single-player arcade shooter: the ship follows
// the pointer and fires upward while waves of enemies fall toward the bottom
// of the field.
package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// GameID is the registry and storage identifier of the game.
const GameID = "invaders"

// Hitbox sizes in cells.
const (
	enemyW      = 3.0
	enemyH      = 1.0
	projectileW = 1.0
	projectileH = 1.0
	pickupW     = 1.0
	pickupH     = 1.0
)

// Smallest playable terminal.
const (
	minScreenW = 30
	minScreenH = 15
)

// keyboardStep is the fraction of one second of ship travel applied per
// arrow-key event.
const keyboardStep = 1.0 / 20

// multiShotSpread is the sideways speed of the diagonal MultiShot projectiles
// relative to their upward speed.
const multiShotSpread = 0.35

// configPath stores the custom config path set via CLI.
var configPath string

// difficultyPreset stores the difficulty preset set via CLI.
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path used by Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the invaders game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.InvadersConfig
	fixedCfg   bool
	difficulty *config.DifficultyManager
	rng        *SimpleRNG

	match  Match
	arena  *Arena
	sched  *Scheduler
	fx     *Effects
	player TokenID

	tick       int
	paused     bool
	shakeUntil int
	events     []core.Event

	// pointerSpent marks a pointer hold whose press was used by a HUD button.
	pointerSpent bool

	fieldTop       int
	fieldH         int
	screenTooSmall bool
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game bound to cfg, skipping file lookup.
func NewWithConfig(cfg config.InvadersConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Config returns the configuration in use.
func (g *Game) Config() config.InvadersConfig {
	return g.cfg
}

// Reset loads configuration and starts a fresh match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.LoadInvaders(configPath)
		if err != nil {
			cfg = config.DefaultInvadersConfig()
		}
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = NewSimpleRNG(runtime.Seed)

	g.fieldTop = 1 // HUD row
	g.fieldH = runtime.ScreenH - g.fieldTop
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	g.paused = false

	g.startMatch()
}

// startMatch throws away every token, timer and effect and begins wave 1.
// The RNG carries on so consecutive matches differ.
func (g *Game) startMatch() {
	g.tick = 0
	g.shakeUntil = 0
	g.pointerSpent = false
	g.arena = NewArena()
	g.sched = NewScheduler()
	g.fx = &Effects{}
	g.match = newMatch(g.cfg.Player.Lives, g.cfg.Waves.BaseEnemies)

	w, h := float64(g.cfg.Player.Width), float64(g.cfg.Player.Height)
	start := core.Vec{X: float64(g.runtime.ScreenW) / 2, Y: float64(g.runtime.ScreenH) - h/2 - 1}
	g.player = g.arena.Spawn(CategoryPlayer, start, core.Vec{}, w, h, 0).ID

	g.armSpawner()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.match.GameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.match.GameOver && g.wantsRestart(in) {
		g.startMatch()
		return core.StepResult{State: g.State(), Events: g.events}
	}

	g.tick++

	g.runTimers()
	if !g.match.GameOver {
		g.handleInput(in)
	}
	g.arena.Move()
	if !g.match.GameOver {
		g.resolveCollisions()
	}
	g.arena.Compact()

	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) wantsRestart(in core.InputFrame) bool {
	if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
		return true
	}
	p := in.Pointer
	return p.Pressed && g.restartRect().Contains(p.X, p.Y)
}

// handleInput moves the ship, triggers the nuke and fires.
func (g *Game) handleInput(in core.InputFrame) {
	p := in.Pointer
	if !p.Held {
		g.pointerSpent = false
	}

	if in.Has(core.ActionNuke) {
		g.fireNuke()
	}
	if p.Pressed && g.match.NukeAvailable && g.nukeRect().Contains(p.X, p.Y) {
		g.fireNuke()
		g.pointerSpent = true
	}

	ship, ok := g.arena.Get(g.player)
	if !ok {
		return
	}

	speed := g.shipSpeed()
	touching := p.Held && !g.pointerSpent
	if touching {
		target := g.clampShip(core.Vec{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5}, ship)
		ship.Pos = approach(ship.Pos, target, speed/float64(g.tickRate()))
	}

	step := speed * keyboardStep
	var nudge core.Vec
	if in.Has(core.ActionLeft) {
		nudge.X -= step
	}
	if in.Has(core.ActionRight) {
		nudge.X += step
	}
	if in.Has(core.ActionUp) {
		nudge.Y -= step / 2
	}
	if in.Has(core.ActionDown) {
		nudge.Y += step / 2
	}
	ship.Pos = g.clampShip(ship.Pos.Add(nudge), ship)

	if touching || in.Has(core.ActionFire) {
		g.shoot(ship)
	}
}

// clampShip keeps the ship inside the field and below the ceiling.
func (g *Game) clampShip(v core.Vec, ship *Token) core.Vec {
	w := float64(g.runtime.ScreenW)
	bottom := float64(g.runtime.ScreenH)
	ceiling := float64(g.fieldTop) + g.cfg.Player.CeilingPct*float64(g.fieldH)
	return core.Vec{
		X: core.ClampF(v.X, ship.W/2, w-ship.W/2),
		Y: core.ClampF(v.Y, ceiling+ship.H/2, bottom-ship.H/2),
	}
}

// approach moves from toward to by at most maxStep.
func approach(from, to core.Vec, maxStep float64) core.Vec {
	dx, dy := to.X-from.X, to.Y-from.Y
	dist := dx*dx + dy*dy
	if dist <= maxStep*maxStep {
		return to
	}
	k := maxStep / math.Sqrt(dist)
	return core.Vec{X: from.X + dx*k, Y: from.Y + dy*k}
}

func (g *Game) shipSpeed() float64 {
	if g.match.PowerUp == PowerUpSpeedBoost {
		return g.cfg.Player.Speed * g.cfg.Drops.SpeedBoost
	}
	return g.cfg.Player.Speed
}

func (g *Game) tickRate() int {
	if g.runtime.TickRate <= 0 {
		return 60
	}
	return g.runtime.TickRate
}

func (g *Game) ticks(seconds float64) int {
	return g.runtime.Ticks(seconds)
}

// periodTicks converts a travel time or repeat interval. The result is at
// least one tick.
func (g *Game) periodTicks(seconds float64) int {
	return max(1, g.ticks(seconds))
}

func (g *Game) emit(kind core.EventKind, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value})
}

// shoot fires when the cooldown allows it. Requests during cooldown are dropped.
func (g *Game) shoot(ship *Token) {
	if !g.match.CanShoot || g.match.GameOver {
		return
	}

	trip := g.periodTicks(g.cfg.Timing.ProjectileTrip)
	vy := -float64(g.fieldH) / float64(trip)
	nose := core.Vec{X: ship.Pos.X, Y: ship.Pos.Y - ship.H/2 - projectileH/2}

	vels := []core.Vec{{X: 0, Y: vy}}
	if g.match.PowerUp == PowerUpMultiShot {
		spread := -vy * multiShotSpread
		vels = append(vels, core.Vec{X: -spread, Y: vy}, core.Vec{X: spread, Y: vy})
	}
	for _, v := range vels {
		t := g.arena.Spawn(CategoryProjectile, nose, v, projectileW, projectileH, g.tick)
		g.sched.Schedule(g.tick+trip, TimerTokenExpire, t.ID, 0)
	}

	g.match.CanShoot = false
	g.sched.Schedule(g.tick+g.ticks(g.cfg.Timing.ShotCooldown), TimerShotReady, 0, 0)
	g.emit(core.EventShot, len(vels))
}

func (g *Game) spawnEnemy() {
	if g.match.GameOver {
		return
	}
	w := float64(g.runtime.ScreenW)
	x := g.rng.Range(enemyW, w-enemyW)
	start := core.Vec{X: x, Y: float64(g.fieldTop) - enemyH/2}

	fall := g.periodTicks(g.difficulty.FallTime(g.cfg.Timing.EnemyFall, g.match.Wave))
	distance := float64(g.fieldH) + enemyH
	t := g.arena.Spawn(CategoryEnemy, start, core.Vec{Y: distance / float64(fall)}, enemyW, enemyH, g.tick)
	g.sched.Schedule(g.tick+fall, TimerEnemyBottom, t.ID, 0)
}

// runTimers fires every timer due this tick.
func (g *Game) runTimers() {
	for {
		t, ok := g.sched.PopDue(g.tick)
		if !ok {
			return
		}
		switch t.Kind {
		case TimerSpawn:
			g.spawnEnemy()
			g.sched.Schedule(g.tick+g.spawnTicks(), TimerSpawn, 0, 0)
		case TimerShotReady:
			g.match.CanShoot = true
		case TimerInvulnerableEnd:
			g.match.Invulnerable = false
		case TimerPowerUpExpire:
			g.expirePowerUp(t.Arg)
		case TimerEnemyBottom:
			if g.arena.Destroy(t.Token) {
				g.enemyReachedBottom()
			}
		case TimerTokenExpire:
			g.arena.Destroy(t.Token)
		case TimerEffectEnd:
			g.fx.remove(t.Arg)
		}
	}
}

// addEffect shows a visual overlay for the given number of seconds.
func (g *Game) addEffect(kind EffectKind, pos core.Vec, text, sub string, seconds float64) {
	end := g.tick + g.ticks(seconds)
	id := g.fx.add(Effect{Kind: kind, Pos: pos, Text: text, Sub: sub, Start: g.tick, End: end})
	g.sched.Schedule(end, TimerEffectEnd, 0, id)
}

func (g *Game) enemyReachedBottom() {
	if g.match.GameOver {
		return
	}
	g.emit(core.EventBreach, g.match.Lives-1)
	g.addEffect(FxBreach, core.Vec{}, "", "", breachSeconds)
	g.shakeUntil = g.tick + g.ticks(shakeSeconds)
	g.loseLife()
}

// loseLife applies one life of damage and ends the match at zero.
func (g *Game) loseLife() {
	if g.match.loseLife(g.tick) {
		g.gameOver()
	}
}

// gameOver stops gameplay timers and discards in-flight enemies. Projectiles
// and pickups drift off, and a running power-up still expires on schedule.
func (g *Game) gameOver() {
	g.sched.CancelKind(TimerSpawn, TimerShotReady, TimerInvulnerableEnd, TimerEnemyBottom)
	for _, id := range g.arena.IDs(CategoryEnemy) {
		g.arena.Destroy(id)
	}
	g.emit(core.EventGameOver, g.match.Score)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.match.Score,
		Wave:      g.match.Wave,
		Lives:     g.match.Lives,
		Kills:     g.match.Kills,
		NukesUsed: g.match.NukesUsed,
		Ticks:     g.tick,
		Enemies:   g.arena.Count(CategoryEnemy),
		GameOver:  g.match.GameOver,
		Paused:    g.paused,
	}
}

// Match returns a copy of the match state.
func (g *Game) Match() Match {
	return g.match
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
