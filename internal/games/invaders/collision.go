package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// CollisionEvent reports that two tokens touched during the current tick.
type CollisionEvent struct {
	KindA, KindB   Category
	TokenA, TokenB TokenID
}

// token returns the ID of the side whose category is cat.
func (e CollisionEvent) token(cat Category) TokenID {
	if e.KindA == cat {
		return e.TokenA
	}
	return e.TokenB
}

// collisionHandler resolves one contact. Handlers must tolerate tokens that
// were destroyed earlier in the same tick.
type collisionHandler func(g *Game, e CollisionEvent)

// collisionHandlers is keyed by the unordered category pair (KindA | KindB).
var collisionHandlers = map[Category]collisionHandler{
	CategoryEnemy | CategoryPlayer:     (*Game).onEnemyHitsPlayer,
	CategoryProjectile | CategoryEnemy: (*Game).onProjectileHitsEnemy,
	CategoryPickup | CategoryPlayer:    (*Game).onPickupCollected,
}

// detectCollisions runs the AABB sweep and returns contacts in a stable order:
// each enemy against the ship, then against projectiles, then pickups against the ship.
func (g *Game) detectCollisions() []CollisionEvent {
	var out []CollisionEvent
	ship, shipAlive := g.arena.Get(g.player)

	var projectiles []*Token
	g.arena.Each(CategoryProjectile, func(t *Token) { projectiles = append(projectiles, t) })

	g.arena.Each(CategoryEnemy, func(enemy *Token) {
		box := enemy.Swept()
		if shipAlive && box.Intersects(ship.Box()) {
			out = append(out, CollisionEvent{KindA: CategoryEnemy, KindB: CategoryPlayer, TokenA: enemy.ID, TokenB: ship.ID})
		}
		for _, p := range projectiles {
			if p.Swept().Intersects(box) {
				out = append(out, CollisionEvent{KindA: CategoryProjectile, KindB: CategoryEnemy, TokenA: p.ID, TokenB: enemy.ID})
			}
		}
	})

	if shipAlive {
		g.arena.Each(CategoryPickup, func(p *Token) {
			if p.Swept().Intersects(ship.Box()) {
				out = append(out, CollisionEvent{KindA: CategoryPickup, KindB: CategoryPlayer, TokenA: p.ID, TokenB: ship.ID})
			}
		})
	}
	return out
}

// resolveCollisions dispatches every contact of this tick to exactly one handler.
func (g *Game) resolveCollisions() {
	for _, e := range g.detectCollisions() {
		g.dispatch(e)
	}
}

func (g *Game) dispatch(e CollisionEvent) {
	if h, ok := collisionHandlers[e.KindA|e.KindB]; ok {
		h(g, e)
	}
}

func (g *Game) onEnemyHitsPlayer(e CollisionEvent) {
	enemyID := e.token(CategoryEnemy)
	enemy, ok := g.arena.Get(enemyID)
	if !ok || !g.arena.Alive(e.token(CategoryPlayer)) {
		return
	}
	pos := enemy.Pos
	g.arena.Destroy(enemyID)
	g.sched.CancelToken(enemyID)
	g.addEffect(FxExplosion, pos, "", "", explosionSeconds)

	if g.match.GameOver || g.match.shielded() {
		return
	}

	g.emit(core.EventPlayerHit, g.match.Lives-1)
	g.addEffect(FxHitFlash, core.Vec{}, "", "", hitFlashSeconds)
	g.match.Invulnerable = true
	g.sched.CancelKind(TimerInvulnerableEnd)
	g.sched.Schedule(g.tick+g.ticks(g.cfg.Timing.Invulnerability), TimerInvulnerableEnd, 0, 0)
	g.loseLife()
}

func (g *Game) onProjectileHitsEnemy(e CollisionEvent) {
	shotID, enemyID := e.token(CategoryProjectile), e.token(CategoryEnemy)
	enemy, ok := g.arena.Get(enemyID)
	if !ok || !g.arena.Alive(shotID) {
		return
	}
	pos := enemy.Pos

	g.arena.Destroy(shotID)
	g.arena.Destroy(enemyID)
	g.sched.CancelToken(shotID)
	g.sched.CancelToken(enemyID)

	g.match.Score += g.cfg.Scoring.Kill
	g.addEffect(FxExplosion, pos, "", "", explosionSeconds)
	g.emit(core.EventEnemyDestroyed, g.match.Score)
	g.creditKill()

	if g.rng.Float64() < g.cfg.Drops.Chance {
		g.spawnPickup(pos, droppable[g.rng.Intn(len(droppable))])
	}
}

func (g *Game) onPickupCollected(e CollisionEvent) {
	id := e.token(CategoryPickup)
	pickup, ok := g.arena.Get(id)
	if !ok {
		return
	}
	kind := pickup.PowerUp
	g.arena.Destroy(id)
	g.sched.CancelToken(id)
	g.activatePowerUp(kind)
}

func (g *Game) spawnPickup(pos core.Vec, kind PowerUpType) {
	fall := g.periodTicks(g.cfg.Timing.PickupFall)
	t := g.arena.Spawn(CategoryPickup, pos, core.Vec{Y: float64(g.fieldH) / float64(fall)}, pickupW, pickupH, g.tick)
	t.PowerUp = kind
	g.sched.Schedule(g.tick+fall, TimerTokenExpire, t.ID, 0)
}
