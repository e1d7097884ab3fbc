package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// activatePowerUp replaces any running effect with kind and starts its clock.
func (g *Game) activatePowerUp(kind PowerUpType) {
	if kind == PowerUpNone {
		return
	}
	m := &g.match

	// Only one effect runs at a time; the previous expiry must not fire.
	g.sched.CancelKind(TimerPowerUpExpire)

	m.PowerUpSerial++
	m.PowerUp = kind
	m.PowerUpUntil = g.tick + g.ticks(g.cfg.Timing.PowerUpDuration)
	g.sched.Schedule(m.PowerUpUntil, TimerPowerUpExpire, 0, m.PowerUpSerial)

	g.addEffect(FxPowerUpText, core.Vec{}, "POWER UP!", kind.String(), powerUpSeconds)
	g.emit(core.EventPowerUp, int(kind))
}

// expirePowerUp clears the effect started by activation serial. Expiries of
// superseded activations are ignored. Runs after game over too.
func (g *Game) expirePowerUp(serial int) {
	m := &g.match
	if serial != m.PowerUpSerial || m.PowerUp == PowerUpNone {
		return
	}
	kind := m.PowerUp
	m.PowerUp = PowerUpNone
	m.PowerUpUntil = 0
	g.emit(core.EventPowerUpExpired, int(kind))
}

// PowerUpSecondsLeft returns the whole seconds remaining on the active effect,
// rounded up, or zero when none is active.
func (g *Game) PowerUpSecondsLeft() int {
	if g.match.PowerUp == PowerUpNone {
		return 0
	}
	left := g.match.PowerUpUntil - g.tick
	if left <= 0 {
		return 0
	}
	rate := g.tickRate()
	return (left + rate - 1) / rate
}
