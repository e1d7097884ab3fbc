package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// EnemiesPerWave returns how many kills clear the given wave once the match has
// advanced to it: min(base + step*wave, max). Wave 1 of a fresh match uses
// the base size instead.
func EnemiesPerWave(cfg config.InvadersWaves, wave int) int {
	n := cfg.BaseEnemies + cfg.EnemiesStep*wave
	if cfg.MaxEnemies > 0 && n > cfg.MaxEnemies {
		n = cfg.MaxEnemies
	}
	return n
}

// SpawnInterval returns seconds between enemy spawns in the given wave:
// max(minimum, base - step*(wave-1)).
func SpawnInterval(cfg config.InvadersWaves, wave int) float64 {
	return math.Max(cfg.SpawnMinimum, cfg.SpawnBase-cfg.SpawnStep*float64(wave-1))
}

// armSpawner (re)starts the repeating spawn trigger with the current wave's interval.
func (g *Game) armSpawner() {
	g.sched.CancelKind(TimerSpawn)
	g.sched.Schedule(g.tick+g.spawnTicks(), TimerSpawn, 0, 0)
}

func (g *Game) spawnTicks() int {
	return g.periodTicks(SpawnInterval(g.cfg.Waves, g.match.Wave))
}

// creditKill runs wave accounting for one destroyed enemy.
func (g *Game) creditKill() {
	m := &g.match
	m.DestroyedInWave++
	m.Kills++

	if m.Wave > 1 && m.DestroyedInWave == m.PerWave/2 && !m.NukeAvailable {
		m.NukeAvailable = true
		g.emit(core.EventNukeReady, m.Wave)
	}
	if m.DestroyedInWave >= m.PerWave {
		g.startNewWave()
	}
}

func (g *Game) startNewWave() {
	m := &g.match
	m.Wave++
	m.DestroyedInWave = 0
	m.PerWave = EnemiesPerWave(g.cfg.Waves, m.Wave)
	g.armSpawner()

	bonus := g.cfg.Scoring.WaveBonus * m.Wave
	m.Score += bonus

	g.addEffect(FxBanner, core.Vec{}, waveLabel(m.Wave), bonusLabel(bonus), g.cfg.Timing.WaveBanner)
	g.emit(core.EventWaveStarted, m.Wave)
}

// fireNuke destroys every live enemy. It is a no-op when no charge is held.
func (g *Game) fireNuke() {
	m := &g.match
	if !m.NukeAvailable || m.GameOver {
		return
	}
	m.NukeAvailable = false
	m.NukesUsed++

	enemies := g.arena.IDs(CategoryEnemy)
	for _, id := range enemies {
		t, _ := g.arena.Get(id)
		pos := t.Pos
		g.arena.Destroy(id)
		g.sched.CancelToken(id)
		g.addEffect(FxExplosion, pos, "", "", explosionSeconds)
		m.Score += g.cfg.Scoring.NukeKill
		g.creditKill()
	}

	g.addEffect(FxNukeFlash, core.Vec{}, "", "", nukeFlashSeconds)
	g.emit(core.EventNuke, len(enemies))
}
