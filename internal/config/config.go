// Package config provides YAML-based game configuration loading and
// difficulty management for the invaders game.
package config

import "fmt"

// InvadersConfig contains all configuration for the invaders game.
type InvadersConfig struct {
	Player     InvadersPlayer   `yaml:"player"`
	Timing     InvadersTiming   `yaml:"timing"`
	Waves      InvadersWaves    `yaml:"waves"`
	Scoring    InvadersScoring  `yaml:"scoring"`
	Drops      InvadersDrops    `yaml:"drops"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Validate reports the first setting the game cannot run with.
func (c InvadersConfig) Validate() error {
	p, t, w, d := c.Player, c.Timing, c.Waves, c.Drops
	switch {
	case p.Lives < 1:
		return fmt.Errorf("player.lives must be at least 1, got %d", p.Lives)
	case p.Speed <= 0:
		return fmt.Errorf("player.speed must be positive, got %g", p.Speed)
	case p.Width < 1 || p.Height < 1:
		return fmt.Errorf("player hitbox must be at least 1x1, got %dx%d", p.Width, p.Height)
	case p.CeilingPct < 0 || p.CeilingPct >= 1:
		return fmt.Errorf("player.ceiling_pct must be in [0, 1), got %g", p.CeilingPct)

	case t.EnemyFall <= 0:
		return fmt.Errorf("timing.enemy_fall must be positive, got %g", t.EnemyFall)
	case t.ProjectileTrip <= 0:
		return fmt.Errorf("timing.projectile_trip must be positive, got %g", t.ProjectileTrip)
	case t.PickupFall <= 0:
		return fmt.Errorf("timing.pickup_fall must be positive, got %g", t.PickupFall)
	case t.ShotCooldown < 0 || t.Invulnerability < 0 || t.PowerUpDuration < 0 || t.WaveBanner < 0:
		return fmt.Errorf("timing durations must not be negative")

	case w.SpawnBase <= 0:
		return fmt.Errorf("waves.spawn_base must be positive, got %g", w.SpawnBase)
	case w.SpawnMinimum <= 0:
		return fmt.Errorf("waves.spawn_minimum must be positive, got %g", w.SpawnMinimum)
	case w.BaseEnemies < 1:
		return fmt.Errorf("waves.base_enemies must be at least 1, got %d", w.BaseEnemies)
	case w.EnemiesStep < 0 || w.MaxEnemies < 0:
		return fmt.Errorf("waves.enemies_step and waves.max_enemies must not be negative")

	case d.Chance < 0 || d.Chance > 1:
		return fmt.Errorf("drops.chance must be in [0, 1], got %g", d.Chance)
	case d.SpeedBoost <= 0:
		return fmt.Errorf("drops.speed_boost must be positive, got %g", d.SpeedBoost)

	case c.Difficulty.Scaling.SpeedMultiplier < 0:
		return fmt.Errorf("difficulty.scaling.speed_multiplier must not be negative")
	}
	return nil
}

// InvadersPlayer defines the player ship.
type InvadersPlayer struct {
	Lives      int     `yaml:"lives"`
	Speed      float64 `yaml:"speed"`       // Cells per second toward the pointer
	Width      int     `yaml:"width"`       // Hitbox width in cells
	Height     int     `yaml:"height"`      // Hitbox height in cells
	CeilingPct float64 `yaml:"ceiling_pct"` // Highest reachable point, as a fraction of the field from the top
}

// InvadersTiming holds every duration of the game, in seconds.
type InvadersTiming struct {
	ShotCooldown    float64 `yaml:"shot_cooldown"`
	Invulnerability float64 `yaml:"invulnerability"`
	PowerUpDuration float64 `yaml:"power_up_duration"`
	EnemyFall       float64 `yaml:"enemy_fall"`       // Time for an enemy to cross the field
	ProjectileTrip  float64 `yaml:"projectile_trip"`  // Time for a projectile to cross the field
	PickupFall      float64 `yaml:"pickup_fall"`      // Time for a pickup to cross the field
	WaveBanner      float64 `yaml:"wave_banner"`      // How long the wave banner stays up
}

// InvadersWaves defines wave sizing and spawn pacing.
type InvadersWaves struct {
	BaseEnemies  int     `yaml:"base_enemies"`  // Enemies in wave 1 and the base of the growth formula
	EnemiesStep  int     `yaml:"enemies_step"`  // Extra enemies per wave
	MaxEnemies   int     `yaml:"max_enemies"`   // Cap on enemies per wave
	SpawnBase    float64 `yaml:"spawn_base"`    // Spawn interval of wave 1 (seconds)
	SpawnStep    float64 `yaml:"spawn_step"`    // Interval reduction per wave
	SpawnMinimum float64 `yaml:"spawn_minimum"` // Fastest spawn interval
}

// InvadersScoring defines the points table.
type InvadersScoring struct {
	Kill      int `yaml:"kill"`
	NukeKill  int `yaml:"nuke_kill"`
	WaveBonus int `yaml:"wave_bonus"` // Multiplied by the new wave number
}

// InvadersDrops defines power-up drops and effect strength.
type InvadersDrops struct {
	Chance     float64 `yaml:"chance"`      // Probability a killed enemy drops a pickup
	SpeedBoost float64 `yaml:"speed_boost"` // Ship speed multiplier while boosted
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "wave" or "none"
	MaxAt int    `yaml:"max_at"` // Wave at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Enemy speed-up at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyHard:
		return 0.4
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
