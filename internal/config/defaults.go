package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in configuration, used when the
// embedded YAML cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Player: InvadersPlayer{
			Lives:      3,
			Speed:      60,
			Width:      5,
			Height:     2,
			CeilingPct: 0.2,
		},
		Timing: InvadersTiming{
			ShotCooldown:    0.5,
			Invulnerability: 2.0,
			PowerUpDuration: 5.0,
			EnemyFall:       2.0,
			ProjectileTrip:  1.0,
			PickupFall:      4.0,
			WaveBanner:      1.6,
		},
		Waves: InvadersWaves{
			BaseEnemies:  10,
			EnemiesStep:  2,
			MaxEnemies:   30,
			SpawnBase:    2.0,
			SpawnStep:    0.1,
			SpawnMinimum: 0.5,
		},
		Scoring: InvadersScoring{
			Kill:      10,
			NukeKill:  5,
			WaveBonus: 100,
		},
		Drops: InvadersDrops{
			Chance:     0.1,
			SpeedBoost: 1.6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	if gameID == "invaders" {
		return defaultInvadersYAML
	}
	return nil
}
