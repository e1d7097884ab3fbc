package config

import "math"

// DifficultyManager derives enemy pacing from the current wave.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) reached at the given wave.
func (d *DifficultyManager) Level(wave int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "wave" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 1 {
		maxAt = 2
	}
	progress := clampF(float64(wave-1)/(maxAt-1), 0.0, 1.0)

	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns baseSpeed scaled by the difficulty at the given wave.
func (d *DifficultyManager) Speed(baseSpeed float64, wave int) float64 {
	return baseSpeed * (1.0 + d.Level(wave)*d.cfg.Scaling.SpeedMultiplier)
}

// FallTime returns how long an enemy spawned in the given wave takes to
// cross the field. Faster enemies mean shorter fall times.
func (d *DifficultyManager) FallTime(baseSeconds float64, wave int) float64 {
	return baseSeconds / d.Speed(1.0, wave)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
