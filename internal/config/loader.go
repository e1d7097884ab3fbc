package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadInvaders loads the invaders configuration.
// Search order: customPath -> ~/.invaders/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
func LoadInvaders(customPath string) (InvadersConfig, error) {
	// Start from defaults so partial files only override what they name.
	cfg := DefaultInvadersConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultInvadersConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultInvadersConfig(), fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("invaders.yaml"), filepath.Join("configs", "invaders.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultInvadersConfig()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if candidate.Validate() == nil {
			return candidate, nil
		}
	}

	embedded := DefaultInvadersConfig()
	if err := yaml.Unmarshal(defaultInvadersYAML, &embedded); err != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded config as is.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}

	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = false
		cfg.Player.Lives = 5
		cfg.Timing.EnemyFall *= 1.25
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
		cfg.Difficulty.Scaling.SpeedMultiplier = 1.0
		cfg.Player.Lives = 2
	}
}
