package audio

import (
	"os"
	"strconv"
)

// Config controls sound output.
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0 to 1.0
	SampleRate   int
}

// DefaultConfig returns audio settings used when no environment overrides exist.
// Sound is off unless requested, since many terminals run without an audio device.
func DefaultConfig() Config {
	return Config{
		Enabled:      false,
		MasterVolume: 0.6,
		SampleRate:   44100,
	}
}

// LoadConfig applies INVADERS_AUDIO_ENABLED, INVADERS_MASTER_VOLUME (0-100)
// and INVADERS_SAMPLE_RATE on top of the defaults. Malformed values are ignored.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("INVADERS_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv("INVADERS_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clamp01(float64(val) / 100.0)
		}
	}

	if rate := os.Getenv("INVADERS_SAMPLE_RATE"); rate != "" {
		if val, err := strconv.Atoi(rate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
