package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// SoundType identifies a sound cue.
type SoundType int

const (
	SoundLaser SoundType = iota
	SoundExplosion
	SoundHit
	SoundBreach
	SoundPowerUp
	SoundPowerDown
	SoundNukeReady
	SoundNuke
	SoundWave
	SoundGameOver
)

// String returns the cue name.
func (s SoundType) String() string {
	switch s {
	case SoundLaser:
		return "laser"
	case SoundExplosion:
		return "explosion"
	case SoundHit:
		return "hit"
	case SoundBreach:
		return "breach"
	case SoundPowerUp:
		return "power_up"
	case SoundPowerDown:
		return "power_down"
	case SoundNukeReady:
		return "nuke_ready"
	case SoundNuke:
		return "nuke"
	case SoundWave:
		return "wave"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

var eventSounds = map[core.EventKind]SoundType{
	core.EventShot:           SoundLaser,
	core.EventEnemyDestroyed: SoundExplosion,
	core.EventPlayerHit:      SoundHit,
	core.EventBreach:         SoundBreach,
	core.EventPowerUp:        SoundPowerUp,
	core.EventPowerUpExpired: SoundPowerDown,
	core.EventNukeReady:      SoundNukeReady,
	core.EventNuke:           SoundNuke,
	core.EventWaveStarted:    SoundWave,
	core.EventGameOver:       SoundGameOver,
}

// ForEvent returns the cue for a game event.
func ForEvent(kind core.EventKind) (SoundType, bool) {
	s, ok := eventSounds[kind]
	return s, ok
}

// Build synthesizes the streamer for a cue at the configured volume.
func Build(s SoundType, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }

	var st beep.Streamer
	switch s {
	case SoundLaser:
		st = tone(1400, 500, ms(90), WaveSquare, rate)
	case SoundExplosion:
		st = tone(0, 0, ms(220), WaveNoise, rate)
	case SoundHit:
		st = beep.Mix(
			newVolume(tone(160, 60, ms(250), WaveSaw, rate), 0.7),
			newVolume(tone(0, 0, ms(250), WaveNoise, rate), 0.4),
		)
	case SoundBreach:
		st = tone(110, 55, ms(300), WaveSaw, rate)
	case SoundPowerUp:
		st = beep.Seq(
			tone(523.25, 523.25, ms(70), WaveSquare, rate),
			tone(659.25, 659.25, ms(70), WaveSquare, rate),
			tone(783.99, 783.99, ms(110), WaveSquare, rate),
		)
	case SoundPowerDown:
		st = tone(660, 330, ms(160), WaveSine, rate)
	case SoundNukeReady:
		st = beep.Seq(
			tone(880, 880, ms(80), WaveSine, rate),
			tone(1760, 1760, ms(120), WaveSine, rate),
		)
	case SoundNuke:
		st = beep.Mix(
			newVolume(tone(0, 0, ms(600), WaveNoise, rate), 0.8),
			newVolume(tone(90, 30, ms(600), WaveSine, rate), 0.8),
		)
	case SoundWave:
		st = beep.Seq(
			tone(392, 392, ms(90), WaveSquare, rate),
			tone(523.25, 523.25, ms(160), WaveSquare, rate),
		)
	case SoundGameOver:
		st = beep.Seq(
			tone(392, 392, ms(180), WaveSaw, rate),
			tone(311.13, 311.13, ms(180), WaveSaw, rate),
			tone(261.63, 196, ms(400), WaveSaw, rate),
		)
	default:
		return nil
	}
	return newVolume(st, cfg.MasterVolume)
}
