package core

// EventKind identifies something noteworthy that happened during a tick.
// The platform reacts to events with sounds and log lines; games never
// depend on anyone listening.
type EventKind int

const (
	EventShot            EventKind = iota // Player fired; Value = projectiles spawned
	EventEnemyDestroyed                   // Enemy killed by a projectile
	EventPlayerHit                        // Enemy rammed the player and cost a life
	EventBreach                           // Enemy reached the bottom edge
	EventPowerUp                          // Power-up activated; Value = power-up type
	EventPowerUpExpired                   // Power-up ran out; Value = power-up type
	EventNukeReady                        // Nuke charge became available
	EventNuke                             // Nuke fired; Value = enemies cleared
	EventWaveStarted                      // New wave; Value = wave number
	EventGameOver                         // Match ended; Value = final score
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventPlayerHit:
		return "player_hit"
	case EventBreach:
		return "breach"
	case EventPowerUp:
		return "power_up"
	case EventPowerUpExpired:
		return "power_up_expired"
	case EventNukeReady:
		return "nuke_ready"
	case EventNuke:
		return "nuke"
	case EventWaveStarted:
		return "wave_started"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a single notification produced by a simulation tick.
type Event struct {
	Kind  EventKind
	Value int
}
