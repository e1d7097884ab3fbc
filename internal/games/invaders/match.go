package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// PowerUpType is the effect carried by a pickup.
type PowerUpType int

const (
	PowerUpNone PowerUpType = iota
	PowerUpSpeedBoost
	PowerUpMultiShot
	PowerUpShield
)

// droppable lists the types a pickup can carry, in roll order.
var droppable = []PowerUpType{PowerUpSpeedBoost, PowerUpMultiShot, PowerUpShield}

// String returns the name shown in the HUD.
func (p PowerUpType) String() string {
	switch p {
	case PowerUpSpeedBoost:
		return "SPEED"
	case PowerUpMultiShot:
		return "MULTI"
	case PowerUpShield:
		return "SHIELD"
	default:
		return "NONE"
	}
}

// Glyph returns the pickup's on-field letter.
func (p PowerUpType) Glyph() rune {
	switch p {
	case PowerUpSpeedBoost:
		return 'S'
	case PowerUpMultiShot:
		return 'M'
	case PowerUpShield:
		return 'O'
	default:
		return '?'
	}
}

// Color returns the tint of the pickup and of the ship while it is active.
func (p PowerUpType) Color() core.Color {
	switch p {
	case PowerUpSpeedBoost:
		return core.ColorYellow
	case PowerUpMultiShot:
		return core.ColorCyan
	case PowerUpShield:
		return core.ColorGreen
	default:
		return core.ColorPowerUp
	}
}

// Match is the scoring state of one play session. It is rebuilt on restart.
type Match struct {
	Score           int
	Lives           int
	GameOver        bool
	Wave            int
	DestroyedInWave int
	PerWave         int
	NukeAvailable   bool
	CanShoot        bool
	Invulnerable    bool

	PowerUp       PowerUpType
	PowerUpSerial int // bumped on every activation
	PowerUpUntil  int // tick the current power-up expires

	Kills     int
	NukesUsed int
	EndTick   int // tick the match ended, zero while running
}

func newMatch(lives, perWave int) Match {
	return Match{
		Lives:    lives,
		Wave:     1,
		PerWave:  perWave,
		CanShoot: true,
	}
}

// loseLife removes one life, clamped at zero. It returns true only on the
// call that ends the match.
func (m *Match) loseLife(tick int) bool {
	if m.GameOver {
		return false
	}
	if m.Lives > 0 {
		m.Lives--
	}
	if m.Lives == 0 {
		m.GameOver = true
		m.EndTick = tick
		return true
	}
	return false
}

// shielded reports whether enemy contact is currently harmless.
func (m *Match) shielded() bool {
	return m.Invulnerable || m.PowerUp == PowerUpShield
}
