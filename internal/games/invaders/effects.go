package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// EffectKind names a purely visual, time-limited overlay.
type EffectKind uint8

const (
	FxExplosion   EffectKind = iota // enemy destroyed
	FxHitFlash                      // ship took a hit
	FxBreach                        // enemy got through: red bottom row and field shake
	FxNukeFlash                     // whole-field flash
	FxBanner                        // wave banner with bonus line
	FxPowerUpText                   // "POWER UP!" label
)

// Effect durations in seconds.
const (
	explosionSeconds = 0.3
	hitFlashSeconds  = 0.2
	breachSeconds    = 0.3
	shakeSeconds     = 0.2
	nukeFlashSeconds = 0.3
	powerUpSeconds   = 1.4
	gameOverFadeIn   = 0.5
)

// Effect is one visual overlay. It never influences the simulation.
type Effect struct {
	ID    int
	Kind  EffectKind
	Pos   core.Vec
	Text  string
	Sub   string
	Start int
	End   int
}

// progress returns how far through its lifetime the effect is, in [0, 1].
func (e Effect) progress(tick int) float64 {
	span := e.End - e.Start
	if span <= 0 {
		return 1
	}
	p := float64(tick-e.Start) / float64(span)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Effects holds the live overlays in creation order.
type Effects struct {
	next int
	list []Effect
}

func (fx *Effects) add(e Effect) int {
	fx.next++
	e.ID = fx.next
	fx.list = append(fx.list, e)
	return e.ID
}

func (fx *Effects) remove(id int) {
	for i, e := range fx.list {
		if e.ID == id {
			fx.list = append(fx.list[:i], fx.list[i+1:]...)
			return
		}
	}
}

// Active returns whether any effect of kind is live.
func (fx *Effects) Active(kind EffectKind) bool {
	for _, e := range fx.list {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
