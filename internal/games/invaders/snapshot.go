package invaders

import (
	"fmt"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is the simulation state of a match under a fixed configuration.
// Effects and screen shake are visual and left out. Timers are listed in
// firing order.
type Snapshot struct {
	Tick         int   `msgpack:"tick"`
	Match        Match `msgpack:"match"`
	Paused       bool  `msgpack:"paused"`
	PointerSpent bool  `msgpack:"pointer_spent"`

	Tokens    []TokenState `msgpack:"tokens"`
	NextToken TokenID      `msgpack:"next_token"`
	Timers    []TimerState `msgpack:"timers"`

	RNGState uint64 `msgpack:"rng"`
}

// TokenState is one live token in a snapshot.
type TokenState struct {
	ID       TokenID     `msgpack:"id"`
	Category Category    `msgpack:"cat"`
	X        float64     `msgpack:"x"`
	Y        float64     `msgpack:"y"`
	VX       float64     `msgpack:"vx"`
	VY       float64     `msgpack:"vy"`
	W        float64     `msgpack:"w"`
	H        float64     `msgpack:"h"`
	Born     int         `msgpack:"born"`
	PowerUp  PowerUpType `msgpack:"pu,omitempty"`
}

// TimerState is one pending simulation timer in a snapshot.
type TimerState struct {
	At    int       `msgpack:"at"`
	Kind  TimerKind `msgpack:"kind"`
	Token TokenID   `msgpack:"token,omitempty"`
	Arg   int       `msgpack:"arg,omitempty"`
}

// Snapshot captures the current state. Visual effect timers are left out.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         g.tick,
		Match:        g.match,
		Paused:       g.paused,
		PointerSpent: g.pointerSpent,
		NextToken:    g.arena.next,
		RNGState:     g.rng.state,
	}

	g.arena.Each(CategoryAll, func(t *Token) {
		snap.Tokens = append(snap.Tokens, TokenState{
			ID:       t.ID,
			Category: t.Category,
			X:        t.Pos.X,
			Y:        t.Pos.Y,
			VX:       t.Vel.X,
			VY:       t.Vel.Y,
			W:        t.W,
			H:        t.H,
			Born:     t.Born,
			PowerUp:  t.PowerUp,
		})
	})

	for _, t := range g.sched.Pending() {
		if t.Kind == TimerEffectEnd {
			continue
		}
		snap.Timers = append(snap.Timers, TimerState{At: t.At, Kind: t.Kind, Token: t.Token, Arg: t.Arg})
	}

	return snap
}

// Encode serializes the snapshot with MessagePack.
func (s *Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("invaders: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses bytes produced by Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("invaders: decode snapshot: %w", err)
	}
	return s, nil
}

// Hash returns an FNV-1a digest of the encoded snapshot for determinism checks.
func (s *Snapshot) Hash() uint64 {
	data, err := s.Encode()
	if err != nil {
		return 0
	}
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64()
}

// EncodeSnapshot returns the encoded current state, for storing with a
// finished match.
func (g *Game) EncodeSnapshot() ([]byte, error) {
	snap := g.Snapshot()
	return snap.Encode()
}

// Enemies, Projectiles and Pickups count live tokens in a snapshot.
func (s *Snapshot) Enemies() int     { return s.count(CategoryEnemy) }
func (s *Snapshot) Projectiles() int { return s.count(CategoryProjectile) }
func (s *Snapshot) Pickups() int     { return s.count(CategoryPickup) }

func (s *Snapshot) count(cat Category) int {
	n := 0
	for _, t := range s.Tokens {
		if t.Category == cat {
			n++
		}
	}
	return n
}
