package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// TokenID identifies a live entity. Zero is never issued.
type TokenID uint32

// Category is a bitmask naming what kind of entity a token is.
type Category uint8

const (
	CategoryPlayer Category = 1 << iota
	CategoryEnemy
	CategoryProjectile
	CategoryPickup

	CategoryAll = CategoryPlayer | CategoryEnemy | CategoryProjectile | CategoryPickup
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryEnemy:
		return "enemy"
	case CategoryProjectile:
		return "projectile"
	case CategoryPickup:
		return "pickup"
	default:
		return "mixed"
	}
}

// Token is one entity on the field. Pos is the center of its box; Vel is in
// cells per tick.
type Token struct {
	ID       TokenID
	Category Category
	Pos      core.Vec
	Vel      core.Vec
	W, H     float64
	PowerUp  PowerUpType // pickups only
	Born     int         // tick the token was spawned

	alive bool
}

// Box returns the token's current bounding box.
func (t *Token) Box() core.RectF {
	return core.RectAround(t.Pos, t.W, t.H)
}

// Swept returns the box covering the token's motion during the last tick, so
// fast tokens at low tick rates cannot pass through each other.
func (t *Token) Swept() core.RectF {
	prev := core.RectAround(t.Pos.Add(t.Vel.Scale(-1)), t.W, t.H)
	cur := t.Box()
	x0 := math.Min(prev.X, cur.X)
	y0 := math.Min(prev.Y, cur.Y)
	x1 := math.Max(prev.X+prev.W, cur.X+cur.W)
	y1 := math.Max(prev.Y+prev.H, cur.Y+cur.H)
	return core.RectF{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Arena owns every token of a match. Tokens refer to each other by ID only.
// Iteration follows spawn order so simulation stays deterministic.
type Arena struct {
	next   TokenID
	tokens []*Token
	index  map[TokenID]*Token
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{index: make(map[TokenID]*Token)}
}

// Spawn adds a token and returns it.
func (a *Arena) Spawn(cat Category, pos, vel core.Vec, w, h float64, tick int) *Token {
	a.next++
	t := &Token{
		ID:       a.next,
		Category: cat,
		Pos:      pos,
		Vel:      vel,
		W:        w,
		H:        h,
		Born:     tick,
		alive:    true,
	}
	a.tokens = append(a.tokens, t)
	a.index[t.ID] = t
	return t
}

// Get returns a live token by ID.
func (a *Arena) Get(id TokenID) (*Token, bool) {
	t, ok := a.index[id]
	if !ok || !t.alive {
		return nil, false
	}
	return t, true
}

// Alive reports whether id names a live token.
func (a *Arena) Alive(id TokenID) bool {
	_, ok := a.Get(id)
	return ok
}

// Destroy removes a token. It returns false when the token was already gone.
func (a *Arena) Destroy(id TokenID) bool {
	t, ok := a.Get(id)
	if !ok {
		return false
	}
	t.alive = false
	delete(a.index, id)
	return true
}

// Each calls fn for every live token whose category is in mask.
func (a *Arena) Each(mask Category, fn func(*Token)) {
	for _, t := range a.tokens {
		if t.alive && t.Category&mask != 0 {
			fn(t)
		}
	}
}

// IDs returns the IDs of live tokens in mask, in spawn order.
func (a *Arena) IDs(mask Category) []TokenID {
	var ids []TokenID
	a.Each(mask, func(t *Token) { ids = append(ids, t.ID) })
	return ids
}

// Count returns the number of live tokens in mask.
func (a *Arena) Count(mask Category) int {
	n := 0
	a.Each(mask, func(*Token) { n++ })
	return n
}

// Move applies each live token's velocity once.
func (a *Arena) Move() {
	for _, t := range a.tokens {
		if t.alive {
			t.Pos = t.Pos.Add(t.Vel)
		}
	}
}

// Compact drops destroyed tokens from the backing slice.
func (a *Arena) Compact() {
	live := a.tokens[:0]
	for _, t := range a.tokens {
		if t.alive {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(a.tokens); i++ {
		a.tokens[i] = nil
	}
	a.tokens = live
}
