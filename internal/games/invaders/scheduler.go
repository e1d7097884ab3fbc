package invaders

import (
	"container/heap"
	"sort"
)

// TimerKind names the deferred effect a timer performs when it fires.
type TimerKind uint8

const (
	TimerSpawn           TimerKind = iota // spawn an enemy and re-arm
	TimerShotReady                        // shooting cooldown over
	TimerInvulnerableEnd                  // hit invulnerability over
	TimerPowerUpExpire                    // Arg = activation serial
	TimerEnemyBottom                      // enemy reached the bottom edge
	TimerTokenExpire                      // projectile or pickup left the field
	TimerEffectEnd                        // Arg = visual effect ID
)

// String returns the timer kind name.
func (k TimerKind) String() string {
	switch k {
	case TimerSpawn:
		return "spawn"
	case TimerShotReady:
		return "shot_ready"
	case TimerInvulnerableEnd:
		return "invulnerable_end"
	case TimerPowerUpExpire:
		return "power_up_expire"
	case TimerEnemyBottom:
		return "enemy_bottom"
	case TimerTokenExpire:
		return "token_expire"
	case TimerEffectEnd:
		return "effect_end"
	default:
		return "unknown"
	}
}

// Timer is one pending deferred effect.
type Timer struct {
	At    int // tick on which the timer fires
	Kind  TimerKind
	Token TokenID // zero when the timer is not tied to a token
	Arg   int

	seq uint64
}

type timerHeap []Timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].At != h[j].At {
		return h[i].At < h[j].At
	}
	return h[i].seq < h[j].seq
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any)   { *h = append(*h, x.(Timer)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	*h = old[:n-1]
	return t
}

// Scheduler fires timers in (tick, insertion) order. A match owns exactly one
// scheduler; restarting a match replaces it, so nothing pending survives.
type Scheduler struct {
	timers timerHeap
	seq    uint64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule adds a timer firing at tick at.
func (s *Scheduler) Schedule(at int, kind TimerKind, token TokenID, arg int) {
	s.seq++
	heap.Push(&s.timers, Timer{At: at, Kind: kind, Token: token, Arg: arg, seq: s.seq})
}

// PopDue removes and returns the earliest timer due at or before now.
// Handlers may schedule or cancel timers between calls.
func (s *Scheduler) PopDue(now int) (Timer, bool) {
	if len(s.timers) == 0 || s.timers[0].At > now {
		return Timer{}, false
	}
	return heap.Pop(&s.timers).(Timer), true
}

// CancelToken drops every timer tied to id and returns how many were dropped.
func (s *Scheduler) CancelToken(id TokenID) int {
	return s.cancel(func(t Timer) bool { return t.Token == id })
}

// CancelKind drops every timer of the given kinds.
func (s *Scheduler) CancelKind(kinds ...TimerKind) int {
	return s.cancel(func(t Timer) bool {
		for _, k := range kinds {
			if t.Kind == k {
				return true
			}
		}
		return false
	})
}

func (s *Scheduler) cancel(match func(Timer) bool) int {
	kept := s.timers[:0]
	for _, t := range s.timers {
		if !match(t) {
			kept = append(kept, t)
		}
	}
	n := len(s.timers) - len(kept)
	s.timers = kept
	if n > 0 {
		heap.Init(&s.timers)
	}
	return n
}

// Pending returns a sorted copy of all pending timers.
func (s *Scheduler) Pending() []Timer {
	out := make([]Timer, len(s.timers))
	copy(out, s.timers)
	sort.Slice(out, func(i, j int) bool { return timerHeap(out).Less(i, j) })
	return out
}
