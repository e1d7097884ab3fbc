package core

import "time"

// Loading tracks a fixed-length transition and reports its progress linearly
// by elapsed time.
type Loading struct {
	duration time.Duration
	elapsed  time.Duration
	running  bool
}

// NewLoading creates an idle loading transition lasting d.
func NewLoading(d time.Duration) *Loading {
	return &Loading{duration: d}
}

// Start begins (or restarts) the transition from 0%.
func (l *Loading) Start() {
	l.elapsed = 0
	l.running = true
}

// Running reports whether the transition has started and not yet finished.
func (l *Loading) Running() bool {
	return l.running && !l.Done()
}

// Advance adds dt to the elapsed time. It returns true on the call that
// completes the transition.
func (l *Loading) Advance(dt time.Duration) bool {
	if !l.running || l.Done() {
		return false
	}
	l.elapsed += dt
	if l.elapsed > l.duration {
		l.elapsed = l.duration
	}
	return l.Done()
}

// Progress returns the completed fraction in [0, 1].
func (l *Loading) Progress() float64 {
	if l.duration <= 0 {
		return 1
	}
	return float64(l.elapsed) / float64(l.duration)
}

// Percent returns the progress as a whole percentage, truncated.
func (l *Loading) Percent() int {
	return int(l.Progress() * 100)
}

// Done reports whether the full duration has elapsed.
func (l *Loading) Done() bool {
	return l.running && l.elapsed >= l.duration
}
