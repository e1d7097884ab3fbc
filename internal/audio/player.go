package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Player plays sound cues. Implementations must not block the caller.
type Player interface {
	Play(s SoundType)
	Close()
}

// Nop is a Player that discards every cue.
type Nop struct{}

func (Nop) Play(SoundType) {}
func (Nop) Close()         {}

// Speaker plays cues through the system audio device.
type Speaker struct {
	mu     sync.Mutex
	cfg    Config
	mixer  *beep.Mixer
	closed bool
}

// New returns a Speaker when sound is enabled, and Nop otherwise.
func New(cfg Config) (Player, error) {
	if !cfg.Enabled {
		return Nop{}, nil
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return Nop{}, fmt.Errorf("audio: init speaker: %w", err)
	}

	s := &Speaker{cfg: cfg, mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play mixes a cue into whatever is already sounding.
func (s *Speaker) Play(t SoundType) {
	st := Build(t, s.cfg)
	if st == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences the mixer and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}

// PlayEvents plays the cue of each event, at most once per cue per tick.
func PlayEvents(p Player, events []core.Event) {
	var played [SoundGameOver + 1]bool
	for _, e := range events {
		s, ok := ForEvent(e.Kind)
		if !ok || played[s] {
			continue
		}
		played[s] = true
		p.Play(s)
	}
}
