package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Deps bundles the collaborators shared by every screen of a session.
// Any field may be nil.
type Deps struct {
	Store  *storage.Store
	Audio  audio.Player
	Logger *log.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Audio == nil {
		d.Audio = audio.Nop{}
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	return d
}
