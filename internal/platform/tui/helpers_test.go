package tui

import (
	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

const fakeGameID = "fake"

func init() {
	registry.Register(fakeGameID, func() registry.Game { return &fakeGame{} })
}

// fakeGame is a scripted registry.Game.
type fakeGame struct {
	cfg    core.RuntimeConfig
	state  core.GameState
	events []core.Event
	inputs []core.InputFrame
	resets int
}

func (g *fakeGame) ID() string    { return fakeGameID }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.resets++
	g.state = core.GameState{Lives: 3, Wave: 1}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	// The model clears its frame after each tick, so keep a copy.
	frame := core.NewInputFrame()
	for a, on := range in.Actions {
		frame.Actions[a] = on
	}
	frame.Pointer = in.Pointer
	g.inputs = append(g.inputs, frame)
	ev := g.events
	g.events = nil
	return core.StepResult{State: g.state, Events: ev}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "FAKE")
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) EncodeSnapshot() ([]byte, error) {
	return []byte("final"), nil
}

func (g *fakeGame) lastInput() core.InputFrame {
	return g.inputs[len(g.inputs)-1]
}

// soundRecorder is an audio.Player that remembers what it played.
type soundRecorder struct {
	played []audio.SoundType
}

func (r *soundRecorder) Play(s audio.SoundType) { r.played = append(r.played, s) }
func (r *soundRecorder) Close()                 {}
