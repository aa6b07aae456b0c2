package crawler

import (
	"errors"
)

var (
	// ErrNilSurface is returned when a loop is built without a drawing surface.
	ErrNilSurface = errors.New("crawler: drawing surface is required")
	// ErrNilSink is returned when a loop is built without a status sink.
	ErrNilSink = errors.New("crawler: status sink is required")
)

// DefaultWinText is written to the message sink when the ogre dies.
const DefaultWinText = "You win!"

// LoopState is the state of the game loop.
type LoopState int

const (
	StateRunning LoopState = iota
	StateWon
)

// String returns a human-readable name for the state.
func (s LoopState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithWinText overrides the victory message.
func WithWinText(text string) LoopOption {
	return func(l *Loop) {
		l.winText = text
	}
}

// WithOnWin registers a callback invoked once, on the tick that wins.
func WithOnWin(fn func(tick int)) LoopOption {
	return func(l *Loop) {
		l.onWin = fn
	}
}

// Loop runs one simulation tick at a time: collision check, then a full
// redraw, then the position readout. The scheduler that calls Tick lives in
// the frontend.
type Loop struct {
	state    *GameState
	dst      DrawingSurface
	position StatusSink
	message  StatusSink
	renderer Renderer
	winText  string
	onWin    func(tick int)

	current LoopState
	ticks   int
}

// NewLoop wires a loop to its state, surface and sinks.
// A missing surface or sink is a configuration error.
func NewLoop(state *GameState, dst DrawingSurface, position, message StatusSink, opts ...LoopOption) (*Loop, error) {
	if state == nil {
		return nil, errors.New("crawler: game state is required")
	}
	if dst == nil {
		return nil, ErrNilSurface
	}
	if position == nil || message == nil {
		return nil, ErrNilSink
	}

	l := &Loop{
		state:    state,
		dst:      dst,
		position: position,
		message:  message,
		winText:  DefaultWinText,
		current:  StateRunning,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Tick advances the game by one fixed step.
// After the win the loop keeps redrawing; the ogre is dead so the hit check
// and the win message never run again.
func (l *Loop) Tick() {
	l.ticks++

	if l.current == StateRunning && l.state.Ogre.Alive() {
		if DetectHit(l.state.Player, l.state.Ogre) {
			l.state.Ogre.Kill()
			l.message.SetText(l.winText)
			l.current = StateWon
			if l.onWin != nil {
				l.onWin(l.ticks)
			}
		}
	}

	l.renderer.Clear(l.dst, l.dst.Width(), l.dst.Height())
	l.renderer.Render(l.state.Player, l.dst)
	if l.state.Ogre.Alive() {
		l.renderer.Render(l.state.Ogre, l.dst)
	}

	l.position.SetText(l.state.Player.Position())
}

// State returns the current loop state.
func (l *Loop) State() LoopState {
	return l.current
}

// Ticks returns how many ticks have run.
func (l *Loop) Ticks() int {
	return l.ticks
}
