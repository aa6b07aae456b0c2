package crawler

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crawler/internal/config"
	"github.com/vovakirdan/tui-crawler/internal/core"
)

// Session bundles one game: its state, surface, sinks, mapper and loop.
// Sessions share nothing, so one process can host many of them.
type Session struct {
	State    *GameState
	Screen   *core.Screen
	Position *TextSink
	Message  *TextSink
	Mapper   *InputMapper
	Loop     *Loop
	Runtime  core.RuntimeConfig

	logger *log.Logger
}

// NewSession builds a session from a validated configuration.
// A nil logger discards log output.
func NewSession(cfg config.CrawlerConfig, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	player, err := NewEntity(cfg.Player.X, cfg.Player.Y, core.Color(cfg.Player.Color), cfg.Player.Width, cfg.Player.Height)
	if err != nil {
		return nil, fmt.Errorf("crawler: player: %w", err)
	}
	ogre, err := NewEntity(cfg.Ogre.X, cfg.Ogre.Y, core.Color(cfg.Ogre.Color), cfg.Ogre.Width, cfg.Ogre.Height)
	if err != nil {
		return nil, fmt.Errorf("crawler: ogre: %w", err)
	}
	state, err := NewGameState(player, ogre)
	if err != nil {
		return nil, err
	}

	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}
	mapper, err := NewInputMapper(state, KeyTable(bindings), cfg.Movement.Step)
	if err != nil {
		return nil, err
	}

	s := &Session{
		State:    state,
		Screen:   core.NewScreen(cfg.Surface.Width, cfg.Surface.Height),
		Position: &TextSink{},
		Message:  &TextSink{},
		Mapper:   mapper,
		Runtime:  cfg.Runtime(),
		logger:   logger,
	}

	winText := cfg.Messages.Win
	if winText == "" {
		winText = DefaultWinText
	}
	s.Loop, err = NewLoop(state, s.Screen, s.Position, s.Message,
		WithWinText(winText),
		WithOnWin(s.logWin),
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) logWin(tick int) {
	s.logger.Info("ogre defeated",
		"tick", tick,
		"x", s.State.Player.X,
		"y", s.State.Player.Y,
	)
}

// HandleKey forwards a key identifier to the input mapper.
func (s *Session) HandleKey(key string) bool {
	d, ok := s.Mapper.HandleKey(key)
	if ok {
		s.logger.Debug("move", "key", key, "dx", d.DX, "dy", d.DY)
	}
	return ok
}

// Tick runs one loop iteration.
func (s *Session) Tick() {
	s.Loop.Tick()
}

// Won reports whether the ogre has been defeated.
func (s *Session) Won() bool {
	return s.State.Won()
}

// Halted reports whether the scheduler should stop: halting is enabled and
// the win frame has already been drawn.
func (s *Session) Halted() bool {
	return s.Runtime.HaltOnWin && s.Loop.State() == StateWon
}
