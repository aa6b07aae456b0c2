// Package tcellui is an alternative crawler frontend drawing directly with
// tcell. A single goroutine owns the session; a second one only pumps
// terminal events into it.
package tcellui

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-crawler/internal/crawler"
)

// eventBuffer bounds how many terminal events may queue between loop iterations.
const eventBuffer = 100

// Run plays the session on a new tcell screen until a quit key or ctx is done.
func Run(ctx context.Context, session *crawler.Session, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	return RunOn(ctx, screen, session, logger)
}

// RunOn plays the session on an initialized screen and finalizes it on return.
func RunOn(ctx context.Context, screen tcell.Screen, session *crawler.Session, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	defer fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, eventBuffer)
	g, ctx := errgroup.WithContext(ctx)

	// PollEvent blocks until an event arrives or the screen is finalized.
	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer fini()
		defer cancel()
		return newRunner(screen, session, logger).loop(ctx, events)
	})

	return g.Wait()
}

// runner serializes key handling and ticks for one session.
type runner struct {
	screen  tcell.Screen
	session *crawler.Session
	logger  *log.Logger
}

func newRunner(screen tcell.Screen, session *crawler.Session, logger *log.Logger) *runner {
	return &runner{screen: screen, session: session, logger: logger}
}

func (r *runner) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(r.session.Runtime.TickInterval)
	defer ticker.Stop()
	ticks := ticker.C

	r.logger.Info("session started", "frontend", "tcell", "tick", r.session.Runtime.TickInterval)
	r.draw()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !r.handleEvent(ev) {
				r.logger.Info("session ended", "ticks", r.session.Loop.Ticks(), "won", r.session.Won())
				return nil
			}

		case <-ticks:
			r.session.Tick()
			r.draw()
			if r.session.Halted() {
				r.logger.Info("scheduler halted after win", "ticks", r.session.Loop.Ticks())
				ticker.Stop()
				ticks = nil
			}
		}
	}
}

// handleEvent applies one terminal event. It returns false on quit.
func (r *runner) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		name := KeyName(ev)
		switch name {
		case "q", "esc", "ctrl+c":
			return false
		case "":
			return true
		}
		r.session.HandleKey(name)

	case *tcell.EventResize:
		r.screen.Sync()
		r.draw()
	}
	return true
}

func (r *runner) draw() {
	DrawFrame(r.screen, r.session)
	r.screen.Show()
}

// KeyName translates a tcell key event into the identifiers used by key tables.
// Keys with no identifier return "".
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		return string(ev.Rune())
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyEnter:
		return "enter"
	}
	return ""
}
