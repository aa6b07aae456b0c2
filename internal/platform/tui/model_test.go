package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-crawler/internal/config"
	"github.com/vovakirdan/tui-crawler/internal/crawler"
)

func newTestModel(t *testing.T, mutate func(*config.CrawlerConfig)) (Model, *crawler.Session) {
	t.Helper()
	cfg := config.DefaultCrawlerConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	session, err := crawler.NewSession(cfg, nil)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return NewModel(session, nil), session
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelKeyMovesImmediately(t *testing.T) {
	m, session := newTestModel(t, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if cmd != nil {
		t.Error("movement keys should not schedule commands")
	}
	m = next.(Model)

	if session.State.Player.Y != 20 {
		t.Errorf("player.Y = %d after keydown, expected 20", session.State.Player.Y)
	}
	// Readout waits for the tick
	if session.Position.Text() != "" {
		t.Errorf("position = %q before first tick, expected empty", session.Position.Text())
	}

	m.Update(TickMsg{})
	if session.Position.Text() != "10, 20" {
		t.Errorf("position = %q after tick, expected \"10, 20\"", session.Position.Text())
	}
}

func TestModelUnknownKeyIgnored(t *testing.T) {
	m, session := newTestModel(t, nil)

	_, cmd := m.Update(runes("x"))
	if cmd != nil {
		t.Error("unknown key should not produce a command")
	}
	if session.State.Player.X != 10 || session.State.Player.Y != 10 {
		t.Error("unknown key should not move the player")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit key should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelTickSchedulesNext(t *testing.T) {
	m, _ := newTestModel(t, nil)

	_, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestModelKeepsTickingAfterWin(t *testing.T) {
	m, session := newTestModel(t, func(c *config.CrawlerConfig) {
		c.Player.X, c.Player.Y = 190, 40
	})

	next, cmd := m.Update(TickMsg{})
	if !session.Won() {
		t.Fatal("overlapping start should win on first tick")
	}
	if cmd == nil {
		t.Error("scheduler should keep ticking after the win by default")
	}
	if next.(Model).Halted() {
		t.Error("model should not halt by default")
	}
}

func TestModelHaltsOnWin(t *testing.T) {
	m, session := newTestModel(t, func(c *config.CrawlerConfig) {
		c.Player.X, c.Player.Y = 190, 40
		c.Loop.HaltOnWin = true
	})

	next, cmd := m.Update(TickMsg{})
	if cmd != nil {
		t.Error("no further ticks should be scheduled after a halting win")
	}
	m = next.(Model)
	if !m.Halted() {
		t.Error("model should report halted")
	}

	ticks := session.Loop.Ticks()
	m.Update(TickMsg{})
	if session.Loop.Ticks() != ticks {
		t.Error("stray ticks after halt should be ignored")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, func(c *config.CrawlerConfig) {
		c.Player.X, c.Player.Y = 190, 40
	})
	next, _ := m.Update(TickMsg{})

	view := next.(Model).View()
	if view == "" {
		t.Fatal("view should not be empty")
	}
	for _, want := range []string{"190, 40", "You win!"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}
