package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crawler/internal/crawler"
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245"))
	positionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	messageStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// Model is the Bubble Tea model for one crawler session.
// Bubble Tea delivers key and tick messages one at a time, so the session
// never sees concurrent mutation.
type Model struct {
	session  *crawler.Session
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	quitting bool
	halted   bool
}

// NewModel creates a Bubble Tea model for the given session.
// A nil logger discards log output.
func NewModel(session *crawler.Session, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		session: session,
		keys:    NewKeyMap(session.Mapper.Table()),
		help:    help.New(),
		logger:  logger,
	}
}

// Init starts the tick loop. The surface stays blank until the first tick.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started",
		"tick", m.session.Runtime.TickInterval,
		"halt_on_win", m.session.Runtime.HaltOnWin,
	)
	return tickCmd(m.session.Runtime.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey quits on quit keys and hands everything else to the session.
// Movement is applied right away; the frame catches up on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		m.logger.Info("session ended", "ticks", m.session.Loop.Ticks(), "won", m.session.Won())
		return m, tea.Quit
	}

	m.session.HandleKey(msg.String())
	return m, nil
}

// handleTick runs one simulation tick and schedules the next one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.halted {
		return m, nil
	}

	m.session.Tick()

	if m.session.Halted() {
		m.halted = true
		m.logger.Info("scheduler halted after win", "ticks", m.session.Loop.Ticks())
		return m, nil
	}

	// Continue ticking
	return m, tickCmd(m.session.Runtime.TickInterval)
}

// Halted reports whether the scheduler has stopped.
func (m Model) Halted() bool {
	return m.halted
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	canvas := frameStyle.Render(RenderScreen(m.session.Screen, m.session.Runtime))
	status := positionStyle.Render(m.session.Position.Text())
	message := messageStyle.Render(m.session.Message.Text())

	return lipgloss.JoinVertical(lipgloss.Left,
		canvas,
		status,
		message,
		m.help.View(m.keys),
	)
}

// Run starts the Bubble Tea program for the session.
func Run(session *crawler.Session, logger *log.Logger) error {
	model := NewModel(session, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
