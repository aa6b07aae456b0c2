package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-crawler/internal/core"
	"github.com/vovakirdan/tui-crawler/internal/crawler"
)

// KeyMap holds the bindings shown in the help footer.
// Movement bindings mirror the session's key table; the table stays the
// source of truth for what actually moves the player.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// NewKeyMap builds help bindings from a key table.
func NewKeyMap(table crawler.KeyTable) KeyMap {
	return KeyMap{
		Up:    moveBinding(table, core.DirUp),
		Down:  moveBinding(table, core.DirDown),
		Left:  moveBinding(table, core.DirLeft),
		Right: moveBinding(table, core.DirRight),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

func moveBinding(table crawler.KeyTable, dir core.Direction) key.Binding {
	keys := table.Keys(dir)
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpLabel(keys), dir.String()),
	)
}

// helpLabel renders key identifiers compactly: arrows as symbols,
// letters once regardless of case.
func helpLabel(keys []string) string {
	seen := make(map[string]bool)
	var parts []string
	for _, k := range keys {
		label := k
		switch k {
		case "up":
			label = "↑"
		case "down":
			label = "↓"
		case "left":
			label = "←"
		case "right":
			label = "→"
		default:
			label = strings.ToLower(k)
		}
		if seen[label] {
			continue
		}
		seen[label] = true
		parts = append(parts, label)
	}
	return strings.Join(parts, "/")
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Quit},
	}
}
