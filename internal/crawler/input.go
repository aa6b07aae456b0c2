package crawler

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-crawler/internal/core"
)

// DefaultStep is how far one key press moves the player, in pixels.
const DefaultStep = 10

// KeyTable maps key identifiers to movement directions.
// Several identifiers may alias the same direction.
type KeyTable map[string]core.Direction

// DefaultKeyTable binds WASD (either case) and the arrow keys.
func DefaultKeyTable() KeyTable {
	return KeyTable{
		"w": core.DirUp, "W": core.DirUp, "up": core.DirUp,
		"s": core.DirDown, "S": core.DirDown, "down": core.DirDown,
		"a": core.DirLeft, "A": core.DirLeft, "left": core.DirLeft,
		"d": core.DirRight, "D": core.DirRight, "right": core.DirRight,
	}
}

// Keys returns the identifiers bound to dir, sorted.
func (t KeyTable) Keys(dir core.Direction) []string {
	var keys []string
	for k, d := range t {
		if d == dir {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// InputMapper turns key events into player movement.
// Movement is applied as soon as the key arrives, independent of the tick.
type InputMapper struct {
	state *GameState
	table KeyTable
	step  int
}

// NewInputMapper creates a mapper that moves state.Player by step pixels per key.
func NewInputMapper(state *GameState, table KeyTable, step int) (*InputMapper, error) {
	if state == nil {
		return nil, fmt.Errorf("crawler: input mapper needs a game state")
	}
	if step <= 0 {
		return nil, fmt.Errorf("crawler: step must be positive, got %d", step)
	}
	if table == nil {
		table = DefaultKeyTable()
	}
	return &InputMapper{state: state, table: table, step: step}, nil
}

// Lookup returns the displacement bound to key without applying it.
func (m *InputMapper) Lookup(key string) (core.Displacement, bool) {
	dir, ok := m.table[key]
	if !ok {
		return core.Displacement{}, false
	}
	return dir.Unit().Scale(m.step), true
}

// HandleKey applies the displacement bound to key to the player.
// Unknown keys are ignored and report false.
func (m *InputMapper) HandleKey(key string) (core.Displacement, bool) {
	d, ok := m.Lookup(key)
	if !ok {
		return d, false
	}
	m.state.Player.MoveBy(d)
	return d, true
}

// Table returns the key table in use.
func (m *InputMapper) Table() KeyTable {
	return m.table
}
