package core

import "time"

// RuntimeConfig contains the frontend-facing knobs passed to a session.
type RuntimeConfig struct {
	TickInterval time.Duration // Fixed period between simulation ticks
	HaltOnWin    bool          // Stop scheduling ticks once the win frame is drawn
	CellW        int           // Surface pixels per terminal column
	CellH        int           // Surface pixels per terminal row (two half-blocks)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickInterval: 60 * time.Millisecond,
		HaltOnWin:    false,
		CellW:        8,
		CellH:        16,
	}
}

// Columns returns how many terminal columns a surface of the given width needs.
func (c RuntimeConfig) Columns(surfaceW int) int {
	return ceilDiv(surfaceW, c.CellW)
}

// Rows returns how many terminal rows a surface of the given height needs.
func (c RuntimeConfig) Rows(surfaceH int) int {
	return ceilDiv(surfaceH, c.CellH)
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
