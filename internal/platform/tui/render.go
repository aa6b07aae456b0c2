package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-crawler/internal/core"
)

// Half-block glyphs: each terminal cell shows two vertically stacked pixels blocks.
const (
	glyphEmpty = ' '
	glyphUpper = '▀'
	glyphLower = '▄'
	glyphFull  = '█'
)

// Cell is one terminal cell: the dominant colors of its top and bottom halves.
type Cell struct {
	Top    core.Color
	Bottom core.Color
}

// Glyph returns the rune that displays the cell.
func (c Cell) Glyph() rune {
	switch {
	case c.Top == core.ColorNone && c.Bottom == core.ColorNone:
		return glyphEmpty
	case c.Top == c.Bottom:
		return glyphFull
	case c.Bottom == core.ColorNone:
		return glyphUpper
	case c.Top == core.ColorNone:
		return glyphLower
	default:
		return glyphUpper
	}
}

// SampleCells downsamples the raster into terminal cells.
// A half-cell takes the color covering most of its pixels; any painted pixel
// beats an empty one so thin shapes stay visible.
func SampleCells(s *core.Screen, rt core.RuntimeConfig) [][]Cell {
	cols := rt.Columns(s.Width())
	rows := rt.Rows(s.Height())
	half := rt.CellH / 2

	cells := make([][]Cell, rows)
	for cy := range cells {
		cells[cy] = make([]Cell, cols)
		for cx := range cells[cy] {
			x0 := cx * rt.CellW
			y0 := cy * rt.CellH
			cells[cy][cx] = Cell{
				Top:    dominant(s, core.NewRect(x0, y0, rt.CellW, half)),
				Bottom: dominant(s, core.NewRect(x0, y0+half, rt.CellW, rt.CellH-half)),
			}
		}
	}
	return cells
}

// dominant returns the most frequent painted color inside r.
// Ties go to the color seen first in row-major order.
func dominant(s *core.Screen, r core.Rect) core.Color {
	counts := make(map[core.Color]int)
	best := core.ColorNone
	bestN := 0
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c := s.At(x, y)
			if c == core.ColorNone {
				continue
			}
			counts[c]++
			if counts[c] > bestN {
				best, bestN = c, counts[c]
			}
		}
	}
	return best
}

// styleCache maps cell color pairs to lipgloss styles.
type styleCache map[Cell]lipgloss.Style

func (sc styleCache) get(c Cell) lipgloss.Style {
	if style, ok := sc[c]; ok {
		return style
	}
	style := lipgloss.NewStyle()
	switch c.Glyph() {
	case glyphFull, glyphUpper:
		style = style.Foreground(termColor(c.Top))
		if c.Bottom != core.ColorNone && c.Bottom != c.Top {
			style = style.Background(termColor(c.Bottom))
		}
	case glyphLower:
		style = style.Foreground(termColor(c.Bottom))
	}
	sc[c] = style
	return style
}

// termColor resolves a core color to a lipgloss color.
// Colors that fail to resolve fall back to the terminal default.
func termColor(c core.Color) lipgloss.TerminalColor {
	hex, err := c.Hex()
	if err != nil {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}

// RenderScreen converts the raster to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, rt core.RuntimeConfig) string {
	cells := SampleCells(s, rt)
	styles := make(styleCache)

	var sb strings.Builder
	for y, row := range cells {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < len(row) {
			start := row[x]
			var run strings.Builder
			for x < len(row) && row[x] == start {
				run.WriteRune(row[x].Glyph())
				x++
			}
			sb.WriteString(styles.get(start).Render(run.String()))
		}
	}
	return sb.String()
}
