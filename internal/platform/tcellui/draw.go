package tcellui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-crawler/internal/core"
	"github.com/vovakirdan/tui-crawler/internal/crawler"
	"github.com/vovakirdan/tui-crawler/internal/platform/tui"
)

var (
	frameStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	positionStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	messageStyle  = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	helpStyle     = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
)

// DrawFrame paints the surface inside a border with the status lines below.
func DrawFrame(screen tcell.Screen, session *crawler.Session) {
	screen.Clear()

	cells := tui.SampleCells(session.Screen, session.Runtime)
	rows := len(cells)
	cols := 0
	if rows > 0 {
		cols = len(cells[0])
	}

	drawBox(screen, 0, 0, cols+2, rows+2)
	for y, row := range cells {
		for x, cell := range row {
			screen.SetContent(x+1, y+1, cell.Glyph(), nil, cellStyle(cell))
		}
	}

	drawText(screen, 0, rows+2, session.Position.Text(), positionStyle)
	drawText(screen, 0, rows+3, session.Message.Text(), messageStyle)
	drawText(screen, 0, rows+4, helpLine(tui.NewKeyMap(session.Mapper.Table())), helpStyle)
}

// helpLine renders the short help bindings on one line.
func helpLine(km tui.KeyMap) string {
	line := ""
	for i, b := range km.ShortHelp() {
		if i > 0 {
			line += " • "
		}
		line += b.Help().Key + " " + b.Help().Desc
	}
	return line
}

func cellStyle(c tui.Cell) tcell.Style {
	style := tcell.StyleDefault
	switch c.Glyph() {
	case '█', '▀':
		style = style.Foreground(tcellColor(c.Top))
		if c.Bottom != core.ColorNone && c.Bottom != c.Top {
			style = style.Background(tcellColor(c.Bottom))
		}
	case '▄':
		style = style.Foreground(tcellColor(c.Bottom))
	}
	return style
}

func tcellColor(c core.Color) tcell.Color {
	hex, err := c.Hex()
	if err != nil {
		return tcell.ColorDefault
	}
	return tcell.GetColor(hex)
}

func drawBox(screen tcell.Screen, x, y, w, h int) {
	if w < 2 || h < 2 {
		return
	}
	for i := x + 1; i < x+w-1; i++ {
		screen.SetContent(i, y, '─', nil, frameStyle)
		screen.SetContent(i, y+h-1, '─', nil, frameStyle)
	}
	for j := y + 1; j < y+h-1; j++ {
		screen.SetContent(x, j, '│', nil, frameStyle)
		screen.SetContent(x+w-1, j, '│', nil, frameStyle)
	}
	screen.SetContent(x, y, '╭', nil, frameStyle)
	screen.SetContent(x+w-1, y, '╮', nil, frameStyle)
	screen.SetContent(x, y+h-1, '╰', nil, frameStyle)
	screen.SetContent(x+w-1, y+h-1, '╯', nil, frameStyle)
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
