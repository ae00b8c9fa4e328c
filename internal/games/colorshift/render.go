package colorshift

import (
	"fmt"

	platformcore "github.com/vovakirdan/colorshift/internal/core"
	"github.com/vovakirdan/colorshift/internal/games/colorshift/core"
)

// heavyBorder is the thickness from which selection borders use heavy lines.
const heavyBorder = 3

var cellColors = map[core.Color]platformcore.Color{
	core.ColorRed:    platformcore.ColorRed,
	core.ColorBlue:   platformcore.ColorBlue,
	core.ColorGreen:  platformcore.ColorGreen,
	core.ColorOrange: platformcore.ColorOrange,
}

func screenColor(c core.Color) platformcore.Color {
	if sc, ok := cellColors[c]; ok {
		return sc
	}
	return platformcore.ColorGray
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst)
	g.renderCells(dst)
	g.renderBorders(dst)
	g.renderFooter(dst)

	if g.paused {
		_, boardH := g.boardSize()
		dst.DrawTextCentered(g.boardY+boardH/2, " PAUSED ", platformcore.ColorYellow)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	boardW, boardH := g.boardSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", platformcore.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", boardW, hudHeight+boardH+footerHeight), platformcore.ColorGray)
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	dst.DrawTextCentered(0, "COLOR SHIFT", platformcore.ColorBrightWhite)
	dst.DrawTextCentered(1, g.board.Status(), platformcore.ColorGray)
}

// renderGrid draws the thin lines separating cells.
func (g *Game) renderGrid(dst *platformcore.Screen) {
	cw, ch := g.settings.CellW, g.settings.CellH

	for row := range core.Size + 1 {
		for col := range core.Size + 1 {
			px := g.boardX + col*(cw+1)
			py := g.boardY + row*(ch+1)

			var corner rune
			switch {
			case row == 0 && col == 0:
				corner = '┌'
			case row == 0 && col == core.Size:
				corner = '┐'
			case row == core.Size && col == 0:
				corner = '└'
			case row == core.Size && col == core.Size:
				corner = '┘'
			case row == 0:
				corner = '┬'
			case row == core.Size:
				corner = '┴'
			case col == 0:
				corner = '├'
			case col == core.Size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, platformcore.ColorGray)

			if col < core.Size {
				for i := 1; i <= cw; i++ {
					dst.SetColored(px+i, py, '─', platformcore.ColorGray)
				}
			}
			if row < core.Size {
				for i := 1; i <= ch; i++ {
					dst.SetColored(px, py+i, '│', platformcore.ColorGray)
				}
			}
		}
	}
}

func (g *Game) renderCells(dst *platformcore.Screen) {
	cw, ch := g.settings.CellW, g.settings.CellH

	for y := range core.Size {
		for x := range core.Size {
			c := core.C(x, y)
			ox, oy := g.cellOrigin(c)
			fill := '█'
			if c == g.cursor {
				fill = '▓'
			}
			dst.FillRect(platformcore.NewRect(ox, oy, cw, ch), fill, screenColor(g.board.Color(c)))
		}
	}
}

// renderBorders draws selection borders over the grid lines around each cell.
// A side with zero thickness leaves the grid line alone.
func (g *Game) renderBorders(dst *platformcore.Screen) {
	cw, ch := g.settings.CellW, g.settings.CellH

	for y := range core.Size {
		for x := range core.Size {
			c := core.C(x, y)
			b := g.board.Border(c)
			if b.IsZero() {
				continue
			}

			ox, oy := g.cellOrigin(c)
			left, right := ox-1, ox+cw
			top, bottom := oy-1, oy+ch

			if w := b.Top; w > 0 {
				for px := left; px <= right; px++ {
					dst.SetColored(px, top, hLine(w), platformcore.ColorBrightWhite)
				}
			}
			if w := b.Bottom; w > 0 {
				for px := left; px <= right; px++ {
					dst.SetColored(px, bottom, hLine(w), platformcore.ColorBrightWhite)
				}
			}
			if w := b.Left; w > 0 {
				for py := top; py <= bottom; py++ {
					dst.SetColored(left, py, vLine(w), platformcore.ColorBrightWhite)
				}
			}
			if w := b.Right; w > 0 {
				for py := top; py <= bottom; py++ {
					dst.SetColored(right, py, vLine(w), platformcore.ColorBrightWhite)
				}
			}
		}
	}
}

func hLine(width int) rune {
	if width >= heavyBorder {
		return '━'
	}
	return '─'
}

func vLine(width int) rune {
	if width >= heavyBorder {
		return '┃'
	}
	return '│'
}

func (g *Game) renderFooter(dst *platformcore.Screen) {
	_, boardH := g.boardSize()
	y := g.boardY + boardH

	info := "Nothing selected"
	if sel := g.session.Selection(); len(sel) > 0 {
		info = fmt.Sprintf("Selected: %d %s cells", len(sel), g.board.Color(sel[0]))
	}
	dst.DrawTextCentered(y, info, platformcore.ColorDefault)
}
