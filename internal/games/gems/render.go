package gems

import (
	"fmt"
	"math"

	"github.com/gemswap/gemswap/internal/core"
	"github.com/gemswap/gemswap/internal/match3"
)

const hudLines = 2

// tileGlyph maps a tile type to its screen rune and color.
func tileGlyph(t match3.TileType) (rune, core.Color) {
	switch t {
	case 1:
		return '◆', core.ColorYellow
	case 2:
		return '●', core.ColorGreen
	case 3:
		return '▲', core.ColorOrange
	case 4:
		return '■', core.ColorBrightRed
	case 5:
		return '◉', core.ColorBrightCyan
	case 6:
		return '★', core.ColorBrightBlue
	case 7:
		return '◇', core.ColorMagenta
	case 8:
		return '✦', core.ColorBrightMagenta
	default:
		return '?', core.ColorGray
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(s *core.Screen) {
	s.Clear()

	if g.tooSmall {
		g.renderTooSmall(s)
		return
	}

	g.renderHUD(s)
	g.renderBoard(s)

	if g.animating {
		g.renderSwapOverlay(s)
	}

	if g.paused {
		s.DrawTextCenteredColored(g.screenH/2, "PAUSED", core.ColorBrightYellow)
	}
}

func (g *Game) renderHUD(s *core.Screen) {
	title := g.Title()
	s.DrawTextColored(2, 0, title, core.ColorBrightWhite)
	score := fmt.Sprintf("Swaps: %d", g.score)
	s.DrawTextColored(g.screenW-len(score)-2, 0, score, core.ColorBrightCyan)

	hint := "click: select/swap | r: new board | p: pause | q: quit"
	if g.screenH > 0 {
		s.DrawTextColored(2, g.screenH-1, hint, core.ColorGray)
	}
}

func (g *Game) renderBoard(s *core.Screen) {
	border := core.NewRect(g.boardX-1, g.boardY-1, g.grid.Width()*cellW+2, g.grid.Height()*cellH+1)
	s.DrawBox(border)

	for y := 0; y < g.grid.Height(); y++ {
		for x := 0; x < g.grid.Width(); x++ {
			c := match3.C(x, y)
			if g.animating && (c.Equal(g.animOp.From) || c.Equal(g.animOp.To)) {
				continue // drawn by the swap overlay
			}
			g.renderTile(s, c, g.grid.Tile(x, y))
		}
	}
}

// renderTile draws one tile glyph at its board cell, with selection brackets
// when the tile is highlighted.
func (g *Game) renderTile(s *core.Screen, c match3.Coord, t match3.TileType) {
	sx := g.boardX + c.X*cellW + 1
	sy := g.boardY + c.Y*cellH
	r, col := tileGlyph(t)
	s.SetColored(sx, sy, r, col)
	if g.highlighted != nil && g.highlighted.Equal(c) {
		s.SetColored(sx-1, sy, '[', core.ColorBrightWhite)
		s.SetColored(sx+1, sy, ']', core.ColorBrightWhite)
	}
}

// renderSwapOverlay draws the two tiles of an in-flight swap at their
// interpolated positions. The grid already holds the post-swap layout, so the
// visual that started on From carries the type now stored at To and vice
// versa.
func (g *Game) renderSwapOverlay(s *core.Screen) {
	from := g.animOp.From
	to := g.animOp.To
	g.renderMoving(s, g.animPos[from], g.grid.Tile(to.X, to.Y))
	g.renderMoving(s, g.animPos[to], g.grid.Tile(from.X, from.Y))
}

func (g *Game) renderMoving(s *core.Screen, pos match3.Vec2, t match3.TileType) {
	sx := g.boardX + int(math.Round(pos.X*cellW)) + 1
	sy := g.boardY + int(math.Round(pos.Y*cellH))
	r, col := tileGlyph(t)
	s.SetColored(sx, sy, r, col)
}

func (g *Game) renderTooSmall(s *core.Screen) {
	minW := g.grid.Width()*cellW + 2
	minH := g.grid.Height()*cellH + hudLines + 2
	msg := fmt.Sprintf("Screen too small: need %dx%d", minW, minH)
	s.DrawTextCenteredColored(g.screenH/2, msg, core.ColorBrightRed)
	s.DrawTextCenteredColored(g.screenH/2+1, "resize the terminal or pick a smaller preset", core.ColorGray)
}
