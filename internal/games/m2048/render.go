package m2048

import (
	"fmt"

	"github.com/vovakirdan/m2048/internal/core"
	"github.com/vovakirdan/m2048/internal/games/m2048/engine"
)

const (
	hudHeight = 2 // Title and stats rows above the board
	gapX      = 1 // Columns between tiles
)

// boardLayout places an N×N board on the screen.
type boardLayout struct {
	n              int
	cellW, cellH   int
	gapY           int
	originX        int
	originY        int
	boardW, boardH int
	fits           bool
}

// layout scales the tiles to the screen. Tiles are kept roughly square
// (a terminal cell is about twice as tall as wide) and the row gap is
// dropped before the tiles shrink below one line.
func (g *Game) layout(screenW, screenH int) boardLayout {
	n := g.eng.Size()
	l := boardLayout{n: n, gapY: 1}

	l.cellW = min((screenW-gapX*(n+1))/n, g.display.MaxCellWidth)
	availH := screenH - hudHeight
	l.cellH = (availH - l.gapY*(n+1)) / n
	if l.cellH < 1 {
		l.gapY = 0
		l.cellH = availH / n
	}
	l.cellH = min(l.cellH, max(1, l.cellW/2))

	l.fits = l.cellW >= g.display.MinCellWidth && l.cellH >= 1
	l.boardW = n*l.cellW + (n+1)*gapX
	l.boardH = n*l.cellH + (n+1)*l.gapY
	l.originX = max(0, (screenW-l.boardW)/2)
	l.originY = hudHeight
	return l
}

// cellRect returns the screen rectangle of the tile at column x, row y.
func (l boardLayout) cellRect(x, y int) core.Rect {
	return core.NewRect(
		l.originX+gapX+x*(l.cellW+gapX),
		l.originY+l.gapY+y*(l.cellH+l.gapY),
		l.cellW,
		l.cellH,
	)
}

// Render draws the game state to the screen.
// Panics with ErrUnknownTile if the grid holds a value the tile cache lacks.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	l := g.layout(dst.Width(), dst.Height())
	g.tooSmall = !l.fits
	if g.tooSmall {
		g.renderTooSmall(dst, l)
		return
	}

	g.renderHUD(dst, l)
	g.renderGrid(dst, l, g.eng.Grid())

	if g.paused {
		cx, cy := core.NewRect(l.originX, l.originY, l.boardW, l.boardH).Center()
		drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen, l boardLayout) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	minW := l.n*g.display.MinCellWidth + (l.n+1)*gapX
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %d columns", minW))
}

// renderHUD draws the title and the score line.
func (g *Game) renderHUD(dst *core.Screen, l boardLayout) {
	title := g.Title()
	dst.DrawText(l.originX+(l.boardW-len([]rune(title)))/2, 0, title)

	dst.DrawText(l.originX, 1, fmt.Sprintf("Score: %d", g.eng.Score()))

	info := fmt.Sprintf("Max: %d  Moves: %d", g.eng.MaxTile(), g.eng.Moves())
	infoX := max(l.originX, l.originX+l.boardW-len(info))
	dst.DrawText(infoX, 1, info)
}

// renderGrid draws every tile of grid.
func (g *Game) renderGrid(dst *core.Screen, l boardLayout, grid engine.Grid) {
	for y, row := range grid {
		for x, v := range row {
			tile, err := LookupTile(v)
			if err != nil {
				panic(err)
			}
			g.drawTile(dst, l.cellRect(x, y), tile)
		}
	}
}

// drawTile draws one tile: a frame when the cell is tall enough, then the
// label centered inside.
func (g *Game) drawTile(dst *core.Screen, r core.Rect, t Tile) {
	color := t.Color
	if !g.display.Colors {
		color = core.ColorDefault
	}

	cx, cy := r.Center()
	if t.Value == 0 {
		dst.SetColored(cx, cy, '·', color)
		return
	}

	inner := r
	if r.H >= 3 && r.W >= 3 {
		drawFrame(dst, r, color)
		inner = core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2)
	}

	label := t.Text(inner.W)
	dst.DrawTextColored(inner.X+(inner.W-len(label))/2, cy, label, color)
}

// drawFrame draws a rounded box outline in color.
func drawFrame(dst *core.Screen, r core.Rect, c core.Color) {
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		dst.SetColored(x, r.Y, '─', c)
		dst.SetColored(x, bottom, '─', c)
	}
	for y := r.Y + 1; y < bottom; y++ {
		dst.SetColored(r.X, y, '│', c)
		dst.SetColored(right, y, '│', c)
	}
	dst.SetColored(r.X, r.Y, '╭', c)
	dst.SetColored(right, r.Y, '╮', c)
	dst.SetColored(r.X, bottom, '╰', c)
	dst.SetColored(right, bottom, '╯', c)
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
