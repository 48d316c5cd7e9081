package xonix

import (
	"fmt"

	"github.com/vovakirdan/xonix/internal/core"
)

// hudLines is the number of screen rows above the board.
const hudLines = 1

// HalfBlock draws the upper tile in the foreground and the lower one in the
// background, so one character row shows two grid rows.
const HalfBlock = '▀'

// StatusLine formats the status values with one decimal place.
func StatusLine(st Status) string {
	return fmt.Sprintf("Area: %.1f%% | Life: %d | FPS: %.1f", st.AreaFilled*100, st.Life, st.FPS)
}

// BoardSize returns the screen area in characters needed to draw rows x cols.
func BoardSize(rows, cols int) (w, h int) {
	return cols, (rows+1)/2 + hudLines
}

// DrawBoard draws the grid as half blocks with its top-left corner at (x, y).
func DrawBoard(dst *core.Screen, g *Grid, x, y int) {
	for row := 0; row < g.Rows(); row += 2 {
		sy := y + row/2
		for col := 0; col < g.Cols(); col++ {
			cell := core.Cell{Rune: HalfBlock, Fg: TileColor(g.Get(Pos{row, col}))}
			if row+1 < g.Rows() {
				cell.Bg = TileColor(g.Get(Pos{row + 1, col}))
			}
			dst.SetCell(x+col, sy, cell)
		}
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.engine == nil {
		return
	}

	w, h := BoardSize(g.rules.Rows, g.rules.Cols)
	if dst.Width() < w || dst.Height() < h {
		g.renderTooSmall(dst, w, h)
		return
	}

	g.renderHUD(dst)
	offX := (dst.Width() - w) / 2
	DrawBoard(dst, g.engine.Grid(), offX, hudLines)

	switch {
	case g.engine.State() == StateWon:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Score: %d  R to restart", g.engine.Score()))
	case g.engine.State() == StateLost:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  R to restart", g.engine.Score()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  %s  Score: %d", g.Title(), StatusLine(g.engine.Status()), g.engine.Score())
	dst.DrawTextColor(0, 0, hud, core.ColorYellow)
}

func (g *Game) renderTooSmall(dst *core.Screen, w, h int) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Window too small")
	dst.DrawTextCentered(mid, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, dst.Width(), dst.Height()))
	dst.DrawTextCentered(mid+1, "Resize or run with --fit")
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.SetCell(x, y, core.Cell{Rune: ' '})
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
