package style

import "github.com/1siamBot/snake-engine/engine/core"

// HUDHeight is the strip under the board holding the score line
const HUDHeight = 40

// Layout maps grid cells to screen pixels
type Layout struct {
	Scale   int // pixels per cell
	OffsetX int
	OffsetY int
}

// BoardSize returns the board's pixel size
func (l Layout) BoardSize(g core.Grid) int {
	return g.Size * l.Scale
}

// ScreenSize returns the window size needed for board and HUD
func (l Layout) ScreenSize(g core.Grid) (w, h int) {
	side := l.BoardSize(g)
	return side + 2*l.OffsetX, side + l.OffsetY + HUDHeight
}

// CellCenter returns the pixel center of c
func (l Layout) CellCenter(c core.Cell) (x, y float32) {
	half := float32(l.Scale) / 2
	return float32(l.OffsetX+c.X*l.Scale) + half, float32(l.OffsetY+c.Y*l.Scale) + half
}

// Eyes returns the two eye centers on a head facing d. Both eyes are
// pushed forward along d and spread across it.
func (l Layout) Eyes(head core.Cell, d core.Direction) (x1, y1, x2, y2 float32) {
	cx, cy := l.CellCenter(head)
	off := float32(l.Scale) * 0.15
	if d.X != 0 {
		fx := cx + float32(d.X)*off
		return fx, cy - off, fx, cy + off
	}
	fy := cy + float32(d.Y)*off
	return cx - off, fy, cx + off, fy
}

// Radii are relative to the cell size
func (l Layout) SegmentRadius() float32 { return float32(l.Scale) / 2.1 }
func (l Layout) FoodRadius() float32    { return float32(l.Scale) / 2.2 }
func (l Layout) EyeRadius() float32     { return float32(l.Scale) * 0.11 }

// GameOverHint is the line shown under the game over banner
func GameOverHint(reason core.EndReason) string {
	if reason == core.ReasonBoardFull {
		return "Board full! Press R to play again"
	}
	return "Press R to restart"
}
