package render

import (
	"fmt"
	"image/color"

	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/1siamBot/snake-engine/engine/render/style"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// BoardRenderer draws a snapshot of the game. It never touches engine state.
type BoardRenderer struct {
	Layout style.Layout
	Theme  style.Theme
	face   *text.GoXFace

	background *ebiten.Image
	bgGrid     core.Grid
}

// NewBoardRenderer creates a renderer for cells of scale pixels
func NewBoardRenderer(scale int, theme style.Theme) *BoardRenderer {
	return &BoardRenderer{
		Layout: style.Layout{Scale: scale},
		Theme:  theme,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw renders board, snake, food and HUD for one frame
func (r *BoardRenderer) Draw(screen *ebiten.Image, snap core.Snapshot, paused bool) {
	screen.Fill(color.White)
	r.drawBackground(screen, snap.Grid)

	if snap.HasFood {
		fx, fy := r.Layout.CellCenter(snap.Food)
		vector.DrawFilledCircle(screen, fx, fy, r.Layout.FoodRadius(), r.Theme.Food, true)
	}

	// tail first so the head is painted on top
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		c := snap.Snake[i]
		x, y := r.Layout.CellCenter(c)
		clr := r.Theme.Body
		if i == 0 {
			clr = r.Theme.Head
		}
		vector.DrawFilledCircle(screen, x, y, r.Layout.SegmentRadius(), clr, true)
	}
	if len(snap.Snake) > 0 {
		x1, y1, x2, y2 := r.Layout.Eyes(snap.Snake[0], snap.Direction)
		vector.DrawFilledCircle(screen, x1, y1, r.Layout.EyeRadius(), r.Theme.Eye, true)
		vector.DrawFilledCircle(screen, x2, y2, r.Layout.EyeRadius(), r.Theme.Eye, true)
	}

	side := float32(r.Layout.BoardSize(snap.Grid))
	vector.StrokeRect(screen, float32(r.Layout.OffsetX), float32(r.Layout.OffsetY), side, side, 3, r.Theme.Border, false)

	r.drawHUD(screen, snap, paused)
}

func (r *BoardRenderer) drawBackground(screen *ebiten.Image, g core.Grid) {
	side := r.Layout.BoardSize(g)
	if side <= 0 {
		return
	}
	if r.background == nil || r.bgGrid != g {
		r.background = ebiten.NewImage(side, side)
		for y := 0; y < side; y++ {
			t := float64(y) / float64(side-1)
			clr := style.Lerp(r.Theme.BackgroundTop, r.Theme.BackgroundBottom, t)
			vector.DrawFilledRect(r.background, 0, float32(y), float32(side), 1, clr, false)
		}
		r.bgGrid = g
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.Layout.OffsetX), float64(r.Layout.OffsetY))
	screen.DrawImage(r.background, op)
}

func (r *BoardRenderer) drawHUD(screen *ebiten.Image, snap core.Snapshot, paused bool) {
	side := r.Layout.BoardSize(snap.Grid)
	cx := float64(r.Layout.OffsetX + side/2)
	hudY := float64(r.Layout.OffsetY + side + style.HUDHeight/2)

	r.drawCentered(screen, fmt.Sprintf("Score: %d", snap.Score), cx, hudY, r.Theme.Text)

	boardMid := float64(r.Layout.OffsetY + side/2)
	switch {
	case !snap.Alive:
		vector.DrawFilledRect(screen, float32(r.Layout.OffsetX), float32(boardMid-30), float32(side), 60, color.RGBA{255, 255, 255, 200}, false)
		r.drawCentered(screen, "Game Over!", cx, boardMid-10, r.Theme.GameOver)
		r.drawCentered(screen, style.GameOverHint(snap.Reason), cx, boardMid+10, r.Theme.Text)
	case paused:
		r.drawCentered(screen, "Paused", cx, boardMid, r.Theme.Text)
	}
}

func (r *BoardRenderer) drawCentered(screen *ebiten.Image, s string, cx, cy float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, r.face, op)
}
