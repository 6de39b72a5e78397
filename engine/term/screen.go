package term

import (
	"fmt"

	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/gdamore/tcell/v2"
)

// Glyphs drawn for each board element. Cells are two columns wide so the
// board looks square in most terminal fonts.
const (
	glyphHead = '@'
	glyphBody = 'o'
	glyphFood = '*'
)

// Renderer draws snapshots onto a tcell screen
type Renderer struct {
	Screen tcell.Screen

	border tcell.Style
	board  tcell.Style
	head   tcell.Style
	body   tcell.Style
	food   tcell.Style
	text   tcell.Style
	alert  tcell.Style
}

func NewRenderer(s tcell.Screen) *Renderer {
	bg := tcell.NewRGBColor(0x40, 0x91, 0x6c)
	return &Renderer{
		Screen: s,
		border: tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x08, 0x1c, 0x15)),
		board:  tcell.StyleDefault.Background(bg),
		head:   tcell.StyleDefault.Background(bg).Foreground(tcell.NewRGBColor(0x2d, 0x6a, 0x4f)).Bold(true),
		body:   tcell.StyleDefault.Background(bg).Foreground(tcell.NewRGBColor(0xb7, 0xe4, 0xc7)),
		food:   tcell.StyleDefault.Background(bg).Foreground(tcell.NewRGBColor(0xe6, 0x39, 0x46)).Bold(true),
		text:   tcell.StyleDefault,
		alert:  tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xe6, 0x39, 0x46)).Bold(true),
	}
}

// Origin returns the screen column and row of cell (0,0)
func (r *Renderer) Origin() (x, y int) {
	return 1, 1
}

// CellPos returns the left column and row used for c
func (r *Renderer) CellPos(c core.Cell) (x, y int) {
	ox, oy := r.Origin()
	return ox + c.X*2, oy + c.Y
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(snap core.Snapshot, paused bool) {
	s := r.Screen
	s.Clear()

	size := snap.Grid.Size
	ox, oy := r.Origin()
	r.drawBox(ox-1, oy-1, ox+size*2, oy+size)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px, py := r.CellPos(core.Cell{X: x, Y: y})
			s.SetContent(px, py, ' ', nil, r.board)
			s.SetContent(px+1, py, ' ', nil, r.board)
		}
	}

	if snap.HasFood {
		r.putCell(snap.Food, glyphFood, r.food)
	}
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			r.putCell(snap.Snake[i], glyphHead, r.head)
		} else {
			r.putCell(snap.Snake[i], glyphBody, r.body)
		}
	}

	status := oy + size + 1
	r.puts(ox, status, fmt.Sprintf("Score: %d", snap.Score), r.text)

	switch {
	case !snap.Alive:
		msg := "Game Over!"
		if snap.Reason == core.ReasonBoardFull {
			msg = "Board full!"
		}
		r.puts(ox, status+1, msg, r.alert)
		r.puts(ox, status+2, "r: restart  q: quit", r.text)
	case paused:
		r.puts(ox, status+1, "Paused (p to resume)", r.text)
	default:
		r.puts(ox, status+1, "arrows/wasd: move  p: pause  q: quit", r.text)
	}

	s.Show()
}

func (r *Renderer) putCell(c core.Cell, glyph rune, style tcell.Style) {
	x, y := r.CellPos(c)
	r.Screen.SetContent(x, y, glyph, nil, style)
	r.Screen.SetContent(x+1, y, ' ', nil, style)
}

func (r *Renderer) puts(x, y int, str string, style tcell.Style) {
	for _, ch := range str {
		r.Screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *Renderer) drawBox(x1, y1, x2, y2 int) {
	s := r.Screen
	for x := x1 + 1; x < x2; x++ {
		s.SetContent(x, y1, tcell.RuneHLine, nil, r.border)
		s.SetContent(x, y2, tcell.RuneHLine, nil, r.border)
	}
	for y := y1 + 1; y < y2; y++ {
		s.SetContent(x1, y, tcell.RuneVLine, nil, r.border)
		s.SetContent(x2, y, tcell.RuneVLine, nil, r.border)
	}
	s.SetContent(x1, y1, tcell.RuneULCorner, nil, r.border)
	s.SetContent(x2, y1, tcell.RuneURCorner, nil, r.border)
	s.SetContent(x1, y2, tcell.RuneLLCorner, nil, r.border)
	s.SetContent(x2, y2, tcell.RuneLRCorner, nil, r.border)
}
