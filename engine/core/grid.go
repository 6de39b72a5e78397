package core

import "fmt"

// Cell is an integer coordinate on the board
type Cell struct {
	X, Y int
}

// Add returns the neighbouring cell one step along d
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit step on the grid
type Direction struct {
	X, Y int
}

var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// Directions lists the four legal headings
var Directions = [4]Direction{Up, Down, Left, Right}

// Inverse returns the opposite heading
func (d Direction) Inverse() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// IsInverse reports whether o points exactly against d
func (d Direction) IsInverse(o Direction) bool {
	return d.X == -o.X && d.Y == -o.Y && d != (Direction{})
}

// Valid reports whether d is one of the four unit headings
func (d Direction) Valid() bool {
	for _, v := range Directions {
		if d == v {
			return true
		}
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("dir(%d,%d)", d.X, d.Y)
}

// Grid is the square board the snake moves on
type Grid struct {
	Size int
}

// GridFromCanvas derives the board from a pixel canvas and cell scale
func GridFromCanvas(canvasSize, scale int) Grid {
	if scale <= 0 {
		return Grid{}
	}
	return Grid{Size: canvasSize / scale}
}

// Contains reports whether c lies on the board
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Size && c.Y >= 0 && c.Y < g.Size
}

// Area returns the number of cells on the board
func (g Grid) Area() int {
	return g.Size * g.Size
}
