package core

import (
	"time"

	"golang.org/x/exp/rand"
)

// Rand is the random source used for food placement
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded source; seed 0 seeds from the wall clock
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// SampleFood picks a uniformly random free cell. It draws up to maxAttempts
// cells and falls back to scanning the free cells, so it always terminates.
// The second result is false when every cell is occupied.
func SampleFood(rng Rand, grid Grid, occupied func(Cell) bool, maxAttempts int) (Cell, bool) {
	if grid.Size <= 0 {
		return Cell{}, false
	}

	for i := 0; i < maxAttempts; i++ {
		c := Cell{X: rng.Intn(grid.Size), Y: rng.Intn(grid.Size)}
		if !occupied(c) {
			return c, true
		}
	}

	free := make([]Cell, 0, grid.Area())
	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			c := Cell{X: x, Y: y}
			if !occupied(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Cell{}, false
	}
	return free[rng.Intn(len(free))], true
}
