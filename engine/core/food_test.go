package core

import "testing"

func TestSampleFoodRejectsOccupied(t *testing.T) {
	grid := Grid{Size: 4}
	occupied := map[Cell]bool{{1, 1}: true, {2, 2}: true}
	rng := &seqRand{vals: []int{1, 1, 2, 2, 3, 0}}

	got, ok := SampleFood(rng, grid, func(c Cell) bool { return occupied[c] }, 10)
	if !ok || got != (Cell{3, 0}) {
		t.Errorf("SampleFood = %v, %v; want (3,0), true", got, ok)
	}
}

func TestSampleFoodFallsBackToScan(t *testing.T) {
	grid := Grid{Size: 3}
	free := Cell{2, 1}
	occupied := func(c Cell) bool { return c != free }

	// every random draw hits an occupied cell
	rng := &seqRand{vals: []int{0, 0, 0, 0, 0, 0}}
	got, ok := SampleFood(rng, grid, occupied, 3)
	if !ok || got != free {
		t.Errorf("SampleFood = %v, %v; want %v, true", got, ok, free)
	}
}

func TestSampleFoodFullGrid(t *testing.T) {
	_, ok := SampleFood(&seqRand{}, Grid{Size: 3}, func(Cell) bool { return true }, 100)
	if ok {
		t.Error("SampleFood found a cell on a full grid")
	}
}

func TestSampleFoodEmptyGrid(t *testing.T) {
	if _, ok := SampleFood(&seqRand{}, Grid{}, func(Cell) bool { return false }, 1); ok {
		t.Error("SampleFood found a cell on a zero-size grid")
	}
}

func TestSampleFoodCoversFreeCells(t *testing.T) {
	grid := Grid{Size: 5}
	rng := NewRand(7)
	snake := map[Cell]bool{{0, 0}: true, {1, 0}: true, {2, 0}: true}

	seen := make(map[Cell]int)
	for i := 0; i < 5000; i++ {
		c, ok := SampleFood(rng, grid, func(c Cell) bool { return snake[c] }, 8)
		if !ok {
			t.Fatal("no cell found")
		}
		if snake[c] || !grid.Contains(c) {
			t.Fatalf("sampled invalid cell %v", c)
		}
		seen[c]++
	}
	if len(seen) != grid.Area()-len(snake) {
		t.Errorf("sampled %d distinct cells, want %d", len(seen), grid.Area()-len(snake))
	}
}

func TestNewRandSeedIsDeterministic(t *testing.T) {
	a, b := NewRand(99), NewRand(99)
	for i := 0; i < 10; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}
