package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

const (
	DefaultCanvasSize      = 400
	DefaultScale           = 20
	DefaultInterval        = 180 * time.Millisecond
	DefaultMaxFoodAttempts = 64
)

// Config describes the board and the starting position of a game
type Config struct {
	CanvasSize       int
	Scale            int
	Interval         time.Duration // time between ticks
	InitialSnake     []Cell        // head first
	InitialDirection Direction
	Seed             uint64 // 0 = seed from the clock
	MaxFoodAttempts  int    // random draws before the free-cell scan
}

// DefaultConfig returns the classic 20x20 board
func DefaultConfig() Config {
	return Config{
		CanvasSize:       DefaultCanvasSize,
		Scale:            DefaultScale,
		Interval:         DefaultInterval,
		InitialSnake:     []Cell{{X: 8, Y: 8}, {X: 7, Y: 8}},
		InitialDirection: Right,
		MaxFoodAttempts:  DefaultMaxFoodAttempts,
	}
}

// Grid returns the board derived from canvas size and scale
func (c Config) Grid() Grid {
	return GridFromCanvas(c.CanvasSize, c.Scale)
}

// Validate checks that a game can be started from c
func (c Config) Validate() error {
	if c.CanvasSize <= 0 || c.Scale <= 0 {
		return fmt.Errorf("%w: canvas size %d and scale %d must be positive", ErrInvalidConfig, c.CanvasSize, c.Scale)
	}
	if c.CanvasSize%c.Scale != 0 {
		return fmt.Errorf("%w: canvas size %d is not a multiple of scale %d", ErrInvalidConfig, c.CanvasSize, c.Scale)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval %v must be positive", ErrInvalidConfig, c.Interval)
	}
	if c.MaxFoodAttempts < 0 {
		return fmt.Errorf("%w: max food attempts %d is negative", ErrInvalidConfig, c.MaxFoodAttempts)
	}
	if !c.InitialDirection.Valid() {
		return fmt.Errorf("%w: initial direction %v", ErrInvalidConfig, c.InitialDirection)
	}
	if len(c.InitialSnake) == 0 {
		return fmt.Errorf("%w: initial snake is empty", ErrInvalidConfig)
	}

	grid := c.Grid()
	seen := make(map[Cell]struct{}, len(c.InitialSnake))
	for i, cell := range c.InitialSnake {
		if !grid.Contains(cell) {
			return fmt.Errorf("%w: snake cell %v outside %dx%d grid", ErrInvalidConfig, cell, grid.Size, grid.Size)
		}
		if _, dup := seen[cell]; dup {
			return fmt.Errorf("%w: snake cell %v repeated", ErrInvalidConfig, cell)
		}
		seen[cell] = struct{}{}
		if i > 0 && manhattan(cell, c.InitialSnake[i-1]) != 1 {
			return fmt.Errorf("%w: snake cells %v and %v are not adjacent", ErrInvalidConfig, c.InitialSnake[i-1], cell)
		}
	}
	if len(c.InitialSnake) > 1 && c.InitialSnake[0].Add(c.InitialDirection) == c.InitialSnake[1] {
		return fmt.Errorf("%w: initial direction %v reverses into the body", ErrInvalidConfig, c.InitialDirection)
	}
	return nil
}

// fileConfig is the on-disk shape; every field is optional
type fileConfig struct {
	CanvasSize       *int     `json:"canvas_size"`
	Scale            *int     `json:"scale"`
	Interval         string   `json:"interval"`
	InitialSnake     [][2]int `json:"initial_snake"`
	InitialDirection string   `json:"initial_direction"`
	Seed             *uint64  `json:"seed"`
	MaxFoodAttempts  *int     `json:"max_food_attempts"`
}

// LoadConfig overlays a JSON file on DefaultConfig and validates the result
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.CanvasSize != nil {
		cfg.CanvasSize = *fc.CanvasSize
	}
	if fc.Scale != nil {
		cfg.Scale = *fc.Scale
	}
	if fc.Interval != "" {
		d, err := time.ParseDuration(fc.Interval)
		if err != nil {
			return cfg, fmt.Errorf("%w: interval %q: %v", ErrInvalidConfig, fc.Interval, err)
		}
		cfg.Interval = d
	}
	if len(fc.InitialSnake) > 0 {
		cfg.InitialSnake = make([]Cell, len(fc.InitialSnake))
		for i, p := range fc.InitialSnake {
			cfg.InitialSnake[i] = Cell{X: p[0], Y: p[1]}
		}
	}
	if fc.InitialDirection != "" {
		d, ok := ParseDirection(fc.InitialDirection)
		if !ok {
			return cfg, fmt.Errorf("%w: initial direction %q", ErrInvalidConfig, fc.InitialDirection)
		}
		cfg.InitialDirection = d
	}
	if fc.Seed != nil {
		cfg.Seed = *fc.Seed
	}
	if fc.MaxFoodAttempts != nil {
		cfg.MaxFoodAttempts = *fc.MaxFoodAttempts
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ParseDirection accepts up, down, left or right
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	}
	return Direction{}, false
}

func manhattan(a, b Cell) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
