package core

import "time"

// Phase is the engine state machine position
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

// EndReason records why a game ended
type EndReason uint8

const (
	ReasonNone EndReason = iota
	ReasonWall
	ReasonSelf
	ReasonBoardFull
)

func (r EndReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonWall:
		return "hit wall"
	case ReasonSelf:
		return "hit self"
	case ReasonBoardFull:
		return "board full"
	}
	return "unknown"
}

// GameState is the whole simulation state. It is replaced, never reset in place.
type GameState struct {
	Snake     []Cell // head first
	Direction Direction
	Pending   Direction // consumed by the next tick
	Food      Cell
	HasFood   bool
	Score     int
	Phase     Phase
	Reason    EndReason
	LastTick  time.Time
	Ticks     uint64
}

// Alive reports whether the game is still running
func (s *GameState) Alive() bool {
	return s.Phase == PhaseRunning
}

// Head returns the first snake cell
func (s *GameState) Head() Cell {
	return s.Snake[0]
}

// Occupies reports whether any snake cell equals c
func (s *GameState) Occupies(c Cell) bool {
	for _, b := range s.Snake {
		if b == c {
			return true
		}
	}
	return false
}

func newGameState(cfg Config, rng Rand, now time.Time) *GameState {
	snake := make([]Cell, len(cfg.InitialSnake))
	copy(snake, cfg.InitialSnake)

	s := &GameState{
		Snake:     snake,
		Direction: cfg.InitialDirection,
		Pending:   cfg.InitialDirection,
		Phase:     PhaseRunning,
		LastTick:  now,
	}
	s.Food, s.HasFood = SampleFood(rng, cfg.Grid(), s.Occupies, cfg.MaxFoodAttempts)
	if !s.HasFood {
		s.Phase = PhaseGameOver
		s.Reason = ReasonBoardFull
	}
	return s
}

// Snapshot is a read-only copy of the state handed to renderers
type Snapshot struct {
	Grid      Grid
	Snake     []Cell
	Food      Cell
	HasFood   bool
	Direction Direction
	Score     int
	Alive     bool
	Reason    EndReason
	Ticks     uint64
}
