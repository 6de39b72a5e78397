package core

import (
	"fmt"
	"time"
)

// CommandType identifies a player command
type CommandType uint8

const (
	CmdTurn CommandType = iota
	CmdRestart
)

// Command is a single input forwarded to the engine
type Command struct {
	Type CommandType
	Dir  Direction // CmdTurn only
}

// TurnCommand builds a direction-change command
func TurnCommand(d Direction) Command {
	return Command{Type: CmdTurn, Dir: d}
}

// RestartCommand builds a restart command
func RestartCommand() Command {
	return Command{Type: CmdRestart}
}

// Engine owns the game state and advances it one cell per Step
type Engine struct {
	cfg   Config
	grid  Grid
	rng   Rand
	clock Clock
	bus   *EventBus
	state *GameState
	frame uint64
}

// Option customises an Engine
type Option func(*Engine)

// WithRand replaces the food placement source
func WithRand(r Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithClock replaces the clock used for the initial tick timestamp
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithEventBus shares an existing bus with the engine
func WithEventBus(b *EventBus) Option {
	return func(e *Engine) { e.bus = b }
}

// NewEngine validates cfg and starts a game
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}

	e := &Engine{
		cfg:  cfg,
		grid: cfg.Grid(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewRand(cfg.Seed)
	}
	if e.clock == nil {
		e.clock = SystemClock{}
	}
	if e.bus == nil {
		e.bus = NewEventBus()
	}

	e.state = newGameState(cfg, e.rng, e.clock.Now())
	e.bus.Emit(Event{Type: EvtGameStart})
	return e, nil
}

// Config returns the configuration the engine was built with
func (e *Engine) Config() Config { return e.cfg }

// Grid returns the board
func (e *Engine) Grid() Grid { return e.grid }

// Events returns the bus the engine emits on
func (e *Engine) Events() *EventBus { return e.bus }

// Frame counts executed steps since construction, across restarts
func (e *Engine) Frame() uint64 { return e.frame }

// Alive reports whether the current game is running
func (e *Engine) Alive() bool { return e.state.Alive() }

// State returns a copy of the current state. The snake slice is shared;
// use Snapshot when the result outlives the next Step.
func (e *Engine) State() GameState { return *e.state }

// Snapshot returns a detached copy of everything a renderer needs
func (e *Engine) Snapshot() Snapshot {
	s := e.state
	snake := make([]Cell, len(s.Snake))
	copy(snake, s.Snake)
	return Snapshot{
		Grid:      e.grid,
		Snake:     snake,
		Food:      s.Food,
		HasFood:   s.HasFood,
		Direction: s.Direction,
		Score:     s.Score,
		Alive:     s.Alive(),
		Reason:    s.Reason,
		Ticks:     s.Ticks,
	}
}

// RequestDirection stores d for the next Step. The exact inverse of the
// current heading is refused, as is anything while the game is over.
func (e *Engine) RequestDirection(d Direction) bool {
	s := e.state
	if !s.Alive() || !d.Valid() {
		return false
	}
	if d.IsInverse(s.Direction) {
		return false
	}
	s.Pending = d
	return true
}

// Restart swaps in a freshly built initial state
func (e *Engine) Restart(now time.Time) {
	e.state = newGameState(e.cfg, e.rng, now)
	e.bus.Emit(Event{Type: EvtRestart, Tick: e.frame})
}

// Apply routes a command to RequestDirection or Restart
func (e *Engine) Apply(cmd Command, now time.Time) bool {
	switch cmd.Type {
	case CmdTurn:
		return e.RequestDirection(cmd.Dir)
	case CmdRestart:
		e.Restart(now)
		return true
	}
	return false
}

// Step advances the snake one cell. It returns false when the game was
// already over and nothing changed.
func (e *Engine) Step(now time.Time) bool {
	s := e.state
	if !s.Alive() {
		return false
	}
	e.frame++

	dir := s.Pending
	next := s.Head().Add(dir)

	if !e.grid.Contains(next) {
		e.end(ReasonWall)
		return true
	}
	if s.Occupies(next) {
		e.end(ReasonSelf)
		return true
	}

	if dir != s.Direction {
		e.bus.Emit(Event{Type: EvtDirectionChanged, Tick: e.frame, Payload: DirectionChanged{From: s.Direction, To: dir}})
		s.Direction = dir
	}

	s.Snake = append(s.Snake, Cell{})
	copy(s.Snake[1:], s.Snake)
	s.Snake[0] = next

	if s.HasFood && next == s.Food {
		s.Score++
		e.bus.Emit(Event{Type: EvtFoodEaten, Tick: e.frame, Payload: FoodEaten{Cell: next, Score: s.Score}})
		s.Food, s.HasFood = SampleFood(e.rng, e.grid, s.Occupies, e.cfg.MaxFoodAttempts)
		if !s.HasFood {
			e.end(ReasonBoardFull)
		}
	} else {
		s.Snake = s.Snake[:len(s.Snake)-1]
	}

	s.LastTick = now
	s.Ticks++
	e.bus.Emit(Event{Type: EvtTick, Tick: e.frame})
	return true
}

func (e *Engine) end(reason EndReason) {
	s := e.state
	s.Phase = PhaseGameOver
	s.Reason = reason
	e.bus.Emit(Event{Type: EvtGameOver, Tick: e.frame, Payload: GameOver{Reason: reason, Score: s.Score, Length: len(s.Snake)}})
}
