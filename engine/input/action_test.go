package input

import (
	"testing"
	"time"

	"github.com/1siamBot/snake-engine/engine/core"
)

type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newLoop(t *testing.T, cfg core.Config) (*core.GameLoop, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(epoch)
	e, err := core.NewEngine(cfg, core.WithRand(zeroRand{}), core.WithClock(clock))
	if err != nil {
		t.Fatal(err)
	}
	return core.NewGameLoop(e, cfg.Interval, clock), clock
}

func TestActionCommand(t *testing.T) {
	tests := []struct {
		action Action
		want   core.Command
		ok     bool
	}{
		{ActionUp, core.TurnCommand(core.Up), true},
		{ActionDown, core.TurnCommand(core.Down), true},
		{ActionLeft, core.TurnCommand(core.Left), true},
		{ActionRight, core.TurnCommand(core.Right), true},
		{ActionRestart, core.RestartCommand(), true},
		{ActionPause, core.Command{}, false},
		{ActionQuit, core.Command{}, false},
		{ActionNone, core.Command{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			got, ok := tt.action.Command()
			if got != tt.want || ok != tt.ok {
				t.Errorf("Command() = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestHandleTurn(t *testing.T) {
	loop, _ := newLoop(t, core.DefaultConfig())

	Handle(loop, ActionUp)
	if got := loop.Engine.State().Pending; got != core.Up {
		t.Errorf("pending = %v, want up", got)
	}
	Handle(loop, ActionDown)
	if got := loop.Engine.State().Pending; got != core.Down {
		t.Errorf("pending = %v, want down", got)
	}
	Handle(loop, ActionLeft)
	if got := loop.Engine.State().Pending; got != core.Down {
		t.Errorf("reverse accepted: pending = %v", got)
	}
}

func TestHandlePauseDropsTurns(t *testing.T) {
	loop, _ := newLoop(t, core.DefaultConfig())

	Handle(loop, ActionPause)
	if !loop.Paused() {
		t.Fatal("not paused")
	}
	Handle(loop, ActionUp)
	if got := loop.Engine.State().Pending; got != core.Right {
		t.Errorf("turn applied while paused: %v", got)
	}
	Handle(loop, ActionPause)
	if loop.Paused() {
		t.Fatal("still paused")
	}
}

func TestHandleRestartOnlyWhenOver(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.InitialSnake = []core.Cell{{X: 19, Y: 5}}
	loop, clock := newLoop(t, cfg)

	clock.Advance(cfg.Interval)
	loop.Update() // (20,5) is off the board
	if loop.Engine.Alive() {
		t.Fatal("expected game over")
	}

	Handle(loop, ActionRestart)
	st := loop.Engine.State()
	if !st.Alive() || st.Head() != (core.Cell{X: 19, Y: 5}) {
		t.Fatalf("restart gave alive=%v head=%v", st.Alive(), st.Head())
	}

	restartedAt := st.LastTick
	clock.Advance(cfg.Interval / 2)
	Handle(loop, ActionRestart)
	if got := loop.Engine.State().LastTick; !got.Equal(restartedAt) {
		t.Errorf("restart while running rebuilt the game: LastTick %v -> %v", restartedAt, got)
	}
}

func TestHandleQuitStopsLoop(t *testing.T) {
	loop, _ := newLoop(t, core.DefaultConfig())
	if Handle(loop, ActionUp) {
		t.Fatal("turn reported quit")
	}
	if !Handle(loop, ActionQuit) {
		t.Fatal("quit not reported")
	}
	if !loop.Stopped() {
		t.Error("loop not stopped")
	}
}
