package core

import (
	"testing"
	"time"
)

func newTestLoop(t *testing.T) (*GameLoop, *ManualClock) {
	t.Helper()
	clock := NewManualClock(epoch)
	e, err := NewEngine(DefaultConfig(), WithRand(&seqRand{vals: []int{0, 0}}), WithClock(clock))
	if err != nil {
		t.Fatal(err)
	}
	return NewGameLoop(e, DefaultInterval, clock), clock
}

func TestGameLoopGatesOnInterval(t *testing.T) {
	loop, clock := newTestLoop(t)

	tests := []struct {
		name    string
		advance time.Duration
		ticked  bool
		ticks   uint64
	}{
		{"same instant", 0, false, 0},
		{"just short", DefaultInterval - time.Millisecond, false, 0},
		{"interval reached", time.Millisecond, true, 1},
		{"next frame", 16 * time.Millisecond, false, 1},
		{"long stall runs one tick", 5 * DefaultInterval, true, 2},
		{"frame after stall", time.Millisecond, false, 2},
	}
	for _, tt := range tests {
		clock.Advance(tt.advance)
		if got := loop.Update(); got != tt.ticked {
			t.Errorf("%s: Update() = %v, want %v", tt.name, got, tt.ticked)
		}
		if got := loop.Engine.State().Ticks; got != tt.ticks {
			t.Errorf("%s: ticks = %d, want %d", tt.name, got, tt.ticks)
		}
	}
}

func TestGameLoopManyFramesPerTick(t *testing.T) {
	loop, clock := newTestLoop(t)

	frames, ticks := 0, 0
	for i := 0; i < 60; i++ { // one second at 60Hz
		clock.Advance(time.Second / 60)
		frames++
		if loop.Update() {
			ticks++
		}
	}
	// 1000ms / 180ms, minus drift from whole frames
	if ticks < 4 || ticks > 5 {
		t.Errorf("%d ticks over %d frames, want 4-5", ticks, frames)
	}
}

func TestGameLoopPauseResume(t *testing.T) {
	loop, clock := newTestLoop(t)

	loop.Pause()
	clock.Advance(10 * DefaultInterval)
	if loop.Update() {
		t.Fatal("ticked while paused")
	}

	loop.Resume()
	if loop.Update() {
		t.Fatal("ticked immediately after resume")
	}
	clock.Advance(DefaultInterval)
	if !loop.Update() {
		t.Fatal("no tick one interval after resume")
	}

	loop.TogglePause()
	if !loop.Paused() {
		t.Fatal("TogglePause did not pause")
	}
	loop.TogglePause()
	if loop.Paused() {
		t.Fatal("TogglePause did not resume")
	}
}

func TestGameLoopStop(t *testing.T) {
	loop, clock := newTestLoop(t)

	var delivered int
	loop.Engine.Events().On(EvtTick, func(Event) { delivered++ })

	loop.Stop()
	clock.Advance(DefaultInterval)
	if loop.Update() {
		t.Error("ticked after Stop")
	}
	if loop.Apply(TurnCommand(Up)) {
		t.Error("command accepted after Stop")
	}
	if !loop.Stopped() {
		t.Error("Stopped() = false")
	}
	if delivered != 0 {
		t.Errorf("%d tick events after Stop", delivered)
	}
}

func TestGameLoopDispatchesEvents(t *testing.T) {
	loop, clock := newTestLoop(t)

	var started, ticks int
	loop.Engine.Events().On(EvtGameStart, func(Event) { started++ })
	loop.Engine.Events().On(EvtTick, func(Event) { ticks++ })

	loop.Update()
	if started != 1 {
		t.Errorf("start events = %d, want 1", started)
	}
	clock.Advance(DefaultInterval)
	loop.Update()
	if ticks != 1 {
		t.Errorf("tick events = %d, want 1", ticks)
	}
}

func TestGameLoopIdleAfterGameOver(t *testing.T) {
	loop, clock := newTestLoop(t)

	for i := 0; i < 20 && loop.Engine.Alive(); i++ {
		clock.Advance(DefaultInterval)
		loop.Update()
	}
	if loop.Engine.Alive() {
		t.Fatal("snake never hit the wall")
	}

	clock.Advance(DefaultInterval)
	if loop.Update() {
		t.Error("ticked after game over")
	}

	loop.Apply(RestartCommand())
	if loop.Update() {
		t.Error("ticked immediately after restart")
	}
	clock.Advance(DefaultInterval)
	if !loop.Update() {
		t.Error("no tick one interval after restart")
	}
}

func TestEventBusHandlerEmitsDuringDispatch(t *testing.T) {
	bus := NewEventBus()
	var order []EventType
	bus.On(EvtGameOver, func(Event) {
		order = append(order, EvtGameOver)
		bus.Emit(Event{Type: EvtRestart})
	})
	bus.On(EvtRestart, func(Event) { order = append(order, EvtRestart) })

	bus.Emit(Event{Type: EvtGameOver})
	bus.Dispatch()
	if len(order) != 1 || bus.Pending() != 1 {
		t.Fatalf("after first dispatch order=%v pending=%d", order, bus.Pending())
	}
	bus.Dispatch()
	if len(order) != 2 || order[1] != EvtRestart || bus.Pending() != 0 {
		t.Fatalf("after second dispatch order=%v pending=%d", order, bus.Pending())
	}
}
