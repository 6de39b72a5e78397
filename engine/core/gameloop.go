package core

import "time"

// GameLoop gates engine ticks behind a fixed interval. Update is meant to be
// called from every repaint; most calls do nothing but dispatch events.
type GameLoop struct {
	Engine   *Engine
	Interval time.Duration
	clock    Clock
	paused   bool
	stopped  bool
}

// NewGameLoop creates a loop ticking e at most once per interval
func NewGameLoop(e *Engine, interval time.Duration, clock Clock) *GameLoop {
	if clock == nil {
		clock = SystemClock{}
	}
	return &GameLoop{
		Engine:   e,
		Interval: interval,
		clock:    clock,
	}
}

// Update should be called every render frame. It runs at most one tick,
// only once Interval has elapsed since the last one, and reports whether it did.
func (gl *GameLoop) Update() bool {
	if gl.stopped {
		return false
	}

	ticked := false
	if !gl.paused && gl.Engine.Alive() {
		now := gl.clock.Now()
		if now.Sub(gl.Engine.state.LastTick) >= gl.Interval {
			ticked = gl.Engine.Step(now)
		}
	}

	gl.Engine.bus.Dispatch()
	return ticked
}

// Apply forwards a command to the engine using the loop's clock
func (gl *GameLoop) Apply(cmd Command) bool {
	if gl.stopped {
		return false
	}
	return gl.Engine.Apply(cmd, gl.clock.Now())
}

// Pause freezes ticking
func (gl *GameLoop) Pause() {
	gl.paused = true
}

// Resume restarts ticking. The interval is measured from the resume, so a
// long pause does not produce an immediate move.
func (gl *GameLoop) Resume() {
	if !gl.paused {
		return
	}
	gl.paused = false
	gl.Engine.state.LastTick = gl.clock.Now()
}

// TogglePause flips between paused and running
func (gl *GameLoop) TogglePause() {
	if gl.paused {
		gl.Resume()
	} else {
		gl.Pause()
	}
}

// Paused reports whether ticking is frozen
func (gl *GameLoop) Paused() bool { return gl.paused }

// Stop tears the loop down. Further Update and Apply calls are no-ops and
// frontends stop scheduling frames once Stopped reports true.
func (gl *GameLoop) Stop() {
	gl.stopped = true
}

// Stopped reports whether Stop has been called
func (gl *GameLoop) Stopped() bool { return gl.stopped }
