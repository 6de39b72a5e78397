package term

import (
	"context"
	"time"

	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/1siamBot/snake-engine/engine/input"
	"github.com/gdamore/tcell/v2"
)

// FrameInterval is the repaint cadence, independent of the tick interval
const FrameInterval = 16 * time.Millisecond

// Run drives loop from a ~60Hz frame ticker until ctx is cancelled or the
// player quits. The loop is stopped on return so no frame outlives it.
func Run(ctx context.Context, r *Renderer, loop *core.GameLoop) error {
	defer loop.Stop()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := r.Screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	r.Draw(loop.Engine.Snapshot(), loop.Paused())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if input.Handle(loop, KeyAction(ev)) {
					return nil
				}
			case *tcell.EventResize:
				r.Screen.Sync()
			}

		case <-ticker.C:
			loop.Update()
			r.Draw(loop.Engine.Snapshot(), loop.Paused())
		}
	}
}
