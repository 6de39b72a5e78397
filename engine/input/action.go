package input

import "github.com/1siamBot/snake-engine/engine/core"

// Action is a frontend-independent player intent
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionRestart
	ActionPause
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionRestart:
		return "restart"
	case ActionPause:
		return "pause"
	case ActionQuit:
		return "quit"
	}
	return "none"
}

// Command converts a movement or restart action to an engine command
func (a Action) Command() (core.Command, bool) {
	switch a {
	case ActionUp:
		return core.TurnCommand(core.Up), true
	case ActionDown:
		return core.TurnCommand(core.Down), true
	case ActionLeft:
		return core.TurnCommand(core.Left), true
	case ActionRight:
		return core.TurnCommand(core.Right), true
	case ActionRestart:
		return core.RestartCommand(), true
	}
	return core.Command{}, false
}

// Handle applies a to the loop and reports whether the frontend should exit.
// Restart is only honoured once the game is over and turns are dropped
// while paused.
func Handle(loop *core.GameLoop, a Action) (quit bool) {
	switch a {
	case ActionNone:
	case ActionQuit:
		loop.Stop()
		return true
	case ActionPause:
		if loop.Engine.Alive() {
			loop.TogglePause()
		}
	case ActionRestart:
		if !loop.Engine.Alive() {
			loop.Apply(core.RestartCommand())
			loop.Resume()
		}
	default:
		if loop.Paused() {
			return false
		}
		if cmd, ok := a.Command(); ok {
			loop.Apply(cmd)
		}
	}
	return false
}
