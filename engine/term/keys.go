package term

import (
	"github.com/1siamBot/snake-engine/engine/input"
	"github.com/gdamore/tcell/v2"
)

// KeyAction maps a terminal key press to a player action
func KeyAction(ev *tcell.EventKey) input.Action {
	return ActionFor(ev.Key(), ev.Rune())
}

// ActionFor maps a tcell key (and its rune for KeyRune) to an action
func ActionFor(key tcell.Key, r rune) input.Action {
	switch key {
	case tcell.KeyUp:
		return input.ActionUp
	case tcell.KeyDown:
		return input.ActionDown
	case tcell.KeyLeft:
		return input.ActionLeft
	case tcell.KeyRight:
		return input.ActionRight
	case tcell.KeyEnter:
		return input.ActionRestart
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.ActionQuit
	case tcell.KeyRune:
	default:
		return input.ActionNone
	}

	switch r {
	case 'w', 'W', 'k':
		return input.ActionUp
	case 's', 'S', 'j':
		return input.ActionDown
	case 'a', 'A', 'h':
		return input.ActionLeft
	case 'd', 'D', 'l':
		return input.ActionRight
	case 'r', 'R', ' ':
		return input.ActionRestart
	case 'p', 'P':
		return input.ActionPause
	case 'q', 'Q':
		return input.ActionQuit
	}
	return input.ActionNone
}
