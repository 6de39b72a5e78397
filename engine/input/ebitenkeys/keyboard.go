package ebitenkeys

import (
	"github.com/1siamBot/snake-engine/engine/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultBindings maps arrows and WASD to movement
var DefaultBindings = map[ebiten.Key]input.Action{
	ebiten.KeyArrowUp:    input.ActionUp,
	ebiten.KeyArrowDown:  input.ActionDown,
	ebiten.KeyArrowLeft:  input.ActionLeft,
	ebiten.KeyArrowRight: input.ActionRight,
	ebiten.KeyW:          input.ActionUp,
	ebiten.KeyS:          input.ActionDown,
	ebiten.KeyA:          input.ActionLeft,
	ebiten.KeyD:          input.ActionRight,
	ebiten.KeyR:          input.ActionRestart,
	ebiten.KeySpace:      input.ActionRestart,
	ebiten.KeyEnter:      input.ActionRestart,
	ebiten.KeyP:          input.ActionPause,
	ebiten.KeyEscape:     input.ActionQuit,
	ebiten.KeyQ:          input.ActionQuit,
}

// Keyboard turns this frame's key presses into actions
type Keyboard struct {
	Bindings map[ebiten.Key]input.Action
	keys     []ebiten.Key
	actions  []input.Action
}

func NewKeyboard() *Keyboard {
	return &Keyboard{Bindings: DefaultBindings}
}

// Poll should be called once per frame. Every bound key pressed since the
// previous frame is reported, so two quick turns both reach the engine.
func (k *Keyboard) Poll() []input.Action {
	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	k.actions = k.actions[:0]
	for _, key := range k.keys {
		if a, ok := k.Bindings[key]; ok {
			k.actions = append(k.actions, a)
		}
	}
	return k.actions
}
