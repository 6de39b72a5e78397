package audio

import "github.com/1siamBot/snake-engine/engine/core"

// SoundID identifies a sound effect
type SoundID string

const (
	SndStart    SoundID = "start"
	SndEat      SoundID = "eat"
	SndTurn     SoundID = "turn"
	SndGameOver SoundID = "gameover"
)

// Sink plays synthesized effects on some output device
type Sink interface {
	Play(id SoundID, volume float64)
}

// AudioManager turns game events into sound effects
type AudioManager struct {
	MasterVolume float64
	SFXVolume    float64
	Muted        bool
	sink         Sink
}

func NewAudioManager(sink Sink) *AudioManager {
	return &AudioManager{
		MasterVolume: 1.0,
		SFXVolume:    0.8,
		sink:         sink,
	}
}

// Attach subscribes the manager to engine events
func (am *AudioManager) Attach(bus *core.EventBus) {
	bus.On(core.EvtGameStart, func(core.Event) { am.PlaySFX(SndStart) })
	bus.On(core.EvtRestart, func(core.Event) { am.PlaySFX(SndStart) })
	bus.On(core.EvtFoodEaten, func(core.Event) { am.PlaySFX(SndEat) })
	bus.On(core.EvtDirectionChanged, func(core.Event) { am.PlaySFX(SndTurn) })
	bus.On(core.EvtGameOver, func(core.Event) { am.PlaySFX(SndGameOver) })
}

// PlaySFX plays a sound effect at the current volume
func (am *AudioManager) PlaySFX(id SoundID) {
	if am.Muted || am.sink == nil {
		return
	}
	vol := am.SFXVolume * am.MasterVolume
	if vol <= 0 {
		return
	}
	am.sink.Play(id, vol)
}

// SetVolume sets master volume (0-1)
func (am *AudioManager) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	am.MasterVolume = v
}

// ToggleMute flips the mute flag
func (am *AudioManager) ToggleMute() {
	am.Muted = !am.Muted
}
