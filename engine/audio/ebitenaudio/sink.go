package ebitenaudio

import (
	"log"

	"github.com/1siamBot/snake-engine/engine/audio"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

// Sink plays effects through Ebitengine's audio context. Every voice is
// rendered once up front and rewound on each play.
type Sink struct {
	ctx     *ebaudio.Context
	players map[audio.SoundID]*ebaudio.Player
}

// New builds players for every known voice
func New() *Sink {
	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(SampleRate)
	}
	s := &Sink{
		ctx:     ctx,
		players: make(map[audio.SoundID]*ebaudio.Player, len(audio.Voices)),
	}
	for id, v := range audio.Voices {
		s.players[id] = ctx.NewPlayerFromBytes(audio.Tone(v, ctx.SampleRate()))
	}
	return s
}

func (s *Sink) Play(id audio.SoundID, volume float64) {
	p, ok := s.players[id]
	if !ok {
		return
	}
	p.SetVolume(volume)
	if err := p.Rewind(); err != nil {
		log.Printf("audio: rewind %s: %v", id, err)
		return
	}
	p.Play()
}
