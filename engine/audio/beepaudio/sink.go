package beepaudio

import (
	"fmt"
	"sync"
	"time"

	"github.com/1siamBot/snake-engine/engine/audio"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sink plays effects on the system speaker through beep
type Sink struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	closed bool
}

// New initialises the speaker. Callers should treat an error as "run silent".
func New() (*Sink, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	s := &Sink{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

func (s *Sink) Play(id audio.SoundID, volume float64) {
	v, ok := audio.Voices[id]
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(NewVoiceStreamer(v, sampleRate, volume))
	speaker.Unlock()
}

// Close silences and releases the speaker
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}

// VoiceStreamer renders a Voice as a finite beep.Streamer
type VoiceStreamer struct {
	voice audio.Voice
	sr    beep.SampleRate
	gain  float64
	pos   int
	total int
}

func NewVoiceStreamer(v audio.Voice, sr beep.SampleRate, gain float64) *VoiceStreamer {
	return &VoiceStreamer{
		voice: v,
		sr:    sr,
		gain:  gain,
		total: sr.N(v.Duration),
	}
}

func (g *VoiceStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		sample := g.voice.Sample(t) * 0.2 * g.gain
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
		n++
	}
	return n, true
}

func (g *VoiceStreamer) Err() error {
	return nil
}
