package audio

import (
	"math"
	"time"
)

// Voice describes one synthesized effect
type Voice struct {
	Freq     float64 // Hz
	Duration time.Duration
	Decay    float64 // exponential envelope rate
}

// Voices is the effect table shared by every sink
var Voices = map[SoundID]Voice{
	SndStart:    {Freq: 660, Duration: 120 * time.Millisecond, Decay: 4},
	SndEat:      {Freq: 880, Duration: 100 * time.Millisecond, Decay: 3},
	SndTurn:     {Freq: 440, Duration: 30 * time.Millisecond, Decay: 8},
	SndGameOver: {Freq: 220, Duration: 500 * time.Millisecond, Decay: 3},
}

// Sample returns the envelope-shaped sine value of v at time t, in [-1,1]
func (v Voice) Sample(t float64) float64 {
	return math.Sin(2*math.Pi*v.Freq*t) * math.Exp(-v.Decay*t)
}

// Tone renders v as 16-bit little-endian stereo PCM
func Tone(v Voice, sampleRate int) []byte {
	n := int(float64(sampleRate) * v.Duration.Seconds())
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		s := int16(v.Sample(t) * 6000)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(s)
			buf[idx+1] = byte(s >> 8)
		}
	}
	return buf
}
