package main

import (
	"math"
	"math/rand"

	"mazehorror/internal/sound"
)

// droneStream is an endless low hum used for a ghost's voice when no
// ghost_hum clip is available. Each ghost gets its own pitch.
type droneStream struct {
	freq   float64
	phase  float64
	phase2 float64
	lfo    float64
	noise  float64
	rng    *rand.Rand
}

func newDroneStream(freq float64, seed int64) *droneStream {
	return &droneStream{freq: freq, rng: rand.New(rand.NewSource(seed))}
}

func (s *droneStream) Read(p []byte) (int, error) {
	// Whole stereo frames only (4 bytes per frame).
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	step := 2 * math.Pi * s.freq / audioSampleRate
	step2 := step * 1.013
	lfoStep := 2 * math.Pi * 0.3 / audioSampleRate
	for i := 0; i < frameBytes; i += 4 {
		s.phase = math.Mod(s.phase+step, 2*math.Pi)
		s.phase2 = math.Mod(s.phase2+step2, 2*math.Pi)
		s.lfo = math.Mod(s.lfo+lfoStep, 2*math.Pi)
		s.noise += 0.02 * (s.rng.Float64()*2 - 1 - s.noise)
		v := (0.45*math.Sin(s.phase) + 0.3*math.Sin(s.phase2) + 0.5*s.noise) * (0.6 + 0.4*math.Sin(s.lfo))
		putFrame(p[i:], v*0.5)
	}
	return frameBytes, nil
}

func (s *droneStream) Close() error {
	return nil
}

// putFrame writes v in [-1, 1] as a 16-bit little-endian stereo frame.
func putFrame(p []byte, v float64) {
	v = math.Max(-1, math.Min(1, v))
	x := int16(v * pcm16MaxValue)
	p[0] = byte(x)
	p[1] = byte(x >> 8)
	p[2] = p[0]
	p[3] = p[1]
}

// synthTone renders a decaying tone; square gives the harsher buzz.
func synthTone(freq, dur, decay float64, square bool) []byte {
	n := int(audioSampleRate * dur)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / audioSampleRate
		v := math.Sin(2 * math.Pi * freq * t)
		if square {
			v = math.Copysign(0.6, v)
		}
		putFrame(buf[i*4:], v*0.35*math.Exp(-decay*t))
	}
	return buf
}

// synthPad renders a slow minor arpeggio that loops cleanly.
func synthPad() []byte {
	notes := []float64{110.0, 130.81, 164.81, 146.83}
	const noteDur = 1.6
	per := int(audioSampleRate * noteDur)
	buf := make([]byte, per*len(notes)*4)
	for n, freq := range notes {
		for j := 0; j < per; j++ {
			t := float64(j) / audioSampleRate
			env := math.Sin(math.Pi * t / noteDur)
			v := math.Sin(2*math.Pi*freq*t)*0.5 + math.Sin(2*math.Pi*freq*1.5*t)*0.2
			putFrame(buf[(n*per+j)*4:], v*0.25*env)
		}
	}
	return buf
}

// synthFallback stands in for clips missing from the assets directory.
// Ambience stingers have no stand-in and simply stay silent.
func synthFallback(key string) []byte {
	switch key {
	case sound.Music:
		return synthPad()
	case sound.Buzz:
		return synthTone(110, 0.35, 4, true)
	case sound.Hit:
		return synthTone(180, 0.2, 8, false)
	case sound.Pickup:
		return synthTone(880, 0.1, 12, false)
	case sound.LevelUp:
		return synthTone(660, 0.4, 3, false)
	case sound.GameOverTone:
		return synthTone(196, 0.9, 2, false)
	}
	return nil
}
