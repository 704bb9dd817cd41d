package horror

import (
	"log"

	"mazehorror/internal/sound"
)

// AudioMood silences the soundtrack once intensity crosses a threshold and
// fills the quiet with ambience stingers that come faster as fear rises.
type AudioMood struct {
	NopEffect

	Threshold   float64
	MinCooldown float64
	MaxCooldown float64
	// Weights index sound.Ambience.
	Weights []float64
	// Stingers play at MinVolume just past the threshold, rising to full
	// volume at maximum intensity.
	MinVolume float64

	mixer    sound.Mixer
	musicOff bool
	cooldown float64
	playing  string
}

// NewAudioMood returns the mood effect with the shipped tuning.
func NewAudioMood(mixer sound.Mixer) *AudioMood {
	if mixer == nil {
		mixer = sound.Nop{}
	}
	return &AudioMood{
		Threshold:   0.4,
		MinCooldown: 8,
		MaxCooldown: 45,
		Weights:     []float64{0.1, 0.26, 0.1, 0.27, 0.27},
		MinVolume:   0.5,
		mixer:       mixer,
	}
}

// MusicOff reports whether the soundtrack is currently suppressed.
func (a *AudioMood) MusicOff() bool { return a.musicOff }

// Cooldown is the time left until the next stinger.
func (a *AudioMood) Cooldown() float64 { return a.cooldown }

func (a *AudioMood) OnGameStart(s *System) {
	a.musicOff = false
	a.cooldown = 0
	a.stopAmbience()
	a.mixer.SetLoop(sound.Music, true)
	a.mixer.Play(sound.Music)
}

func (a *AudioMood) OnGameOver(s *System) {
	a.stopAmbience()
	a.mixer.Stop(sound.Music)
	a.musicOff = false
	a.cooldown = 0
}

func (a *AudioMood) OnNewLevel(s *System, level int) {
	a.stopAmbience()
}

func (a *AudioMood) Update(s *System, intensity, dt float64) {
	switch {
	case intensity > a.Threshold && !a.musicOff:
		a.mixer.Stop(sound.Music)
		a.musicOff = true
		a.cooldown = 0
		log.Printf("horror: music off at intensity %.2f", intensity)
	case intensity <= a.Threshold && a.musicOff:
		a.stopAmbience()
		a.mixer.Play(sound.Music)
		a.musicOff = false
	}
	if !a.musicOff {
		return
	}
	a.cooldown -= dt
	if a.cooldown > 0 {
		return
	}
	a.playing = a.pick(s)
	a.mixer.SetVolume(a.playing, lerp(a.MinVolume, 1, a.excess(intensity)))
	a.mixer.Play(a.playing)
	a.cooldown = a.nextCooldown(s, intensity)
}

// excess maps intensity above the threshold onto [0, 1].
func (a *AudioMood) excess(intensity float64) float64 {
	if a.Threshold >= 1 {
		return 0
	}
	return clamp01((intensity - a.Threshold) / (1 - a.Threshold))
}

func (a *AudioMood) nextCooldown(s *System, intensity float64) float64 {
	e := a.excess(intensity)
	span := a.MaxCooldown - a.MinCooldown
	return a.MaxCooldown - e*span*(0.5+s.Rand().Float64()*0.5)
}

func (a *AudioMood) pick(s *System) string {
	total := 0.0
	for _, w := range a.Weights {
		total += w
	}
	r := s.Rand().Float64() * total
	for i, w := range a.Weights {
		if i >= len(sound.Ambience) {
			break
		}
		if r < w {
			return sound.Ambience[i]
		}
		r -= w
	}
	return sound.Ambience[len(sound.Ambience)-1]
}

func (a *AudioMood) stopAmbience() {
	for _, key := range sound.Ambience {
		a.mixer.Stop(key)
	}
	a.playing = ""
}
