package sound

import "sync"

// Recorder is a Mixer that remembers every call instead of making noise.
type Recorder struct {
	mu      sync.Mutex
	Plays   map[string]int
	Stops   map[string]int
	Volumes map[string]float64
	Loops   map[string]bool
	Voices  []*RecordedVoice
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		Plays:   map[string]int{},
		Stops:   map[string]int{},
		Volumes: map[string]float64{},
		Loops:   map[string]bool{},
	}
}

func (r *Recorder) Play(key string) {
	r.mu.Lock()
	r.Plays[key]++
	r.mu.Unlock()
}

func (r *Recorder) Stop(key string) {
	r.mu.Lock()
	r.Stops[key]++
	r.mu.Unlock()
}

func (r *Recorder) SetVolume(key string, v float64) {
	r.mu.Lock()
	r.Volumes[key] = v
	r.mu.Unlock()
}

func (r *Recorder) SetLoop(key string, loop bool) {
	r.mu.Lock()
	r.Loops[key] = loop
	r.mu.Unlock()
}

func (r *Recorder) Voice(key string, volume float64) Handle {
	v := &RecordedVoice{Key: key, Volume: volume}
	r.mu.Lock()
	r.Voices = append(r.Voices, v)
	r.mu.Unlock()
	return v
}

// PlayCount returns how often key was played.
func (r *Recorder) PlayCount(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Plays[key]
}

// StopCount returns how often key was stopped.
func (r *Recorder) StopCount(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Stops[key]
}

// OpenVoices counts voices that were handed out and never closed.
func (r *Recorder) OpenVoices() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, v := range r.Voices {
		if v.Closes == 0 {
			n++
		}
	}
	return n
}

// RecordedVoice is the Handle returned by Recorder.
type RecordedVoice struct {
	Key     string
	Volume  float64
	Playing bool
	Closes  int
}

func (v *RecordedVoice) Play()               { v.Playing = true }
func (v *RecordedVoice) Pause()              { v.Playing = false }
func (v *RecordedVoice) SetVolume(x float64) { v.Volume = x }
func (v *RecordedVoice) Close() {
	v.Playing = false
	v.Closes++
}
