// Package sound describes the audio capability the game core drives. The
// ebiten-backed mixer lives in the main package; the core only sees these
// interfaces so it runs headless in tests.
package sound

// Asset keys understood by every Mixer.
const (
	Music        = "music"
	GhostHum     = "ghost_hum"
	Buzz         = "buzz"
	Hit          = "hit"
	Pickup       = "pickup"
	LevelUp      = "level_up"
	GameOverTone = "game_over"
)

// Ambience lists the horror stingers, in the order their weights refer to.
var Ambience = []string{"scary", "scary_2", "scary_3", "sweeee", "must_be_the_wind"}

// Handle is a single owned voice, e.g. a ghost's looping hum.
type Handle interface {
	Play()
	Pause()
	SetVolume(v float64)
	// Close stops the voice and frees it. Further calls are no-ops.
	Close()
}

// Mixer plays shared clips by asset key and hands out owned voices.
// Implementations swallow playback failures; the game keeps running
// silently when the runtime refuses audio.
type Mixer interface {
	Play(key string)
	Stop(key string)
	SetVolume(key string, v float64)
	SetLoop(key string, loop bool)
	// Voice creates a dedicated looping handle for key.
	Voice(key string, volume float64) Handle
}

// Nop is a Mixer that does nothing.
type Nop struct{}

func (Nop) Play(string)               {}
func (Nop) Stop(string)               {}
func (Nop) SetVolume(string, float64) {}
func (Nop) SetLoop(string, bool)      {}
func (Nop) Voice(string, float64) Handle {
	return nopHandle{}
}

type nopHandle struct{}

func (nopHandle) Play()             {}
func (nopHandle) Pause()            {}
func (nopHandle) SetVolume(float64) {}
func (nopHandle) Close()            {}
