package ghost

import "mazehorror/internal/sound"

// DefaultReplayRate is how many recorded samples a replay ghost consumes per
// second. Paths are recorded at the physics rate, so this plays them back at
// roughly two thirds speed.
const DefaultReplayRate = 40.0

// joinSpeed is the speed, relative to the player's top speed, at which a
// replay ghost drifts from its spawn tile onto the start of its path.
const joinSpeed = 0.6

// fallbackSpeed is used for the drift when there is no target to scale by.
const fallbackSpeed = 180.0

// Replay follows a frozen player path one sample per playback step.
type Replay struct {
	body
	path     []Point
	index    int
	interval float64
	acc      float64
	joined   bool
}

// NewReplay creates a ghost that starts at spawn and walks path at rate
// samples per second. The path is owned by the ghost from here on.
func NewReplay(path []Point, spawn Point, rate float64, voice sound.Handle) *Replay {
	if rate <= 0 {
		rate = DefaultReplayRate
	}
	return &Replay{
		body:     newBody(spawn, voice),
		path:     path,
		interval: 1 / rate,
	}
}

func (r *Replay) IsClone() bool { return false }

// Index is the current playback sample.
func (r *Replay) Index() int { return r.index }

// Len is the number of samples in the path.
func (r *Replay) Len() int { return len(r.path) }

// Joined reports whether the ghost has reached its path and started
// replaying it.
func (r *Replay) Joined() bool { return r.joined }

// Update drifts from the spawn tile to the first sample, then steps through
// the path; reaching the final sample retires the ghost.
func (r *Replay) Update(dt float64, target Target) bool {
	if !r.active {
		return false
	}
	if len(r.path) < 2 {
		r.Destroy()
		return false
	}
	if !r.joined {
		speed := fallbackSpeed
		if target != nil {
			speed = target.MaxSpeed() * joinSpeed
		}
		if !r.moveToward(r.path[0], speed*dt) {
			return r.collide(target)
		}
		r.joined = true
	}
	r.acc += dt
	for r.acc >= r.interval {
		r.acc -= r.interval
		r.index++
		r.pos = r.path[r.index]
		if r.index >= len(r.path)-1 {
			r.Destroy()
			return false
		}
	}
	return r.collide(target)
}
