// Package ghost implements the two stalkers the horror director releases: a
// replay ghost that drifts along an archived player path and a pursuit clone
// that shadows the live player a fixed number of steps behind.
package ghost

import (
	"math"

	"mazehorror/internal/sound"
)

// Size is the ghost's collision box edge in pixels.
const Size = 15

// Point is a world position in pixels (top-left of a box).
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports strict AABB intersection.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Target is the live player as ghosts see it.
type Target interface {
	Bounds() Rect
	MaxSpeed() float64
	// Path is the player's recording for the current round, oldest first.
	Path() []Point
}

// Ghost is the behaviour shared by both variants.
type Ghost interface {
	// Update advances the ghost and reports whether it touched the target.
	// A ghost reports a collision at most once; it is inactive afterwards.
	Update(dt float64, target Target) bool
	Position() Point
	Bounds() Rect
	Active() bool
	IsClone() bool
	// SetAudible starts or pauses the ambient hum, e.g. when the ghost
	// enters or leaves hearing range.
	SetAudible(on bool)
	// SetHumVolume sets the hum loudness, usually from the player distance.
	SetHumVolume(v float64)
	// Destroy releases the ambient voice. It is safe to call repeatedly.
	Destroy()
}

// body holds the state common to both variants.
type body struct {
	pos     Point
	active  bool
	voice   sound.Handle
	audible bool
}

func newBody(at Point, voice sound.Handle) body {
	return body{pos: at, active: true, voice: voice}
}

func (b *body) Position() Point { return b.pos }
func (b *body) Active() bool    { return b.active }

func (b *body) Bounds() Rect {
	return Rect{X: b.pos.X, Y: b.pos.Y, W: Size, H: Size}
}

func (b *body) SetAudible(on bool) {
	if b.voice == nil || on == b.audible {
		return
	}
	b.audible = on
	if on {
		b.voice.Play()
	} else {
		b.voice.Pause()
	}
}

func (b *body) SetHumVolume(v float64) {
	if b.voice != nil {
		b.voice.SetVolume(v)
	}
}

// moveToward advances at most step pixels toward goal and reports whether
// it arrived.
func (b *body) moveToward(goal Point, step float64) bool {
	d := distance(b.pos, goal)
	if d <= step {
		b.pos = goal
		return true
	}
	b.pos.X += (goal.X - b.pos.X) / d * step
	b.pos.Y += (goal.Y - b.pos.Y) / d * step
	return false
}

func (b *body) Destroy() {
	if b.voice != nil {
		b.voice.Close()
		b.voice = nil
	}
	b.audible = false
	b.active = false
}

// collide deactivates the ghost when it overlaps the target.
func (b *body) collide(t Target) bool {
	if t == nil || !b.active {
		return false
	}
	if !b.Bounds().Overlaps(t.Bounds()) {
		return false
	}
	b.Destroy()
	return true
}

func distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
