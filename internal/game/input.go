package game

import "math"

// Input is the player's controls as the game core sees them.
type Input interface {
	// Vector is the desired direction, each axis in [-1, 1].
	Vector() (x, y float64)
	// Clicked reports a confirm press since the last call and resets it.
	Clicked() bool
}

// Deadzone is the stick magnitude below which input reads as idle.
const Deadzone = 0.15

// NormalizeVector drops input inside the deadzone and scales anything
// longer than 1 back onto the unit circle.
func NormalizeVector(x, y float64) (float64, float64) {
	mag := math.Hypot(x, y)
	if mag < Deadzone {
		return 0, 0
	}
	if mag > 1 {
		return x / mag, y / mag
	}
	return x, y
}

// Idle is an Input that never moves or clicks.
type Idle struct{}

func (Idle) Vector() (float64, float64) { return 0, 0 }
func (Idle) Clicked() bool              { return false }
