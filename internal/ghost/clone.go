package ghost

import "mazehorror/internal/sound"

// CloneTuning controls how hard a pursuit clone presses the player.
type CloneTuning struct {
	Lag            int     // samples behind the head of the player's path
	BaseMultiplier float64 // speed relative to the player's max speed
	ProximityBonus float64 // added multiplier when close to the player
	ProximityRange float64 // pixels
	Ceiling        float64 // hard cap relative to the player's max speed
}

// DefaultCloneTuning keeps the clone slightly faster than the player but far
// enough behind to be outrun through corners.
func DefaultCloneTuning() CloneTuning {
	return CloneTuning{
		Lag:            45,
		BaseMultiplier: 1.05,
		ProximityBonus: 0.15,
		ProximityRange: 100,
		Ceiling:        1.15,
	}
}

// Clone chases the position the player held Lag steps ago.
type Clone struct {
	body
	tuning CloneTuning
}

// NewClone creates a clone parked at spawn.
func NewClone(spawn Point, tuning CloneTuning, voice sound.Handle) *Clone {
	if tuning.Lag < 1 {
		tuning.Lag = 1
	}
	return &Clone{body: newBody(spawn, voice), tuning: tuning}
}

func (c *Clone) IsClone() bool { return true }

// Target returns where the clone is heading given the player's live path.
// With no samples yet it holds its spawn tile; with fewer samples than the
// lag it heads for the path origin and parks there.
func (c *Clone) Target(path []Point) Point {
	switch {
	case len(path) == 0:
		return c.pos
	case len(path) < c.tuning.Lag:
		return path[0]
	}
	return path[len(path)-c.tuning.Lag]
}

// Speed is the clone's pixels-per-second speed at distance dist from the
// player.
func (c *Clone) Speed(playerMax, dist float64) float64 {
	mul := c.tuning.BaseMultiplier
	if dist < c.tuning.ProximityRange {
		mul += c.tuning.ProximityBonus
	}
	if mul > c.tuning.Ceiling {
		mul = c.tuning.Ceiling
	}
	return playerMax * mul
}

func (c *Clone) Update(dt float64, target Target) bool {
	if !c.active {
		return false
	}
	if target == nil {
		return false
	}
	goal := c.Target(target.Path())
	pb := target.Bounds()
	speed := c.Speed(target.MaxSpeed(), distance(c.pos, Point{X: pb.X, Y: pb.Y}))
	c.moveToward(goal, speed*dt)
	return c.collide(target)
}
