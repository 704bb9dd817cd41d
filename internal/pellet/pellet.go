// Package pellet manages the collectibles hidden in dead ends: point pellets
// that feed a combo multiplier, time pellets that extend the round and rare
// speed pellets.
package pellet

import (
	"log"
	"math"
	"math/rand"
	"time"

	"mazehorror/internal/maze"
)

// Kind tells pellets apart.
type Kind int

const (
	Point Kind = iota
	Time
	Speed
)

func (k Kind) String() string {
	switch k {
	case Point:
		return "point"
	case Time:
		return "time"
	case Speed:
		return "speed"
	}
	return "unknown"
}

const (
	pickupRadius  = 10.0
	comboWindow   = 1.5
	comboStep     = 0.25
	comboMax      = 3.0
	pointBase     = 25
	timeBonus     = 3.0
	boostDuration = 10.0
)

// Pellet is a collectible centred on a tile.
type Pellet struct {
	Kind      Kind
	X, Y      float64
	Collected bool
}

// Pickup describes what collecting one pellet earned.
type Pickup struct {
	Pellet     Pellet
	Score      int
	TimeBonus  float64
	SpeedBoost bool
}

// System owns the pellets of the current level.
type System struct {
	tile    float64
	rng     *rand.Rand
	pellets []Pellet

	clock      float64
	comboCount int
	comboMul   float64
	comboUntil float64
	boostUntil float64
	boosted    bool
	animTime   float64
}

// New returns an empty pellet system for tiles of the given pixel size.
func New(tile float64, rng *rand.Rand) *System {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano() + 2))
	}
	return &System{tile: tile, rng: rng, comboMul: 1}
}

// Reset clears pellets, combo and boost.
func (s *System) Reset() {
	s.pellets = s.pellets[:0]
	s.comboCount = 0
	s.comboMul = 1
	s.comboUntil = 0
	s.boostUntil = 0
	s.boosted = false
}

func (s *System) centre(p maze.Point) (float64, float64) {
	return float64(p.X)*s.tile + s.tile/2, float64(p.Y)*s.tile + s.tile/2
}

// Spawn replaces the pellets with a fresh set for level. Level 1 has none.
func (s *System) Spawn(g *maze.Grid, level int) {
	s.Reset()
	if g == nil || level < 2 {
		return
	}
	ends := g.DeadEnds()
	counts := map[Kind]int{}
	for _, p := range ends {
		r := s.rng.Float64()
		var kind Kind
		switch {
		case level >= 7 && r < 0.03:
			kind = Speed
		case level >= 3 && r < 0.20:
			kind = Time
		case r < 0.15:
			kind = Point
		default:
			continue
		}
		x, y := s.centre(p)
		s.pellets = append(s.pellets, Pellet{Kind: kind, X: x, Y: y})
		counts[kind]++
	}
	log.Printf("pellet: level %d: %d dead ends, %d point, %d time, %d speed",
		level, len(ends), counts[Point], counts[Time], counts[Speed])
}

// SpawnBonus scatters up to count time pellets over open tiles near around
// and returns how many were placed.
func (s *System) SpawnBonus(g *maze.Grid, around maze.Point, count int) int {
	if g == nil || count <= 0 {
		return 0
	}
	candidates := make([]maze.Point, 0, len(bonusFootprint))
	for _, off := range bonusFootprint {
		p := maze.Point{X: around.X + off.X, Y: around.Y + off.Y}
		if g.IsOpen(p.X, p.Y) {
			candidates = append(candidates, p)
		}
	}
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if count > len(candidates) {
		count = len(candidates)
	}
	for _, p := range candidates[:count] {
		x, y := s.centre(p)
		s.pellets = append(s.pellets, Pellet{Kind: Time, X: x, Y: y})
	}
	return count
}

// Prune drops pellets left inside walls after the maze changed under them.
func (s *System) Prune(g *maze.Grid) int {
	if g == nil {
		return 0
	}
	kept := s.pellets[:0]
	for _, p := range s.pellets {
		if !p.Collected && !g.IsOpen(int(p.X/s.tile), int(p.Y/s.tile)) {
			continue
		}
		kept = append(kept, p)
	}
	dropped := len(s.pellets) - len(kept)
	s.pellets = kept
	return dropped
}

// Collect picks up every pellet within reach of the player's centre.
func (s *System) Collect(cx, cy float64) []Pickup {
	var out []Pickup
	for i := range s.pellets {
		p := &s.pellets[i]
		if p.Collected || math.Hypot(cx-p.X, cy-p.Y) >= pickupRadius {
			continue
		}
		p.Collected = true
		pick := Pickup{Pellet: *p}
		switch p.Kind {
		case Point:
			s.comboCount++
			s.comboMul = math.Min(comboMax, 1+comboStep*float64(s.comboCount-1))
			s.comboUntil = s.clock + comboWindow
			pick.Score = int(math.Floor(pointBase * s.comboMul))
		case Time:
			pick.TimeBonus = timeBonus
		case Speed:
			s.boosted = true
			s.boostUntil = s.clock + boostDuration
			pick.SpeedBoost = true
		}
		out = append(out, pick)
	}
	return out
}

// Update advances the pellet clock. It reports true on the tick a speed
// boost runs out.
func (s *System) Update(dt float64) bool {
	s.clock += dt
	s.animTime += dt
	if s.comboCount > 0 && s.clock > s.comboUntil {
		s.comboCount = 0
		s.comboMul = 1
	}
	if s.boosted && s.clock > s.boostUntil {
		s.boosted = false
		s.boostUntil = 0
		return true
	}
	return false
}

// Pellets returns the uncollected pellets.
func (s *System) Pellets() []Pellet {
	out := make([]Pellet, 0, len(s.pellets))
	for _, p := range s.pellets {
		if !p.Collected {
			out = append(out, p)
		}
	}
	return out
}

// Combo returns the live combo count and multiplier.
func (s *System) Combo() (int, float64) { return s.comboCount, s.comboMul }

// Boosted reports whether a speed pellet is active.
func (s *System) Boosted() bool { return s.boosted }

// Pulse is a 0..1 breathing factor for rendering pellets of kind k.
func (s *System) Pulse(k Kind) float64 {
	switch k {
	case Time:
		return math.Sin(s.animTime*3)*0.4 + 0.6
	case Speed:
		return math.Sin(s.animTime*5)*0.3 + 0.7
	}
	return math.Sin(s.animTime*4)*0.3 + 0.7
}
