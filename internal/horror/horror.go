// Package horror owns the run's fear meter. Discrete game events push the
// level up, a probabilistic relief occasionally knocks it back down and a
// slow time ramp sets a floor under it. Registered effects turn the
// resulting intensity into music changes, screen distortion, maze
// corruption and ghosts.
package horror

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"mazehorror/internal/maze"
	"mazehorror/internal/pellet"
)

// Config holds the meter's tuning.
type Config struct {
	// TargetTime is the run length in seconds at which the time ramp hits 1.
	TargetTime float64
	// ReliefChance is the probability that an eligible event grants relief.
	ReliefChance float64
	// ReliefAmount is subtracted from the level on relief.
	ReliefAmount float64
	// ReliefEvents is the number of map events that must pass between reliefs.
	ReliefEvents int
	// ReliefFloor is the minimum level at which relief can happen.
	ReliefFloor float64

	ReshuffleGain   float64
	LevelGain       float64
	PointPelletGain float64
	PelletRelief    float64
}

// DefaultConfig returns the tuning the game ships with.
func DefaultConfig() Config {
	return Config{
		TargetTime:      120,
		ReliefChance:    0.1,
		ReliefAmount:    0.2,
		ReliefEvents:    8,
		ReliefFloor:     0.4,
		ReshuffleGain:   0.04,
		LevelGain:       0.08,
		PointPelletGain: 0.015,
		PelletRelief:    0.0125,
	}
}

// System is the horror state machine.
type System struct {
	cfg Config
	rng *rand.Rand

	level           float64
	elapsed         float64
	totalMapEvents  int
	lastReliefEvent int
	running         bool

	effects []Effect
}

// New returns an idle system. A nil rng is seeded from the clock.
func New(cfg Config, rng *rand.Rand) *System {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano() + 3))
	}
	return &System{cfg: cfg, rng: rng}
}

// AddEffect registers e. Effects are notified in registration order.
func (s *System) AddEffect(e Effect) {
	if e != nil {
		s.effects = append(s.effects, e)
	}
}

// Rand is the random source shared with effects.
func (s *System) Rand() *rand.Rand { return s.rng }

// Reset zeroes the meter and the run clock.
func (s *System) Reset() {
	s.level = 0
	s.elapsed = 0
	s.totalMapEvents = 0
	s.lastReliefEvent = 0
}

// StartRun resets the meter and starts the run clock.
func (s *System) StartRun() {
	s.Reset()
	s.running = true
	s.notify("OnGameStart", func(e Effect) { e.OnGameStart(s) })
}

// EndRun stops the run clock and lets effects restore their resting state.
func (s *System) EndRun() {
	s.running = false
	s.notify("OnGameOver", func(e Effect) { e.OnGameOver(s) })
}

// Running reports whether a run is in progress.
func (s *System) Running() bool { return s.running }

// OnMapReshuffle records a reshuffle and hands g to every effect. Effects may
// mutate g in place; the caller must repair connectivity afterwards.
func (s *System) OnMapReshuffle(g *maze.Grid) {
	s.Add(s.cfg.ReshuffleGain)
	s.totalMapEvents++
	s.checkForRelief()
	s.notify("OnMazeReshuffle", func(e Effect) { e.OnMazeReshuffle(s, g) })
}

// OnLevelComplete records a finished level.
func (s *System) OnLevelComplete(level int) {
	s.Add(s.cfg.LevelGain)
	s.totalMapEvents++
	s.checkForRelief()
	s.notify("OnNewLevel", func(e Effect) { e.OnNewLevel(s, level) })
}

// OnPelletCollected nudges the level: greed is punished, survival rewarded.
func (s *System) OnPelletCollected(k pellet.Kind) {
	if k == pellet.Point {
		s.Add(s.cfg.PointPelletGain)
	} else {
		s.Add(-s.cfg.PelletRelief)
	}
	s.checkForRelief()
	s.notify("OnPelletCollected", func(e Effect) { e.OnPelletCollected(s, k) })
}

func (s *System) checkForRelief() {
	if s.totalMapEvents-s.lastReliefEvent < s.cfg.ReliefEvents {
		return
	}
	if s.level < s.cfg.ReliefFloor {
		return
	}
	if s.rng.Float64() >= s.cfg.ReliefChance {
		return
	}
	s.Add(-s.cfg.ReliefAmount)
	log.Printf("horror: relief after %d events, level now %.3f", s.totalMapEvents-s.lastReliefEvent, s.level)
	s.lastReliefEvent = s.totalMapEvents
}

// Update advances the run clock and ticks every effect.
func (s *System) Update(dt float64) {
	if !s.running {
		return
	}
	s.elapsed += dt
	intensity := s.Intensity()
	s.notify("Update", func(e Effect) { e.Update(s, intensity, dt) })
}

// Intensity is the larger of the event level and the cubic time ramp.
func (s *System) Intensity() float64 {
	t := 0.0
	if s.cfg.TargetTime > 0 {
		t = clamp01(s.elapsed / s.cfg.TargetTime)
	}
	return math.Max(s.level, t*t*t)
}

// Level is the event-driven accumulator.
func (s *System) Level() float64 { return s.level }

// Elapsed is the run clock in seconds.
func (s *System) Elapsed() float64 { return s.elapsed }

// EventsSinceRelief counts map events since the last relief.
func (s *System) EventsSinceRelief() int { return s.totalMapEvents - s.lastReliefEvent }

// TotalInfluence blends intensity and level for the HUD meter.
func (s *System) TotalInfluence() float64 {
	return math.Min(1, s.Intensity()+0.5*s.level)
}

// Add shifts the level by delta, clamped to [0,1].
func (s *System) Add(delta float64) {
	s.level = clamp01(s.level + delta)
}

// Spend deducts cost from the level if it can be afforded.
func (s *System) Spend(cost float64) bool {
	if s.level < cost {
		return false
	}
	s.Add(-cost)
	return true
}

// DebugInfo is a one-line summary for the debug overlay.
func (s *System) DebugInfo() string {
	return fmt.Sprintf("horror t=%.0fs i=%.2f lvl=%.2f events=%d/%d",
		s.elapsed, s.Intensity(), s.level, s.EventsSinceRelief(), s.cfg.ReliefEvents)
}

// notify calls fn for every effect. A panicking effect is logged and skipped
// so the rest still run.
func (s *System) notify(hook string, fn func(Effect)) {
	for _, e := range s.effects {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("horror: %T.%s failed: %v", e, hook, r)
				}
			}()
			fn(e)
		}()
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerp(a, b, t float64) float64 { return a*(1-t) + b*t }
