package game

import (
	"math"

	"mazehorror/internal/ghost"
	"mazehorror/internal/horror"
	"mazehorror/internal/maze"
	"mazehorror/internal/pellet"
	"mazehorror/internal/scores"
)

// GhostView is a ghost as the renderer needs it.
type GhostView struct {
	Pos   ghost.Point
	Clone bool
}

// PelletView is a pellet plus its current glow.
type PelletView struct {
	pellet.Pellet
	Pulse float64
}

// Snapshot is the read-only frame state handed to the renderer.
type Snapshot struct {
	State     State
	StateTime float64
	Grid      *maze.Grid
	Tile      float64

	Player  ghost.Rect
	Goal    maze.Point
	Ghosts  []GhostView
	Pellets []PelletView

	Level     int
	Score     int
	Timer     float64
	Wait      float64
	Countdown float64
	Combo     int
	ComboMul  float64
	Boosted   bool

	Intensity  float64
	Influence  float64
	Tint       float64
	Distortion horror.Params
	HorrorInfo string
	MusicOff   bool

	// IntroReady is set once a click will start the run.
	IntroReady bool
	// Cinematic runs 0..1 over the camera sweep.
	Cinematic float64
	// WinProgress runs 0..1 over the win dissolve.
	WinProgress float64
	Shake       float64
	TopScores   []scores.Entry
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:      g.state,
		StateTime:  g.stateTime,
		Grid:       g.grid,
		Tile:       g.tile,
		Player:     g.player.Bounds(),
		Goal:       g.grid.Goal(),
		Level:      g.level,
		Score:      g.score,
		Timer:      math.Max(0, g.timer),
		Wait:       g.wait,
		Countdown:  g.countdown,
		Boosted:    g.pellets.Boosted(),
		Intensity:  g.horror.Intensity(),
		Influence:  g.horror.TotalInfluence(),
		Tint:       g.tint.Coverage(),
		Distortion: g.distortion.Current(),
		HorrorInfo: g.horror.DebugInfo(),
		MusicOff:   g.mood.MusicOff(),
		IntroReady: g.state == Intro && g.stateTime >= introDuration,
		Shake:      g.shake,
		TopScores:  g.topScores,
	}
	s.Combo, s.ComboMul = g.pellets.Combo()
	if ct := g.tuning.Round.CinematicTime; g.state == Cinematic && ct > 0 {
		s.Cinematic = math.Min(1, g.stateTime/ct)
	}
	if wt := g.tuning.Round.WinAnimTime; g.state == Winning && wt > 0 {
		s.WinProgress = math.Min(1, g.stateTime/wt)
	}
	for _, gh := range g.ghosts {
		s.Ghosts = append(s.Ghosts, GhostView{Pos: gh.Position(), Clone: gh.IsClone()})
	}
	for _, p := range g.pellets.Pellets() {
		s.Pellets = append(s.Pellets, PelletView{Pellet: p, Pulse: g.pellets.Pulse(p.Kind)})
	}
	return s
}
