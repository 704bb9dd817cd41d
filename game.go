package main

import (
	"math"
	"time"

	"mazehorror/internal/game"
	"mazehorror/internal/maze"
)

// app adapts the headless game core to ebiten's Update/Draw/Layout loop.
type app struct {
	core  *game.Game
	input *deviceInput
	snap  game.Snapshot
	last  time.Time

	sight      *maze.Sight
	camX, camY float64
	frame      int

	walker      *autoWalker
	stopProfile func()
}

func newApp(core *game.Game) *app {
	a := &app{
		core:  core,
		input: &deviceInput{},
		sight: maze.NewSight(),
	}
	a.snap = core.Snapshot()
	a.camX, a.camY = a.focus(a.snap)
	return a
}

// Update feeds one frame of input and wall-clock time into the core.
func (a *app) Update() error {
	now := time.Now()
	dt := 1.0 / defaultTPS
	if !a.last.IsZero() {
		dt = now.Sub(a.last).Seconds()
	}
	a.last = now
	a.frame++

	a.input.poll()
	a.handleDebugControls()

	var in game.Input = a.input
	if a.walker != nil {
		if a.walker.expired(now) {
			a.finishAutoWalk()
		} else {
			a.walker.steer(a.snap)
			in = a.walker
		}
	}
	a.core.Update(dt, in)
	a.snap = a.core.Snapshot()
	a.updateCamera(game.ClampDelta(dt))
	if a.snap.Distortion.Blackout > 0 {
		cx := a.snap.Player.X + a.snap.Player.W/2
		cy := a.snap.Player.Y + a.snap.Player.H/2
		a.sight.Refresh(a.snap.Grid, int(cx/a.snap.Tile), int(cy/a.snap.Tile), sightRadius)
	}
	return nil
}

// Layout reports the logical screen size used by Ebiten.
func (a *app) Layout(_, _ int) (int, int) { return screenW, screenH }

// focus is the world point the camera wants centred this frame.
func (a *app) focus(s game.Snapshot) (float64, float64) {
	px := s.Player.X + s.Player.W/2
	py := s.Player.Y + s.Player.H/2
	if s.State != game.Cinematic || s.Grid == nil {
		return px, py
	}
	goal := s.Goal
	gx := float64(goal.X)*s.Tile + s.Tile/2
	gy := float64(goal.Y)*s.Tile + s.Tile/2
	t := easeInOut(s.Cinematic)
	return gx + (px-gx)*t, gy + (py-gy)*t
}

func (a *app) updateCamera(dt float64) {
	fx, fy := a.focus(a.snap)
	if a.snap.State == game.Cinematic {
		a.camX, a.camY = fx, fy
		return
	}
	k := 1 - math.Exp(-cameraFollowRate*dt)
	a.camX += (fx - a.camX) * k
	a.camY += (fy - a.camY) * k
}

func easeInOut(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	return t * t * (3 - 2*t)
}
