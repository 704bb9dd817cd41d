package ghost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazehorror/internal/sound"
)

type fakePlayer struct {
	box   Rect
	speed float64
	path  []Point
}

func (p *fakePlayer) Bounds() Rect      { return p.box }
func (p *fakePlayer) MaxSpeed() float64 { return p.speed }
func (p *fakePlayer) Path() []Point     { return p.path }

func farPlayer() *fakePlayer {
	return &fakePlayer{box: Rect{X: 5000, Y: 5000, W: 15, H: 15}, speed: 300}
}

func linePath(n int) []Point {
	path := make([]Point, n)
	for i := range path {
		path[i] = Point{X: float64(i), Y: 0}
	}
	return path
}

func TestReplayRetiresAfterLastSample(t *testing.T) {
	rec := sound.NewRecorder()
	g := NewReplay(linePath(50), Point{}, DefaultReplayRate, rec.Voice(sound.GhostHum, 0.25))
	step := 1 / DefaultReplayRate
	p := farPlayer()

	for i := 1; i <= 48; i++ {
		assert.False(t, g.Update(step, p))
		require.True(t, g.Active(), "still walking after %d steps", i)
		assert.Equal(t, i, g.Index())
	}
	assert.False(t, g.Update(step, p))
	assert.False(t, g.Active(), "inactive after 49 steps")
	assert.Equal(t, Point{X: 49}, g.Position())
	assert.Equal(t, 0, rec.OpenVoices())
}

func TestReplayIsSlowerThanFrameRate(t *testing.T) {
	g := NewReplay(linePath(100), Point{}, 30, nil)
	p := farPlayer()
	for i := 0; i < 60; i++ {
		g.Update(1.0/60, p)
	}
	assert.InDelta(t, 30, g.Index(), 1)
}

func TestReplayWithoutPathRetires(t *testing.T) {
	rec := sound.NewRecorder()
	g := NewReplay([]Point{{X: 1, Y: 1}}, Point{}, 0, rec.Voice(sound.GhostHum, 0.25))
	assert.False(t, g.Update(0.1, farPlayer()))
	assert.False(t, g.Active())
	assert.Equal(t, 0, rec.OpenVoices())
}

func TestReplayCollisionReportedOnce(t *testing.T) {
	rec := sound.NewRecorder()
	path := []Point{{0, 0}, {10, 10}, {20, 20}, {30, 30}}
	g := NewReplay(path, Point{}, 10, rec.Voice(sound.GhostHum, 0.25))
	p := &fakePlayer{box: Rect{X: 12, Y: 12, W: 15, H: 15}, speed: 300}

	assert.True(t, g.Update(0.1, p))
	assert.False(t, g.Active())
	assert.Equal(t, 0, rec.OpenVoices())
	assert.False(t, g.Update(0.1, p), "no second report")

	g.Destroy()
	assert.Equal(t, 1, rec.Voices[0].Closes, "destroy is idempotent")
}

func TestReplayDriftsOntoPathBeforeReplaying(t *testing.T) {
	path := make([]Point, 20)
	for i := range path {
		path[i] = Point{X: 300 + float64(i), Y: 0}
	}
	g := NewReplay(path, Point{}, DefaultReplayRate, nil)
	p := farPlayer()

	for i := 0; i < 60; i++ {
		g.Update(1.0/60, p)
	}
	assert.False(t, g.Joined())
	assert.Zero(t, g.Index())
	assert.InDelta(t, 300*joinSpeed, g.Position().X, 1e-6)

	for i := 0; i < 60; i++ {
		g.Update(1.0/60, p)
	}
	assert.True(t, g.Joined())
	assert.Positive(t, g.Index())
	assert.True(t, g.Active())
}

func TestReplayDoesNotStrikeFromAcrossTheMaze(t *testing.T) {
	rec := sound.NewRecorder()
	p := &fakePlayer{box: Rect{X: 0, Y: 0, W: 15, H: 15}, speed: 300}
	path := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	g := NewReplay(path, Point{X: 250, Y: 0}, DefaultReplayRate, rec.Voice(sound.GhostHum, 0.25))

	assert.False(t, g.Update(0.025, p), "first frame stays near the spawn tile")
	assert.True(t, g.Active())
	assert.Greater(t, g.Position().X, 200.0)
}

func TestCloneHoldsSpawnWithoutPath(t *testing.T) {
	c := NewClone(Point{X: 100, Y: 100}, DefaultCloneTuning(), nil)
	p := farPlayer()
	for i := 0; i < 30; i++ {
		c.Update(1.0/60, p)
	}
	assert.Equal(t, Point{X: 100, Y: 100}, c.Position())
}

func TestCloneParksAtPathOriginUntilLagMet(t *testing.T) {
	tuning := DefaultCloneTuning()
	c := NewClone(Point{X: 100, Y: 100}, tuning, nil)
	p := farPlayer()
	p.path = []Point{{X: 40, Y: 40}, {X: 41, Y: 40}}
	assert.Equal(t, Point{X: 40, Y: 40}, c.Target(p.path))
	for i := 0; i < 120; i++ {
		c.Update(1.0/60, p)
	}
	assert.Equal(t, Point{X: 40, Y: 40}, c.Position())
	assert.True(t, c.IsClone())
}

func TestCloneTargetsLaggedSample(t *testing.T) {
	tuning := DefaultCloneTuning()
	tuning.Lag = 10
	c := NewClone(Point{}, tuning, nil)
	path := linePath(25)
	assert.Equal(t, Point{X: 15}, c.Target(path))
	assert.Equal(t, Point{}, NewClone(Point{}, tuning, nil).Target(nil))
}

func TestCloneSpeedIsCapped(t *testing.T) {
	tuning := CloneTuning{Lag: 5, BaseMultiplier: 1.1, ProximityBonus: 0.5, ProximityRange: 50, Ceiling: 1.2}
	c := NewClone(Point{}, tuning, nil)
	assert.InDelta(t, 330, c.Speed(300, 500), 1e-9)
	assert.InDelta(t, 360, c.Speed(300, 10), 1e-9, "bonus clipped at ceiling")
}

func TestCloneMovesAtBoundedSpeed(t *testing.T) {
	tuning := DefaultCloneTuning()
	tuning.Lag = 1
	c := NewClone(Point{}, tuning, nil)
	p := farPlayer()
	p.path = []Point{{X: 1000, Y: 0}}
	c.Update(0.1, p)
	assert.InDelta(t, 300*tuning.BaseMultiplier*0.1, c.Position().X, 1e-9)
}

func TestCloneCollides(t *testing.T) {
	rec := sound.NewRecorder()
	tuning := DefaultCloneTuning()
	tuning.Lag = 1
	c := NewClone(Point{X: 0, Y: 0}, tuning, rec.Voice(sound.GhostHum, 0.25))
	p := &fakePlayer{box: Rect{X: 5, Y: 5, W: 15, H: 15}, speed: 300, path: []Point{{X: 5, Y: 5}}}
	assert.True(t, c.Update(1.0/60, p))
	assert.False(t, c.Active())
	assert.Equal(t, 0, rec.OpenVoices())
	assert.False(t, c.Update(1.0/60, p))
}

func TestSetAudibleTogglesVoice(t *testing.T) {
	rec := sound.NewRecorder()
	c := NewClone(Point{}, DefaultCloneTuning(), rec.Voice(sound.GhostHum, 0.25))
	v := rec.Voices[0]
	c.SetAudible(true)
	assert.True(t, v.Playing)
	c.SetAudible(false)
	assert.False(t, v.Playing)
	c.SetHumVolume(0.1)
	assert.InDelta(t, 0.1, v.Volume, 1e-9)
	c.Destroy()
	c.SetAudible(true)
	assert.False(t, v.Playing, "destroyed ghosts stay silent")
	c.SetHumVolume(0.9)
	assert.InDelta(t, 0.1, v.Volume, 1e-9)
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, a.Overlaps(Rect{X: 9, Y: 9, W: 10, H: 10}))
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 10, H: 10}), "touching edges do not overlap")
}
