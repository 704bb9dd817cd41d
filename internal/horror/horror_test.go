package horror

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazehorror/internal/maze"
	"mazehorror/internal/pellet"
	"mazehorror/internal/sound"
)

func newSystem(seed int64) *System {
	return New(DefaultConfig(), rand.New(rand.NewSource(seed)))
}

type recordingEffect struct {
	NopEffect
	calls []string
}

func (r *recordingEffect) OnGameStart(*System)                 { r.calls = append(r.calls, "start") }
func (r *recordingEffect) OnGameOver(*System)                  { r.calls = append(r.calls, "over") }
func (r *recordingEffect) OnNewLevel(*System, int)             { r.calls = append(r.calls, "level") }
func (r *recordingEffect) OnMazeReshuffle(*System, *maze.Grid) { r.calls = append(r.calls, "reshuffle") }
func (r *recordingEffect) Update(*System, float64, float64)    { r.calls = append(r.calls, "update") }

type panickyEffect struct{ NopEffect }

func (panickyEffect) OnMazeReshuffle(*System, *maze.Grid) { panic("boom") }
func (panickyEffect) Update(*System, float64, float64)    { panic("boom") }

func TestLevelCompleteClampsAtOne(t *testing.T) {
	s := newSystem(1)
	s.cfg.ReliefChance = 0
	s.OnLevelComplete(1)
	assert.InDelta(t, 0.08, s.Level(), 1e-9)
	for i := 0; i < 20; i++ {
		s.OnLevelComplete(i + 2)
		assert.LessOrEqual(t, s.Level(), 1.0)
	}
	assert.Equal(t, 1.0, s.Level())
}

func TestLevelStaysBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := newSystem(7)
	kinds := []pellet.Kind{pellet.Point, pellet.Time, pellet.Speed}
	for i := 0; i < 2000; i++ {
		switch rng.Intn(3) {
		case 0:
			s.OnMapReshuffle(nil)
		case 1:
			s.OnLevelComplete(i)
		default:
			s.OnPelletCollected(kinds[rng.Intn(len(kinds))])
		}
		require.GreaterOrEqual(t, s.Level(), 0.0)
		require.LessOrEqual(t, s.Level(), 1.0)
	}
}

func TestPelletDeltas(t *testing.T) {
	s := newSystem(1)
	s.OnPelletCollected(pellet.Time)
	assert.Equal(t, 0.0, s.Level())
	s.OnPelletCollected(pellet.Point)
	assert.InDelta(t, 0.015, s.Level(), 1e-9)
	s.OnPelletCollected(pellet.Speed)
	assert.InDelta(t, 0.0025, s.Level(), 1e-9)
}

func TestReliefNeedsEventsAndLevel(t *testing.T) {
	s := newSystem(1)
	s.cfg.ReliefChance = 1
	s.Add(0.3)
	for i := 0; i < 7; i++ {
		s.OnMapReshuffle(nil)
	}
	assert.Equal(t, 7, s.EventsSinceRelief())
	before := s.Level()
	s.OnMapReshuffle(nil)
	assert.InDelta(t, before+0.04-0.2, s.Level(), 1e-9)
	assert.Zero(t, s.EventsSinceRelief())

	low := newSystem(1)
	low.cfg.ReliefChance = 1
	low.cfg.ReshuffleGain = 0
	low.Add(0.39)
	for i := 0; i < 30; i++ {
		low.OnMapReshuffle(nil)
	}
	assert.InDelta(t, 0.39, low.Level(), 1e-9)
	assert.Equal(t, 30, low.EventsSinceRelief())
}

func TestIntensityFollowsTimeRamp(t *testing.T) {
	s := newSystem(1)
	s.StartRun()
	s.Update(60)
	assert.InDelta(t, 0.125, s.Intensity(), 1e-9)
	s.Add(0.5)
	assert.Equal(t, 0.5, s.Intensity())
	s.Update(600)
	assert.Equal(t, 1.0, s.Intensity())
	assert.Equal(t, 1.0, s.TotalInfluence())
}

func TestUpdateIdleWhenNotRunning(t *testing.T) {
	s := newSystem(1)
	rec := &recordingEffect{}
	s.AddEffect(rec)
	s.Update(1)
	assert.Empty(t, rec.calls)
	assert.Zero(t, s.Elapsed())
	s.StartRun()
	s.Update(1)
	s.EndRun()
	s.Update(1)
	assert.Equal(t, []string{"start", "update", "over"}, rec.calls)
}

func TestPanickingEffectDoesNotStopOthers(t *testing.T) {
	s := newSystem(1)
	rec := &recordingEffect{}
	s.AddEffect(panickyEffect{})
	s.AddEffect(rec)
	s.StartRun()
	require.NotPanics(t, func() {
		s.OnMapReshuffle(maze.NewGrid(9, 9))
		s.Update(0.016)
	})
	assert.Equal(t, []string{"start", "reshuffle", "update"}, rec.calls)
}

func TestStartRunResets(t *testing.T) {
	s := newSystem(1)
	s.StartRun()
	s.Add(0.7)
	s.OnMapReshuffle(nil)
	s.Update(30)
	s.EndRun()
	s.StartRun()
	assert.Zero(t, s.Level())
	assert.Zero(t, s.Elapsed())
	assert.Zero(t, s.EventsSinceRelief())
	assert.True(t, s.Running())
}

func TestAudioMoodSwapsMusicForAmbience(t *testing.T) {
	rec := sound.NewRecorder()
	s := newSystem(2)
	mood := NewAudioMood(rec)
	s.AddEffect(mood)
	s.StartRun()
	assert.Equal(t, 1, rec.PlayCount(sound.Music))

	s.Add(0.6)
	s.Update(0.016)
	assert.True(t, mood.MusicOff())
	assert.Equal(t, 1, rec.StopCount(sound.Music))
	stingers := 0
	for _, key := range sound.Ambience {
		if n := rec.PlayCount(key); n > 0 {
			stingers += n
			assert.InDelta(t, 0.5+0.5/3, rec.Volumes[key], 1e-6, "stinger louder than the floor at 0.6")
		}
	}
	assert.Equal(t, 1, stingers)

	// Repeated frames above the threshold must not stop the music again.
	s.Update(0.016)
	assert.Equal(t, 1, rec.StopCount(sound.Music))

	s.Add(-0.6)
	s.Update(0.016)
	assert.False(t, mood.MusicOff())
	assert.Equal(t, 2, rec.PlayCount(sound.Music))
}

func TestAudioMoodCooldownShrinksWithIntensity(t *testing.T) {
	s := newSystem(3)
	mood := NewAudioMood(nil)
	for i := 0; i < 100; i++ {
		c := mood.nextCooldown(s, 1)
		assert.GreaterOrEqual(t, c, 8.0)
		assert.LessOrEqual(t, c, 26.5)
		assert.Equal(t, 45.0, mood.nextCooldown(s, 0.4))
	}
}

func TestDistortionBlends(t *testing.T) {
	s := newSystem(1)
	d := NewDistortion()
	d.Update(s, 0, 0.016)
	assert.Equal(t, d.Base, d.Current())
	d.Update(s, 1, 0.016)
	assert.Equal(t, d.Max, d.Current())
	d.Update(s, 0.5, 0.016)
	assert.InDelta(t, 0.05, d.Current().StaticNoise, 1e-9)
	assert.Zero(t, d.Current().Blackout)
	d.OnGameOver(s)
	assert.Equal(t, d.Base, d.Current())
}

func TestUITintCoverage(t *testing.T) {
	s := newSystem(1)
	u := &UITint{}
	u.Update(s, 1.7, 0.016)
	assert.Equal(t, 1.0, u.Coverage())
	u.Update(s, 0.3, 0.016)
	assert.Equal(t, 0.3, u.Coverage())
	u.OnGameOver(s)
	assert.Zero(t, u.Coverage())
}

func TestCorruptMazeSpendsAndOpens(t *testing.T) {
	s := newSystem(4)
	s.Add(0.5)
	g := maze.NewGrid(33, 33)
	before := g.Clone()
	c := NewCorruptMaze()
	c.Chance = 2
	c.RareChance = 0
	c.OnMazeReshuffle(s, g)
	assert.InDelta(t, 0.45, s.Level(), 1e-9)
	changed := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.At(x, y) != before.At(x, y) {
				assert.Equal(t, maze.Blocked, before.At(x, y))
				changed++
			}
		}
	}
	assert.Positive(t, changed)
}

func TestCorruptMazeCannotAffordCost(t *testing.T) {
	s := newSystem(4)
	s.StartRun()
	s.Update(120)
	g := maze.NewGenerator(rand.New(rand.NewSource(4))).Generate(25, 25)
	before := g.Clone()
	c := NewCorruptMaze()
	c.Chance = 2
	c.RareChance = 0
	c.OnMazeReshuffle(s, g)
	assert.Equal(t, before, g)
	require.NotPanics(t, func() { c.OnMazeReshuffle(s, nil) })
}

type fakeHost struct {
	player     maze.Point
	replays    int
	clones     int
	despawns   int
	paths      int
	spawnedAt  []maze.Point
	pathOrigin maze.Point
}

func (h *fakeHost) PlayerTile() maze.Point { return h.player }
func (h *fakeHost) GhostCount() int        { return h.replays + h.clones }
func (h *fakeHost) DespawnClones()         { h.despawns++; h.clones = 0 }

func (h *fakeHost) OldestPathStart() (maze.Point, bool) {
	return h.pathOrigin, h.paths > 0
}

func (h *fakeHost) SpawnReplay(at maze.Point) bool {
	if h.paths == 0 {
		return false
	}
	h.paths--
	h.replays++
	h.spawnedAt = append(h.spawnedAt, at)
	return true
}

func (h *fakeHost) SpawnClone(at maze.Point) bool {
	h.clones++
	h.spawnedAt = append(h.spawnedAt, at)
	return true
}

func openRoom(size int) *maze.Grid {
	g := maze.NewGrid(size, size)
	for y := 1; y < size-1; y++ {
		for x := 1; x < size-1; x++ {
			g.Set(x, y, maze.Open)
		}
	}
	return g
}

func TestSpawnerIdleBelowTrigger(t *testing.T) {
	s := newSystem(5)
	host := &fakeHost{player: maze.Point{X: 1, Y: 1}, paths: 3, clones: 2}
	gs := NewGhostSpawner(host)
	s.Add(0.5)
	gs.OnMazeReshuffle(s, openRoom(25))
	assert.Equal(t, 1, host.despawns)
	assert.Zero(t, host.GhostCount())
	assert.Equal(t, 0.5, s.Level())
}

func TestSpawnerCostFallsWithCrowd(t *testing.T) {
	s := newSystem(5)
	s.Add(1)
	host := &fakeHost{player: maze.Point{X: 1, Y: 1}, paths: 20, pathOrigin: maze.Point{X: 20, Y: 20}}
	gs := NewGhostSpawner(host)
	gs.Chance = 1
	gs.CloneChance = 0
	gs.MinDistance = 1
	gs.OnMazeReshuffle(s, openRoom(25))
	assert.Equal(t, 8, host.replays)
	expected := 1 - 0.2 - 0.2 - 0.2/2 - 0.2/3 - 0.2/4 - 0.2/5 - 0.2/6 - 0.2/7
	assert.InDelta(t, expected, s.Level(), 1e-9)
	for _, p := range host.spawnedAt {
		assert.NotEqual(t, host.player, p)
	}
}

func TestSpawnerNeedsArchivedPath(t *testing.T) {
	s := newSystem(5)
	s.Add(1)
	host := &fakeHost{player: maze.Point{X: 1, Y: 1}}
	gs := NewGhostSpawner(host)
	gs.Chance = 1
	gs.OnMazeReshuffle(s, openRoom(25))
	assert.Zero(t, host.GhostCount())
	assert.Equal(t, 1.0, s.Level())
}

func TestSpawnPointKeepsDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	g := openRoom(25)
	player := maze.Point{X: 12, Y: 12}
	avoid := maze.Point{X: 1, Y: 1}
	for i := 0; i < 50; i++ {
		p, ok := SpawnPoint(g, rng, player, avoid, 4)
		if !ok {
			continue
		}
		assert.True(t, g.IsOpen(p.X, p.Y))
		assert.GreaterOrEqual(t, maze.Manhattan(p, player), 4)
		assert.GreaterOrEqual(t, maze.Manhattan(p, avoid), 4)
	}
	_, ok := SpawnPoint(openRoom(5), rng, maze.Point{X: 1, Y: 1}, maze.Point{X: 3, Y: 3}, 5)
	assert.False(t, ok)
}
