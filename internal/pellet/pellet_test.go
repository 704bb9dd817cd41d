package pellet

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazehorror/internal/maze"
)

const tile = 25.0

func testMaze(seed int64) *maze.Grid {
	return maze.NewGenerator(rand.New(rand.NewSource(seed))).Generate(33, 33)
}

func TestNoPelletsOnFirstLevel(t *testing.T) {
	s := New(tile, rand.New(rand.NewSource(1)))
	s.Spawn(testMaze(1), 1)
	assert.Empty(t, s.Pellets())
}

func TestPelletsSitOnDeadEnds(t *testing.T) {
	g := testMaze(3)
	ends := map[[2]float64]bool{}
	for _, p := range g.DeadEnds() {
		ends[[2]float64{float64(p.X)*tile + tile/2, float64(p.Y)*tile + tile/2}] = true
	}
	s := New(tile, rand.New(rand.NewSource(3)))
	s.Spawn(g, 9)
	for _, p := range s.Pellets() {
		assert.True(t, ends[[2]float64{p.X, p.Y}], "pellet at %.1f,%.1f", p.X, p.Y)
	}
}

func TestEarlyLevelsOnlySpawnPointPellets(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		s := New(tile, rand.New(rand.NewSource(seed)))
		s.Spawn(testMaze(seed), 2)
		for _, p := range s.Pellets() {
			assert.Equal(t, Point, p.Kind)
		}
	}
}

func TestComboMultiplierGrowsAndCaps(t *testing.T) {
	s := New(tile, nil)
	var scores []int
	for i := 0; i < 12; i++ {
		s.pellets = append(s.pellets, Pellet{Kind: Point, X: 100, Y: 100})
		picks := s.Collect(100, 100)
		require.Len(t, picks, 1)
		scores = append(scores, picks[0].Score)
		s.Update(0.5)
	}
	assert.Equal(t, 25, scores[0])
	assert.Equal(t, 31, scores[1])
	assert.Equal(t, 37, scores[2])
	assert.Equal(t, 75, scores[11])
	count, mul := s.Combo()
	assert.Equal(t, 12, count)
	assert.Equal(t, 3.0, mul)
}

func TestComboExpires(t *testing.T) {
	s := New(tile, nil)
	s.pellets = []Pellet{{Kind: Point, X: 0, Y: 0}, {Kind: Point, X: 500, Y: 500}}
	s.Collect(0, 0)
	s.Update(2)
	count, mul := s.Combo()
	assert.Zero(t, count)
	assert.Equal(t, 1.0, mul)
	picks := s.Collect(500, 500)
	require.Len(t, picks, 1)
	assert.Equal(t, 25, picks[0].Score)
}

func TestPickupRadius(t *testing.T) {
	s := New(tile, nil)
	s.pellets = []Pellet{{Kind: Time, X: 0, Y: 0}}
	assert.Empty(t, s.Collect(10, 0))
	picks := s.Collect(9, 0)
	require.Len(t, picks, 1)
	assert.Equal(t, 3.0, picks[0].TimeBonus)
	assert.Empty(t, s.Collect(0, 0), "pellet collected twice")
	assert.Empty(t, s.Pellets())
}

func TestSpeedBoostExpires(t *testing.T) {
	s := New(tile, nil)
	s.pellets = []Pellet{{Kind: Speed}}
	picks := s.Collect(0, 0)
	require.Len(t, picks, 1)
	assert.True(t, picks[0].SpeedBoost)
	assert.True(t, s.Boosted())
	assert.False(t, s.Update(9.9))
	assert.True(t, s.Update(0.2))
	assert.False(t, s.Boosted())
	assert.False(t, s.Update(1))
}

func TestSpawnBonusUsesOpenTiles(t *testing.T) {
	g := testMaze(5)
	s := New(tile, rand.New(rand.NewSource(5)))
	placed := s.SpawnBonus(g, g.Start(), 3)
	assert.Positive(t, placed)
	assert.LessOrEqual(t, placed, 3)
	for _, p := range s.Pellets() {
		assert.Equal(t, Time, p.Kind)
		x, y := int(p.X/tile), int(p.Y/tile)
		assert.True(t, g.IsOpen(x, y))
		assert.LessOrEqual(t, maze.Manhattan(maze.Point{X: x, Y: y}, g.Start()), 6)
	}
}

func TestRingFootprintExcludesOrigin(t *testing.T) {
	fp := ringFootprint(1)
	assert.Len(t, fp, 4)
	for _, p := range fp {
		assert.NotEqual(t, maze.Point{}, p)
	}
}

func TestPruneDropsBuriedPellets(t *testing.T) {
	g := maze.NewGrid(9, 9)
	g.Set(1, 1, maze.Open)
	s := New(tile, nil)
	s.pellets = []Pellet{
		{Kind: Point, X: 1*tile + tile/2, Y: 1*tile + tile/2},
		{Kind: Time, X: 3*tile + tile/2, Y: 3*tile + tile/2},
	}
	assert.Equal(t, 1, s.Prune(g))
	require.Len(t, s.Pellets(), 1)
	assert.Equal(t, Point, s.Pellets()[0].Kind)
}
