package horror

import (
	"log"
	"math/rand"

	"mazehorror/internal/maze"
)

// GhostHost is the part of the game the spawner may touch. The host owns
// every ghost; the spawner only asks for them.
type GhostHost interface {
	PlayerTile() maze.Point
	GhostCount() int
	DespawnClones()
	// OldestPathStart reports the first tile of the oldest archived path.
	OldestPathStart() (maze.Point, bool)
	// SpawnReplay consumes the oldest archived path.
	SpawnReplay(at maze.Point) bool
	SpawnClone(at maze.Point) bool
}

// GhostSpawner buys ghosts with horror level on every reshuffle. Each ghost
// already on the board makes the next one cheaper.
type GhostSpawner struct {
	NopEffect

	Trigger     float64
	BaseCost    float64
	Chance      float64
	CloneChance float64
	MaxGhosts   int
	// MinDistance is the minimum tile distance between a spawn point and
	// both the player and the replayed path's start.
	MinDistance int

	host GhostHost
}

// NewGhostSpawner returns the effect with the shipped tuning.
func NewGhostSpawner(host GhostHost) *GhostSpawner {
	return &GhostSpawner{
		Trigger:     0.5,
		BaseCost:    0.2,
		Chance:      0.4,
		CloneChance: 0.2,
		MaxGhosts:   8,
		MinDistance: 6,
		host:        host,
	}
}

func (gs *GhostSpawner) OnMazeReshuffle(s *System, g *maze.Grid) {
	if gs.host == nil || g == nil {
		log.Printf("horror: ghost spawn skipped, no maze")
		return
	}
	gs.host.DespawnClones()
	if s.Intensity() <= gs.Trigger {
		return
	}
	rng := s.Rand()
	for gs.host.GhostCount() < gs.MaxGhosts {
		cost := gs.BaseCost
		if n := gs.host.GhostCount(); n > 0 {
			cost = gs.BaseCost / float64(n)
		}
		if s.Level() < cost || rng.Float64() >= gs.Chance {
			return
		}
		start, ok := gs.host.OldestPathStart()
		if !ok {
			return
		}
		at, ok := SpawnPoint(g, rng, gs.host.PlayerTile(), start, gs.MinDistance)
		if !ok {
			return
		}
		s.Spend(cost)
		var spawned bool
		if rng.Float64() < gs.CloneChance {
			spawned = gs.host.SpawnClone(at)
		} else {
			spawned = gs.host.SpawnReplay(at)
		}
		if !spawned {
			return
		}
		log.Printf("horror: ghost spawned at (%d,%d), %d active", at.X, at.Y, gs.host.GhostCount())
	}
}

const spawnAttempts = 8

// SpawnPoint walks the maze from the player's tile and returns an open tile
// at least minDist away from both player and avoid.
func SpawnPoint(g *maze.Grid, rng *rand.Rand, player, avoid maze.Point, minDist int) (maze.Point, bool) {
	for i := 0; i < spawnAttempts; i++ {
		p := g.RandomWalk(rng, player, minDist*3)
		if maze.Manhattan(p, player) >= minDist && maze.Manhattan(p, avoid) >= minDist {
			return p, true
		}
	}
	return maze.Point{}, false
}
