package game

import (
	"math"

	"mazehorror/internal/ghost"
	"mazehorror/internal/maze"
	"mazehorror/internal/sound"
)

const (
	maxArchivedPaths = 16
	humVolume        = 0.45
	// Ghosts farther than this many tiles are silent.
	hearingRange = 10.0
)

// PlayerTile is the tile under the player.
func (g *Game) PlayerTile() maze.Point { return g.player.Tile() }

// GhostCount is the number of live ghosts.
func (g *Game) GhostCount() int { return len(g.ghosts) }

func (g *Game) OldestPathStart() (maze.Point, bool) {
	if len(g.paths) == 0 {
		return maze.Point{}, false
	}
	p := g.paths[0][0]
	return maze.Point{X: int(p.X / g.tile), Y: int(p.Y / g.tile)}, true
}

// SpawnReplay releases a replay ghost at tile at on the oldest archived path.
func (g *Game) SpawnReplay(at maze.Point) bool {
	if len(g.paths) == 0 {
		return false
	}
	path := g.paths[0]
	g.paths[0] = nil
	g.paths = g.paths[1:]
	voice := g.mixer.Voice(sound.GhostHum, humVolume)
	g.ghosts = append(g.ghosts, ghost.NewReplay(path, g.ghostOrigin(at), g.tuning.Ghosts.ReplayRate, voice))
	return true
}

func (g *Game) SpawnClone(at maze.Point) bool {
	tuning := ghost.DefaultCloneTuning()
	tuning.Lag = g.tuning.Ghosts.CloneLag
	voice := g.mixer.Voice(sound.GhostHum, humVolume)
	g.ghosts = append(g.ghosts, ghost.NewClone(g.ghostOrigin(at), tuning, voice))
	return true
}

// DespawnClones destroys and removes every pursuit clone.
func (g *Game) DespawnClones() {
	g.removeGhosts(func(gh ghost.Ghost) bool { return gh.IsClone() })
}

func (g *Game) despawnAll() {
	g.removeGhosts(func(ghost.Ghost) bool { return true })
}

// removeGhosts destroys then drops every ghost matching drop.
func (g *Game) removeGhosts(drop func(ghost.Ghost) bool) {
	kept := g.ghosts[:0]
	for _, gh := range g.ghosts {
		if drop(gh) {
			gh.Destroy()
			continue
		}
		kept = append(kept, gh)
	}
	clear(g.ghosts[len(kept):])
	g.ghosts = kept
}

func (g *Game) ghostOrigin(t maze.Point) ghost.Point {
	off := (g.tile - ghost.Size) / 2
	return ghost.Point{X: float64(t.X)*g.tile + off, Y: float64(t.Y)*g.tile + off}
}

// archivePath moves the player's recording into the replay pool.
func (g *Game) archivePath() {
	path := g.player.TakePath()
	if len(path) < 2 {
		return
	}
	g.paths = append(g.paths, path)
	if len(g.paths) > maxArchivedPaths {
		g.paths[0] = nil
		g.paths = g.paths[1:]
	}
}

// updateGhosts advances every ghost, drops the finished ones and returns
// those that caught the player this tick. Hums fade out toward the edge of
// hearing range.
func (g *Game) updateGhosts(dt float64) []ghost.Ghost {
	var hits []ghost.Ghost
	cx, cy := g.player.Centre()
	kept := g.ghosts[:0]
	for _, gh := range g.ghosts {
		if gh.Update(dt, g.player) {
			hits = append(hits, gh)
		}
		if !gh.Active() {
			gh.Destroy()
			continue
		}
		pos := gh.Position()
		d := math.Hypot(pos.X+ghost.Size/2-cx, pos.Y+ghost.Size/2-cy) / g.tile
		gh.SetAudible(d < hearingRange)
		gh.SetHumVolume(humVolume * math.Max(0, 1-d/hearingRange))
		kept = append(kept, gh)
	}
	clear(g.ghosts[len(kept):])
	g.ghosts = kept
	return hits
}
