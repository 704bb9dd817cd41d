package horror

import (
	"mazehorror/internal/maze"
	"mazehorror/internal/pellet"
)

// Effect reacts to horror events. Embed NopEffect to implement only the
// hooks you need. Hooks may be called redundantly and must tolerate it.
type Effect interface {
	OnGameStart(s *System)
	OnGameOver(s *System)
	OnNewLevel(s *System, level int)
	OnMazeReshuffle(s *System, g *maze.Grid)
	OnPelletCollected(s *System, k pellet.Kind)
	Update(s *System, intensity, dt float64)
}

// NopEffect implements every hook as a no-op.
type NopEffect struct{}

func (NopEffect) OnGameStart(*System)                    {}
func (NopEffect) OnGameOver(*System)                     {}
func (NopEffect) OnNewLevel(*System, int)                {}
func (NopEffect) OnMazeReshuffle(*System, *maze.Grid)    {}
func (NopEffect) OnPelletCollected(*System, pellet.Kind) {}
func (NopEffect) Update(*System, float64, float64)       {}
