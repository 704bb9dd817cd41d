package horror

import (
	"log"

	"mazehorror/internal/maze"
)

// CorruptMaze knocks holes in a freshly reshuffled maze. The caller is
// responsible for repairing connectivity afterwards.
type CorruptMaze struct {
	NopEffect

	// Chance scales intensity into the per-reshuffle trigger probability.
	Chance float64
	Cost   float64
	Amount float64
	// A maxed-out meter occasionally triggers a free, much larger burst.
	RareChance float64
	RareAmount float64
}

// NewCorruptMaze returns the effect with the shipped tuning.
func NewCorruptMaze() *CorruptMaze {
	return &CorruptMaze{
		Chance:     0.5,
		Cost:       0.05,
		Amount:     0.01,
		RareChance: 0.1,
		RareAmount: 0.3,
	}
}

func (c *CorruptMaze) OnMazeReshuffle(s *System, g *maze.Grid) {
	if g == nil {
		log.Printf("horror: corrupt skipped, no maze")
		return
	}
	intensity := s.Intensity()
	rng := s.Rand()
	amount := 0.0
	switch {
	case intensity >= 0.999 && rng.Float64() < c.RareChance:
		amount = c.RareAmount
	case rng.Float64() < intensity*c.Chance && s.Spend(c.Cost):
		amount = c.Amount
	default:
		return
	}
	n := maze.Corrupt(g, rng, amount)
	log.Printf("horror: corrupted %d tiles (amount %.2f)", n, amount)
}
