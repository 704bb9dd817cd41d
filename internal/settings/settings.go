// Package settings loads gameplay tuning from a YAML file. Every field has a
// default, so the file only needs the values being changed.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the full set of gameplay knobs.
type Tuning struct {
	Maze   Maze   `yaml:"maze"`
	Round  Round  `yaml:"round"`
	Player Player `yaml:"player"`
	Horror Horror `yaml:"horror"`
	Ghosts Ghosts `yaml:"ghosts"`
}

// Maze controls level sizes.
type Maze struct {
	BaseSize int     `yaml:"base_size"`
	Growth   float64 `yaml:"growth"`
}

// Round controls the reshuffle clock and scoring.
type Round struct {
	BaseShuffleTime   float64 `yaml:"base_shuffle_time"`
	ShuffleDecrement  float64 `yaml:"shuffle_decrement"`
	ShuffleBonusEvery int     `yaml:"shuffle_bonus_every"`
	ShuffleBonus      float64 `yaml:"shuffle_bonus"`
	Countdown         float64 `yaml:"countdown"`
	CountdownSpeed    float64 `yaml:"countdown_speed"`
	CinematicTime     float64 `yaml:"cinematic_time"`
	WinAnimTime       float64 `yaml:"win_anim_time"`
	NextLevelDelay    float64 `yaml:"next_level_delay"`
	WinBonus          int     `yaml:"win_bonus"`
	CollisionPenalty  int     `yaml:"collision_penalty"`
}

// Player controls movement.
type Player struct {
	MaxSpeed   float64 `yaml:"max_speed"`
	BoostSpeed float64 `yaml:"boost_speed"`
	Steer      float64 `yaml:"steer"`
	Drag       float64 `yaml:"drag"`
}

// Horror controls the fear meter.
type Horror struct {
	TargetTime   float64 `yaml:"target_time"`
	ReliefChance float64 `yaml:"relief_chance"`
	CollisionHit float64 `yaml:"collision_hit"`
}

// Ghosts controls the stalkers.
type Ghosts struct {
	ReplayRate float64 `yaml:"replay_rate"`
	CloneLag   int     `yaml:"clone_lag"`
	MaxGhosts  int     `yaml:"max_ghosts"`
}

// Default returns the tuning the game ships with.
func Default() Tuning {
	return Tuning{
		Maze: Maze{BaseSize: 25, Growth: 1.15},
		Round: Round{
			BaseShuffleTime:   15,
			ShuffleDecrement:  3,
			ShuffleBonusEvery: 4,
			ShuffleBonus:      5,
			Countdown:         3.9,
			CountdownSpeed:    1,
			CinematicTime:     2.5,
			WinAnimTime:       1.2,
			NextLevelDelay:    1.5,
			WinBonus:          100,
			CollisionPenalty:  50,
		},
		Player: Player{MaxSpeed: 300, BoostSpeed: 450, Steer: 7.5, Drag: 9},
		Horror: Horror{TargetTime: 120, ReliefChance: 0.1, CollisionHit: 0.1},
		Ghosts: Ghosts{ReplayRate: 40, CloneLag: 45, MaxGhosts: 8},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults.
func Load(path string) (Tuning, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("settings: %s not found, using defaults", path)
		return t, nil
	}
	if err != nil {
		return t, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("settings %s: %w", path, err)
	}
	return t, nil
}

// Validate rejects values the game cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	if t.Maze.BaseSize < 5 {
		errs = append(errs, fmt.Errorf("maze.base_size %d below 5", t.Maze.BaseSize))
	}
	if t.Maze.Growth < 1 {
		errs = append(errs, fmt.Errorf("maze.growth %.2f below 1", t.Maze.Growth))
	}
	if t.Round.BaseShuffleTime <= 0 {
		errs = append(errs, errors.New("round.base_shuffle_time must be positive"))
	}
	if t.Round.ShuffleDecrement <= 0 {
		errs = append(errs, errors.New("round.shuffle_decrement must be positive"))
	}
	if t.Round.ShuffleBonusEvery < 1 {
		errs = append(errs, errors.New("round.shuffle_bonus_every must be at least 1"))
	}
	if t.Round.CountdownSpeed <= 0 {
		errs = append(errs, errors.New("round.countdown_speed must be positive"))
	}
	if t.Player.MaxSpeed <= 0 || t.Player.BoostSpeed < t.Player.MaxSpeed {
		errs = append(errs, errors.New("player speeds must be positive with boost_speed >= max_speed"))
	}
	if t.Horror.TargetTime <= 0 {
		errs = append(errs, errors.New("horror.target_time must be positive"))
	}
	if t.Horror.ReliefChance < 0 || t.Horror.ReliefChance > 1 {
		errs = append(errs, errors.New("horror.relief_chance must be within [0,1]"))
	}
	if t.Ghosts.ReplayRate <= 0 {
		errs = append(errs, errors.New("ghosts.replay_rate must be positive"))
	}
	if t.Ghosts.CloneLag < 1 || t.Ghosts.MaxGhosts < 0 {
		errs = append(errs, errors.New("ghosts.clone_lag must be at least 1 and max_ghosts non-negative"))
	}
	return errors.Join(errs...)
}

// MazeSize is the maze edge for level, floor(base * growth^(level-1)).
func (t Tuning) MazeSize(level int) int {
	if level < 1 {
		level = 1
	}
	size := float64(t.Maze.BaseSize)
	for i := 1; i < level; i++ {
		size *= t.Maze.Growth
	}
	return int(size)
}

// ShuffleTime is the round budget for level: a bonus every few levels.
func (t Tuning) ShuffleTime(level int) float64 {
	if level < 1 {
		level = 1
	}
	return t.Round.BaseShuffleTime + float64((level-1)/t.Round.ShuffleBonusEvery)*t.Round.ShuffleBonus
}
