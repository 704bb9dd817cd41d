// Package game sequences a run: the intro card, the camera sweep over a new
// maze, the countdown, timed rounds that end in a reshuffle, level wins and
// finally the score table. It is driven by one Update call per frame and
// never touches the screen or the audio device directly.
package game

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"mazehorror/internal/ghost"
	"mazehorror/internal/horror"
	"mazehorror/internal/maze"
	"mazehorror/internal/pellet"
	"mazehorror/internal/physics"
	"mazehorror/internal/scores"
	"mazehorror/internal/settings"
	"mazehorror/internal/sound"
)

const (
	// DefaultTile is the tile edge in pixels.
	DefaultTile = 25.0

	introDuration   = 1.0
	countdownEnd    = -2.0
	minDelta        = 0.008
	maxDelta        = 0.025
	shakeOnHit      = 0.4
	maxBonusPellets = 4
	summonDistance  = 6
)

// Scoreboard persists finished runs.
type Scoreboard interface {
	TopScores() ([]scores.Entry, error)
	SaveScore(score, level, size int) ([]scores.Entry, error)
}

// Options wires a Game to its collaborators. Zero values get defaults.
type Options struct {
	Tuning settings.Tuning
	Rand   *rand.Rand
	Mixer  sound.Mixer
	Scores Scoreboard
	Tile   float64
}

// Game is the top-level state machine.
type Game struct {
	tuning settings.Tuning
	rng    *rand.Rand
	mixer  sound.Mixer
	scores Scoreboard
	tile   float64

	state     State
	stateTime float64
	runID     uuid.UUID
	sched     Scheduler

	gen     *maze.Generator
	grid    *maze.Grid
	player  *Player
	pellets *pellet.System
	ghosts  []ghost.Ghost
	paths   [][]ghost.Point

	horror     *horror.System
	tint       *horror.UITint
	mood       *horror.AudioMood
	distortion *horror.Distortion
	corrupt    *horror.CorruptMaze
	spawner    *horror.GhostSpawner

	level      int
	score      int
	mazeSize   int
	wait       float64
	timer      float64
	countdown  float64
	reshuffles int
	shake      float64
	topScores  []scores.Entry
}

// New builds a game sitting on the intro card.
func New(opts Options) *Game {
	t := opts.Tuning
	if err := t.Validate(); err != nil {
		log.Printf("game: invalid tuning, using defaults: %v", err)
		t = settings.Default()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	mixer := opts.Mixer
	if mixer == nil {
		mixer = sound.Nop{}
	}
	tile := opts.Tile
	if tile <= 0 {
		tile = DefaultTile
	}

	g := &Game{
		tuning: t,
		rng:    rng,
		mixer:  mixer,
		scores: opts.Scores,
		tile:   tile,
		gen:    maze.NewGenerator(rng),
	}

	pcfg := physics.DefaultConfig()
	pcfg.Tile = tile
	pcfg.MaxSpeed = t.Player.MaxSpeed
	pcfg.Steer = t.Player.Steer
	pcfg.Drag = t.Player.Drag
	g.player = NewPlayer(pcfg)
	g.pellets = pellet.New(tile, rng)

	hcfg := horror.DefaultConfig()
	hcfg.TargetTime = t.Horror.TargetTime
	hcfg.ReliefChance = t.Horror.ReliefChance
	g.horror = horror.New(hcfg, rng)
	g.tint = &horror.UITint{}
	g.mood = horror.NewAudioMood(mixer)
	g.distortion = horror.NewDistortion()
	g.corrupt = horror.NewCorruptMaze()
	g.spawner = horror.NewGhostSpawner(g)
	g.spawner.MaxGhosts = t.Ghosts.MaxGhosts
	// Corruption must land before ghosts pick their spawn tiles.
	for _, e := range []horror.Effect{g.tint, g.mood, g.distortion, g.corrupt, g.spawner} {
		g.horror.AddEffect(e)
	}

	if g.scores != nil {
		top, err := g.scores.TopScores()
		if err != nil {
			log.Printf("game: load scores: %v", err)
		}
		g.topScores = top
	}
	g.reset()
	return g
}

// ClampDelta bounds a frame delta before it reaches any integration.
func ClampDelta(dt float64) float64 {
	return math.Min(maxDelta, math.Max(minDelta, dt))
}

// Update advances the game by one frame of dt real seconds.
func (g *Game) Update(dt float64, in Input) {
	if in == nil {
		in = Idle{}
	}
	clicked := in.Clicked()
	g.sched.Advance(dt, g.runID)
	step := ClampDelta(dt)
	g.stateTime += step
	g.horror.Update(step)

	switch g.state {
	case Intro:
		if clicked && g.stateTime >= introDuration {
			g.startRun()
		}
	case Cinematic:
		if g.stateTime >= g.tuning.Round.CinematicTime {
			g.beginCountdown()
		}
	case Countdown:
		g.countdown -= step * g.tuning.Round.CountdownSpeed
		if g.countdown < countdownEnd {
			g.beginRound()
		}
	case Playing:
		g.updatePlaying(step, in)
	case GameOver:
		if clicked {
			g.restart()
		}
	}
	g.shake = math.Max(0, g.shake-step)
}

func (g *Game) setState(next State) bool {
	if !CanTransition(g.state, next) {
		log.Printf("game: refused transition %s -> %s", g.state, next)
		return false
	}
	g.state = next
	g.stateTime = 0
	return true
}

// reset puts every subsystem back to its pre-run state.
func (g *Game) reset() {
	g.sched.CancelAll()
	g.runID = uuid.Nil
	g.despawnAll()
	g.paths = nil
	g.horror.Reset()
	g.pellets.Reset()
	g.player.SetRecording(false)
	g.player.TakePath()
	g.level = 1
	g.score = 0
	g.reshuffles = 0
	g.shake = 0
	g.countdown = g.tuning.Round.Countdown
	g.buildLevel()
}

// buildLevel generates the maze for the current level and parks the player
// on the start tile.
func (g *Game) buildLevel() {
	g.mazeSize = g.tuning.MazeSize(g.level)
	g.grid = g.gen.Generate(g.mazeSize, g.mazeSize)
	g.player.SetMaze(g.grid)
	g.player.PlaceAt(g.grid.Start())
	g.player.SetMaxSpeed(g.tuning.Player.MaxSpeed)
	g.pellets.Spawn(g.grid, g.level)
	g.wait = g.tuning.ShuffleTime(g.level)
	g.timer = g.wait
}

func (g *Game) startRun() {
	if !g.setState(Cinematic) {
		return
	}
	g.runID = uuid.New()
	g.horror.StartRun()
	g.buildLevel()
	log.Printf("game: run %s started", g.runID)
}

func (g *Game) beginCountdown() {
	if !g.setState(Countdown) {
		return
	}
	g.player.PlaceAt(g.grid.Start())
	g.countdown = g.tuning.Round.Countdown
}

func (g *Game) beginRound() {
	if !g.setState(Playing) {
		return
	}
	g.wait = g.tuning.ShuffleTime(g.level)
	g.timer = g.wait
	g.player.TakePath()
	g.player.SetRecording(true)
}

func (g *Game) updatePlaying(dt float64, in Input) {
	x, y := NormalizeVector(in.Vector())
	g.player.Step(dt, x, y)
	g.collectPellets()
	if g.pellets.Update(dt) {
		g.player.SetMaxSpeed(g.tuning.Player.MaxSpeed)
	}
	for _, gh := range g.updateGhosts(dt) {
		g.onGhostCollision(gh)
	}
	if g.player.Tile() == g.grid.Goal() {
		g.win()
		return
	}
	g.timer -= dt
	if g.timer <= 0 {
		g.expire()
	}
}

func (g *Game) collectPellets() {
	cx, cy := g.player.Centre()
	for _, p := range g.pellets.Collect(cx, cy) {
		g.score += p.Score
		g.timer += p.TimeBonus
		if p.SpeedBoost {
			g.player.SetMaxSpeed(g.tuning.Player.BoostSpeed)
		}
		g.mixer.Play(sound.Pickup)
		g.horror.OnPelletCollected(p.Pellet.Kind)
	}
}

func (g *Game) onGhostCollision(gh ghost.Ghost) {
	g.horror.Add(g.tuning.Horror.CollisionHit)
	g.score = max(0, g.score-g.tuning.Round.CollisionPenalty)
	g.mixer.Play(sound.Buzz)
	g.shake = shakeOnHit
	if gh.IsClone() {
		g.DespawnClones()
	}
	at := g.player.Tile()
	g.player.PlaceAt(g.grid.Start())
	n := g.pellets.SpawnBonus(g.grid, at, min(maxBonusPellets, 1+g.level/3))
	log.Printf("game: caught at (%d,%d), %d bonus pellets", at.X, at.Y, n)
}

func (g *Game) win() {
	if !g.setState(Winning) {
		return
	}
	g.player.SetRecording(false)
	g.score += g.tuning.Round.WinBonus
	g.mixer.Play(sound.LevelUp)
	g.horror.OnLevelComplete(g.level)
	run := g.runID
	g.sched.After(run, g.tuning.Round.NextLevelDelay, func() { g.nextLevel(run) })
	log.Printf("game: level %d cleared, score %d", g.level, g.score)
}

func (g *Game) nextLevel(run uuid.UUID) {
	if run != g.runID || g.state != Winning {
		return
	}
	g.despawnAll()
	g.archivePath()
	g.level++
	g.buildLevel()
	g.setState(Cinematic)
}

// expire handles a round timer running out.
func (g *Game) expire() {
	next := g.wait - g.tuning.Round.ShuffleDecrement
	if next < 0 {
		g.gameOver()
		return
	}
	g.reshuffle(next)
}

func (g *Game) reshuffle(next float64) {
	g.wait = next
	g.timer = next
	g.reshuffles++
	g.archivePath()

	tile := g.player.Tile()
	g.grid = g.gen.Generate(g.mazeSize, g.mazeSize)
	g.player.SetMaze(g.grid)
	maze.EnsurePathFrom(g.grid, tile.X, tile.Y)
	g.DespawnClones()
	g.horror.OnMapReshuffle(g.grid)
	maze.EnsurePathFrom(g.grid, tile.X, tile.Y)
	g.player.PlaceAt(tile)
	g.pellets.Prune(g.grid)
	log.Printf("game: reshuffle %d, next round %.0fs", g.reshuffles, g.wait)
}

func (g *Game) gameOver() {
	if !g.setState(GameOver) {
		return
	}
	g.player.SetRecording(false)
	g.sched.CancelAll()
	g.despawnAll()
	g.horror.EndRun()
	g.mixer.Play(sound.GameOverTone)
	log.Printf("game: over at level %d with %d points", g.level, g.score)
	if g.scores == nil {
		return
	}
	top, err := g.scores.SaveScore(g.score, g.level, g.mazeSize)
	if err != nil {
		log.Printf("game: save score: %v", err)
		return
	}
	g.topScores = top
}

func (g *Game) restart() {
	if !g.setState(Intro) {
		return
	}
	g.reset()
}

// ForceReshuffle expires the current round immediately.
func (g *Game) ForceReshuffle() {
	if g.state == Playing {
		g.expire()
	}
}

// SummonGhost releases one ghost near the player regardless of horror.
func (g *Game) SummonGhost() bool {
	if g.state != Playing {
		return false
	}
	player := g.player.Tile()
	avoid, ok := g.OldestPathStart()
	if !ok {
		avoid = player
	}
	at, ok := horror.SpawnPoint(g.grid, g.rng, player, avoid, summonDistance)
	if !ok {
		return false
	}
	if len(g.paths) > 0 {
		return g.SpawnReplay(at)
	}
	return g.SpawnClone(at)
}

// AdjustHorror shifts the horror level by delta.
func (g *Game) AdjustHorror(delta float64) { g.horror.Add(delta) }

func (g *Game) State() State           { return g.state }
func (g *Game) Level() int             { return g.level }
func (g *Game) Score() int             { return g.score }
func (g *Game) Timer() float64         { return g.timer }
func (g *Game) Wait() float64          { return g.wait }
func (g *Game) Grid() *maze.Grid       { return g.grid }
func (g *Game) RunID() uuid.UUID       { return g.runID }
func (g *Game) Reshuffles() int        { return g.reshuffles }
func (g *Game) Horror() *horror.System { return g.horror }
