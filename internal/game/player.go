package game

import (
	"math"

	"mazehorror/internal/ghost"
	"mazehorror/internal/maze"
	"mazehorror/internal/physics"
)

// PlayerSize is the drawn and ghost-facing box edge in pixels.
const PlayerSize = 15

// Player wraps the physics body and records the path ghosts replay.
type Player struct {
	body      *physics.Body
	path      []ghost.Point
	recording bool
}

// NewPlayer returns a player using cfg for movement.
func NewPlayer(cfg physics.Config) *Player {
	return &Player{body: physics.New(cfg)}
}

// SetMaze swaps the collision grid.
func (p *Player) SetMaze(g *maze.Grid) { p.body.SetMaze(g) }

// PlaceAt centres the player on tile t and stops it.
func (p *Player) PlaceAt(t maze.Point) {
	cfg := p.body.Config()
	x := float64(t.X)*cfg.Tile + (cfg.Tile-cfg.Width)/2
	y := float64(t.Y)*cfg.Tile + (cfg.Tile-cfg.Height)/2
	p.body.SetPose(x, y)
}

// Step moves the player one tick and records the result when recording.
func (p *Player) Step(dt, x, y float64) physics.Pose {
	pose := p.body.Step(dt, x, y)
	if p.recording {
		b := p.Bounds()
		p.path = append(p.path, ghost.Point{X: b.X, Y: b.Y})
	}
	return pose
}

// Pose returns the collider pose.
func (p *Player) Pose() physics.Pose { return p.body.Pose() }

// Centre is the centre of the collision box in pixels.
func (p *Player) Centre() (float64, float64) {
	cfg := p.body.Config()
	pose := p.body.Pose()
	return pose.X + cfg.Width/2, pose.Y + cfg.Height/2
}

// Tile is the tile under the player's centre.
func (p *Player) Tile() maze.Point {
	cx, cy := p.Centre()
	tile := p.body.Config().Tile
	return maze.Point{X: int(math.Floor(cx / tile)), Y: int(math.Floor(cy / tile))}
}

// Bounds is the PlayerSize box centred on the collider.
func (p *Player) Bounds() ghost.Rect {
	cx, cy := p.Centre()
	return ghost.Rect{X: cx - PlayerSize/2.0, Y: cy - PlayerSize/2.0, W: PlayerSize, H: PlayerSize}
}

// MaxSpeed is the current top speed.
func (p *Player) MaxSpeed() float64 { return p.body.Config().MaxSpeed }

// SetMaxSpeed changes the top speed, e.g. for a speed pellet.
func (p *Player) SetMaxSpeed(v float64) { p.body.Configure(physics.WithMaxSpeed(v)) }

// Path is the live recording, oldest first. Callers must not modify it.
func (p *Player) Path() []ghost.Point { return p.path }

// SetRecording turns path recording on or off.
func (p *Player) SetRecording(on bool) { p.recording = on }

// TakePath hands over the recording and starts a fresh one.
func (p *Player) TakePath() []ghost.Point {
	path := p.path
	p.path = nil
	return path
}
