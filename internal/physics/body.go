// Package physics moves the player box through the tile grid with velocity
// steering, idle drag and axis-separated swept collision.
package physics

import "math"

const eps = 0.0001

// Solid answers whether a tile blocks movement.
type Solid interface {
	IsSolid(row, col int) bool
}

// Config holds the tunable movement parameters.
type Config struct {
	MaxSpeed float64 // pixels per second at full input
	Steer    float64 // exponential approach rate toward the desired velocity
	Drag     float64 // exponential decay rate while input is idle
	Tile     float64 // tile edge in pixels
	Width    float64 // collision box width
	Height   float64 // collision box height
}

// DefaultConfig mirrors the tuning the game ships with.
func DefaultConfig() Config {
	return Config{MaxSpeed: 300, Steer: 7.5, Drag: 9.0, Tile: 25, Width: 13, Height: 13}
}

// Option adjusts a Config in place.
type Option func(*Config)

// WithMaxSpeed overrides the top speed.
func WithMaxSpeed(v float64) Option { return func(c *Config) { c.MaxSpeed = v } }

// WithSteer overrides the steering rate.
func WithSteer(v float64) Option { return func(c *Config) { c.Steer = v } }

// WithDrag overrides the idle drag rate.
func WithDrag(v float64) Option { return func(c *Config) { c.Drag = v } }

// Pose is the body's position (top-left of the box) and velocity.
type Pose struct {
	X, Y   float64
	VX, VY float64
}

// Body is the player's collider.
type Body struct {
	cfg   Config
	pose  Pose
	solid Solid
}

// New returns a body at the origin with cfg applied.
func New(cfg Config) *Body {
	return &Body{cfg: cfg}
}

// Configure applies opts on top of the current configuration.
func (b *Body) Configure(opts ...Option) {
	for _, opt := range opts {
		opt(&b.cfg)
	}
}

// Config returns the active configuration.
func (b *Body) Config() Config { return b.cfg }

// SetMaze swaps the grid the body collides against.
func (b *Body) SetMaze(s Solid) { b.solid = s }

// SetPose teleports the body and zeroes its velocity.
func (b *Body) SetPose(x, y float64) {
	b.pose = Pose{X: x, Y: y}
}

// Pose returns the current pose.
func (b *Body) Pose() Pose { return b.pose }

// IsSolid reports whether the tile at (row, col) blocks movement. Without a
// maze nothing blocks.
func (b *Body) IsSolid(row, col int) bool {
	if b.solid == nil {
		return false
	}
	return b.solid.IsSolid(row, col)
}

// Step integrates one tick of input in [-1, 1] per axis.
func (b *Body) Step(dt, inputX, inputY float64) Pose {
	desiredVX := inputX * b.cfg.MaxSpeed
	desiredVY := inputY * b.cfg.MaxSpeed

	steer := 1 - math.Exp(-b.cfg.Steer*dt)
	b.pose.VX += (desiredVX - b.pose.VX) * steer
	b.pose.VY += (desiredVY - b.pose.VY) * steer

	if inputX == 0 && inputY == 0 {
		drag := math.Exp(-b.cfg.Drag * dt)
		b.pose.VX *= drag
		b.pose.VY *= drag
		if math.Abs(b.pose.VX) < 0.1 {
			b.pose.VX = 0
		}
		if math.Abs(b.pose.VY) < 0.1 {
			b.pose.VY = 0
		}
	}

	b.sweepX(dt)
	b.sweepY(dt)
	return b.pose
}

func (b *Body) tileOf(v float64) int {
	return int(math.Floor(v / b.cfg.Tile))
}

func (b *Body) sweepX(dt float64) {
	p := &b.pose
	newX := p.X + p.VX*dt
	dir := sign(p.VX)
	if dir != 0 {
		topRow := b.tileOf(p.Y)
		bottomRow := b.tileOf(p.Y + b.cfg.Height - 1)
		lead := 0.0
		if dir > 0 {
			lead = b.cfg.Width
		}
		startCol := b.tileOf(p.X + lead)
		endCol := b.tileOf(newX + lead)
	scan:
		for col := startCol + dir; (dir > 0 && col <= endCol) || (dir < 0 && col >= endCol); col += dir {
			for row := topRow; row <= bottomRow; row++ {
				if !b.IsSolid(row, col) {
					continue
				}
				if dir > 0 {
					newX = float64(col)*b.cfg.Tile - b.cfg.Width - eps
				} else {
					newX = float64(col+1)*b.cfg.Tile + eps
				}
				p.VX = 0
				break scan
			}
		}
	}
	p.X = newX
}

func (b *Body) sweepY(dt float64) {
	p := &b.pose
	newY := p.Y + p.VY*dt
	dir := sign(p.VY)
	if dir != 0 {
		leftCol := b.tileOf(p.X)
		rightCol := b.tileOf(p.X + b.cfg.Width - 1)
		lead := 0.0
		if dir > 0 {
			lead = b.cfg.Height
		}
		startRow := b.tileOf(p.Y + lead)
		endRow := b.tileOf(newY + lead)
	scan:
		for row := startRow + dir; (dir > 0 && row <= endRow) || (dir < 0 && row >= endRow); row += dir {
			for col := leftCol; col <= rightCol; col++ {
				if !b.IsSolid(row, col) {
					continue
				}
				if dir > 0 {
					newY = float64(row)*b.cfg.Tile - b.cfg.Height - eps
				} else {
					newY = float64(row+1)*b.cfg.Tile + eps
				}
				p.VY = 0
				break scan
			}
		}
	}
	p.Y = newY
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
