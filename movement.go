package main

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mazehorror/internal/game"
)

// deviceInput merges keyboard, mouse and a touch joystick into game.Input.
type deviceInput struct {
	x, y    float64
	clicked bool

	touchIDs []ebiten.TouchID
	touching bool
	touchID  ebiten.TouchID
	originX  int
	originY  int
}

// poll samples the devices once per tick.
func (d *deviceInput) poll() {
	x, y := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		x--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		x++
	}

	// The first finger down becomes a virtual stick centred where it landed.
	d.touchIDs = inpututil.AppendJustPressedTouchIDs(d.touchIDs[:0])
	if len(d.touchIDs) > 0 {
		d.clicked = true
		if !d.touching {
			d.touching = true
			d.touchID = d.touchIDs[0]
			d.originX, d.originY = ebiten.TouchPosition(d.touchID)
		}
	}
	if d.touching {
		if inpututil.IsTouchJustReleased(d.touchID) {
			d.touching = false
		} else {
			tx, ty := ebiten.TouchPosition(d.touchID)
			x += float64(tx-d.originX) / joystickRadius
			y += float64(ty-d.originY) / joystickRadius
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		d.clicked = true
	}
	d.x = math.Max(-1, math.Min(1, x))
	d.y = math.Max(-1, math.Min(1, y))
}

func (d *deviceInput) Vector() (float64, float64) { return d.x, d.y }

func (d *deviceInput) Clicked() bool {
	c := d.clicked
	d.clicked = false
	return c
}

// autoWalker clicks through menus and wanders in random straight lines.
type autoWalker struct {
	rng      *rand.Rand
	deadline time.Time
	dirX     float64
	dirY     float64
	frames   int
	lastX    float64
	lastY    float64
}

// enableAutoWalk schedules scripted movement for a limited duration. done
// runs once the walk ends.
func (a *app) enableAutoWalk(duration time.Duration, done func()) {
	a.walker = &autoWalker{
		rng:      rand.New(rand.NewSource(time.Now().UnixNano() + 3)),
		deadline: time.Now().Add(duration),
	}
	a.stopProfile = done
	log.Printf("autowalk for %s", duration)
}

func (a *app) finishAutoWalk() {
	a.walker = nil
	if a.stopProfile != nil {
		a.stopProfile()
		a.stopProfile = nil
	}
	log.Printf("autowalk finished")
}

func (w *autoWalker) expired(now time.Time) bool { return now.After(w.deadline) }

// steer picks a new heading when the current one runs out or the player
// stopped moving against a wall.
func (w *autoWalker) steer(s game.Snapshot) {
	stuck := math.Hypot(s.Player.X-w.lastX, s.Player.Y-w.lastY) < 0.5
	w.lastX, w.lastY = s.Player.X, s.Player.Y
	w.frames--
	if w.frames > 0 && !(stuck && s.State == game.Playing) {
		return
	}
	angle := w.rng.Float64() * 2 * math.Pi
	w.dirX = math.Cos(angle)
	w.dirY = math.Sin(angle)
	w.frames = 20 + w.rng.Intn(50)
}

func (w *autoWalker) Vector() (float64, float64) { return w.dirX, w.dirY }
func (w *autoWalker) Clicked() bool              { return true }

// handleDebugControls processes debug hotkeys.
func (a *app) handleDebugControls() {
	if !*debugFlag {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		if a.core.SummonGhost() {
			log.Printf("debug: ghost summoned")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.core.ForceReshuffle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		a.core.AdjustHorror(-debugHorrorStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		a.core.AdjustHorror(debugHorrorStep)
	}
}
