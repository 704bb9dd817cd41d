package main

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mazehorror/internal/game"
	"mazehorror/internal/ghost"
	"mazehorror/internal/horror"
	"mazehorror/internal/pellet"
)

var (
	colorBackground = color.RGBA{6, 6, 10, 255}
	colorWall       = color.RGBA{26, 28, 42, 255}
	colorFloor      = color.RGBA{56, 58, 70, 255}
	colorStart      = color.RGBA{40, 170, 80, 255}
	colorGoal       = color.RGBA{200, 40, 40, 255}
	colorPlayer     = color.RGBA{235, 232, 215, 255}
	colorReplay     = color.RGBA{150, 190, 255, 150}
	colorClone      = color.RGBA{255, 80, 80, 170}
	colorFog        = color.RGBA{0, 0, 0, 255}
	colorMeter      = color.RGBA{180, 20, 20, 220}
	colorMeterBack  = color.RGBA{40, 40, 40, 200}

	pelletColors = map[pellet.Kind]color.RGBA{
		pellet.Point: {250, 210, 60, 255},
		pellet.Time:  {80, 200, 255, 255},
		pellet.Speed: {140, 255, 120, 255},
	}
)

// fxRand drives per-frame cosmetic noise only.
var fxRand = rand.New(rand.NewSource(1))

// Draw renders the maze around the camera, entities, post effects and HUD.
func (a *app) Draw(screen *ebiten.Image) {
	s := a.snap
	screen.Fill(colorBackground)
	if s.Grid == nil {
		return
	}
	ox, oy := a.viewOffset(s)
	a.drawMaze(screen, s, ox, oy)
	a.drawPellets(screen, s, ox, oy)
	a.drawGhosts(screen, s, ox, oy)
	a.drawPlayer(screen, s, ox, oy)
	if s.Distortion.Blackout > 0 && s.State == game.Playing {
		a.drawFog(screen, s, ox, oy)
	}
	drawDistortion(screen, s.Distortion)
	drawHUD(screen, s)
	drawOverlay(screen, s)

	if *debugFlag {
		msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nstate: %s\n%s\nghosts: %d  music off: %v\nG ghost  R reshuffle  +/- horror",
			ebiten.ActualFPS(), ebiten.ActualTPS(), s.State, s.HorrorInfo, len(s.Ghosts), s.MusicOff)
		ebitenutil.DebugPrintAt(screen, msg, 8, screenH-90)
	}
}

// viewOffset converts world pixels to screen pixels: screen = world + offset.
func (a *app) viewOffset(s game.Snapshot) (float64, float64) {
	ox := screenW/2 - a.camX
	oy := screenH/2 - a.camY
	mazeW := float64(s.Grid.Width()) * s.Tile
	mazeH := float64(s.Grid.Height()) * s.Tile
	if mazeW <= screenW {
		ox = (screenW - mazeW) / 2
	}
	if mazeH <= screenH {
		oy = (screenH - mazeH) / 2
	}
	if s.Shake > 0 {
		ox += (fxRand.Float64()*2 - 1) * s.Shake * 20
		oy += (fxRand.Float64()*2 - 1) * s.Shake * 20
	}
	if j := s.Distortion.Jitter; j > 0 {
		ox += (fxRand.Float64()*2 - 1) * j * 100
	}
	return math.Round(ox), math.Round(oy)
}

// visibleTiles is the tile rectangle that intersects the screen.
func visibleTiles(s game.Snapshot, ox, oy float64) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(-ox / s.Tile))
	y0 = int(math.Floor(-oy / s.Tile))
	x1 = int(math.Ceil((screenW-ox)/s.Tile)) - 1
	y1 = int(math.Ceil((screenH-oy)/s.Tile)) - 1
	return max(x0, 0), max(y0, 0), min(x1, s.Grid.Width()-1), min(y1, s.Grid.Height()-1)
}

func (a *app) drawMaze(screen *ebiten.Image, s game.Snapshot, ox, oy float64) {
	x0, y0, x1, y1 := visibleTiles(s, ox, oy)
	if x1 < x0 || y1 < y0 {
		return
	}
	t := float32(s.Tile)
	vector.DrawFilledRect(screen,
		float32(ox)+float32(x0)*t, float32(oy)+float32(y0)*t,
		float32(x1-x0+1)*t, float32(y1-y0+1)*t, colorWall, false)
	for _, row := range s.Grid.OpenSpans(x0, y0, x1, y1) {
		y := float32(oy) + float32(row.Y)*t
		for _, sp := range row.Spans {
			vector.DrawFilledRect(screen, float32(ox)+float32(sp.Start)*t, y, float32(sp.End-sp.Start+1)*t, t, colorFloor, false)
		}
	}
	start := s.Grid.Start()
	vector.DrawFilledRect(screen, float32(ox)+float32(start.X)*t, float32(oy)+float32(start.Y)*t, t, t, colorStart, false)
	vector.DrawFilledRect(screen, float32(ox)+float32(s.Goal.X)*t, float32(oy)+float32(s.Goal.Y)*t, t, t, colorGoal, false)
}

func (a *app) drawPellets(screen *ebiten.Image, s game.Snapshot, ox, oy float64) {
	for _, p := range s.Pellets {
		c := pelletColors[p.Kind]
		c.A = uint8(255 * p.Pulse)
		r := float32(3 + 2*p.Pulse)
		vector.DrawFilledCircle(screen, float32(p.X+ox), float32(p.Y+oy), r, c, true)
	}
}

func (a *app) drawGhosts(screen *ebiten.Image, s game.Snapshot, ox, oy float64) {
	for _, gh := range s.Ghosts {
		c := colorReplay
		if gh.Clone {
			c = colorClone
		}
		// A slow wobble keeps them from looking like tiles.
		c.A = uint8(float64(c.A) * (0.75 + 0.25*math.Sin(float64(a.frame)*0.1+gh.Pos.X)))
		vector.DrawFilledRect(screen, float32(gh.Pos.X+ox), float32(gh.Pos.Y+oy), ghost.Size, ghost.Size, c, false)
	}
}

func (a *app) drawPlayer(screen *ebiten.Image, s game.Snapshot, ox, oy float64) {
	b := s.Player
	scale := 1.0
	if s.State == game.Winning {
		scale = 1 - s.WinProgress
	}
	w := b.W * scale
	h := b.H * scale
	x := b.X + (b.W-w)/2 + ox
	y := b.Y + (b.H-h)/2 + oy
	c := colorPlayer
	if s.Boosted {
		c = pelletColors[pellet.Speed]
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

// drawFog darkens every tile outside the player's line of sight.
func (a *app) drawFog(screen *ebiten.Image, s game.Snapshot, ox, oy float64) {
	x0, y0, x1, y1 := visibleTiles(s, ox, oy)
	c := colorFog
	c.A = uint8(255 * math.Min(1, s.Distortion.Blackout))
	t := float32(s.Tile)
	for y := y0; y <= y1; y++ {
		run := -1
		for x := x0; x <= x1+1; x++ {
			hidden := x <= x1 && !a.sight.Visible(x, y)
			if hidden && run < 0 {
				run = x
			}
			if !hidden && run >= 0 {
				vector.DrawFilledRect(screen, float32(ox)+float32(run)*t, float32(oy)+float32(y)*t, float32(x-run)*t, t, c, false)
				run = -1
			}
		}
	}
}

// drawDistortion fakes the CRT effects with cheap overlays.
func drawDistortion(screen *ebiten.Image, p horror.Params) {
	dots := int(p.StaticNoise * 4000)
	for i := 0; i < dots; i++ {
		v := uint8(fxRand.Intn(200))
		vector.DrawFilledRect(screen, float32(fxRand.Intn(screenW)), float32(fxRand.Intn(screenH)), 2, 2, color.RGBA{v, v, v, 90}, false)
	}
	if fxRand.Float64() < p.Tearing*40 {
		y := float32(fxRand.Intn(screenH))
		vector.DrawFilledRect(screen, 0, y, screenW, float32(2+fxRand.Intn(6)), color.RGBA{200, 200, 210, 40}, false)
	}
	if p.Barrel > 0 {
		edge := float32(p.Barrel * 300)
		shade := color.RGBA{0, 0, 0, uint8(math.Min(255, p.Barrel*900))}
		vector.DrawFilledRect(screen, 0, 0, screenW, edge/2, shade, false)
		vector.DrawFilledRect(screen, 0, screenH-edge/2, screenW, edge/2, shade, false)
		vector.DrawFilledRect(screen, 0, 0, edge/2, screenH, shade, false)
		vector.DrawFilledRect(screen, screenW-edge/2, 0, edge/2, screenH, shade, false)
	}
	if f := p.Flicker; f > 0 && fxRand.Float64() < 0.5 {
		vector.DrawFilledRect(screen, 0, 0, screenW, screenH, color.RGBA{0, 0, 0, uint8(fxRand.Float64() * f * 1200)}, false)
	}
	if fxRand.Float64() < p.SignalLoss*0.2 {
		vector.DrawFilledRect(screen, 0, 0, screenW, screenH, color.RGBA{0, 0, 0, 170}, false)
	}
}

func drawHUD(screen *ebiten.Image, s game.Snapshot) {
	if s.State == game.Intro {
		return
	}
	if s.Tint > 0 {
		vector.DrawFilledRect(screen, 0, 0, screenW, float32(40*s.Tint), color.RGBA{120, 0, 0, uint8(110 * s.Tint)}, false)
	}
	status := fmt.Sprintf("LEVEL %d   SCORE %d   TIME %.1f", s.Level, s.Score, s.Timer)
	if s.Combo > 1 {
		status += fmt.Sprintf("   COMBO x%.2f", s.ComboMul)
	}
	if s.Boosted {
		status += "   SPEED"
	}
	ebitenutil.DebugPrintAt(screen, status, 10, 8)
	vector.DrawFilledRect(screen, screenW-hudMeterWidth-12, 10, hudMeterWidth, 10, colorMeterBack, false)
	vector.DrawFilledRect(screen, screenW-hudMeterWidth-12, 10, float32(hudMeterWidth*s.Influence), 10, colorMeter, false)
}

func drawOverlay(screen *ebiten.Image, s game.Snapshot) {
	cx, cy := screenW/2, screenH/2
	switch s.State {
	case game.Intro:
		vector.DrawFilledRect(screen, 0, 0, screenW, screenH, color.RGBA{0, 0, 0, 190}, false)
		ebitenutil.DebugPrintAt(screen, "M A Z E   H O R R O R", cx-64, cy-80)
		ebitenutil.DebugPrintAt(screen, "reach the red tile before the maze shifts", cx-124, cy-56)
		if s.IntroReady && int(s.StateTime*2)%2 == 0 {
			ebitenutil.DebugPrintAt(screen, "click to begin", cx-42, cy-24)
		}
		drawScores(screen, s, cx-60, cy+10)
	case game.Countdown:
		label := "RUN"
		if s.Countdown > 0.5 {
			label = fmt.Sprintf("%d", int(math.Round(s.Countdown)))
		}
		ebitenutil.DebugPrintAt(screen, label, cx-6, cy-40)
	case game.Winning:
		ebitenutil.DebugPrintAt(screen, "ESCAPED", cx-21, cy-40)
	case game.GameOver:
		vector.DrawFilledRect(screen, 0, 0, screenW, screenH, color.RGBA{20, 0, 0, 200}, false)
		ebitenutil.DebugPrintAt(screen, "THE MAZE KEEPS YOU", cx-54, cy-80)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("score %d   level %d", s.Score, s.Level), cx-60, cy-56)
		ebitenutil.DebugPrintAt(screen, "click to try again", cx-54, cy-32)
		drawScores(screen, s, cx-60, cy)
	}
}

func drawScores(screen *ebiten.Image, s game.Snapshot, x, y int) {
	if len(s.TopScores) == 0 {
		return
	}
	ebitenutil.DebugPrintAt(screen, "best runs", x, y)
	for i, e := range s.TopScores {
		line := fmt.Sprintf("%2d. %6d  lvl %d", i+1, e.Score, e.Level)
		ebitenutil.DebugPrintAt(screen, line, x, y+16*(i+1))
	}
}
