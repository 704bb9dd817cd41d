package maze

// Sight caches which tiles are in line of sight of a viewer. Visibility is
// stamped with a generation counter so a refresh never has to clear the
// whole buffer.
type Sight struct {
	width, height int
	stamp         []uint32
	gen           uint32
	lastX, lastY  int
	lastGrid      *Grid
}

// NewSight returns an empty visibility cache.
func NewSight() *Sight {
	return &Sight{lastX: -1, lastY: -1}
}

// Invalidate forces the next Refresh to recompute, e.g. after the maze
// changed under a stationary viewer.
func (s *Sight) Invalidate() {
	s.lastX, s.lastY = -1, -1
	s.lastGrid = nil
}

// Refresh recomputes visibility from (cx, cy) out to radius tiles.
func (s *Sight) Refresh(g *Grid, cx, cy, radius int) {
	if g == nil {
		return
	}
	if s.width != g.width || s.height != g.height {
		s.width, s.height = g.width, g.height
		s.stamp = make([]uint32, g.width*g.height)
		s.gen = 0
		s.Invalidate()
	}
	cx = clampCoord(cx, 0, g.width-1)
	cy = clampCoord(cy, 0, g.height-1)
	if s.lastX == cx && s.lastY == cy && s.lastGrid == g {
		return
	}
	if s.gen == ^uint32(0) {
		for i := range s.stamp {
			s.stamp[i] = 0
		}
		s.gen = 1
	} else {
		s.gen++
	}
	s.stamp[cy*g.width+cx] = s.gen
	oct := [8][4]int{
		{1, 0, 0, 1},
		{0, 1, 1, 0},
		{-1, 0, 0, 1},
		{0, 1, -1, 0},
		{-1, 0, 0, -1},
		{0, -1, -1, 0},
		{1, 0, 0, -1},
		{0, -1, 1, 0},
	}
	for i := 0; i < 8; i++ {
		s.castLight(g, cx, cy, 1, 1.0, 0.0, radius, oct[i][0], oct[i][1], oct[i][2], oct[i][3])
	}
	s.lastX, s.lastY, s.lastGrid = cx, cy, g
}

// Visible reports whether (x, y) was lit by the last Refresh.
func (s *Sight) Visible(x, y int) bool {
	if x < 0 || y < 0 || x >= s.width || y >= s.height || s.gen == 0 {
		return false
	}
	return s.stamp[y*s.width+x] == s.gen
}

// castLight recursively explores one octant with symmetric shadowcasting.
func (s *Sight) castLight(g *Grid, cx, cy, row int, startSlope, endSlope float64, radius int, xx, xy, yx, yy int) {
	if startSlope < endSlope {
		return
	}
	radiusSq := radius * radius
	for i := row; i <= radius; i++ {
		blocked := false
		newStart := 0.0
		for dx := -i; dx <= 0; dx++ {
			dy := -i
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)
			if rSlope > startSlope {
				continue
			}
			if lSlope < endSlope {
				break
			}
			X := cx + dx*xx + dy*xy
			Y := cy + dx*yx + dy*yy
			if X < 0 || X >= g.width || Y < 0 || Y >= g.height {
				continue
			}
			if dx*dx+dy*dy <= radiusSq {
				s.stamp[Y*g.width+X] = s.gen
			}
			solid := !g.IsOpen(X, Y)
			if blocked {
				if solid {
					newStart = rSlope
					continue
				}
				blocked = false
				startSlope = newStart
			} else if solid && i < radius {
				blocked = true
				s.castLight(g, cx, cy, i+1, startSlope, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
