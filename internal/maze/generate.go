package maze

import (
	"math/rand"
	"time"
)

// carveDirs are the room-to-room steps: right, left, down, up.
var carveDirs = [4]Point{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}

// Generator carves mazes from an injectable random source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator using rng, or a time-seeded source when
// rng is nil.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano() + 1))
	}
	return &Generator{rng: rng}
}

// Generate builds a fresh maze whose start and goal are mutually reachable.
func (gen *Generator) Generate(width, height int) *Grid {
	g := NewGrid(width, height)
	gen.carve(g, g.Start())
	connectIsolatedSections(g)
	ensureGoalAccessible(g)
	return g
}

// carve runs the randomized depth-first walk with explicit backtracking.
func (gen *Generator) carve(g *Grid, start Point) {
	totalCells := ((g.width - 1) / 2) * ((g.height - 3) / 2)
	visited := 1
	g.Set(start.X, start.Y, Open)
	stack := []Point{start}
	candidates := make([]Point, 0, len(carveDirs))

	for len(stack) > 0 && visited < totalCells {
		cur := stack[len(stack)-1]
		candidates = candidates[:0]
		for _, d := range carveDirs {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if nx > 0 && nx < g.width-1 && ny > 0 && ny < g.height-1 && g.At(nx, ny) == Blocked {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) > 0 {
			d := candidates[gen.rng.Intn(len(candidates))]
			g.Set(cur.X+d.X, cur.Y+d.Y, Open)
			g.Set(cur.X+d.X/2, cur.Y+d.Y/2, Open)
			stack = append(stack, Point{X: cur.X + d.X, Y: cur.Y + d.Y})
			visited++
		} else {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 && visited < totalCells {
			if p, ok := firstBlockedRoom(g); ok {
				g.Set(p.X, p.Y, Open)
				stack = append(stack, p)
				visited++
			}
		}
	}
}

// firstBlockedRoom scans row-major for a room the walk never reached.
func firstBlockedRoom(g *Grid) (Point, bool) {
	for y := 1; y < g.height-1; y += 2 {
		for x := 1; x < g.width-1; x += 2 {
			if g.At(x, y) == Blocked {
				return Point{X: x, Y: y}, true
			}
		}
	}
	return Point{}, false
}

// connectIsolatedSections opens every leftover room and stitches it to one
// open neighbour room, checking left, right, up and down in that order.
func connectIsolatedSections(g *Grid) {
	for y := 1; y < g.height-1; y += 2 {
		for x := 1; x < g.width-1; x += 2 {
			if g.At(x, y) != Blocked {
				continue
			}
			g.Set(x, y, Open)
			switch {
			case x > 2 && g.IsOpen(x-2, y):
				g.Set(x-1, y, Open)
			case x < g.width-2 && g.IsOpen(x+2, y):
				g.Set(x+1, y, Open)
			case y > 2 && g.IsOpen(x, y-2):
				g.Set(x, y-1, Open)
			case y < g.height-3 && g.IsOpen(x, y+2):
				g.Set(x, y+1, Open)
			}
		}
	}
}

// ensureGoalAccessible opens the goal and one approach cell, the left one
// unless the grid is too narrow, then carves a corridor from the start if
// the goal is still cut off.
func ensureGoalAccessible(g *Grid) {
	goal := g.Goal()
	g.Set(goal.X, goal.Y, Open)
	switch {
	case goal.X > 2:
		g.Set(goal.X-1, goal.Y, Open)
	case goal.Y > 2:
		g.Set(goal.X, goal.Y-1, Open)
	}
	start := g.Start()
	if !IsReachable(g, start.X, start.Y, goal.X, goal.Y) {
		createPath(g, start, goal)
	}
}
