package maze

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// DeadEnds lists passages with exactly one open neighbour.
func (g *Grid) DeadEnds() []Point {
	var out []Point
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			if g.IsOpen(x, y) && g.openNeighbors(x, y) == 1 {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

// Corrupt turns up to floor(width*height*amount) blocked tiles into
// passages. Only tiles with at most one open neighbour are touched so the
// corruption never widens corridors into open rooms. It returns the number of
// tiles changed.
func Corrupt(g *Grid, rng *rand.Rand, amount float64) int {
	if g == nil || rng == nil || amount <= 0 {
		return 0
	}
	target := int(float64(g.width*g.height) * amount)
	changed, attempts := 0, 0
	for changed < target && attempts < target*3 {
		y := rng.Intn(g.height-2) + 1
		x := rng.Intn(g.width-2) + 1
		if g.At(x, y) == Blocked && g.openNeighbors(x, y) <= 1 {
			g.Set(x, y, Open)
			changed++
		}
		attempts++
	}
	return changed
}

// RandomWalk wanders up to steps tiles from `from` through passages,
// preferring tiles it has not stood on yet, and returns where it stopped.
func (g *Grid) RandomWalk(rng *rand.Rand, from Point, steps int) Point {
	cur := from
	seen := mapset.New[Point]()
	seen.Put(cur)
	fresh := make([]Point, 0, 4)
	open := make([]Point, 0, 4)
	for i := 0; i < steps; i++ {
		fresh, open = fresh[:0], open[:0]
		for _, d := range neighborDirs {
			next := Point{X: cur.X + d.X, Y: cur.Y + d.Y}
			if !g.IsOpen(next.X, next.Y) {
				continue
			}
			open = append(open, next)
			if !seen.Has(next) {
				fresh = append(fresh, next)
			}
		}
		switch {
		case len(fresh) > 0:
			cur = fresh[rng.Intn(len(fresh))]
		case len(open) > 0:
			cur = open[rng.Intn(len(open))]
		default:
			return cur
		}
		seen.Put(cur)
	}
	return cur
}

// Manhattan is the grid distance between two tiles.
func Manhattan(a, b Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
