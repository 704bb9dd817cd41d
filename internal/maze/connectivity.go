package maze

import (
	"log"

	"github.com/zyedidia/generic/mapset"
)

// IsReachable runs a breadth-first search over open 4-neighbours.
func IsReachable(g *Grid, startX, startY, targetX, targetY int) bool {
	if g == nil {
		return false
	}
	visited := mapset.New[Point]()
	queue := []Point{{X: startX, Y: startY}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited.Has(cur) {
			continue
		}
		visited.Put(cur)
		if cur.X == targetX && cur.Y == targetY {
			return true
		}
		for _, d := range neighborDirs {
			next := Point{X: cur.X + d.X, Y: cur.Y + d.Y}
			if g.IsOpen(next.X, next.Y) && !visited.Has(next) {
				queue = append(queue, next)
			}
		}
	}
	return false
}

// EnsurePathFrom guarantees the goal can be reached from (startX, startY),
// carving an L-shaped corridor when it cannot. It reports whether a corridor
// had to be carved.
func EnsurePathFrom(g *Grid, startX, startY int) bool {
	if g == nil {
		return false
	}
	if g.interior(startX, startY) {
		g.Set(startX, startY, Open)
	}
	goal := g.Goal()
	if IsReachable(g, startX, startY, goal.X, goal.Y) {
		return false
	}
	createPath(g, Point{X: startX, Y: startY}, goal)
	log.Printf("maze: carved new path from (%d,%d) to goal", startX, startY)
	return true
}

// createPath walks horizontally to the goal column, then vertically to the
// goal row, opening every interior tile it passes.
func createPath(g *Grid, from, to Point) {
	x := clampCoord(from.X, 1, g.width-2)
	y := clampCoord(from.Y, 1, g.height-2)
	g.Set(x, y, Open)
	for x != to.X {
		x += sign(to.X - x)
		if g.interior(x, y) {
			g.Set(x, y, Open)
		}
	}
	for y != to.Y {
		y += sign(to.Y - y)
		if g.interior(x, y) {
			g.Set(x, y, Open)
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
