package pellet

import "mazehorror/internal/maze"

// ringFootprint lists the tile offsets within radius of the origin, nearest
// first, excluding the origin itself.
func ringFootprint(radius int) []maze.Point {
	footprint := make([]maze.Point, 0, (2*radius+1)*(2*radius+1))
	r2 := radius * radius
	for d2 := 1; d2 <= r2; d2++ {
		for y := -radius; y <= radius; y++ {
			for x := -radius; x <= radius; x++ {
				if x*x+y*y == d2 {
					footprint = append(footprint, maze.Point{X: x, Y: y})
				}
			}
		}
	}
	return footprint
}

var bonusFootprint = ringFootprint(3)
