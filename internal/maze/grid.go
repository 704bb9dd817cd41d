// Package maze builds and repairs the tile lattice the player runs through.
//
// Rooms sit on odd coordinates and the even coordinates between them are the
// walls that get cleared when two rooms are carved together. The outer ring
// is always Wall; everything the carver has not touched is Blocked.
package maze

// Cell is the code stored for a single tile.
type Cell uint8

const (
	Open    Cell = 0
	Blocked Cell = 1
	Wall    Cell = 2
)

// MinSize is the smallest edge length that still holds a start room, a goal
// room and the border around them.
const MinSize = 5

// Point is an integer tile coordinate.
type Point struct {
	X int
	Y int
}

// Grid is a rectangular tile map stored row-major.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid returns a width x height grid with a Wall border and a Blocked
// interior.
func NewGrid(width, height int) *Grid {
	if width < MinSize {
		width = MinSize
	}
	if height < MinSize {
		height = MinSize
	}
	g := &Grid{width: width, height: height, cells: make([]Cell, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				g.cells[y*width+x] = Wall
			} else {
				g.cells[y*width+x] = Blocked
			}
		}
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Start is the fixed entry room.
func (g *Grid) Start() Point { return Point{X: 1, Y: 1} }

// Goal is derived from the current size since the maze grows every level.
func (g *Grid) Goal() Point { return Point{X: g.width - 2, Y: g.height - 2} }

// InBounds reports whether (x, y) addresses a tile of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// interior reports whether (x, y) is inside the border ring.
func (g *Grid) interior(x, y int) bool {
	return x > 0 && y > 0 && x < g.width-1 && y < g.height-1
}

// At returns the tile code, treating anything outside the grid as Wall.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y*g.width+x]
}

// Set writes a tile code; out of range writes are dropped.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = c
}

// IsOpen reports whether (x, y) is a passage.
func (g *Grid) IsOpen(x, y int) bool {
	return g.At(x, y) == Open
}

// IsSolid uses the collider's (row, col) argument order.
func (g *Grid) IsSolid(row, col int) bool {
	return g.At(col, row) != Open
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{width: g.width, height: g.height, cells: make([]Cell, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// openNeighbors counts the 4-connected passages around (x, y).
func (g *Grid) openNeighbors(x, y int) int {
	n := 0
	for _, d := range neighborDirs {
		if g.IsOpen(x+d.X, y+d.Y) {
			n++
		}
	}
	return n
}

// neighborDirs is the 4-neighbourhood in up, down, left, right order.
var neighborDirs = [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
