// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/gridpath.
package gridgraph

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point is a cell coordinate; X grows to the east, Y grows to the south.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point { return Point{p.X + d.X, p.Y + d.Y} }

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func (p Point) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one of the four compass headings.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the four headings in clockwise order.
var Directions = [4]Direction{North, East, South, West}

var directionOffsets = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Offset returns the unit step for d.
func (d Direction) Offset() Point { return directionOffsets[d&3] }

// Right returns d rotated 90° clockwise.
func (d Direction) Right() Direction { return (d + 1) & 3 }

// Left returns d rotated 90° counter-clockwise.
func (d Direction) Left() Direction { return (d + 3) & 3 }

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Wall is the cell byte treated as impassable.
	Wall byte
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// Wall='#', Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Wall: '#',
		Conn: Conn4,
	}
}

// Grid is a rectangular byte grid used as a maze. Width and Height define
// dimensions; cells[y][x] holds the cell byte. A Grid is not safe for
// concurrent mutation; concurrent reads are fine.
type Grid struct {
	Width, Height   int
	Conn            Connectivity
	Wall            byte
	cells           [][]byte
	neighborOffsets []Point
}
