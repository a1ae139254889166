// Package gridgraph provides utilities to treat a 2D byte grid as a maze graph
// for the dijkstra engine. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Bounds-checked cell lookup and mutation
//   - Unit-cost successor functions over passable cells
//   - State checks that reject out-of-bounds or wall states
//
// Cells equal to GridOptions.Wall are impassable; every other byte is open.
package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/dijkstra"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure later edits do not leak back.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(rows [][]byte, opts GridOptions) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]byte, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]byte, w)
		copy(cells[y], rows[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets []Point
	if opts.Conn == Conn8 {
		offsets = []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &Grid{
		Width:           w,
		Height:          h,
		Conn:            opts.Conn,
		Wall:            opts.Wall,
		cells:           cells,
		neighborOffsets: offsets,
	}, nil
}

// Parse reads one grid row per line from r. Trailing blank lines are ignored;
// carriage returns are stripped.
func Parse(r io.Reader, opts GridOptions) (*Grid, error) {
	var rows [][]byte
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		rows = append(rows, []byte(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read grid: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}

	return NewGrid(rows, opts)
}

// Blank builds a w×h grid with every cell set to fill.
func Blank(w, h int, fill byte, opts GridOptions) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, w, h)
	}
	rows := make([][]byte, h)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(string(fill), w))
	}

	return NewGrid(rows, opts)
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the cell byte at p and whether p is in bounds.
func (g *Grid) At(p Point) (byte, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[p.Y][p.X], true
}

// Set overwrites the cell at p.
func (g *Grid) Set(p Point, b byte) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	g.cells[p.Y][p.X] = b

	return nil
}

// Passable reports whether p is in bounds and not a wall.
func (g *Grid) Passable(p Point) bool {
	b, ok := g.At(p)
	return ok && b != g.Wall
}

// Find returns the first cell (row-major) holding b.
func (g *Grid) Find(b byte) (Point, bool) {
	for y, row := range g.cells {
		for x, c := range row {
			if c == b {
				return Point{x, y}, true
			}
		}
	}
	return Point{}, false
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(p Point, b byte)) {
	for y, row := range g.cells {
		for x, c := range row {
			fn(Point{x, y}, c)
		}
	}
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (g *Grid) NeighborOffsets() []Point {
	return g.neighborOffsets
}

// Neighbors returns the passable cells adjacent to p under g.Conn.
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(g.neighborOffsets))
	for _, d := range g.neighborOffsets {
		if q := p.Add(d); g.Passable(q) {
			out = append(out, q)
		}
	}
	return out
}

// Successors returns a unit-cost successor function over passable neighbors.
// The function reads the grid on every call, so edits made between searches
// (for example new walls) are honored by the next search.
func (g *Grid) Successors() dijkstra.SuccessorFunc[Point, int] {
	return func(p Point) []dijkstra.Edge[Point, int] {
		nbs := g.Neighbors(p)
		out := make([]dijkstra.Edge[Point, int], len(nbs))
		for i, q := range nbs {
			out[i] = dijkstra.Edge[Point, int]{To: q, Cost: 1}
		}
		return out
	}
}

// CheckState rejects positions outside the grid or on a wall. It is meant for
// dijkstra.WithStateCheck to catch broken successor functions.
func (g *Grid) CheckState(p Point) error {
	b, ok := g.At(p)
	switch {
	case !ok:
		return fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.Width, g.Height)
	case b == g.Wall:
		return fmt.Errorf("%w: %v", ErrWall, p)
	}
	return nil
}

// Infinity returns a cost sentinel strictly greater than any simple path cost
// through the grid when no edge costs more than maxEdge: W·H·maxEdge + 1.
func (g *Grid) Infinity(maxEdge int) int {
	return g.Width*g.Height*maxEdge + 1
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c, _ := NewGrid(g.cells, GridOptions{Wall: g.Wall, Conn: g.Conn})
	return c
}

// String renders the grid, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for y, row := range g.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(row)
	}
	return sb.String()
}

// Render is String with the cells in marks replaced by mark.
func (g *Grid) Render(marks map[Point]struct{}, mark byte) string {
	c := g.Clone()
	for p := range marks {
		_ = c.Set(p, mark)
	}
	return c.String()
}
