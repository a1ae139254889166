package gridgraph_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGrid, Parse and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty or ragged inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]byte
		err  error
	}{
		{"EmptyRows", [][]byte{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]byte{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]byte{[]byte(".."), []byte(".")}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.grid, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%q) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGrid_DeepCopy verifies that edits to the input do not leak into the grid.
func TestNewGrid_DeepCopy(t *testing.T) {
	rows := [][]byte{[]byte("..")}
	g, err := gridgraph.NewGrid(rows, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	rows[0][0] = '#'
	assert.True(t, g.Passable(gridgraph.Point{X: 0, Y: 0}))
}

// TestParse reads a small maze, ignoring trailing blank lines and CRs.
func TestParse(t *testing.T) {
	g, err := gridgraph.Parse(strings.NewReader("#S.\r\n.#E\n\n"), gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)

	s, ok := g.Find('S')
	require.True(t, ok)
	assert.Equal(t, gridgraph.Point{X: 1, Y: 0}, s)
	_, ok = g.Find('?')
	assert.False(t, ok)
	assert.Equal(t, "#S.\n.#E", g.String())
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.Blank(3, 2, '.', gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	for _, p := range []gridgraph.Point{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []gridgraph.Point{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
		_, ok := g.At(p)
		assert.False(t, ok, "At(%v)", p)
	}
}

func TestBlank_BadSize(t *testing.T) {
	_, err := gridgraph.Blank(0, 3, '.', gridgraph.DefaultGridOptions())
	require.ErrorIs(t, err, gridgraph.ErrBadSize)
}

func TestSetAndPassable(t *testing.T) {
	g, err := gridgraph.Blank(2, 2, '.', gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	require.NoError(t, g.Set(gridgraph.Point{X: 1, Y: 0}, '#'))
	assert.False(t, g.Passable(gridgraph.Point{X: 1, Y: 0}))
	assert.True(t, g.Passable(gridgraph.Point{X: 0, Y: 0}))
	assert.False(t, g.Passable(gridgraph.Point{X: 5, Y: 5}))
	require.ErrorIs(t, g.Set(gridgraph.Point{X: 2, Y: 0}, '#'), gridgraph.ErrOutOfBounds)

	c := g.Clone()
	require.NoError(t, c.Set(gridgraph.Point{X: 0, Y: 0}, '#'))
	assert.True(t, g.Passable(gridgraph.Point{X: 0, Y: 0}), "Clone must not share cells")
}

//----------------------------------------------------------------------------//
// Neighbors and Successors Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Conn4 verifies that only orthogonal, passable neighbors are returned.
func TestNeighbors_Conn4(t *testing.T) {
	g, err := gridgraph.Parse(strings.NewReader("...\n.#.\n..."), gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	got := g.Neighbors(gridgraph.Point{X: 1, Y: 0})
	assert.ElementsMatch(t, []gridgraph.Point{{0, 0}, {2, 0}}, got)
}

// TestNeighbors_Conn8 verifies diagonal connectivity.
func TestNeighbors_Conn8(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	g, err := gridgraph.Parse(strings.NewReader("..\n.."), opts)
	require.NoError(t, err)

	got := g.Neighbors(gridgraph.Point{X: 0, Y: 0})
	assert.ElementsMatch(t, []gridgraph.Point{{1, 0}, {0, 1}, {1, 1}}, got)
	assert.Len(t, g.NeighborOffsets(), 8)
}

// TestSuccessors_ManhattanOnOpenGrid checks that unit-cost search on an open
// 4-connected grid reproduces Manhattan distances.
func TestSuccessors_ManhattanOnOpenGrid(t *testing.T) {
	g, err := gridgraph.Blank(9, 7, '.', gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	start := gridgraph.Point{X: 3, Y: 2}
	res, err := dijkstra.ShortestDistances(start, g.Successors())
	require.NoError(t, err)

	g.Each(func(p gridgraph.Point, _ byte) {
		d, err := res.Distance(p)
		require.NoError(t, err)
		assert.Equal(t, start.Manhattan(p), d, "distance to %v", p)
	})
}

// TestSuccessors_WallsAndNoPath checks detours around walls and unreachable cells.
func TestSuccessors_WallsAndNoPath(t *testing.T) {
	g, err := gridgraph.Parse(strings.NewReader(
		"....\n"+
			"###.\n"+
			"....\n"+
			"####\n"+
			"...."), gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	res, err := dijkstra.ShortestDistances(gridgraph.Point{X: 0, Y: 0}, g.Successors())
	require.NoError(t, err)

	d, err := res.Distance(gridgraph.Point{X: 0, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, 8, d)

	_, err = res.Distance(gridgraph.Point{X: 0, Y: 4})
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

// TestCheckState verifies state checks against a deliberately broken successor function.
func TestCheckState(t *testing.T) {
	g, err := gridgraph.Parse(strings.NewReader(".#\n.."), gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	require.NoError(t, g.CheckState(gridgraph.Point{X: 0, Y: 0}))
	require.ErrorIs(t, g.CheckState(gridgraph.Point{X: 1, Y: 0}), gridgraph.ErrWall)
	require.ErrorIs(t, g.CheckState(gridgraph.Point{X: 0, Y: 9}), gridgraph.ErrOutOfBounds)

	// A successor function that ignores bounds.
	leaky := func(p gridgraph.Point) []dijkstra.Edge[gridgraph.Point, int] {
		return []dijkstra.Edge[gridgraph.Point, int]{{To: p.Add(gridgraph.Point{X: -1}), Cost: 1}}
	}
	_, err = dijkstra.ShortestDistances(gridgraph.Point{}, leaky,
		dijkstra.WithStateCheck[gridgraph.Point, int](g.CheckState))
	require.ErrorIs(t, err, dijkstra.ErrInvalidState)
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)

	// The grid's own successors never trip the check.
	_, err = dijkstra.ShortestDistances(gridgraph.Point{}, g.Successors(),
		dijkstra.WithStateCheck[gridgraph.Point, int](g.CheckState))
	require.NoError(t, err)
}

//----------------------------------------------------------------------------//
// Point and Direction Tests
//----------------------------------------------------------------------------//

func TestDirection_Rotations(t *testing.T) {
	for _, d := range gridgraph.Directions {
		assert.Equal(t, d, d.Left().Right(), "Left then Right of %v", d)
		assert.Equal(t, d, d.Right().Right().Right().Right(), "four Rights of %v", d)
		back := d.Offset().Add(d.Right().Right().Offset())
		assert.Equal(t, gridgraph.Point{}, back, "opposite offsets of %v", d)
	}
	assert.Equal(t, gridgraph.East, gridgraph.North.Right())
	assert.Equal(t, gridgraph.West, gridgraph.North.Left())
	assert.Equal(t, "S", gridgraph.South.String())
	assert.Equal(t, gridgraph.Point{X: 0, Y: -1}, gridgraph.North.Offset())
}

func TestPoint(t *testing.T) {
	p := gridgraph.Point{X: 1, Y: 2}
	assert.Equal(t, 7, p.Manhattan(gridgraph.Point{X: -2, Y: 6}))
	assert.Equal(t, "1,2", p.String())
}

func TestRender(t *testing.T) {
	g, err := gridgraph.Blank(3, 1, '.', gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	marks := map[gridgraph.Point]struct{}{{X: 0, Y: 0}: {}, {X: 2, Y: 0}: {}}
	assert.Equal(t, "O.O", g.Render(marks, 'O'))
	assert.Equal(t, "...", g.String())
	assert.Equal(t, 4, g.Infinity(1))
}
