package maze_test

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/puzzles/maze"
)

const (
	// one cheapest route: east along the bottom, then north.
	cornerMaze = "#####\n" +
		"#..E#\n" +
		"#.#.#\n" +
		"#S..#\n" +
		"#####"
	// two cheapest routes that reach E facing opposite ways.
	splitMaze = "#####\n" +
		"#...#\n" +
		"#S#E#\n" +
		"#...#\n" +
		"#####"
)

func mustParse(t *testing.T, in string, opts ...maze.Option) *maze.Maze {
	t.Helper()
	m, err := maze.Parse(strings.NewReader(in), opts...)
	require.NoError(t, err)
	return m
}

func TestSolve_Sample(t *testing.T) {
	f, err := os.Open("testdata/sample.txt")
	require.NoError(t, err)
	defer f.Close()

	m, err := maze.Parse(f, maze.WithValidation())
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Point{X: 1, Y: 13}, m.Start)
	assert.Equal(t, gridgraph.Point{X: 13, Y: 1}, m.End)

	ans, err := m.Solve()
	require.NoError(t, err)
	assert.Equal(t, 7036, ans.Score)
	assert.Equal(t, 45, ans.Tiles)
	assert.Contains(t, ans.Best, m.Start)
	assert.Contains(t, ans.Best, m.End)
}

func TestSolve_SingleRoute(t *testing.T) {
	ans, err := mustParse(t, cornerMaze).Solve()
	require.NoError(t, err)
	assert.Equal(t, 1004, ans.Score)
	assert.Equal(t, 5, ans.Tiles)
	assert.NotContains(t, ans.Best, gridgraph.Point{X: 1, Y: 1})
}

func TestSolve_TiedFacingsAreMerged(t *testing.T) {
	m := mustParse(t, splitMaze)
	ans, err := m.Solve()
	require.NoError(t, err)
	assert.Equal(t, 3004, ans.Score)
	assert.Equal(t, 8, ans.Tiles)
	assert.Equal(t, "#####\n#OOO#\n#O#O#\n#OOO#\n#####", m.Render(ans.Best))
}

func TestSolve_CustomCosts(t *testing.T) {
	ans, err := mustParse(t, cornerMaze, maze.WithCosts(1, 1)).Solve()
	require.NoError(t, err)
	assert.Equal(t, 5, ans.Score)
	assert.Equal(t, 5, ans.Tiles)
}

func TestSolve_Unreachable(t *testing.T) {
	_, err := mustParse(t, "#####\n#S#E#\n#####").Solve()
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestParse_Errors(t *testing.T) {
	_, err := maze.Parse(strings.NewReader("#S.#"))
	require.ErrorIs(t, err, maze.ErrMissingEnd)

	_, err = maze.Parse(strings.NewReader("#.E#"))
	require.ErrorIs(t, err, maze.ErrMissingStart)

	_, err = maze.Parse(strings.NewReader("#S\n.E#"))
	require.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}

func TestSuccessors(t *testing.T) {
	m := mustParse(t, cornerMaze)
	succ := m.Successors()

	// Facing east from S: forward is open.
	edges := succ(maze.Pose{Pos: m.Start, Facing: gridgraph.East})
	require.Len(t, edges, 3)
	assert.Equal(t, maze.Pose{Pos: gridgraph.Point{X: 2, Y: 3}, Facing: gridgraph.East}, edges[0].To)
	assert.Equal(t, maze.StepCost, edges[0].Cost)

	// Facing south from S: a wall, only the two turns remain.
	edges = succ(maze.Pose{Pos: m.Start, Facing: gridgraph.South})
	require.Len(t, edges, 2)
	for _, e := range edges {
		assert.Equal(t, maze.TurnCost, e.Cost)
		assert.Equal(t, m.Start, e.To.Pos)
	}
	assert.Equal(t, "1,3/S", maze.Pose{Pos: m.Start, Facing: gridgraph.South}.String())
}

func TestSolve_LogsAndObserves(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var seen []dijkstra.Stats
	obs := dijkstra.ObserverFunc(func(s dijkstra.Stats) { seen = append(seen, s) })

	_, err := mustParse(t, cornerMaze, maze.WithLogger(logger), maze.WithObserver(obs)).Solve()
	require.NoError(t, err)

	require.Len(t, seen, 1)
	assert.Positive(t, seen[0].Finalized)
	assert.Contains(t, buf.String(), "maze solved")
	assert.Contains(t, buf.String(), "score=1004")
}
