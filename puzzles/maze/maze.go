// Package maze scores a walled maze where moving forward costs 1 and turning
// 90° in place costs 1000. It reports the cheapest score from S (facing east)
// to E and the number of cells lying on any cheapest route.
package maze

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Default move costs.
const (
	StepCost = 1
	TurnCost = 1000
)

var (
	// ErrMissingStart indicates the maze has no 'S' cell.
	ErrMissingStart = errors.New("maze: missing start cell 'S'")
	// ErrMissingEnd indicates the maze has no 'E' cell.
	ErrMissingEnd = errors.New("maze: missing end cell 'E'")
)

// Pose is a search state: a cell plus the direction being faced.
type Pose struct {
	Pos    gridgraph.Point
	Facing gridgraph.Direction
}

func (p Pose) String() string { return fmt.Sprintf("%v/%v", p.Pos, p.Facing) }

// Answer holds both results of a solved maze.
type Answer struct {
	Score int                          // cheapest score
	Tiles int                          // cells on any cheapest route
	Best  map[gridgraph.Point]struct{} // those cells
}

// Options configures a Maze.
type Options struct {
	Logger      *slog.Logger
	Observer    dijkstra.Observer
	StepCost    int
	TurnCost    int
	StartFacing gridgraph.Direction
	Validate    bool
}

// Option is a functional option for Parse.
type Option func(*Options)

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver forwards search Stats to obs.
func WithObserver(obs dijkstra.Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// WithCosts overrides the step and turn costs. Non-positive values are ignored.
func WithCosts(step, turn int) Option {
	return func(o *Options) {
		if step > 0 {
			o.StepCost = step
		}
		if turn > 0 {
			o.TurnCost = turn
		}
	}
}

// WithValidation checks every successor pose against the grid during the search.
func WithValidation() Option {
	return func(o *Options) { o.Validate = true }
}

// DefaultOptions returns step=1, turn=1000, facing east, slog.Default().
func DefaultOptions() Options {
	return Options{
		Logger:      slog.Default(),
		StepCost:    StepCost,
		TurnCost:    TurnCost,
		StartFacing: gridgraph.East,
	}
}

// Maze is a parsed maze ready to be solved.
type Maze struct {
	Start, End gridgraph.Point
	grid       *gridgraph.Grid
	opts       Options
}

// Parse reads a maze of '#' walls, '.' floor, one 'S' and one 'E'.
func Parse(r io.Reader, opts ...Option) (*Maze, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g, err := gridgraph.Parse(r, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	start, ok := g.Find('S')
	if !ok {
		return nil, ErrMissingStart
	}
	end, ok := g.Find('E')
	if !ok {
		return nil, ErrMissingEnd
	}

	return &Maze{Start: start, End: end, grid: g, opts: cfg}, nil
}

// Successors returns the move rules: step forward into a non-wall cell, or
// rotate left/right in place.
func (m *Maze) Successors() dijkstra.SuccessorFunc[Pose, int] {
	step, turn := m.opts.StepCost, m.opts.TurnCost
	return func(p Pose) []dijkstra.Edge[Pose, int] {
		out := make([]dijkstra.Edge[Pose, int], 0, 3)
		if next := p.Pos.Add(p.Facing.Offset()); m.grid.Passable(next) {
			out = append(out, dijkstra.Edge[Pose, int]{To: Pose{next, p.Facing}, Cost: step})
		}
		out = append(out,
			dijkstra.Edge[Pose, int]{To: Pose{p.Pos, p.Facing.Left()}, Cost: turn},
			dijkstra.Edge[Pose, int]{To: Pose{p.Pos, p.Facing.Right()}, Cost: turn},
		)
		return out
	}
}

// Solve finds the cheapest score to reach E in any facing, and every cell on
// any cheapest route. When several facings at E tie, their routes are merged.
func (m *Maze) Solve() (Answer, error) {
	goals := make([]Pose, 0, len(gridgraph.Directions))
	for _, d := range gridgraph.Directions {
		goals = append(goals, Pose{m.End, d})
	}
	maxEdge := max(m.opts.StepCost, m.opts.TurnCost)

	opts := []dijkstra.Option[Pose, int]{
		dijkstra.WithPredecessors[Pose, int](),
		dijkstra.WithTargets[Pose, int](goals...),
		dijkstra.WithInfinity[Pose, int](len(goals) * m.grid.Infinity(maxEdge)),
	}
	if m.opts.Observer != nil {
		opts = append(opts, dijkstra.WithObserver[Pose, int](m.opts.Observer))
	}
	if m.opts.Validate {
		opts = append(opts, dijkstra.WithStateCheck[Pose, int](func(p Pose) error {
			return m.grid.CheckState(p.Pos)
		}))
	}

	res, err := dijkstra.ShortestDistances(Pose{m.Start, m.opts.StartFacing}, m.Successors(), opts...)
	if err != nil {
		return Answer{}, fmt.Errorf("maze: %w", err)
	}
	best, score, err := dijkstra.BestTiles(res, goals, func(p Pose) gridgraph.Point { return p.Pos })
	if err != nil {
		return Answer{}, fmt.Errorf("maze: %w", err)
	}

	st := res.Stats()
	m.opts.Logger.Debug("maze solved",
		"score", score,
		"tiles", len(best),
		"finalized", st.Finalized,
		"tied", st.Tied,
		"elapsed", st.Elapsed,
	)

	return Answer{Score: score, Tiles: len(best), Best: best}, nil
}

// Render draws the maze with the given cells marked 'O'.
func (m *Maze) Render(cells map[gridgraph.Point]struct{}) string {
	return m.grid.Render(cells, 'O')
}
