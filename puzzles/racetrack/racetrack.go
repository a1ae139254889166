// Package racetrack counts shortcuts ("cheats") on a single-lane track.
//
// A cheat lets the racer ignore walls for up to a fixed number of orthogonal
// moves. It is identified by its start and end cells, both on the track, and
// saves d(start) - d(end) - manhattan(start, end) picoseconds, where d is the
// distance to E along the track.
package racetrack

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	ErrMissingStart = errors.New("racetrack: missing start cell 'S'")
	ErrMissingEnd   = errors.New("racetrack: missing end cell 'E'")
	ErrBadCheat     = errors.New("racetrack: cheat length must be at least 2")
)

// Options configures a Track.
type Options struct {
	Logger   *slog.Logger
	Observer dijkstra.Observer
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

// Track is a parsed racetrack. The distance field is computed on first use.
type Track struct {
	Start, End gridgraph.Point
	grid       *gridgraph.Grid
	opts       Options
	dist       map[gridgraph.Point]int
}

// Parse reads a track of '#' walls, '.' track, one 'S' and one 'E'.
func Parse(r io.Reader, opts ...Option) (*Track, error) {
	cfg := Options{Logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	g, err := gridgraph.Parse(r, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("racetrack: %w", err)
	}
	start, ok := g.Find('S')
	if !ok {
		return nil, ErrMissingStart
	}
	end, ok := g.Find('E')
	if !ok {
		return nil, ErrMissingEnd
	}

	return &Track{Start: start, End: end, grid: g, opts: cfg}, nil
}

// DistanceField returns the track distance from every reachable track cell
// to E. It fails with dijkstra.ErrNoPath if S cannot reach E.
func (t *Track) DistanceField() (map[gridgraph.Point]int, error) {
	if t.dist != nil {
		return t.dist, nil
	}

	opts := []dijkstra.Option[gridgraph.Point, int]{
		dijkstra.WithInfinity[gridgraph.Point, int](t.grid.Infinity(1)),
	}
	if t.opts.Observer != nil {
		opts = append(opts, dijkstra.WithObserver[gridgraph.Point, int](t.opts.Observer))
	}
	// Unit costs are symmetric, so searching from E gives distances to E.
	res, err := dijkstra.ShortestDistances(t.End, t.grid.Successors(), opts...)
	if err != nil {
		return nil, fmt.Errorf("racetrack: %w", err)
	}
	if _, err := res.Distance(t.Start); err != nil {
		return nil, fmt.Errorf("racetrack: %w", err)
	}

	t.dist = res.Dist
	return t.dist, nil
}

// Length is the cheat-free race time from S to E.
func (t *Track) Length() (int, error) {
	dist, err := t.DistanceField()
	if err != nil {
		return 0, err
	}
	return dist[t.Start], nil
}

// Savings returns how many distinct cheats of at most length moves save each
// positive amount of time.
func (t *Track) Savings(length int) (map[int]int, error) {
	hist := make(map[int]int)
	err := t.eachCheat(length, func(saved int) { hist[saved]++ })
	if err != nil {
		return nil, err
	}
	return hist, nil
}

// CountCheats counts the distinct cheats of at most length moves that save at
// least threshold.
func (t *Track) CountCheats(threshold, length int) (int, error) {
	if threshold < 1 {
		threshold = 1
	}
	count := 0
	err := t.eachCheat(length, func(saved int) {
		if saved >= threshold {
			count++
		}
	})
	if err != nil {
		return 0, err
	}

	t.opts.Logger.Debug("racetrack cheats counted",
		"threshold", threshold,
		"length", length,
		"count", count,
	)
	return count, nil
}

// eachCheat calls fn with the saving of every cheat that saves time.
// Cells are visited in row-major order so the result does not depend on map
// iteration.
func (t *Track) eachCheat(length int, fn func(saved int)) error {
	if length < 2 {
		return fmt.Errorf("%w: %d", ErrBadCheat, length)
	}
	dist, err := t.DistanceField()
	if err != nil {
		return err
	}

	t.grid.Each(func(from gridgraph.Point, _ byte) {
		dFrom, ok := dist[from]
		if !ok {
			return
		}
		for dy := -length; dy <= length; dy++ {
			rest := length - abs(dy)
			for dx := -rest; dx <= rest; dx++ {
				m := abs(dx) + abs(dy)
				if m < 2 {
					continue
				}
				dTo, ok := dist[from.Add(gridgraph.Point{X: dx, Y: dy})]
				if !ok {
					continue
				}
				if saved := dFrom - dTo - m; saved > 0 {
					fn(saved)
				}
			}
		}
	})
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
