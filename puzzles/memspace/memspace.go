// Package memspace models a square memory region into which bytes fall one at
// a time, each corrupting one cell. It answers two questions: the shortest
// walk from the top-left to the bottom-right corner after the first n bytes,
// and which byte first cuts every such walk.
//
// Input is one "x,y" pair per line, optionally preceded by a "Size:N" header
// giving the largest coordinate (the region is (N+1)×(N+1)).
package memspace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// DefaultSize is the largest coordinate used when the input has no header.
const DefaultSize = 70

const (
	floor     = '.'
	corrupted = '#'
)

var (
	// ErrBadLine indicates a line that is neither a header nor an "x,y" pair.
	ErrBadLine = errors.New("memspace: malformed line")
	// ErrBadCount indicates a byte count outside [0, len(Bytes)].
	ErrBadCount = errors.New("memspace: byte count out of range")
	// ErrAlreadyBlocked indicates the exit is unreachable before any extra byte falls.
	ErrAlreadyBlocked = errors.New("memspace: exit already unreachable")
	// ErrNeverBlocked indicates that every byte has fallen and the exit is still reachable.
	ErrNeverBlocked = errors.New("memspace: exit never blocked")
)

// Options configures a Space.
type Options struct {
	Logger      *slog.Logger
	Observer    dijkstra.Observer
	DefaultSize int
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

// WithObserver forwards the Stats of every search to obs.
func WithObserver(obs dijkstra.Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// WithSize sets the size used when the input carries no header.
func WithSize(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.DefaultSize = n
		}
	}
}

// Space is a parsed byte list over a square region.
type Space struct {
	Size  int               // largest coordinate on each axis
	Bytes []gridgraph.Point // in falling order
	opts  Options
}

// Parse reads the byte list. A "Size:N" header overrides the configured size.
// Every byte must lie inside the region.
func Parse(r io.Reader, opts ...Option) (*Space, error) {
	cfg := Options{Logger: slog.Default(), DefaultSize: DefaultSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Space{Size: cfg.DefaultSize, opts: cfg}
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if v, ok := strings.CutPrefix(line, "Size:"); ok {
			size, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil || size <= 0 {
				return nil, fmt.Errorf("%w %d: %q", ErrBadLine, n, line)
			}
			s.Size = size
			continue
		}
		p, err := parsePoint(line)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrBadLine, n, err)
		}
		s.Bytes = append(s.Bytes, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("memspace: read: %w", err)
	}
	for _, p := range s.Bytes {
		if p.X < 0 || p.Y < 0 || p.X > s.Size || p.Y > s.Size {
			return nil, fmt.Errorf("memspace: %w: %v outside 0..%d", gridgraph.ErrOutOfBounds, p, s.Size)
		}
	}

	return s, nil
}

func parsePoint(line string) (gridgraph.Point, error) {
	xs, ys, ok := strings.Cut(line, ",")
	if !ok {
		return gridgraph.Point{}, fmt.Errorf("want x,y, got %q", line)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return gridgraph.Point{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return gridgraph.Point{}, err
	}
	return gridgraph.Point{X: x, Y: y}, nil
}

// Exit is the bottom-right corner.
func (s *Space) Exit() gridgraph.Point { return gridgraph.Point{X: s.Size, Y: s.Size} }

// Grid returns the region with the first count bytes marked corrupted.
func (s *Space) Grid(count int) (*gridgraph.Grid, error) {
	if count < 0 || count > len(s.Bytes) {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrBadCount, count, len(s.Bytes))
	}
	g, err := gridgraph.Blank(s.Size+1, s.Size+1, floor, gridgraph.GridOptions{Wall: corrupted, Conn: gridgraph.Conn4})
	if err != nil {
		return nil, fmt.Errorf("memspace: %w", err)
	}
	for _, p := range s.Bytes[:count] {
		if err := g.Set(p, corrupted); err != nil {
			return nil, fmt.Errorf("memspace: %w", err)
		}
	}
	return g, nil
}

// ShortestPath returns the fewest steps from (0,0) to the exit after the
// first count bytes have fallen.
func (s *Space) ShortestPath(count int) (int, error) {
	g, err := s.Grid(count)
	if err != nil {
		return 0, err
	}
	res, err := s.search(g, false)
	if err != nil {
		return 0, err
	}
	steps, err := res.Distance(s.Exit())
	if err != nil {
		return 0, fmt.Errorf("memspace: %w", err)
	}

	s.opts.Logger.Debug("memspace shortest path", "bytes", count, "steps", steps)
	return steps, nil
}

// FirstBlocking drops bytes after the first count, one at a time, and returns
// the first one after which the exit is unreachable. A new search runs only
// when a byte lands on the current path.
func (s *Space) FirstBlocking(count int) (gridgraph.Point, error) {
	g, err := s.Grid(count)
	if err != nil {
		return gridgraph.Point{}, err
	}
	onPath, err := s.pathCells(g)
	if err != nil {
		if errors.Is(err, dijkstra.ErrNoPath) {
			return gridgraph.Point{}, fmt.Errorf("%w after %d bytes", ErrAlreadyBlocked, count)
		}
		return gridgraph.Point{}, err
	}

	searches := 1
	for i, p := range s.Bytes[count:] {
		_ = g.Set(p, corrupted) // bounds checked by Parse
		if _, hit := onPath[p]; !hit {
			continue
		}
		searches++
		onPath, err = s.pathCells(g)
		if errors.Is(err, dijkstra.ErrNoPath) {
			s.opts.Logger.Debug("memspace blocked",
				"byte", p.String(),
				"index", count+i,
				"searches", searches,
			)
			return p, nil
		}
		if err != nil {
			return gridgraph.Point{}, err
		}
	}

	return gridgraph.Point{}, ErrNeverBlocked
}

// pathCells returns the cells of one shortest path to the exit.
func (s *Space) pathCells(g *gridgraph.Grid) (map[gridgraph.Point]struct{}, error) {
	res, err := s.search(g, true)
	if err != nil {
		return nil, err
	}
	path, err := res.Path(s.Exit())
	if err != nil {
		return nil, fmt.Errorf("memspace: %w", err)
	}
	cells := make(map[gridgraph.Point]struct{}, len(path))
	for _, p := range path {
		cells[p] = struct{}{}
	}
	return cells, nil
}

func (s *Space) search(g *gridgraph.Grid, prev bool) (*dijkstra.Result[gridgraph.Point, int], error) {
	opts := []dijkstra.Option[gridgraph.Point, int]{
		dijkstra.WithTargets[gridgraph.Point, int](s.Exit()),
		dijkstra.WithInfinity[gridgraph.Point, int](g.Infinity(1)),
	}
	if prev {
		opts = append(opts, dijkstra.WithPredecessors[gridgraph.Point, int]())
	}
	if s.opts.Observer != nil {
		opts = append(opts, dijkstra.WithObserver[gridgraph.Point, int](s.opts.Observer))
	}

	// Neighbors never yields a corrupted cell, but the start is not a neighbor.
	if !g.Passable(gridgraph.Point{}) {
		return nil, fmt.Errorf("memspace: start corrupted: %w", &dijkstra.NoPathError{Goal: s.Exit()})
	}
	res, err := dijkstra.ShortestDistances(gridgraph.Point{}, g.Successors(), opts...)
	if err != nil {
		return nil, fmt.Errorf("memspace: %w", err)
	}
	return res, nil
}
