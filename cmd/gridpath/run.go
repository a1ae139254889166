package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/puzzles/maze"
	"github.com/katalvlaran/gridpath/puzzles/memspace"
	"github.com/katalvlaran/gridpath/puzzles/racetrack"
)

type answer struct {
	part1, part2 string
	err          error
}

// run is main without os.Exit, returning the process exit code.
func run(name string, args []string, stdout, stderr io.Writer) int {
	f := newGlobalFlags(name, stderr)
	if err := f.Parse(args); err != nil {
		fmt.Fprintf(stderr, "failed to parse command args: %s\n", err)
		return 2
	}

	level := slog.LevelInfo
	if f.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.NewString(), "day", f.Day)

	reg := prometheus.NewRegistry()
	col := metrics.New(reg)

	start := time.Now()
	answers := make([]answer, len(f.Files))
	var wg sync.WaitGroup
	for i, path := range f.Files {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			answers[i] = solveFile(f, path, logger.With("file", path), col)
		}(i, path)
	}
	wg.Wait()

	code := 0
	for i, path := range f.Files {
		a := answers[i]
		if a.err != nil {
			fmt.Fprintf(stderr, "ERROR: %s: %s\n", path, a.err)
			code = 1
			continue
		}
		fmt.Fprintf(stdout, "%s part1=%s part2=%s\n", path, a.part1, a.part2)
	}
	logger.Info("done", "files", len(f.Files), "elapsed", time.Since(start))

	if f.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(f.MetricsFile, reg); err != nil {
			fmt.Fprintf(stderr, "ERROR: write metrics: %s\n", err)
			code = 1
		}
	}
	return code
}

func solveFile(f *globalFlags, path string, logger *slog.Logger, col *metrics.Collector) answer {
	in, err := os.Open(path)
	if err != nil {
		return answer{err: err}
	}
	defer in.Close()

	var (
		a      answer
		solver string
	)
	switch f.Day {
	case 16:
		solver = "maze"
		a = solveMaze(in, f, logger, col)
	case 18:
		solver = "memspace"
		a = solveMemspace(in, f, logger, col)
	case 20:
		solver = "racetrack"
		a = solveRacetrack(in, f, logger, col)
	}
	col.ObserveSolve(solver, a.err)
	return a
}

func solveMaze(in io.Reader, f *globalFlags, logger *slog.Logger, col *metrics.Collector) answer {
	opts := []maze.Option{
		maze.WithLogger(logger),
		maze.WithObserver(col.For("maze")),
	}
	if f.Debug {
		opts = append(opts, maze.WithValidation())
	}
	m, err := maze.Parse(in, opts...)
	if err != nil {
		return answer{err: err}
	}
	ans, err := m.Solve()
	if err != nil {
		return answer{err: err}
	}
	return answer{part1: strconv.Itoa(ans.Score), part2: strconv.Itoa(ans.Tiles)}
}

func solveMemspace(in io.Reader, f *globalFlags, logger *slog.Logger, col *metrics.Collector) answer {
	sp, err := memspace.Parse(in,
		memspace.WithLogger(logger),
		memspace.WithObserver(col.For("memspace")),
		memspace.WithSize(f.Size),
	)
	if err != nil {
		return answer{err: err}
	}
	count := min(f.Bytes, len(sp.Bytes))
	steps, err := sp.ShortestPath(count)
	if err != nil {
		return answer{err: err}
	}
	p, err := sp.FirstBlocking(count)
	if err != nil {
		return answer{err: err}
	}
	return answer{part1: strconv.Itoa(steps), part2: p.String()}
}

func solveRacetrack(in io.Reader, f *globalFlags, logger *slog.Logger, col *metrics.Collector) answer {
	tr, err := racetrack.Parse(in,
		racetrack.WithLogger(logger),
		racetrack.WithObserver(col.For("racetrack")),
	)
	if err != nil {
		return answer{err: err}
	}
	short, err := tr.CountCheats(f.Threshold, 2)
	if err != nil {
		return answer{err: err}
	}
	long, err := tr.CountCheats(f.Threshold, f.Cheat)
	if err != nil {
		return answer{err: err}
	}
	return answer{part1: strconv.Itoa(short), part2: strconv.Itoa(long)}
}
