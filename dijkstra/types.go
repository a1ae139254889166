// Package dijkstra defines core types and configuration options
// for uniform-cost search over an implicit, weighted state graph.
//
// The graph is never materialized: callers hand ShortestDistances a start
// state and a SuccessorFunc that expands a state into (neighbor, cost) edges.
// States are any comparable type (grid coordinates, coordinate+facing, ...),
// costs are any integer type.
//
// Options:
//
//	– WithPredecessors:  record the predecessor multimap (all optimal parents).
//	– WithDone:          stop early once a finalized state satisfies a predicate.
//	– WithTargets:       stop early once every goal state is finalized.
//	– WithMaxCost:       states whose cost would exceed the cap are not explored.
//	– WithInfinity:      explicit "unreachable" sentinel (default: max value of C).
//	– WithStateCheck:    validate every successor yielded by the SuccessorFunc.
//	– WithObserver:      receive per-search Stats once the search returns.
//
// Errors (sentinel):
//
//	– ErrNilSuccessors   if the successor function is nil.
//	– ErrNegativeWeight  if a successor edge carries a negative cost.
//	– ErrCostOverflow    if a path cost reaches the infinity sentinel.
//	– ErrNoPath          (via *NoPathError) if a requested goal was never finalized.
//	– ErrInvalidState    (via *InvalidStateError) if WithStateCheck rejects a successor.
//	– ErrNoPredecessors  if path data is requested but WithPredecessors was not set.
//	– ErrBadMaxCost      if MaxCost < 0 (panics in the option constructor).
//	– ErrBadInfinity     if Infinity <= 0 (panics in the option constructor).
package dijkstra

import (
	"errors"
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilSuccessors indicates that a nil SuccessorFunc was passed.
	ErrNilSuccessors = errors.New("dijkstra: successor function is nil")

	// ErrNegativeWeight indicates that a successor edge had a negative cost.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrCostOverflow indicates that a path cost reached the infinity sentinel,
	// so it could no longer be told apart from "unreachable".
	ErrCostOverflow = errors.New("dijkstra: path cost reached the infinity sentinel")

	// ErrNoPath indicates that a goal state was never finalized.
	ErrNoPath = errors.New("dijkstra: no path to goal")

	// ErrInvalidState indicates that a successor function yielded a state
	// outside the caller's declared domain.
	ErrInvalidState = errors.New("dijkstra: invalid state")

	// ErrNoPredecessors indicates that path reconstruction was requested
	// from a search that did not record predecessors.
	ErrNoPredecessors = errors.New("dijkstra: predecessors were not recorded")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrBadInfinity indicates that the infinity sentinel was zero or negative.
	ErrBadInfinity = errors.New("dijkstra: Infinity must be positive")
)

// NoPathError reports a goal state that the search never finalized.
type NoPathError struct {
	Goal any
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("%s: %v", ErrNoPath, e.Goal)
}

// Is makes errors.Is(err, ErrNoPath) hold for any *NoPathError.
func (e *NoPathError) Is(target error) bool { return target == ErrNoPath }

// InvalidStateError reports a successor that failed the configured state check.
type InvalidStateError struct {
	From  any   // state being expanded
	State any   // offending successor
	Err   error // reason returned by the check
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %v -> %v: %v", ErrInvalidState, e.From, e.State, e.Err)
}

// Is makes errors.Is(err, ErrInvalidState) hold for any *InvalidStateError.
func (e *InvalidStateError) Is(target error) bool { return target == ErrInvalidState }

func (e *InvalidStateError) Unwrap() error { return e.Err }

// Cost is the set of numeric types a search can accumulate.
type Cost interface {
	constraints.Integer
}

// Edge is a single outgoing transition produced by a SuccessorFunc.
type Edge[S comparable, C Cost] struct {
	To   S // neighbor state
	Cost C // non-negative transition cost
}

// SuccessorFunc expands a state into its outgoing edges. It must be pure:
// the same state always yields the same edges.
type SuccessorFunc[S comparable, C Cost] func(S) []Edge[S, C]

// Predecessor is one entry of the predecessor multimap: a parent state and the
// cost at which the child was reached through it.
type Predecessor[S comparable, C Cost] struct {
	State S
	Cost  C
}

// PredecessorMap maps a state to every predecessor achieving its current minimum cost.
type PredecessorMap[S comparable, C Cost] map[S][]Predecessor[S, C]

// Stats holds counters for a single search.
type Stats struct {
	Finalized int           // states removed from the frontier with a final cost
	Pushed    int           // heap pushes (including the start)
	Improved  int           // relaxations that strictly lowered a distance
	Tied      int           // relaxations that matched a distance (predecessor appended)
	Stale     int           // outdated heap entries skipped
	Exhausted bool          // true if the frontier ran empty (no early stop)
	Elapsed   time.Duration // wall time spent inside ShortestDistances
}

// Observer receives the Stats of every search it is attached to.
// Implementations must be safe for concurrent use if shared between searches.
type Observer interface {
	ObserveSearch(Stats)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Stats)

// ObserveSearch calls f(s).
func (f ObserverFunc) ObserveSearch(s Stats) { f(s) }

// Options configures a single search.
//
// RecordPredecessors – keep the predecessor multimap in the Result.
// Done               – optional early-stop predicate, evaluated after each finalization.
// Targets            – optional goal set; the search stops once all are finalized.
// MaxCost            – states costing more than this are not explored (≥ 0).
// Infinity           – sentinel strictly greater than any real path cost (> 0).
// StateCheck         – optional validator applied to every successor.
// Observer           – optional Stats sink.
type Options[S comparable, C Cost] struct {
	RecordPredecessors bool
	Done               func(S) bool
	Targets            []S
	MaxCost            C
	Infinity           C
	StateCheck         func(S) error
	Observer           Observer
}

// Option represents a functional option for configuring a search.
type Option[S comparable, C Cost] func(*Options[S, C])

// WithPredecessors enables the predecessor multimap in the Result.
// Without it, Path and AllMinimumPathTiles return ErrNoPredecessors.
func WithPredecessors[S comparable, C Cost]() Option[S, C] {
	return func(o *Options[S, C]) {
		o.RecordPredecessors = true
	}
}

// WithDone stops the search right after a state s is finalized with done(s) == true.
// Early stop never changes the distance of a state that was finalized.
func WithDone[S comparable, C Cost](done func(S) bool) Option[S, C] {
	return func(o *Options[S, C]) {
		o.Done = done
	}
}

// WithTargets stops the search once every listed goal has been finalized.
func WithTargets[S comparable, C Cost](goals ...S) Option[S, C] {
	return func(o *Options[S, C]) {
		o.Targets = append(o.Targets, goals...)
	}
}

// WithMaxCost caps exploration: states whose cost would exceed max are skipped.
// Panics with ErrBadMaxCost if max is negative.
func WithMaxCost[S comparable, C Cost](max C) Option[S, C] {
	return func(o *Options[S, C]) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithInfinity sets the "unreachable" sentinel. It must be strictly greater than
// any real path cost, e.g. rows*cols*maxEdge+1 for a bounded grid.
// Panics with ErrBadInfinity if inf <= 0.
func WithInfinity[S comparable, C Cost](inf C) Option[S, C] {
	return func(o *Options[S, C]) {
		if inf <= 0 {
			panic(ErrBadInfinity.Error())
		}
		o.Infinity = inf
	}
}

// WithStateCheck validates every successor; the first failure aborts the search
// with an *InvalidStateError wrapping the returned error.
func WithStateCheck[S comparable, C Cost](check func(S) error) Option[S, C] {
	return func(o *Options[S, C]) {
		o.StateCheck = check
	}
}

// WithObserver attaches an Observer that receives Stats when the search returns.
func WithObserver[S comparable, C Cost](obs Observer) Option[S, C] {
	return func(o *Options[S, C]) {
		o.Observer = obs
	}
}

// DefaultOptions returns the options used when none are supplied:
// no predecessors, no early stop, no cost cap and Infinity = max value of C.
func DefaultOptions[S comparable, C Cost]() Options[S, C] {
	return Options[S, C]{
		MaxCost:  MaxValue[C](),
		Infinity: MaxValue[C](),
	}
}

// MaxValue returns the largest value representable by C.
func MaxValue[C Cost]() C {
	var zero C
	ones := ^zero
	if ones > zero {
		return ones // unsigned
	}
	bits := unsafe.Sizeof(zero) * 8

	return C(uint64(1)<<(bits-1) - 1)
}
