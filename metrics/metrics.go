// Package metrics exports per-search statistics as Prometheus series,
// labelled by the solver that ran the search.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gridpath/dijkstra"
)

const namespace = "gridpath"

// Solve outcomes recorded by ObserveSolve.
const (
	ResultOK     = "ok"
	ResultNoPath = "no_path"
	ResultError  = "error"
)

// Collector holds the metric vectors. It is safe for concurrent use.
type Collector struct {
	searches  *prometheus.CounterVec
	finalized *prometheus.CounterVec
	pushed    *prometheus.CounterVec
	ties      *prometheus.CounterVec
	stale     *prometheus.CounterVec
	exhausted *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	solves    *prometheus.CounterVec
}

// New registers the gridpath metrics with reg.
// It panics if they are already registered there.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Total shortest-path searches by solver",
		}, []string{"solver"}),
		finalized: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "states_finalized_total",
			Help:      "States whose distance was finalized",
		}, []string{"solver"}),
		pushed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queue_pushes_total",
			Help:      "Priority queue insertions",
		}, []string{"solver"}),
		ties: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predecessor_ties_total",
			Help:      "Equal-cost predecessors appended",
		}, []string{"solver"}),
		stale: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_pops_total",
			Help:      "Outdated queue entries skipped",
		}, []string{"solver"}),
		exhausted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_exhausted_total",
			Help:      "Searches that ran until the queue was empty",
		}, []string{"solver"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Search duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~0.8s
		}, []string{"solver"}),
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Puzzle answers by solver and result",
		}, []string{"solver", "result"}),
	}
}

// For returns an Observer that records every search under the solver label.
func (c *Collector) For(solver string) dijkstra.Observer {
	searches := c.searches.WithLabelValues(solver)
	finalized := c.finalized.WithLabelValues(solver)
	pushed := c.pushed.WithLabelValues(solver)
	ties := c.ties.WithLabelValues(solver)
	stale := c.stale.WithLabelValues(solver)
	exhausted := c.exhausted.WithLabelValues(solver)
	duration := c.duration.WithLabelValues(solver)

	return dijkstra.ObserverFunc(func(s dijkstra.Stats) {
		searches.Inc()
		finalized.Add(float64(s.Finalized))
		pushed.Add(float64(s.Pushed))
		ties.Add(float64(s.Tied))
		stale.Add(float64(s.Stale))
		if s.Exhausted {
			exhausted.Inc()
		}
		duration.Observe(s.Elapsed.Seconds())
	})
}

// ObserveSolve counts one puzzle answer, classified by err.
func (c *Collector) ObserveSolve(solver string, err error) {
	c.solves.WithLabelValues(solver, Classify(err)).Inc()
}

// Classify maps a solver error to a result label.
func Classify(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, dijkstra.ErrNoPath):
		return ResultNoPath
	default:
		return ResultError
	}
}
