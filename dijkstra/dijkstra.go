// Package dijkstra implements uniform-cost (Dijkstra) search over an implicit
// state graph with non-negative integer edge costs.
//
// Complexity:
//
//   - Time:  O((V + E) log V), V = reachable states, E = edges yielded by successors.
//   - Each state is finalized at most once; each relaxation may push one heap entry.
//   - Space: O(V + E)
//   - O(V) for the distance table and finalized set.
//   - O(E) worst-case for the heap under lazy decrease-key and for the predecessor multimap.
//
// Notes on implementation choices:
//
//   - Successor edges are validated as they are produced (negative cost, overflow,
//     optional StateCheck); there is no upfront scan because the graph is implicit.
//   - We use a "lazy" decrease-key strategy: duplicates are pushed into the heap and
//     stale entries are ignored when popped.
//   - Finalized neighbors are never relaxed again, so a finalized distance and its
//     predecessor list are frozen.
package dijkstra

import (
	"container/heap"
	"fmt"
	"time"
)

// ShortestDistances computes minimum costs from start to every state reachable
// through successors.
//
// Returns:
//
//   - *Result: the distance table (start ↦ 0), the finalized set, the optional
//     predecessor multimap and Stats.
//   - err: ErrNilSuccessors, a wrapped ErrNegativeWeight / ErrCostOverflow, or an
//     *InvalidStateError when a configured StateCheck rejects a successor.
//
// Relaxation rule: when cost(u)+w < dist(v) the distance is lowered and the
// predecessor list of v is replaced by [u]; when cost(u)+w == dist(v), u is appended.
//
// Termination: the frontier runs empty, or Done/Targets is satisfied right after
// a finalization. Early stop leaves every finalized distance identical to a full run.
func ShortestDistances[S comparable, C Cost](start S, successors SuccessorFunc[S, C], opts ...Option[S, C]) (*Result[S, C], error) {
	// 1) Build options.
	cfg := DefaultOptions[S, C]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if successors == nil {
		return nil, ErrNilSuccessors
	}

	// 3) Prepare per-run state. Nothing here outlives the call except the Result.
	res := &Result[S, C]{
		source:    start,
		inf:       cfg.Infinity,
		Dist:      make(map[S]C),
		finalized: make(map[S]bool),
	}
	if cfg.RecordPredecessors {
		res.Prev = make(PredecessorMap[S, C])
	}
	r := &runner[S, C]{
		options:    cfg,
		successors: successors,
		res:        res,
		pending:    make(map[S]bool, len(cfg.Targets)),
	}
	for _, goal := range cfg.Targets {
		r.pending[goal] = true
	}

	// 4) Run.
	began := time.Now()
	r.init(start)
	err := r.process()
	res.stats.Elapsed = time.Since(began)
	if cfg.Observer != nil {
		cfg.Observer.ObserveSearch(res.stats)
	}
	if err != nil {
		return nil, err
	}

	return res, nil
}

// runner holds the mutable state for a single search.
type runner[S comparable, C Cost] struct {
	options    Options[S, C]
	successors SuccessorFunc[S, C]
	res        *Result[S, C]
	pq         statePQ[S, C]
	pending    map[S]bool // targets not finalized yet
}

// init seeds the distance table and the heap with the start state.
func (r *runner[S, C]) init(start S) {
	r.res.Dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &stateItem[S, C]{state: start, cost: 0})
	r.res.stats.Pushed++
}

// process is the main loop: pop the cheapest unfinalized state, finalize it,
// check the stop conditions, relax its successors.
func (r *runner[S, C]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem[S, C])
		u, d := item.state, item.cost

		// Skip stale heap entries.
		if r.res.finalized[u] || d > r.res.Dist[u] {
			r.res.stats.Stale++
			continue
		}

		r.res.finalized[u] = true
		r.res.stats.Finalized++

		if r.stop(u) {
			return nil
		}
		if err := r.relax(u, d); err != nil {
			return err
		}
	}
	r.res.stats.Exhausted = true

	return nil
}

// stop reports whether the search may end after finalizing u.
func (r *runner[S, C]) stop(u S) bool {
	if len(r.options.Targets) > 0 {
		delete(r.pending, u)
		if len(r.pending) == 0 {
			return true
		}
	}

	return r.options.Done != nil && r.options.Done(u)
}

// relax examines every edge out of u (whose distance d is final) and lowers or
// ties neighbor distances.
func (r *runner[S, C]) relax(u S, d C) error {
	for _, e := range r.successors(u) {
		v, w := e.To, e.Cost

		if w < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, u, v, w)
		}
		if r.options.StateCheck != nil {
			if err := r.options.StateCheck(v); err != nil {
				return &InvalidStateError{From: u, State: v, Err: err}
			}
		}

		// Finalized states never change again.
		if r.res.finalized[v] {
			continue
		}

		nd := d + w
		if nd < d || nd >= r.res.inf {
			return fmt.Errorf("%w: %v+%v at edge %v→%v", ErrCostOverflow, d, w, u, v)
		}
		if nd > r.options.MaxCost {
			continue
		}

		cur, seen := r.res.Dist[v]
		switch {
		case !seen || nd < cur:
			r.res.Dist[v] = nd
			if r.res.Prev != nil {
				// Replace, never append, on strict improvement.
				r.res.Prev[v] = []Predecessor[S, C]{{State: u, Cost: nd}}
			}
			heap.Push(&r.pq, &stateItem[S, C]{state: v, cost: nd})
			r.res.stats.Pushed++
			r.res.stats.Improved++
		case nd == cur:
			if r.res.Prev != nil {
				r.res.Prev[v] = append(r.res.Prev[v], Predecessor[S, C]{State: u, Cost: nd})
			}
			r.res.stats.Tied++
		}
	}

	return nil
}

// stateItem pairs a state with the cost it was pushed at.
type stateItem[S comparable, C Cost] struct {
	state S
	cost  C
}

// statePQ is a min-heap of *stateItem ordered by cost.
type statePQ[S comparable, C Cost] []*stateItem[S, C]

func (pq statePQ[S, C]) Len() int           { return len(pq) }
func (pq statePQ[S, C]) Less(i, j int) bool { return pq[i].cost < pq[j].cost }
func (pq statePQ[S, C]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a *stateItem.
func (pq *statePQ[S, C]) Push(x any) { *pq = append(*pq, x.(*stateItem[S, C])) }

// Pop is called by heap.Pop.
func (pq *statePQ[S, C]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
