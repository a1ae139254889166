package dijkstra

// Result is the outcome of a single ShortestDistances call.
//
// Dist holds the best-known cost of every discovered state. After an exhaustive
// run every discovered state is finalized; after an early stop, states still on
// the frontier keep a tentative cost, so query through Distance when it matters.
// Prev is nil unless WithPredecessors was set.
type Result[S comparable, C Cost] struct {
	Dist map[S]C
	Prev PredecessorMap[S, C]

	source    S
	inf       C
	finalized map[S]bool
	stats     Stats
}

// Source returns the start state of the search.
func (r *Result[S, C]) Source() S { return r.source }

// Infinity returns the sentinel used for unreachable states.
func (r *Result[S, C]) Infinity() C { return r.inf }

// Stats returns the counters collected during the search.
func (r *Result[S, C]) Stats() Stats { return r.stats }

// Reached reports whether s was discovered at all.
func (r *Result[S, C]) Reached(s S) bool {
	_, ok := r.Dist[s]
	return ok
}

// Finalized reports whether the minimum cost of s is confirmed.
func (r *Result[S, C]) Finalized(s S) bool { return r.finalized[s] }

// Cost returns the distance of s, or Infinity() if s was never discovered.
func (r *Result[S, C]) Cost(s S) C {
	if d, ok := r.Dist[s]; ok {
		return d
	}

	return r.inf
}

// Distance returns the minimum cost of goal, or a *NoPathError if goal was
// never finalized.
func (r *Result[S, C]) Distance(goal S) (C, error) {
	if !r.finalized[goal] {
		return r.inf, &NoPathError{Goal: goal}
	}

	return r.Dist[goal], nil
}

// Nearest returns the finalized goal with the smallest cost. Ties keep the
// earliest goal in argument order. Returns a *NoPathError naming the goal list
// if none of the goals was finalized.
func (r *Result[S, C]) Nearest(goals ...S) (S, C, error) {
	var (
		best  S
		cost  = r.inf
		found bool
	)
	for _, g := range goals {
		d, err := r.Distance(g)
		if err != nil {
			continue
		}
		if !found || d < cost {
			best, cost, found = g, d, true
		}
	}
	if !found {
		return best, r.inf, &NoPathError{Goal: goals}
	}

	return best, cost, nil
}

// Path returns one minimum-cost path from the source to goal (both included),
// following the first recorded predecessor of each state.
func (r *Result[S, C]) Path(goal S) ([]S, error) {
	if r.Prev == nil {
		return nil, ErrNoPredecessors
	}
	if !r.finalized[goal] {
		return nil, &NoPathError{Goal: goal}
	}

	path := []S{goal}
	for at := goal; at != r.source; {
		preds := r.Prev[at]
		if len(preds) == 0 {
			// Only the source has no predecessor among finalized states.
			return nil, &NoPathError{Goal: goal}
		}
		at = preds[0].State
		path = append(path, at)
	}
	// Reverse in place: collected goal → source.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
