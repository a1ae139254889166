package dijkstra

// AllMinimumPathTiles collects every position lying on at least one
// minimum-cost path from the source to goal.
//
// The predecessor multimap is walked backwards from goal with an explicit stack;
// each state is expanded once, even when several predecessor edges lead to it.
// project maps a state to the caller's notion of a tile (for example dropping a
// facing direction); the returned set contains project(s) for every visited
// state, source and goal included.
//
// Errors: ErrNoPredecessors if the search ran without WithPredecessors,
// *NoPathError if goal was not finalized.
//
// Complexity: O(V + P), V = states on optimal paths, P = predecessor entries among them.
func AllMinimumPathTiles[S comparable, P comparable, C Cost](r *Result[S, C], goal S, project func(S) P) (map[P]struct{}, error) {
	if r.Prev == nil {
		return nil, ErrNoPredecessors
	}
	if !r.finalized[goal] {
		return nil, &NoPathError{Goal: goal}
	}

	return walkBack(r.Prev, []S{goal}, project), nil
}

// BestTiles is AllMinimumPathTiles over a set of alternative goals (for example
// every facing at an exit cell): it keeps the goals that tie for the minimum
// finalized cost and returns the union of their optimal-path tiles, plus that cost.
func BestTiles[S comparable, P comparable, C Cost](r *Result[S, C], goals []S, project func(S) P) (map[P]struct{}, C, error) {
	if r.Prev == nil {
		return nil, r.inf, ErrNoPredecessors
	}
	_, best, err := r.Nearest(goals...)
	if err != nil {
		return nil, r.inf, err
	}

	var seeds []S
	for _, g := range goals {
		if d, err := r.Distance(g); err == nil && d == best {
			seeds = append(seeds, g)
		}
	}

	return walkBack(r.Prev, seeds, project), best, nil
}

// walkBack runs the iterative backward traversal from seeds over prev.
func walkBack[S comparable, P comparable, C Cost](prev PredecessorMap[S, C], seeds []S, project func(S) P) map[P]struct{} {
	seen := make(map[S]bool, len(seeds))
	stack := make([]S, 0, len(seeds))
	for _, s := range seeds {
		if !seen[s] {
			seen[s] = true
			stack = append(stack, s)
		}
	}

	tiles := make(map[P]struct{})
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		tiles[project(s)] = struct{}{}

		for _, p := range prev[s] {
			if seen[p.State] {
				continue
			}
			seen[p.State] = true
			stack = append(stack, p.State)
		}
	}

	return tiles
}

// Identity is a projection that keeps the state itself as the tile.
func Identity[S comparable](s S) S { return s }
