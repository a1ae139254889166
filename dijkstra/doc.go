// Package dijkstra provides a generic uniform-cost search engine for implicit,
// weighted state graphs with non-negative integer edge costs.
//
// Overview:
//
//   - ShortestDistances explores states in increasing order of best-known cost,
//     using a min-heap with lazy decrease-key, and returns a Result holding the
//     distance table, the finalized set and (optionally) a predecessor multimap.
//   - The graph is described by a SuccessorFunc, so grid mazes, mazes with facing
//     directions or any other bounded state space plug in without an adapter type.
//   - The predecessor multimap keeps every parent that achieves a state's minimum
//     cost, so AllMinimumPathTiles can enumerate all tiles on any optimal path.
//
// When to use:
//
//   - Grid navigation with per-move costs (turning, stepping).
//   - Distance fields from a single origin (run to exhaustion).
//   - Repeated "is the exit still reachable" checks on a changing obstacle set.
//
// Key features:
//
//   - Functional options: WithPredecessors, WithDone, WithTargets, WithMaxCost,
//     WithInfinity, WithStateCheck, WithObserver.
//   - Ties never replace predecessors; strict improvements always do.
//   - Stats (finalized, pushed, improved, tied, stale) for every run.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Error handling:
//
//   - ErrNoPath (*NoPathError): a goal was requested that was never finalized. Callers
//     never receive a silent 0 or infinity for an unreachable goal.
//   - ErrInvalidState (*InvalidStateError): WithStateCheck rejected a successor, which
//     points to a broken successor function rather than to the input.
//   - ErrNegativeWeight, ErrCostOverflow: invalid edge costs.
//   - ErrNoPredecessors: path data requested without WithPredecessors.
//
// Concurrency:
//
//   - Every call owns its distance table, heap and predecessor map. Independent
//     searches can run in parallel goroutines without synchronization; the
//     SuccessorFunc must not mutate shared state.
//
// API reference:
//
//	func ShortestDistances[S comparable, C Cost](
//	    start S,
//	    successors SuccessorFunc[S, C],
//	    opts ...Option[S, C],
//	) (*Result[S, C], error)
//
//	func AllMinimumPathTiles[S, P comparable, C Cost](
//	    r *Result[S, C],
//	    goal S,
//	    project func(S) P,
//	) (map[P]struct{}, error)
//
// Example:
//
//	res, err := dijkstra.ShortestDistances("A", succ,
//	    dijkstra.WithPredecessors[string, int]())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, err := res.Distance("D")
//	tiles, err := dijkstra.AllMinimumPathTiles(res, "D", dijkstra.Identity[string])
package dijkstra
