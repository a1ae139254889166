// Package gridpath is a generic weighted state-graph search engine and a set
// of grid puzzles built on it.
//
// The engine lives in dijkstra: callers supply a start state and a successor
// function, and get back every reachable state's minimum cost plus, on request,
// the full predecessor multimap from which all minimum-cost paths can be
// recovered.
//
//	dijkstra/          — ShortestDistances, AllMinimumPathTiles, BestTiles, Result
//	gridgraph/         — byte grids as graphs: Point, Direction, Grid.Successors
//	puzzles/maze/      — turning costs 1000, stepping costs 1; best score and tiles
//	puzzles/memspace/  — falling bytes; shortest walk and first blocking byte
//	puzzles/racetrack/ — wall-phasing cheats counted from a distance field
//	metrics/           — Prometheus series fed from per-search Stats
//	cmd/gridpath/      — command line front end
//
// Quick example, a diamond with two equal routes:
//
//	    A──1──B──1──D
//	    └──1──C──1──┘
//
//	res, _ := dijkstra.ShortestDistances("A", succ, dijkstra.WithPredecessors[string, int]())
//	tiles, _ := dijkstra.AllMinimumPathTiles(res, "D", dijkstra.Identity[string])
//	// tiles = {A, B, C, D}
//
// Searches are single-threaded and keep no package-level state, so independent
// searches can run in parallel goroutines.
package gridpath
