// Package gridgraph treats a 2D grid of cells as an implicit maze graph for
// the dijkstra search engine.
//
// What:
//
//   - Grid wraps a rectangular [][]byte with a configurable wall byte.
//   - Point and Direction give coordinates and compass headings with
//     rotation helpers, so callers can build richer states (position+facing).
//   - Successors yields unit-cost moves into passable neighbor cells.
//   - CheckState rejects out-of-bounds and wall states at integration boundaries.
//
// Why:
//
//   - Puzzle mazes: shortest routes, routes with turn costs, distance fields.
//   - Obstacle simulations: drop walls one by one and re-check reachability.
//
// Complexity:
//
//   - NewGrid / Parse: O(W×H) time and memory.
//   - InBounds, At, Set, Passable: O(1).
//   - Neighbors, Successors (per call): O(d), d = 4 or 8.
//
// Options:
//
//   - GridOptions.Wall: the impassable cell byte (default '#').
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a position lies outside the grid.
//   - ErrWall: a position is a wall cell.
//   - ErrBadSize: Blank called with non-positive dimensions.
package gridgraph
