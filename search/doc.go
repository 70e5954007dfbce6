// Package search runs five graph-search strategies over a grid.Grid and
// reports, for each, the order in which cells were expanded and the route
// recovered between two cells.
//
// What
//
//   - BreadthFirst:  FIFO queue, ignores weights, fewest-edge route.
//   - DepthFirst:    LIFO stack, ignores weights, exploration only.
//   - Dijkstra:      binary heap on accumulated cost, optimal for weights ≥ 1.
//   - AStar:         binary heap on cost + Manhattan distance.
//   - Bidirectional: two FIFO queues expanded alternately from start and goal.
//
// Every strategy shares one contract:
//
//	res, err := search.Search(g, start, goal, search.Dijkstra)
//	// res.Visited: ordered trace of expansions
//	// res.Path:    start→goal inclusive, or empty when the goal is unreachable
//
// Determinism
//
//	Neighbors are enumerated up, down, left, right. Heap ties are broken by
//	insertion order (earliest first). Identical inputs therefore produce
//	identical traces, on every run and every platform.
//
// Path reconstruction
//
//	Each invocation keeps a private predecessor table indexed by the grid's
//	row-major cell index. A route is rebuilt by following predecessors from
//	the goal (or, for Bidirectional, from the meeting cell in both
//	directions). A reconstructed route whose head is not the start is
//	discarded, so Path is never partial.
//
// Known limitations
//
//   - AStar uses the Manhattan distance in unit steps. The heuristic assumes
//     unit cost and is not scaled by terrain weight; on weighted terrain it
//     is a loose bound and AStar expands nearly as many cells as Dijkstra.
//   - AStar keeps no closed set. A popped entry is always expanded, so a
//     cell may be expanded again after a cheaper cost overwrites its best
//     known cost. The trace may therefore repeat a cell.
//   - Bidirectional stops the moment one side pops a cell already seen by
//     the other side. That is a value-equality meeting test, not a minimal
//     combined-distance test, and the returned route can be longer than the
//     shortest route.
//
// Complexity (N = rows × cols)
//
//   - BreadthFirst, DepthFirst, Bidirectional: O(N) time, O(N) memory.
//   - Dijkstra, AStar: O(N log N) time, O(N) memory.
//
// Errors
//
//   - ErrNilGrid           if the grid pointer is nil.
//   - ErrOutOfBounds       if start or goal lies outside the grid.
//   - ErrUnknownStrategy   if Search receives an undefined Strategy.
//   - ErrBlockedEndpoint   if WithStrictEndpoints is set and start or goal is a wall.
//
// An unreachable goal is not an error: the trace covers every cell
// reachable from the start and Path is empty.
package search
