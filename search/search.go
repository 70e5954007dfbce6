package search

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/grid"
)

// noPred marks a cell without predecessor: the start, or an undiscovered cell.
const noPred = -1

// Search runs strategy s from start to goal on g.
// It validates input once and dispatches to the strategy's walker.
// Returns ErrNilGrid, ErrOutOfBounds, ErrUnknownStrategy or
// ErrBlockedEndpoint (strict mode only).
func Search(g *grid.Grid, start, goal grid.Position, s Strategy, opts ...Option) (*Result, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	r, err := newRun(g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	switch s {
	case BreadthFirst:
		r.bfs()
	case DepthFirst:
		r.dfs()
	case Dijkstra:
		r.dijkstra()
	case AStar:
		r.astar()
	case Bidirectional:
		r.bidirectional()
	}

	return r.res, nil
}

// BFS runs breadth-first search. See Search for errors.
func BFS(g *grid.Grid, start, goal grid.Position, opts ...Option) (*Result, error) {
	return Search(g, start, goal, BreadthFirst, opts...)
}

// DFS runs depth-first search. See Search for errors.
func DFS(g *grid.Grid, start, goal grid.Position, opts ...Option) (*Result, error) {
	return Search(g, start, goal, DepthFirst, opts...)
}

// ShortestPath runs Dijkstra's algorithm. See Search for errors.
func ShortestPath(g *grid.Grid, start, goal grid.Position, opts ...Option) (*Result, error) {
	return Search(g, start, goal, Dijkstra, opts...)
}

// AStarPath runs A* with the Manhattan heuristic. See Search for errors.
func AStarPath(g *grid.Grid, start, goal grid.Position, opts ...Option) (*Result, error) {
	return Search(g, start, goal, AStar, opts...)
}

// BidirectionalBFS runs the alternating two-sided breadth-first search.
// See Search for errors.
func BidirectionalBFS(g *grid.Grid, start, goal grid.Position, opts ...Option) (*Result, error) {
	return Search(g, start, goal, Bidirectional, opts...)
}

// run encapsulates the mutable state of a single search invocation.
type run struct {
	g      *grid.Grid
	start  grid.Position
	goal   grid.Position
	opts   Options
	res    *Result
	pred   []int           // row-major index → predecessor index or noPred
	nbrs   []grid.Position // scratch buffer for neighbor enumeration
	startI int
	goalI  int
}

// newRun validates inputs and allocates per-call state.
func newRun(g *grid.Grid, start, goal grid.Position, opts []Option) (*run, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s on %dx%d grid", ErrOutOfBounds, start, g.Rows(), g.Cols())
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %s on %dx%d grid", ErrOutOfBounds, goal, g.Rows(), g.Cols())
	}
	if o.StrictEndpoints && (g.IsWall(start) || g.IsWall(goal)) {
		return nil, fmt.Errorf("%w: start %s, goal %s", ErrBlockedEndpoint, start, goal)
	}

	pred := make([]int, g.Size())
	for i := range pred {
		pred[i] = noPred
	}

	return &run{
		g:      g,
		start:  start,
		goal:   goal,
		opts:   o,
		res:    &Result{Visited: make([]Visit, 0, 64)},
		pred:   pred,
		nbrs:   make([]grid.Position, 0, 4),
		startI: g.Index(start),
		goalI:  g.Index(goal),
	}, nil
}

// visit appends a trace entry and fires OnVisit.
func (r *run) visit(p grid.Position, side Side) {
	v := Visit{Pos: p, Side: side}
	r.res.Visited = append(r.res.Visited, v)
	r.opts.OnVisit(v)
}

// neighbors refreshes the scratch buffer with the passable neighbors of p.
func (r *run) neighbors(p grid.Position) []grid.Position {
	r.nbrs = r.g.AppendNeighbors(r.nbrs[:0], p)

	return r.nbrs
}
