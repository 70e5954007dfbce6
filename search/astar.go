package search

import (
	"math"

	"github.com/katalvlaran/pathgrid/grid"
)

// astar expands cells in order of f = g + h, where g is the best known
// entry cost and h the Manhattan distance to the goal. No closed set is
// kept: every popped entry is expanded, and relaxation starts from the
// cell's current best g rather than the cost stored in the entry.
// The popped cell is recorded before the goal test, so the goal is the
// last trace entry when it is reached.
func (r *run) astar() {
	n := r.g.Size()
	gScore := make([]int, n)
	for i := range gScore {
		gScore[i] = math.MaxInt
	}

	pq := newFrontier(n)
	gScore[r.startI] = 0
	pq.push(r.startI, 0, 0)

	for !pq.empty() {
		item := pq.pop()
		p := r.g.PositionOf(item.idx)
		r.visit(p, SideNone)

		if item.idx == r.goalI {
			r.res.Path = r.reconstruct(item.idx)
			return
		}

		base := gScore[item.idx]
		for _, nb := range r.neighbors(p) {
			ni := r.g.Index(nb)
			tentative := base + r.g.Weight(nb)
			if tentative < gScore[ni] {
				gScore[ni] = tentative
				r.pred[ni] = item.idx
				pq.push(ni, tentative, tentative+r.heuristic(nb))
			}
		}
	}
}

// heuristic is the Manhattan distance from p to the goal in unit steps.
func (r *run) heuristic(p grid.Position) int {
	return p.Manhattan(r.goal)
}
