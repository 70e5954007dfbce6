package search

import "math"

// dijkstra settles cells in order of accumulated entry cost. Stale heap
// entries for settled cells are skipped. The walk stops when the goal is
// popped; reconstruction always runs and is guarded on its head, so an
// unreachable goal yields an empty path.
func (r *run) dijkstra() {
	n := r.g.Size()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = math.MaxInt
	}
	settled := make([]bool, n)

	pq := newFrontier(n)
	dist[r.startI] = 0
	pq.push(r.startI, 0, 0)

	for !pq.empty() {
		item := pq.pop()
		if settled[item.idx] {
			continue
		}
		settled[item.idx] = true

		p := r.g.PositionOf(item.idx)
		r.visit(p, SideNone)
		if item.idx == r.goalI {
			break
		}

		for _, nb := range r.neighbors(p) {
			ni := r.g.Index(nb)
			if settled[ni] {
				continue
			}
			nd := item.cost + r.g.Weight(nb)
			if nd < dist[ni] {
				dist[ni] = nd
				r.pred[ni] = item.idx
				pq.push(ni, nd, nd)
			}
		}
	}

	r.res.Path = r.reconstruct(r.goalI)
}
