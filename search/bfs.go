package search

// bfs expands cells in FIFO order. A cell is marked when enqueued, so no
// cell enters the queue twice and the trace is duplicate-free. The walk
// stops as soon as the goal is dequeued; the goal is the last trace entry.
func (r *run) bfs() {
	seen := make([]bool, r.g.Size())
	queue := make([]int, 0, r.g.Size())

	seen[r.startI] = true
	queue = append(queue, r.startI)

	for head := 0; head < len(queue); head++ {
		idx := queue[head]
		p := r.g.PositionOf(idx)
		r.visit(p, SideNone)

		if idx == r.goalI {
			r.res.Path = r.reconstruct(idx)
			return
		}

		for _, n := range r.neighbors(p) {
			ni := r.g.Index(n)
			if seen[ni] {
				continue
			}
			seen[ni] = true
			r.pred[ni] = idx
			queue = append(queue, ni)
		}
	}
}
