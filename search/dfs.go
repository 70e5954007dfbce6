package search

// dfs expands cells in LIFO order and marks them when popped. A cell may
// be pushed several times; later copies are skipped on pop, so the trace
// is still duplicate-free. Neighbors are pushed up, down, left, right and
// therefore expanded right, left, down, up.
//
// The predecessor of a cell is overwritten by every push, so the recorded
// parent is always the cell that pushed the copy that gets expanded.
func (r *run) dfs() {
	done := make([]bool, r.g.Size())
	stack := make([]int, 0, r.g.Size())
	stack = append(stack, r.startI)

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if done[idx] {
			continue
		}
		done[idx] = true

		p := r.g.PositionOf(idx)
		r.visit(p, SideNone)

		if idx == r.goalI {
			r.res.Path = r.reconstruct(idx)
			return
		}

		for _, n := range r.neighbors(p) {
			ni := r.g.Index(n)
			if done[ni] {
				continue
			}
			r.pred[ni] = idx
			stack = append(stack, ni)
		}
	}
}
