package search

import "github.com/katalvlaran/pathgrid/grid"

// chain follows pred from idx back to a cell with no predecessor and
// returns the visited indices, idx first. The walk is bounded by the grid
// size; a longer chain cannot come from a valid predecessor table and
// yields nil.
func chain(pred []int, idx int) []int {
	out := make([]int, 0, 16)
	for at := idx; at != noPred; at = pred[at] {
		if len(out) == len(pred) {
			return nil
		}
		out = append(out, at)
	}

	return out
}

// reconstruct rebuilds start→target from the predecessor table.
// The result is nil unless the chain ends at the start.
func (r *run) reconstruct(target int) []grid.Position {
	back := chain(r.pred, target)
	if len(back) == 0 || back[len(back)-1] != r.startI {
		return nil
	}
	path := make([]grid.Position, len(back))
	for i, idx := range back {
		path[len(back)-1-i] = r.g.PositionOf(idx)
	}

	return path
}

// join stitches a bidirectional route: the start-side chain from the
// meeting cell reversed, then the goal-side chain forward without
// repeating the meeting cell. The result is nil unless it runs exactly
// from start to goal.
func (r *run) join(predStart, predGoal []int, meet int) []grid.Position {
	head := chain(predStart, meet)
	tail := chain(predGoal, meet)
	if len(head) == 0 || len(tail) == 0 {
		return nil
	}
	if head[len(head)-1] != r.startI || tail[len(tail)-1] != r.goalI {
		return nil
	}

	path := make([]grid.Position, 0, len(head)+len(tail)-1)
	for i := len(head) - 1; i >= 0; i-- {
		path = append(path, r.g.PositionOf(head[i]))
	}
	for _, idx := range tail[1:] {
		path = append(path, r.g.PositionOf(idx))
	}

	return path
}
