package search

// bidirectional runs two breadth-first searches, one from each end, and
// alternates exactly one expansion per side per round: start side first.
// Each side marks cells when enqueued. The walk stops when a side pops a
// cell the other side has already marked, and the route is joined through
// that meeting cell. The loop ends when either queue runs dry.
func (r *run) bidirectional() {
	n := r.g.Size()
	goalPred := make([]int, n)
	for i := range goalPred {
		goalPred[i] = noPred
	}
	fromStart := newSide(r.startI, SideStart, r.pred)
	fromGoal := newSide(r.goalI, SideGoal, goalPred)

	for fromStart.more() && fromGoal.more() {
		if meet, ok := r.step(fromStart, fromGoal); ok {
			r.res.Path = r.join(fromStart.pred, fromGoal.pred, meet)
			return
		}
		if !fromGoal.more() {
			break
		}
		if meet, ok := r.step(fromGoal, fromStart); ok {
			r.res.Path = r.join(fromStart.pred, fromGoal.pred, meet)
			return
		}
	}
}

// side is the private state of one frontier in a bidirectional search.
type side struct {
	tag   Side
	seen  []bool
	pred  []int
	queue []int
	head  int
}

// newSide seeds a frontier at origin. pred must be sized to the grid and
// filled with noPred.
func newSide(origin int, tag Side, pred []int) *side {
	s := &side{
		tag:   tag,
		seen:  make([]bool, len(pred)),
		pred:  pred,
		queue: make([]int, 0, len(pred)),
	}
	s.seen[origin] = true
	s.queue = append(s.queue, origin)

	return s
}

func (s *side) more() bool {
	return s.head < len(s.queue)
}

// step pops one cell from s, records it, and reports whether other has
// already marked it. Otherwise the unmarked neighbors are enqueued on s.
func (r *run) step(s, other *side) (int, bool) {
	idx := s.queue[s.head]
	s.head++

	p := r.g.PositionOf(idx)
	r.visit(p, s.tag)
	if other.seen[idx] {
		return idx, true
	}

	for _, nb := range r.neighbors(p) {
		ni := r.g.Index(nb)
		if s.seen[ni] {
			continue
		}
		s.seen[ni] = true
		s.pred[ni] = idx
		s.queue = append(s.queue, ni)
	}

	return 0, false
}
