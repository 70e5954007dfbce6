package search

import "container/heap"

// nodeItem is one frontier entry: a cell, the cost it was reached with,
// its ordering key and the insertion sequence that breaks key ties.
type nodeItem struct {
	idx  int    // row-major cell index
	cost int    // accumulated entry cost at push time
	prio int    // ordering key: cost (Dijkstra) or cost + heuristic (AStar)
	seq  uint64 // insertion counter; earlier wins on equal prio
}

// nodePQ is a min-heap of nodeItem ordered by (prio, seq).
// Decrease-key is lazy: a better cost pushes a new entry and the old one
// stays in the heap until popped.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by prio, then by insertion sequence.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].prio != pq[j].prio {
		return pq[i].prio < pq[j].prio
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop is called by heap.Pop and returns the last element.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// frontier wraps nodePQ and stamps every push with the next sequence number.
type frontier struct {
	pq  nodePQ
	seq uint64
}

func newFrontier(capacity int) *frontier {
	f := &frontier{pq: make(nodePQ, 0, capacity)}
	heap.Init(&f.pq)

	return f
}

func (f *frontier) push(idx, cost, prio int) {
	heap.Push(&f.pq, nodeItem{idx: idx, cost: cost, prio: prio, seq: f.seq})
	f.seq++
}

func (f *frontier) pop() nodeItem {
	return heap.Pop(&f.pq).(nodeItem)
}

func (f *frontier) empty() bool {
	return f.pq.Len() == 0
}
