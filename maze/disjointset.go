package maze

import "github.com/katalvlaran/pathgrid/grid"

// disjointSet is a union-find forest over grid positions with path
// compression and union by rank.
type disjointSet struct {
	parent map[grid.Position]grid.Position
	rank   map[grid.Position]int
}

// newDisjointSet makes every cell its own singleton set.
func newDisjointSet(cells []grid.Position) *disjointSet {
	ds := &disjointSet{
		parent: make(map[grid.Position]grid.Position, len(cells)),
		rank:   make(map[grid.Position]int, len(cells)),
	}
	for _, c := range cells {
		ds.parent[c] = c
		ds.rank[c] = 0
	}

	return ds
}

// find returns the representative of p's set. Iterative, with path halving.
func (ds *disjointSet) find(p grid.Position) grid.Position {
	for ds.parent[p] != p {
		ds.parent[p] = ds.parent[ds.parent[p]]
		p = ds.parent[p]
	}

	return p
}

// union merges the sets of a and b and reports whether they were distinct.
func (ds *disjointSet) union(a, b grid.Position) bool {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return false
	}
	// attach the shallower tree under the deeper root
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}

	return true
}
