package grid

// Reachable returns every passable cell reachable from start through
// orthogonal moves, in breadth-first discovery order. The start cell is
// always first, even when it is itself a wall; an out-of-bounds start
// yields nil.
//
// Time:   O(R·C).
// Memory: O(R·C) for the seen flags and output.
func (g *Grid) Reachable(start Position) []Position {
	if !g.InBounds(start) {
		return nil
	}
	seen := make([]bool, len(g.cells))
	seen[g.Index(start)] = true
	queue := []Position{start}
	var nbrs []Position

	for qi := 0; qi < len(queue); qi++ {
		nbrs = g.AppendNeighbors(nbrs[:0], queue[qi])
		for _, q := range nbrs {
			if i := g.Index(q); !seen[i] {
				seen[i] = true
				queue = append(queue, q)
			}
		}
	}

	return queue
}

// Components partitions all passable cells into orthogonally connected
// regions. Regions are listed in row-major order of their first cell and
// each region is in breadth-first order from that cell.
//
// Time:   O(R·C).
// Memory: O(R·C).
func (g *Grid) Components() [][]Position {
	seen := make([]bool, len(g.cells))
	var comps [][]Position
	var nbrs []Position

	for i, cell := range g.cells {
		if cell.Wall || seen[i] {
			continue
		}
		seen[i] = true
		comp := []Position{g.PositionOf(i)}
		for qi := 0; qi < len(comp); qi++ {
			nbrs = g.AppendNeighbors(nbrs[:0], comp[qi])
			for _, q := range nbrs {
				if j := g.Index(q); !seen[j] {
					seen[j] = true
					comp = append(comp, q)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// OpenEdges counts unordered pairs of orthogonally adjacent passable cells.
// A set of open cells forms a tree exactly when it is a single component
// and OpenEdges equals the open cell count minus one.
func (g *Grid) OpenEdges() int {
	edges := 0
	for i, cell := range g.cells {
		if cell.Wall {
			continue
		}
		p := g.PositionOf(i)
		if g.Passable(Position{Row: p.Row, Col: p.Col + 1}) {
			edges++
		}
		if g.Passable(Position{Row: p.Row + 1, Col: p.Col}) {
			edges++
		}
	}

	return edges
}
