package grid

import "fmt"

// New returns a rows×cols grid of open cells with DefaultWeight.
// Returns ErrEmptyGrid if rows or cols is below 1.
// Complexity: O(R×C) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	cells := make([]Cell, rows*cols)
	for i := range cells {
		cells[i].Weight = DefaultWeight
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// FromCells builds a Grid from a non-empty, rectangular matrix.
// The input is deep-copied. A zero weight is normalized to DefaultWeight;
// a negative weight is rejected.
// Returns ErrEmptyGrid, ErrNonRectangular or a wrapped ErrBadWeight.
func FromCells(values [][]Cell) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, 0, rows*cols)}
	for r, row := range values {
		for c, cell := range row {
			switch {
			case cell.Weight < 0:
				return nil, fmt.Errorf("%w: %d at %s", ErrBadWeight, cell.Weight, Pos(r, c))
			case cell.Weight == 0:
				cell.Weight = DefaultWeight
			}
			g.cells = append(g.cells, cell)
		}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Index maps p to its row-major index. p must be in bounds.
func (g *Grid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// PositionOf converts a row-major index back to a Position.
func (g *Grid) PositionOf(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// At returns the cell at p. p must be in bounds.
func (g *Grid) At(p Position) Cell {
	return g.cells[g.Index(p)]
}

// IsWall reports whether p is a wall. p must be in bounds.
func (g *Grid) IsWall(p Position) bool {
	return g.cells[g.Index(p)].Wall
}

// Weight returns the cost to enter p. p must be in bounds.
func (g *Grid) Weight(p Position) int {
	return g.cells[g.Index(p)].Weight
}

// Passable reports whether p is in bounds and not a wall.
func (g *Grid) Passable(p Position) bool {
	return g.InBounds(p) && !g.cells[g.Index(p)].Wall
}

// SetWall paints or clears a wall at p. Painting a wall drops any terrain
// weight, so a wall never carries weight.
func (g *Grid) SetWall(p Position, wall bool) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	i := g.Index(p)
	g.cells[i].Wall = wall
	if wall {
		g.cells[i].Weight = DefaultWeight
	}

	return nil
}

// SetWeight paints terrain of the given weight at p and clears any wall
// there. A weight of 0 resets the cell to DefaultWeight.
func (g *Grid) SetWeight(p Position, weight int) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %d at %s", ErrBadWeight, weight, p)
	}
	if weight == 0 {
		weight = DefaultWeight
	}
	i := g.Index(p)
	g.cells[i].Wall = false
	g.cells[i].Weight = weight

	return nil
}

// AppendNeighbors appends the passable neighbors of p to dst in the fixed
// order up, down, left, right and returns the extended slice.
// Complexity: O(1).
func (g *Grid) AppendNeighbors(dst []Position, p Position) []Position {
	for _, d := range offsets {
		q := Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if g.Passable(q) {
			dst = append(dst, q)
		}
	}

	return dst
}

// Neighbors returns the passable neighbors of p, up, down, left, right.
func (g *Grid) Neighbors(p Position) []Position {
	return g.AppendNeighbors(make([]Position, 0, len(offsets)), p)
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)

	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Cells returns a deep copy of the grid as a [][]Cell matrix.
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.rows)
	for r := range out {
		out[r] = make([]Cell, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}

	return out
}
