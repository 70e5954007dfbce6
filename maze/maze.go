package maze

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathgrid/grid"
)

// Generate builds a random perfect maze of rows×cols cells.
// It returns (nil, false) when the grid is too small to hold 3×3 passage
// cells. See the package documentation for the layout and algorithm.
func Generate(rows, cols int, opts ...Option) (*Result, bool) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if passages(rows) < MinPassages || passages(cols) < MinPassages {
		return nil, false
	}

	b := &builder{
		rows: rows,
		cols: cols,
		src:  o.Source,
		open: mapset.New[grid.Position](),
	}
	b.lattice()
	b.carve()

	res := &Result{
		Rows:     rows,
		Cols:     cols,
		Animated: o.Animated,
		Walls:    b.walls(),
		Weights:  make(map[grid.Position]int),
		Start:    b.start,
		Goal:     b.goal,
		Steps:    b.steps,
	}
	if !o.Animated {
		b.terrain(res.Weights)
	}

	return res, true
}

// passages counts odd coordinates in [1, n−2].
func passages(n int) int {
	if n < 3 {
		return 0
	}

	return (n - 1) / 2
}

// builder holds the state of one Generate call.
type builder struct {
	rows, cols int
	src        Source
	cells      []grid.Position // passage cells, row-major
	open       mapset.Set[grid.Position]
	steps      []Step
	start      grid.Position
	goal       grid.Position
}

// candidate is a wall cell between two passage cells.
type candidate struct {
	wall grid.Position
	a, b grid.Position
}

// lattice runs the randomized Kruskal construction over passage cells.
func (b *builder) lattice() {
	lastR, lastC := 2*passages(b.rows)-1, 2*passages(b.cols)-1

	// 1) passage cells and candidate walls, right then below
	var cands []candidate
	for r := 1; r <= lastR; r += 2 {
		for c := 1; c <= lastC; c += 2 {
			p := grid.Pos(r, c)
			b.cells = append(b.cells, p)
			b.open.Put(p)
			if c+2 <= lastC {
				cands = append(cands, candidate{wall: grid.Pos(r, c+1), a: p, b: grid.Pos(r, c+2)})
			}
			if r+2 <= lastR {
				cands = append(cands, candidate{wall: grid.Pos(r+1, c), a: p, b: grid.Pos(r+2, c)})
			}
		}
	}

	// 2) Fisher–Yates
	for i := len(cands) - 1; i > 0; i-- {
		j := b.src.Intn(i + 1)
		cands[i], cands[j] = cands[j], cands[i]
	}

	// 3) accept edges joining distinct sets
	ds := newDisjointSet(b.cells)
	b.steps = make([]Step, 0, len(cands))
	for _, cd := range cands {
		joined := ds.union(cd.a, cd.b)
		if joined {
			b.open.Put(cd.wall)
		}
		b.steps = append(b.steps, Step{Pos: cd.wall, Open: joined})
	}
}

// carve opens start and goal. A goal off the lattice hangs from the
// nearest passage cell: straight below or right of it, or through one
// connector when it sits diagonally.
func (b *builder) carve() {
	lastR, lastC := 2*passages(b.rows)-1, 2*passages(b.cols)-1
	b.start = grid.Pos(1, 1)
	b.goal = grid.Pos(b.rows-2, b.cols-2)

	b.open.Put(b.start)
	if b.goal.Row != lastR && b.goal.Col != lastC {
		b.open.Put(grid.Pos(lastR, b.goal.Col))
	}
	b.open.Put(b.goal)
}

// walls returns every cell that is not open.
func (b *builder) walls() mapset.Set[grid.Position] {
	w := mapset.New[grid.Position]()
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if p := grid.Pos(r, c); !b.open.Has(p) {
				w.Put(p)
			}
		}
	}

	return w
}

// terrain draws weights for passage cells other than start and goal.
func (b *builder) terrain(dst map[grid.Position]int) {
	for _, p := range b.cells {
		if p == b.start || p == b.goal {
			continue
		}
		if b.src.Float64() < WeightProbability {
			dst[p] = WeightPalette[b.src.Intn(len(WeightPalette))]
		}
	}
}

// Grid materializes the maze as a grid.Grid with walls and weights set.
func (m *Result) Grid() *grid.Grid {
	g, err := grid.New(m.Rows, m.Cols)
	if err != nil {
		return nil
	}
	m.Walls.Each(func(p grid.Position) {
		_ = g.SetWall(p, true)
	})
	for p, w := range m.Weights {
		_ = g.SetWeight(p, w)
	}

	return g
}

// IsWall reports whether p is solid. Out-of-range cells are solid.
func (m *Result) IsWall(p grid.Position) bool {
	if p.Row < 0 || p.Row >= m.Rows || p.Col < 0 || p.Col >= m.Cols {
		return true
	}

	return m.Walls.Has(p)
}

// WallList returns the solid cells in row-major order.
func (m *Result) WallList() []grid.Position {
	out := make([]grid.Position, 0, m.Walls.Size())
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			if p := grid.Pos(r, c); m.Walls.Has(p) {
				out = append(out, p)
			}
		}
	}

	return out
}
