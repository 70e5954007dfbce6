// Package maze builds random perfect mazes on a grid with randomized
// Kruskal's algorithm over a disjoint-set forest.
//
// Layout
//
//	Passage cells sit at odd coordinates inside a one-cell border:
//	rows 1, 3, 5, … ≤ rows−2 and cols 1, 3, 5, … ≤ cols−2. Between two
//	horizontally or vertically adjacent passage cells lies one candidate
//	wall cell. Every other cell (border, pillars at even/even coordinates,
//	filler rows or columns when a dimension is even) is solid.
//
//	  #########
//	  #S#.....#      S = (1,1), G = (rows−2, cols−2)
//	  #.#.###.#      the open cells form a tree: exactly one
//	  #...#...#      simple route joins any two of them
//	  #####.#.#
//	  #.....#G#
//	  #########
//
// Algorithm
//
//  1. Every passage cell starts as its own set.
//  2. Candidate walls are listed right of and below each passage cell.
//  3. The candidates are shuffled with Fisher–Yates using the injected
//     Source. This is the only random step of the construction.
//  4. In shuffled order a candidate whose two passage cells lie in
//     different sets is opened and the sets are merged; otherwise it stays
//     solid. Each decision is recorded as a Step for staged replay.
//  5. Start (1,1) and goal (rows−2, cols−2) are carved. A goal off the
//     passage lattice is attached to the nearest passage cell as a leaf.
//  6. Instant mode only: passage cells other than start and goal receive
//     a weight from WeightPalette with probability WeightProbability.
//
// Boundaries
//
//	Generate is a silent no-op, returning (nil, false), when the interior
//	holds fewer than 3×3 passage cells, that is when rows < 7 or cols < 7.
//
// Determinism
//
//	Identical size, mode and Source produce identical mazes:
//
//	  m1, _ := maze.Generate(21, 31, maze.WithSeed(7))
//	  m2, _ := maze.Generate(21, 31, maze.WithSeed(7))
//	  // m1 and m2 have the same walls, weights and steps
//
// Complexity (P = passage cells)
//
//   - Time:   O(P log P) for the shuffle and near-linear union-find.
//   - Memory: O(rows × cols).
package maze
