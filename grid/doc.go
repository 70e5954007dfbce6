// Package grid models the rectangular board that every search and maze
// operation runs on.
//
// What:
//
//   - Position is a comparable (Row, Col) pair, usable directly as a map key.
//   - Cell carries a Wall flag and a Weight (the cost to enter the cell, ≥ 1).
//   - Grid is an immutable-shape rows×cols matrix of cells stored row-major.
//   - Neighbors enumerates passable orthogonal neighbors in the fixed order
//     up, down, left, right. Search traces depend on this order.
//   - Reachable and Components run flood fills over passable cells.
//   - Parse and Format convert between a Grid and a compact ASCII layout.
//
// Layout alphabet:
//
//	#      wall
//	.      open cell, weight 1
//	1..9   open cell with that weight
//	S      start marker (open, weight 1)
//	G      goal marker (open, weight 1)
//
// Complexity:
//
//   - New, FromCells, Parse: O(R×C) time and memory.
//   - Neighbors, InBounds, At: O(1).
//   - Reachable, Components: O(R×C) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing length.
//   - ErrBadWeight: a negative cell weight.
//   - ErrOutOfBounds: a position outside the grid.
//   - ErrLayout: an unknown layout symbol or a repeated S/G marker.
package grid
