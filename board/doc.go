// Package board models one 8-puzzle configuration as an immutable 3×3 Grid
// and generates the legal single moves between configurations.
//
// What:
//
//   - Grid is a comparable [3][3]int array value: tiles 1..8 plus one Blank (0).
//   - New/MustNew validate caller input (shape + permutation) at the boundary.
//   - Blank locates the empty cell; Neighbors yields every one-move successor.
//   - String renders a grid for terminal output, drawing the blank as "_".
//
// Why:
//
//   - Search frontiers and explored sets store grids by value: Grid is a map
//     key and compares with ==, no hashing or deep-equal helpers required.
//   - Array value semantics make every produced neighbor an independent copy —
//     there is no way to alias a stored grid back to its source.
//
// Determinism:
//
//   - Neighbors tries moves in the fixed order down, up, right, left, so the
//     successor order (2 for a corner blank, 3 for an edge, 4 for the center)
//     is identical across runs.
//
// Complexity:
//
//   - All operations touch at most nine cells: O(1) time and memory.
//
// Errors:
//
//   - ErrBadShape: input rows are not exactly 3×3.
//   - ErrInvalidGrid: values are not a permutation of 0..8, or no blank found.
//
// See: astar for the solver that consumes these primitives.
package board
