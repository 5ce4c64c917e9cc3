// Package board defines the core Grid type and sentinel errors
// for the board subpackage of github.com/katalvlaran/eightpuzzle.
package board

import "errors"

// Board dimensions and tile constants.
const (
	// Size is the side length of the board; the 8-puzzle is fixed at 3×3.
	Size = 3

	// Tiles is the total number of cells (and distinct tile values, 0..8).
	Tiles = Size * Size

	// Blank is the value of the empty cell; it is the only cell that "moves".
	Blank = 0
)

// Sentinel errors for board construction and inspection.
var (
	// ErrBadShape indicates the input 2D slice is not exactly Size×Size.
	ErrBadShape = errors.New("board: grid must be exactly 3 rows of 3 cells")

	// ErrInvalidGrid indicates the grid is not a permutation of 0..8
	// (a value is out of range, duplicated or missing).
	ErrInvalidGrid = errors.New("board: grid must contain each of 0..8 exactly once")
)

// Grid is one 3×3 puzzle configuration, indexed [row][col].
// Exactly one cell holds Blank; the remaining cells hold 1..8, each once.
//
// Grid is a plain array value: assignments, parameters and returns all copy
// the full nine cells, so a Grid is immutable from the caller's point of view
// and two Grids never alias. Being comparable, Grid works directly as a map
// key and with ==, which is how the search packages deduplicate states.
type Grid [Size][Size]int

// Move is one axis-aligned displacement of the blank cell.
type Move struct {
	DRow, DCol int
}

// moves lists the four blank displacements in the fixed generation order:
// down, up, right, left. The order is part of the package contract — it keeps
// Neighbors deterministic across runs.
var moves = [4]Move{
	{DRow: 1, DCol: 0},  // down
	{DRow: -1, DCol: 0}, // up
	{DRow: 0, DCol: 1},  // right
	{DRow: 0, DCol: -1}, // left
}

// Moves returns the four candidate blank displacements in generation order.
func Moves() [4]Move { return moves }
