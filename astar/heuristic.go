package astar

import "github.com/katalvlaran/eightpuzzle/board"

// tilePositions maps every tile value to its (row, col) in the goal grid.
// Index by value: pos[v][0] = row, pos[v][1] = col.
type tilePositions [board.Tiles][2]int

// positionsOf scans goal once and records where each value sits.
// Precondition: goal is a valid configuration.
// Complexity: O(1) (nine cells).
func positionsOf(goal board.Grid) tilePositions {
	var pos tilePositions
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			pos[goal[r][c]] = [2]int{r, c}
		}
	}

	return pos
}

// distanceTo sums, over all non-blank cells of g, the L1 distance between the
// cell's current position and its goal position given by pos.
// The blank contributes 0.
func (pos tilePositions) distanceTo(g board.Grid) int {
	d := 0
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			v := g[r][c]
			if v == board.Blank {
				continue
			}
			d += abs(pos[v][0]-r) + abs(pos[v][1]-c)
		}
	}

	return d
}

// ManhattanDistance returns the sum over all non-blank tiles of the L1 grid
// distance between the tile's position in g and its position in goal.
// The goal grid is an explicit parameter; nothing is captured globally.
//
// The result is a non-negative lower bound on the true remaining move count:
// each move shifts exactly one tile by one cell, so the heuristic is both
// admissible and consistent, which is what lets Solve guarantee optimal paths.
// ManhattanDistance(goal, goal) == 0 for any valid goal.
//
// Precondition: both grids are valid configurations over the same value set.
// Complexity: O(1) (two nine-cell scans).
func ManhattanDistance(g, goal board.Grid) int {
	return positionsOf(goal).distanceTo(g)
}

// abs returns |x| for ints.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
