// Package board models the 8-puzzle playing field: a 3×3 grid holding the
// tiles 1..8 and a single blank. It supports:
//
//   - Validated construction from caller-supplied rows
//   - Locating the blank cell
//   - Deterministic neighbor generation (the legal single moves)
//   - Compact textual rendering
//
// A Grid is an array value, so every operation that "produces" a grid hands
// back an independent copy — callers can store grids in maps and sets and
// compare them with == without any aliasing concerns.
package board

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty 2D slice of rows.
// It copies the input into the array value, so later mutation of rows does
// not affect the returned Grid.
// Returns ErrBadShape if rows is not exactly 3×3,
// ErrInvalidGrid if the values are not a permutation of 0..8.
// Complexity: O(1) (nine cells).
func New(rows [][]int) (Grid, error) {
	var g Grid
	if len(rows) != Size {
		return Grid{}, fmt.Errorf("%w: got %d rows", ErrBadShape, len(rows))
	}
	for r := 0; r < Size; r++ {
		if len(rows[r]) != Size {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells", ErrBadShape, r, len(rows[r]))
		}
		for c := 0; c < Size; c++ {
			g[r][c] = rows[r][c]
		}
	}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}

	return g, nil
}

// MustNew is like New but panics on invalid input.
// Intended for fixtures and examples where the grid is a literal.
func MustNew(rows [][]int) Grid {
	g, err := New(rows)
	if err != nil {
		panic(err)
	}

	return g
}

// Solved returns the conventional goal configuration:
//
//	1 2 3
//	4 5 6
//	7 8 _
//
// Provided as a convenience only — every solver entry point takes the goal
// grid as an explicit parameter.
func Solved() Grid {
	var g Grid
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			g[r][c] = (r*Size + c + 1) % Tiles
		}
	}

	return g
}

// Validate reports whether g is a well-formed puzzle configuration:
// each of the values 0..8 present exactly once.
// Returns ErrInvalidGrid (with cell context) on the first violation.
// Complexity: O(1).
func (g Grid) Validate() error {
	var seen [Tiles]bool
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := g[r][c]
			if v < 0 || v >= Tiles {
				return fmt.Errorf("%w: value %d at (%d,%d) out of range", ErrInvalidGrid, v, r, c)
			}
			if seen[v] {
				return fmt.Errorf("%w: value %d at (%d,%d) duplicated", ErrInvalidGrid, v, r, c)
			}
			seen[v] = true
		}
	}

	return nil
}

// Blank locates the unique blank cell and returns its (row, col).
// Returns ErrInvalidGrid if g contains no blank at all.
// Complexity: O(1).
func (g Grid) Blank() (int, int, error) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] == Blank {
				return r, c, nil
			}
		}
	}

	return 0, 0, fmt.Errorf("%w: no blank cell", ErrInvalidGrid)
}

// InBounds reports whether (row, col) lies on the 3×3 board.
// Complexity: O(1).
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Neighbors produces every grid reachable from g by one legal move, i.e. by
// swapping the blank with an orthogonally adjacent tile. Moves are tried in
// the fixed order down, up, right, left, so the result order is deterministic.
// A corner blank yields 2 neighbors, an edge blank 3, the center blank 4.
//
// Precondition: g is a valid configuration (Validate() == nil); a grid with
// no blank yields nil. The receiver is never mutated — each neighbor is an
// independent copy with exactly one swap applied.
// Complexity: O(1) time and memory (≤ 4 grids of 9 cells).
func (g Grid) Neighbors() []Grid {
	row, col, err := g.Blank()
	if err != nil {
		return nil
	}

	out := make([]Grid, 0, len(moves))
	for _, m := range moves {
		nr, nc := row+m.DRow, col+m.DCol
		if !InBounds(nr, nc) {
			continue
		}
		// Array assignment copies all nine cells; swap on the copy only.
		next := g
		next[row][col], next[nr][nc] = next[nr][nc], next[row][col]
		out = append(out, next)
	}

	return out
}

// String renders g as three space-separated rows joined by newlines,
// with the blank drawn as "_":
//
//	2 1 7
//	8 _ 6
//	3 4 5
func (g Grid) String() string {
	var b strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < Size; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			if g[r][c] == Blank {
				b.WriteByte('_')
			} else {
				fmt.Fprintf(&b, "%d", g[r][c])
			}
		}
	}

	return b.String()
}
