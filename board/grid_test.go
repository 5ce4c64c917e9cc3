package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eightpuzzle/board"
)

// validRows is the reference starting configuration used across the module.
func validRows() [][]int {
	return [][]int{
		{2, 1, 7},
		{8, 0, 6},
		{3, 4, 5},
	}
}

// TestNew_Valid verifies construction from well-formed rows and that the
// Grid copies the input rather than aliasing it.
func TestNew_Valid(t *testing.T) {
	rows := validRows()
	g, err := board.New(rows)
	require.NoError(t, err)
	assert.Equal(t, 2, g[0][0])
	assert.Equal(t, 0, g[1][1])

	// Mutating the source rows must not reach into the constructed Grid.
	rows[0][0] = 99
	assert.Equal(t, 2, g[0][0], "Grid must be an independent copy of the input")
}

// TestNew_BadShape covers wrong row counts and ragged rows.
func TestNew_BadShape(t *testing.T) {
	_, err := board.New([][]int{{0, 1, 2}, {3, 4, 5}})
	assert.ErrorIs(t, err, board.ErrBadShape, "two rows must be rejected")

	_, err = board.New([][]int{{0, 1, 2}, {3, 4}, {5, 6, 7}})
	assert.ErrorIs(t, err, board.ErrBadShape, "ragged row must be rejected")

	_, err = board.New(nil)
	assert.ErrorIs(t, err, board.ErrBadShape, "nil input must be rejected")
}

// TestNew_InvalidValues covers out-of-range, duplicated and missing values.
func TestNew_InvalidValues(t *testing.T) {
	_, err := board.New([][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 9}})
	assert.ErrorIs(t, err, board.ErrInvalidGrid, "value 9 is out of range")

	_, err = board.New([][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, -1}})
	assert.ErrorIs(t, err, board.ErrInvalidGrid, "negative value is out of range")

	_, err = board.New([][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 7}})
	assert.ErrorIs(t, err, board.ErrInvalidGrid, "duplicate 7 implies a missing 8")
}

// TestMustNew_PanicsOnInvalid pins the fixture-constructor contract.
func TestMustNew_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { board.MustNew([][]int{{1, 2, 3}}) })
	assert.NotPanics(t, func() { board.MustNew(validRows()) })
}

// TestSolved verifies the conventional goal layout and its validity.
func TestSolved(t *testing.T) {
	g := board.Solved()
	require.NoError(t, g.Validate())
	assert.Equal(t, board.Grid{{1, 2, 3}, {4, 5, 6}, {7, 8, 0}}, g)
}

// TestBlank locates the blank in corner, edge and center positions,
// and errors when no blank exists at all.
func TestBlank(t *testing.T) {
	cases := []struct {
		name     string
		g        board.Grid
		row, col int
	}{
		{"center", board.MustNew(validRows()), 1, 1},
		{"corner", board.MustNew([][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}), 0, 0},
		{"edge", board.MustNew([][]int{{1, 0, 2}, {3, 4, 5}, {6, 7, 8}}), 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, c, err := tc.g.Blank()
			require.NoError(t, err)
			assert.Equal(t, tc.row, r)
			assert.Equal(t, tc.col, c)
		})
	}

	// A zero-free grid is invalid; Blank must surface that, not guess.
	noBlank := board.Grid{{1, 2, 3}, {4, 5, 6}, {7, 8, 8}}
	_, _, err := noBlank.Blank()
	assert.ErrorIs(t, err, board.ErrInvalidGrid)
}

// TestNeighbors_Count pins the 2/3/4 successor counts by blank position and
// checks every successor is itself a valid permutation.
func TestNeighbors_Count(t *testing.T) {
	cases := []struct {
		name string
		g    board.Grid
		want int
	}{
		{"corner", board.MustNew([][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}), 2},
		{"edge", board.MustNew([][]int{{1, 0, 2}, {3, 4, 5}, {6, 7, 8}}), 3},
		{"center", board.MustNew([][]int{{1, 2, 3}, {4, 0, 5}, {6, 7, 8}}), 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ns := tc.g.Neighbors()
			require.Len(t, ns, tc.want)
			for _, n := range ns {
				assert.NoError(t, n.Validate(), "every neighbor must be a valid permutation")
				assert.NotEqual(t, tc.g, n, "a move must change the grid")
			}
		})
	}
}

// TestNeighbors_Order pins the fixed generation order down, up, right, left.
func TestNeighbors_Order(t *testing.T) {
	g := board.MustNew([][]int{{1, 2, 3}, {4, 0, 5}, {6, 7, 8}})
	want := []board.Grid{
		{{1, 2, 3}, {4, 7, 5}, {6, 0, 8}}, // down: blank swaps with 7
		{{1, 0, 3}, {4, 2, 5}, {6, 7, 8}}, // up: blank swaps with 2
		{{1, 2, 3}, {4, 5, 0}, {6, 7, 8}}, // right: blank swaps with 5
		{{1, 2, 3}, {0, 4, 5}, {6, 7, 8}}, // left: blank swaps with 4
	}
	assert.Equal(t, want, g.Neighbors())
}

// TestNeighbors_NoMutation double-checks the receiver survives untouched.
func TestNeighbors_NoMutation(t *testing.T) {
	g := board.MustNew(validRows())
	before := g
	_ = g.Neighbors()
	assert.Equal(t, before, g)
}

// TestString pins the textual rendering, including the "_" blank.
func TestString(t *testing.T) {
	g := board.MustNew(validRows())
	assert.Equal(t, "2 1 7\n8 _ 6\n3 4 5", g.String())
}
