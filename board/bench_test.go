package board_test

import (
	"testing"

	"github.com/katalvlaran/eightpuzzle/board"
)

// BenchmarkNeighbors measures successor generation from a center-blank grid,
// the worst case (4 copies per call).
// Complexity: O(1) per op.
func BenchmarkNeighbors(b *testing.B) {
	g := board.MustNew([][]int{{1, 2, 3}, {4, 0, 5}, {6, 7, 8}})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors()
	}
}

// BenchmarkValidate measures boundary validation of a well-formed grid.
func BenchmarkValidate(b *testing.B) {
	g := board.Solved()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Validate()
	}
}
