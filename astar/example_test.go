// File: astar/example_test.go
package astar_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/eightpuzzle/astar"
	"github.com/katalvlaran/eightpuzzle/board"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Solve
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve demonstrates an end-to-end solve of a two-move instance.
// Scenario:
//
//   - The blank starts in the bottom-left corner, two slides from the
//     conventional goal; the optimal route is unique.
//
// Complexity: O(S·b log S) worst case; trivial here.
func ExampleSolve() {
	initial := board.MustNew([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{0, 7, 8},
	})

	res, err := astar.Solve(initial, board.Solved())
	if err != nil {
		log.Fatal(err)
	}
	if !res.Found {
		fmt.Println("no solution")

		return
	}

	fmt.Printf("moves: %d\n", res.Moves)
	for i, step := range res.Steps {
		fmt.Printf("step %d:\n%s\n", i+1, step)
	}

	// Output:
	// moves: 2
	// step 1:
	// 1 2 3
	// 4 5 6
	// _ 7 8
	// step 2:
	// 1 2 3
	// 4 5 6
	// 7 _ 8
	// step 3:
	// 1 2 3
	// 4 5 6
	// 7 8 _
}

////////////////////////////////////////////////////////////////////////////////
// Example: ManhattanDistance
////////////////////////////////////////////////////////////////////////////////

// ExampleManhattanDistance scores a grid against an explicit goal.
func ExampleManhattanDistance() {
	g := board.MustNew([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{0, 7, 8},
	})

	fmt.Println(astar.ManhattanDistance(g, board.Solved()))

	// Output:
	// 2
}
