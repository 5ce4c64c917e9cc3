// Package astar provides an exact, deterministic A* solver for the 8-puzzle,
// returning a provably minimal move sequence between two board configurations.
//
// Overview:
//
//   - Solve searches from an initial board.Grid to an explicit goal board.Grid,
//     expanding states in increasing f = g + h order, where g counts moves made
//     and h is the Manhattan-distance estimate of moves remaining.
//   - The heuristic is admissible (never overestimates) and consistent
//     (one move changes it by at most one), so the first time the goal is
//     popped from the frontier its path is optimal.
//   - "No solution" is a first-class outcome (Result.Found == false, nil
//     error), reached by exhausting the finite reachable state space — at most
//     9!/2 = 181440 configurations share the initial grid's parity class.
//
// Determinism:
//
//   - board.Neighbors generates successors in the fixed order down, up,
//     right, left; the frontier breaks f ties FIFO by insertion sequence.
//     Repeated runs on the same instance therefore expand identical node
//     orders and return the identical (one of possibly several) optimal path.
//
// Performance and complexity (S ≤ 181440 reachable states, b ≤ 4 moves):
//
//   - Time:  O(S·b log S)
//   - Each state is finalized and expanded at most once (explored set).
//   - Lazy duplicate frontier entries cost a pop + map lookup each.
//   - Space: O(S) for the explored set, frontier and live parent chains.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidInitial / ErrInvalidGoal:
//     The corresponding grid is not a permutation of 0..8; the message carries
//     the board-level detail (which cell, which value).
//     Validation happens once, on entry — the loop assumes valid grids.
//   - ErrExpansionBudget:
//     The WithMaxExpansions cap was reached before termination.
//   - ErrBadMaxExpansions:
//     Raised (via panic) if WithMaxExpansions is given a negative value.
//   - Context cancellation surfaces as a wrapped ctx.Err().
//
// API reference:
//
//	func ManhattanDistance(g, goal board.Grid) int
//	func Solve(initial, goal board.Grid, opts ...Option) (Result, error)
//
//	  - initial: starting configuration (validated on entry).
//	  - goal:    target configuration, always an explicit parameter — the
//	             solver holds no package-level goal state.
//	  - opts:    zero or more functional options:
//	      • WithContext(ctx):       cancellation between expansions.
//	      • WithMaxExpansions(n):   abort after n expansions (0 = unlimited).
//	  - Result:  Steps (initial..goal inclusive), Moves (= len(Steps)-1,
//	             optimal), Expanded (nodes finalized), Found.
//
// Thread safety:
//
//   - Solve owns all of its state; concurrent Solve calls are independent.
//     There is no internal parallelism.
//
// See also:
//
//   - board.Grid: state representation, validation, neighbor generation.
//   - cmd/eightpuzzle: a renderer that prints each step of the returned path.
package astar
