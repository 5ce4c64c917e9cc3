// Package eightpuzzle is your in-memory toolkit for modeling and optimally
// solving the classic 8-puzzle — a 3×3 sliding-tile board where eight numbered
// tiles and one blank shuffle toward a goal arrangement.
//
// 🚀 What is eightpuzzle?
//
//	A small, focused library that brings together:
//		• Board primitives: validated, immutable 3×3 grids with deterministic moves
//		• Heuristics: admissible Manhattan-distance scoring against any goal
//		• Search: A* with a min-heap frontier, explored-set deduplication
//		  and exact path reconstruction
//		• Rendering: a thin CLI that prints each step, plus an interactive
//		  terminal viewer to walk the solution move by move
//
// ✨ Why choose eightpuzzle?
//
//   - Optimal by construction – admissible + consistent heuristic ⇒ shortest paths
//   - Deterministic – fixed move order and FIFO tie-breaking reproduce runs exactly
//   - Explicit goals – the goal grid is a parameter, never hidden module state
//   - Bounded – optional expansion budgets and context cancellation for hard instances
//
// Under the hood, everything is organized under three pieces:
//
//	board/ — Grid type, validation, blank lookup, neighbor generation
//	astar/ — ManhattanDistance + Solve (the A* engine and its options)
//	cmd/eightpuzzle — renderer: numbered text steps or an interactive stepper
//
// Quick ASCII example:
//
//	2 1 7        2 3 4
//	8 _ 6   ⇒    7 _ 1
//	3 4 5        8 5 6
//
//	a start grid and a goal grid; Solve returns every intermediate board.
//
// Dive into board and astar package docs for the full API, complexity notes
// and worked examples.
//
//	go get github.com/katalvlaran/eightpuzzle
package eightpuzzle
