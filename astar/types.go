// Package astar defines configuration options, result types and sentinel
// errors for the A* 8-puzzle solver.
package astar

import (
	"context"
	"errors"

	"github.com/katalvlaran/eightpuzzle/board"
)

// Sentinel errors returned by the solver.
var (
	// ErrInvalidInitial indicates the initial grid failed validation.
	ErrInvalidInitial = errors.New("astar: invalid initial grid")

	// ErrInvalidGoal indicates the goal grid failed validation.
	ErrInvalidGoal = errors.New("astar: invalid goal grid")

	// ErrExpansionBudget indicates the search stopped because it reached the
	// configured MaxExpansions cap before finding the goal.
	ErrExpansionBudget = errors.New("astar: expansion budget exhausted")

	// ErrBadMaxExpansions indicates MaxExpansions was set to a negative value.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be non-negative")
)

// Result is the outcome of one Solve invocation.
//
// Found distinguishes the two valid terminal outcomes: a reconstructed path,
// or a correctly exhausted search ("no solution"). The latter is NOT an error;
// Solve returns a non-nil error only for malformed input, a spent expansion
// budget, or a cancelled context.
type Result struct {
	// Steps is the full path from the initial grid to the goal grid,
	// both inclusive; consecutive entries differ by exactly one legal move.
	// Nil when Found is false.
	Steps []board.Grid

	// Moves is len(Steps)-1 when Found, 0 otherwise. With the admissible and
	// consistent Manhattan heuristic this is the optimal move count.
	Moves int

	// Expanded counts the nodes finalized (popped and expanded) by the search.
	Expanded int

	// Found reports whether a path to the goal exists.
	Found bool
}

// Options configures the behavior of Solve.
//
// Ctx           – context checked between expansions; cancellation aborts the
// search with the context's error.
// MaxExpansions – optional cap on node expansions; 0 disables the cap.
// Exceeding the cap aborts with ErrExpansionBudget.
type Options struct {
	Ctx           context.Context // Cancellation and deadlines between expansions
	MaxExpansions int             // Maximum nodes to expand (0 = unlimited)
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithContext sets a custom context for cancellation. Nil contexts are ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the number of node expansions. A solvable instance
// needing more expansions than the cap aborts with ErrExpansionBudget.
// Must pass a non-negative value; negative values panic with
// ErrBadMaxExpansions. Zero (the default) disables the cap.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
// Use this as a starting point for further functional-options overrides.
//
// Defaults:
//   - Ctx:           context.Background() (never cancelled).
//   - MaxExpansions: 0 (unlimited; the 8-puzzle state space is finite anyway).
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
	}
}
