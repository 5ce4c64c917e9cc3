// Package astar implements A* search for the 8-puzzle over board.Grid states.
//
// A* orders candidate states by f = g + h, where g is the exact move count
// from the initial grid and h is the admissible Manhattan-distance estimate of
// the moves remaining to the goal. States are expanded in increasing f using a
// min-heap frontier; an explored set suppresses re-expansion.
//
// Complexity (S = reachable states ≤ 9!/2 = 181440, b ≤ 4 branching):
//
//   - Time:  O(S·b log S)
//   - Each state is expanded at most once (S pops that do work).
//   - Each expansion pushes up to b frontier entries (lazy duplicates included).
//   - Each heap operation costs O(log N), N bounded by total pushes.
//   - Space: O(S)
//   - O(S) for the explored set and for live search nodes.
//
// Notes on implementation choices:
//
//   - Lazy duplicate handling: the frontier may hold several entries for one
//     grid; whichever pops first wins, later pops are discarded against the
//     explored set. No decrease-key, no frontier lookups.
//   - Ties on f break FIFO via a per-run sequence number, so equal-cost paths
//     resolve the same way on every run.
//   - The goal-equality test happens on pop, not on push — required for the
//     optimality guarantee.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/eightpuzzle/board"
)

// Solve runs A* from initial to goal and returns the optimal move sequence.
//
// Returns:
//
//   - Result.Found == true with Result.Steps spanning initial..goal inclusive
//     when a path exists; Result.Moves is the optimal move count.
//   - Result.Found == false with a nil error when the search exhausts the
//     reachable state space without finding goal (an unsolvable pairing).
//   - A non-nil error for malformed grids (ErrInvalidInitial, ErrInvalidGoal,
//     both carrying the board-level detail), a spent expansion budget
//     (ErrExpansionBudget) or a cancelled context.
//
// Preconditions and validation (in order):
//  1. initial must be a permutation of 0..8 (ErrInvalidInitial).
//  2. goal must be a permutation of 0..8 (ErrInvalidGoal).
//
// The search itself performs no further validation: every grid it touches is
// produced by board.Neighbors from a validated grid.
//
// Options customization:
//
//   - WithContext(ctx): abort between expansions when ctx is done.
//   - WithMaxExpansions(n): abort with ErrExpansionBudget after n expansions.
//
// Complexity:
//
//   - Time:  O(S·b log S), Space: O(S)   (see package doc).
func Solve(initial, goal board.Grid, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts { // apply each functional option
		opt(&cfg)
	}

	// 2) Validate the initial grid once, at the boundary.
	if err := initial.Validate(); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidInitial, err)
	}

	// 3) Validate the goal grid the same way.
	if err := goal.Validate(); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidGoal, err)
	}

	// 4) Prepare per-run state: goal position table for the heuristic,
	//    empty explored set, empty frontier.
	r := &runner{
		goal:     goal,
		goalPos:  positionsOf(goal),
		options:  cfg,
		explored: make(map[board.Grid]struct{}),
		frontier: make(nodePQ, 0, 64),
	}

	// 5) Initialize the frontier with the root node and run the main loop.
	r.init(initial)

	return r.process()
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	goal     board.Grid              // Target configuration; compared on pop.
	goalPos  tilePositions           // Per-tile goal coordinates for the heuristic.
	options  Options                 // Configuration (context, expansion cap).
	explored map[board.Grid]struct{} // Grids already finalized; never re-expanded.
	frontier nodePQ                  // Min-heap of *searchNode ordered by (f, seq).
	seq      uint64                  // Monotonic insertion counter for FIFO ties.
	expanded int                     // Nodes finalized so far.
}

// searchNode wraps one discovered grid with its cost bookkeeping.
// Nodes are never mutated after creation; rediscovering a grid via another
// path creates a fresh node. Parent links form a tree (g strictly increases
// along any chain) and are walked exactly once, at reconstruction time.
type searchNode struct {
	grid   board.Grid
	parent *searchNode // nil for the root
	g      int         // exact moves from the initial grid
	h      int         // Manhattan estimate of moves remaining
	seq    uint64      // insertion order, breaks f ties FIFO
}

// f is the A* ordering key.
func (n *searchNode) f() int { return n.g + n.h }

// init pushes the root node (g=0, h=ManhattanDistance(initial, goal)).
func (r *runner) init(initial board.Grid) {
	heap.Init(&r.frontier)
	heap.Push(&r.frontier, &searchNode{
		grid: initial,
		g:    0,
		h:    r.goalPos.distanceTo(initial),
		seq:  r.nextSeq(),
	})
}

// process is the core A* loop. It repeatedly pops the minimal-f node,
// tests it against the goal, and expands it if the grid is still novel.
//
// Loop termination conditions:
//
//   - The popped grid equals the goal (success; path reconstructed).
//   - The frontier empties (correctly exhausted search; Found=false, nil error).
//   - The expansion cap is hit or the context is cancelled (error).
func (r *runner) process() (Result, error) {
	cfg := r.options
	for r.frontier.Len() > 0 {
		// 1) Honor cancellation between expansions.
		select {
		case <-cfg.Ctx.Done():
			return Result{Expanded: r.expanded}, fmt.Errorf("astar: search aborted: %w", cfg.Ctx.Err())
		default:
		}

		// 2) Pop the node with minimal f = g + h (FIFO among equal f).
		n := heap.Pop(&r.frontier).(*searchNode)

		// 3) Goal test on pop: with an admissible, consistent heuristic the
		//    first popped path to any grid is optimal.
		if n.grid == r.goal {
			return Result{
				Steps:    reconstruct(n),
				Moves:    n.g,
				Expanded: r.expanded,
				Found:    true,
			}, nil
		}

		// 4) Skip stale frontier entries: the grid was already finalized via
		//    an equal-or-better path. No cost comparison is needed here —
		//    heuristic consistency guarantees the earlier pop was optimal.
		if _, done := r.explored[n.grid]; done {
			continue
		}

		// 5) Finalize the grid and enforce the expansion budget.
		r.explored[n.grid] = struct{}{}
		r.expanded++
		if cfg.MaxExpansions > 0 && r.expanded > cfg.MaxExpansions {
			return Result{Expanded: r.expanded}, ErrExpansionBudget
		}

		// 6) Discover successors. Neighbors already explored are dropped;
		//    the rest enter the frontier as fresh nodes with g+1.
		//    Duplicates of grids already *in the frontier* are allowed —
		//    step 4 reconciles them lazily when popped.
		for _, next := range n.grid.Neighbors() {
			if _, done := r.explored[next]; done {
				continue
			}
			heap.Push(&r.frontier, &searchNode{
				grid:   next,
				parent: n,
				g:      n.g + 1,
				h:      r.goalPos.distanceTo(next),
				seq:    r.nextSeq(),
			})
		}
	}

	// 7) Frontier exhausted without reaching goal: a valid "no solution"
	//    outcome, not an error. For the 8-puzzle this means the instance
	//    sits in the opposite parity class from the goal.
	return Result{Expanded: r.expanded}, nil
}

// nextSeq returns the next insertion sequence number.
func (r *runner) nextSeq() uint64 {
	r.seq++

	return r.seq
}

// reconstruct walks parent links from the goal node to the root, then
// reverses, yielding the path initial..goal inclusive.
// Complexity: O(path length).
func reconstruct(n *searchNode) []board.Grid {
	path := make([]board.Grid, 0, n.g+1)
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur.grid)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodePQ is a min-heap (priority queue) of *searchNode ordered by f ascending,
// with FIFO tie-breaking on the insertion sequence. We use the lazy approach:
// rediscovered grids push new entries; outdated entries are ignored when
// popped (checked against the explored set).
type nodePQ []*searchNode

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller f → higher priority; equal f resolves
// to the earlier insertion (stable, reproducible expansion order).
func (pq nodePQ) Less(i, j int) bool {
	if fi, fj := pq[i].f(), pq[j].f(); fi != fj {
		return fi < fj
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *searchNode.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*searchNode)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *searchNode.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
