// Command eightpuzzle solves one 8-puzzle instance and renders the result.
//
// Plain mode prints the numbered move sequence:
//
//	Solution steps:
//	Step 1:
//	2 1 7
//	8 _ 6
//	3 4 5
//	...
//
// or "No solution found." when the goal is unreachable. With -view the
// solution opens in an interactive terminal stepper instead (←/→ to walk
// the moves, q to quit).
//
// Grids are given row-major as nine comma-separated values, 0 for the blank:
//
//	eightpuzzle -initial 2,1,7,8,0,6,3,4,5 -goal 2,3,4,7,0,1,8,5,6
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/eightpuzzle/astar"
	"github.com/katalvlaran/eightpuzzle/board"
)

// Defaults reproduce the module's reference instance.
const (
	defaultInitial = "2,1,7,8,0,6,3,4,5"
	defaultGoal    = "2,3,4,7,0,1,8,5,6"
)

func main() {
	initialArg := flag.String("initial", defaultInitial, "Initial grid, nine row-major comma-separated values (0 = blank)")
	goalArg := flag.String("goal", defaultGoal, "Goal grid, same format as -initial")
	maxExpansions := flag.Int("max-expansions", 0, "Abort after this many node expansions (0 = unlimited)")
	view := flag.Bool("view", false, "Open the solution in an interactive terminal stepper")
	flag.Parse()

	initial, err := parseGrid(*initialArg)
	if err != nil {
		log.Fatalf("bad -initial: %v", err)
	}
	goal, err := parseGrid(*goalArg)
	if err != nil {
		log.Fatalf("bad -goal: %v", err)
	}

	res, err := astar.Solve(initial, goal, astar.WithMaxExpansions(*maxExpansions))
	if err != nil {
		log.Fatalf("solve: %v", err)
	}
	if !res.Found {
		fmt.Println("No solution found.")

		return
	}

	if *view {
		if _, err := tea.NewProgram(newStepper(res)).Run(); err != nil {
			log.Fatalf("viewer: %v", err)
		}

		return
	}

	fmt.Println("Solution steps:")
	for i, step := range res.Steps {
		fmt.Printf("Step %d:\n%s\n\n", i+1, step)
	}
}

// parseGrid converts "2,1,7,8,0,6,3,4,5" into a validated board.Grid.
func parseGrid(s string) (board.Grid, error) {
	fields := strings.Split(s, ",")
	if len(fields) != board.Tiles {
		return board.Grid{}, fmt.Errorf("want %d values, got %d", board.Tiles, len(fields))
	}
	rows := make([][]int, board.Size)
	for r := 0; r < board.Size; r++ {
		rows[r] = make([]int, board.Size)
		for c := 0; c < board.Size; c++ {
			v, err := strconv.Atoi(strings.TrimSpace(fields[r*board.Size+c]))
			if err != nil {
				return board.Grid{}, fmt.Errorf("value %q: %w", fields[r*board.Size+c], err)
			}
			rows[r][c] = v
		}
	}

	return board.New(rows)
}

// stepper is the bubbletea model for the interactive solution viewer.
// It owns the solved path and a cursor into it; nothing else mutates.
type stepper struct {
	steps    []board.Grid
	expanded int
	idx      int
}

func newStepper(res astar.Result) stepper {
	return stepper{steps: res.Steps, expanded: res.Expanded}
}

func (m stepper) Init() tea.Cmd { return nil }

func (m stepper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", " ":
			if m.idx < len(m.steps)-1 {
				m.idx++
			}
		case "left", "h":
			if m.idx > 0 {
				m.idx--
			}
		case "home":
			m.idx = 0
		case "end":
			m.idx = len(m.steps) - 1
		}
	}

	return m, nil
}

func (m stepper) View() string {
	s := fmt.Sprintf("8-puzzle solution — step %d/%d (%d moves, %d nodes expanded)\n\n",
		m.idx+1, len(m.steps), len(m.steps)-1, m.expanded)
	s += m.steps[m.idx].String() + "\n\n"
	s += "←/→ step through, home/end jump, q quit\n"

	return s
}
