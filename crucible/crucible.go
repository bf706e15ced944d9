// Package crucible implements a best-first (Dijkstra) search over a cost grid
// where the mover carries momentum: it may not reverse, must turn after at most
// MaxRun straight steps, and must take at least MinRunBeforeTurn straight steps
// before turning or stopping.
//
// Complexity:
//
//   - Time:  O(S log S), S = W×H×4×(MaxRun+1) states.
//   - Each state is settled at most once; each settle pushes at most 3 successors.
//   - Space: O(S) for the arena, frontier and settled bitset.
//
// Notes on implementation choices:
//
//   - States live by value in an arena slice; the frontier and predecessor
//     links hold arena indices, so path reconstruction needs no pointers.
//   - We use the "lazy" strategy: duplicates are queued and stale entries are
//     discarded when popped if their (cell, budget, direction) is already settled.
//   - Frontier ties are broken by arena index (push order), so repeated runs
//     over the same grid settle states in the same order.
package crucible

import (
	"fmt"
	"strconv"

	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/crucible/grid"
)

// Search finds the minimum-cost route from the top-left to the bottom-right
// cell of g under the configured regime. It accepts functional options
// to customize behavior (WithStrict, WithRegime, WithReturnPath, WithMaxCost).
//
// The cost of a route is the sum of the costs of every cell entered; the
// start cell is never charged.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. The regime must be consistent (ErrBadRegime).
//
// Returns ErrNoSolution when the frontier empties before a state on the goal
// cell satisfies the stop gate.
func Search(g *grid.Grid, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := cfg.Regime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: MaxRun=%d MinRunBeforeTurn=%d",
			err, cfg.Regime.MaxRun, cfg.Regime.MinRunBeforeTurn)
	}

	// 3) Seed and run
	r := newRunner(g, cfg)
	r.init()
	goal, ok := r.process()
	if !ok {
		return nil, fmt.Errorf("%w: %dx%d grid, MaxRun=%d MinRunBeforeTurn=%d",
			ErrNoSolution, g.Width, g.Height, cfg.Regime.MaxRun, cfg.Regime.MinRunBeforeTurn)
	}

	res := &Result{
		Cost:     r.arena[goal].Cost,
		Expanded: r.settled.count(),
		Pushed:   len(r.arena),
	}
	if cfg.ReturnPath {
		res.Path = r.trace(goal)
	}

	return res, nil
}

// Solve returns the minimum cost under the Regular regime, or the Strict
// regime when strict is true. ErrNoSolution is returned instead of a cost
// when the goal cannot be reached legally.
func Solve(g *grid.Grid, strict bool) (int64, error) {
	res, err := Search(g, WithRegime(RegimeFor(strict)))
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// SolveText parses text with grid.Parse, solves it and renders the minimum
// cost in base 10. Parse errors and ErrNoSolution are returned unchanged.
func SolveText(text string, strict bool) (string, error) {
	g, err := grid.Parse(text)
	if err != nil {
		return "", err
	}
	cost, err := Solve(g, strict)
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(cost, 10), nil
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	g        *grid.Grid      // The input grid; read-only within Search.
	options  Options         // Regime, path and cost-cap configuration.
	arena    []State         // Every state ever queued, addressed by index.
	frontier *heap.Heap[int] // Min-heap of arena indices ordered by Cost.
	settled  *settledSet     // Finalized (cell, budget, direction) tuples.
	goal     grid.Cell       // Bottom-right cell.
}

func newRunner(g *grid.Grid, cfg Options) *runner {
	r := &runner{
		g:       g,
		options: cfg,
		arena:   make([]State, 0, g.Len()),
		settled: newSettledSet(g.Len(), cfg.Regime.MaxRun),
		goal:    g.Goal(),
	}
	r.frontier = heap.New[int](r.less)

	return r
}

// less orders arena indices by accumulated cost, then by push order.
func (r *runner) less(a, b int) bool {
	ca, cb := r.arena[a].Cost, r.arena[b].Cost
	if ca != cb {
		return ca < cb
	}
	return a < b
}

// init queues the two seeds at (0,0): facing East and facing South,
// each with a full run budget and zero cost.
func (r *runner) init() {
	for _, dir := range []Direction{East, South} {
		r.arena = append(r.arena, State{
			Dir:    dir,
			Budget: r.options.Regime.MaxRun,
			Prev:   -1,
		})
		r.frontier.Push(len(r.arena) - 1)
	}
}

// process is the main best-first loop. It returns the arena index of the
// first settled state that sits on the goal and passes the stop gate.
func (r *runner) process() (int, bool) {
	reg := r.options.Regime
	for r.frontier.Size() > 0 {
		// 1) Pop the cheapest queued state.
		idx, _ := r.frontier.Pop()
		s := r.arena[idx]

		// 2) Discard stale entries; otherwise the state is now settled.
		if r.settled.settle(r.g.Index(s.X, s.Y), s.Budget, s.Dir) {
			continue
		}

		// 3) Goal check with the stop gate.
		if s.X == r.goal.X && s.Y == r.goal.Y && reg.TurnLegal(s.Budget) {
			return idx, true
		}

		// 4) Expand.
		r.expand(idx, s)
	}

	return -1, false
}

// expand queues the left and right turns when turning is legal, and the
// straight step while budget remains.
func (r *runner) expand(idx int, s State) {
	reg := r.options.Regime
	if reg.TurnLegal(s.Budget) {
		r.push(idx, s, s.Dir.Left(), reg.MaxRun-1)
		r.push(idx, s, s.Dir.Right(), reg.MaxRun-1)
	}
	if s.Budget > 0 {
		r.push(idx, s, s.Dir, s.Budget-1)
	}
}

// push advances one cell from s in direction dir and queues the successor,
// charging the entered cell. Out-of-bounds and over-cap successors are dropped.
func (r *runner) push(from int, s State, dir Direction, budget int) {
	dx, dy := dir.Delta()
	x, y := s.X+dx, s.Y+dy
	if !r.g.InBounds(x, y) {
		return
	}
	cost := s.Cost + int64(r.g.Cost(x, y))
	if cost > r.options.MaxCost {
		return
	}

	r.arena = append(r.arena, State{
		X:      x,
		Y:      y,
		Dir:    dir,
		Budget: budget,
		Cost:   cost,
		Prev:   from,
	})
	r.frontier.Push(len(r.arena) - 1)
}
