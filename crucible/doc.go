// Package crucible finds the cheapest route across a grid of entry costs for
// a mover that carries momentum.
//
// Overview:
//
//   - The mover starts on the top-left cell and must stop on the bottom-right cell.
//   - Entering a cell costs its digit; the start cell is free.
//   - The mover never reverses. It may turn 90° left or right, or continue straight.
//   - It must turn after MaxRun consecutive straight steps.
//   - It must take MinRunBeforeTurn straight steps before it may turn or stop.
//
// Regimes:
//
//   - Regular: MaxRun=3,  MinRunBeforeTurn=0.
//   - Strict:  MaxRun=10, MinRunBeforeTurn=4.
//   - Any other consistent pair via WithRegime.
//
// State space:
//
//   - A search state is (x, y, direction, run budget). The run budget counts the
//     straight steps still permitted; a turn resets it to MaxRun-1 because the
//     turn itself moves one cell.
//   - Turning and stopping are legal when budget ≤ MaxRun − MinRunBeforeTurn.
//   - The search seeds two states on (0,0), facing East and South, with a full
//     budget, so no "no direction yet" state is needed.
//
// Performance and complexity:
//
//   - Time:  O(S log S), where S = W×H×4×(MaxRun+1).
//   - Space: O(S): one arena slot and one frontier slot per queued state, one bit
//     per settled (cell, budget, direction) tuple.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:    Search was given a nil grid.
//   - ErrBadRegime:  MaxRun < 1, MinRunBeforeTurn < 0 or MinRunBeforeTurn > MaxRun.
//   - ErrBadMaxCost: WithMaxCost panics when called with a negative value.
//   - ErrNoSolution: the goal cannot be reached under the regime. This is an
//     ordinary outcome and is never encoded as a cost.
//   - Malformed text (grid.ErrEmptyGrid, grid.ErrNonRectangular, grid.ErrNonDigit)
//     is surfaced unchanged by SolveText.
//
// API reference:
//
//	func Search(g *grid.Grid, opts ...Option) (*Result, error)
//	func Solve(g *grid.Grid, strict bool) (int64, error)
//	func SolveText(text string, strict bool) (string, error)
//
// Thread safety:
//
//   - A Search call owns all of its state and never blocks. Grids are immutable,
//     so concurrent searches over one grid are safe.
//   - There is no cancellation; callers needing a deadline run Search in a
//     goroutine and abandon the result.
package crucible
