// Package crucible is a shortest-path toolkit for movers that carry momentum
// across a grid of entry costs.
//
// What is it?
//
//	A small library for one hard routing problem: the cheapest route from the
//	top-left to the bottom-right of a digit grid when the mover may not
//	reverse, must turn after a bounded straight run, and (in the strict
//	regime) must commit to a minimum run before turning or stopping.
//
// Under the hood, everything is organized under two subpackages:
//
//	grid/     — immutable cost grid, digit-text parsing and validation, path overlays
//	crucible/ — the constrained best-first search, regimes, options and path reconstruction
//
// Quick example:
//
//	g, err := grid.Parse(input)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cost, err := crucible.Solve(g, false) // regular regime
//	if errors.Is(err, crucible.ErrNoSolution) {
//	    // goal unreachable under the movement rules
//	}
//
// See examples/ for a runnable walkthrough.
//
//	go get github.com/katalvlaran/crucible
package crucible
