// Package crucible defines core types and configuration options
// for the momentum-constrained shortest-path search.
//
// A search state is a cell plus the direction the mover entered it and the
// number of straight steps still permitted in that direction (the run budget).
// The search graph is the product of the grid and this small per-cell state
// space: at most 4 × (MaxRun+1) states per cell.
//
// Options:
//
//	– Regime:     run-length bounds (Regular by default, Strict via WithStrict).
//	– ReturnPath: if true, the Result carries the reconstructed path.
//	– MaxCost:    optional cap; states costing more are never queued.
//
// Errors (sentinel):
//
//	– ErrNilGrid     if the provided grid pointer is nil.
//	– ErrBadRegime   if the regime bounds are inconsistent.
//	– ErrBadMaxCost  if WithMaxCost is called with a negative value (panics).
//	– ErrNoSolution  if no state on the goal cell satisfies the stop gate.
//
// Example usage:
//
//	res, err := Search(g, WithStrict(), WithReturnPath())
//	if errors.Is(err, ErrNoSolution) {
//	    // goal unreachable under the strict regime
//	}
//	fmt.Println(res.Cost, len(res.Path))
package crucible

import (
	"errors"
	"math"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("crucible: grid is nil")

	// ErrBadRegime indicates run-length bounds that admit no sensible search:
	// MaxRun < 1, MinRunBeforeTurn < 0 or MinRunBeforeTurn > MaxRun.
	ErrBadRegime = errors.New("crucible: invalid run-length regime")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("crucible: MaxCost must be non-negative")

	// ErrNoSolution indicates the frontier was exhausted before any state on
	// the goal cell satisfied the stop gate. It is an expected outcome, not a fault.
	ErrNoSolution = errors.New("crucible: no path satisfies the movement constraints")
)

// Direction is one of the four compass headings.
// Values are ordered clockwise so that Right is +1 and Left is +3 (mod 4).
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// numDirections is the size of the direction dimension of the state space.
const numDirections = 4

var directionDeltas = [numDirections][2]int{
	North: {0, -1},
	East:  {1, 0},
	South: {0, 1},
	West:  {-1, 0},
}

var directionNames = [numDirections]string{"N", "E", "S", "W"}

// Delta returns the (dx, dy) of one step in direction d.
func (d Direction) Delta() (dx, dy int) {
	return directionDeltas[d][0], directionDeltas[d][1]
}

// Left returns d rotated 90° counter-clockwise.
func (d Direction) Left() Direction { return (d + 3) % numDirections }

// Right returns d rotated 90° clockwise.
func (d Direction) Right() Direction { return (d + 1) % numDirections }

// String returns the single-letter compass name.
func (d Direction) String() string {
	if d >= numDirections {
		return "?"
	}
	return directionNames[d]
}

// Regime is the pair of run-length constants governing movement.
//
// MaxRun           – maximum consecutive straight steps before a turn is forced.
// MinRunBeforeTurn – minimum consecutive straight steps before turning or stopping.
type Regime struct {
	MaxRun           int
	MinRunBeforeTurn int
}

var (
	// Regular allows up to 3 straight steps and turning at any time.
	Regular = Regime{MaxRun: 3, MinRunBeforeTurn: 0}

	// Strict allows up to 10 straight steps and requires at least 4
	// before a turn or a stop.
	Strict = Regime{MaxRun: 10, MinRunBeforeTurn: 4}
)

// RegimeFor maps the boolean mode flag onto Regular or Strict.
func RegimeFor(strict bool) Regime {
	if strict {
		return Strict
	}
	return Regular
}

// Validate reports ErrBadRegime for bounds that admit no consistent state space.
func (r Regime) Validate() error {
	if r.MaxRun < 1 || r.MinRunBeforeTurn < 0 || r.MinRunBeforeTurn > r.MaxRun {
		return ErrBadRegime
	}
	return nil
}

// TurnLegal reports whether a state holding the given run budget has
// already consumed at least MinRunBeforeTurn steps in its direction.
// The same gate decides whether the mover may stop on the goal.
func (r Regime) TurnLegal(budget int) bool {
	return budget <= r.MaxRun-r.MinRunBeforeTurn
}

// State is one node of the expanded search graph, stored by value in the
// search arena. Prev is the arena index of the state it was expanded from,
// or -1 for the two seed states.
type State struct {
	X, Y   int
	Dir    Direction
	Budget int
	Cost   int64
	Prev   int
}

// Step is one element of a reconstructed path: the cell occupied, the
// heading and run budget on arrival, and the cost accumulated so far.
type Step struct {
	X, Y   int
	Dir    Direction
	Budget int
	Cost   int64
}

// Result is the outcome of a successful Search.
//
// Cost     – minimum accumulated cost (the start cell is never charged).
// Path     – seed state through goal state; nil unless ReturnPath was set.
// Expanded – number of states settled, including the goal state.
// Pushed   – number of states ever queued, seeds included.
type Result struct {
	Cost     int64
	Path     []Step
	Expanded int
	Pushed   int
}

// Options configures the behavior of Search.
//
// Regime     – run-length bounds; must pass Regime.Validate.
// ReturnPath – if true, Result.Path is populated.
// MaxCost    – states whose cost would exceed this cap are not queued.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	Regime     Regime
	ReturnPath bool
	MaxCost    int64
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithStrict selects the Strict regime.
func WithStrict() Option {
	return func(o *Options) {
		o.Regime = Strict
	}
}

// WithRegime selects arbitrary run-length bounds. They are validated by Search.
func WithRegime(r Regime) Option {
	return func(o *Options) {
		o.Regime = r
	}
}

// WithReturnPath enables path reconstruction in the Result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost sets a cap on accumulated cost. States beyond it are never
// queued, so a goal only reachable above the cap yields ErrNoSolution.
// A negative max panics with ErrBadMaxCost at the call, before any search runs.
func WithMaxCost(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxCost.Error())
	}
	return func(o *Options) {
		o.MaxCost = max
	}
}

// DefaultOptions returns an Options struct initialized with:
//   - Regime:     Regular.
//   - ReturnPath: false.
//   - MaxCost:    math.MaxInt64 (no cap).
func DefaultOptions() Options {
	return Options{
		Regime:     Regular,
		ReturnPath: false,
		MaxCost:    math.MaxInt64,
	}
}
