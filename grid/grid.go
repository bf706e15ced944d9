// Package grid provides the rectangular cost grid used by the crucible search.
//
// Cells are addressed by (x,y) with x growing east and y growing south;
// (0,0) is the top-left cell. Costs are stored row-major.
package grid

import "fmt"

// MaxCost is the largest cost a single cell may carry.
const MaxCost = 9

// Cell is a single grid coordinate.
type Cell struct {
	X, Y int
}

// Grid is an immutable rectangular matrix of cell entry costs.
// Width and Height define dimensions; costs[y*Width+x] holds the cost of (x,y).
// They are exported for reading only: New and Parse set them, and changing
// them afterwards breaks every index computed from them.
type Grid struct {
	Width, Height int
	costs         []int
}

// New constructs a Grid from a non-empty, rectangular 2D slice indexed [y][x].
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrBadCost if any value lies outside 0..MaxCost.
// Complexity: O(W×H) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	costs := make([]int, 0, w*h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, c := range row {
			if c < 0 || c > MaxCost {
				return nil, fmt.Errorf("%w: (%d,%d)=%d", ErrBadCost, x, y, c)
			}
		}
		costs = append(costs, row...)
	}

	return &Grid{Width: w, Height: h, costs: costs}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Cost returns the cost of entering (x,y). The caller must check InBounds.
func (g *Grid) Cost(x, y int) int {
	return g.costs[g.Index(x, y)]
}

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int {
	return len(g.costs)
}

// Goal returns the bottom-right cell.
func (g *Grid) Goal() Cell {
	return Cell{X: g.Width - 1, Y: g.Height - 1}
}
