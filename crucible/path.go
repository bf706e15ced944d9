package crucible

import "github.com/katalvlaran/crucible/grid"

// trace follows Prev links from the arena index end back to a seed and
// returns the steps in travel order.
func (r *runner) trace(end int) []Step {
	var path []Step
	for at := end; at >= 0; at = r.arena[at].Prev {
		s := r.arena[at]
		path = append(path, Step{X: s.X, Y: s.Y, Dir: s.Dir, Budget: s.Budget, Cost: s.Cost})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Cells returns the cells visited by the reconstructed path, start first.
// It returns nil when the search ran without WithReturnPath.
func (res *Result) Cells() []grid.Cell {
	if res.Path == nil {
		return nil
	}
	cells := make([]grid.Cell, len(res.Path))
	for i, s := range res.Path {
		cells[i] = grid.Cell{X: s.X, Y: s.Y}
	}

	return cells
}
