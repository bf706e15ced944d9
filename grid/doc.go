// Package grid holds the immutable cost grid that the crucible search walks.
//
// What:
//
//   - Grid wraps a rectangular matrix of per-cell entry costs in the range 0..9.
//   - Parse builds a Grid from newline-separated rows of decimal digits.
//   - New builds a Grid from an in-memory [][]int.
//   - Index / Coordinate convert between (x,y) and row-major indices.
//   - Overlay renders the grid with a path (or any cell set) marked.
//
// Why:
//
//   - Puzzle inputs: heat-loss maps, terrain costs, any digit-encoded cost field.
//   - Tests and tooling: a compact, validated text format round-trips via Rows.
//
// Complexity:
//
//   - Parse, New, Rows, Overlay: O(W×H) time and memory.
//   - InBounds, Index, Coordinate, Cost: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNonDigit: a character outside '0'..'9' appears in the text form.
//   - ErrBadCost: a value outside 0..9 appears in the [][]int form.
//
// All errors are sentinels wrapped with positional context; match them with errors.Is.
package grid
