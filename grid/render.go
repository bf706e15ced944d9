package grid

// Rows renders the grid back into its text form, one digit string per row.
// Parse(strings.Join(g.Rows(), "\n")) yields an equal grid.
func (g *Grid) Rows() []string {
	return g.Overlay(nil, 0)
}

// Overlay renders the grid like Rows, replacing every in-bounds cell listed
// in cells with mark. Out-of-bounds cells are ignored.
// Complexity: O(W×H + len(cells)).
func (g *Grid) Overlay(cells []Cell, mark rune) []string {
	buf := make([][]rune, g.Height)
	for y := 0; y < g.Height; y++ {
		row := make([]rune, g.Width)
		for x := 0; x < g.Width; x++ {
			row[x] = rune('0' + g.Cost(x, y))
		}
		buf[y] = row
	}
	for _, c := range cells {
		if !g.InBounds(c.X, c.Y) {
			continue
		}
		buf[c.Y][c.X] = mark
	}

	rows := make([]string, g.Height)
	for y, row := range buf {
		rows[y] = string(row)
	}

	return rows
}
