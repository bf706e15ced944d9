// Package crucible_test contains unit tests for the momentum-constrained search.
// They cover the published sample maps, small hand-traced grids, degenerate
// one-row and one-cell grids, option validation and the text entry point.
package crucible_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/grid"
)

const sampleMap = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533`

const longRunMap = `111111111111
999999999991
999999999991
999999999991
999999999991`

// wallMap has a wall of 9s in column 2 and across the bottom-left corner.
// Every cheapest route drops to row 2 before crossing column 2.
const wallMap = `1191
1191
1111
9911`

// ------------------------------------------------------------------------
// 1. Scenario suite: fixed maps with known answers.
// ------------------------------------------------------------------------

// ScenarioSuite exercises Solve and Search on fixed maps.
type ScenarioSuite struct {
	suite.Suite
}

// TestSampleMap checks both regimes on the 13×13 sample.
// The strict answer is lower: the two regimes admit different, non-nested route sets.
func (s *ScenarioSuite) TestSampleMap() {
	g := grid.MustParse(sampleMap)

	regular, err := crucible.Solve(g, false)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(102), regular)

	strict, err := crucible.Solve(g, true)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(94), strict)
}

// TestLongRunMap checks that the strict regime commits to long runs.
func (s *ScenarioSuite) TestLongRunMap() {
	cost, err := crucible.Solve(grid.MustParse(longRunMap), true)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(71), cost)
}

// TestWallMap routes around the 9s: six steps of cost 1.
func (s *ScenarioSuite) TestWallMap() {
	g := grid.MustParse(wallMap)
	res, err := crucible.Search(g, crucible.WithReturnPath())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(6), res.Cost)
	require.Len(s.T(), res.Path, 7)
	for _, c := range res.Cells() {
		s.NotEqual(9, g.Cost(c.X, c.Y), "route entered wall cell %v", c)
	}

	// A 4×4 grid never allows four straight steps.
	_, err = crucible.Solve(g, true)
	require.ErrorIs(s.T(), err, crucible.ErrNoSolution)
}

// TestStaircase has exactly one cheapest route.
func (s *ScenarioSuite) TestStaircase() {
	g := grid.MustParse("19999\n11999\n91199\n99119\n99911")
	res, err := crucible.Search(g, crucible.WithReturnPath())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(8), res.Cost)
	require.Equal(s.T(), []string{
		".9999",
		"..999",
		"9..99",
		"99..9",
		"999..",
	}, g.Overlay(res.Cells(), '.'))
}

// TestSingleCell: the start is the goal. Regular stops at once with cost 0;
// strict has not moved the required four cells and cannot stop.
func (s *ScenarioSuite) TestSingleCell() {
	g := grid.MustParse("7")

	res, err := crucible.Search(g, crucible.WithReturnPath())
	require.NoError(s.T(), err)
	s.Equal(int64(0), res.Cost)
	s.Equal(1, res.Expanded)
	s.Equal(2, res.Pushed)
	s.Len(res.Path, 1)

	_, err = crucible.Solve(g, true)
	require.ErrorIs(s.T(), err, crucible.ErrNoSolution)
}

// TestZeroCost distinguishes a legitimate zero-cost route from failure.
func (s *ScenarioSuite) TestZeroCost() {
	cost, err := crucible.Solve(grid.MustParse("000\n000\n000"), false)
	require.NoError(s.T(), err)
	s.Equal(int64(0), cost)
}

// TestSmallGridStrict: no dimension leaves room for four straight steps.
func (s *ScenarioSuite) TestSmallGridStrict() {
	_, err := crucible.Solve(grid.MustParse("111\n111\n111"), true)
	require.ErrorIs(s.T(), err, crucible.ErrNoSolution)
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioSuite))
}

// ------------------------------------------------------------------------
// 2. Single-row and single-column grids: run limits without turns.
// ------------------------------------------------------------------------

func TestSolve_StraightLines(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		strict bool
		want   int64 // -1 means ErrNoSolution
	}{
		{"Row4Regular", "1111", false, 3},
		{"Row5Regular", "11111", false, -1},
		{"Row4Strict", "1111", true, -1},
		{"Row5Strict", "11111", true, 4},
		{"Row11Strict", "12345678912", true, 47},
		{"Row12Strict", "111111111111", true, -1},
		{"Column4Regular", "1\n2\n3\n4", false, 9},
		{"Column5Strict", "1\n2\n3\n4\n5", true, 14},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cost, err := crucible.Solve(grid.MustParse(tc.text), tc.strict)
			if tc.want < 0 {
				assert.ErrorIs(t, err, crucible.ErrNoSolution)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, cost)
		})
	}
}

// ------------------------------------------------------------------------
// 3. Options and validation.
// ------------------------------------------------------------------------

func TestSearch_NilGrid(t *testing.T) {
	_, err := crucible.Search(nil)
	assert.ErrorIs(t, err, crucible.ErrNilGrid)
}

func TestSearch_BadRegime(t *testing.T) {
	g := grid.MustParse("11\n11")
	for _, r := range []crucible.Regime{
		{MaxRun: 0, MinRunBeforeTurn: 0},
		{MaxRun: 3, MinRunBeforeTurn: -1},
		{MaxRun: 3, MinRunBeforeTurn: 4},
	} {
		_, err := crucible.Search(g, crucible.WithRegime(r))
		assert.ErrorIs(t, err, crucible.ErrBadRegime, "regime %+v", r)
	}
}

func TestWithMaxCost(t *testing.T) {
	g := grid.MustParse(sampleMap)

	res, err := crucible.Search(g, crucible.WithMaxCost(102))
	require.NoError(t, err)
	assert.Equal(t, int64(102), res.Cost)

	_, err = crucible.Search(g, crucible.WithMaxCost(101))
	assert.ErrorIs(t, err, crucible.ErrNoSolution)

	assert.PanicsWithValue(t, crucible.ErrBadMaxCost.Error(), func() { crucible.WithMaxCost(-1) })
	assert.NotPanics(t, func() { crucible.WithMaxCost(0) })

	// A zero cap still admits the free start on a single cell.
	res, err = crucible.Search(grid.MustParse("5"), crucible.WithMaxCost(0))
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Cost)
}

func TestSearch_WithoutReturnPath(t *testing.T) {
	res, err := crucible.Search(grid.MustParse(wallMap))
	require.NoError(t, err)
	assert.Nil(t, res.Path)
	assert.Nil(t, res.Cells())
	assert.GreaterOrEqual(t, res.Pushed, res.Expanded)
}

func TestSearch_CustomRegime(t *testing.T) {
	// MaxRun=1 forces a turn after every step: a strict zig-zag.
	g := grid.MustParse("123\n456\n789")
	res, err := crucible.Search(g,
		crucible.WithRegime(crucible.Regime{MaxRun: 1, MinRunBeforeTurn: 0}),
		crucible.WithReturnPath())
	require.NoError(t, err)
	// E S E S: 2+5+6+9 = 22; S E S E: 4+5+8+9 = 26.
	assert.Equal(t, int64(22), res.Cost)
}

// ------------------------------------------------------------------------
// 4. Text entry point.
// ------------------------------------------------------------------------

func TestSolveText(t *testing.T) {
	out, err := crucible.SolveText(sampleMap+"\n", false)
	require.NoError(t, err)
	assert.Equal(t, "102", out)

	out, err = crucible.SolveText(strings.ReplaceAll(sampleMap, "\n", "\r\n"), true)
	require.NoError(t, err)
	assert.Equal(t, "94", out)

	out, err = crucible.SolveText("0", false)
	require.NoError(t, err)
	assert.Equal(t, "0", out)

	out, err = crucible.SolveText("0", true)
	assert.ErrorIs(t, err, crucible.ErrNoSolution)
	assert.Empty(t, out)

	_, err = crucible.SolveText("", false)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = crucible.SolveText("12\n3", false)
	assert.ErrorIs(t, err, grid.ErrNonRectangular)

	_, err = crucible.SolveText("1a", false)
	assert.ErrorIs(t, err, grid.ErrNonDigit)
}

// ------------------------------------------------------------------------
// 5. Direction and Regime helpers.
// ------------------------------------------------------------------------

func TestDirection_Turns(t *testing.T) {
	for _, d := range []crucible.Direction{crucible.North, crucible.East, crucible.South, crucible.West} {
		assert.Equal(t, d, d.Left().Right(), "%v", d)
		assert.Equal(t, d, d.Left().Left().Left().Left(), "%v", d)

		dx, dy := d.Delta()
		lx, ly := d.Left().Delta()
		assert.Equal(t, 0, dx*lx+dy*ly, "left of %v must be perpendicular", d)
	}
	assert.Equal(t, crucible.West, crucible.North.Left())
	assert.Equal(t, crucible.South, crucible.East.Right())
	assert.Equal(t, "E", crucible.East.String())
}

func TestRegime_TurnLegal(t *testing.T) {
	for b := 0; b <= crucible.Regular.MaxRun; b++ {
		assert.True(t, crucible.Regular.TurnLegal(b), "regular budget %d", b)
	}
	assert.True(t, crucible.Strict.TurnLegal(6))
	assert.False(t, crucible.Strict.TurnLegal(7))
	assert.False(t, crucible.Strict.TurnLegal(crucible.Strict.MaxRun))
	assert.Equal(t, crucible.Strict, crucible.RegimeFor(true))
	assert.Equal(t, crucible.Regular, crucible.RegimeFor(false))
}
