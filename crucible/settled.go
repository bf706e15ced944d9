package crucible

import "github.com/bits-and-blooms/bitset"

// settledSet records which (cell, budget, direction) tuples have been
// finalized. One bit per tuple; the layout is
//
//	bit = (cell*(MaxRun+1) + budget)*4 + direction
//
// so budgets of any size are representable.
type settledSet struct {
	bits    *bitset.BitSet
	budgets int // MaxRun+1
}

// newSettledSet sizes the set for cells×(maxRun+1)×4 tuples.
func newSettledSet(cells, maxRun int) *settledSet {
	budgets := maxRun + 1
	return &settledSet{
		bits:    bitset.New(uint(cells * budgets * numDirections)),
		budgets: budgets,
	}
}

func (s *settledSet) key(cell, budget int, dir Direction) uint {
	return uint((cell*s.budgets+budget)*numDirections + int(dir))
}

// settle marks the tuple settled and reports whether it was already settled.
func (s *settledSet) settle(cell, budget int, dir Direction) (already bool) {
	k := s.key(cell, budget, dir)
	if s.bits.Test(k) {
		return true
	}
	s.bits.Set(k)
	return false
}

// count returns the number of settled tuples.
func (s *settledSet) count() int {
	return int(s.bits.Count())
}
