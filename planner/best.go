package planner

import (
	"math"

	"github.com/katalvlaran/runpath/costgrid"
)

// unseen marks a state with no recorded cost.
const unseen = math.MaxInt

// bestCosts is the Best-Cost Table: the lowest accumulated cost recorded for
// each (cell, heading) pair, four slots per cell in Direction.Index() order.
type bestCosts struct {
	g    *costgrid.Grid
	cost []int
}

// newBestCosts allocates a table for g with every slot unseen.
func newBestCosts(g *costgrid.Grid) *bestCosts {
	cost := make([]int, g.Len()*len(Directions))
	for i := range cost {
		cost[i] = unseen
	}

	return &bestCosts{g: g, cost: cost}
}

func (b *bestCosts) slot(s State) int {
	return b.g.Index(s.X, s.Y)*len(Directions) + s.Dir.Index()
}

// get returns the recorded cost for s, or unseen. s.Dir must not be None.
func (b *bestCosts) get(s State) int {
	return b.cost[b.slot(s)]
}

// improve records c for s if it is strictly lower than the current entry
// and reports whether it did.
func (b *bestCosts) improve(s State, c int) bool {
	i := b.slot(s)
	if c >= b.cost[i] {
		return false
	}
	b.cost[i] = c

	return true
}

// seedOrigin marks every heading at (0,0) as reached at cost 0. Re-entering
// the origin can never beat the start state, which may leave in any heading.
func (b *bestCosts) seedOrigin() {
	for _, d := range Directions {
		b.cost[b.slot(State{X: 0, Y: 0, Dir: d})] = 0
	}
}
