package planner

import "github.com/katalvlaran/runpath/costgrid"

// Expand appends to dst every legal run leaving s and returns the result.
//
// Rules:
//  1. The next run may not keep s.Dir (that run already ended) and may not
//     take s.Dir.Reverse(). From the start (Dir == None) all four headings
//     are candidates.
//  2. For each heading, walk i = 1..maxRun steps, adding each entered cell's
//     cost. The walk stops at the first cell outside the grid.
//  3. Once i ≥ minRun the run may end, so (cell, heading) is emitted with
//     the accumulated cost. Shorter prefixes only contribute their cost.
//
// A run that leaves the grid before minRun steps emits nothing.
// At most 4·(maxRun−minRun+1) successors are appended.
func Expand(dst []Successor, s State, g *costgrid.Grid, minRun, maxRun int) []Successor {
	back := s.Dir.Reverse()
	for _, d := range Directions {
		if s.Dir != None && (d == s.Dir || d == back) {
			continue
		}

		dx, dy := d.Delta()
		x, y, cost := s.X, s.Y, 0
		for i := 1; i <= maxRun; i++ {
			x += dx
			y += dy
			if !g.InBounds(x, y) {
				break
			}
			cost += g.Cost(x, y)
			if i < minRun {
				continue
			}
			dst = append(dst, Successor{State: State{X: x, Y: y, Dir: d}, Cost: cost})
		}
	}

	return dst
}
