package planner

import "fmt"

// Direction is the heading of a run. None only appears on the start state.
type Direction int8

const (
	None Direction = iota - 1
	East
	West
	South
	North
)

// Directions lists the four orthogonal headings in table order.
var Directions = [4]Direction{East, West, South, North}

// deltas is indexed by Direction.Index(). y grows downwards.
var deltas = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Delta returns the unit step (dx, dy) for d; (0, 0) for None.
func (d Direction) Delta() (dx, dy int) {
	if d == None {
		return 0, 0
	}

	return deltas[d][0], deltas[d][1]
}

// Reverse returns the opposite heading. None is its own reverse.
func (d Direction) Reverse() Direction {
	switch d {
	case East:
		return West
	case West:
		return East
	case South:
		return North
	case North:
		return South
	}

	return None
}

// Index returns d's slot in a per-cell table, or -1 for None.
func (d Direction) Index() int { return int(d) }

// String returns the heading name.
func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case East:
		return "east"
	case West:
		return "west"
	case South:
		return "south"
	case North:
		return "north"
	}

	return fmt.Sprintf("Direction(%d)", int(d))
}

// State is a search node: the cell a run ended on and that run's heading.
type State struct {
	X, Y int
	Dir  Direction
}

// Start returns the initial state: the origin with no heading yet.
func Start() State {
	return State{X: 0, Y: 0, Dir: None}
}

// Successor is one legal run out of a state: the state it ends in and the
// sum of the cell costs it entered.
type Successor struct {
	State State
	Cost  int
}
