// Package costgrid holds the immutable traversal-cost matrix consumed by the
// planner, together with the adapter that turns rows of ASCII digits into it.
//
// What:
//
//   - Grid wraps a rectangular matrix of non-negative integer costs.
//   - (0,0) is the top-left cell; the goal is always (Width-1, Height-1).
//   - Values are bounded by Options.MaxCost (9 by default, one digit per cell).
//
// Construction:
//
//   - New validates and deep-copies a [][]int.
//   - ParseLines converts equal-length digit rows.
//   - Read scans an io.Reader line by line and delegates to ParseLines.
//
// Complexity:
//
//   - New, ParseLines, Read: O(W×H) time and memory.
//   - Cost, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrMalformedGrid: umbrella for the three errors below.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCostOutOfRange: a value lies outside [0, MaxCost].
//   - ErrBadDigit: a text cell is not an ASCII digit.
//
// A Grid is never mutated after construction, so one instance may be shared
// by concurrent searches without synchronization.
package costgrid
