// Package planner finds the minimum-cost route across a costgrid.Grid from
// the top-left cell to the bottom-right cell when movement comes in runs:
// every run keeps one direction for between MinRun and MaxRun steps, the next
// run must turn 90 degrees, and reversing is never allowed.
//
// Overview:
//
//   - The search is Dijkstra's algorithm over an expanded state graph.
//   - A State is a cell plus the direction of the run that ended there.
//     Run length is not part of the State: a transition commits a whole run
//     at once, paying the sum of the cells it enters.
//   - The start cell is free; its cost is never paid.
//   - The goal is reached only when a run ends on the bottom-right cell.
//
// Modes:
//
//   - ShortRun: runs of 1..3 steps.
//   - LongRun:  runs of 4..10 steps.
//   - Any other bounds through WithRunBounds or WithMode.
//
// Complexity:
//
//   - States:   4 per cell, S = 4·W·H.
//   - Edges:    at most 2·(MaxRun−MinRun+1) per expanded state
//     (4·(MaxRun−MinRun+1) from the start), E = O(S·MaxRun).
//   - Time:     O((S + E) log S), with O(MaxRun) work to walk each direction.
//   - Space:    O(S) for the best-cost table, O(E) worst-case frontier under
//     lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:        Search was handed a nil grid.
//   - ErrBadRunBounds:   MinRun < 0, MaxRun < 1, or MinRun > MaxRun.
//   - ErrDegenerateGrid: the grid is too small for any run of MinRun steps;
//     also matches ErrUnreachable.
//   - ErrUnreachable:    the frontier drained before a run ended on the goal.
//
// None of these are transient: the grid is static, so retrying the same
// search can never succeed.
//
// Concurrency:
//
//   - A single Search is synchronous and owns its frontier and table.
//   - Solve runs ShortRun and LongRun concurrently over the same grid, which
//     is safe because costgrid.Grid is immutable.
package planner
