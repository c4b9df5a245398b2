package costgrid

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice indexed
// values[y][x]. The input is deep-copied, so later changes to values are not
// observed by the Grid.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrCostOutOfRange if any value lies outside [0, MaxCost], and
// ErrCostOverflow if the largest value could push a route total past
// math.MaxInt (bound: 4·W·H·max(W,H)·largest).
// Complexity: O(W×H) time and memory.
func New(values [][]int, opts ...Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([]int, 0, w*h)
	largest := 0
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, c := range row {
			if c < 0 || c > cfg.MaxCost {
				return nil, fmt.Errorf("%w: (%d,%d)=%d, want 0..%d", ErrCostOutOfRange, x, y, c, cfg.MaxCost)
			}
			largest = max(largest, c)
		}
		cells = append(cells, row...)
	}

	// Every search state (4 per cell) is entered by one run of at most
	// max(W,H) cells, which bounds any accumulated total.
	if limit := math.MaxInt / 4 / w / h / max(w, h); largest > limit {
		return nil, fmt.Errorf("%w: largest cost %d on a %dx%d grid, limit %d", ErrCostOverflow, largest, w, h, limit)
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// ParseLines converts rows of ASCII digits into a Grid. A trailing '\r' on
// each row is dropped and blank rows at the end of the input are ignored;
// a blank row anywhere else is reported as ErrNonRectangular.
// The MaxCost option still applies, so WithMaxCost(5) rejects the digit '7'.
func ParseLines(lines []string, opts ...Option) (*Grid, error) {
	for len(lines) > 0 && strings.TrimRight(lines[len(lines)-1], "\r") == "" {
		lines = lines[:len(lines)-1]
	}

	values := make([][]int, len(lines))
	for y, line := range lines {
		line = strings.TrimRight(line, "\r")
		row := make([]int, len(line))
		for x := 0; x < len(line); x++ {
			ch := line[x]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: (%d,%d)=%q", ErrBadDigit, x, y, ch)
			}
			row[x] = int(ch - '0')
		}
		values[y] = row
	}

	return New(values, opts...)
}

// Read scans r line by line and parses the result with ParseLines.
func Read(r io.Reader, opts ...Option) (*Grid, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("costgrid: reading input: %w", err)
	}

	return ParseLines(lines, opts...)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int { return len(g.cells) }

// Goal returns the bottom-right cell.
func (g *Grid) Goal() (x, y int) { return g.width - 1, g.height - 1 }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Cost returns the traversal cost of cell (x,y).
// The caller must check InBounds first; out-of-range coordinates either
// panic or alias another cell.
func (g *Grid) Cost(x, y int) int {
	return g.cells[y*g.width+x]
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}
