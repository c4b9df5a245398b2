package costgrid_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/runpath/costgrid"
)

//----------------------------------------------------------------------------//
// New Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged, or out-of-range inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		opts []costgrid.Option
		err  error
	}{
		{"EmptyRows", [][]int{}, nil, costgrid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, nil, costgrid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, nil, costgrid.ErrNonRectangular},
		{"Negative", [][]int{{1, -1}}, nil, costgrid.ErrCostOutOfRange},
		{"AboveDefault", [][]int{{1, 10}}, nil, costgrid.ErrCostOutOfRange},
		{"AboveCustom", [][]int{{1, 6}}, []costgrid.Option{costgrid.WithMaxCost(5)}, costgrid.ErrCostOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := costgrid.New(tc.grid, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNew_MalformedUmbrella checks that structural and value errors share ErrMalformedGrid.
func TestNew_MalformedUmbrella(t *testing.T) {
	_, err := costgrid.New([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, costgrid.ErrMalformedGrid)

	_, err = costgrid.New([][]int{{1, 99}})
	require.ErrorIs(t, err, costgrid.ErrMalformedGrid)

	_, err = costgrid.New([][]int{})
	require.NotErrorIs(t, err, costgrid.ErrMalformedGrid)
}

// TestNew_LargeBound accepts values beyond one digit when MaxCost allows it.
func TestNew_LargeBound(t *testing.T) {
	g, err := costgrid.New([][]int{{0, 250}, {17, 3}}, costgrid.WithMaxCost(1000))
	require.NoError(t, err)
	assert.Equal(t, 250, g.Cost(1, 0))
	assert.Equal(t, 17, g.Cost(0, 1))
}

// TestNew_DeepCopy ensures later mutation of the input does not leak into the Grid.
func TestNew_DeepCopy(t *testing.T) {
	values := [][]int{{1, 2}, {3, 4}}
	g, err := costgrid.New(values)
	require.NoError(t, err)

	values[0][0] = 9
	assert.Equal(t, 1, g.Cost(0, 0))
}

// TestWithMaxCost_PanicsOnNegative: the bound is checked when the option is applied.
func TestWithMaxCost_PanicsOnNegative(t *testing.T) {
	opt := costgrid.WithMaxCost(-1)
	assert.Panics(t, func() { _, _ = costgrid.New([][]int{{1}}, opt) })
	assert.Panics(t, func() { _, _ = costgrid.ParseLines([]string{"1"}, costgrid.WithMaxCost(-3)) })
}

// TestNew_CostOverflow rejects costs whose route totals could exceed math.MaxInt.
func TestNew_CostOverflow(t *testing.T) {
	// 2×2 grid: limit is MaxInt/4/2/2/2.
	limit := math.MaxInt / 32
	unbounded := costgrid.WithMaxCost(math.MaxInt)

	_, err := costgrid.New([][]int{{0, limit + 1}, {1, 1}}, unbounded)
	require.ErrorIs(t, err, costgrid.ErrCostOverflow)
	require.ErrorIs(t, err, costgrid.ErrMalformedGrid)

	_, err = costgrid.New([][]int{{0, math.MaxInt}, {1, 1}}, unbounded)
	require.ErrorIs(t, err, costgrid.ErrCostOverflow)

	g, err := costgrid.New([][]int{{0, limit}, {1, 1}}, unbounded)
	require.NoError(t, err)
	assert.Equal(t, limit, g.Cost(1, 0))
}

//----------------------------------------------------------------------------//
// Accessor Tests
//----------------------------------------------------------------------------//

// TestAccessors checks dimensions, lookups and index round trips on a 3×2 grid.
func TestAccessors(t *testing.T) {
	g, err := costgrid.New([][]int{
		{0, 1, 2},
		{3, 4, 5},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 6, g.Len())

	gx, gy := g.Goal()
	assert.Equal(t, [2]int{2, 1}, [2]int{gx, gy})

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			assert.Equal(t, y*3+x, g.Cost(x, y))
			idx := g.Index(x, y)
			cx, cy := g.Coordinate(idx)
			assert.Equal(t, [2]int{x, y}, [2]int{cx, cy}, "Coordinate(Index(%d,%d))", x, y)
		}
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := costgrid.New([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

//----------------------------------------------------------------------------//
// ParseLines / Read Tests
//----------------------------------------------------------------------------//

func TestParseLines(t *testing.T) {
	g, err := costgrid.ParseLines([]string{"241\r", "321", "", ""})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 4, g.Cost(1, 0))
	assert.Equal(t, 1, g.Cost(2, 1))
}

func TestParseLines_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		opts  []costgrid.Option
		err   error
	}{
		{"Empty", nil, nil, costgrid.ErrEmptyGrid},
		{"OnlyBlank", []string{"", ""}, nil, costgrid.ErrEmptyGrid},
		{"Letter", []string{"12a"}, nil, costgrid.ErrBadDigit},
		{"Space", []string{"1 2"}, nil, costgrid.ErrBadDigit},
		{"Ragged", []string{"123", "12"}, nil, costgrid.ErrNonRectangular},
		{"InnerBlank", []string{"123", "", "123"}, nil, costgrid.ErrNonRectangular},
		{"DigitAboveBound", []string{"17"}, []costgrid.Option{costgrid.WithMaxCost(5)}, costgrid.ErrCostOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := costgrid.ParseLines(tc.lines, tc.opts...)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestRead(t *testing.T) {
	g, err := costgrid.Read(strings.NewReader("2413\n3215\n3255\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 5, g.Cost(3, 2))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestRead_ScannerError(t *testing.T) {
	_, err := costgrid.Read(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}
