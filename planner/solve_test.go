package planner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/runpath/planner"
)

func TestSolve_Fixture(t *testing.T) {
	g := mustParse(t, fixture...)
	ans, err := planner.Solve(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, 102, ans.Short.Cost)
	assert.Equal(t, 94, ans.Long.Cost)
	assert.Equal(t, planner.Found, ans.Short.Status)
	assert.Equal(t, planner.Found, ans.Long.Status)
}

// TestSolve_MatchesSequential checks the concurrent run against two plain searches.
func TestSolve_MatchesSequential(t *testing.T) {
	g := mustParse(t, longCorridor...)
	ans, err := planner.Solve(context.Background(), g)
	require.NoError(t, err)

	short, err := planner.Search(g, planner.WithMode(planner.ShortRun))
	require.NoError(t, err)
	long, err := planner.Search(g, planner.WithMode(planner.LongRun))
	require.NoError(t, err)

	assert.Equal(t, short, ans.Short)
	assert.Equal(t, long, ans.Long)
}

// TestSolve_OneModeFails reports the failing mode by name.
func TestSolve_OneModeFails(t *testing.T) {
	g := mustParse(t, "7")
	_, err := planner.Solve(context.Background(), g)
	require.ErrorIs(t, err, planner.ErrDegenerateGrid)
	require.ErrorIs(t, err, planner.ErrUnreachable)
	assert.Contains(t, err.Error(), "mode long")
}

func TestSolve_Canceled(t *testing.T) {
	g := mustParse(t, fixture...)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := planner.Solve(ctx, g)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolve_NilGrid(t *testing.T) {
	_, err := planner.Solve(context.Background(), nil)
	require.ErrorIs(t, err, planner.ErrNilGrid)
}

// TestSolveModes keeps results in the order the modes were given.
func TestSolveModes(t *testing.T) {
	g := mustParse(t, fixture...)
	modes := []planner.Mode{
		planner.LongRun,
		{Name: "free", MinRun: 1, MaxRun: 26},
		planner.ShortRun,
	}
	res, err := planner.SolveModes(context.Background(), g, modes...)
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, 94, res[0].Cost)
	assert.Equal(t, 102, res[2].Cost)
	assert.LessOrEqual(t, res[1].Cost, res[2].Cost, "looser bounds never cost more")

	none, err := planner.SolveModes(context.Background(), g)
	require.NoError(t, err)
	assert.Empty(t, none)
}
