package planner

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/runpath/costgrid"
)

// Answer pairs the results of the two standard modes.
type Answer struct {
	Short Result
	Long  Result
}

// Solve runs ShortRun and LongRun over g concurrently and returns both
// results. The searches share g read-only and nothing else. The first
// failure cancels the other search and is returned.
func Solve(ctx context.Context, g *costgrid.Grid) (Answer, error) {
	res, err := SolveModes(ctx, g, ShortRun, LongRun)
	if err != nil {
		return Answer{}, err
	}

	return Answer{Short: res[0], Long: res[1]}, nil
}

// SolveModes runs one Search per mode concurrently, each with its own
// frontier and best-cost table. Results are returned in the order of modes.
// Errors are prefixed with the failing mode's name.
func SolveModes(ctx context.Context, g *costgrid.Grid, modes ...Mode) ([]Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	results := make([]Result, len(modes))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, m := range modes {
		i, m := i, m // per-iteration copies (pre-Go 1.22 loop semantics)
		eg.Go(func() error {
			res, err := Search(g, WithMode(m), WithContext(egCtx))
			if err != nil {
				return fmt.Errorf("mode %s (%d..%d): %w", m.Name, m.MinRun, m.MaxRun, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
