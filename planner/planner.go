package planner

import (
	"fmt"

	"github.com/katalvlaran/runpath/costgrid"
	"github.com/katalvlaran/runpath/frontier"
)

// cancelCheckInterval is how many pops happen between context checks.
const cancelCheckInterval = 1024

// Search returns the minimum total cost of a route from (0,0) to the
// bottom-right cell of g under the configured run bounds.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Bounds must satisfy 0 ≤ MinRun ≤ MaxRun, MaxRun ≥ 1 (ErrBadRunBounds).
//  3. A 1×1 grid is solved at cost 0 with zero steps when MinRun ≤ 1.
//  4. Otherwise the longer grid axis must fit a run of max(MinRun, 1) steps
//     from the origin (ErrDegenerateGrid, which also matches ErrUnreachable).
//
// On success Result.Status is Found. If the frontier drains first the error
// wraps ErrUnreachable and Result.Status is Unreachable; the partial counters
// are still filled in. A cancelled Options.Ctx returns its error.
//
// Complexity:
//
//   - Time:  O((S + E) log S), S = 4·W·H states, E = O(S·MaxRun) runs.
//   - Space: O(S + E).
func Search(g *costgrid.Grid, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.normalize()

	// 2) Validate grid and bounds
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if cfg.MinRun < 0 || cfg.MaxRun < 1 || cfg.MinRun > cfg.MaxRun {
		return Result{}, fmt.Errorf("%w: got MinRun=%d MaxRun=%d", ErrBadRunBounds, cfg.MinRun, cfg.MaxRun)
	}

	// 3) Start equals goal
	if g.Len() == 1 && cfg.MinRun <= 1 {
		return Result{Status: Found}, nil
	}

	// 4) Degenerate precondition
	need := max(cfg.MinRun, 1)
	if max(g.Width(), g.Height())-1 < need {
		return Result{Status: Unreachable}, fmt.Errorf("%w: %dx%d grid cannot hold a run of %d steps: %w",
			ErrDegenerateGrid, g.Width(), g.Height(), need, ErrUnreachable)
	}

	// 5) Run the search
	r := newRunner(g, cfg)
	r.init()

	return r.process()
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	g       *costgrid.Grid              // Read-only input.
	options Options                     // Validated bounds and context.
	best    *bestCosts                  // Best-Cost Table.
	pq      *frontier.Queue[State, int] // Frontier keyed by accumulated cost.
	buf     []Successor                 // Reused Expand output.
	res     Result                      // Counters, filled as the loop runs.
	goalX   int
	goalY   int
}

func newRunner(g *costgrid.Grid, cfg Options) *runner {
	gx, gy := g.Goal()

	return &runner{
		g:       g,
		options: cfg,
		best:    newBestCosts(g),
		pq:      frontier.New[State, int](g.Len() * len(Directions)),
		buf:     make([]Successor, 0, 4*(cfg.MaxRun-max(cfg.MinRun, 1)+1)),
		goalX:   gx,
		goalY:   gy,
	}
}

// init seeds the table with the origin and pushes the start state at cost 0.
func (r *runner) init() {
	r.best.seedOrigin()
	r.pq.Push(Start(), 0)
	r.res.Pushed = 1
}

// process is the core loop: pop the cheapest state, skip it if stale,
// stop if it ends on the goal, otherwise relax its runs.
func (r *runner) process() (Result, error) {
	ctx := r.options.Ctx
	pops := 0
	for {
		if pops%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return r.res, err
			}
		}
		pops++

		s, c, ok := r.pq.Pop()
		if !ok {
			r.res.Status = Unreachable
			return r.res, fmt.Errorf("%w: frontier exhausted after %d expansions", ErrUnreachable, r.res.Expanded)
		}

		// The start state has no table slot and is never stale.
		if s.Dir != None && c > r.best.get(s) {
			r.res.Stale++
			continue
		}

		// Every popped state ends a whole run, so this is a legal stop.
		if s.X == r.goalX && s.Y == r.goalY {
			r.res.Status = Found
			r.res.Cost = c
			return r.res, nil
		}

		r.res.Expanded++
		r.relax(s, c)
	}
}

// relax pushes every successor of s whose total strictly improves its entry.
func (r *runner) relax(s State, c int) {
	r.buf = Expand(r.buf[:0], s, r.g, r.options.MinRun, r.options.MaxRun)
	for _, next := range r.buf {
		total := c + next.Cost
		if !r.best.improve(next.State, total) {
			continue
		}
		r.pq.Push(next.State, total)
		r.res.Pushed++
	}
}
