package planner

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors returned by Search and Solve.
var (
	// ErrNilGrid indicates that a nil *costgrid.Grid was passed to Search.
	ErrNilGrid = errors.New("planner: grid is nil")

	// ErrBadRunBounds indicates MinRun < 0, MaxRun < 1, or MinRun > MaxRun.
	ErrBadRunBounds = errors.New("planner: run bounds must satisfy 0 <= MinRun <= MaxRun and MaxRun >= 1")

	// ErrUnreachable indicates the frontier was exhausted before any run
	// ended on the goal cell.
	ErrUnreachable = errors.New("planner: goal is unreachable under the run constraints")

	// ErrDegenerateGrid indicates a grid too small to hold a single run of
	// MinRun steps. Errors built from it also match ErrUnreachable.
	ErrDegenerateGrid = errors.New("planner: grid too small for the minimum run")
)

// Status is the terminal state of a search.
type Status int

const (
	// Searching is the zero value, left in place when a search is cancelled.
	Searching Status = iota
	// Found means Result.Cost is the optimal total.
	Found
	// Unreachable means no run ends on the goal.
	Unreachable
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Searching:
		return "searching"
	case Found:
		return "found"
	case Unreachable:
		return "unreachable"
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// Mode names a pair of run bounds.
type Mode struct {
	Name   string
	MinRun int
	MaxRun int
}

var (
	// ShortRun allows runs of one to three steps.
	ShortRun = Mode{Name: "short", MinRun: 1, MaxRun: 3}

	// LongRun requires four steps before turning and allows up to ten.
	LongRun = Mode{Name: "long", MinRun: 4, MaxRun: 10}
)

// Result is the outcome of one Search.
//
// Cost     – optimal total, valid only when Status == Found.
// Expanded – states popped and expanded (stale entries excluded).
// Pushed   – entries pushed onto the frontier, the start included.
// Stale    – outdated frontier entries discarded at pop time.
type Result struct {
	Status   Status
	Cost     int
	Expanded int
	Pushed   int
	Stale    int
}

// Options configures a Search.
//
// MinRun – steps a run must take before it may end. 0 behaves like 1.
// MaxRun – steps a run may take at most. Must be ≥ 1 and ≥ MinRun.
// Ctx    – cancellation for long searches; nil means context.Background().
type Options struct {
	MinRun int
	MaxRun int
	Ctx    context.Context
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithRunBounds sets MinRun and MaxRun. Bounds are validated by Search.
func WithRunBounds(minRun, maxRun int) Option {
	return func(o *Options) {
		o.MinRun = minRun
		o.MaxRun = maxRun
	}
}

// WithMode sets the run bounds from m.
func WithMode(m Mode) Option {
	return WithRunBounds(m.MinRun, m.MaxRun)
}

// WithContext sets the context checked for cancellation during the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// DefaultOptions returns the ShortRun bounds and a background context.
func DefaultOptions() Options {
	return Options{
		MinRun: ShortRun.MinRun,
		MaxRun: ShortRun.MaxRun,
		Ctx:    context.Background(),
	}
}

// normalize fills a nil context.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}
