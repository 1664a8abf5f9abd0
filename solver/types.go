// Package solver provides tunable options, strategies and error definitions
// for frontier-driven maze search over a grid.Grid.
package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmaze/grid"
)

// Sentinel errors for search and reconstruction.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("solver: grid is nil")

	// ErrFrontierEmpty is returned when advancing from an empty frontier.
	ErrFrontierEmpty = errors.New("solver: frontier is empty")

	// ErrUnsolvable is returned when the frontier is exhausted before the
	// end cell is reached. It always wraps ErrFrontierEmpty.
	ErrUnsolvable = errors.New("solver: maze has no solution")

	// ErrMissingParent is returned by Reconstruct when the parent chain from
	// the end cell breaks before reaching the start cell, i.e. no completed
	// search backs the current state.
	ErrMissingParent = errors.New("solver: cell has no parent")

	// ErrParentCycle is returned by Reconstruct when the parent chain is
	// longer than the grid, which only a corrupted state can produce.
	ErrParentCycle = errors.New("solver: parent links form a cycle")

	// ErrExploreLimit is returned when MaxExplored cells were explored
	// without reaching the end cell.
	ErrExploreLimit = errors.New("solver: explore limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")

	// ErrUnknownStrategy is returned by ParseStrategy for unknown names.
	ErrUnknownStrategy = errors.New("solver: unknown strategy")
)

// Strategy selects the frontier discipline.
type Strategy int

const (
	// DepthFirst uses a LIFO frontier.
	DepthFirst Strategy = iota
	// BreadthFirst uses a FIFO frontier; the path found has the fewest steps.
	BreadthFirst
)

// String returns the short name "dfs" or "bfs".
func (s Strategy) String() string {
	switch s {
	case DepthFirst:
		return "dfs"
	case BreadthFirst:
		return "bfs"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps "dfs"/"depth-first" and "bfs"/"breadth-first"
// (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs", "depth-first":
		return DepthFirst, nil
	case "bfs", "breadth-first":
		return BreadthFirst, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative limit), it is recorded
// internally and surfaced as ErrOptionViolation by NewSearcher.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation; checked once per explored cell.
	Ctx context.Context

	// OnExplore is called when a cell becomes current and is marked explored.
	// Returning an error aborts the search and propagates that error.
	OnExplore func(c grid.Cell) error

	// OnDiscover is called when a cell is pushed to the frontier,
	// together with the cell it was discovered from.
	OnDiscover func(c, parent grid.Cell)

	// MaxExplored, if > 0, aborts with ErrExploreLimit once that many
	// distinct cells were explored. 0 disables the limit.
	MaxExplored int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Context.Background()
//   - no-op hooks
//   - no explore limit
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnExplore:   func(grid.Cell) error { return nil },
		OnDiscover:  func(_, _ grid.Cell) {},
		MaxExplored: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExplore registers a callback run when a cell is explored.
func WithOnExplore(fn func(c grid.Cell) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExplore = fn
		}
	}
}

// WithOnDiscover registers a callback run when a cell enters the frontier.
func WithOnDiscover(fn func(c, parent grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithMaxExplored bounds the number of distinct explored cells.
//
//	n > 0: abort with ErrExploreLimit after n cells
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExplored(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExplored cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExplored = n
	}
}

// Result holds the outcome of a completed search:
//   - Strategy: the frontier discipline used.
//   - Path: cells from start to end inclusive.
//   - Order: positions in the order they were first explored.
type Result struct {
	Strategy Strategy
	Path     []grid.Cell
	Order    []grid.Position
}

// Steps returns the number of moves on the path, len(Path)-1.
func (r *Result) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}
