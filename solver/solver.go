// Package solver finds a path from a grid's start cell to its end cell with
// depth-first or breadth-first search and reconstructs it from parent links.
package solver

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// Searcher runs searches against one grid and owns the per-run state
// (explored flags, frontier membership, parent links, explore order).
// The grid itself is never mutated. A Searcher is not safe for concurrent
// use; create one per goroutine.
type Searcher struct {
	grid     *grid.Grid
	opts     Options
	explored []bool
	pending  []bool
	parent   []int // row-major index of the discovering cell, -1 if unset
	order    []int
}

// NewSearcher prepares a Searcher over g with the given options.
// Returns ErrGridNil for a nil grid or ErrOptionViolation for bad options.
func NewSearcher(g *grid.Grid, opts ...Option) (*Searcher, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Len()
	s := &Searcher{
		grid:     g,
		opts:     o,
		explored: make([]bool, n),
		pending:  make([]bool, n),
		parent:   make([]int, n),
	}
	s.Reset()

	return s, nil
}

// SolveDFS runs a depth-first search on g and returns the path from start
// to end inclusive. Returns ErrUnsolvable if the end is unreachable.
func SolveDFS(g *grid.Grid, opts ...Option) ([]grid.Cell, error) {
	s, err := NewSearcher(g, opts...)
	if err != nil {
		return nil, err
	}
	return s.SolveDFS()
}

// SolveBFS runs a breadth-first search on g and returns a shortest path
// from start to end inclusive. Returns ErrUnsolvable if the end is unreachable.
func SolveBFS(g *grid.Grid, opts ...Option) ([]grid.Cell, error) {
	s, err := NewSearcher(g, opts...)
	if err != nil {
		return nil, err
	}
	return s.SolveBFS()
}

// Solve runs the given strategy on g and returns the full Result.
func Solve(g *grid.Grid, strategy Strategy, opts ...Option) (*Result, error) {
	s, err := NewSearcher(g, opts...)
	if err != nil {
		return nil, err
	}
	return s.Solve(strategy)
}

// SolveDFS resets the searcher and runs a depth-first search.
func (s *Searcher) SolveDFS() ([]grid.Cell, error) {
	res, err := s.Solve(DepthFirst)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// SolveBFS resets the searcher and runs a breadth-first search.
func (s *Searcher) SolveBFS() ([]grid.Cell, error) {
	res, err := s.Solve(BreadthFirst)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// Solve resets the searcher, runs strategy until the end cell becomes
// current, and reconstructs the path. On error the partial state (explored
// flags, parent links) stays inspectable until the next Reset or Solve.
func (s *Searcher) Solve(strategy Strategy) (*Result, error) {
	if strategy != DepthFirst && strategy != BreadthFirst {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, strategy)
	}
	s.Reset()
	if err := s.walk(newFrontier(strategy, s.grid.Len())); err != nil {
		return nil, err
	}
	path, err := s.Reconstruct()
	if err != nil {
		return nil, err
	}

	return &Result{Strategy: strategy, Path: path, Order: s.Order()}, nil
}

// Reset clears explored flags, frontier membership, parent links and the
// explore order. Reconstruct fails with ErrMissingParent until the next
// completed search.
func (s *Searcher) Reset() {
	for i := range s.parent {
		s.explored[i] = false
		s.pending[i] = false
		s.parent[i] = -1
	}
	s.order = s.order[:0]
}

// walk drives the frontier until the end cell becomes current.
//
//  1. Seed the frontier with the start; current = start.
//  2. While current != end: mark current explored, push every valid
//     neighbor (N, E, S, W) that is neither explored nor pending, recording
//     current as its parent; then advance current from the frontier.
func (s *Searcher) walk(f frontier) error {
	g := s.grid
	start, end := g.StartIndex(), g.EndIndex()

	s.pending[start] = true
	f.push(start)
	cur := start

	for cur != end {
		// cancellation check (once per expansion)
		select {
		case <-s.opts.Ctx.Done():
			return s.opts.Ctx.Err()
		default:
		}

		if err := s.explore(cur); err != nil {
			return err
		}

		row, col := g.Coordinate(cur)
		for _, d := range grid.Directions {
			off := d.Offset()
			nr, nc := row+off[0], col+off[1]
			if !g.IsValidCell(nr, nc) {
				continue
			}
			nb := g.Index(nr, nc)
			// first predecessor to reach a cell wins
			if s.explored[nb] || s.pending[nb] {
				continue
			}
			s.parent[nb] = cur
			s.pending[nb] = true
			f.push(nb)
			s.opts.OnDiscover(g.Cell(nb), g.Cell(cur))
		}

		next, err := f.pop()
		if err != nil {
			return fmt.Errorf("%w: explored %d cells: %w", ErrUnsolvable, len(s.order), err)
		}
		s.pending[next] = false
		cur = next
	}

	return nil
}

// explore marks idx explored, records first-time visits in order, enforces
// MaxExplored and runs the OnExplore hook.
func (s *Searcher) explore(idx int) error {
	if s.explored[idx] {
		// the start cell resurfaces once from the frontier it was seeded into
		return nil
	}
	if s.opts.MaxExplored > 0 && len(s.order) >= s.opts.MaxExplored {
		return fmt.Errorf("%w: %d cells", ErrExploreLimit, s.opts.MaxExplored)
	}
	s.explored[idx] = true
	s.order = append(s.order, idx)

	c := s.grid.Cell(idx)
	if err := s.opts.OnExplore(c); err != nil {
		return fmt.Errorf("solver: OnExplore error at %v: %w", c.Position, err)
	}
	return nil
}

// Explored reports whether p was explored by the most recent search.
func (s *Searcher) Explored(p grid.Position) bool {
	if !s.grid.InBounds(p.Row, p.Col) {
		return false
	}
	return s.explored[s.grid.Index(p.Row, p.Col)]
}

// Parent returns the cell p was discovered from in the most recent search.
// ok is false for the start cell, undiscovered cells and out-of-bounds p.
func (s *Searcher) Parent(p grid.Position) (c grid.Cell, ok bool) {
	if !s.grid.InBounds(p.Row, p.Col) {
		return grid.Cell{}, false
	}
	pi := s.parent[s.grid.Index(p.Row, p.Col)]
	if pi < 0 {
		return grid.Cell{}, false
	}
	return s.grid.Cell(pi), true
}

// Order returns a copy of the explored positions in first-explored order.
func (s *Searcher) Order() []grid.Position {
	out := make([]grid.Position, len(s.order))
	for i, idx := range s.order {
		out[i] = s.grid.Cell(idx).Position
	}
	return out
}

// Grid returns the grid being searched.
func (s *Searcher) Grid() *grid.Grid { return s.grid }
