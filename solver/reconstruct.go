package solver

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// Reconstruct rebuilds the path from the start cell to the end cell by
// following parent links backward from the end and reversing the result.
// It is a pure function of the current parent links: calling it twice in a
// row yields identical sequences.
//
// Precondition: a search completed since the last Reset. Otherwise the chain
// breaks and ErrMissingParent is returned; ErrParentCycle guards against a
// chain that never reaches the start.
// Complexity: O(L) for a path of L cells.
func (s *Searcher) Reconstruct() ([]grid.Cell, error) {
	g := s.grid
	start := g.StartIndex()
	limit := g.Len()

	// build reversed path
	rev := make([]int, 0, 64)
	for cur := g.EndIndex(); cur != start; {
		if len(rev) >= limit {
			return nil, fmt.Errorf("%w after %d cells", ErrParentCycle, len(rev))
		}
		rev = append(rev, cur)
		prev := s.parent[cur]
		if prev < 0 {
			return nil, fmt.Errorf("%w: %v", ErrMissingParent, g.Cell(cur).Position)
		}
		cur = prev
	}
	rev = append(rev, start)

	// reverse to get start → end
	path := make([]grid.Cell, len(rev))
	for i, idx := range rev {
		path[len(rev)-1-i] = g.Cell(idx)
	}

	return path, nil
}
