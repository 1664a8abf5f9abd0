// Package solver provides depth-first and breadth-first maze search over a
// grid.Grid, returning the path from the start cell to the end cell.
//
// What
//
//   - SolveDFS / SolveBFS: run one search and return the start→end path.
//   - Solve(g, strategy): same, returning a Result with the explore order.
//   - Searcher: a reusable search context holding per-run state (explored
//     flags, frontier membership, parent links) apart from the immutable grid.
//   - (*Searcher).Reconstruct: rebuild the path from the current parent links.
//
// Algorithm
//
//	current = start; frontier = [start]
//	while current != end:
//	    mark current explored
//	    for d in North, East, South, West:
//	        if neighbor is in-bounds, open, not explored and not pending:
//	            parent[neighbor] = current; push neighbor
//	    current = pop(frontier)   // LIFO for DFS, FIFO for BFS
//	return reconstruct()
//
// Determinism
//
//	Neighbors are examined in the fixed order North, East, South, West and
//	the first predecessor to push a cell becomes its parent, so repeated
//	runs over the same grid always return the same path.
//
// Guarantees
//
//   - BFS returns a path with the minimum number of steps.
//   - DFS returns a valid, not necessarily shortest, path.
//   - Every solve starts from a clean state; no reset discipline is needed
//     between runs on the same Searcher.
//
// Complexity (N = rows×cols)
//
//   - Time:   O(N)   (each cell is pushed at most once)
//   - Memory: O(N)   (frontier, explored/pending flags, parent links)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no explore limit.
//   - WithContext(ctx):       abort when ctx is done.
//   - WithOnExplore(fn):      hook when a cell is explored; error aborts.
//   - WithOnDiscover(fn):     hook when a cell enters the frontier.
//   - WithMaxExplored(n):     abort after n explored cells (n>0).
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - ErrUnsolvable         if the frontier runs dry before the end (wraps ErrFrontierEmpty).
//   - ErrMissingParent      if Reconstruct runs without a completed search.
//   - ErrParentCycle        if parent links never lead back to the start.
//   - ErrExploreLimit       if MaxExplored is exceeded.
//   - ErrOptionViolation    for invalid options.
//   - Wrapped OnExplore errors and context errors.
package solver
