// Package grid models a rectangular maze as an immutable 2D collection of
// cells with exactly one start cell and one end cell.
//
// What:
//
//   - Grid wraps a rectangular wall layout (row-major) with designated start/end.
//   - Cells are addressed by (row, col); row 0 is the top row, col 0 the left column.
//   - IsValidCell reports whether a position is in-bounds and not a wall.
//   - Parse reads the textual maze format ('#' wall, '.' or ' ' open, 'S', 'E').
//   - Regions finds 4-connected components of open cells.
//
// Why:
//
//   - Searchers (package solver) only need cheap, index-based lookups.
//   - The grid never changes after construction, so it can be shared by any
//     number of searches; per-run state lives with the searcher.
//
// Complexity:
//
//   - New, Parse:       O(R×C) time and memory.
//   - CellAt, IsValid:  O(1).
//   - Regions:          O(R×C×4), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid:       input has no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrOutOfBounds:     start or end lies outside the grid.
//   - ErrStartOnWall / ErrEndOnWall: start or end is a wall.
//   - ErrNoStart / ErrNoEnd / ErrDuplicateStart / ErrDuplicateEnd /
//     ErrUnknownSymbol: malformed textual maze.
package grid
