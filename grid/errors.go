package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a start or end position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrStartOnWall indicates the start position is a wall.
	ErrStartOnWall = errors.New("grid: start cell is a wall")
	// ErrEndOnWall indicates the end position is a wall.
	ErrEndOnWall = errors.New("grid: end cell is a wall")
	// ErrNoStart indicates a textual maze without a start symbol.
	ErrNoStart = errors.New("grid: maze has no start cell")
	// ErrNoEnd indicates a textual maze without an end symbol.
	ErrNoEnd = errors.New("grid: maze has no end cell")
	// ErrDuplicateStart indicates more than one start symbol.
	ErrDuplicateStart = errors.New("grid: maze has more than one start cell")
	// ErrDuplicateEnd indicates more than one end symbol.
	ErrDuplicateEnd = errors.New("grid: maze has more than one end cell")
	// ErrUnknownSymbol indicates an unrecognized character in a textual maze.
	ErrUnknownSymbol = errors.New("grid: unknown maze symbol")
)
