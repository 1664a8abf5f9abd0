// Package grid provides an immutable rectangular maze with cardinal
// adjacency, a single start cell and a single end cell.
//
// Cells with Wall == true are impassable; all others are open.
package grid

import "fmt"

// New constructs a Grid from a non-empty, rectangular wall layout
// (walls[row][col] == true marks a wall) and the start/end positions.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if walls has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrOutOfBounds if start or
// end lies outside the grid, and ErrStartOnWall / ErrEndOnWall if either
// sits on a wall.
// Algorithmic complexity: O(R×C) time and memory.
func New(walls [][]bool, start, end Position) (*Grid, error) {
	if len(walls) == 0 || len(walls[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(walls), len(walls[0])
	for _, row := range walls {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	// Flatten row-major; this is also the deep copy
	flat := make([]bool, 0, rows*cols)
	for _, row := range walls {
		flat = append(flat, row...)
	}
	g := &Grid{Rows: rows, Cols: cols, walls: flat}

	if !g.InBounds(start.Row, start.Col) {
		return nil, fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, rows, cols)
	}
	if !g.InBounds(end.Row, end.Col) {
		return nil, fmt.Errorf("%w: end %v in %dx%d grid", ErrOutOfBounds, end, rows, cols)
	}
	g.start = g.Index(start.Row, start.Col)
	g.end = g.Index(end.Row, end.Col)
	if g.walls[g.start] {
		return nil, fmt.Errorf("%w at %v", ErrStartOnWall, start)
	}
	if g.walls[g.end] {
		return nil, fmt.Errorf("%w at %v", ErrEndOnWall, end)
	}

	return g, nil
}

// Open builds a wall-free rows×cols grid. Mostly useful in tests and examples.
func Open(rows, cols int, start, end Position) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	walls := make([][]bool, rows)
	for r := range walls {
		walls[r] = make([]bool, cols)
	}
	return New(walls, start, end)
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// IsValidCell reports whether (row,col) is in-bounds and not a wall.
// Complexity: O(1).
func (g *Grid) IsValidCell(row, col int) bool {
	return g.InBounds(row, col) && !g.walls[g.Index(row, col)]
}

// CellAt returns the cell at (row,col). ok is false when the position is
// out of bounds.
func (g *Grid) CellAt(row, col int) (c Cell, ok bool) {
	if !g.InBounds(row, col) {
		return Cell{}, false
	}
	return g.Cell(g.Index(row, col)), true
}

// Cell returns the cell stored at row-major index idx.
// idx must be in [0, Len()).
func (g *Grid) Cell(idx int) Cell {
	row, col := g.Coordinate(idx)
	return Cell{Position: Position{Row: row, Col: col}, Wall: g.walls[idx]}
}

// StartCell returns the designated start cell.
func (g *Grid) StartCell() Cell { return g.Cell(g.start) }

// EndCell returns the designated end cell.
func (g *Grid) EndCell() Cell { return g.Cell(g.end) }

// StartIndex returns the row-major index of the start cell.
func (g *Grid) StartIndex() int { return g.start }

// EndIndex returns the row-major index of the end cell.
func (g *Grid) EndIndex() int { return g.end }

// Len returns the number of cells, Rows×Cols.
func (g *Grid) Len() int { return len(g.walls) }

// Index maps (row,col) to a row-major index: row*Cols + col.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.Cols + col
}

// Coordinate converts a row-major index back to (row,col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.Cols, idx % g.Cols
}

// Walls returns a fresh copy of the wall layout as walls[row][col].
func (g *Grid) Walls() [][]bool {
	out := make([][]bool, g.Rows)
	for r := 0; r < g.Rows; r++ {
		out[r] = make([]bool, g.Cols)
		copy(out[r], g.walls[r*g.Cols:(r+1)*g.Cols])
	}
	return out
}
