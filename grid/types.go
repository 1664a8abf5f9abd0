// Package grid defines core types for the grid subpackage of
// github.com/katalvlaran/lvmaze.
package grid

import "fmt"

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Step returns the position one cell away in direction d.
func (p Position) Step(d Direction) Position {
	off := d.Offset()
	return Position{Row: p.Row + off[0], Col: p.Col + off[1]}
}

// Adjacent reports whether q is a cardinal (non-diagonal) neighbor of p.
func (p Position) Adjacent(q Position) bool {
	dr, dc := p.Row-q.Row, p.Col-q.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// Cell is a single maze cell. Cells are values; identity is the cell's
// position (equivalently its row-major index in the owning Grid).
type Cell struct {
	Position
	Wall bool // Wall marks the cell as impassable
}

// Direction is one of the four cardinal directions.
type Direction int

const (
	// North is row-1.
	North Direction = iota
	// East is col+1.
	East
	// South is row+1.
	South
	// West is col-1.
	West
)

// Directions lists the cardinal directions in exploration order:
// North, East, South, West. Searchers rely on this order to break ties.
var Directions = [4]Direction{North, East, South, West}

// offsets indexed by Direction as (dRow, dCol).
var offsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Offset returns the (dRow, dCol) delta of d.
func (d Direction) Offset() [2]int {
	return offsets[d]
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Grid is a fixed-size maze. It is immutable once built.
// Rows and Cols define dimensions; walls are stored row-major.
type Grid struct {
	Rows, Cols int
	walls      []bool
	start, end int
}
