package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Maze symbols understood by Parse and produced by Format.
const (
	SymbolWall  = '#'
	SymbolOpen  = '.'
	SymbolSpace = ' '
	SymbolStart = 'S'
	SymbolEnd   = 'E'
)

// Parse reads a textual maze, one grid row per line:
//
//	#  wall
//	.  open (a space is also open)
//	S  start (exactly one)
//	E  end   (exactly one)
//
// Trailing carriage returns and trailing blank lines are ignored.
// All rows must have the same length.
func Parse(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	// Allow wide mazes
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var (
		walls      [][]bool
		start, end Position
		haveStart  bool
		haveEnd    bool
		lines      []string
	)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("grid: read maze: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for row, line := range lines {
		cells := make([]bool, 0, len(line))
		for col, ch := range []rune(line) {
			switch ch {
			case SymbolWall:
				cells = append(cells, true)
			case SymbolOpen, SymbolSpace:
				cells = append(cells, false)
			case SymbolStart:
				if haveStart {
					return nil, fmt.Errorf("%w: second start at (%d,%d)", ErrDuplicateStart, row, col)
				}
				start, haveStart = Position{Row: row, Col: col}, true
				cells = append(cells, false)
			case SymbolEnd:
				if haveEnd {
					return nil, fmt.Errorf("%w: second end at (%d,%d)", ErrDuplicateEnd, row, col)
				}
				end, haveEnd = Position{Row: row, Col: col}, true
				cells = append(cells, false)
			default:
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrUnknownSymbol, ch, row, col)
			}
		}
		walls = append(walls, cells)
	}

	if len(walls) == 0 || len(walls[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if !haveStart {
		return nil, ErrNoStart
	}
	if !haveEnd {
		return nil, ErrNoEnd
	}

	return New(walls, start, end)
}

// ParseString is Parse over an in-memory maze description.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// Format renders g back into the textual maze format, one row per line,
// each line terminated by '\n'. Format(Parse(x)) == x for canonical input
// (open cells written as '.').
func (g *Grid) Format() string {
	var b strings.Builder
	b.Grow(g.Rows * (g.Cols + 1))
	for idx := 0; idx < g.Len(); idx++ {
		switch {
		case idx == g.start:
			b.WriteRune(SymbolStart)
		case idx == g.end:
			b.WriteRune(SymbolEnd)
		case g.walls[idx]:
			b.WriteRune(SymbolWall)
		default:
			b.WriteRune(SymbolOpen)
		}
		if (idx+1)%g.Cols == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
