// Package render draws a grid.Grid and a solved path as text, one maze row
// per line, optionally styled with lipgloss for terminals.
//
//	#####      #####
//	#S..#      #S**#
//	#.#.#  ->  #.#*#
//	#..E#      #..E#
//	#####      #####
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvmaze/grid"
)

// Symbols are the characters drawn for each kind of cell.
type Symbols struct {
	Wall, Open, Start, End, Path, Explored rune
}

// DefaultSymbols matches the textual maze format and marks the path with '*'
// and explored cells with 'o'.
func DefaultSymbols() Symbols {
	return Symbols{
		Wall:     grid.SymbolWall,
		Open:     grid.SymbolOpen,
		Start:    grid.SymbolStart,
		End:      grid.SymbolEnd,
		Path:     '*',
		Explored: 'o',
	}
}

// Option configures rendering.
type Option func(*Options)

// Options holds rendering parameters.
type Options struct {
	// Plain disables lipgloss styling.
	Plain bool
	// Explored, if non-nil, marks explored non-path cells.
	Explored func(p grid.Position) bool
	// Symbols used per cell kind.
	Symbols Symbols
	// Renderer that styles are bound to; defaults to lipgloss.DefaultRenderer().
	Renderer *lipgloss.Renderer
}

// DefaultOptions returns styled output with DefaultSymbols and no
// explored overlay.
func DefaultOptions() Options {
	return Options{Symbols: DefaultSymbols()}
}

// WithPlain disables styling; output is exactly the symbols.
func WithPlain() Option {
	return func(o *Options) { o.Plain = true }
}

// WithExplored overlays explored cells that are not on the path.
func WithExplored(fn func(p grid.Position) bool) Option {
	return func(o *Options) { o.Explored = fn }
}

// WithSymbols replaces the drawing symbols.
func WithSymbols(s Symbols) Option {
	return func(o *Options) { o.Symbols = s }
}

// WithRenderer binds styles to r, e.g. lipgloss.NewRenderer(os.Stdout).
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(o *Options) {
		if r != nil {
			o.Renderer = r
		}
	}
}

// kind enumerates what is drawn in a cell.
type kind int

const (
	kindOpen kind = iota
	kindWall
	kindStart
	kindEnd
	kindPath
	kindExplored
)

// styles maps each kind to its lipgloss style.
func styles(r *lipgloss.Renderer) map[kind]lipgloss.Style {
	return map[kind]lipgloss.Style{
		kindOpen:     r.NewStyle().Foreground(lipgloss.Color("240")),
		kindWall:     r.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")),
		kindStart:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		kindEnd:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("197")),
		kindPath:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		kindExplored: r.NewStyle().Foreground(lipgloss.Color("67")),
	}
}

// Render draws g with path marked; start and end keep their own symbols.
// Each row is terminated by '\n'. Cells of path that are not part of g are
// ignored.
func Render(g *grid.Grid, path []grid.Cell, opts ...Option) string {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	onPath := make([]bool, g.Len())
	for _, c := range path {
		if g.InBounds(c.Row, c.Col) {
			onPath[g.Index(c.Row, c.Col)] = true
		}
	}

	var st map[kind]lipgloss.Style
	if !o.Plain {
		r := o.Renderer
		if r == nil {
			r = lipgloss.DefaultRenderer()
		}
		st = styles(r)
	}

	var b strings.Builder
	b.Grow(g.Rows * (g.Cols + 1))
	for idx := 0; idx < g.Len(); idx++ {
		k := classify(g, idx, onPath[idx], o.Explored)
		sym := string(symbol(o.Symbols, k))
		if o.Plain {
			b.WriteString(sym)
		} else {
			b.WriteString(st[k].Render(sym))
		}
		if (idx+1)%g.Cols == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func classify(g *grid.Grid, idx int, onPath bool, explored func(grid.Position) bool) kind {
	c := g.Cell(idx)
	switch {
	case idx == g.StartIndex():
		return kindStart
	case idx == g.EndIndex():
		return kindEnd
	case c.Wall:
		return kindWall
	case onPath:
		return kindPath
	case explored != nil && explored(c.Position):
		return kindExplored
	}
	return kindOpen
}

func symbol(s Symbols, k kind) rune {
	switch k {
	case kindWall:
		return s.Wall
	case kindStart:
		return s.Start
	case kindEnd:
		return s.End
	case kindPath:
		return s.Path
	case kindExplored:
		return s.Explored
	}
	return s.Open
}
