package render_test

import (
	"io"
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/render"
	"github.com/katalvlaran/lvmaze/solver"
)

const maze = `#####
#S..#
#.#.#
#..E#
#####
`

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestRender_PlainSolution(t *testing.T) {
	g, err := grid.ParseString(maze)
	require.NoError(t, err)
	s, err := solver.NewSearcher(g)
	require.NoError(t, err)
	path, err := s.SolveBFS()
	require.NoError(t, err)

	got := render.Render(g, path, render.WithPlain())
	want := "#####\n" +
		"#S**#\n" +
		"#.#*#\n" +
		"#..E#\n" +
		"#####\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}

	got = render.Render(g, path, render.WithPlain(), render.WithExplored(s.Explored))
	want = "#####\n" +
		"#S**#\n" +
		"#o#*#\n" +
		"#ooE#\n" +
		"#####\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render with explored mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_NoPathIsFormat(t *testing.T) {
	g, err := grid.ParseString(maze)
	require.NoError(t, err)
	assert.Equal(t, g.Format(), render.Render(g, nil, render.WithPlain()))
}

func TestRender_CustomSymbols(t *testing.T) {
	g, err := grid.Open(1, 3, grid.Position{Row: 0, Col: 0}, grid.Position{Row: 0, Col: 2})
	require.NoError(t, err)
	path, err := solver.SolveDFS(g)
	require.NoError(t, err)

	sym := render.DefaultSymbols()
	sym.Path = '+'
	sym.Start = 'A'
	sym.End = 'B'
	assert.Equal(t, "A+B\n", render.Render(g, path, render.WithPlain(), render.WithSymbols(sym)))

	// cells outside the grid are ignored
	stray := append([]grid.Cell{}, path...)
	stray = append(stray, grid.Cell{Position: grid.Position{Row: 4, Col: 4}})
	assert.Equal(t, "S*E\n", render.Render(g, stray, render.WithPlain()))
}

func TestRender_StyledStripsToPlain(t *testing.T) {
	g, err := grid.ParseString(maze)
	require.NoError(t, err)
	path, err := solver.SolveDFS(g)
	require.NoError(t, err)

	r := lipgloss.NewRenderer(io.Discard)
	styled := render.Render(g, path, render.WithRenderer(r))
	plain := render.Render(g, path, render.WithPlain())
	assert.Equal(t, plain, ansiEscape.ReplaceAllString(styled, ""))

	// default renderer as well
	styled = render.Render(g, path)
	assert.Equal(t, plain, ansiEscape.ReplaceAllString(styled, ""))
}
