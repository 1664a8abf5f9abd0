package solver_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/solver"
)

// randomGrid builds a rows×cols grid with the given wall density and
// random distinct open start/end cells.
func randomGrid(t testing.TB, rng *rand.Rand, rows, cols int, density float64) *grid.Grid {
	t.Helper()
	walls := make([][]bool, rows)
	for r := range walls {
		walls[r] = make([]bool, cols)
		for c := range walls[r] {
			walls[r][c] = rng.Float64() < density
		}
	}
	start := grid.Position{Row: rng.Intn(rows), Col: rng.Intn(cols)}
	end := grid.Position{Row: rng.Intn(rows), Col: rng.Intn(cols)}
	for end == start {
		end = grid.Position{Row: rng.Intn(rows), Col: rng.Intn(cols)}
	}
	walls[start.Row][start.Col] = false
	walls[end.Row][end.Col] = false

	g, err := grid.New(walls, start, end)
	require.NoError(t, err)
	return g
}

// shortestSteps computes start→end distance with a plain BFS over open
// cells, independent of the solver. Returns -1 when unreachable.
func shortestSteps(g *grid.Grid) int {
	dist := make([]int, g.Len())
	for i := range dist {
		dist[i] = -1
	}
	dist[g.StartIndex()] = 0
	queue := []int{g.StartIndex()}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ur, uc := g.Coordinate(u)
		for _, d := range grid.Directions {
			off := d.Offset()
			vr, vc := ur+off[0], uc+off[1]
			if !g.IsValidCell(vr, vc) {
				continue
			}
			v := g.Index(vr, vc)
			if dist[v] < 0 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist[g.EndIndex()]
}

// TestProperties_RandomMazes checks path validity, BFS optimality,
// BFS ≤ DFS, determinism and unsolvable detection on random mazes.
func TestProperties_RandomMazes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	solvable, unsolvable := 0, 0

	for i := 0; i < 300; i++ {
		rows, cols := 1+rng.Intn(12), 2+rng.Intn(12)
		g := randomGrid(t, rng, rows, cols, 0.35)
		want := shortestSteps(g)

		dfsPath, dfsErr := solver.SolveDFS(g)
		bfsPath, bfsErr := solver.SolveBFS(g)

		if want < 0 {
			unsolvable++
			assert.True(t, errors.Is(dfsErr, solver.ErrUnsolvable), "case %d: DFS error = %v", i, dfsErr)
			assert.True(t, errors.Is(bfsErr, solver.ErrUnsolvable), "case %d: BFS error = %v", i, bfsErr)
			assert.Nil(t, dfsPath)
			assert.Nil(t, bfsPath)
			assert.False(t, g.Connected(g.StartCell().Position, g.EndCell().Position))
			continue
		}
		solvable++

		require.NoError(t, dfsErr, "case %d:\n%s", i, g.Format())
		require.NoError(t, bfsErr, "case %d:\n%s", i, g.Format())
		assertValidPath(t, g, dfsPath)
		assertValidPath(t, g, bfsPath)

		assert.Equal(t, want, len(bfsPath)-1, "case %d: BFS not shortest\n%s", i, g.Format())
		assert.LessOrEqual(t, len(bfsPath), len(dfsPath), "case %d", i)

		// no cell is visited twice on either path
		for _, path := range [][]grid.Cell{dfsPath, bfsPath} {
			seen := map[grid.Position]bool{}
			for _, c := range path {
				assert.False(t, seen[c.Position], "case %d: %v repeated", i, c.Position)
				seen[c.Position] = true
			}
		}

		// determinism across runs
		again, err := solver.SolveDFS(g)
		require.NoError(t, err)
		assert.Equal(t, dfsPath, again, "case %d: DFS not deterministic", i)
		again, err = solver.SolveBFS(g)
		require.NoError(t, err)
		assert.Equal(t, bfsPath, again, "case %d: BFS not deterministic", i)
	}

	// the seed must exercise both outcomes
	assert.Positive(t, solvable)
	assert.Positive(t, unsolvable)
}

// TestProperties_TieBreak pins the N, E, S, W preference on grids with many
// equal-length routes.
func TestProperties_TieBreak(t *testing.T) {
	// End due south-east: BFS prefers East before South at the start,
	// so the first step goes east.
	g := mustOpen(t, 4, 4, pos(0, 0), pos(3, 3))
	path, err := solver.SolveBFS(g)
	require.NoError(t, err)
	assert.Equal(t, pos(0, 1), path[1].Position)
	assert.Len(t, path, 7)

	// Start in the middle, end north-west: BFS goes North first.
	g = mustOpen(t, 3, 3, pos(1, 1), pos(0, 0))
	path, err = solver.SolveBFS(g)
	require.NoError(t, err)
	assert.Equal(t, []grid.Position{pos(1, 1), pos(0, 1), pos(0, 0)}, positions(path))

	// DFS pops the last pushed neighbor: West before South before East.
	path, err = solver.SolveDFS(g)
	require.NoError(t, err)
	assert.Equal(t, []grid.Position{pos(1, 1), pos(1, 0), pos(0, 0)}, positions(path))
}
