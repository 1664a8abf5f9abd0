// Package lvmaze finds paths through rectangular grid mazes with
// depth-first and breadth-first search.
//
// What is lvmaze?
//
//	A small, dependency-light toolkit that brings together:
//		• grid/    – immutable maze grids, text parsing, open-region analysis
//		• solver/  – DFS & BFS with parent links and path reconstruction
//		• render/  – plain or lipgloss-styled drawing of a solved maze
//		• cmd/lvmaze – command-line solver
//
// Search model
//
//   - Start from the start cell, examine neighbors North, East, South, West.
//   - Push every open neighbor not yet explored or pending and remember the
//     cell it was discovered from.
//   - Stop once the end cell becomes current and walk the parent links back.
//   - DFS pops the newest pending cell, BFS the oldest; BFS paths are shortest.
//
// Quick ASCII example:
//
//	#####      #####
//	#S..#      #S**#
//	#.#.#  ->  #.#*#
//	#..E#      #..E#
//	#####      #####
//
// Usage:
//
//	g, err := grid.ParseString(src)
//	path, err := solver.SolveBFS(g)
//	fmt.Print(render.Render(g, path))
package lvmaze
