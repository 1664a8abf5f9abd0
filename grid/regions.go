package grid

// Regions finds all 4-connected regions of open cells.
// Returns a slice of regions; each region is a slice of cell indices
// (row-major) in discovery order. Regions are ordered by their first cell
// in row-major order.
//
// To convert an index back to (row,col), use Coordinate(idx).
//
// Time:   O(R·C·4).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) Regions() [][]int {
	seen := make([]bool, g.Len())
	var regions [][]int

	for i0 := 0; i0 < g.Len(); i0++ {
		if g.walls[i0] || seen[i0] {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ur, uc := g.Coordinate(queue[qi])
			for _, d := range Directions {
				off := d.Offset()
				vr, vc := ur+off[0], uc+off[1]
				if !g.IsValidCell(vr, vc) {
					continue
				}
				vi := g.Index(vr, vc)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, queue)
	}
	return regions
}

// RegionOf labels every open cell with the number of its region (the index
// into Regions()); walls are labelled -1.
func (g *Grid) RegionOf() []int {
	labels := make([]int, g.Len())
	for i := range labels {
		labels[i] = -1
	}
	for n, region := range g.Regions() {
		for _, idx := range region {
			labels[idx] = n
		}
	}
	return labels
}

// Connected reports whether open cells a and b lie in the same region.
// It returns false if either position is out of bounds or a wall.
func (g *Grid) Connected(a, b Position) bool {
	if !g.IsValidCell(a.Row, a.Col) || !g.IsValidCell(b.Row, b.Col) {
		return false
	}
	labels := g.RegionOf()
	return labels[g.Index(a.Row, a.Col)] == labels[g.Index(b.Row, b.Col)]
}
