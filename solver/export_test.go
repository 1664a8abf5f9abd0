package solver

// SetParentForTest overwrites the parent link of cell idx. Tests use it to
// corrupt state that no search can produce.
func (s *Searcher) SetParentForTest(idx, parent int) {
	s.parent[idx] = parent
}

// NewFrontierForTest exposes the frontier implementations to tests.
func NewFrontierForTest(st Strategy) interface {
	Push(int)
	Pop() (int, error)
	Len() int
} {
	return frontierAdapter{newFrontier(st, 0)}
}

type frontierAdapter struct{ f frontier }

func (a frontierAdapter) Push(i int)        { a.f.push(i) }
func (a frontierAdapter) Pop() (int, error) { return a.f.pop() }
func (a frontierAdapter) Len() int          { return a.f.len() }
