package life

// Field is the complete state of a toroidal Game of Life board: the
// per-cell status, the precomputed neighbour lists, and two sparse sets
// derived from status — the alive cells and the frontier (dead cells with
// at least one alive neighbour). Only frontier cells can be born next
// generation, so alive ∪ frontier is the full set of cells whose status
// needs recomputation on a step.
//
// A Field is not safe for concurrent use; ownership belongs to whoever
// drives it (see internal/engine).
type Field struct {
	height, width int

	status     []bool
	neighbours [][8]int
	alive      map[int]struct{}
	frontier   map[int]struct{}
}

// New returns an empty Field with the given dimensions and a precomputed
// neighbour map. New(0, 0) is valid and yields a field on which every
// operation is a no-op; it serves as the pre-initialization state.
func New(height, width int) *Field {
	total := height * width
	if total < 0 {
		total = 0
	}
	return &Field{
		height:     height,
		width:      width,
		status:     make([]bool, total),
		neighbours: neighbourMap(height, width),
		alive:      make(map[int]struct{}),
		frontier:   make(map[int]struct{}),
	}
}

// Height reports the number of rows.
func (f *Field) Height() int { return f.height }

// Width reports the number of columns.
func (f *Field) Width() int { return f.width }

// Status exposes the per-cell alive flags in row-major order. The slice is
// the field's backing store; callers that hold onto it across mutations
// must copy it first.
func (f *Field) Status() []bool { return f.status }

// Population reports the number of alive cells.
func (f *Field) Population() int { return len(f.alive) }

// Set applies a manual edit: status[index] becomes alive, and the alive and
// frontier sets are repaired incrementally so their invariants hold exactly
// afterwards. Re-setting a cell to its current value leaves the field
// unchanged. An out-of-range index is a no-op.
func (f *Field) Set(index int, alive bool) {
	if index < 0 || index >= len(f.status) {
		return
	}
	f.status[index] = alive
	nbs := f.neighbours[index]

	if alive {
		f.alive[index] = struct{}{}
		delete(f.frontier, index)
		for _, n := range nbs {
			if !f.status[n] {
				f.frontier[n] = struct{}{}
			}
		}
		return
	}

	delete(f.alive, index)
	if f.hasAliveNeighbour(index) {
		f.frontier[index] = struct{}{}
	}
	// Neighbours that were on the frontier only because of this cell have
	// to be dropped; each needs its own neighbourhood re-checked.
	for _, n := range nbs {
		if !f.status[n] && !f.hasAliveNeighbour(n) {
			delete(f.frontier, n)
		}
	}
}

func (f *Field) hasAliveNeighbour(index int) bool {
	for _, n := range f.neighbours[index] {
		if f.status[n] {
			return true
		}
	}
	return false
}
