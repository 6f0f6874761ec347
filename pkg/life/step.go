package life

// Step advances the board by one generation under the B3/S23 rule.
//
// Only cells in alive ∪ frontier are evaluated: a dead cell outside the
// frontier has zero alive neighbours, so its neighbour count is 0 and it
// stays dead — skipping it produces the same result as a full-grid scan.
// Cost is O(|alive| + |frontier|) per generation, independent of grid size.
func (f *Field) Step() {
	if len(f.status) == 0 {
		return
	}

	nextAlive := make(map[int]struct{}, len(f.alive))
	decide := func(i int) {
		count := 0
		for _, n := range f.neighbours[i] {
			if f.status[n] {
				count++
			}
		}
		if f.status[i] {
			if count == 2 || count == 3 {
				nextAlive[i] = struct{}{}
			}
		} else if count == 3 {
			nextAlive[i] = struct{}{}
		}
	}
	for i := range f.alive {
		decide(i)
	}
	for i := range f.frontier {
		decide(i)
	}

	// Rebuild status from the new alive set. Frontier cells are already
	// false, so clearing the old alive cells is enough.
	for i := range f.alive {
		f.status[i] = false
	}
	for i := range nextAlive {
		f.status[i] = true
	}

	nextFrontier := make(map[int]struct{}, len(f.frontier))
	for i := range nextAlive {
		for _, n := range f.neighbours[i] {
			if !f.status[n] {
				nextFrontier[n] = struct{}{}
			}
		}
	}

	f.alive = nextAlive
	f.frontier = nextFrontier
}
