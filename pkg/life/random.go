package life

import "torlife/pkg/core"

// Randomize clears the board and seeds a random soup: each cell becomes
// alive with the given density, drawn from a deterministic RNG. Cells are
// written through Set so the alive and frontier sets stay consistent.
func (f *Field) Randomize(seed int64, density float64) {
	f.Clear()
	rng := core.NewRNG(seed)
	for i := range f.status {
		if rng.Chance(density) {
			f.Set(i, true)
		}
	}
}

// Clear kills every cell and empties the derived sets.
func (f *Field) Clear() {
	for i := range f.status {
		f.status[i] = false
	}
	clear(f.alive)
	clear(f.frontier)
}
