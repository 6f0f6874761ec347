package life

import (
	"slices"
	"testing"

	"torlife/pkg/core"
)

// checkInvariants verifies that the alive and frontier sets match the
// definitions they are derived from: i ∈ alive ⟺ status[i], and
// i ∈ frontier ⟺ status[i] is false and some neighbour is alive.
func checkInvariants(t *testing.T, f *Field) {
	t.Helper()
	for i, alive := range f.status {
		if _, ok := f.alive[i]; ok != alive {
			t.Fatalf("cell %d: status=%v but alive-set membership=%v", i, alive, ok)
		}
		want := !alive && f.hasAliveNeighbour(i)
		if _, ok := f.frontier[i]; ok != want {
			t.Fatalf("cell %d: frontier membership=%v, want %v", i, ok, want)
		}
	}
	for i := range f.alive {
		if i < 0 || i >= len(f.status) {
			t.Fatalf("alive set holds out-of-range index %d", i)
		}
	}
	for i := range f.frontier {
		if i < 0 || i >= len(f.status) {
			t.Fatalf("frontier holds out-of-range index %d", i)
		}
	}
}

func TestSetMaintainsInvariants(t *testing.T) {
	f := New(6, 6)
	checkInvariants(t, f)

	f.Set(7, true)
	checkInvariants(t, f)
	if !f.status[7] || f.Population() != 1 {
		t.Fatalf("expected exactly cell 7 alive, population=%d", f.Population())
	}

	f.Set(8, true)
	f.Set(14, true)
	checkInvariants(t, f)

	f.Set(7, false)
	checkInvariants(t, f)
	if f.status[7] {
		t.Fatal("cell 7 should be dead after clearing")
	}
	// 7 is adjacent to the still-alive 8 and 14, so it must sit on the
	// frontier rather than vanish.
	if _, ok := f.frontier[7]; !ok {
		t.Fatal("cleared cell with alive neighbours must join the frontier")
	}

	f.Set(8, false)
	f.Set(14, false)
	checkInvariants(t, f)
	if len(f.frontier) != 0 {
		t.Fatalf("empty board must have empty frontier, got %d entries", len(f.frontier))
	}
}

func TestSetRandomSequenceKeepsInvariants(t *testing.T) {
	f := New(8, 10)
	rng := core.NewRNG(4242).Source()
	for step := 0; step < 500; step++ {
		index := rng.IntN(f.height * f.width)
		f.Set(index, rng.IntN(2) == 1)
		checkInvariants(t, f)
	}
}

func TestSetIdempotent(t *testing.T) {
	f := New(5, 5)
	f.Set(7, true)
	f.Set(12, true)
	f.Set(13, true)

	snapshot := slices.Clone(f.status)
	aliveBefore := len(f.alive)
	frontierBefore := len(f.frontier)

	// Re-setting current values must leave the field unchanged.
	f.Set(7, true)
	f.Set(0, false)
	f.Set(24, false)

	if !slices.Equal(snapshot, f.status) {
		t.Fatal("re-setting current values changed status")
	}
	if len(f.alive) != aliveBefore || len(f.frontier) != frontierBefore {
		t.Fatalf("derived sets changed: alive %d→%d, frontier %d→%d",
			aliveBefore, len(f.alive), frontierBefore, len(f.frontier))
	}
	checkInvariants(t, f)
}

func TestSetOutOfRangeIsNoOp(t *testing.T) {
	f := New(5, 5)
	f.Set(-1, true)
	f.Set(25, true)
	if f.Population() != 0 {
		t.Fatal("out-of-range edits must not change the field")
	}
	checkInvariants(t, f)
}

func TestZeroSizeFieldOperations(t *testing.T) {
	f := New(0, 0)
	f.Set(0, true)
	f.Step()
	f.Randomize(1, 0.5)
	if len(f.Status()) != 0 || f.Population() != 0 {
		t.Fatal("zero-size field must stay empty")
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a := New(12, 12)
	b := New(12, 12)
	a.Randomize(99, 0.4)
	b.Randomize(99, 0.4)
	if !slices.Equal(a.Status(), b.Status()) {
		t.Fatal("same seed must reproduce the same soup")
	}
	checkInvariants(t, a)

	b.Randomize(100, 0.4)
	if slices.Equal(a.Status(), b.Status()) {
		t.Fatal("different seeds should produce different soups")
	}
	checkInvariants(t, b)
}
