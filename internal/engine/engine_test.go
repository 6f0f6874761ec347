package engine

import (
	"testing"
	"time"

	"torlife/internal/core"
)

// waitFrame receives frames until one satisfies pred. The output channel
// conflates, so tests match on frame content rather than counting frames.
func waitFrame(t *testing.T, frames <-chan Frame, pred func(Frame) bool) Frame {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case f := <-frames:
			if pred(f) {
				return f
			}
		case <-deadline:
			t.Fatal("timed out waiting for frame")
		}
	}
}

func population(f Frame) int {
	n := 0
	for _, alive := range f.Status {
		if alive {
			n++
		}
	}
	return n
}

func TestEventsBeforeInitializeAreNoOps(t *testing.T) {
	e := New()
	defer e.Close()

	e.Post(core.SetCell{Index: 3, Alive: true})
	e.Post(core.Tick{})
	f := waitFrame(t, e.Frames(), func(f Frame) bool { return f.Generation == 1 })
	if f.Height != 0 || f.Width != 0 || len(f.Status) != 0 {
		t.Fatalf("uninitialized field must stay empty, got %dx%d with %d cells",
			f.Height, f.Width, len(f.Status))
	}

	e.Post(core.Initialize{Height: 10, Width: 12})
	f = waitFrame(t, e.Frames(), func(f Frame) bool { return f.Width == 12 })
	if f.Height != 10 || len(f.Status) != 120 || f.Generation != 0 {
		t.Fatalf("unexpected frame after initialize: %dx%d gen=%d", f.Height, f.Width, f.Generation)
	}
}

func TestFoldAppliesEventsInOrder(t *testing.T) {
	e := New()
	defer e.Close()

	e.Post(core.Initialize{Height: 5, Width: 5})
	// Horizontal blinker on row 2.
	for _, i := range []int{11, 12, 13} {
		e.Post(core.SetCell{Index: i, Alive: true})
	}
	e.Post(core.Tick{})

	f := waitFrame(t, e.Frames(), func(f Frame) bool { return f.Generation == 1 })
	want := map[int]bool{7: true, 12: true, 17: true}
	for i, alive := range f.Status {
		if alive != want[i] {
			t.Fatalf("cell %d: alive=%v, want %v", i, alive, want[i])
		}
	}
}

func TestInitializeResetsState(t *testing.T) {
	e := New()
	defer e.Close()

	e.Post(core.Initialize{Height: 10, Width: 10})
	e.Post(core.SetCell{Index: 0, Alive: true})
	e.Post(core.SetCell{Index: 55, Alive: true})
	waitFrame(t, e.Frames(), func(f Frame) bool { return population(f) == 2 })

	e.Post(core.Initialize{Height: 12, Width: 10})
	f := waitFrame(t, e.Frames(), func(f Frame) bool { return f.Height == 12 })
	if population(f) != 0 || f.Generation != 0 {
		t.Fatalf("resize must clear state: population=%d gen=%d", population(f), f.Generation)
	}
}

func TestFrameStatusIsASnapshot(t *testing.T) {
	e := New()
	defer e.Close()

	e.Post(core.Initialize{Height: 10, Width: 10})
	e.Post(core.SetCell{Index: 4, Alive: true})
	f := waitFrame(t, e.Frames(), func(f Frame) bool { return population(f) == 1 })

	// Scribbling on a delivered frame must not leak into the field.
	f.Status[5] = true
	e.Post(core.Tick{})
	next := waitFrame(t, e.Frames(), func(f Frame) bool { return f.Generation == 1 })
	if population(next) != 0 {
		t.Fatalf("lone cell must die; frame mutation leaked (population=%d)", population(next))
	}
}

func TestPostAfterCloseDoesNotBlock(t *testing.T) {
	e := New()
	e.Close()

	done := make(chan struct{})
	go func() {
		e.Post(core.Tick{})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Post blocked after Close")
	}
}
