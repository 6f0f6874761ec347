package engine

import (
	"slices"

	"torlife/internal/core"
	"torlife/pkg/life"
)

// Frame is the externally observable simulation state published after each
// processed event. Status is a copy; position i maps to row i/Width,
// column i%Width, and the index itself is the stable per-cell identity for
// incremental re-rendering.
type Frame struct {
	Height     int
	Width      int
	Generation int
	Status     []bool
}

// Engine folds the merged event stream over a single Field. One goroutine
// owns the field; events are applied strictly in arrival order, so no
// locking is needed and no partial state is ever visible. Until the first
// Initialize arrives the field has zero size and every event is a safe
// no-op.
type Engine struct {
	events chan core.Event
	frames chan Frame
	quit   chan struct{}
	done   chan struct{}
}

// New starts an engine with an empty, zero-dimension field.
func New() *Engine {
	e := &Engine{
		events: make(chan core.Event, 64),
		frames: make(chan Frame, 1),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go e.loop()
	return e
}

// Post enqueues an event. It never blocks indefinitely: after Close the
// event is dropped.
func (e *Engine) Post(ev core.Event) {
	select {
	case e.events <- ev:
	case <-e.quit:
	}
}

// Frames returns the output channel. It conflates: only the latest frame is
// retained when the consumer falls behind, so a slow renderer never stalls
// the fold.
func (e *Engine) Frames() <-chan Frame {
	return e.frames
}

// Close stops the fold goroutine and waits for it to exit. Events still
// queued are discarded.
func (e *Engine) Close() {
	close(e.quit)
	<-e.done
}

func (e *Engine) loop() {
	defer close(e.done)

	field := life.New(0, 0)
	generation := 0

	for {
		select {
		case <-e.quit:
			return
		case ev := <-e.events:
			switch ev := ev.(type) {
			case core.Initialize:
				field = life.New(ev.Height, ev.Width)
				generation = 0
			case core.SetCell:
				field.Set(ev.Index, ev.Alive)
			case core.Tick:
				field.Step()
				generation++
			}
			e.publish(Frame{
				Height:     field.Height(),
				Width:      field.Width(),
				Generation: generation,
				Status:     slices.Clone(field.Status()),
			})
		}
	}
}

// publish replaces any unconsumed frame with the newer one. The loop is the
// only sender, so the drain-then-send pair cannot race another producer.
func (e *Engine) publish(f Frame) {
	for {
		select {
		case e.frames <- f:
			return
		default:
		}
		select {
		case <-e.frames:
		default:
		}
	}
}
