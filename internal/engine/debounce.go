package engine

import (
	"sync"
	"time"
)

// debouncer delays a callback until its input has been quiet for the
// configured duration. Each call supersedes the previous one: only the
// last callback handed to call runs, and only after the quiescence window
// passes without another call.
type debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

func (d *debouncer) call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	if d.delay <= 0 {
		d.timer = nil
		fn()
		return
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// stop cancels any pending callback.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
