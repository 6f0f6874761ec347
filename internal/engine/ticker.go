package engine

import (
	"sync"
	"time"
)

// Ticker turns a play/pause signal and an interval into a stream of tick
// callbacks. Each (re)start spawns a fresh timer goroutine identified by
// its cancel channel; the identity is re-checked under the mutex before
// every emit, so a tick scheduled before Play(false) or SetInterval can
// never be delivered after the call returns. Timing starts from the moment
// play becomes true, never from process start.
type Ticker struct {
	emit func()

	mu       sync.Mutex
	interval time.Duration
	playing  bool
	cancel   chan struct{}
}

// NewTicker returns a stopped ticker that invokes emit on every tick.
func NewTicker(interval time.Duration, emit func()) *Ticker {
	return &Ticker{emit: emit, interval: interval}
}

// Play starts or stops the tick stream. Starting while already playing
// restarts the timer; stopping cancels any pending tick.
func (t *Ticker) Play(on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.playing = on
	if on {
		t.startLocked()
	}
}

// SetInterval changes the tick period. While playing, the running timer is
// replaced by a fresh one with the new period; the old period's pending
// tick is discarded rather than fired late.
func (t *Ticker) SetInterval(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if d <= 0 || d == t.interval {
		return
	}
	t.interval = d
	if t.playing {
		t.stopLocked()
		t.startLocked()
	}
}

// Interval reports the current tick period.
func (t *Ticker) Interval() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.interval
}

// Playing reports whether the ticker is running.
func (t *Ticker) Playing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.playing
}

// Stop is Play(false).
func (t *Ticker) Stop() { t.Play(false) }

func (t *Ticker) startLocked() {
	cancel := make(chan struct{})
	t.cancel = cancel
	go t.run(t.interval, cancel)
}

func (t *Ticker) stopLocked() {
	if t.cancel != nil {
		close(t.cancel)
		t.cancel = nil
	}
}

func (t *Ticker) run(d time.Duration, cancel chan struct{}) {
	ticker := time.NewTicker(d)
	defer ticker.Stop()
	for {
		select {
		case <-cancel:
			return
		case <-ticker.C:
			// Emit under the lock after confirming this run is still the
			// active one; a concurrent Play(false) or SetInterval either
			// already closed cancel or is blocked until the emit finishes.
			t.mu.Lock()
			if t.cancel != cancel {
				t.mu.Unlock()
				return
			}
			t.emit()
			t.mu.Unlock()
		}
	}
}
