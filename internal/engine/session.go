package engine

import (
	"sync"
	"time"

	"torlife/internal/core"
	"torlife/pkg/life"
)

// configDebounce is how long rapid-fire configuration edits must be quiet
// before they are applied. It keeps a user dragging a slider (or typing a
// dimension) from forcing a topology rebuild on every keystroke.
const configDebounce = 200 * time.Millisecond

// Session wires the event queue, the tick source, and the debounced
// configuration stream into one façade for front-ends. All methods are safe
// for concurrent use; correctness only depends on the engine applying
// whatever arrives in order, not on any particular interleaving between
// sources.
type Session struct {
	engine *Engine
	ticker *Ticker
	deb    *debouncer

	mu      sync.Mutex
	applied core.Config
	pending core.Config
}

// NewSession starts an engine for the given configuration. The startup
// Initialize is posted immediately, not debounced; the ticker starts
// paused.
func NewSession(cfg core.Config) *Session {
	s := &Session{
		engine:  New(),
		deb:     newDebouncer(configDebounce),
		applied: cfg,
		pending: cfg,
	}
	s.ticker = NewTicker(cfg.Interval, func() {
		s.engine.Post(core.Tick{})
	})
	s.engine.Post(core.Initialize{Height: cfg.Height, Width: cfg.Width})
	return s
}

// Frames exposes the engine's conflating output channel.
func (s *Session) Frames() <-chan Frame {
	return s.engine.Frames()
}

// SetCell requests a manual edit of one cell.
func (s *Session) SetCell(index int, alive bool) {
	s.engine.Post(core.SetCell{Index: index, Alive: alive})
}

// Play starts or stops automatic ticking.
func (s *Session) Play(on bool) {
	s.ticker.Play(on)
}

// Playing reports whether automatic ticking is active.
func (s *Session) Playing() bool {
	return s.ticker.Playing()
}

// Step advances one generation manually, independent of the ticker.
func (s *Session) Step() {
	s.engine.Post(core.Tick{})
}

// Reset clears the board, keeping the current dimensions.
func (s *Session) Reset() {
	cfg := s.Config()
	s.engine.Post(core.Initialize{Height: cfg.Height, Width: cfg.Width})
}

// Randomize replaces the board contents with a deterministic random soup.
func (s *Session) Randomize(seed int64, density float64) {
	cfg := s.Config()
	s.engine.Post(core.Initialize{Height: cfg.Height, Width: cfg.Width})
	scratch := life.New(cfg.Height, cfg.Width)
	scratch.Randomize(seed, density)
	for i, alive := range scratch.Status() {
		if alive {
			s.engine.Post(core.SetCell{Index: i, Alive: true})
		}
	}
}

// Configure records a configuration edit. Edits are applied after a
// quiescence window: a dimension change resets the field, an interval
// change re-arms the ticker, and presentation-only fields are just stored.
func (s *Session) Configure(cfg core.Config) {
	s.mu.Lock()
	s.pending = cfg
	s.mu.Unlock()
	s.deb.call(s.applyPending)
}

// Config returns the most recently requested configuration.
func (s *Session) Config() core.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Close tears the session down: pending configuration edits are dropped,
// the ticker is cancelled, and the fold goroutine is stopped.
func (s *Session) Close() {
	s.deb.stop()
	s.ticker.Stop()
	s.engine.Close()
}

func (s *Session) applyPending() {
	s.mu.Lock()
	prev := s.applied
	next := s.pending
	s.applied = next
	s.mu.Unlock()

	if next.Height != prev.Height || next.Width != prev.Width {
		s.engine.Post(core.Initialize{Height: next.Height, Width: next.Width})
	}
	if next.Interval != prev.Interval {
		s.ticker.SetInterval(next.Interval)
	}
}
