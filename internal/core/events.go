package core

// Event is the closed set of inputs accepted by the simulation loop. The
// three kinds below are the only implementations; the unexported marker
// method keeps the set sealed so the reducer's switch stays exhaustive.
type Event interface {
	isEvent()
}

// Initialize resets the field to an empty board with new dimensions. It is
// fired once at startup and whenever height or width changes; presentation
// changes (cell size, colors, interval) never produce one.
type Initialize struct {
	Height int
	Width  int
}

// SetCell is a manual edit of a single cell.
type SetCell struct {
	Index int
	Alive bool
}

// Tick advances the simulation by one generation.
type Tick struct{}

func (Initialize) isEvent() {}
func (SetCell) isEvent()    {}
func (Tick) isEvent()       {}
