package ui

import "time"

// Stats is the snapshot of simulation state shown on the HUD.
type Stats struct {
	Generation int
	Population int
	Interval   time.Duration
	Playing    bool
}
